package repository

import (
	"context"
	"errors"
	"time"
	"vowline/internal/entity"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNoteNotFound = errors.New("note not found")

type NoteRepository interface {
	Create(ctx context.Context, note entity.Note) (string, error)
	GetByRecipient(ctx context.Context, userId string) ([]entity.Note, error)
	MarkRead(ctx context.Context, noteId string) error
	Delete(ctx context.Context, noteId string) error
}

type noteRepository struct {
	db mongo.Database
}

func NewNoteRepository(db mongo.Database) NoteRepository {
	return &noteRepository{
		db: db,
	}
}

func (r *noteRepository) Create(ctx context.Context, note entity.Note) (string, error) {
	collection := r.db.Collection("notes")

	note.Id = uuid.New().String()
	note.CreatedAt = time.Now()

	_, err := collection.InsertOne(ctx, note)
	if err != nil {
		return "", err
	}

	return note.Id, nil
}

func (r *noteRepository) GetByRecipient(ctx context.Context, userId string) ([]entity.Note, error) {
	collection := r.db.Collection("notes")
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := collection.Find(ctx, bson.M{"toUserId": userId}, opts)
	if err != nil {
		return nil, err
	}

	var notes []entity.Note
	err = cursor.All(ctx, &notes)
	if err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *noteRepository) MarkRead(ctx context.Context, noteId string) error {
	collection := r.db.Collection("notes")

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": noteId},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (r *noteRepository) Delete(ctx context.Context, noteId string) error {
	collection := r.db.Collection("notes")

	result, err := collection.DeleteOne(ctx, bson.M{"_id": noteId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNoteNotFound
	}

	return nil
}

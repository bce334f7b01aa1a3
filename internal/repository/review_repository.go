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

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(ctx context.Context, review entity.Review) (string, error)
	GetByOfficiant(ctx context.Context, officiantId string, visibleOnly bool) ([]entity.Review, error)
	SetVisibility(ctx context.Context, reviewId string, visible bool) error
	Delete(ctx context.Context, reviewId string) error
}

type reviewRepository struct {
	db mongo.Database
}

func NewReviewRepository(db mongo.Database) ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

func (r *reviewRepository) Create(ctx context.Context, review entity.Review) (string, error) {
	collection := r.db.Collection("reviews")

	review.Id = uuid.New().String()
	review.CreatedAt = time.Now()

	_, err := collection.InsertOne(ctx, review)
	if err != nil {
		return "", err
	}

	return review.Id, nil
}

func (r *reviewRepository) GetByOfficiant(ctx context.Context, officiantId string, visibleOnly bool) ([]entity.Review, error) {
	collection := r.db.Collection("reviews")

	filter := bson.M{"officiantId": officiantId}
	if visibleOnly {
		filter["isVisible"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var reviews []entity.Review
	err = cursor.All(ctx, &reviews)
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *reviewRepository) SetVisibility(ctx context.Context, reviewId string, visible bool) error {
	collection := r.db.Collection("reviews")

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": reviewId},
		bson.M{"$set": bson.M{"isVisible": visible}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, reviewId string) error {
	collection := r.db.Collection("reviews")

	result, err := collection.DeleteOne(ctx, bson.M{"_id": reviewId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrReviewNotFound
	}

	return nil
}

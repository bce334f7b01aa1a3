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

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	Create(ctx context.Context, event entity.Event) (string, error)
	Get(ctx context.Context, eventId string) (entity.Event, error)
	GetByUser(ctx context.Context, userId string) ([]entity.Event, error)
	GetByOfficiant(ctx context.Context, officiantId string) ([]entity.Event, error)
	Update(ctx context.Context, event entity.Event) error
	Delete(ctx context.Context, eventId string) error
}

type eventRepository struct {
	db mongo.Database
}

func NewEventRepository(db mongo.Database) EventRepository {
	return &eventRepository{
		db: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, event entity.Event) (string, error) {
	collection := r.db.Collection("events")

	event.Id = uuid.New().String()
	if event.Status == "" {
		event.Status = entity.EventStatusPlanned
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := collection.InsertOne(ctx, event)
	if err != nil {
		return "", err
	}

	return event.Id, nil
}

func (r *eventRepository) Get(ctx context.Context, eventId string) (entity.Event, error) {
	collection := r.db.Collection("events")

	var event entity.Event
	err := collection.FindOne(ctx, bson.M{"_id": eventId}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.Event{}, ErrEventNotFound
		}
		return entity.Event{}, err
	}

	return event, nil
}

func (r *eventRepository) GetByUser(ctx context.Context, userId string) ([]entity.Event, error) {
	return r.find(ctx, bson.M{"userId": userId})
}

func (r *eventRepository) GetByOfficiant(ctx context.Context, officiantId string) ([]entity.Event, error) {
	return r.find(ctx, bson.M{"officiantId": officiantId})
}

func (r *eventRepository) find(ctx context.Context, filter bson.M) ([]entity.Event, error) {
	collection := r.db.Collection("events")
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var events []entity.Event
	err = cursor.All(ctx, &events)
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event entity.Event) error {
	collection := r.db.Collection("events")

	event.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":              event.Title,
			"description":        event.Description,
			"ceremonyType":       event.CeremonyType,
			"vowsType":           event.VowsType,
			"language":           event.Language,
			"vowDescription":     event.VowDescription,
			"rituals":            event.Rituals,
			"ritualsDescription": event.RitualsDescription,
			"musicCues":          event.MusicCues,
			"eventDate":          event.EventDate,
			"rehearsalDate":      event.RehearsalDate,
			"location":           event.Location,
			"officiantId":        event.OfficiantId,
			"officiantName":      event.OfficiantName,
			"status":             event.Status,
			"updatedAt":          event.UpdatedAt,
		},
	}

	result, err := collection.UpdateOne(ctx, bson.M{"_id": event.Id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (r *eventRepository) Delete(ctx context.Context, eventId string) error {
	collection := r.db.Collection("events")

	result, err := collection.DeleteOne(ctx, bson.M{"_id": eventId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrEventNotFound
	}

	return nil
}

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

var ErrAlreadySubscribed = errors.New("email already subscribed")

type SubscriberRepository interface {
	Create(ctx context.Context, subscriber entity.Subscriber) (string, error)
	GetAll(ctx context.Context) ([]entity.Subscriber, error)
}

type subscriberRepository struct {
	db mongo.Database
}

func NewSubscriberRepository(db mongo.Database) SubscriberRepository {
	return &subscriberRepository{
		db: db,
	}
}

func (r *subscriberRepository) Create(ctx context.Context, subscriber entity.Subscriber) (string, error) {
	collection := r.db.Collection("subscribers")

	count, err := collection.CountDocuments(ctx, bson.M{"email": subscriber.Email})
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrAlreadySubscribed
	}

	subscriber.Id = uuid.New().String()
	subscriber.SubmittedAt = time.Now()

	_, err = collection.InsertOne(ctx, subscriber)
	if err != nil {
		return "", err
	}

	return subscriber.Id, nil
}

func (r *subscriberRepository) GetAll(ctx context.Context) ([]entity.Subscriber, error) {
	collection := r.db.Collection("subscribers")
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var subscribers []entity.Subscriber
	err = cursor.All(ctx, &subscribers)
	if err != nil {
		return nil, err
	}

	return subscribers, nil
}

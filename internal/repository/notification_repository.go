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

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(ctx context.Context, notification entity.Notification) (string, error)
	GetByUser(ctx context.Context, userId string) ([]entity.Notification, error)
	ToggleRead(ctx context.Context, notificationId string) (entity.Notification, error)
}

type notificationRepository struct {
	db mongo.Database
}

func NewNotificationRepository(db mongo.Database) NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification entity.Notification) (string, error) {
	collection := r.db.Collection("notifications")

	notification.Id = uuid.New().String()
	notification.CreatedAt = time.Now()

	_, err := collection.InsertOne(ctx, notification)
	if err != nil {
		return "", err
	}

	return notification.Id, nil
}

func (r *notificationRepository) GetByUser(ctx context.Context, userId string) ([]entity.Notification, error) {
	collection := r.db.Collection("notifications")
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := collection.Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return nil, err
	}

	var notifications []entity.Notification
	err = cursor.All(ctx, &notifications)
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *notificationRepository) ToggleRead(ctx context.Context, notificationId string) (entity.Notification, error) {
	collection := r.db.Collection("notifications")

	var notification entity.Notification
	err := collection.FindOne(ctx, bson.M{"_id": notificationId}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.Notification{}, ErrNotificationNotFound
		}
		return entity.Notification{}, err
	}

	notification.IsRead = !notification.IsRead
	_, err = collection.UpdateOne(ctx,
		bson.M{"_id": notificationId},
		bson.M{"$set": bson.M{"isRead": notification.IsRead}},
	)
	if err != nil {
		return entity.Notification{}, err
	}

	return notification, nil
}

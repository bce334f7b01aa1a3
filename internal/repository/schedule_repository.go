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

var ErrScheduleNotFound = errors.New("schedule not found")

type ScheduleRepository interface {
	Create(ctx context.Context, schedule entity.Schedule) (string, error)
	Get(ctx context.Context, scheduleId string) (entity.Schedule, error)
	GetByUser(ctx context.Context, userId string) ([]entity.Schedule, error)
	GetByOfficiant(ctx context.Context, officiantId string) ([]entity.Schedule, error)
	UpdateStatus(ctx context.Context, scheduleId, status string) error
	Delete(ctx context.Context, scheduleId string) error
}

type scheduleRepository struct {
	db mongo.Database
}

func NewScheduleRepository(db mongo.Database) ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule entity.Schedule) (string, error) {
	collection := r.db.Collection("schedules")

	schedule.Id = uuid.New().String()
	if schedule.ApprovedStatus == "" {
		schedule.ApprovedStatus = entity.ScheduleStatusPending
	}
	now := time.Now()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	_, err := collection.InsertOne(ctx, schedule)
	if err != nil {
		return "", err
	}

	return schedule.Id, nil
}

func (r *scheduleRepository) Get(ctx context.Context, scheduleId string) (entity.Schedule, error) {
	collection := r.db.Collection("schedules")

	var schedule entity.Schedule
	err := collection.FindOne(ctx, bson.M{"_id": scheduleId}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.Schedule{}, ErrScheduleNotFound
		}
		return entity.Schedule{}, err
	}

	return schedule, nil
}

func (r *scheduleRepository) GetByUser(ctx context.Context, userId string) ([]entity.Schedule, error) {
	return r.find(ctx, bson.M{"fromUserId": userId})
}

func (r *scheduleRepository) GetByOfficiant(ctx context.Context, officiantId string) ([]entity.Schedule, error) {
	return r.find(ctx, bson.M{"officiantId": officiantId})
}

func (r *scheduleRepository) find(ctx context.Context, filter bson.M) ([]entity.Schedule, error) {
	collection := r.db.Collection("schedules")
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var schedules []entity.Schedule
	err = cursor.All(ctx, &schedules)
	if err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *scheduleRepository) UpdateStatus(ctx context.Context, scheduleId, status string) error {
	collection := r.db.Collection("schedules")

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": scheduleId},
		bson.M{"$set": bson.M{
			"approvedStatus": status,
			"updatedAt":      time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, scheduleId string) error {
	collection := r.db.Collection("schedules")

	result, err := collection.DeleteOne(ctx, bson.M{"_id": scheduleId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

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

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Get(ctx context.Context, userId string) (entity.User, error)
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user entity.User) (string, error)
	Update(ctx context.Context, user entity.User) error
	SetVerified(ctx context.Context, userId string) error
	Index(ctx context.Context, filter entity.UserIndexFilter) ([]entity.User, error)
}

type userRepository struct {
	db mongo.Database
}

func NewUserRepository(db mongo.Database) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Get(ctx context.Context, userId string) (entity.User, error) {
	collection := r.db.Collection("users")
	filter := bson.M{"_id": userId}

	var user entity.User
	err := collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.User{}, ErrUserNotFound
		}
		return entity.User{}, err
	}

	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	collection := r.db.Collection("users")
	filter := bson.M{"email": email}

	var user entity.User
	err := collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.User{}, ErrUserNotFound
		}
		return entity.User{}, err
	}

	return user, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	collection := r.db.Collection("users")

	count, err := collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *userRepository) Create(ctx context.Context, user entity.User) (string, error) {
	collection := r.db.Collection("users")

	user.Id = uuid.New().String()
	if user.Role == "" {
		user.Role = entity.UserRoleUser
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := collection.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}

	return user.Id, nil
}

func (r *userRepository) Update(ctx context.Context, user entity.User) error {
	collection := r.db.Collection("users")
	filter := bson.M{"_id": user.Id}
	update := bson.M{
		"$set": bson.M{
			"name":           user.Name,
			"partner1":       user.Partner1,
			"partner2":       user.Partner2,
			"specialization": user.Specialization,
			"profilePicture": user.ProfilePicture,
			"bio":            user.Bio,
			"bookingPackage": user.BookingPackage,
			"languages":      user.Languages,
			"location":       user.Location,
			"updatedAt":      time.Now(),
		},
	}
	_, err := collection.UpdateOne(ctx, filter, update)

	return err
}

func (r *userRepository) SetVerified(ctx context.Context, userId string) error {
	collection := r.db.Collection("users")

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": userId},
		bson.M{"$set": bson.M{"isVerified": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) Index(ctx context.Context, filter entity.UserIndexFilter) ([]entity.User, error) {
	collection := r.db.Collection("users")

	bsonFilter := bson.M{}
	if len(filter.Ids) > 0 {
		bsonFilter["_id"] = bson.M{"$in": filter.Ids}
	}
	if filter.Role != "" {
		bsonFilter["role"] = filter.Role
		bsonFilter["isVerified"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := collection.Find(ctx, bsonFilter, opts)
	if err != nil {
		return nil, err
	}

	var users []entity.User
	err = cursor.All(ctx, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

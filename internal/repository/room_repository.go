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

var ErrRoomNotFound = errors.New("chat room not found")

type RoomRepository interface {
	Create(ctx context.Context, room entity.ChatRoom) (entity.ChatRoom, error)
	Get(ctx context.Context, roomId string) (entity.ChatRoom, error)
	GetByUser(ctx context.Context, userId string) ([]entity.ChatRoom, error)
	AddParticipant(ctx context.Context, roomId string, participant entity.Participant) (entity.ChatRoom, error)
	RemoveParticipant(ctx context.Context, roomId, userId string) (entity.ChatRoom, error)
	TouchParticipant(ctx context.Context, roomId, userId string, seenAt time.Time) error
}

type roomRepository struct {
	db mongo.Database
}

func NewRoomRepository(db mongo.Database) RoomRepository {
	return &roomRepository{
		db: db,
	}
}

func (r *roomRepository) Create(ctx context.Context, room entity.ChatRoom) (entity.ChatRoom, error) {
	collection := r.db.Collection("chat_rooms")

	room.Id = uuid.New().String()
	if room.RoomId == "" {
		room.RoomId = "room_" + room.Id
	}
	if room.Type == "" {
		room.Type = entity.RoomTypePrivate
	}
	if room.Participants == nil {
		room.Participants = []entity.Participant{}
	}
	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	_, err := collection.InsertOne(ctx, room)
	if err != nil {
		return entity.ChatRoom{}, err
	}

	return room, nil
}

func (r *roomRepository) Get(ctx context.Context, roomId string) (entity.ChatRoom, error) {
	collection := r.db.Collection("chat_rooms")
	filter := bson.M{"roomId": roomId}

	var room entity.ChatRoom
	err := collection.FindOne(ctx, filter).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.ChatRoom{}, ErrRoomNotFound
		}
		return entity.ChatRoom{}, err
	}

	return room, nil
}

// GetByUser returns the rooms a user actively participates in, most recently
// touched first.
func (r *roomRepository) GetByUser(ctx context.Context, userId string) ([]entity.ChatRoom, error) {
	collection := r.db.Collection("chat_rooms")
	filter := bson.M{
		"participants": bson.M{
			"$elemMatch": bson.M{
				"userId":   userId,
				"isActive": true,
			},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var rooms []entity.ChatRoom
	err = cursor.All(ctx, &rooms)
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

// AddParticipant adds the user to the room's participant list, or reactivates
// the existing record when the user re-joins. Participant user ids stay
// unique per room.
func (r *roomRepository) AddParticipant(ctx context.Context, roomId string, participant entity.Participant) (entity.ChatRoom, error) {
	collection := r.db.Collection("chat_rooms")

	now := time.Now()
	var room entity.ChatRoom
	err := collection.FindOneAndUpdate(ctx,
		bson.M{
			"roomId":              roomId,
			"participants.userId": bson.M{"$ne": participant.UserId},
		},
		bson.M{
			"$push": bson.M{"participants": participant},
			"$set":  bson.M{"updatedAt": now},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&room)
	if err == nil {
		return room, nil
	}
	if err != mongo.ErrNoDocuments {
		return entity.ChatRoom{}, err
	}

	// Already a participant (or the room is absent): refresh the record.
	err = collection.FindOneAndUpdate(ctx,
		bson.M{"roomId": roomId, "participants.userId": participant.UserId},
		bson.M{
			"$set": bson.M{
				"participants.$.isActive":   true,
				"participants.$.userName":   participant.UserName,
				"participants.$.lastSeenAt": now,
				"updatedAt":                 now,
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.ChatRoom{}, ErrRoomNotFound
		}
		return entity.ChatRoom{}, err
	}

	return room, nil
}

// RemoveParticipant deactivates the membership record; the participant list
// keeps the historical entry.
func (r *roomRepository) RemoveParticipant(ctx context.Context, roomId, userId string) (entity.ChatRoom, error) {
	collection := r.db.Collection("chat_rooms")

	now := time.Now()
	var room entity.ChatRoom
	err := collection.FindOneAndUpdate(ctx,
		bson.M{"roomId": roomId, "participants.userId": userId},
		bson.M{
			"$set": bson.M{
				"participants.$.isActive":   false,
				"participants.$.lastSeenAt": now,
				"updatedAt":                 now,
			},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.ChatRoom{}, ErrRoomNotFound
		}
		return entity.ChatRoom{}, err
	}

	return room, nil
}

func (r *roomRepository) TouchParticipant(ctx context.Context, roomId, userId string, seenAt time.Time) error {
	collection := r.db.Collection("chat_rooms")

	_, err := collection.UpdateOne(ctx,
		bson.M{"roomId": roomId, "participants.userId": userId},
		bson.M{"$set": bson.M{"participants.$.lastSeenAt": seenAt}},
	)
	return err
}

package repository

import (
	"context"
	"errors"
	"log"
	"time"
	"vowline/internal/entity"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrMessageNotFound         = errors.New("message not found")
	ErrProposalAlreadyResolved = errors.New("booking proposal already responded to")
)

type MessageRepository interface {
	Create(ctx context.Context, message entity.ChatMessage) (entity.ChatMessage, error)
	Get(ctx context.Context, id string) (entity.ChatMessage, error)
	GetByRoom(ctx context.Context, roomId string, page, limit int) ([]entity.ChatMessage, error)
	MarkAsRead(ctx context.Context, messageIds []string, userId, userName string) error
	AddReaction(ctx context.Context, id, emoji, userId, userName string) (entity.ChatMessage, error)
	RemoveReaction(ctx context.Context, id, emoji, userId string) (entity.ChatMessage, error)
	UpdateBookingStatus(ctx context.Context, id, status, responderId, responderName string, respondedAt time.Time) (entity.ChatMessage, error)
	Edit(ctx context.Context, id, newContent string) (entity.ChatMessage, error)
	SoftDelete(ctx context.Context, id string) error
}

type messageRepository struct {
	db mongo.Database
}

func NewMessageRepository(db mongo.Database) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// idFilter matches a message by either its storage id or its protocol-level
// messageId. Clients may hold either one.
func idFilter(id string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"_id": id},
		bson.M{"messageId": id},
	}}
}

// markAsReadFilter matches the listed messages the reader has not already
// marked: the readBy guard is what makes the operation idempotent per reader.
func markAsReadFilter(messageIds []string, userId string) bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"_id": bson.M{"$in": messageIds}},
			bson.M{"messageId": bson.M{"$in": messageIds}},
		},
		"readBy.userId": bson.M{"$ne": userId},
	}
}

func markAsReadUpdate(userId, userName string, readAt time.Time) bson.M {
	return bson.M{
		"$addToSet": bson.M{
			"readBy": entity.ReadReceipt{
				UserId:   userId,
				UserName: userName,
				ReadAt:   readAt,
			},
		},
	}
}

// pullReactionUpdate removes the reaction keyed by (emoji, userId).
func pullReactionUpdate(emoji, userId string) bson.M {
	return bson.M{
		"$pull": bson.M{
			"reactions": bson.M{"emoji": emoji, "userId": userId},
		},
	}
}

func pushReactionUpdate(emoji, userId, userName string, reactedAt time.Time) bson.M {
	return bson.M{
		"$push": bson.M{
			"reactions": entity.Reaction{
				Emoji:     emoji,
				UserId:    userId,
				UserName:  userName,
				ReactedAt: reactedAt,
			},
		},
	}
}

// resolveProposalFilter matches a booking proposal only while it is pending,
// so concurrent responders resolve it exactly once.
func resolveProposalFilter(id string) bson.M {
	filter := idFilter(id)
	filter["type"] = entity.MessageTypeBookingProposal
	filter["booking.status"] = entity.ProposalStatusPending
	return filter
}

func (r *messageRepository) Create(ctx context.Context, message entity.ChatMessage) (entity.ChatMessage, error) {
	collection := r.db.Collection("chat_messages")

	message.Id = uuid.New().String()
	if message.MessageId == "" {
		message.MessageId = entity.NewMessageId()
	}
	if message.Status == "" {
		message.Status = entity.MessageStatusSent
	}
	if message.Reactions == nil {
		message.Reactions = []entity.Reaction{}
	}
	if message.ReadBy == nil {
		message.ReadBy = []entity.ReadReceipt{}
	}
	now := time.Now()
	message.CreatedAt = now
	message.UpdatedAt = now

	_, err := collection.InsertOne(ctx, message)
	if err != nil {
		return entity.ChatMessage{}, err
	}

	// Keep the owning room's counters current. Best effort: a failed metadata
	// update must not fail the already-persisted message.
	rooms := r.db.Collection("chat_rooms")
	_, err = rooms.UpdateOne(ctx,
		bson.M{"roomId": message.RoomId},
		bson.M{
			"$inc": bson.M{"metadata.totalMessages": 1},
			"$set": bson.M{
				"metadata.lastMessage": entity.LastMessage{
					Content:    message.Content,
					SenderName: message.SenderName,
					Timestamp:  message.CreatedAt,
				},
				"updatedAt": now,
			},
		},
	)
	if err != nil {
		log.Printf("update room metadata for %s: %v", message.RoomId, err)
	}

	return message, nil
}

func (r *messageRepository) Get(ctx context.Context, id string) (entity.ChatMessage, error) {
	collection := r.db.Collection("chat_messages")

	var message entity.ChatMessage
	err := collection.FindOne(ctx, idFilter(id)).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.ChatMessage{}, ErrMessageNotFound
		}
		return entity.ChatMessage{}, err
	}

	return message, nil
}

// GetByRoom returns one page of a room's messages, newest first, excluding
// soft-deleted ones. Callers reverse the slice for oldest-first display.
func (r *messageRepository) GetByRoom(ctx context.Context, roomId string, page, limit int) ([]entity.ChatMessage, error) {
	collection := r.db.Collection("chat_messages")
	filter := bson.M{
		"roomId":    roomId,
		"isDeleted": false,
	}

	if page < 1 {
		page = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var messages []entity.ChatMessage
	err = cursor.All(ctx, &messages)
	if err != nil {
		return nil, err
	}

	return messages, nil
}

// MarkAsRead appends a read receipt for the reader to every listed message
// that does not already carry one. Idempotent per reader.
func (r *messageRepository) MarkAsRead(ctx context.Context, messageIds []string, userId, userName string) error {
	collection := r.db.Collection("chat_messages")

	_, err := collection.UpdateMany(ctx,
		markAsReadFilter(messageIds, userId),
		markAsReadUpdate(userId, userName, time.Now()))
	return err
}

// AddReaction upserts one reaction per (emoji, userId) pair. An existing
// entry for the pair is removed first so re-reacting refreshes rather than
// duplicates.
func (r *messageRepository) AddReaction(ctx context.Context, id, emoji, userId, userName string) (entity.ChatMessage, error) {
	collection := r.db.Collection("chat_messages")

	_, err := collection.UpdateOne(ctx, idFilter(id), pullReactionUpdate(emoji, userId))
	if err != nil {
		return entity.ChatMessage{}, err
	}

	var message entity.ChatMessage
	err = collection.FindOneAndUpdate(ctx, idFilter(id),
		pushReactionUpdate(emoji, userId, userName, time.Now()),
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.ChatMessage{}, ErrMessageNotFound
		}
		return entity.ChatMessage{}, err
	}

	return message, nil
}

// RemoveReaction removes the (emoji, userId) entry. Removing a reaction that
// does not exist is a no-op, not an error.
func (r *messageRepository) RemoveReaction(ctx context.Context, id, emoji, userId string) (entity.ChatMessage, error) {
	collection := r.db.Collection("chat_messages")

	var message entity.ChatMessage
	err := collection.FindOneAndUpdate(ctx, idFilter(id), pullReactionUpdate(emoji, userId),
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.ChatMessage{}, ErrMessageNotFound
		}
		return entity.ChatMessage{}, err
	}

	return message, nil
}

// UpdateBookingStatus resolves a pending booking proposal exactly once. A
// second response is a conflict, not an overwrite.
func (r *messageRepository) UpdateBookingStatus(ctx context.Context, id, status, responderId, responderName string, respondedAt time.Time) (entity.ChatMessage, error) {
	collection := r.db.Collection("chat_messages")

	filter := resolveProposalFilter(id)

	update := bson.M{
		"$set": bson.M{
			"booking.status":          status,
			"booking.respondedBy":     responderId,
			"booking.respondedByName": responderName,
			"booking.respondedAt":     respondedAt,
			"updatedAt":               respondedAt,
		},
	}

	var message entity.ChatMessage
	err := collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&message)
	if err == nil {
		return message, nil
	}
	if err != mongo.ErrNoDocuments {
		return entity.ChatMessage{}, err
	}

	// Nothing matched: either the proposal is gone or it is already resolved.
	// A proposal-typed message without a booking payload is not a proposal.
	existsFilter := idFilter(id)
	existsFilter["type"] = entity.MessageTypeBookingProposal
	existsFilter["booking"] = bson.M{"$exists": true, "$ne": nil}
	count, countErr := collection.CountDocuments(ctx, existsFilter)
	if countErr != nil {
		return entity.ChatMessage{}, countErr
	}
	if count == 0 {
		return entity.ChatMessage{}, ErrMessageNotFound
	}
	return entity.ChatMessage{}, ErrProposalAlreadyResolved
}

// Edit replaces the content and appends the previous content to the edit
// history. History is append-only.
func (r *messageRepository) Edit(ctx context.Context, id, newContent string) (entity.ChatMessage, error) {
	collection := r.db.Collection("chat_messages")

	existing, err := r.Get(ctx, id)
	if err != nil {
		return entity.ChatMessage{}, err
	}

	now := time.Now()
	var message entity.ChatMessage
	err = collection.FindOneAndUpdate(ctx, bson.M{"_id": existing.Id}, bson.M{
		"$set": bson.M{
			"content":   newContent,
			"isEdited":  true,
			"updatedAt": now,
		},
		"$push": bson.M{
			"editHistory": entity.EditEntry{
				PreviousContent: existing.Content,
				EditedAt:        now,
			},
		},
	}, options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return entity.ChatMessage{}, ErrMessageNotFound
		}
		return entity.ChatMessage{}, err
	}

	return message, nil
}

// SoftDelete flags the message as deleted; the record stays in storage and is
// excluded from room replay.
func (r *messageRepository) SoftDelete(ctx context.Context, id string) error {
	collection := r.db.Collection("chat_messages")

	now := time.Now()
	result, err := collection.UpdateOne(ctx, idFilter(id), bson.M{
		"$set": bson.M{
			"isDeleted": true,
			"deletedAt": now,
			"updatedAt": now,
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrMessageNotFound
	}

	return nil
}

package usecase

import (
	"context"
	"errors"
	"time"

	"vowline/internal/entity"
	"vowline/internal/repository"
)

// ReplayLimit is how many recent messages a joining connection receives.
const ReplayLimit = 50

var ErrMissingRoomFields = errors.New("roomId, userId and userName are required")

type ChatUsecase interface {
	CreateRoom(ctx context.Context, room entity.ChatRoom) (entity.ChatRoom, error)
	GetRoom(ctx context.Context, roomId string) (entity.ChatRoom, error)
	ListUserRooms(ctx context.Context, userId string) ([]entity.ChatRoom, error)
	JoinRoom(ctx context.Context, roomId, userId, userName, role string) (entity.ChatRoom, error)
	LeaveRoom(ctx context.Context, roomId, userId string) (entity.ChatRoom, error)
	TouchSeen(ctx context.Context, roomId, userId string) error
	RecentMessages(ctx context.Context, roomId string) ([]entity.ChatMessage, error)
	PageMessages(ctx context.Context, roomId string, page, limit int) (entity.MessagePage, error)
}

type chatUsecase struct {
	roomRepo    repository.RoomRepository
	messageRepo repository.MessageRepository
}

func NewChatUsecase(roomRepo repository.RoomRepository, messageRepo repository.MessageRepository) ChatUsecase {
	return &chatUsecase{
		roomRepo:    roomRepo,
		messageRepo: messageRepo,
	}
}

func (c *chatUsecase) CreateRoom(ctx context.Context, room entity.ChatRoom) (entity.ChatRoom, error) {
	if room.Settings.MaxFileSize == 0 {
		room.Settings = entity.DefaultRoomSettings()
	}
	return c.roomRepo.Create(ctx, room)
}

func (c *chatUsecase) GetRoom(ctx context.Context, roomId string) (entity.ChatRoom, error) {
	return c.roomRepo.Get(ctx, roomId)
}

func (c *chatUsecase) ListUserRooms(ctx context.Context, userId string) ([]entity.ChatRoom, error) {
	return c.roomRepo.GetByUser(ctx, userId)
}

// JoinRoom ensures the room exists and the user is an active participant.
// A missing room is created with the joiner as its first participant. Another
// connection may create the room between our lookup and create; the failed
// insert falls back to a plain participant add on the winner's room.
func (c *chatUsecase) JoinRoom(ctx context.Context, roomId, userId, userName, role string) (entity.ChatRoom, error) {
	if roomId == "" || userId == "" || userName == "" {
		return entity.ChatRoom{}, ErrMissingRoomFields
	}
	if role == "" {
		role = entity.RoleMember
	}

	participant := entity.Participant{
		UserId:   userId,
		UserName: userName,
		Role:     role,
		JoinedAt: time.Now(),
		IsActive: true,
	}

	_, err := c.roomRepo.Get(ctx, roomId)
	if errors.Is(err, repository.ErrRoomNotFound) {
		participant.Role = entity.RoleAdmin
		created, createErr := c.roomRepo.Create(ctx, entity.ChatRoom{
			RoomId:       roomId,
			Type:         entity.RoomTypePrivate,
			Participants: []entity.Participant{participant},
			Settings:     entity.DefaultRoomSettings(),
			Metadata: entity.RoomMetadata{
				CreatedBy: &entity.CreatedBy{UserId: userId, UserName: userName},
			},
		})
		if createErr == nil {
			return created, nil
		}
	} else if err != nil {
		return entity.ChatRoom{}, err
	}

	return c.roomRepo.AddParticipant(ctx, roomId, participant)
}

func (c *chatUsecase) LeaveRoom(ctx context.Context, roomId, userId string) (entity.ChatRoom, error) {
	return c.roomRepo.RemoveParticipant(ctx, roomId, userId)
}

// TouchSeen bumps the participant's lastSeen after they read messages.
func (c *chatUsecase) TouchSeen(ctx context.Context, roomId, userId string) error {
	return c.roomRepo.TouchParticipant(ctx, roomId, userId, time.Now())
}

// RecentMessages returns up to ReplayLimit recent non-deleted messages in
// ascending time order, ready for display.
func (c *chatUsecase) RecentMessages(ctx context.Context, roomId string) ([]entity.ChatMessage, error) {
	page, err := c.PageMessages(ctx, roomId, 1, ReplayLimit)
	if err != nil {
		return nil, err
	}
	return page.Messages, nil
}

// PageMessages pages a room's history. Storage returns newest first; the
// slice is reversed so callers render oldest first. HasMore is approximate:
// a full page implies more may exist.
func (c *chatUsecase) PageMessages(ctx context.Context, roomId string, page, limit int) (entity.MessagePage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = ReplayLimit
	}

	messages, err := c.messageRepo.GetByRoom(ctx, roomId, page, limit)
	if err != nil {
		return entity.MessagePage{}, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return entity.MessagePage{
		Messages: messages,
		Page:     page,
		Limit:    limit,
		HasMore:  len(messages) == limit,
	}, nil
}

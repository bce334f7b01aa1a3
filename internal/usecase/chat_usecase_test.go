package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vowline/internal/entity"
	"vowline/internal/mocks"
	"vowline/internal/repository"
)

func newestFirst(roomId string, n int) []entity.ChatMessage {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	messages := make([]entity.ChatMessage, n)
	for i := range messages {
		messages[i] = entity.ChatMessage{
			MessageId: fmt.Sprintf("msg-%d", n-i),
			RoomId:    roomId,
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return messages
}

func TestJoinRoomCreatesMissingRoom(t *testing.T) {
	roomRepo := new(mocks.RoomRepositoryMock)
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewChatUsecase(roomRepo, messageRepo)

	roomRepo.On("Get", mock.Anything, "room-1").Return(entity.ChatRoom{}, repository.ErrRoomNotFound).Once()
	roomRepo.On("Create", mock.Anything, mock.MatchedBy(func(room entity.ChatRoom) bool {
		return room.RoomId == "room-1" &&
			len(room.Participants) == 1 &&
			room.Participants[0].UserId == "u1" &&
			room.Participants[0].Role == entity.RoleAdmin &&
			room.Metadata.CreatedBy != nil &&
			room.Metadata.CreatedBy.UserId == "u1"
	})).Return(entity.ChatRoom{RoomId: "room-1"}, nil).Once()

	room, err := uc.JoinRoom(context.Background(), "room-1", "u1", "Ana", "")

	require.NoError(t, err)
	assert.Equal(t, "room-1", room.RoomId)
	roomRepo.AssertNotCalled(t, "AddParticipant", mock.Anything, mock.Anything, mock.Anything)
	roomRepo.AssertExpectations(t)
}

func TestJoinRoomExistingAddsParticipant(t *testing.T) {
	roomRepo := new(mocks.RoomRepositoryMock)
	uc := NewChatUsecase(roomRepo, new(mocks.MessageRepositoryMock))

	roomRepo.On("Get", mock.Anything, "room-1").Return(entity.ChatRoom{RoomId: "room-1"}, nil).Once()
	roomRepo.On("AddParticipant", mock.Anything, "room-1", mock.MatchedBy(func(p entity.Participant) bool {
		return p.UserId == "u2" && p.Role == entity.RoleMember && p.IsActive
	})).Return(entity.ChatRoom{RoomId: "room-1"}, nil).Once()

	_, err := uc.JoinRoom(context.Background(), "room-1", "u2", "Ben", "")

	require.NoError(t, err)
	roomRepo.AssertExpectations(t)
}

func TestJoinRoomCreateRaceFallsBack(t *testing.T) {
	roomRepo := new(mocks.RoomRepositoryMock)
	uc := NewChatUsecase(roomRepo, new(mocks.MessageRepositoryMock))

	roomRepo.On("Get", mock.Anything, "room-1").Return(entity.ChatRoom{}, repository.ErrRoomNotFound).Once()
	roomRepo.On("Create", mock.Anything, mock.Anything).Return(entity.ChatRoom{}, assert.AnError).Once()
	roomRepo.On("AddParticipant", mock.Anything, "room-1", mock.Anything).Return(entity.ChatRoom{RoomId: "room-1"}, nil).Once()

	room, err := uc.JoinRoom(context.Background(), "room-1", "u1", "Ana", "")

	require.NoError(t, err)
	assert.Equal(t, "room-1", room.RoomId)
	roomRepo.AssertExpectations(t)
}

func TestJoinRoomMissingFields(t *testing.T) {
	uc := NewChatUsecase(new(mocks.RoomRepositoryMock), new(mocks.MessageRepositoryMock))

	_, err := uc.JoinRoom(context.Background(), "room-1", "", "Ana", "")

	assert.ErrorIs(t, err, ErrMissingRoomFields)
}

func TestPageMessagesReversesOrder(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewChatUsecase(new(mocks.RoomRepositoryMock), messageRepo)

	messageRepo.On("GetByRoom", mock.Anything, "room-1", 1, 3).Return(newestFirst("room-1", 3), nil).Once()

	page, err := uc.PageMessages(context.Background(), "room-1", 1, 3)

	require.NoError(t, err)
	require.Len(t, page.Messages, 3)
	assert.Equal(t, "msg-1", page.Messages[0].MessageId)
	assert.Equal(t, "msg-3", page.Messages[2].MessageId)
	assert.True(t, page.Messages[0].CreatedAt.Before(page.Messages[2].CreatedAt))
	assert.True(t, page.HasMore)
	messageRepo.AssertExpectations(t)
}

func TestPageMessagesPartialPage(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewChatUsecase(new(mocks.RoomRepositoryMock), messageRepo)

	messageRepo.On("GetByRoom", mock.Anything, "room-1", 2, 10).Return(newestFirst("room-1", 4), nil).Once()

	page, err := uc.PageMessages(context.Background(), "room-1", 2, 10)

	require.NoError(t, err)
	assert.Len(t, page.Messages, 4)
	assert.False(t, page.HasMore)
	assert.Equal(t, 2, page.Page)
	messageRepo.AssertExpectations(t)
}

func TestRecentMessagesUsesReplayLimit(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewChatUsecase(new(mocks.RoomRepositoryMock), messageRepo)

	messageRepo.On("GetByRoom", mock.Anything, "room-1", 1, ReplayLimit).Return(newestFirst("room-1", 2), nil).Once()

	messages, err := uc.RecentMessages(context.Background(), "room-1")

	require.NoError(t, err)
	assert.Len(t, messages, 2)
	messageRepo.AssertExpectations(t)
}

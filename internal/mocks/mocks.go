package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"vowline/internal/entity"
)

type MessageRepositoryMock struct {
	mock.Mock
}

func (m *MessageRepositoryMock) Create(ctx context.Context, message entity.ChatMessage) (entity.ChatMessage, error) {
	args := m.Called(ctx, message)
	var out entity.ChatMessage
	if val := args.Get(0); val != nil {
		out = val.(entity.ChatMessage)
	}
	return out, args.Error(1)
}

func (m *MessageRepositoryMock) Get(ctx context.Context, id string) (entity.ChatMessage, error) {
	args := m.Called(ctx, id)
	var out entity.ChatMessage
	if val := args.Get(0); val != nil {
		out = val.(entity.ChatMessage)
	}
	return out, args.Error(1)
}

func (m *MessageRepositoryMock) GetByRoom(ctx context.Context, roomId string, page, limit int) ([]entity.ChatMessage, error) {
	args := m.Called(ctx, roomId, page, limit)
	var out []entity.ChatMessage
	if val := args.Get(0); val != nil {
		out = val.([]entity.ChatMessage)
	}
	return out, args.Error(1)
}

func (m *MessageRepositoryMock) MarkAsRead(ctx context.Context, messageIds []string, userId, userName string) error {
	args := m.Called(ctx, messageIds, userId, userName)
	return args.Error(0)
}

func (m *MessageRepositoryMock) AddReaction(ctx context.Context, id, emoji, userId, userName string) (entity.ChatMessage, error) {
	args := m.Called(ctx, id, emoji, userId, userName)
	var out entity.ChatMessage
	if val := args.Get(0); val != nil {
		out = val.(entity.ChatMessage)
	}
	return out, args.Error(1)
}

func (m *MessageRepositoryMock) RemoveReaction(ctx context.Context, id, emoji, userId string) (entity.ChatMessage, error) {
	args := m.Called(ctx, id, emoji, userId)
	var out entity.ChatMessage
	if val := args.Get(0); val != nil {
		out = val.(entity.ChatMessage)
	}
	return out, args.Error(1)
}

func (m *MessageRepositoryMock) UpdateBookingStatus(ctx context.Context, id, status, responderId, responderName string, respondedAt time.Time) (entity.ChatMessage, error) {
	args := m.Called(ctx, id, status, responderId, responderName, respondedAt)
	var out entity.ChatMessage
	if val := args.Get(0); val != nil {
		out = val.(entity.ChatMessage)
	}
	return out, args.Error(1)
}

func (m *MessageRepositoryMock) Edit(ctx context.Context, id, newContent string) (entity.ChatMessage, error) {
	args := m.Called(ctx, id, newContent)
	var out entity.ChatMessage
	if val := args.Get(0); val != nil {
		out = val.(entity.ChatMessage)
	}
	return out, args.Error(1)
}

func (m *MessageRepositoryMock) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type RoomRepositoryMock struct {
	mock.Mock
}

func (m *RoomRepositoryMock) Create(ctx context.Context, room entity.ChatRoom) (entity.ChatRoom, error) {
	args := m.Called(ctx, room)
	var out entity.ChatRoom
	if val := args.Get(0); val != nil {
		out = val.(entity.ChatRoom)
	}
	return out, args.Error(1)
}

func (m *RoomRepositoryMock) Get(ctx context.Context, roomId string) (entity.ChatRoom, error) {
	args := m.Called(ctx, roomId)
	var out entity.ChatRoom
	if val := args.Get(0); val != nil {
		out = val.(entity.ChatRoom)
	}
	return out, args.Error(1)
}

func (m *RoomRepositoryMock) GetByUser(ctx context.Context, userId string) ([]entity.ChatRoom, error) {
	args := m.Called(ctx, userId)
	var out []entity.ChatRoom
	if val := args.Get(0); val != nil {
		out = val.([]entity.ChatRoom)
	}
	return out, args.Error(1)
}

func (m *RoomRepositoryMock) AddParticipant(ctx context.Context, roomId string, participant entity.Participant) (entity.ChatRoom, error) {
	args := m.Called(ctx, roomId, participant)
	var out entity.ChatRoom
	if val := args.Get(0); val != nil {
		out = val.(entity.ChatRoom)
	}
	return out, args.Error(1)
}

func (m *RoomRepositoryMock) RemoveParticipant(ctx context.Context, roomId, userId string) (entity.ChatRoom, error) {
	args := m.Called(ctx, roomId, userId)
	var out entity.ChatRoom
	if val := args.Get(0); val != nil {
		out = val.(entity.ChatRoom)
	}
	return out, args.Error(1)
}

func (m *RoomRepositoryMock) TouchParticipant(ctx context.Context, roomId, userId string, seenAt time.Time) error {
	args := m.Called(ctx, roomId, userId, seenAt)
	return args.Error(0)
}

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) Get(ctx context.Context, userId string) (entity.User, error) {
	args := m.Called(ctx, userId)
	var out entity.User
	if val := args.Get(0); val != nil {
		out = val.(entity.User)
	}
	return out, args.Error(1)
}

func (m *UserRepositoryMock) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	args := m.Called(ctx, email)
	var out entity.User
	if val := args.Get(0); val != nil {
		out = val.(entity.User)
	}
	return out, args.Error(1)
}

func (m *UserRepositoryMock) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepositoryMock) Create(ctx context.Context, user entity.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepositoryMock) Update(ctx context.Context, user entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepositoryMock) SetVerified(ctx context.Context, userId string) error {
	args := m.Called(ctx, userId)
	return args.Error(0)
}

func (m *UserRepositoryMock) Index(ctx context.Context, filter entity.UserIndexFilter) ([]entity.User, error) {
	args := m.Called(ctx, filter)
	var out []entity.User
	if val := args.Get(0); val != nil {
		out = val.([]entity.User)
	}
	return out, args.Error(1)
}

type RefreshTokenRepositoryMock struct {
	mock.Mock
}

func (m *RefreshTokenRepositoryMock) Create(ctx context.Context, refreshToken entity.RefreshToken) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *RefreshTokenRepositoryMock) GetByToken(ctx context.Context, token string) (entity.RefreshToken, error) {
	args := m.Called(ctx, token)
	var out entity.RefreshToken
	if val := args.Get(0); val != nil {
		out = val.(entity.RefreshToken)
	}
	return out, args.Error(1)
}

func (m *RefreshTokenRepositoryMock) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *RefreshTokenRepositoryMock) RevokeAllByUserId(ctx context.Context, userId string) error {
	args := m.Called(ctx, userId)
	return args.Error(0)
}

func (m *RefreshTokenRepositoryMock) DeleteExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type NotificationRepositoryMock struct {
	mock.Mock
}

func (m *NotificationRepositoryMock) Create(ctx context.Context, notification entity.Notification) (string, error) {
	args := m.Called(ctx, notification)
	return args.String(0), args.Error(1)
}

func (m *NotificationRepositoryMock) GetByUser(ctx context.Context, userId string) ([]entity.Notification, error) {
	args := m.Called(ctx, userId)
	var out []entity.Notification
	if val := args.Get(0); val != nil {
		out = val.([]entity.Notification)
	}
	return out, args.Error(1)
}

func (m *NotificationRepositoryMock) ToggleRead(ctx context.Context, notificationId string) (entity.Notification, error) {
	args := m.Called(ctx, notificationId)
	var out entity.Notification
	if val := args.Get(0); val != nil {
		out = val.(entity.Notification)
	}
	return out, args.Error(1)
}

type NoteRepositoryMock struct {
	mock.Mock
}

func (m *NoteRepositoryMock) Create(ctx context.Context, note entity.Note) (string, error) {
	args := m.Called(ctx, note)
	return args.String(0), args.Error(1)
}

func (m *NoteRepositoryMock) GetByRecipient(ctx context.Context, userId string) ([]entity.Note, error) {
	args := m.Called(ctx, userId)
	var out []entity.Note
	if val := args.Get(0); val != nil {
		out = val.([]entity.Note)
	}
	return out, args.Error(1)
}

func (m *NoteRepositoryMock) MarkRead(ctx context.Context, noteId string) error {
	args := m.Called(ctx, noteId)
	return args.Error(0)
}

func (m *NoteRepositoryMock) Delete(ctx context.Context, noteId string) error {
	args := m.Called(ctx, noteId)
	return args.Error(0)
}

type ScheduleRepositoryMock struct {
	mock.Mock
}

func (m *ScheduleRepositoryMock) Create(ctx context.Context, schedule entity.Schedule) (string, error) {
	args := m.Called(ctx, schedule)
	return args.String(0), args.Error(1)
}

func (m *ScheduleRepositoryMock) Get(ctx context.Context, scheduleId string) (entity.Schedule, error) {
	args := m.Called(ctx, scheduleId)
	var out entity.Schedule
	if val := args.Get(0); val != nil {
		out = val.(entity.Schedule)
	}
	return out, args.Error(1)
}

func (m *ScheduleRepositoryMock) GetByUser(ctx context.Context, userId string) ([]entity.Schedule, error) {
	args := m.Called(ctx, userId)
	var out []entity.Schedule
	if val := args.Get(0); val != nil {
		out = val.([]entity.Schedule)
	}
	return out, args.Error(1)
}

func (m *ScheduleRepositoryMock) GetByOfficiant(ctx context.Context, officiantId string) ([]entity.Schedule, error) {
	args := m.Called(ctx, officiantId)
	var out []entity.Schedule
	if val := args.Get(0); val != nil {
		out = val.([]entity.Schedule)
	}
	return out, args.Error(1)
}

func (m *ScheduleRepositoryMock) UpdateStatus(ctx context.Context, scheduleId, status string) error {
	args := m.Called(ctx, scheduleId, status)
	return args.Error(0)
}

func (m *ScheduleRepositoryMock) Delete(ctx context.Context, scheduleId string) error {
	args := m.Called(ctx, scheduleId)
	return args.Error(0)
}

type BillRepositoryMock struct {
	mock.Mock
}

func (m *BillRepositoryMock) Create(ctx context.Context, bill entity.Bill) (string, error) {
	args := m.Called(ctx, bill)
	return args.String(0), args.Error(1)
}

func (m *BillRepositoryMock) Get(ctx context.Context, billId string) (entity.Bill, error) {
	args := m.Called(ctx, billId)
	var out entity.Bill
	if val := args.Get(0); val != nil {
		out = val.(entity.Bill)
	}
	return out, args.Error(1)
}

func (m *BillRepositoryMock) GetByUser(ctx context.Context, userId string) ([]entity.Bill, error) {
	args := m.Called(ctx, userId)
	var out []entity.Bill
	if val := args.Get(0); val != nil {
		out = val.([]entity.Bill)
	}
	return out, args.Error(1)
}

func (m *BillRepositoryMock) MarkPaid(ctx context.Context, billId string, paidAt time.Time) error {
	args := m.Called(ctx, billId, paidAt)
	return args.Error(0)
}

type SubscriberRepositoryMock struct {
	mock.Mock
}

func (m *SubscriberRepositoryMock) Create(ctx context.Context, subscriber entity.Subscriber) (string, error) {
	args := m.Called(ctx, subscriber)
	return args.String(0), args.Error(1)
}

func (m *SubscriberRepositoryMock) GetAll(ctx context.Context) ([]entity.Subscriber, error) {
	args := m.Called(ctx)
	var out []entity.Subscriber
	if val := args.Get(0); val != nil {
		out = val.([]entity.Subscriber)
	}
	return out, args.Error(1)
}

package usecase

import (
	"context"
	"errors"

	"vowline/internal/entity"
	"vowline/internal/repository"
)

var (
	ErrMissingMessageFields = errors.New("roomId, sender, senderName and content are required")
	ErrNotMessageSender     = errors.New("only the sender can modify this message")
	ErrProposalViaSend      = errors.New("booking proposals must go through the proposal flow")
)

type MessageUsecase interface {
	Send(ctx context.Context, message entity.ChatMessage) (entity.ChatMessage, error)
	Get(ctx context.Context, id string) (entity.ChatMessage, error)
	MarkRead(ctx context.Context, messageIds []string, userId, userName string) error
	AddReaction(ctx context.Context, id, emoji, userId, userName string) (entity.ChatMessage, error)
	RemoveReaction(ctx context.Context, id, emoji, userId string) (entity.ChatMessage, error)
	Edit(ctx context.Context, id, userId, newContent string) (entity.ChatMessage, error)
	Delete(ctx context.Context, id, userId string) error
}

type messageUsecase struct {
	messageRepo repository.MessageRepository
}

func NewMessageUsecase(messageRepo repository.MessageRepository) MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
	}
}

// Send validates and persists one chat message. File and system messages may
// carry empty text content when they have a payload. Booking proposals are not
// plain messages: their lifecycle (forced pending, exactly-once resolution)
// belongs to BookingUsecase, so any booking payload here is rejected.
func (m *messageUsecase) Send(ctx context.Context, message entity.ChatMessage) (entity.ChatMessage, error) {
	if message.Type == entity.MessageTypeBookingProposal || message.Booking != nil {
		return entity.ChatMessage{}, ErrProposalViaSend
	}
	if message.Type == "" {
		message.Type = entity.MessageTypeText
	}

	hasContent := message.Content != "" || message.FileData != nil || message.Type == entity.MessageTypeSystem
	if message.RoomId == "" || message.Sender == "" || message.SenderName == "" || !hasContent {
		return entity.ChatMessage{}, ErrMissingMessageFields
	}

	return m.messageRepo.Create(ctx, message)
}

func (m *messageUsecase) Get(ctx context.Context, id string) (entity.ChatMessage, error) {
	return m.messageRepo.Get(ctx, id)
}

func (m *messageUsecase) MarkRead(ctx context.Context, messageIds []string, userId, userName string) error {
	if len(messageIds) == 0 || userId == "" {
		return ErrMissingMessageFields
	}
	return m.messageRepo.MarkAsRead(ctx, messageIds, userId, userName)
}

func (m *messageUsecase) AddReaction(ctx context.Context, id, emoji, userId, userName string) (entity.ChatMessage, error) {
	if id == "" || emoji == "" || userId == "" {
		return entity.ChatMessage{}, ErrMissingMessageFields
	}
	return m.messageRepo.AddReaction(ctx, id, emoji, userId, userName)
}

func (m *messageUsecase) RemoveReaction(ctx context.Context, id, emoji, userId string) (entity.ChatMessage, error) {
	if id == "" || emoji == "" || userId == "" {
		return entity.ChatMessage{}, ErrMissingMessageFields
	}
	return m.messageRepo.RemoveReaction(ctx, id, emoji, userId)
}

// Edit replaces a message's content. Only the original sender may edit.
func (m *messageUsecase) Edit(ctx context.Context, id, userId, newContent string) (entity.ChatMessage, error) {
	if newContent == "" {
		return entity.ChatMessage{}, ErrMissingMessageFields
	}

	existing, err := m.messageRepo.Get(ctx, id)
	if err != nil {
		return entity.ChatMessage{}, err
	}
	if existing.Sender != userId {
		return entity.ChatMessage{}, ErrNotMessageSender
	}

	return m.messageRepo.Edit(ctx, id, newContent)
}

// Delete soft-deletes a message. Only the original sender may delete.
func (m *messageUsecase) Delete(ctx context.Context, id, userId string) error {
	existing, err := m.messageRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.Sender != userId {
		return ErrNotMessageSender
	}

	return m.messageRepo.SoftDelete(ctx, id)
}

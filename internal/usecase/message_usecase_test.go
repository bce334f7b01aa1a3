package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vowline/internal/entity"
	"vowline/internal/mocks"
)

func TestSendDefaultsToTextType(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewMessageUsecase(messageRepo)

	messageRepo.On("Create", mock.Anything, mock.MatchedBy(func(msg entity.ChatMessage) bool {
		return msg.Type == entity.MessageTypeText
	})).Return(entity.ChatMessage{Id: "m1"}, nil).Once()

	saved, err := uc.Send(context.Background(), entity.ChatMessage{
		RoomId:     "room-1",
		Sender:     "u1",
		SenderName: "Ana",
		Content:    "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, "m1", saved.Id)
	messageRepo.AssertExpectations(t)
}

func TestSendRejectsEmptyTextMessage(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewMessageUsecase(messageRepo)

	_, err := uc.Send(context.Background(), entity.ChatMessage{
		RoomId:     "room-1",
		Sender:     "u1",
		SenderName: "Ana",
	})

	assert.ErrorIs(t, err, ErrMissingMessageFields)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendAllowsFilePayloadWithoutText(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewMessageUsecase(messageRepo)

	messageRepo.On("Create", mock.Anything, mock.Anything).Return(entity.ChatMessage{}, nil).Once()

	_, err := uc.Send(context.Background(), entity.ChatMessage{
		RoomId:     "room-1",
		Sender:     "u1",
		SenderName: "Ana",
		Type:       entity.MessageTypeFile,
		FileData:   &entity.FileData{Filename: "contract.pdf"},
	})

	require.NoError(t, err)
	messageRepo.AssertExpectations(t)
}

func TestSendRejectsBookingProposals(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewMessageUsecase(messageRepo)

	// A proposal smuggled through the plain send path could be born resolved.
	_, err := uc.Send(context.Background(), entity.ChatMessage{
		RoomId:     "room-1",
		Sender:     "off-1",
		SenderName: "Pastor Dave",
		Type:       entity.MessageTypeBookingProposal,
		Content:    "offer",
		Booking: &entity.BookingProposal{
			Status:      entity.ProposalStatusAccepted,
			RespondedBy: "off-1",
		},
	})

	assert.ErrorIs(t, err, ErrProposalViaSend)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendRejectsBookingPayloadOnAnyType(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewMessageUsecase(messageRepo)

	_, err := uc.Send(context.Background(), entity.ChatMessage{
		RoomId:     "room-1",
		Sender:     "off-1",
		SenderName: "Pastor Dave",
		Type:       entity.MessageTypeText,
		Content:    "offer",
		Booking:    &entity.BookingProposal{Status: entity.ProposalStatusAccepted},
	})

	assert.ErrorIs(t, err, ErrProposalViaSend)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEditRejectsNonSender(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewMessageUsecase(messageRepo)

	messageRepo.On("Get", mock.Anything, "m1").Return(entity.ChatMessage{Id: "m1", Sender: "u1"}, nil).Once()

	_, err := uc.Edit(context.Background(), "m1", "u2", "changed")

	assert.ErrorIs(t, err, ErrNotMessageSender)
	messageRepo.AssertNotCalled(t, "Edit", mock.Anything, mock.Anything, mock.Anything)
	messageRepo.AssertExpectations(t)
}

func TestEditBySender(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewMessageUsecase(messageRepo)

	messageRepo.On("Get", mock.Anything, "m1").Return(entity.ChatMessage{Id: "m1", Sender: "u1"}, nil).Once()
	messageRepo.On("Edit", mock.Anything, "m1", "changed").Return(entity.ChatMessage{Id: "m1", Content: "changed", IsEdited: true}, nil).Once()

	edited, err := uc.Edit(context.Background(), "m1", "u1", "changed")

	require.NoError(t, err)
	assert.True(t, edited.IsEdited)
	messageRepo.AssertExpectations(t)
}

func TestDeleteRejectsNonSender(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewMessageUsecase(messageRepo)

	messageRepo.On("Get", mock.Anything, "m1").Return(entity.ChatMessage{Id: "m1", Sender: "u1"}, nil).Once()

	err := uc.Delete(context.Background(), "m1", "u2")

	assert.ErrorIs(t, err, ErrNotMessageSender)
	messageRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
	messageRepo.AssertExpectations(t)
}

func TestMarkReadRequiresMessageIds(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewMessageUsecase(messageRepo)

	err := uc.MarkRead(context.Background(), nil, "u1", "Ana")

	assert.ErrorIs(t, err, ErrMissingMessageFields)
	messageRepo.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vowline/internal/entity"
	"vowline/internal/mocks"
	"vowline/internal/repository"
)

func TestCreateProposalForcesPending(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewBookingUsecase(messageRepo)

	messageRepo.On("Create", mock.Anything, mock.MatchedBy(func(msg entity.ChatMessage) bool {
		return msg.Type == entity.MessageTypeBookingProposal &&
			msg.Booking != nil &&
			msg.Booking.Status == entity.ProposalStatusPending &&
			msg.Booking.RespondedBy == "" &&
			msg.Booking.RespondedAt == nil
	})).Return(entity.ChatMessage{Id: "m1"}, nil).Once()

	// The caller tries to smuggle in a pre-accepted proposal.
	proposal := entity.BookingProposal{
		Title:       "Garden Ceremony",
		Price:       1200,
		Currency:    "EUR",
		Status:      entity.ProposalStatusAccepted,
		RespondedBy: "off-1",
	}
	created, err := uc.CreateProposal(context.Background(), "room-1", "off-1", "Pastor Dave", "here is my offer", proposal)

	require.NoError(t, err)
	assert.Equal(t, "m1", created.Id)
	messageRepo.AssertExpectations(t)
}

func TestCreateProposalDefaults(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewBookingUsecase(messageRepo)

	messageRepo.On("Create", mock.Anything, mock.MatchedBy(func(msg entity.ChatMessage) bool {
		return msg.Booking.Title == "Wedding Ceremony Booking" &&
			msg.Booking.Currency == "USD" &&
			msg.Booking.ProposalId != "" &&
			msg.Content == "Wedding Ceremony Booking"
	})).Return(entity.ChatMessage{}, nil).Once()

	_, err := uc.CreateProposal(context.Background(), "room-1", "off-1", "Pastor Dave", "", entity.BookingProposal{Price: 500})

	require.NoError(t, err)
	messageRepo.AssertExpectations(t)
}

func TestCreateProposalMissingFields(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewBookingUsecase(messageRepo)

	_, err := uc.CreateProposal(context.Background(), "", "off-1", "Pastor Dave", "", entity.BookingProposal{})

	assert.ErrorIs(t, err, ErrMissingProposalFields)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRespondAccept(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewBookingUsecase(messageRepo)

	resolved := entity.ChatMessage{Id: "m1", Booking: &entity.BookingProposal{Status: entity.ProposalStatusAccepted}}
	messageRepo.On("UpdateBookingStatus", mock.Anything, "m1", entity.ProposalStatusAccepted, "couple-1", "Ana", mock.Anything).
		Return(resolved, nil).Once()

	updated, err := uc.Respond(context.Background(), "m1", "accept", "couple-1", "Ana")

	require.NoError(t, err)
	assert.Equal(t, entity.ProposalStatusAccepted, updated.Booking.Status)
	messageRepo.AssertExpectations(t)
}

func TestRespondAnythingElseDeclines(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewBookingUsecase(messageRepo)

	messageRepo.On("UpdateBookingStatus", mock.Anything, "m1", entity.ProposalStatusDeclined, "couple-1", "Ana", mock.Anything).
		Return(entity.ChatMessage{}, nil).Once()

	_, err := uc.Respond(context.Background(), "m1", "reject", "couple-1", "Ana")

	require.NoError(t, err)
	messageRepo.AssertExpectations(t)
}

func TestRespondAlreadyResolved(t *testing.T) {
	messageRepo := new(mocks.MessageRepositoryMock)
	uc := NewBookingUsecase(messageRepo)

	messageRepo.On("UpdateBookingStatus", mock.Anything, "m1", entity.ProposalStatusAccepted, "couple-2", "Ben", mock.Anything).
		Return(entity.ChatMessage{}, repository.ErrProposalAlreadyResolved).Once()

	_, err := uc.Respond(context.Background(), "m1", "accept", "couple-2", "Ben")

	assert.ErrorIs(t, err, repository.ErrProposalAlreadyResolved)
	messageRepo.AssertExpectations(t)
}

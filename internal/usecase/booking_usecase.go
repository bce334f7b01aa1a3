package usecase

import (
	"context"
	"errors"
	"time"

	"vowline/internal/entity"
	"vowline/internal/repository"
)

var ErrMissingProposalFields = errors.New("roomId, sender, senderName and proposal title are required")

// Default offer values match what the web client sends when the officiant
// leaves the package form untouched.
const (
	defaultProposalTitle    = "Wedding Ceremony Booking"
	defaultProposalCurrency = "USD"
)

type BookingUsecase interface {
	CreateProposal(ctx context.Context, roomId, sender, senderName, note string, proposal entity.BookingProposal) (entity.ChatMessage, error)
	Respond(ctx context.Context, messageId, action, responderId, responderName string) (entity.ChatMessage, error)
}

type bookingUsecase struct {
	messageRepo repository.MessageRepository
}

func NewBookingUsecase(messageRepo repository.MessageRepository) BookingUsecase {
	return &bookingUsecase{
		messageRepo: messageRepo,
	}
}

// CreateProposal persists a booking proposal as a chat message. The proposal
// always starts out pending regardless of what the caller supplied.
func (b *bookingUsecase) CreateProposal(ctx context.Context, roomId, sender, senderName, note string, proposal entity.BookingProposal) (entity.ChatMessage, error) {
	if roomId == "" || sender == "" || senderName == "" {
		return entity.ChatMessage{}, ErrMissingProposalFields
	}

	if proposal.Title == "" {
		proposal.Title = defaultProposalTitle
	}
	if proposal.Currency == "" {
		proposal.Currency = defaultProposalCurrency
	}
	if proposal.ProposalId == "" {
		proposal.ProposalId = entity.NewProposalId()
	}
	proposal.Status = entity.ProposalStatusPending
	proposal.RespondedBy = ""
	proposal.RespondedByName = ""
	proposal.RespondedAt = nil

	content := note
	if content == "" {
		content = proposal.Title
	}

	return b.messageRepo.Create(ctx, entity.ChatMessage{
		RoomId:     roomId,
		Sender:     sender,
		SenderName: senderName,
		Type:       entity.MessageTypeBookingProposal,
		Content:    content,
		Booking:    &proposal,
	})
}

// Respond resolves a pending proposal to accepted or declined. The storage
// layer guarantees exactly-once resolution; a second response surfaces as
// repository.ErrProposalAlreadyResolved.
func (b *bookingUsecase) Respond(ctx context.Context, messageId, action, responderId, responderName string) (entity.ChatMessage, error) {
	if messageId == "" || responderId == "" {
		return entity.ChatMessage{}, ErrMissingProposalFields
	}

	status := entity.ResolveAction(action)
	return b.messageRepo.UpdateBookingStatus(ctx, messageId, status, responderId, responderName, time.Now())
}

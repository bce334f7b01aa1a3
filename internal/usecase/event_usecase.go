package usecase

import (
	"context"
	"errors"

	"vowline/internal/entity"
	"vowline/internal/repository"
)

var (
	ErrMissingEventFields = errors.New("title, ceremonyType and userId are required")
	ErrNotEventOwner      = errors.New("only the event owner can modify this event")
)

type EventUsecase interface {
	Create(ctx context.Context, event entity.Event) (string, error)
	Get(ctx context.Context, eventId string) (entity.Event, error)
	ListByUser(ctx context.Context, userId string) ([]entity.Event, error)
	ListByOfficiant(ctx context.Context, officiantId string) ([]entity.Event, error)
	Update(ctx context.Context, event entity.Event, userId string) error
	Delete(ctx context.Context, eventId, userId string) error
}

type eventUsecase struct {
	eventRepo repository.EventRepository
}

func NewEventUsecase(eventRepo repository.EventRepository) EventUsecase {
	return &eventUsecase{
		eventRepo: eventRepo,
	}
}

func (e *eventUsecase) Create(ctx context.Context, event entity.Event) (string, error) {
	if event.Title == "" || event.CeremonyType == "" || event.UserId == "" {
		return "", ErrMissingEventFields
	}
	return e.eventRepo.Create(ctx, event)
}

func (e *eventUsecase) Get(ctx context.Context, eventId string) (entity.Event, error) {
	return e.eventRepo.Get(ctx, eventId)
}

func (e *eventUsecase) ListByUser(ctx context.Context, userId string) ([]entity.Event, error) {
	return e.eventRepo.GetByUser(ctx, userId)
}

func (e *eventUsecase) ListByOfficiant(ctx context.Context, officiantId string) ([]entity.Event, error) {
	return e.eventRepo.GetByOfficiant(ctx, officiantId)
}

// Update lets the owning couple or the assigned officiant change an event.
func (e *eventUsecase) Update(ctx context.Context, event entity.Event, userId string) error {
	existing, err := e.eventRepo.Get(ctx, event.Id)
	if err != nil {
		return err
	}
	if existing.UserId != userId && existing.OfficiantId != userId {
		return ErrNotEventOwner
	}

	return e.eventRepo.Update(ctx, event)
}

func (e *eventUsecase) Delete(ctx context.Context, eventId, userId string) error {
	existing, err := e.eventRepo.Get(ctx, eventId)
	if err != nil {
		return err
	}
	if existing.UserId != userId {
		return ErrNotEventOwner
	}

	return e.eventRepo.Delete(ctx, eventId)
}

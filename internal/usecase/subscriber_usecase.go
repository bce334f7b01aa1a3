package usecase

import (
	"context"
	"errors"
	"strings"

	"vowline/internal/entity"
	"vowline/internal/repository"
)

var ErrMissingSubscriberEmail = errors.New("email is required")

type SubscriberUsecase interface {
	Subscribe(ctx context.Context, email string) (string, error)
	List(ctx context.Context) ([]entity.Subscriber, error)
}

type subscriberUsecase struct {
	subscriberRepo repository.SubscriberRepository
}

func NewSubscriberUsecase(subscriberRepo repository.SubscriberRepository) SubscriberUsecase {
	return &subscriberUsecase{
		subscriberRepo: subscriberRepo,
	}
}

func (s *subscriberUsecase) Subscribe(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrMissingSubscriberEmail
	}

	return s.subscriberRepo.Create(ctx, entity.Subscriber{Email: email})
}

func (s *subscriberUsecase) List(ctx context.Context) ([]entity.Subscriber, error) {
	return s.subscriberRepo.GetAll(ctx)
}

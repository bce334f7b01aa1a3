package usecase

import (
	"context"
	"testing"

	"vowline/internal/entity"
	"vowline/internal/mocks"
	"vowline/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubscribeNormalizesEmail(t *testing.T) {
	subscriberRepo := new(mocks.SubscriberRepositoryMock)
	uc := NewSubscriberUsecase(subscriberRepo)

	subscriberRepo.On("Create", mock.Anything, entity.Subscriber{Email: "ana@example.com"}).
		Return("sub-1", nil).Once()

	id, err := uc.Subscribe(context.Background(), "  Ana@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "sub-1", id)

	subscriberRepo.AssertExpectations(t)
}

func TestSubscribeMissingEmail(t *testing.T) {
	subscriberRepo := new(mocks.SubscriberRepositoryMock)
	uc := NewSubscriberUsecase(subscriberRepo)

	_, err := uc.Subscribe(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrMissingSubscriberEmail)

	subscriberRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubscribeDuplicatePassesThrough(t *testing.T) {
	subscriberRepo := new(mocks.SubscriberRepositoryMock)
	uc := NewSubscriberUsecase(subscriberRepo)

	subscriberRepo.On("Create", mock.Anything, mock.Anything).
		Return("", repository.ErrAlreadySubscribed).Once()

	_, err := uc.Subscribe(context.Background(), "ana@example.com")
	assert.ErrorIs(t, err, repository.ErrAlreadySubscribed)

	subscriberRepo.AssertExpectations(t)
}

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

func TestCreateNoteNotifiesRecipient(t *testing.T) {
	noteRepo := new(mocks.NoteRepositoryMock)
	notificationRepo := new(mocks.NotificationRepositoryMock)
	uc := NewNoteUsecase(noteRepo, notificationRepo)

	noteRepo.On("Create", mock.Anything, mock.Anything).Return("note-1", nil).Once()
	notificationRepo.On("Create", mock.Anything, mock.MatchedBy(func(n entity.Notification) bool {
		return n.UserId == "u2" && n.Type == "note"
	})).Return("notif-1", nil).Once()

	id, err := uc.Create(context.Background(), entity.Note{
		Title:        "Venue update",
		Message:      "Gates open at noon",
		FromUserId:   "off-1",
		FromUserName: "Pastor Dave",
		ToUserId:     "u2",
	})

	require.NoError(t, err)
	assert.Equal(t, "note-1", id)
	noteRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
}

func TestCreateNoteSurvivesNotificationFailure(t *testing.T) {
	noteRepo := new(mocks.NoteRepositoryMock)
	notificationRepo := new(mocks.NotificationRepositoryMock)
	uc := NewNoteUsecase(noteRepo, notificationRepo)

	noteRepo.On("Create", mock.Anything, mock.Anything).Return("note-1", nil).Once()
	notificationRepo.On("Create", mock.Anything, mock.Anything).Return("", assert.AnError).Once()

	id, err := uc.Create(context.Background(), entity.Note{
		Title:      "Venue update",
		Message:    "Gates open at noon",
		FromUserId: "off-1",
		ToUserId:   "u2",
	})

	require.NoError(t, err)
	assert.Equal(t, "note-1", id)
}

func TestCreateNoteMissingFields(t *testing.T) {
	noteRepo := new(mocks.NoteRepositoryMock)
	uc := NewNoteUsecase(noteRepo, new(mocks.NotificationRepositoryMock))

	_, err := uc.Create(context.Background(), entity.Note{Title: "Venue update"})

	assert.ErrorIs(t, err, ErrMissingNoteFields)
	noteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

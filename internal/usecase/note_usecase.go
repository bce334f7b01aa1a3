package usecase

import (
	"context"
	"errors"
	"log"

	"vowline/internal/entity"
	"vowline/internal/repository"
)

var ErrMissingNoteFields = errors.New("title, message, fromUserId and toUserId are required")

type NoteUsecase interface {
	Create(ctx context.Context, note entity.Note) (string, error)
	ListForUser(ctx context.Context, userId string) ([]entity.Note, error)
	MarkRead(ctx context.Context, noteId string) error
	Delete(ctx context.Context, noteId string) error
}

type noteUsecase struct {
	noteRepo         repository.NoteRepository
	notificationRepo repository.NotificationRepository
}

func NewNoteUsecase(noteRepo repository.NoteRepository, notificationRepo repository.NotificationRepository) NoteUsecase {
	return &noteUsecase{
		noteRepo:         noteRepo,
		notificationRepo: notificationRepo,
	}
}

// Create stores the note and notifies the recipient. The notification is best
// effort: a failure there must not lose the note.
func (n *noteUsecase) Create(ctx context.Context, note entity.Note) (string, error) {
	if note.Title == "" || note.Message == "" || note.FromUserId == "" || note.ToUserId == "" {
		return "", ErrMissingNoteFields
	}

	noteId, err := n.noteRepo.Create(ctx, note)
	if err != nil {
		return "", err
	}

	_, err = n.notificationRepo.Create(ctx, entity.Notification{
		UserId:  note.ToUserId,
		Message: note.FromUserName + " sent you a note: " + note.Title,
		Type:    "note",
	})
	if err != nil {
		log.Printf("create note notification for %s: %v", note.ToUserId, err)
	}

	return noteId, nil
}

func (n *noteUsecase) ListForUser(ctx context.Context, userId string) ([]entity.Note, error) {
	return n.noteRepo.GetByRecipient(ctx, userId)
}

func (n *noteUsecase) MarkRead(ctx context.Context, noteId string) error {
	return n.noteRepo.MarkRead(ctx, noteId)
}

func (n *noteUsecase) Delete(ctx context.Context, noteId string) error {
	return n.noteRepo.Delete(ctx, noteId)
}

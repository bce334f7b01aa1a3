package usecase

import (
	"context"

	"vowline/internal/entity"
	"vowline/internal/repository"
)

type NotificationUsecase interface {
	ListForUser(ctx context.Context, userId string) ([]entity.Notification, error)
	ToggleRead(ctx context.Context, notificationId string) (entity.Notification, error)
}

type notificationUsecase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(notificationRepo repository.NotificationRepository) NotificationUsecase {
	return &notificationUsecase{
		notificationRepo: notificationRepo,
	}
}

func (n *notificationUsecase) ListForUser(ctx context.Context, userId string) ([]entity.Notification, error) {
	return n.notificationRepo.GetByUser(ctx, userId)
}

func (n *notificationUsecase) ToggleRead(ctx context.Context, notificationId string) (entity.Notification, error) {
	return n.notificationRepo.ToggleRead(ctx, notificationId)
}

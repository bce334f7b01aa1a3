package usecase

import (
	"context"
	"errors"
	"log"

	"vowline/internal/entity"
	"vowline/internal/repository"
)

var (
	ErrMissingScheduleFields = errors.New("fromUserId and officiantId are required")
	ErrInvalidScheduleStatus = errors.New("status must be approved or rejected")
)

type ScheduleUsecase interface {
	Create(ctx context.Context, schedule entity.Schedule) (string, error)
	ListByUser(ctx context.Context, userId string) ([]entity.Schedule, error)
	ListByOfficiant(ctx context.Context, officiantId string) ([]entity.Schedule, error)
	Respond(ctx context.Context, scheduleId, status string) (entity.Schedule, error)
	Delete(ctx context.Context, scheduleId string) error
}

type scheduleUsecase struct {
	scheduleRepo     repository.ScheduleRepository
	notificationRepo repository.NotificationRepository
}

func NewScheduleUsecase(scheduleRepo repository.ScheduleRepository, notificationRepo repository.NotificationRepository) ScheduleUsecase {
	return &scheduleUsecase{
		scheduleRepo:     scheduleRepo,
		notificationRepo: notificationRepo,
	}
}

// Create files a schedule request and notifies the officiant. The notification
// is best effort.
func (s *scheduleUsecase) Create(ctx context.Context, schedule entity.Schedule) (string, error) {
	if schedule.FromUserId == "" || schedule.OfficiantId == "" {
		return "", ErrMissingScheduleFields
	}
	schedule.ApprovedStatus = entity.ScheduleStatusPending

	scheduleId, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		return "", err
	}

	_, err = s.notificationRepo.Create(ctx, entity.Notification{
		UserId:  schedule.OfficiantId,
		Message: schedule.FromUserName + " requested a schedule",
		Type:    "schedule",
	})
	if err != nil {
		log.Printf("create schedule notification for %s: %v", schedule.OfficiantId, err)
	}

	return scheduleId, nil
}

func (s *scheduleUsecase) ListByUser(ctx context.Context, userId string) ([]entity.Schedule, error) {
	return s.scheduleRepo.GetByUser(ctx, userId)
}

func (s *scheduleUsecase) ListByOfficiant(ctx context.Context, officiantId string) ([]entity.Schedule, error) {
	return s.scheduleRepo.GetByOfficiant(ctx, officiantId)
}

// Respond moves a request to approved or rejected and notifies the couple.
func (s *scheduleUsecase) Respond(ctx context.Context, scheduleId, status string) (entity.Schedule, error) {
	if status != entity.ScheduleStatusApproved && status != entity.ScheduleStatusRejected {
		return entity.Schedule{}, ErrInvalidScheduleStatus
	}

	err := s.scheduleRepo.UpdateStatus(ctx, scheduleId, status)
	if err != nil {
		return entity.Schedule{}, err
	}

	schedule, err := s.scheduleRepo.Get(ctx, scheduleId)
	if err != nil {
		return entity.Schedule{}, err
	}

	_, err = s.notificationRepo.Create(ctx, entity.Notification{
		UserId:  schedule.FromUserId,
		Message: schedule.OfficiantName + " " + status + " your schedule request",
		Type:    "schedule",
	})
	if err != nil {
		log.Printf("create schedule response notification for %s: %v", schedule.FromUserId, err)
	}

	return schedule, nil
}

func (s *scheduleUsecase) Delete(ctx context.Context, scheduleId string) error {
	return s.scheduleRepo.Delete(ctx, scheduleId)
}

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

func TestCreateScheduleNotifiesOfficiant(t *testing.T) {
	scheduleRepo := new(mocks.ScheduleRepositoryMock)
	notificationRepo := new(mocks.NotificationRepositoryMock)
	uc := NewScheduleUsecase(scheduleRepo, notificationRepo)

	scheduleRepo.On("Create", mock.Anything, mock.MatchedBy(func(s entity.Schedule) bool {
		return s.ApprovedStatus == entity.ScheduleStatusPending
	})).Return("sched-1", nil).Once()
	notificationRepo.On("Create", mock.Anything, mock.MatchedBy(func(n entity.Notification) bool {
		return n.UserId == "off-1" && n.Type == "schedule"
	})).Return("notif-1", nil).Once()

	id, err := uc.Create(context.Background(), entity.Schedule{
		FromUserId:   "u1",
		FromUserName: "Ana",
		OfficiantId:  "off-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "sched-1", id)
	scheduleRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
}

func TestCreateScheduleSurvivesNotificationFailure(t *testing.T) {
	scheduleRepo := new(mocks.ScheduleRepositoryMock)
	notificationRepo := new(mocks.NotificationRepositoryMock)
	uc := NewScheduleUsecase(scheduleRepo, notificationRepo)

	scheduleRepo.On("Create", mock.Anything, mock.Anything).Return("sched-1", nil).Once()
	notificationRepo.On("Create", mock.Anything, mock.Anything).Return("", assert.AnError).Once()

	id, err := uc.Create(context.Background(), entity.Schedule{FromUserId: "u1", OfficiantId: "off-1"})

	require.NoError(t, err)
	assert.Equal(t, "sched-1", id)
}

func TestRespondScheduleInvalidStatus(t *testing.T) {
	scheduleRepo := new(mocks.ScheduleRepositoryMock)
	uc := NewScheduleUsecase(scheduleRepo, new(mocks.NotificationRepositoryMock))

	_, err := uc.Respond(context.Background(), "sched-1", "maybe")

	assert.ErrorIs(t, err, ErrInvalidScheduleStatus)
	scheduleRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestRespondScheduleApprovedNotifiesCouple(t *testing.T) {
	scheduleRepo := new(mocks.ScheduleRepositoryMock)
	notificationRepo := new(mocks.NotificationRepositoryMock)
	uc := NewScheduleUsecase(scheduleRepo, notificationRepo)

	schedule := entity.Schedule{
		Id:            "sched-1",
		FromUserId:    "u1",
		OfficiantId:   "off-1",
		OfficiantName: "Pastor Dave",
	}
	scheduleRepo.On("UpdateStatus", mock.Anything, "sched-1", entity.ScheduleStatusApproved).Return(nil).Once()
	scheduleRepo.On("Get", mock.Anything, "sched-1").Return(schedule, nil).Once()
	notificationRepo.On("Create", mock.Anything, mock.MatchedBy(func(n entity.Notification) bool {
		return n.UserId == "u1" && n.Type == "schedule"
	})).Return("notif-1", nil).Once()

	got, err := uc.Respond(context.Background(), "sched-1", entity.ScheduleStatusApproved)

	require.NoError(t, err)
	assert.Equal(t, "sched-1", got.Id)
	scheduleRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
}

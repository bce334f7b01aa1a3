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

func TestCreateBillStartsUnpaid(t *testing.T) {
	billRepo := new(mocks.BillRepositoryMock)
	uc := NewBillUsecase(billRepo)

	billRepo.On("Create", mock.Anything, mock.MatchedBy(func(bill entity.Bill) bool {
		return bill.Status == entity.BillStatusUnpaid && !bill.IssuedAt.IsZero()
	})).Return("bill-1", nil).Once()

	id, err := uc.Create(context.Background(), entity.Bill{
		UserId:  "u1",
		EventId: "ev-1",
		Amount:  1500,
		Status:  entity.BillStatusPaid,
	})

	require.NoError(t, err)
	assert.Equal(t, "bill-1", id)
	billRepo.AssertExpectations(t)
}

func TestCreateBillMissingFields(t *testing.T) {
	billRepo := new(mocks.BillRepositoryMock)
	uc := NewBillUsecase(billRepo)

	_, err := uc.Create(context.Background(), entity.Bill{UserId: "u1", EventId: "ev-1"})

	assert.ErrorIs(t, err, ErrMissingBillFields)
	billRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPayBill(t *testing.T) {
	billRepo := new(mocks.BillRepositoryMock)
	uc := NewBillUsecase(billRepo)

	billRepo.On("Get", mock.Anything, "bill-1").Return(entity.Bill{Id: "bill-1", Status: entity.BillStatusUnpaid}, nil).Once()
	billRepo.On("MarkPaid", mock.Anything, "bill-1", mock.Anything).Return(nil).Once()

	paid, err := uc.Pay(context.Background(), "bill-1")

	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	billRepo.AssertExpectations(t)
}

func TestPayBillTwiceConflicts(t *testing.T) {
	billRepo := new(mocks.BillRepositoryMock)
	uc := NewBillUsecase(billRepo)

	billRepo.On("Get", mock.Anything, "bill-1").Return(entity.Bill{Id: "bill-1", Status: entity.BillStatusPaid}, nil).Once()

	_, err := uc.Pay(context.Background(), "bill-1")

	assert.ErrorIs(t, err, ErrBillAlreadyPaid)
	billRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	billRepo.AssertExpectations(t)
}

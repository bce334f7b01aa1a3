package usecase

import (
	"context"
	"errors"
	"time"

	"vowline/internal/entity"
	"vowline/internal/repository"
)

var (
	ErrMissingBillFields = errors.New("userId, eventId and amount are required")
	ErrBillAlreadyPaid   = errors.New("bill is already paid")
)

type BillUsecase interface {
	Create(ctx context.Context, bill entity.Bill) (string, error)
	Get(ctx context.Context, billId string) (entity.Bill, error)
	ListByUser(ctx context.Context, userId string) ([]entity.Bill, error)
	Pay(ctx context.Context, billId string) (entity.Bill, error)
}

type billUsecase struct {
	billRepo repository.BillRepository
}

func NewBillUsecase(billRepo repository.BillRepository) BillUsecase {
	return &billUsecase{
		billRepo: billRepo,
	}
}

func (b *billUsecase) Create(ctx context.Context, bill entity.Bill) (string, error) {
	if bill.UserId == "" || bill.EventId == "" || bill.Amount <= 0 {
		return "", ErrMissingBillFields
	}
	bill.Status = entity.BillStatusUnpaid
	bill.IssuedAt = time.Now()
	return b.billRepo.Create(ctx, bill)
}

func (b *billUsecase) Get(ctx context.Context, billId string) (entity.Bill, error) {
	return b.billRepo.Get(ctx, billId)
}

func (b *billUsecase) ListByUser(ctx context.Context, userId string) ([]entity.Bill, error) {
	return b.billRepo.GetByUser(ctx, userId)
}

// Pay settles an unpaid bill. Paying twice is a conflict.
func (b *billUsecase) Pay(ctx context.Context, billId string) (entity.Bill, error) {
	bill, err := b.billRepo.Get(ctx, billId)
	if err != nil {
		return entity.Bill{}, err
	}
	if bill.Status == entity.BillStatusPaid {
		return entity.Bill{}, ErrBillAlreadyPaid
	}

	now := time.Now()
	err = b.billRepo.MarkPaid(ctx, billId, now)
	if err != nil {
		return entity.Bill{}, err
	}

	bill.Status = entity.BillStatusPaid
	bill.PaidAt = &now
	return bill, nil
}

package usecase

import (
	"context"
	"errors"

	"vowline/internal/entity"
	"vowline/internal/repository"
)

var (
	ErrMissingReviewFields = errors.New("userId, officiantId, eventId and rating are required")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)

type ReviewUsecase interface {
	Create(ctx context.Context, review entity.Review) (string, error)
	ListForOfficiant(ctx context.Context, officiantId string, includeHidden bool) ([]entity.Review, error)
	SetVisibility(ctx context.Context, reviewId string, visible bool) error
	Delete(ctx context.Context, reviewId string) error
}

type reviewUsecase struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewUsecase(reviewRepo repository.ReviewRepository) ReviewUsecase {
	return &reviewUsecase{
		reviewRepo: reviewRepo,
	}
}

func (r *reviewUsecase) Create(ctx context.Context, review entity.Review) (string, error) {
	if review.UserId == "" || review.OfficiantId == "" || review.EventId == "" {
		return "", ErrMissingReviewFields
	}
	if review.Rating < 1 || review.Rating > 5 {
		return "", ErrInvalidRating
	}

	// New reviews are visible until the officiant hides them.
	review.IsVisible = true
	return r.reviewRepo.Create(ctx, review)
}

func (r *reviewUsecase) ListForOfficiant(ctx context.Context, officiantId string, includeHidden bool) ([]entity.Review, error) {
	return r.reviewRepo.GetByOfficiant(ctx, officiantId, !includeHidden)
}

func (r *reviewUsecase) SetVisibility(ctx context.Context, reviewId string, visible bool) error {
	return r.reviewRepo.SetVisibility(ctx, reviewId, visible)
}

func (r *reviewUsecase) Delete(ctx context.Context, reviewId string) error {
	return r.reviewRepo.Delete(ctx, reviewId)
}

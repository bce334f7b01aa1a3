package usecase

import (
	"context"
	"vowline/internal/entity"
	"vowline/internal/repository"
)

type UserUsecase interface {
	Get(ctx context.Context, userId string) (entity.User, error)
	Update(ctx context.Context, user entity.User) error
	ListOfficiants(ctx context.Context) ([]entity.User, error)
	ListByIds(ctx context.Context, userIds []string) ([]entity.User, error)
}

type userUsecase struct {
	userRepo repository.UserRepository
}

func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
	}
}

func (u *userUsecase) Get(ctx context.Context, userId string) (entity.User, error) {
	user, err := u.userRepo.Get(ctx, userId)
	if err != nil {
		return entity.User{}, err
	}

	user.Password = ""
	return user, nil
}

func (u *userUsecase) Update(ctx context.Context, user entity.User) error {
	return u.userRepo.Update(ctx, user)
}

// ListOfficiants returns verified officiants for the couple-facing browse
// and chat-partner pickers.
func (u *userUsecase) ListOfficiants(ctx context.Context) ([]entity.User, error) {
	officiants, err := u.userRepo.Index(ctx, entity.UserIndexFilter{Role: entity.UserRoleOfficiant})
	if err != nil {
		return nil, err
	}

	for i := range officiants {
		officiants[i].Password = ""
	}
	return officiants, nil
}

func (u *userUsecase) ListByIds(ctx context.Context, userIds []string) ([]entity.User, error) {
	if len(userIds) == 0 {
		return nil, nil
	}
	return u.userRepo.Index(ctx, entity.UserIndexFilter{Ids: userIds})
}

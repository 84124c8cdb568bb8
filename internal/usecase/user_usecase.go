package usecase

import (
	"context"
	"fmt"

	"github.com/salad-karo/storefront/internal/models"
	"github.com/salad-karo/storefront/internal/repo/mongodb"
)

type UserUsecase interface {
	Register(ctx context.Context, user *models.User) (*models.User, error)
}

type userUsecase struct {
	userRepo mongodb.UserRepository
}

func NewUserUsecase(userRepo mongodb.UserRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
	}
}

func (uc *userUsecase) Register(ctx context.Context, user *models.User) (*models.User, error) {
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

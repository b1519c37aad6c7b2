package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// AuthService 凭证校验：api-key -> 用户
type AuthService interface {
	Authenticate(ctx context.Context, apiKey string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Authenticate(ctx context.Context, apiKey string) (*model.User, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}
	u, err := s.userRepo.GetByAPIKey(ctx, apiKey)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidAPIKey
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

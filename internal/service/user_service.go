package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// UserService 账户自身的操作（目前只有凭证轮换）
type UserService interface {
	// RotateAPIKey 原地替换凭证；新 key 已绑定到别的用户时返回 ErrAPIKeyTaken
	RotateAPIKey(ctx context.Context, caller *model.User, newKey string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) RotateAPIKey(ctx context.Context, caller *model.User, newKey string) error {
	owner, err := s.userRepo.GetByAPIKey(ctx, newKey)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if owner != nil && owner.ID != caller.ID {
		return ErrAPIKeyTaken
	}
	if owner != nil && owner.ID == caller.ID {
		// 换成自己现有的 key，无事发生
		return nil
	}
	return s.userRepo.UpdateAPIKey(ctx, caller.ID, newKey)
}

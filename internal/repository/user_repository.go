package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*model.User, error)
	// GetByAPIKey 按凭证查用户，未命中返回 gorm.ErrRecordNotFound
	GetByAPIKey(ctx context.Context, apiKey string) (*model.User, error)
	ListByIDs(ctx context.Context, ids []uint) ([]*model.User, error)
	UpdateAPIKey(ctx context.Context, userID uint, apiKey string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) ListByIDs(ctx context.Context, ids []uint) ([]*model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*model.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *userRepository) UpdateAPIKey(ctx context.Context, userID uint, apiKey string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Update("api_key", apiKey).Error
}

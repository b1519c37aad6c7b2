package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

type MediaRepository interface {
	Create(ctx context.Context, media *model.Media) error
	GetByID(ctx context.Context, id uint) (*model.Media, error)
	// ListOwnedByIDs 只返回 ids 中存在且属于 ownerID 的媒体行
	ListOwnedByIDs(ctx context.Context, ownerID uint, ids []uint) ([]model.Media, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository { return &mediaRepository{db: db} }

func (r *mediaRepository) Create(ctx context.Context, media *model.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *mediaRepository) GetByID(ctx context.Context, id uint) (*model.Media, error) {
	var m model.Media
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mediaRepository) ListOwnedByIDs(ctx context.Context, ownerID uint, ids []uint) ([]model.Media, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var media []model.Media
	err := r.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, ownerID).
		Order("id").
		Find(&media).Error
	return media, err
}

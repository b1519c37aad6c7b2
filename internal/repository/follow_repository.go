package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/microblog/internal/model"
)

type FollowRepository interface {
	Create(ctx context.Context, followerID, followedID uint) error
	Delete(ctx context.Context, followerID, followedID uint) error
	Exists(ctx context.Context, followerID, followedID uint) (bool, error)
	// ListFollowingIDs 返回 userID 关注的人，按关注时间倒序
	ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error)
	// ListFollowerIDs 返回关注 userID 的人，按关注时间倒序
	ListFollowerIDs(ctx context.Context, userID uint) ([]uint, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Create(ctx context.Context, followerID, followedID uint) error {
	f := &model.Follow{FollowerID: followerID, FollowedID: followedID}
	// 幂等：重复关注不报错
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (r *followRepository) Delete(ctx context.Context, followerID, followedID uint) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&model.Follow{}).Error
}

func (r *followRepository) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *followRepository) ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Select("followed_id").
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Scan(&ids).Error
	return ids, err
}

func (r *followRepository) ListFollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Select("follower_id").
		Where("followed_id = ?", userID).
		Order("created_at DESC").
		Scan(&ids).Error
	return ids, err
}

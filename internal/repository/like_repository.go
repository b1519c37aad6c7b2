package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/microblog/internal/model"
)

type LikeRepository interface {
	Create(ctx context.Context, userID, tweetID uint) error
	Delete(ctx context.Context, userID, tweetID uint) error
	CountByTweet(ctx context.Context, tweetID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

func (r *likeRepository) Create(ctx context.Context, userID, tweetID uint) error {
	l := &model.Like{UserID: userID, TweetID: tweetID}
	// 幂等：重复点赞不报错
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(l).Error
}

func (r *likeRepository) Delete(ctx context.Context, userID, tweetID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&model.Like{}).Error
}

func (r *likeRepository) CountByTweet(ctx context.Context, tweetID uint) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("tweet_id = ?", tweetID).
		Count(&cnt).Error
	return cnt, err
}

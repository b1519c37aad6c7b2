package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/microblog/internal/model"
)

type TweetRepository interface {
	// Create 在一个事务内落地推文和附件关联
	Create(ctx context.Context, tweet *model.Tweet, media []model.Media) error
	GetByID(ctx context.Context, id uint) (*model.Tweet, error)
	// Delete 级联删除点赞与附件关联，媒体行本身保留
	Delete(ctx context.Context, tweet *model.Tweet) error
	// ListByAuthors 按作者集合查询，created_at 倒序、id 倒序兜底
	ListByAuthors(ctx context.Context, authorIDs []uint, offset, limit int) ([]*model.Tweet, error)
	CountByAuthors(ctx context.Context, authorIDs []uint) (int64, error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository { return &tweetRepository{db: db} }

func (r *tweetRepository) Create(ctx context.Context, tweet *model.Tweet, media []model.Media) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(tweet).Error; err != nil {
			return err
		}
		if len(media) == 0 {
			return nil
		}
		return tx.Model(tweet).Association("Media").Append(&media)
	})
}

func (r *tweetRepository) GetByID(ctx context.Context, id uint) (*model.Tweet, error) {
	var t model.Tweet
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tweetRepository) Delete(ctx context.Context, tweet *model.Tweet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", tweet.ID).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Model(tweet).Association("Media").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Tweet{}, tweet.ID).Error
	})
}

func (r *tweetRepository) ListByAuthors(ctx context.Context, authorIDs []uint, offset, limit int) ([]*model.Tweet, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var tweets []*model.Tweet
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("media.id") }).
		Preload("Likes", func(db *gorm.DB) *gorm.DB { return db.Order("likes.created_at") }).
		Preload("Likes.User").
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&tweets).Error
	return tweets, err
}

func (r *tweetRepository) CountByAuthors(ctx context.Context, authorIDs []uint) (int64, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Tweet{}).
		Where("user_id IN ?", authorIDs).
		Count(&cnt).Error
	return cnt, err
}

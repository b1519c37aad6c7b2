package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// TweetService 推文与点赞
type TweetService interface {
	// Create 建推文；mediaIDs 里不存在或不属于作者的 id 静默忽略
	Create(ctx context.Context, author *model.User, content string, mediaIDs []uint) (uint, error)
	// Delete 仅作者本人可删，点赞与附件关联一并删除
	Delete(ctx context.Context, caller *model.User, tweetID uint) error
	Like(ctx context.Context, caller *model.User, tweetID uint) error
	Unlike(ctx context.Context, caller *model.User, tweetID uint) error
}

type tweetService struct {
	tweetRepo repository.TweetRepository
	mediaRepo repository.MediaRepository
	likeRepo  repository.LikeRepository
}

func NewTweetService(tweetRepo repository.TweetRepository, mediaRepo repository.MediaRepository, likeRepo repository.LikeRepository) TweetService {
	return &tweetService{tweetRepo: tweetRepo, mediaRepo: mediaRepo, likeRepo: likeRepo}
}

func (s *tweetService) Create(ctx context.Context, author *model.User, content string, mediaIDs []uint) (uint, error) {
	if strings.TrimSpace(content) == "" {
		return 0, ErrEmptyContent
	}
	media, err := s.mediaRepo.ListOwnedByIDs(ctx, author.ID, mediaIDs)
	if err != nil {
		return 0, err
	}
	tweet := &model.Tweet{Content: content, UserID: author.ID}
	if err := s.tweetRepo.Create(ctx, tweet, media); err != nil {
		return 0, err
	}
	return tweet.ID, nil
}

func (s *tweetService) Delete(ctx context.Context, caller *model.User, tweetID uint) error {
	tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTweetNotFound
	}
	if err != nil {
		return err
	}
	if tweet.UserID != caller.ID {
		return ErrNotTweetAuthor
	}
	return s.tweetRepo.Delete(ctx, tweet)
}

func (s *tweetService) Like(ctx context.Context, caller *model.User, tweetID uint) error {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTweetNotFound
		}
		return err
	}
	return s.likeRepo.Create(ctx, caller.ID, tweetID)
}

func (s *tweetService) Unlike(ctx context.Context, caller *model.User, tweetID uint) error {
	// 幂等：未点过赞也算成功
	return s.likeRepo.Delete(ctx, caller.ID, tweetID)
}

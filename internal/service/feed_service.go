package service

import (
	"context"
	"fmt"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

type UserSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type LikeSummary struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

type FeedTweet struct {
	ID          uint          `json:"id"`
	Content     string        `json:"content"`
	Attachments []string      `json:"attachments"`
	Author      UserSummary   `json:"author"`
	Likes       []LikeSummary `json:"likes"`
}

// FeedPage 一页 feed，Total 为分页前命中总数
type FeedPage struct {
	Tweets []FeedTweet
	Total  int64
	Limit  int
	Offset int
}

// FeedService 聚合自己 + 关注者的推文，按时间倒序分页
type FeedService interface {
	Feed(ctx context.Context, user *model.User, limit, offset int) (*FeedPage, error)
}

type feedService struct {
	tweetRepo    repository.TweetRepository
	followRepo   repository.FollowRepository
	defaultLimit int
	maxLimit     int
}

func NewFeedService(tweetRepo repository.TweetRepository, followRepo repository.FollowRepository, defaultLimit, maxLimit int) FeedService {
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	if maxLimit <= 0 {
		maxLimit = 100
	}
	return &feedService{tweetRepo: tweetRepo, followRepo: followRepo, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// AttachmentLink 附件的可寻址链接
func AttachmentLink(mediaID uint) string {
	return fmt.Sprintf("/api/media/%d", mediaID)
}

func (s *feedService) Feed(ctx context.Context, user *model.User, limit, offset int) (*FeedPage, error) {
	// 越界参数收敛到合法范围，不报错
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	followingIDs, err := s.followRepo.ListFollowingIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	authorIDs := append([]uint{user.ID}, followingIDs...)

	total, err := s.tweetRepo.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	tweets, err := s.tweetRepo.ListByAuthors(ctx, authorIDs, offset, limit)
	if err != nil {
		return nil, err
	}

	page := &FeedPage{
		Tweets: make([]FeedTweet, 0, len(tweets)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, t := range tweets {
		ft := FeedTweet{
			ID:          t.ID,
			Content:     t.Content,
			Attachments: make([]string, 0, len(t.Media)),
			Author:      UserSummary{ID: t.Author.ID, Name: t.Author.Name},
			Likes:       make([]LikeSummary, 0, len(t.Likes)),
		}
		for _, m := range t.Media {
			ft.Attachments = append(ft.Attachments, AttachmentLink(m.ID))
		}
		for _, l := range t.Likes {
			ft.Likes = append(ft.Likes, LikeSummary{UserID: l.User.ID, Name: l.User.Name})
		}
		page.Tweets = append(page.Tweets, ft)
	}
	return page, nil
}

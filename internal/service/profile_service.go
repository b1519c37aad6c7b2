package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/cache"
	"github.com/d60-Lab/microblog/internal/repository"
)

// Profile 用户资料，关注/粉丝为全量列表
type Profile struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Followers []UserSummary `json:"followers"`
	Following []UserSummary `json:"following"`
}

type ProfileService interface {
	Profile(ctx context.Context, targetID uint) (*Profile, error)
}

type profileService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	relCache   *cache.RelationCache // 可为 nil
}

func NewProfileService(userRepo repository.UserRepository, followRepo repository.FollowRepository, relCache *cache.RelationCache) ProfileService {
	return &profileService{userRepo: userRepo, followRepo: followRepo, relCache: relCache}
}

func (s *profileService) Profile(ctx context.Context, targetID uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	followerIDs, err := s.followerIDs(ctx, targetID)
	if err != nil {
		return nil, err
	}
	followingIDs, err := s.followingIDs(ctx, targetID)
	if err != nil {
		return nil, err
	}

	followers, err := s.summaries(ctx, followerIDs)
	if err != nil {
		return nil, err
	}
	following, err := s.summaries(ctx, followingIDs)
	if err != nil {
		return nil, err
	}

	return &Profile{
		ID:        user.ID,
		Name:      user.Name,
		Followers: followers,
		Following: following,
	}, nil
}

func (s *profileService) followerIDs(ctx context.Context, userID uint) ([]uint, error) {
	if s.relCache != nil {
		if ids, ok := s.relCache.GetFollowerIDs(ctx, userID); ok {
			return ids, nil
		}
	}
	ids, err := s.followRepo.ListFollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.relCache != nil {
		s.relCache.SetFollowerIDs(ctx, userID, ids)
	}
	return ids, nil
}

func (s *profileService) followingIDs(ctx context.Context, userID uint) ([]uint, error) {
	if s.relCache != nil {
		if ids, ok := s.relCache.GetFollowingIDs(ctx, userID); ok {
			return ids, nil
		}
	}
	ids, err := s.followRepo.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.relCache != nil {
		s.relCache.SetFollowingIDs(ctx, userID, ids)
	}
	return ids, nil
}

// summaries 按 ids 原顺序装配 {id, name}
func (s *profileService) summaries(ctx context.Context, ids []uint) ([]UserSummary, error) {
	users, err := s.userRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]UserSummary, len(users))
	for _, u := range users {
		byID[u.ID] = UserSummary{ID: u.ID, Name: u.Name}
	}
	res := make([]UserSummary, 0, len(ids))
	for _, id := range ids {
		if sum, ok := byID[id]; ok {
			res = append(res, sum)
		}
	}
	return res, nil
}

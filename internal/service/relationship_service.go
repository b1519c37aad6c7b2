package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/cache"
	"github.com/d60-Lab/microblog/internal/repository"
)

// RelationshipService 关系链服务
type RelationshipService interface {
	Follow(ctx context.Context, followerID, targetID uint) error
	Unfollow(ctx context.Context, followerID, targetID uint) error
}

type relationshipService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	relCache   *cache.RelationCache // 可为 nil
}

func NewRelationshipService(followRepo repository.FollowRepository, userRepo repository.UserRepository, relCache *cache.RelationCache) RelationshipService {
	return &relationshipService{followRepo: followRepo, userRepo: userRepo, relCache: relCache}
}

func (s *relationshipService) Follow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return ErrFollowSelf
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.followRepo.Create(ctx, followerID, targetID); err != nil {
		return err
	}
	if s.relCache != nil {
		s.relCache.InvalidateEdge(ctx, followerID, targetID)
	}
	return nil
}

func (s *relationshipService) Unfollow(ctx context.Context, followerID, targetID uint) error {
	if err := s.followRepo.Delete(ctx, followerID, targetID); err != nil {
		return err
	}
	if s.relCache != nil {
		s.relCache.InvalidateEdge(ctx, followerID, targetID)
	}
	return nil
}

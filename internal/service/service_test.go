package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

type testEnv struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	authSvc  AuthService
	relSvc   RelationshipService
	tweetSvc TweetService
	feedSvc  FeedService
	profSvc  ProfileService
	userSvc  UserService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Tweet{},
		&model.Media{},
		&model.Like{},
		&model.Follow{},
	))

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	return &testEnv{
		db:       db,
		userRepo: userRepo,
		authSvc:  NewAuthService(userRepo),
		relSvc:   NewRelationshipService(followRepo, userRepo, nil),
		tweetSvc: NewTweetService(tweetRepo, mediaRepo, likeRepo),
		feedSvc:  NewFeedService(tweetRepo, followRepo, 10, 100),
		profSvc:  NewProfileService(userRepo, followRepo, nil),
		userSvc:  NewUserService(userRepo),
	}
}

func (e *testEnv) user(t *testing.T, name, key string) *model.User {
	t.Helper()
	u := &model.User{Name: name, APIKey: key}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

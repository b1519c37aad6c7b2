package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

func setupRelBenchDB(b *testing.B) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		b.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		b.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.User{}, &model.Tweet{}, &model.Media{}, &model.Like{}, &model.Follow{}); err != nil {
		b.Fatalf("migrate: %v", err)
	}
	return db
}

func BenchmarkFollowWrite(b *testing.B) {
	db := setupRelBenchDB(b)
	followRepo := NewFollowRepository(db)
	ctx := context.Background()

	// 预创建部分用户
	users := make([]model.User, 1000)
	for i := range users {
		users[i] = model.User{Name: fmt.Sprintf("u%04d", i), APIKey: fmt.Sprintf("k%04d", i)}
	}
	if err := db.Create(&users).Error; err != nil {
		b.Fatalf("seed users: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := users[rand.Intn(len(users))].ID
		to := users[rand.Intn(len(users))].ID
		if from == to {
			continue
		}
		_ = followRepo.Create(ctx, from, to)
	}
}

func BenchmarkFeedQuery(b *testing.B) {
	db := setupRelBenchDB(b)
	followRepo := NewFollowRepository(db)
	tweetRepo := NewTweetRepository(db)
	ctx := context.Background()

	// 构造：reader 关注 N 个作者，每个作者 20 条推文
	const N = 200
	reader := model.User{Name: "reader", APIKey: "reader"}
	_ = db.Create(&reader).Error
	for i := 0; i < N; i++ {
		u := model.User{Name: fmt.Sprintf("a%04d", i), APIKey: fmt.Sprintf("a%04d", i)}
		_ = db.Create(&u).Error
		_ = followRepo.Create(ctx, reader.ID, u.ID)
		tweets := make([]model.Tweet, 20)
		for j := range tweets {
			tweets[j] = model.Tweet{Content: fmt.Sprintf("t%d", j), UserID: u.ID}
		}
		_ = db.Create(&tweets).Error
	}
	authorIDs, _ := followRepo.ListFollowingIDs(ctx, reader.ID)
	authorIDs = append(authorIDs, reader.ID)

	b.ResetTimer()
	b.Run("ListByAuthors", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = tweetRepo.ListByAuthors(ctx, authorIDs, 0, 10)
		}
	})

	b.Run("CountByAuthors", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = tweetRepo.CountByAuthors(ctx, authorIDs)
		}
	})
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库：多连接会各自拿到一个空库
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Tweet{},
		&model.Media{},
		&model.Like{},
		&model.Follow{},
	))
	return db
}

func seedUsers(t *testing.T, db *gorm.DB, names ...string) []model.User {
	t.Helper()
	users := make([]model.User, len(names))
	for i, n := range names {
		users[i] = model.User{Name: n, APIKey: n + "_key"}
	}
	require.NoError(t, db.Create(&users).Error)
	return users
}

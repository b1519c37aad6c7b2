package testdata

import (
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

// Bootstrap 空库时补一个测试账号，保证服务起来就能调通
func Bootstrap(db *gorm.DB) error {
	var cnt int64
	if err := db.Model(&model.User{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	return db.Create(&model.User{Name: "Test User", APIKey: "test"}).Error
}

// Seed 开发环境演示数据：四个用户、关注关系、十五条推文和点赞
func Seed(db *gorm.DB) error {
	var cnt int64
	if err := db.Model(&model.User{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	users := []model.User{
		{Name: "John Doe", APIKey: "john_api_key"},
		{Name: "Jane Smith", APIKey: "jane_api_key"},
		{Name: "Bob Johnson", APIKey: "bob_api_key"},
		{Name: "Test User", APIKey: "test"},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	follows := []model.Follow{
		{FollowerID: users[0].ID, FollowedID: users[1].ID},
		{FollowerID: users[0].ID, FollowedID: users[2].ID},
		{FollowerID: users[3].ID, FollowedID: users[0].ID},
	}
	if err := db.Create(&follows).Error; err != nil {
		return err
	}

	contents := []string{
		"Hello world!",
		"Just setting up my Twitter clone",
		"My first tweet",
		"Another tweet from Jane",
		"Bob here, what's up?",
		"Test tweet from Test User",
		"This is a test tweet",
		"More content for testing",
		"Testing pagination - 1",
		"Testing pagination - 2",
		"Testing pagination - 3",
		"Testing pagination - 4",
		"Testing pagination - 5",
		"Testing pagination - 6",
		"Testing pagination - 7",
	}
	authors := []int{0, 0, 1, 1, 2, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3}
	tweets := make([]model.Tweet, len(contents))
	for i := range contents {
		tweets[i] = model.Tweet{Content: contents[i], UserID: users[authors[i]].ID}
	}
	if err := db.Create(&tweets).Error; err != nil {
		return err
	}

	// 每个用户点赞每第三条推文
	var likes []model.Like
	for i, t := range tweets {
		for j, u := range users {
			if (i+j)%3 == 0 {
				likes = append(likes, model.Like{UserID: u.ID, TweetID: t.ID})
			}
		}
	}
	return db.Create(&likes).Error
}

package model

import "time"

// Like 点赞关系
// 复合主键 (user_id, tweet_id)，同一用户对同一条最多一条记录
type Like struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	TweetID   uint `gorm:"primaryKey;autoIncrement:false;index:idx_like_tweet"`
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID"`
}

func (Like) TableName() string { return "likes" }

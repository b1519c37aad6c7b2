package model

import (
	"time"
)

// Follow 关注关系（A 关注 B）
// 复合主键 (follower_id, followed_id)，避免重复关注
type Follow struct {
	FollowerID uint `gorm:"primaryKey;autoIncrement:false"`
	FollowedID uint `gorm:"primaryKey;autoIncrement:false;index:idx_follow_followed"`
	CreatedAt  time.Time
}

func (Follow) TableName() string { return "follows" }

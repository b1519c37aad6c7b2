package model

import "time"

// User 用户（api_key 即登录凭证，无密码体系）
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(80);not null"`
	APIKey    string `gorm:"type:varchar(120);uniqueIndex:ux_user_api_key;not null"`
	CreatedAt time.Time

	Tweets []Tweet `gorm:"foreignKey:UserID"`
	Media  []Media `gorm:"foreignKey:UserID"`
	Likes  []Like  `gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "users" }

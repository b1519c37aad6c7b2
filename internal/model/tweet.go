package model

import "time"

// Tweet 内容主体，附件通过 tweet_media 多对多关联
type Tweet struct {
	ID        uint   `gorm:"primaryKey"`
	Content   string `gorm:"type:varchar(280);not null"`
	UserID    uint   `gorm:"index:idx_tweet_author;not null"`
	CreatedAt time.Time

	Author User    `gorm:"foreignKey:UserID"`
	Media  []Media `gorm:"many2many:tweet_media"`
	Likes  []Like  `gorm:"foreignKey:TweetID"`
}

func (Tweet) TableName() string { return "tweets" }

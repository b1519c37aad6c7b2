package model

import "time"

// Media 上传文件记录；file_path 为生成的存储名（相对上传目录）
type Media struct {
	ID        uint   `gorm:"primaryKey"`
	FilePath  string `gorm:"type:varchar(200);not null"`
	UserID    uint   `gorm:"index:idx_media_owner;not null"`
	CreatedAt time.Time
}

func (Media) TableName() string { return "media" }

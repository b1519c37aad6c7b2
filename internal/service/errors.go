package service

import "errors"

// 服务层哨兵错误，handler 用 errors.Is 映射到 HTTP 错误分类
var (
	ErrInvalidAPIKey  = errors.New("invalid api key")
	ErrFollowSelf     = errors.New("cannot follow self")
	ErrUserNotFound   = errors.New("user not found")
	ErrTweetNotFound  = errors.New("tweet not found")
	ErrMediaNotFound  = errors.New("media not found")
	ErrNotTweetAuthor = errors.New("tweet belongs to another user")
	ErrAPIKeyTaken    = errors.New("api key already bound to another user")
	ErrEmptyContent   = errors.New("tweet content is required")
	ErrEmptyFile      = errors.New("uploaded file is empty")
	ErrFileTooLarge   = errors.New("uploaded file exceeds size limit")
)

package logger

import (
	"go.uber.org/zap"
)

var l = zap.NewNop()

// Init 初始化全局日志器；release 模式用生产配置
func Init(mode string) error {
	var (
		log *zap.Logger
		err error
	)
	if mode == "release" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	l = log
	return nil
}

// L 返回全局日志器
func L() *zap.Logger { return l }

func Debug(msg string, fields ...zap.Field) { l.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { l.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { l.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { l.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { l.Fatal(msg, fields...) }

func Sync() { _ = l.Sync() }

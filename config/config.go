package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置（config.yaml + MICROBLOG_* 环境变量覆盖）
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Media    MediaConfig    `mapstructure:"media"`
	Feed     FeedConfig     `mapstructure:"feed"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Sentry   SentryConfig   `mapstructure:"sentry"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	Seed     bool           `mapstructure:"seed"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release / test
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // sqlite / postgres
	DSN    string `mapstructure:"dsn"`
}

type MediaConfig struct {
	UploadDir string `mapstructure:"upload_dir"`
	MaxSize   int64  `mapstructure:"max_size"` // 单个文件上限（字节）
}

type FeedConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit"`
}

// RedisConfig 关注/粉丝列表缓存，Addr 为空时不启用
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type SentryConfig struct {
	DSN string `mapstructure:"dsn"`
}

type TracingConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

// Load 读取配置；找不到配置文件时使用默认值
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("MICROBLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "microblog.db")
	v.SetDefault("media.upload_dir", "./uploads")
	v.SetDefault("media.max_size", 10<<20)
	v.SetDefault("feed.default_limit", 10)
	v.SetDefault("feed.max_limit", 100)
	v.SetDefault("redis.ttl", 5*time.Minute)
	v.SetDefault("seed", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

package config

import (
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port int
	}
	Game struct {
		MaxRows  int // 单局行数上限
		MaxCols  int // 单局列数上限
		MaxGames int // 同时进行的对局数上限
	}
	Session struct {
		TimeoutSeconds  int // 超过该时长没有操作的对局会被清理
		CleanupInterval int // 清理任务检查间隔（秒）
	}
	RateLimit struct {
		RequestsPerSecond int
		MaxConcurrent     int
	}
	Redis struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
	}
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("[config] 读取配置失败，使用默认配置: %v", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("配置解析失败: %v", err)
	}

	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults 为缺失的配置项补默认值
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 40010
	}
	if cfg.Game.MaxRows == 0 {
		cfg.Game.MaxRows = 64
	}
	if cfg.Game.MaxCols == 0 {
		cfg.Game.MaxCols = 64
	}
	if cfg.Game.MaxGames == 0 {
		cfg.Game.MaxGames = 1000
	}
	if cfg.Session.TimeoutSeconds == 0 {
		cfg.Session.TimeoutSeconds = 1800 // 默认30分钟无操作清理
	}
	if cfg.Session.CleanupInterval == 0 {
		cfg.Session.CleanupInterval = 60
	}
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 100
	}
	if cfg.RateLimit.MaxConcurrent == 0 {
		cfg.RateLimit.MaxConcurrent = 500
	}
}

// InitRedis 初始化 Redis 连接，未启用时返回 nil（战绩功能会自动降级）
func InitRedis(cfg *Config) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Printf("[config] 未启用 Redis，战绩记录功能不可用")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/Akshayreddy3/Minesweeper-Game/models"
)

const (
	keyWins   = "minesweeper:stats:wins"
	keyLosses = "minesweeper:stats:losses"
	keyRecent = "minesweeper:stats:recent"

	recentLimit = 20 // 最近战绩保留条数
)

// RecordService 负责已结束对局的战绩统计，数据存放在 Redis。
// rdb 为 nil 时（未配置 Redis）所有操作自动降级为空操作，不影响对局本身。
type RecordService struct {
	rdb *redis.Client
}

func NewRecordService(rdb *redis.Client) *RecordService {
	return &RecordService{rdb: rdb}
}

// Enabled 返回战绩功能是否可用
func (s *RecordService) Enabled() bool {
	return s.rdb != nil
}

// RecordResult 记录一局已结束对局的结果。
// Redis 写入失败只打警告，不向调用方返回错误（战绩丢一条不影响游戏）。
func (s *RecordService) RecordResult(ctx context.Context, rec models.GameRecord) {
	if s.rdb == nil {
		return
	}

	counter := keyLosses
	if rec.Result == "won" {
		counter = keyWins
	}
	if err := s.rdb.Incr(ctx, counter).Err(); err != nil {
		log.Printf("[WARNING] 更新战绩计数失败: %v", err)
		return
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		log.Printf("[WARNING] 序列化战绩记录失败: %v", err)
		return
	}
	if err := s.rdb.LPush(ctx, keyRecent, payload).Err(); err != nil {
		log.Printf("[WARNING] 写入最近战绩失败: %v", err)
		return
	}
	if err := s.rdb.LTrim(ctx, keyRecent, 0, recentLimit-1).Err(); err != nil {
		log.Printf("[WARNING] 裁剪最近战绩失败: %v", err)
	}
}

// QueryStats 查询汇总战绩。未配置 Redis 时返回 Available=false 的空数据。
func (s *RecordService) QueryStats(ctx context.Context) (models.StatsData, error) {
	if s.rdb == nil {
		return models.StatsData{Available: false}, nil
	}

	wins, err := s.rdb.Get(ctx, keyWins).Int64()
	if err != nil && err != redis.Nil {
		return models.StatsData{}, fmt.Errorf("查询胜局数失败: %v", err)
	}
	losses, err := s.rdb.Get(ctx, keyLosses).Int64()
	if err != nil && err != redis.Nil {
		return models.StatsData{}, fmt.Errorf("查询败局数失败: %v", err)
	}

	raw, err := s.rdb.LRange(ctx, keyRecent, 0, recentLimit-1).Result()
	if err != nil {
		return models.StatsData{}, fmt.Errorf("查询最近战绩失败: %v", err)
	}

	recent := make([]models.GameRecord, 0, len(raw))
	for _, item := range raw {
		var rec models.GameRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			log.Printf("[WARNING] 解析战绩记录失败，跳过: %v", err)
			continue
		}
		recent = append(recent, rec)
	}

	return models.StatsData{
		Available: true,
		Wins:      wins,
		Losses:    losses,
		Total:     wins + losses,
		Recent:    recent,
	}, nil
}

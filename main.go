package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Akshayreddy3/Minesweeper-Game/config"
	"github.com/Akshayreddy3/Minesweeper-Game/router"
	"github.com/Akshayreddy3/Minesweeper-Game/service"
	"github.com/Akshayreddy3/Minesweeper-Game/storage"
)

func main() {
	// 1. 加载配置
	cfg := config.Load()

	// 2. 初始化 Redis（可选，战绩统计用）
	rdb := config.InitRedis(cfg)

	// 3. 初始化战绩服务
	records := service.NewRecordService(rdb)

	// 4. 启动过期对局清理任务
	storage.StartExpiredSessionCleanup(
		time.Duration(cfg.Session.CleanupInterval)*time.Second,
		int64(cfg.Session.TimeoutSeconds),
	)

	// 5. 设置路由并启动服务
	r := router.SetupGameRouter(cfg, records)

	log.Printf("[main] 扫雷服务启动，监听端口 %d", cfg.Server.Port)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}

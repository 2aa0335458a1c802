package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Akshayreddy3/Minesweeper-Game/config"
	"github.com/Akshayreddy3/Minesweeper-Game/handler"
	"github.com/Akshayreddy3/Minesweeper-Game/middleware"
	"github.com/Akshayreddy3/Minesweeper-Game/service"
)

// SetupGameRouter 装配中间件和全部路由
func SetupGameRouter(cfg *config.Config, records *service.RecordService) *gin.Engine {
	r := gin.Default()

	// 全局并发限制 + 按IP限流
	r.Use(middleware.ConcurrencyLimit(cfg.RateLimit.MaxConcurrent))
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, time.Second)
	r.Use(middleware.RateLimit(rateLimiter))

	r.GET("/health", handler.HandleHealthCheck)

	api := r.Group("/api")
	{
		api.POST("/game", handler.CreateGameHandler(cfg))
		api.GET("/game/:gameId", handler.GetGameHandler())
		api.DELETE("/game/:gameId", handler.DeleteGameHandler())
		api.POST("/game/:gameId/reveal", handler.RevealHandler(records))
		api.POST("/game/:gameId/flag", handler.FlagHandler())
		api.GET("/game/:gameId/analysis", handler.AnalyzeGameHandler())
		api.GET("/stats", handler.StatsHandler(records))
	}

	return r
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Akshayreddy3/Minesweeper-Game/storage"
)

// HandleHealthCheck 处理健康检查请求
func HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"service":     "minesweeper",
		"activeGames": storage.SessionCount(),
		"timestamp":   time.Now().Unix(),
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akshayreddy3/Minesweeper-Game/models"
	"github.com/Akshayreddy3/Minesweeper-Game/service"
)

// StatsHandler 查询所有已结束对局的汇总战绩
func StatsHandler(records *service.RecordService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := records.QueryStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(500, err.Error(), nil))
			return
		}

		msg := "查询成功"
		if !stats.Available {
			msg = "未配置 Redis，战绩统计不可用"
		}
		c.JSON(http.StatusOK, models.SuccessResponse(200, msg, stats))
	}
}

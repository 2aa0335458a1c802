package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akshayreddy3/Minesweeper-Game/models"
	"github.com/Akshayreddy3/Minesweeper-Game/solver"
	"github.com/Akshayreddy3/Minesweeper-Game/storage"
)

// AnalyzeGameHandler 对玩家当前可见的棋盘做一致性分析，
// 返回未打开区域可能的雷数范围（不会泄露真实雷位）
func AnalyzeGameHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := storage.GetSession(c.Param("gameId"))
		if sess == nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse(404, "对局不存在或已过期", nil))
			return
		}

		sess.Lock.Lock()
		defer sess.Lock.Unlock()

		if sess.Board.IsOver() {
			c.JSON(http.StatusConflict, models.ErrorResponse(409, "对局已结束，无需分析", nil))
			return
		}

		result, err := solver.Analyze(sess.Board.VisibleGrid())
		if err != nil {
			// 引擎生成的可见棋盘一定是合法格式，走到这里说明有bug
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(500, "棋盘分析失败: "+err.Error(), nil))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(200, "分析成功", models.AnalysisData{
			GameID:   sess.GameID,
			Analysis: result,
		}))
	}
}

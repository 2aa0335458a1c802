package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akshayreddy3/Minesweeper-Game/config"
	"github.com/Akshayreddy3/Minesweeper-Game/game"
	"github.com/Akshayreddy3/Minesweeper-Game/models"
	"github.com/Akshayreddy3/Minesweeper-Game/storage"
)

// 内置难度，与自定义 rows/cols/mines 二选一
var difficultyPresets = map[string][3]int{
	"beginner":     {9, 9, 10},
	"intermediate": {16, 16, 40},
	"expert":       {16, 30, 99},
}

// buildGameView 组装一局游戏的展示数据，调用方必须持有会话锁
func buildGameView(sess *storage.GameSession, revealAll bool) models.GameViewData {
	b := sess.Board
	return models.GameViewData{
		GameID:  sess.GameID,
		Status:  b.Status().String(),
		Rows:    b.Rows,
		Cols:    b.Cols,
		Seed:    b.Seed,
		Cells:   b.View(revealAll),
		Stats:   b.Stats(),
		Created: sess.CreatedGMTTime,
	}
}

// CreateGameHandler 创建新对局
func CreateGameHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(400, "请求体格式错误", nil))
			return
		}

		if req.Difficulty != "" {
			preset, ok := difficultyPresets[req.Difficulty]
			if !ok {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(400,
					"未知的难度，可选值: beginner / intermediate / expert", nil))
				return
			}
			req.Rows, req.Cols, req.Mines = preset[0], preset[1], preset[2]
		}

		if req.Rows > cfg.Game.MaxRows || req.Cols > cfg.Game.MaxCols {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(400, "棋盘尺寸超过上限", nil))
			return
		}
		board, err := game.NewBoard(req.Rows, req.Cols, req.Mines, req.Seed)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(400, err.Error(), nil))
			return
		}

		sess := storage.NewSession(board)
		if !storage.TrySaveSession(sess, cfg.Game.MaxGames) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(503, "同时进行的对局数已达上限，请稍后重试", nil))
			return
		}
		log.Printf("[game] 创建对局: %s (%dx%d, %d雷, seed=%d)",
			sess.GameID, board.Rows, board.Cols, board.MineCount, board.Seed)

		c.JSON(http.StatusOK, models.SuccessResponse(200, "创建对局成功", buildGameView(sess, false)))
	}
}

// GetGameHandler 查询对局当前状态
func GetGameHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := storage.GetSession(c.Param("gameId"))
		if sess == nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse(404, "对局不存在或已过期", nil))
			return
		}

		sess.Lock.Lock()
		defer sess.Lock.Unlock()

		// 对局结束后的展示要亮出全部地雷
		view := buildGameView(sess, sess.Board.IsOver())
		c.JSON(http.StatusOK, models.SuccessResponse(200, "查询成功", view))
	}
}

// DeleteGameHandler 删除（弃掉）一局游戏
func DeleteGameHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		gameID := c.Param("gameId")
		if !storage.RemoveSession(gameID) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(404, "对局不存在或已过期", nil))
			return
		}

		log.Printf("[game] 删除对局: %s", gameID)
		c.JSON(http.StatusOK, models.SuccessResponse(200, "对局已删除", nil))
	}
}

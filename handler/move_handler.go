package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Akshayreddy3/Minesweeper-Game/game"
	"github.com/Akshayreddy3/Minesweeper-Game/models"
	"github.com/Akshayreddy3/Minesweeper-Game/service"
	"github.com/Akshayreddy3/Minesweeper-Game/storage"
)

// RevealHandler 打开一个格子。
// 引擎内部把越界坐标当作空操作，但 HTTP 层直接返回 400，方便客户端发现自己的错误。
func RevealHandler(records *service.RecordService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := storage.GetSession(c.Param("gameId"))
		if sess == nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse(404, "对局不存在或已过期", nil))
			return
		}

		var req models.MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(400, "请求体格式错误", nil))
			return
		}

		sess.Lock.Lock()
		defer sess.Lock.Unlock()

		board := sess.Board
		if req.Row < 0 || req.Row >= board.Rows || req.Col < 0 || req.Col >= board.Cols {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(400, "坐标越界", nil))
			return
		}
		if board.IsOver() {
			c.JSON(http.StatusConflict, models.ErrorResponse(409, "对局已结束", buildGameView(sess, true)))
			return
		}

		board.Reveal(req.Row, req.Col)
		sess.Touch()

		msg := "操作成功"
		if board.IsOver() {
			if board.IsWon() {
				msg = "恭喜，扫雷成功！"
			} else {
				msg = "踩到地雷，对局结束"
			}
			recordFinishedGame(c, records, sess)
		}

		c.JSON(http.StatusOK, models.SuccessResponse(200, msg, buildGameView(sess, board.IsOver())))
	}
}

// FlagHandler 切换一个格子的插旗状态。
// 已打开的格子插不了旗，引擎会忽略，这里不额外报错。
func FlagHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := storage.GetSession(c.Param("gameId"))
		if sess == nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse(404, "对局不存在或已过期", nil))
			return
		}

		var req models.MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(400, "请求体格式错误", nil))
			return
		}

		sess.Lock.Lock()
		defer sess.Lock.Unlock()

		board := sess.Board
		if req.Row < 0 || req.Row >= board.Rows || req.Col < 0 || req.Col >= board.Cols {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(400, "坐标越界", nil))
			return
		}
		if board.IsOver() {
			c.JSON(http.StatusConflict, models.ErrorResponse(409, "对局已结束", buildGameView(sess, true)))
			return
		}

		board.ToggleFlag(req.Row, req.Col)
		sess.Touch()

		c.JSON(http.StatusOK, models.SuccessResponse(200, "操作成功", buildGameView(sess, false)))
	}
}

// recordFinishedGame 把刚结束的对局写入战绩，调用方必须持有会话锁
func recordFinishedGame(c *gin.Context, records *service.RecordService, sess *storage.GameSession) {
	board := sess.Board
	now := time.Now().UTC()

	result := "lost"
	if board.Status() == game.StatusWon {
		result = "won"
	}
	log.Printf("[game] 对局结束: %s 结果=%s", sess.GameID, result)

	records.RecordResult(c.Request.Context(), models.GameRecord{
		GameID:          sess.GameID,
		Result:          result,
		Rows:            board.Rows,
		Cols:            board.Cols,
		Mines:           board.MineCount,
		DurationSeconds: now.Unix() - sess.CreatedAt,
		FinishedGMTTime: now.Format("2006-01-02 15:04:05"),
	})
}

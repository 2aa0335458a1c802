package models

import (
	"github.com/Akshayreddy3/Minesweeper-Game/game"
	"github.com/Akshayreddy3/Minesweeper-Game/solver"
)

// APIResponse 标准API响应结构体
type APIResponse struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// 成功响应
func SuccessResponse(code int, msg string, data interface{}) APIResponse {
	return APIResponse{
		Code: code,
		Msg:  msg,
		Data: data,
	}
}

// 错误响应
func ErrorResponse(code int, msg string, data interface{}) APIResponse {
	return APIResponse{
		Code: code,
		Msg:  msg,
		Data: data,
	}
}

// CreateGameRequest 创建对局的请求参数。
// 可以直接给出行列数和雷数，也可以只给一个难度名（beginner/intermediate/expert）。
// seed 不为 0 时按指定种子布雷，便于复盘和测试。
type CreateGameRequest struct {
	Rows       int    `json:"rows"`
	Cols       int    `json:"cols"`
	Mines      int    `json:"mines"`
	Difficulty string `json:"difficulty"`
	Seed       int64  `json:"seed"`
}

// MoveRequest 打开/插旗操作的请求参数，坐标从 0 开始
type MoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GameViewData 是一局游戏的完整展示状态
type GameViewData struct {
	GameID  string            `json:"gameId"`
	Status  string            `json:"status"`
	Rows    int               `json:"rows"`
	Cols    int               `json:"cols"`
	Seed    int64             `json:"seed"`
	Cells   [][]game.CellView `json:"cells"`
	Stats   game.Stats        `json:"stats"`
	Created string            `json:"createdGMTTime,omitempty"`
}

// AnalysisData 是求解器对当前可见棋盘的分析结果
type AnalysisData struct {
	GameID   string        `json:"gameId"`
	Analysis solver.Result `json:"analysis"`
}

// GameRecord 是一局已结束对局的战绩记录
type GameRecord struct {
	GameID          string `json:"gameId"`
	Result          string `json:"result"` // won / lost
	Rows            int    `json:"rows"`
	Cols            int    `json:"cols"`
	Mines           int    `json:"mines"`
	DurationSeconds int64  `json:"durationSeconds"`
	FinishedGMTTime string `json:"finishedGMTTime"`
}

// StatsData 是所有已结束对局的汇总统计
type StatsData struct {
	Available bool         `json:"available"` // 未配置 Redis 时为 false
	Wins      int64        `json:"wins"`
	Losses    int64        `json:"losses"`
	Total     int64        `json:"total"`
	Recent    []GameRecord `json:"recent"`
}

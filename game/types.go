package game

// Mine 表示格子内容为地雷，非地雷格子保存 0-8 的周围地雷数
const Mine = -1

// Unopened 表示玩家视角中尚未打开的格子（见 VisibleGrid）
const Unopened = -1

// Status 表示一局游戏的状态
type Status int

const (
	StatusInProgress Status = iota // 进行中
	StatusWon                      // 胜利：所有非地雷格子都已打开
	StatusLost                     // 失败：打开了地雷
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "inProgress"
	}
}

// Point 表示一个格子的坐标
type Point struct {
	R, C int
}

// 8个方向的邻居坐标偏移
var neighbors = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// 展示层使用的格子状态
const (
	StateHidden  = "hidden"  // 未打开
	StateFlagged = "flagged" // 已插旗
	StateOpened  = "opened"  // 已打开
)

// CellView 是单个格子的展示状态
type CellView struct {
	State  string `json:"state"`
	Count  int    `json:"count"`
	IsMine bool   `json:"is_mine"`
}

// Stats 汇总一局游戏的统计数据
type Stats struct {
	MinesTotal     int `json:"minesTotal"`
	FlagsPlaced    int `json:"flagsPlaced"`
	CellsRevealed  int `json:"cellsRevealed"`
	SafeCellsTotal int `json:"safeCellsTotal"`
}

package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidConfig 表示棋盘参数不合法（行列数必须为正，地雷数必须在 (0, rows*cols) 区间内）
var ErrInvalidConfig = errors.New("无效的棋盘配置")

// Board 持有一局扫雷的全部状态。
// 所有修改都通过 Reveal 和 ToggleFlag 进行，Board 本身不做并发保护，
// 多个调用方共享同一个 Board 时需要在外层加锁。
type Board struct {
	Rows      int
	Cols      int
	MineCount int
	Seed      int64 // 实际使用的随机种子，便于复盘

	grid     [][]int  // Mine 或 0-8 的周围地雷数，初始化后不再变化
	revealed [][]bool // 已打开标记，只增不减
	flagged  [][]bool // 插旗标记，只能在未打开的格子上切换

	status       Status
	safeRevealed int // 已打开的非地雷格子数
	rng          *rand.Rand
}

// NewBoard 创建一局新游戏：随机布雷后计算每个格子的周围地雷数。
// seed 为 0 时使用当前时间作为种子，否则按传入的种子布雷（测试和复盘用）。
func NewBoard(rows, cols, mines int, seed int64) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: 行列数必须为正 (rows=%d, cols=%d)", ErrInvalidConfig, rows, cols)
	}
	if mines <= 0 || mines >= rows*cols {
		return nil, fmt.Errorf("%w: 地雷数必须在 1 到 %d 之间 (mines=%d)", ErrInvalidConfig, rows*cols-1, mines)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b := newEmptyBoard(rows, cols, mines)
	b.Seed = seed
	b.rng = rand.New(rand.NewSource(seed))

	b.placeMines()
	b.calculateNumbers()

	return b, nil
}

// NewBoardWithMines 按指定的地雷位置创建棋盘，用于测试和固定棋局
func NewBoardWithMines(rows, cols int, mines []Point) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: 行列数必须为正 (rows=%d, cols=%d)", ErrInvalidConfig, rows, cols)
	}
	if len(mines) == 0 || len(mines) >= rows*cols {
		return nil, fmt.Errorf("%w: 地雷数必须在 1 到 %d 之间 (mines=%d)", ErrInvalidConfig, rows*cols-1, len(mines))
	}

	b := newEmptyBoard(rows, cols, len(mines))
	for _, p := range mines {
		if !b.inBounds(p.R, p.C) {
			return nil, fmt.Errorf("%w: 地雷坐标越界 (%d, %d)", ErrInvalidConfig, p.R, p.C)
		}
		if b.grid[p.R][p.C] == Mine {
			return nil, fmt.Errorf("%w: 地雷坐标重复 (%d, %d)", ErrInvalidConfig, p.R, p.C)
		}
		b.grid[p.R][p.C] = Mine
	}
	b.calculateNumbers()

	return b, nil
}

func newEmptyBoard(rows, cols, mines int) *Board {
	grid := make([][]int, rows)
	revealed := make([][]bool, rows)
	flagged := make([][]bool, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]int, cols)
		revealed[r] = make([]bool, cols)
		flagged[r] = make([]bool, cols)
	}

	return &Board{
		Rows:      rows,
		Cols:      cols,
		MineCount: mines,
		grid:      grid,
		revealed:  revealed,
		flagged:   flagged,
		status:    StatusInProgress,
	}
}

// placeMines 随机布雷：抽到已有地雷的格子就重抽，
// 因为 mines < rows*cols，循环一定会结束
func (b *Board) placeMines() {
	placed := 0
	for placed < b.MineCount {
		r := b.rng.Intn(b.Rows)
		c := b.rng.Intn(b.Cols)

		if b.grid[r][c] != Mine {
			b.grid[r][c] = Mine
			placed++
		}
	}
}

// calculateNumbers 为每个非地雷格子统计周围8个方向的地雷数，
// 必须在全部地雷放置完成之后执行
func (b *Board) calculateNumbers() {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.grid[r][c] == Mine {
				continue
			}
			count := 0
			for _, off := range neighbors {
				nr, nc := r+off[0], c+off[1]
				if b.inBounds(nr, nc) && b.grid[nr][nc] == Mine {
					count++
				}
			}
			b.grid[r][c] = count
		}
	}
}

// inBounds 检查坐标是否在棋盘范围内
func (b *Board) inBounds(r, c int) bool {
	return r >= 0 && r < b.Rows && c >= 0 && c < b.Cols
}

// Reveal 打开指定格子。
// 越界、已打开、已插旗或对局已结束时直接忽略，不算错误。
// 打开到地雷时对局立即失败，不再扩散；打开到周围地雷数为 0 的格子时
// 触发洪水填充：沿 8 个方向连续打开，直到碰到非 0 的格子或棋盘边缘。
// 这里用显式栈代替递归，revealed 数组同时充当访问标记，
// 每个格子最多入栈一次，大棋盘上也不会有深层调用链。
func (b *Board) Reveal(r, c int) {
	if b.status != StatusInProgress {
		return
	}
	if !b.inBounds(r, c) || b.revealed[r][c] || b.flagged[r][c] {
		return
	}

	if b.grid[r][c] == Mine {
		b.revealed[r][c] = true
		b.status = StatusLost
		return
	}

	stack := []Point{{r, c}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.revealed[p.R][p.C] {
			continue
		}
		b.revealed[p.R][p.C] = true
		b.safeRevealed++

		// 只有 0 格继续向外扩散；0 格的邻居不可能是地雷
		if b.grid[p.R][p.C] != 0 {
			continue
		}
		for _, off := range neighbors {
			nr, nc := p.R+off[0], p.C+off[1]
			if b.inBounds(nr, nc) && !b.revealed[nr][nc] && !b.flagged[nr][nc] {
				stack = append(stack, Point{nr, nc})
			}
		}
	}

	b.CheckWin()
}

// ToggleFlag 切换指定格子的插旗状态。
// 越界、已打开或对局已结束时直接忽略。
// 插旗只影响 Reveal（插旗的格子不能被打开），与胜负判定无关。
func (b *Board) ToggleFlag(r, c int) {
	if b.status != StatusInProgress {
		return
	}
	if !b.inBounds(r, c) || b.revealed[r][c] {
		return
	}

	b.flagged[r][c] = !b.flagged[r][c]
}

// CheckWin 重新统计已打开的非地雷格子数，达到目标时把状态置为胜利。
// 胜利只看打开数量，与插旗是否正确无关。
func (b *Board) CheckWin() bool {
	if b.status == StatusLost {
		return false
	}

	count := 0
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.revealed[r][c] && b.grid[r][c] != Mine {
				count++
			}
		}
	}

	if count == b.Rows*b.Cols-b.MineCount {
		b.status = StatusWon
		return true
	}
	return false
}

// Status 返回当前对局状态
func (b *Board) Status() Status {
	return b.status
}

// IsOver 返回对局是否已结束（胜利或失败）
func (b *Board) IsOver() bool {
	return b.status != StatusInProgress
}

// IsWon 返回对局是否已胜利
func (b *Board) IsWon() bool {
	return b.status == StatusWon
}

// IsRevealed 返回指定格子是否已打开，越界返回 false
func (b *Board) IsRevealed(r, c int) bool {
	return b.inBounds(r, c) && b.revealed[r][c]
}

// IsFlagged 返回指定格子是否已插旗，越界返回 false
func (b *Board) IsFlagged(r, c int) bool {
	return b.inBounds(r, c) && b.flagged[r][c]
}

// View 返回整个棋盘的展示状态。
// revealAll 为 true 时（对局结束后的最终展示）把所有地雷一并亮出。
func (b *Board) View(revealAll bool) [][]CellView {
	cells := make([][]CellView, b.Rows)
	for r := 0; r < b.Rows; r++ {
		cells[r] = make([]CellView, b.Cols)
		for c := 0; c < b.Cols; c++ {
			v := CellView{State: StateHidden}

			if b.revealed[r][c] {
				v.State = StateOpened
				if b.grid[r][c] == Mine {
					v.IsMine = true
				} else {
					v.Count = b.grid[r][c]
				}
			} else if b.flagged[r][c] {
				v.State = StateFlagged
			}

			if revealAll && b.grid[r][c] == Mine {
				v.State = StateOpened
				v.IsMine = true
			}

			cells[r][c] = v
		}
	}
	return cells
}

// VisibleGrid 返回玩家视角的数值棋盘：
// 未打开的格子（包括插旗的）为 Unopened，已打开的格子为周围地雷数。
// 供求解器做一致性分析，仅在对局进行中有意义。
func (b *Board) VisibleGrid() [][]int {
	grid := make([][]int, b.Rows)
	for r := 0; r < b.Rows; r++ {
		grid[r] = make([]int, b.Cols)
		for c := 0; c < b.Cols; c++ {
			if b.revealed[r][c] && b.grid[r][c] != Mine {
				grid[r][c] = b.grid[r][c]
			} else {
				grid[r][c] = Unopened
			}
		}
	}
	return grid
}

// Stats 返回当前对局的统计数据
func (b *Board) Stats() Stats {
	flags := 0
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.flagged[r][c] {
				flags++
			}
		}
	}

	return Stats{
		MinesTotal:     b.MineCount,
		FlagsPlaced:    flags,
		CellsRevealed:  b.safeRevealed,
		SafeCellsTotal: b.Rows*b.Cols - b.MineCount,
	}
}

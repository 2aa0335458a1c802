package game

import (
	"testing"
)

func TestNewBoardInvalidConfig(t *testing.T) {
	cases := []struct {
		name              string
		rows, cols, mines int
	}{
		{"零行", 0, 5, 1},
		{"零列", 5, 0, 1},
		{"负行", -1, 5, 1},
		{"零雷", 5, 5, 0},
		{"负雷", 5, 5, -3},
		{"雷数等于格子数", 5, 5, 25},
		{"雷数超过格子数", 3, 3, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBoard(tc.rows, tc.cols, tc.mines, 1)
			if err == nil {
				t.Fatalf("NewBoard(%d, %d, %d) 应当返回错误", tc.rows, tc.cols, tc.mines)
			}
		})
	}
}

// 随机布雷后：地雷数精确等于要求值，且每个非地雷格子的数字等于周围地雷数
func TestMinePlacementAndNumbers(t *testing.T) {
	cases := []struct {
		rows, cols, mines int
		seed              int64
	}{
		{9, 9, 10, 1},
		{16, 16, 40, 2},
		{16, 30, 99, 3},
		{2, 2, 3, 4},
		{1, 10, 5, 5},
	}

	for _, tc := range cases {
		b, err := NewBoard(tc.rows, tc.cols, tc.mines, tc.seed)
		if err != nil {
			t.Fatalf("NewBoard(%d, %d, %d) 失败: %v", tc.rows, tc.cols, tc.mines, err)
		}

		mines := 0
		for r := 0; r < b.Rows; r++ {
			for c := 0; c < b.Cols; c++ {
				if b.grid[r][c] == Mine {
					mines++
					continue
				}
				want := 0
				for _, off := range neighbors {
					nr, nc := r+off[0], c+off[1]
					if b.inBounds(nr, nc) && b.grid[nr][nc] == Mine {
						want++
					}
				}
				if b.grid[r][c] != want {
					t.Errorf("(%d,%d) 数字错误: got %d, want %d", r, c, b.grid[r][c], want)
				}
			}
		}
		if mines != tc.mines {
			t.Errorf("%dx%d 棋盘地雷数错误: got %d, want %d", tc.rows, tc.cols, mines, tc.mines)
		}
	}
}

// 相同种子必须产生完全相同的布局
func TestSeedDeterminism(t *testing.T) {
	a, err := NewBoard(16, 16, 40, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBoard(16, 16, 40, 42)
	if err != nil {
		t.Fatal(err)
	}

	for r := 0; r < 16; r++ {
		for c := 0; c < 16; c++ {
			if a.grid[r][c] != b.grid[r][c] {
				t.Fatalf("种子相同但 (%d,%d) 布局不同: %d vs %d", r, c, a.grid[r][c], b.grid[r][c])
			}
		}
	}
}

func TestNewBoardWithMinesValidation(t *testing.T) {
	if _, err := NewBoardWithMines(3, 3, []Point{{5, 5}}); err == nil {
		t.Error("越界地雷坐标应当返回错误")
	}
	if _, err := NewBoardWithMines(3, 3, []Point{{0, 0}, {0, 0}}); err == nil {
		t.Error("重复地雷坐标应当返回错误")
	}
	if _, err := NewBoardWithMines(3, 3, nil); err == nil {
		t.Error("没有地雷应当返回错误")
	}
}

// 3x3 棋盘，地雷固定在 (2,2)：数字棋盘应为 [[0,0,0],[0,1,1],[0,1,雷]]，
// 打开 (0,0) 后洪水填充经过整个 0 连通区域和它的数字边界，
// 即全部 8 个安全格子，一步直接胜利
func TestFloodFillRevealsZeroRegionAndBorder(t *testing.T) {
	b, err := NewBoardWithMines(3, 3, []Point{{2, 2}})
	if err != nil {
		t.Fatal(err)
	}

	wantGrid := [][]int{{0, 0, 0}, {0, 1, 1}, {0, 1, Mine}}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if b.grid[r][c] != wantGrid[r][c] {
				t.Fatalf("(%d,%d) 数字错误: got %d, want %d", r, c, b.grid[r][c], wantGrid[r][c])
			}
		}
	}

	b.Reveal(0, 0)

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			isMine := r == 2 && c == 2
			if b.IsRevealed(r, c) == isMine {
				t.Errorf("(%d,%d) 打开状态错误: revealed=%v", r, c, b.IsRevealed(r, c))
			}
		}
	}
	if !b.IsWon() {
		t.Errorf("所有安全格子已打开，状态应为胜利，实际为 %v", b.Status())
	}
}

// 洪水填充不能越过数字边界：3x5 棋盘中间一列全是地雷，
// 打开左上角只能打开左侧两列，右侧区域保持未打开
func TestFloodFillStopsAtNumberBorder(t *testing.T) {
	b, err := NewBoardWithMines(3, 5, []Point{{0, 2}, {1, 2}, {2, 2}})
	if err != nil {
		t.Fatal(err)
	}

	b.Reveal(0, 0)

	for r := 0; r < 3; r++ {
		for c := 0; c < 2; c++ {
			if !b.IsRevealed(r, c) {
				t.Errorf("左侧 (%d,%d) 应当已被打开", r, c)
			}
		}
		for c := 2; c < 5; c++ {
			if b.IsRevealed(r, c) {
				t.Errorf("右侧 (%d,%d) 不应被打开", r, c)
			}
		}
	}
	if b.IsOver() {
		t.Error("右侧还有安全格子未打开，对局不应结束")
	}
}

// 打开的格子周围全是非 0 数字时不触发扩散
func TestRevealNumberCellDoesNotSpread(t *testing.T) {
	b, err := NewBoardWithMines(3, 3, []Point{{1, 1}})
	if err != nil {
		t.Fatal(err)
	}

	b.Reveal(0, 0)

	if !b.IsRevealed(0, 0) {
		t.Fatal("(0,0) 应当已被打开")
	}
	if got := b.Stats().CellsRevealed; got != 1 {
		t.Errorf("只应打开 1 个格子，实际打开 %d 个", got)
	}
}

func TestRevealMineLosesWithoutCascade(t *testing.T) {
	b, err := NewBoardWithMines(3, 3, []Point{{1, 1}})
	if err != nil {
		t.Fatal(err)
	}

	b.Reveal(1, 1)

	if b.Status() != StatusLost {
		t.Fatalf("打开地雷后状态应为失败，实际为 %v", b.Status())
	}
	// 除了踩中的地雷本身，其他格子都不应被打开
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if (r != 1 || c != 1) && b.IsRevealed(r, c) {
				t.Errorf("失败后 (%d,%d) 不应被打开", r, c)
			}
		}
	}
}

// 插旗的格子既不能直接打开，也不会被洪水填充打开
func TestFlaggedCellBlocksReveal(t *testing.T) {
	b, err := NewBoardWithMines(3, 5, []Point{{0, 2}, {1, 2}, {2, 2}})
	if err != nil {
		t.Fatal(err)
	}

	b.ToggleFlag(2, 0)
	b.Reveal(2, 0)
	if b.IsRevealed(2, 0) {
		t.Error("插旗的格子不应被直接打开")
	}

	b.Reveal(0, 0)
	if b.IsRevealed(2, 0) {
		t.Error("插旗的格子不应被洪水填充打开")
	}

	// 拔旗后可以正常打开
	b.ToggleFlag(2, 0)
	b.Reveal(2, 0)
	if !b.IsRevealed(2, 0) {
		t.Error("拔旗后格子应当可以打开")
	}
}

func TestToggleFlagRules(t *testing.T) {
	b, err := NewBoardWithMines(3, 3, []Point{{1, 1}})
	if err != nil {
		t.Fatal(err)
	}

	b.ToggleFlag(0, 0)
	if !b.IsFlagged(0, 0) {
		t.Error("插旗失败")
	}
	b.ToggleFlag(0, 0)
	if b.IsFlagged(0, 0) {
		t.Error("第二次切换应当拔旗")
	}

	// 已打开的格子不能插旗
	b.Reveal(0, 0)
	b.ToggleFlag(0, 0)
	if b.IsFlagged(0, 0) {
		t.Error("已打开的格子不应被插旗")
	}

	// 越界坐标直接忽略
	b.ToggleFlag(-1, 0)
	b.ToggleFlag(0, 99)
}

// 胜利只看打开数量，插旗是否正确无关紧要
func TestWinIgnoresFlags(t *testing.T) {
	b, err := NewBoardWithMines(2, 2, []Point{{0, 0}})
	if err != nil {
		t.Fatal(err)
	}

	// 在安全格子上插一面错旗，再打开剩下的安全格子
	b.ToggleFlag(1, 1)
	b.Reveal(0, 1)
	b.Reveal(1, 0)
	if b.IsWon() {
		t.Fatal("还有安全格子未打开，不应胜利")
	}

	b.ToggleFlag(1, 1)
	b.Reveal(1, 1)
	if !b.IsWon() {
		t.Errorf("所有安全格子已打开，状态应为胜利，实际为 %v", b.Status())
	}
}

// 重复打开与越界打开都是无副作用的空操作
func TestRevealIdempotentAndOutOfBounds(t *testing.T) {
	b, err := NewBoardWithMines(3, 3, []Point{{1, 1}})
	if err != nil {
		t.Fatal(err)
	}

	b.Reveal(0, 0)
	before := b.Stats()

	b.Reveal(0, 0)
	b.Reveal(-1, 0)
	b.Reveal(0, -1)
	b.Reveal(3, 0)
	b.Reveal(0, 3)

	if got := b.Stats(); got != before {
		t.Errorf("空操作改变了状态: before=%+v after=%+v", before, got)
	}
	if b.Status() != StatusInProgress {
		t.Errorf("状态不应变化，实际为 %v", b.Status())
	}
}

// 对局结束后 Reveal 和 ToggleFlag 都不再生效
func TestTerminalBoardRejectsMutation(t *testing.T) {
	b, err := NewBoardWithMines(3, 3, []Point{{1, 1}})
	if err != nil {
		t.Fatal(err)
	}

	b.Reveal(1, 1)
	if b.Status() != StatusLost {
		t.Fatal("预期失败状态")
	}

	b.Reveal(0, 0)
	if b.IsRevealed(0, 0) {
		t.Error("失败后不应再打开格子")
	}
	b.ToggleFlag(0, 0)
	if b.IsFlagged(0, 0) {
		t.Error("失败后不应再插旗")
	}
}

func TestViewAndStats(t *testing.T) {
	b, err := NewBoardWithMines(3, 5, []Point{{0, 2}, {1, 2}, {2, 2}})
	if err != nil {
		t.Fatal(err)
	}

	b.ToggleFlag(0, 4)
	b.Reveal(0, 0) // 洪水填充打开左侧两列

	view := b.View(false)
	if view[0][4].State != StateFlagged {
		t.Errorf("(0,4) 应显示为插旗，实际为 %s", view[0][4].State)
	}
	if view[0][0].State != StateOpened || view[0][0].Count != 0 {
		t.Errorf("(0,0) 应显示为已打开的空白格，实际为 %+v", view[0][0])
	}
	if view[0][1].State != StateOpened || view[0][1].Count != 2 {
		t.Errorf("(0,1) 应显示为数字2，实际为 %+v", view[0][1])
	}
	if view[1][2].State != StateHidden || view[1][2].IsMine {
		t.Errorf("未打开的地雷不应暴露任何信息，实际为 %+v", view[1][2])
	}

	// revealAll 模式下地雷必须亮出
	final := b.View(true)
	for _, p := range []Point{{0, 2}, {1, 2}, {2, 2}} {
		if final[p.R][p.C].State != StateOpened || !final[p.R][p.C].IsMine {
			t.Errorf("最终展示应亮出 (%d,%d) 的地雷，实际为 %+v", p.R, p.C, final[p.R][p.C])
		}
	}

	stats := b.Stats()
	want := Stats{MinesTotal: 3, FlagsPlaced: 1, CellsRevealed: 6, SafeCellsTotal: 12}
	if stats != want {
		t.Errorf("统计数据错误: got %+v, want %+v", stats, want)
	}
}

func TestVisibleGrid(t *testing.T) {
	b, err := NewBoardWithMines(2, 2, []Point{{0, 0}})
	if err != nil {
		t.Fatal(err)
	}

	b.Reveal(1, 1)
	b.ToggleFlag(0, 1)

	grid := b.VisibleGrid()
	if grid[1][1] != 1 {
		t.Errorf("已打开的 (1,1) 应为数字 1，实际为 %d", grid[1][1])
	}
	if grid[0][0] != Unopened || grid[0][1] != Unopened || grid[1][0] != Unopened {
		t.Errorf("未打开的格子应为 %d，实际为 %v", Unopened, grid)
	}
}

// 随机对局里把安全格子全部打开一定以胜利收场
func TestFullPlaythroughWins(t *testing.T) {
	b, err := NewBoard(9, 9, 10, 7)
	if err != nil {
		t.Fatal(err)
	}

	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.grid[r][c] != Mine {
				b.Reveal(r, c)
			}
		}
	}

	if !b.IsWon() {
		t.Errorf("打开全部安全格子后应胜利，实际状态 %v", b.Status())
	}
	if got := b.Stats().CellsRevealed; got != 71 {
		t.Errorf("应打开 71 个格子，实际 %d", got)
	}
}

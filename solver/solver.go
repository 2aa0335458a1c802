// Package solver 对玩家可见的棋盘做一致性分析：
// 在满足所有数字线索的前提下，未打开区域最少、最多各可能藏有多少颗雷。
// 输入棋盘的约定与 game.VisibleGrid 一致：未打开为 -1，已打开为 0-8。
package solver

import (
	"fmt"
	"math"
)

// Unopened 代表未打开的格子
const Unopened = -1

// Result 汇总一次棋盘分析的结论
type Result struct {
	// Consistent 为 false 表示棋盘上的数字线索互相矛盾，不存在任何合法布雷
	Consistent bool `json:"consistent"`
	// MinMines / MaxMines 是未打开区域可能的雷数范围（含孤立区域），
	// Consistent 为 false 时两者无意义
	MinMines int `json:"minMines"`
	MaxMines int `json:"maxMines"`
	// RelevantUnknowns 是与数字线索相邻的未打开格子数，
	// IsolatedUnknowns 是不与任何线索相邻、无法推理的未打开格子数
	RelevantUnknowns int `json:"relevantUnknowns"`
	IsolatedUnknowns int `json:"isolatedUnknowns"`
}

type point struct {
	r, c int
}

// 8个方向的邻居坐标偏移
var offsets = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// constraint 是一个数字线索施加的约束：它周围的未知格中恰好有 count 颗雷
type constraint struct {
	clue      point
	neighbors []int // 指向 analyzer.unknowns 的索引
	count     int
}

type analyzer struct {
	board      [][]int
	rows, cols int

	unknowns    []point       // 所有与线索相邻的未打开格子
	unknownIdx  map[point]int // 坐标到 unknowns 索引的映射
	constraints []constraint

	isolated   int // 不与任何线索相邻的未打开格子数
	minMines   int
	maxMines   int
	found      bool // 是否至少找到一个合法布雷
	consistent bool
}

// Analyze 校验棋盘格式并计算雷数范围。
// 格式非法（行长不一致、数值越界、线索大于邻居数）返回错误；
// 格式合法但线索矛盾时返回 Consistent=false 的结果。
func Analyze(board [][]int) (Result, error) {
	if err := validate(board); err != nil {
		return Result{}, err
	}

	a := newAnalyzer(board)
	a.run()

	if !a.found {
		return Result{Consistent: false}, nil
	}

	// 最终范围是「线索相关区域」和「孤立区域」之和：
	// 孤立区域的雷数可以是 0 到其格子总数之间的任意值
	return Result{
		Consistent:       true,
		MinMines:         a.minMines,
		MaxMines:         a.maxMines + a.isolated,
		RelevantUnknowns: len(a.unknowns),
		IsolatedUnknowns: a.isolated,
	}, nil
}

// validate 检查棋盘格式是否有效
func validate(board [][]int) error {
	if len(board) == 0 || len(board[0]) == 0 {
		return fmt.Errorf("棋盘不能为空")
	}

	rows := len(board)
	cols := len(board[0])

	for r, row := range board {
		if len(row) != cols {
			return fmt.Errorf("棋盘行长度不一致 (行 %d 长度为 %d, 应为 %d)", r, len(row), cols)
		}
		for c, val := range row {
			if val < Unopened || val > 8 {
				return fmt.Errorf("无效的格子值 %d at (%d, %d)", val, r, c)
			}
			// 数字线索不能超过该格子实际拥有的邻居数
			if val > 0 {
				nbs := 0
				for _, off := range offsets {
					nr, nc := r+off[0], c+off[1]
					if nr >= 0 && nr < rows && nc >= 0 && nc < cols {
						nbs++
					}
				}
				if val > nbs {
					return fmt.Errorf("(%d, %d) 值为 %d, 但只有 %d 个邻居", r, c, val, nbs)
				}
			}
		}
	}
	return nil
}

func newAnalyzer(board [][]int) *analyzer {
	a := &analyzer{
		board:      board,
		rows:       len(board),
		cols:       len(board[0]),
		unknownIdx: make(map[point]int),
		minMines:   math.MaxInt32,
		maxMines:   -1,
		consistent: true,
	}
	a.prepare()
	return a
}

// prepare 预处理棋盘：收集线索、相关未知格、约束和孤立格数量
func (a *analyzer) prepare() {
	totalUnknowns := 0
	var clues []point

	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			if a.board[r][c] >= 0 {
				clues = append(clues, point{r, c})
			} else {
				totalUnknowns++
			}
		}
	}

	// 与线索相邻的未打开格子才参与回溯，其余都是孤立格
	for _, clue := range clues {
		for _, off := range offsets {
			nr, nc := clue.r+off[0], clue.c+off[1]
			if a.inBounds(nr, nc) && a.board[nr][nc] == Unopened {
				p := point{nr, nc}
				if _, seen := a.unknownIdx[p]; !seen {
					a.unknownIdx[p] = len(a.unknowns)
					a.unknowns = append(a.unknowns, p)
				}
			}
		}
	}

	for _, clue := range clues {
		var nbIndices []int
		for _, off := range offsets {
			p := point{clue.r + off[0], clue.c + off[1]}
			if idx, ok := a.unknownIdx[p]; ok {
				nbIndices = append(nbIndices, idx)
			}
		}

		clueValue := a.board[clue.r][clue.c]
		if len(nbIndices) == 0 {
			// 周围没有未打开格子的线索必须是 0，否则直接矛盾
			if clueValue > 0 {
				a.consistent = false
				return
			}
			continue
		}
		a.constraints = append(a.constraints, constraint{
			clue:      clue,
			neighbors: nbIndices,
			count:     clueValue,
		})
	}

	a.isolated = totalUnknowns - len(a.unknowns)
}

// inBounds 检查坐标是否在棋盘范围内
func (a *analyzer) inBounds(r, c int) bool {
	return r >= 0 && r < a.rows && c >= 0 && c < a.cols
}

// run 把问题拆成互不相关的连通分量后分别求解
func (a *analyzer) run() {
	if !a.consistent {
		return
	}
	if len(a.unknowns) == 0 {
		a.minMines = 0
		a.maxMines = 0
		a.found = true
		return
	}

	totalMin, totalMax := 0, 0
	a.found = true

	for _, component := range a.findComponents() {
		subMin, subMax, ok := a.solveComponent(component)
		if !ok {
			// 任何一个子问题无解，整个棋盘就矛盾
			a.found = false
			return
		}
		totalMin += subMin
		totalMax += subMax
	}

	a.minMines = totalMin
	a.maxMines = totalMax
}

// findComponents 用 BFS 把通过约束关联的未知格划分成连通分量
func (a *analyzer) findComponents() [][]int {
	adj := make([][]int, len(a.unknowns))
	for _, cst := range a.constraints {
		for i := 0; i < len(cst.neighbors); i++ {
			for j := i + 1; j < len(cst.neighbors); j++ {
				u, v := cst.neighbors[i], cst.neighbors[j]
				adj[u] = append(adj[u], v)
				adj[v] = append(adj[v], u)
			}
		}
	}

	var components [][]int
	visited := make([]bool, len(a.unknowns))
	for i := range a.unknowns {
		if visited[i] {
			continue
		}
		var component []int
		queue := []int{i}
		visited[i] = true
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			component = append(component, u)
			for _, v := range adj[u] {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		components = append(components, component)
	}
	return components
}

// solveComponent 为单个连通分量构造子问题并回溯求解
func (a *analyzer) solveComponent(indices []int) (minMines, maxMines int, ok bool) {
	sub := &analyzer{
		unknownIdx: make(map[point]int),
		minMines:   math.MaxInt32,
		maxMines:   -1,
		consistent: true,
	}

	toSub := make(map[int]int)
	for i, original := range indices {
		p := a.unknowns[original]
		sub.unknowns = append(sub.unknowns, p)
		sub.unknownIdx[p] = i
		toSub[original] = i
	}

	// 只保留与该分量相关的约束
	for _, cst := range a.constraints {
		var subNbs []int
		relevant := false
		for _, nb := range cst.neighbors {
			if subIdx, exists := toSub[nb]; exists {
				subNbs = append(subNbs, subIdx)
				relevant = true
			}
		}
		if relevant {
			sub.constraints = append(sub.constraints, constraint{
				clue:      cst.clue,
				neighbors: subNbs,
				count:     cst.count,
			})
		}
	}

	assignment := make([]int, len(sub.unknowns))
	sub.backtrack(0, assignment)

	return sub.minMines, sub.maxMines, sub.found
}

// backtrack 尝试所有可能的布雷方案，记录合法方案的最小/最大雷数
func (a *analyzer) backtrack(k int, assignment []int) {
	if !a.partialValid(k, assignment) {
		return
	}

	if k == len(a.unknowns) {
		if !a.fullValid(assignment) {
			return
		}
		mines := 0
		for _, v := range assignment {
			mines += v
		}
		if !a.found {
			a.minMines = mines
			a.maxMines = mines
			a.found = true
			return
		}
		if mines < a.minMines {
			a.minMines = mines
		}
		if mines > a.maxMines {
			a.maxMines = mines
		}
		return
	}

	assignment[k] = 0
	a.backtrack(k+1, assignment)

	assignment[k] = 1
	a.backtrack(k+1, assignment)
}

// partialValid 剪枝：前 k 个格子已定的情况下检查约束还有没有满足的可能
func (a *analyzer) partialValid(k int, assignment []int) bool {
	for _, cst := range a.constraints {
		mines := 0
		undecided := 0
		for _, nb := range cst.neighbors {
			if nb < k {
				mines += assignment[nb]
			} else {
				undecided++
			}
		}
		// 已定雷数超过线索，或剩余格子全放雷也凑不够线索，都可以剪掉
		if mines > cst.count || mines+undecided < cst.count {
			return false
		}
	}
	return true
}

// fullValid 检查一个完整布雷方案是否精确满足所有约束
func (a *analyzer) fullValid(assignment []int) bool {
	for _, cst := range a.constraints {
		mines := 0
		for _, nb := range cst.neighbors {
			mines += assignment[nb]
		}
		if mines != cst.count {
			return false
		}
	}
	return true
}

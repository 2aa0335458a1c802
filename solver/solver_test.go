package solver

import (
	"testing"
)

func TestAnalyzeValidation(t *testing.T) {
	cases := []struct {
		name  string
		board [][]int
	}{
		{"空棋盘", [][]int{}},
		{"空行", [][]int{{}}},
		{"行长不一致", [][]int{{-1, -1}, {-1}}},
		{"数值越界", [][]int{{9, -1}, {-1, -1}}},
		{"数值过小", [][]int{{-2, -1}, {-1, -1}}},
		{"线索超过邻居数", [][]int{{4, -1}, {-1, -1}}}, // 角落格子只有3个邻居
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Analyze(tc.board); err == nil {
				t.Errorf("Analyze(%v) 应当返回错误", tc.board)
			}
		})
	}
}

func TestAnalyzeBounds(t *testing.T) {
	cases := []struct {
		name               string
		board              [][]int
		minMines, maxMines int
	}{
		{
			// 两个线索夹住同一个未知格，雷数唯一确定
			"唯一解",
			[][]int{{1, -1, 1}},
			1, 1,
		},
		{
			// 一个线索带三个未知邻居，恰好一颗雷
			"单约束",
			[][]int{{1, -1}, {-1, -1}},
			1, 1,
		},
		{
			// 线索为 0，周围全部安全
			"零线索",
			[][]int{{-1, -1, -1}, {-1, 0, -1}, {-1, -1, -1}},
			0, 0,
		},
		{
			// 没有任何线索：所有格子都是孤立格，范围是 0 到全部
			"无线索",
			[][]int{{-1, -1, -1}, {-1, -1, -1}, {-1, -1, -1}},
			0, 9,
		},
		{
			// 左右两个互不相关的分量各自求解后相加
			"多分量",
			[][]int{{1, -1, 1, 0, 1, -1, 1}},
			2, 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Analyze(tc.board)
			if err != nil {
				t.Fatalf("Analyze 失败: %v", err)
			}
			if !res.Consistent {
				t.Fatalf("棋盘应当有解: %v", tc.board)
			}
			if res.MinMines != tc.minMines || res.MaxMines != tc.maxMines {
				t.Errorf("雷数范围错误: got [%d, %d], want [%d, %d]",
					res.MinMines, res.MaxMines, tc.minMines, tc.maxMines)
			}
		})
	}
}

func TestAnalyzeInconsistent(t *testing.T) {
	cases := []struct {
		name  string
		board [][]int
	}{
		// 0 线索要求 (0,1) 安全，1 线索又要求它是雷
		{"线索互相矛盾", [][]int{{0, -1, 1}}},
		// 正数线索周围没有任何未打开格子
		{"线索无处放雷", [][]int{{1, 1}, {1, 1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Analyze(tc.board)
			if err != nil {
				t.Fatalf("Analyze 失败: %v", err)
			}
			if res.Consistent {
				t.Errorf("棋盘 %v 不应有解", tc.board)
			}
		})
	}
}

func TestAnalyzeIsolatedCounts(t *testing.T) {
	// 线索只约束左上角区域，右下角的未知格都是孤立格
	board := [][]int{
		{1, -1, -1, -1},
		{-1, -1, -1, -1},
		{-1, -1, -1, -1},
	}

	res, err := Analyze(board)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Consistent {
		t.Fatal("棋盘应当有解")
	}
	if res.RelevantUnknowns != 3 {
		t.Errorf("线索相关未知格应为 3，实际 %d", res.RelevantUnknowns)
	}
	if res.IsolatedUnknowns != 8 {
		t.Errorf("孤立未知格应为 8，实际 %d", res.IsolatedUnknowns)
	}
	// 相关区域恰好 1 颗雷，孤立区域 0-8 颗
	if res.MinMines != 1 || res.MaxMines != 9 {
		t.Errorf("雷数范围错误: got [%d, %d], want [1, 9]", res.MinMines, res.MaxMines)
	}
}

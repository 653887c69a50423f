package engine

import (
	"testing"

	"github.com/heisenzif/smellyai/pkg/common"
)

func TestRunScoreTable(t *testing.T) {
	var tests = []struct {
		run                int
		openStart, openEnd bool
		want               int
	}{
		{1, true, true, 0},
		{2, true, true, 1000},
		{2, true, false, 100},
		{2, false, false, 0},
		{3, true, true, 10000},
		{3, false, true, 1000},
		{3, false, false, 0},
		{4, true, true, 100000},
		{4, true, false, 10000},
		{4, false, false, 0},
		{5, false, false, patternFive},
		{6, true, true, patternFive},
	}
	for _, test := range tests {
		var got = runScore(test.run, test.openStart, test.openEnd)
		if got != test.want {
			t.Errorf("runScore(%d, %v, %v) = %d, want %d",
				test.run, test.openStart, test.openEnd, got, test.want)
		}
	}
}

func TestCountPatternsCountsEachRunOnce(t *testing.T) {
	var board = common.NewBoard(20, 20)
	// Horizontal open three. Each stone is also a one-cell run vertically
	// and diagonally, which scores nothing, so the total is exactly the
	// open-three contribution.
	board.Set(5, 5, common.Engine)
	board.Set(6, 5, common.Engine)
	board.Set(7, 5, common.Engine)
	var got = countPatterns(board, common.Engine)
	if got != 10000 {
		t.Errorf("open three counted as %d, want 10000", got)
	}
}

func TestCountPatternsDiagonalCountedOnce(t *testing.T) {
	var board = common.NewBoard(20, 20)
	board.Set(5, 5, common.Engine)
	board.Set(6, 6, common.Engine)
	board.Set(7, 7, common.Engine)
	var got = countPatterns(board, common.Engine)
	if got != 10000 {
		t.Errorf("diagonal open three counted as %d, want 10000", got)
	}
}

func TestCountPatternsEdgeClosesRun(t *testing.T) {
	var board = common.NewBoard(20, 20)
	// Four stones against the left edge: only the right end is open.
	board.Set(0, 5, common.Engine)
	board.Set(1, 5, common.Engine)
	board.Set(2, 5, common.Engine)
	board.Set(3, 5, common.Engine)
	var got = countPatterns(board, common.Engine)
	if got != 10000 {
		t.Errorf("edge-closed four counted as %d, want 10000", got)
	}
}

func TestCountPatternsBlockedBothEnds(t *testing.T) {
	var board = common.NewBoard(20, 20)
	board.Set(4, 5, common.Opponent)
	board.Set(5, 5, common.Engine)
	board.Set(6, 5, common.Engine)
	board.Set(7, 5, common.Engine)
	board.Set(8, 5, common.Opponent)
	var engineScore = countPatterns(board, common.Engine)
	if engineScore != 0 {
		t.Errorf("fully blocked three counted as %d, want 0", engineScore)
	}
}

func TestCountPatternsFiveSaturates(t *testing.T) {
	var board = common.NewBoard(20, 20)
	for x := 3; x < 8; x++ {
		board.Set(x, 9, common.Opponent)
	}
	var got = countPatterns(board, common.Opponent)
	if got != patternFive {
		t.Errorf("five in a row counted as %d, want %d", got, patternFive)
	}
}

func TestEvaluateDefensiveWeight(t *testing.T) {
	var board = common.NewBoard(20, 20)
	board.Set(5, 5, common.Engine)
	board.Set(6, 5, common.Engine)
	board.Set(7, 5, common.Engine)

	if got := evaluate(board, common.Engine); got != 10000 {
		t.Errorf("evaluate for pattern owner = %d, want 10000", got)
	}
	// The same pattern weighs double against the other side.
	if got := evaluate(board, common.Opponent); got != -20000 {
		t.Errorf("evaluate for other side = %d, want -20000", got)
	}
}

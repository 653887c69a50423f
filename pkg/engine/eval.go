package engine

import (
	"github.com/heisenzif/smellyai/pkg/common"
)

// defenseWeight biases the evaluation toward blocking: an opponent pattern
// costs more than the same pattern gains for the engine.
const defenseWeight = 2

// patternFive saturates the pattern sum for a completed five. It stays below
// valueWin so the search's explicit win detection always dominates.
const patternFive = 10_000_000

// lineDirections covers the four scan directions: row, column, diagonal and
// anti-diagonal.
var lineDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// runScores maps [run length][open end count] to a contribution. A run
// blocked on both ends cannot become five and scores nothing.
var runScores = [5][3]int{
	2: {0, 100, 1000},
	3: {0, 1000, 10000},
	4: {0, 10000, 100000},
}

func evaluate(board *common.Board, player common.Cell) int {
	var opponent = otherPlayer(player)
	return countPatterns(board, player) - defenseWeight*countPatterns(board, opponent)
}

func otherPlayer(player common.Cell) common.Cell {
	if player == common.Engine {
		return common.Opponent
	}
	return common.Engine
}

// countPatterns sums the score table over every maximal same-player run in
// all four directions. A cell whose predecessor along a direction holds the
// same player is not a run start there, so each run is counted exactly once.
func countPatterns(board *common.Board, player common.Cell) int {
	var total = 0
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			if board.At(x, y) != player {
				continue
			}
			for _, dir := range lineDirections {
				var px, py = x - dir[0], y - dir[1]
				if board.InBounds(px, py) && board.At(px, py) == player {
					continue
				}
				var run = 1
				var nx, ny = x + dir[0], y + dir[1]
				for board.InBounds(nx, ny) && board.At(nx, ny) == player {
					run++
					nx += dir[0]
					ny += dir[1]
				}
				var openStart = board.InBounds(px, py) && board.At(px, py) == common.Empty
				var openEnd = board.InBounds(nx, ny) && board.At(nx, ny) == common.Empty
				total += runScore(run, openStart, openEnd)
			}
		}
	}
	return total
}

func runScore(run int, openStart, openEnd bool) int {
	if run >= 5 {
		return patternFive
	}
	if run < 2 {
		return 0
	}
	var open = 0
	if openStart {
		open++
	}
	if openEnd {
		open++
	}
	return runScores[run][open]
}

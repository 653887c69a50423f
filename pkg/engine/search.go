package engine

import (
	"github.com/heisenzif/smellyai/pkg/common"
)

// minimax is the recursive alpha-beta search. Trial moves are placed
// directly in the shared board buffer and removed after the recursive call,
// so each ply costs O(1) extra space.
func (e *Engine) minimax(board *common.Board, depth int, maximizing bool, alpha, beta int) common.SearchResult {
	e.checkAbort()

	// Wins outrank the heuristic and are checked before the depth cutoff,
	// so a finished game is reported at any remaining depth. Deeper
	// remaining depth means a faster win and scores higher.
	if hasFive(board, common.Engine) {
		return common.SearchResult{Score: valueWin + depth, Move: common.NoMove}
	}
	if hasFive(board, common.Opponent) {
		return common.SearchResult{Score: -(valueWin + depth), Move: common.NoMove}
	}
	if depth == 0 || board.IsFull() {
		return common.SearchResult{Score: evaluate(board, common.Engine), Move: common.NoMove}
	}

	var moves = possibleMoves(board)
	if len(moves) == 0 {
		return common.SearchResult{Score: 0, Move: common.NoMove}
	}

	var bestMove = common.NoMove
	if maximizing {
		var maxEval = -valueInfinity
		for _, move := range moves {
			board.SetIndex(move, common.Engine)
			var eval = e.minimax(board, depth-1, false, alpha, beta).Score
			board.ClearIndex(move)
			if e.aborted {
				break
			}
			if eval > maxEval {
				maxEval = eval
				bestMove = move
			}
			alpha = common.Max(alpha, eval)
			if beta <= alpha {
				break
			}
		}
		if bestMove == common.NoMove {
			bestMove = moves[0]
		}
		return common.SearchResult{Score: maxEval, Move: bestMove}
	}

	var minEval = valueInfinity
	for _, move := range moves {
		board.SetIndex(move, common.Opponent)
		var eval = e.minimax(board, depth-1, true, alpha, beta).Score
		board.ClearIndex(move)
		if e.aborted {
			break
		}
		if eval < minEval {
			minEval = eval
			bestMove = move
		}
		beta = common.Min(beta, eval)
		if beta <= alpha {
			break
		}
	}
	if bestMove == common.NoMove {
		bestMove = moves[0]
	}
	return common.SearchResult{Score: minEval, Move: bestMove}
}

// hasFive reports whether player has five consecutive stones in a row,
// column or diagonal. Each run is only tested from its starting cell.
func hasFive(board *common.Board, player common.Cell) bool {
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
				if run >= 5 {
					return true
				}
			}
		}
	}
	return false
}

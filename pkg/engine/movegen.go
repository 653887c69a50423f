package engine

import (
	"github.com/heisenzif/smellyai/pkg/common"
)

const proximityRange = 1

// possibleMoves returns every empty cell within Chebyshev distance 1 of an
// occupied cell. On an empty board the only candidate is the center; if the
// proximity scan finds nothing on a non-full board, the first empty cell in
// scan order is used instead.
func possibleMoves(board *common.Board) []common.Move {
	var moves []common.Move
	var occupied = false
	for i := 0; i < board.Len(); i++ {
		var m = common.Move(i)
		if board.AtIndex(m) != common.Empty {
			occupied = true
			continue
		}
		if hasNeighbor(board, m) {
			moves = append(moves, m)
		}
	}
	if len(moves) != 0 {
		return moves
	}
	if !occupied {
		return []common.Move{board.Center()}
	}
	for i := 0; i < board.Len(); i++ {
		if board.AtIndex(common.Move(i)) == common.Empty {
			return []common.Move{common.Move(i)}
		}
	}
	return nil
}

func hasNeighbor(board *common.Board, m common.Move) bool {
	var x, y = board.Coords(m)
	for dy := -proximityRange; dy <= proximityRange; dy++ {
		for dx := -proximityRange; dx <= proximityRange; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			var nx, ny = x + dx, y + dy
			if board.InBounds(nx, ny) && board.At(nx, ny) != common.Empty {
				return true
			}
		}
	}
	return false
}

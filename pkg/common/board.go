package common

import (
	"strconv"
	"strings"
)

// Cell holds the raw player id stored in a board cell. The protocol writes
// opponent-reported ids literally, so values other than the three named
// constants can appear after a BOARD sequence.
type Cell int

const (
	Empty    Cell = 0
	Engine   Cell = 1
	Opponent Cell = 2
)

const MinBoardSize = 20

// Board is a flat row-major grid: index = y*width + x. It is owned by the
// dispatch thread and is never shared, so it carries no locking.
type Board struct {
	width  int
	height int
	cells  []Cell
}

func NewBoard(width, height int) *Board {
	var b = &Board{}
	b.Resize(width, height)
	return b
}

// Resize reallocates the grid filled with Empty.
func (b *Board) Resize(width, height int) {
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
}

// Clear fills every cell with Empty without changing dimensions.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Len() int    { return len(b.cells) }

func (b *Board) Allocated() bool {
	return len(b.cells) != 0
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) Index(x, y int) Move {
	return Move(y*b.width + x)
}

func (b *Board) Coords(m Move) (x, y int) {
	return int(m) % b.width, int(m) / b.width
}

func (b *Board) At(x, y int) Cell {
	return b.cells[y*b.width+x]
}

func (b *Board) AtIndex(m Move) Cell {
	return b.cells[m]
}

func (b *Board) Set(x, y int, value Cell) {
	b.cells[y*b.width+x] = value
}

func (b *Board) SetIndex(m Move, value Cell) {
	b.cells[m] = value
}

func (b *Board) ClearIndex(m Move) {
	b.cells[m] = Empty
}

func (b *Board) IsFull() bool {
	for _, cell := range b.cells {
		if cell == Empty {
			return false
		}
	}
	return true
}

// Center returns the index of the middle cell, the canonical opening move.
func (b *Board) Center() Move {
	return Move((b.height/2)*b.width + b.width/2)
}

// String renders the grid one row per line, as the board dump written to
// stderr while loading a BOARD sequence.
func (b *Board) String() string {
	var sb = &strings.Builder{}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if x > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(strconv.Itoa(int(b.At(x, y))))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

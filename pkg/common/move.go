package common

// Move is a cell index in [0, width*height).
type Move int

// NoMove is the reserved sentinel for "no legal move found".
const NoMove Move = -1

type SearchResult struct {
	Score int
	Move  Move
}

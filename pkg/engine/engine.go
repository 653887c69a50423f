package engine

import (
	"context"

	"github.com/heisenzif/smellyai/pkg/common"
)

const (
	// DefaultDepth is the fixed search depth in plies. The search is
	// depth-bounded, not time-adaptive.
	DefaultDepth = 4

	valueInfinity = 1_000_000_000
	valueWin      = 500_000_000
)

type Options struct {
	Depth int
}

func NewOptions() Options {
	return Options{
		Depth: DefaultDepth,
	}
}

type Engine struct {
	Options Options
	nodes   int64
	aborted bool
	done    <-chan struct{}
}

func NewEngine(options Options) *Engine {
	return &Engine{
		Options: options,
	}
}

func (e *Engine) Nodes() int64 {
	return e.nodes
}

// Search runs a fixed-depth alpha-beta search for the engine side.
// The board is mutated in place during the search and restored before
// returning. When ctx carries a deadline, the search stops once it expires
// and the result is the best fully-searched root candidate so far.
func (e *Engine) Search(ctx context.Context, board *common.Board) common.SearchResult {
	e.nodes = 0
	e.aborted = false
	e.done = ctx.Done()
	return e.minimax(board, e.Options.Depth, true, -valueInfinity, valueInfinity)
}

func (e *Engine) checkAbort() {
	e.nodes++
	if e.aborted || e.done == nil {
		return
	}
	if e.nodes&1023 == 0 {
		select {
		case <-e.done:
			e.aborted = true
		default:
		}
	}
}

package piskvork

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heisenzif/smellyai/pkg/common"
	"github.com/heisenzif/smellyai/pkg/engine"
)

const aboutText = `name="smelly_ai", version="1.0", author="Heisen & zif", country="France"`

// Player id 3 marks a continuous-game stone the engine does not support;
// every other id sent in a BOARD sequence is stored literally.
const reservedPlayerID = 3

// searchMargin is shaved off timeout_turn so the response still reaches the
// manager in time.
const searchMargin = 50 * time.Millisecond

type dispatchState int

const (
	stateIdle dispatchState = iota
	stateLoadingBoard
)

type command struct {
	keyword string
	handler func(payload string)
}

// Protocol speaks the piskvork manager protocol over a line stream. The
// dispatcher owns the board exclusively; the reader goroutine only touches
// the command queue.
type Protocol struct {
	board    *common.Board
	engine   *engine.Engine
	info     Info
	out      *Emitter
	queue    *commandQueue
	state    dispatchState
	table    []command
	stop     chan struct{}
	stopOnce sync.Once
	logger   *log.Logger

	// Debug dumps the board to the logger after every BOARD cell.
	Debug bool
}

func New(eng *engine.Engine, out io.Writer, logger *log.Logger) *Protocol {
	var p = &Protocol{
		board:  &common.Board{},
		engine: eng,
		out:    NewEmitter(out),
		queue:  newCommandQueue(),
		stop:   make(chan struct{}),
		logger: logger,
	}
	// First match on line prefix wins, so the order is fixed here and any
	// keyword sharing a prefix with a longer one must come after it.
	p.table = []command{
		{"RECSTART", p.handleRecstart},
		{"RESTART", p.handleRestart},
		{"START", p.handleStart},
		{"TAKEBACK", p.handleTakeback},
		{"TURN", p.handleTurn},
		{"BEGIN", p.handleBegin},
		{"BOARD", p.handleBoardStart},
		{"DONE", p.handleDone},
		{"PLAY", p.handlePlay},
		{"INFO", p.handleInfo},
		{"END", p.handleEnd},
		{"ABOUT", p.handleAbout},
		{"SWAP2BOARD", p.inertHandler("SWAP2BOARD")},
		{"SUGGEST", p.inertHandler("SUGGEST")},
		{"UNKNOWN", p.inertHandler("UNKNOWN")},
		{"MESSAGE", p.inertHandler("MESSAGE")},
		{"ERROR", p.inertHandler("ERROR")},
		{"DEBUG", p.inertHandler("DEBUG")},
	}
	return p
}

// Run reads commands from in until END or end-of-stream and dispatches
// them. Lines already queued when the stop arrives are still processed
// before Run returns.
func (p *Protocol) Run(in io.Reader) error {
	var g = new(errgroup.Group)
	g.Go(func() error {
		readLines(in, p.queue, p.stop)
		return nil
	})
	g.Go(func() error {
		p.dispatchLoop()
		return nil
	})
	return g.Wait()
}

func (p *Protocol) dispatchLoop() {
	for {
		var line, ok = p.queue.Pop()
		if !ok {
			return
		}
		p.dispatch(line)
	}
}

func (p *Protocol) dispatch(line string) {
	if strings.TrimRight(line, "\r\n") == "" {
		return
	}
	if p.state == stateLoadingBoard {
		// DONE always ends a BOARD sequence, before its own validation.
		if strings.HasPrefix(line, "DONE") {
			p.state = stateIdle
		} else {
			p.handleBoardCell(line)
			return
		}
	}
	for i := range p.table {
		var c = &p.table[i]
		if strings.HasPrefix(line, c.keyword) {
			c.handler(line[len(c.keyword):])
			return
		}
	}
	p.out.Unknown(strings.TrimRight(line, "\r\n"))
}

func (p *Protocol) requestStop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
}

func (p *Protocol) sendMalformed(keyword string) {
	p.out.Error(keyword + " command received with empty payload or missing terminators.")
}

func (p *Protocol) handleStart(payload string) {
	var args, ok = trimTerminator(payload)
	if !ok {
		p.sendMalformed("START")
		return
	}
	var size, err = parseInt(args)
	if err != nil {
		p.out.Error("Error parsing START command payload: " + args)
		return
	}
	if size < common.MinBoardSize {
		p.out.Error(fmt.Sprintf("Invalid board size: %d", size))
		return
	}
	p.board.Resize(size, size)
	p.out.OK()
}

func (p *Protocol) handleRecstart(payload string) {
	var args, ok = trimTerminator(payload)
	if !ok {
		p.sendMalformed("RECSTART")
		return
	}
	var width, height, err = parsePair(args)
	if err != nil {
		p.out.Error("Error parsing RECSTART command payload")
		return
	}
	if width < common.MinBoardSize || height < common.MinBoardSize {
		p.out.Error(fmt.Sprintf("Invalid board size: (%d, %d)", width, height))
		return
	}
	p.board.Resize(width, height)
	p.out.OK()
	p.out.Debug(fmt.Sprintf("Game started with board size: %dx%d", width, height))
}

func (p *Protocol) handleRestart(payload string) {
	if _, ok := trimTerminator(payload); !ok {
		p.sendMalformed("RESTART")
		return
	}
	p.board.Clear()
	p.out.OK()
}

func (p *Protocol) handleTurn(payload string) {
	var args, ok = trimTerminator(payload)
	if !ok {
		p.sendMalformed("TURN")
		return
	}
	var x, y, err = parsePair(args)
	if err != nil {
		p.out.Error("Error parsing TURN command payload")
		return
	}
	if !p.board.InBounds(x, y) {
		p.out.Error(fmt.Sprintf("Invalid move coordinates: (%d, %d)", x, y))
		return
	}
	p.board.Set(x, y, common.Opponent)
	p.searchAndReply()
}

func (p *Protocol) handleBegin(payload string) {
	if _, ok := trimTerminator(payload); !ok {
		p.sendMalformed("BEGIN")
		return
	}
	p.searchAndReply()
}

func (p *Protocol) handleBoardStart(payload string) {
	if _, ok := trimTerminator(payload); !ok {
		p.sendMalformed("BOARD")
		return
	}
	p.state = stateLoadingBoard
}

func (p *Protocol) handleBoardCell(line string) {
	var args, ok = trimTerminator(line)
	if !ok {
		p.sendMalformed("BOARD")
		return
	}
	var x, y, player, err = parseTriple(args)
	if err != nil {
		p.out.Error("Error parsing BOARD command payload: " + args)
		return
	}
	if !p.board.InBounds(x, y) {
		p.out.Error(fmt.Sprintf("Invalid BOARD coordinates: (%d, %d)", x, y))
		return
	}
	if player == reservedPlayerID {
		p.out.Error(fmt.Sprintf("Invalid player number in BOARD command: %d", player))
		return
	}
	p.board.Set(x, y, common.Cell(player))
	if p.Debug {
		p.logger.Printf("board after %d,%d,%d:\n%s", x, y, player, p.board)
	}
}

func (p *Protocol) handleDone(payload string) {
	if _, ok := trimTerminator(payload); !ok {
		p.sendMalformed("DONE")
		return
	}
	p.searchAndReply()
}

func (p *Protocol) handlePlay(payload string) {
	var args, ok = trimTerminator(payload)
	if !ok {
		p.sendMalformed("PLAY")
		return
	}
	var x, y, err = parsePair(args)
	if err != nil {
		p.out.Error("Error parsing PLAY command payload")
		return
	}
	if !p.board.InBounds(x, y) {
		p.out.Error(fmt.Sprintf("Invalid move coordinates: (%d, %d)", x, y))
		return
	}
	if p.board.At(x, y) != common.Empty {
		p.out.Error(fmt.Sprintf("Cell (%d, %d) is already occupied", x, y))
		return
	}
	p.board.Set(x, y, common.Engine)
	p.out.Coordinate(x, y)
}

func (p *Protocol) handleTakeback(payload string) {
	var args, ok = trimTerminator(payload)
	if !ok {
		p.sendMalformed("TAKEBACK")
		return
	}
	var x, y, err = parsePair(args)
	if err != nil {
		p.out.Error("Error parsing TAKEBACK command payload: " + args)
		return
	}
	if !p.board.InBounds(x, y) {
		p.out.Error(fmt.Sprintf("Invalid takeback coordinates: (%d, %d)", x, y))
		return
	}
	p.board.Set(x, y, common.Empty)
}

func (p *Protocol) handleInfo(payload string) {
	var args, ok = trimTerminator(payload)
	if !ok {
		p.sendMalformed("INFO")
		return
	}
	var fields = strings.Fields(args)
	if len(fields) < 2 {
		p.out.Error("Error parsing INFO command payload")
		return
	}
	var key = fields[0]
	var value = strings.Join(fields[1:], " ")
	if err := p.info.Apply(key, value); err != nil {
		p.out.Error(err.Error())
	}
}

func (p *Protocol) handleEnd(payload string) {
	if _, ok := trimTerminator(payload); !ok {
		p.sendMalformed("END")
		return
	}
	p.requestStop()
}

func (p *Protocol) handleAbout(payload string) {
	if _, ok := trimTerminator(payload); !ok {
		p.sendMalformed("ABOUT")
		return
	}
	p.out.Line(aboutText)
}

func (p *Protocol) inertHandler(keyword string) func(string) {
	return func(payload string) {
		if _, ok := trimTerminator(payload); !ok {
			p.sendMalformed(keyword)
		}
	}
}

// searchAndReply runs the search on the current board, applies the chosen
// move as the engine's stone and emits its coordinates.
func (p *Protocol) searchAndReply() {
	var ctx, cancel = p.searchContext()
	defer cancel()
	var result = p.engine.Search(ctx, p.board)
	if result.Move == common.NoMove {
		p.out.Error("No valid move found (search returned no move)")
		return
	}
	if result.Move < 0 || int(result.Move) >= p.board.Len() {
		p.out.Error("No valid move found (search returned invalid index)")
		return
	}
	p.board.SetIndex(result.Move, common.Engine)
	var x, y = p.board.Coords(result.Move)
	p.out.Coordinate(x, y)
}

// searchContext derives a deadline from timeout_turn when one is set.
func (p *Protocol) searchContext() (context.Context, context.CancelFunc) {
	if p.info.TimeoutTurn <= 0 {
		return context.Background(), func() {}
	}
	var budget = time.Duration(p.info.TimeoutTurn) * time.Millisecond
	if budget > 2*searchMargin {
		budget -= searchMargin
	}
	return context.WithTimeout(context.Background(), budget)
}

package piskvork

import (
	"fmt"
	"io"
	"sync"
)

// Emitter serializes outgoing protocol lines. The mutex keeps each line
// atomic on the wire.
type Emitter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

func (e *Emitter) Line(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fmt.Fprintln(e.w, text)
}

func (e *Emitter) OK() {
	e.Line("OK")
}

func (e *Emitter) Error(message string) {
	e.Line("ERROR " + message)
}

func (e *Emitter) Unknown(message string) {
	e.Line("UNKNOWN " + message)
}

func (e *Emitter) Message(message string) {
	e.Line("MESSAGE " + message)
}

func (e *Emitter) Debug(message string) {
	e.Line("DEBUG " + message)
}

func (e *Emitter) Coordinate(x, y int) {
	e.Line(fmt.Sprintf("%d,%d", x, y))
}

package piskvork

import (
	"bufio"
	"io"
)

// readLines pumps raw input lines into the queue until end-of-stream or a
// stop signal. Line terminators are preserved: handlers validate them, and
// a final line without one must reach the dispatcher as-is.
//
// A dedicated goroutine blocks on the reader while this function selects on
// it together with the stop channel, so a stop request is observed
// immediately instead of after the next line arrives. On exit the queue is
// closed and the consumer drains whatever is already buffered.
func readLines(r io.Reader, q *commandQueue, stop <-chan struct{}) {
	var lines = make(chan string)
	go func() {
		defer close(lines)
		var br = bufio.NewReader(r)
		for {
			var line, err = br.ReadString('\n')
			if line != "" {
				lines <- line
			}
			if err != nil {
				return
			}
		}
	}()

	defer q.Close()
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return
			}
			q.Push(line)
		case <-stop:
			return
		}
	}
}

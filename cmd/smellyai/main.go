package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/heisenzif/smellyai/pkg/engine"
	"github.com/heisenzif/smellyai/pkg/piskvork"
)

const (
	name    = "smelly_ai"
	version = "1.0"
)

var (
	flgDepth int
	flgDebug bool
)

func main() {
	flag.IntVar(&flgDepth, "depth", engine.DefaultDepth, "search depth in plies")
	flag.BoolVar(&flgDebug, "debug", false, "dump the board to stderr during BOARD sequences")
	flag.Usage = usage
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags)

	logger.Println(name,
		"Version", version,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
	)

	var options = engine.NewOptions()
	options.Depth = flgDepth
	var eng = engine.NewEngine(options)

	var protocol = piskvork.New(eng, os.Stdout, logger)
	protocol.Debug = flgDebug
	if err := protocol.Run(os.Stdin); err != nil {
		logger.Println(err)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `%s %s - Gomoku move-selection engine

The engine speaks the piskvork manager protocol on stdin/stdout:

  START <size>          allocate a size x size board (OK / ERROR)
  RECSTART <w>,<h>      allocate a rectangular board (OK / ERROR)
  RESTART               clear the board (OK)
  BEGIN                 engine plays the opening move (x,y)
  TURN <x>,<y>          opponent move; engine answers with its move (x,y)
  BOARD ... DONE        batch board load (<x>,<y>,<player> per line),
                        engine answers with its move after DONE
  PLAY <x>,<y>          force an engine stone (x,y)
  TAKEBACK <x>,<y>      clear a cell
  INFO <key> <value>    session configuration (timeouts, rule, ...)
  ABOUT                 engine identification
  END                   shut down

Options:
`, name, version)
	flag.PrintDefaults()
}

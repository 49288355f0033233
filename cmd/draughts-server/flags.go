// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/draughts-go/internal/config"
)

var (
	// Network options
	listenAddr = flag.String("listen", "", "Listen address (default :8080)")
	origins    = flag.String("origins", "", "Comma-separated list of allowed websocket origins (empty = allow all)")

	// Storage options
	dataDir = flag.String("data", "", "Directory for the game database")

	// Rendering options
	squareSize = flag.Int("square", 0, "Board square size in pixels for /board.svg")

	// Verification and export modes (run and exit instead of serving)
	verifyGames   = flag.Bool("verify", false, "Replay every stored game and report corruption")
	verifyWorkers = flag.Int("workers", 0, "Worker count for -verify")
	exportGame    = flag.String("export", "", "Write the named game as a transcript to stdout and exit")
	exportJSON    = flag.Bool("json", false, "Use JSON instead of text for -export")

	// General options
	verbosity = flag.Int("v", 0, "Verbosity level")
	version   = flag.Bool("version", false, "Print version and exit")
)

// applyFlags overlays non-empty flag values onto the default configuration.
func applyFlags(cfg *config.Config) {
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *origins != "" {
		cfg.AllowOrigins = strings.Split(*origins, ",")
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *squareSize > 0 {
		cfg.SquareSize = *squareSize
	}
	if *verifyWorkers > 0 {
		cfg.VerifyWorkers = *verifyWorkers
	}
	if *verbosity > 0 {
		cfg.Verbosity = *verbosity
	}
}

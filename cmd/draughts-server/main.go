// draughts-server hosts a shared game of English draughts over websockets,
// with persistent storage, SVG board rendering, and offline game-history
// verification and export.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/lgbarn/draughts-go/internal/config"
	"github.com/lgbarn/draughts-go/internal/output"
	"github.com/lgbarn/draughts-go/internal/render"
	"github.com/lgbarn/draughts-go/internal/storage"
	"github.com/lgbarn/draughts-go/internal/worker"
	"github.com/lgbarn/draughts-go/internal/ws"
)

const programVersion = "0.1.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("draughts-server version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database %s: %v\n", cfg.DataDir, err)
		os.Exit(1)
	}
	if *verifyGames {
		code := runVerify(cfg, store)
		store.Close()
		os.Exit(code)
	}
	if *exportGame != "" {
		code := runExport(store, *exportGame, *exportJSON)
		store.Close()
		os.Exit(code)
	}

	defer store.Close()
	serve(cfg, store)
}

// serve runs the websocket hub and HTTP endpoints until the process exits.
func serve(cfg *config.Config, store *storage.Store) {
	hub := ws.NewHub(cfg.AllowOrigins, store)

	opts := render.DefaultOptions()
	opts.SquareSize = cfg.SquareSize

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	mux.HandleFunc("/board.svg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		render.WriteSVG(w, hub.Session().Snapshot(), opts)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	log.Printf("draughts-server %s listening on %s", programVersion, cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// runVerify replays every stored game through a fresh engine and reports
// histories that no longer apply cleanly. Returns the process exit code.
func runVerify(cfg *config.Config, store *storage.Store) int {
	ids, err := store.ListGames()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing games: %v\n", err)
		return 1
	}
	if len(ids) == 0 {
		fmt.Println("No stored games to verify")
		return 0
	}

	pool := worker.NewPool(cfg.VerifyWorkers, len(ids), worker.Replay)
	pool.Start()

	go func() {
		for i, id := range ids {
			rec, err := store.LoadGame(id)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading game %s: %v\n", id, err)
				continue
			}
			pool.Submit(worker.WorkItem{Record: rec, Index: i})
		}
		pool.Close()
	}()

	corrupt := 0
	for res := range pool.Results() {
		if res.Err != nil {
			corrupt++
			fmt.Printf("FAIL %s: %v\n", res.GameID, res.Err)
		} else if cfg.Verbosity > 0 {
			fmt.Printf("ok   %s (%d moves)\n", res.GameID, res.Moves)
		}
	}

	fmt.Printf("Verified %d games, %d corrupt\n", len(ids), corrupt)
	if corrupt > 0 {
		return 1
	}
	return 0
}

// runExport writes one stored game as a transcript to stdout. Returns the
// process exit code.
func runExport(store *storage.Store, id string, asJSON bool) int {
	rec, err := store.LoadGame(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game %s: %v\n", id, err)
		return 1
	}

	var w output.GameWriter
	if asJSON {
		w = output.NewJSONWriter(os.Stdout)
	} else {
		w = output.NewTextWriter(os.Stdout)
	}
	if err := w.WriteGame(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing game %s: %v\n", id, err)
		return 1
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error flushing output: %v\n", err)
		return 1
	}
	return 0
}

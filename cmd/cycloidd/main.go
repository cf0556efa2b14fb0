// Command cycloidd serves the cycloidal drive design engine over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gearkit/cycloid"
	"github.com/gearkit/cycloid/advisory"
	"github.com/gearkit/cycloid/internal/api"
	"github.com/gearkit/cycloid/store"
)

func main() {
	var (
		addr       = flag.String("addr", envOr("CYCLOIDD_ADDR", ":8080"), "listen address")
		dbPath     = flag.String("db", envOr("CYCLOIDD_DB", ""), "path to preset database (empty disables presets)")
		advisorURL = flag.String("advisor", envOr("CYCLOIDD_ADVISOR_URL", ""), "advisory service base URL (empty disables advice)")
		resolution = flag.Int("resolution", cycloid.DefaultResolution, "default profile sample density")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	cycloid.SetLogger(log)

	server := &api.Server{
		Designer: cycloid.NewDesigner(cycloid.WithDefaultResolution(*resolution)),
		Advisor:  advisory.NewClient(*advisorURL),
		Log:      log,
	}

	if *dbPath != "" {
		db, err := store.Open(*dbPath)
		if err != nil {
			log.Error("open preset store", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		server.Presets = db
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("cycloidd listening", "addr", *addr,
			"presets", *dbPath != "", "advisor", *advisorURL != "")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", "error", err)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

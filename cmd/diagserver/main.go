package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisheksit27/agrovest/internal/diagserver"
	"github.com/abhisheksit27/agrovest/internal/logging"
)

func main() {
	addr := flag.String("a", ":5000", "address and port to listen on")
	flag.Parse()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := diagserver.NewServer(*addr, logger)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("%v", err)
	}
}

// Package diagserver implements the stand-in crop-analysis HTTP server the
// CLI's remote classifier talks to. It exposes the same /analyze contract as
// a real inference backend but derives its answer deterministically from the
// uploaded bytes instead of running a model.
package diagserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/abhisheksit27/agrovest/internal/logging"
)

// Server wraps the HTTP server exposing the analysis API.
type Server struct {
	addr string
	log  logging.Logger
	srv  *http.Server
}

func NewServer(addr string, log logging.Logger) *Server {
	s := &Server{addr: addr, log: log}
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Router builds the route table. Exposed separately so tests can drive the
// handlers through httptest without binding a socket.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealthz).Methods("GET")
	r.HandleFunc("/analyze", s.handleAnalyze).Methods("POST")
	return r
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "analysis server listening", "addr", s.addr)
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}

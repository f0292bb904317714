package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"reelmatch/internal/logging"
)

// Server is the HTTP front end for the reconciliation engine.
type Server struct {
	baseURL    string
	reconciler Reconciler
	extender   Extender
	logger     *slog.Logger
	httpServer *http.Server
}

// New wires the engine into an HTTP server listening on bind. baseURL is
// advertised in the service manifest so clients can reach the companion
// endpoints.
func New(bind, baseURL string, reconciler Reconciler, extender Extender, logger *slog.Logger) (*Server, error) {
	if reconciler == nil {
		return nil, errors.New("server requires a reconciler")
	}
	if extender == nil {
		return nil, errors.New("server requires an extender")
	}
	s := &Server{
		baseURL:    baseURL,
		reconciler: reconciler,
		extender:   extender,
		logger:     logging.NewComponentLogger(logger, "server"),
	}
	s.httpServer = &http.Server{
		Addr:              bind,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/reconcile", s.handleReconcile)
	mux.HandleFunc("/propose_properties", s.handleProposeProperties)
	mux.HandleFunc("/suggest/properties", s.handleSuggestProperties)
	mux.HandleFunc("/healthz", s.handleHealth)
	return s.withRequestLogging(mux)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", logging.String("bind", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("shut down")
	return <-errCh
}

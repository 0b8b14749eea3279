// Package httpapi exposes the single operation endpoint. It derives the
// per-request identity context, gates mutating operations on it, and
// dispatches by operation name to the service layer.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/deepthoughts/internal/logging"
	"github.com/dmitrijs2005/deepthoughts/internal/server/services"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	users     *services.UserService
	thoughts  *services.ThoughtService
	logger    logging.Logger
	jwtSecret []byte
	ops       map[string]operation
}

func NewServer(address string, l logging.Logger, us *services.UserService, ts *services.ThoughtService, secretKey string) (*Server, error) {
	s := &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		thoughts:  ts,
		jwtSecret: []byte(secretKey),
	}
	s.ops = s.operations()
	return s, nil
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/api", s.handleOperation).Methods("POST")
	return r
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

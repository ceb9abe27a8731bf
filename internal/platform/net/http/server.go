package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"ingestlab/internal/platform/config"
	"ingestlab/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the listener serving it
type Server struct {
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer reads API_PORT and the timeout keys from cfg
func NewServer(cfg config.Conf) *Server {
	mux := chi.NewRouter()
	return &Server{
		mux: mux,
		srv: &stdhttp.Server{
			Addr:              cfg.MayString("API_PORT", ":4000"),
			Handler:           mux,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
			ReadTimeout:       cfg.MayDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 2*time.Minute),
		},
	}
}

// Router is the Router view of the server mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run listens on Addr and serves until Shutdown
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln, request contexts carry ctx values but not its cancellation
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	base := context.WithoutCancel(ctx)
	s.srv.BaseContext = func(net.Listener) context.Context { return base }
	logger.Named("http").Info().Str("addr", ln.Addr().String()).Msg("http listening")
	if err := s.srv.Serve(ln); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in flight requests until ctx ends
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }

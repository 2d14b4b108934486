package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bagdasarian/league-manager/internal/handler"
	"github.com/rs/zerolog/log"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
}

func NewServer(h *handler.Handler, addr string) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return &Server{
		handler: h,
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("server starting")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

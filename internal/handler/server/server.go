package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/mcallister/ro-casework/internal/auth"
	"github.com/mcallister/ro-casework/internal/handler"
)

type Server struct {
	server *http.Server
	logger *zap.Logger
}

func NewServer(h *handler.Handler, tokens *auth.TokenService, addr string, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h, tokens, logger)

	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
		logger: logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

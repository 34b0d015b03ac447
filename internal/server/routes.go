package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/twupgrade/internal/handlers"
)

// RegisterRoutes sets up the framework routes and boots every module.
func (s *Server) RegisterRoutes() error {
	s.E.GET("/health", handlers.HealthGet)

	root := s.E.Group("")
	for _, m := range s.modules {
		slog.Debug("booting module", "module", m.Name())
		if err := m.Boot(context.Background(), root); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}
	return nil
}

// shutdownModules stops modules in reverse boot order and returns the first
// error.
func (s *Server) shutdownModules(ctx context.Context) error {
	var first error
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("module shutdown failed", "module", m.Name(), "error", err)
			if first == nil {
				first = fmt.Errorf("shutdown module %s: %w", m.Name(), err)
			}
		}
	}
	return first
}

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/clipfetch/clipfetch-bot/internal/config"
	"github.com/clipfetch/clipfetch-bot/internal/pipeline"
	"github.com/clipfetch/clipfetch-bot/pkg/logger"
)

const (
	maxHeaderBytes  = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Server is the admin HTTP surface: liveness plus pipeline counters. It
// carries no job control; the bot transport is the only way work enters the
// process.
type Server struct {
	echo   *echo.Echo
	cfg    *config.Config
	uc     pipeline.UseCase
	logger logger.Logger
}

func NewServer(cfg *config.Config, uc pipeline.UseCase, log logger.Logger) *Server {
	return &Server{
		echo:   echo.New(),
		cfg:    cfg,
		uc:     uc,
		logger: log,
	}
}

func (s *Server) Run(ctx context.Context) error {
	s.MapHandlers(s.echo)
	s.echo.HideBanner = true
	s.echo.Server.MaxHeaderBytes = maxHeaderBytes

	go func() {
		if err := s.echo.Start(s.cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			s.logger.Errorf("error starting admin server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdown()
	s.logger.Infof("shutting down admin server")
	return s.echo.Shutdown(shutdownCtx)
}

func (s *Server) MapHandlers(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "OK"})
	})
	e.GET("/stats", func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.uc.Stats())
	})
}

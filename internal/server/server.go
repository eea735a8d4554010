package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/GreatJeff90/bookstore/internal/config"
	"github.com/GreatJeff90/bookstore/internal/middleware"
	"github.com/GreatJeff90/bookstore/internal/scheduler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// New はechoを組み立てる
func New(cfg config.Config, logger *zap.Logger, renderer echo.Renderer, h Handlers, ids middleware.IDGenerator) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))

	RegisterRoutes(e, h, middleware.ProfileCookie(cfg, ids))
	return e
}

// Start はctxが終わるまで待ち、止める時はタイマーも全部止める
func Start(ctx context.Context, e *echo.Echo, addr string, sched *scheduler.Scheduler, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		sched.Stop()
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	sched.Stop()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

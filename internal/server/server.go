package server

import (
	"fmt"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/twupgrade/internal/app"
	"github.com/nfrund/twupgrade/internal/assets"
	"github.com/nfrund/twupgrade/internal/config"
	"github.com/nfrund/twupgrade/internal/content"
	"github.com/nfrund/twupgrade/internal/middleware"
	"github.com/nfrund/twupgrade/internal/module"
	"github.com/nfrund/twupgrade/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E       *echo.Echo
	Cfg     *config.Config
	Assets  *assets.Store
	modules []module.Module
}

// New creates a Server from cfg. Routes are added by RegisterRoutes.
func New(cfg *config.Config) (*Server, error) {
	store, err := assets.New(cfg.Assets, cfg.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("open assets: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger)
	e.Use(middleware.AccessLog)
	e.Use(echomw.Recover())

	return &Server{
		E:      e,
		Cfg:    cfg,
		Assets: store,
		modules: app.NewModules(app.Dependencies{
			Assets:   store,
			Document: content.Article(),
			Lang:     cfg.SiteLang,
		}),
	}, nil
}

package icons

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/twupgrade/internal/assets"
	"github.com/nfrund/twupgrade/internal/content"
	"github.com/nfrund/twupgrade/internal/module"
)

// Dependencies for the icons module.
type Dependencies struct {
	Assets *assets.Store
	// Icons are the icons the served document references.
	Icons []content.Icon
}

// Module serves the icons the article references, one route per icon, so
// nothing else in the asset store is reachable.
type Module struct {
	module.BaseModule
	store *assets.Store
	icons []content.Icon
}

// New creates the icons module.
func New(deps Dependencies) *Module {
	return &Module{store: deps.Assets, icons: deps.Icons}
}

// Name returns the unique name for the module.
func (m *Module) Name() string {
	return "icons"
}

// Boot registers the icon routes. An icon missing from the store is logged
// but still routed; requests for it answer 404 and the page falls back to
// the alt text.
func (m *Module) Boot(ctx context.Context, g *echo.Group) error {
	if m.store == nil {
		return fmt.Errorf("icons: no asset store")
	}
	for _, icon := range m.icons {
		if !m.store.Exists(icon.Path) {
			slog.Warn("icon missing from asset store", "icon", icon.Path)
		}
		g.GET(icon.Path, m.store.Handler(icon.Path))
	}
	return nil
}

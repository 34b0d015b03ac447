package article

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/twupgrade/internal/content"
	"github.com/nfrund/twupgrade/internal/handlers"
	"github.com/nfrund/twupgrade/internal/module"
)

// Dependencies for the article module.
type Dependencies struct {
	Document content.Document
	// Lang is the document language tag.
	Lang string
}

// Module serves the article page.
type Module struct {
	module.BaseModule
	doc  content.Document
	lang string
}

// New creates the article module.
func New(deps Dependencies) *Module {
	return &Module{doc: deps.Document, lang: deps.Lang}
}

// Name returns the unique name for the module.
func (m *Module) Name() string {
	return "article"
}

// Boot mounts the page at the root of the group.
func (m *Module) Boot(ctx context.Context, g *echo.Group) error {
	slog.Debug("Booting article module", "lang", m.lang)
	g.GET("/", handlers.NewHomeHandler(m.doc, m.lang).HomeGet)
	return nil
}

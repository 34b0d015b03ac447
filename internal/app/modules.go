package app

import (
	"github.com/nfrund/twupgrade/internal/assets"
	"github.com/nfrund/twupgrade/internal/content"
	"github.com/nfrund/twupgrade/internal/module"
	"github.com/nfrund/twupgrade/internal/modules/article"
	"github.com/nfrund/twupgrade/internal/modules/icons"
)

// Dependencies holds the core services that are required by the application's modules.
type Dependencies struct {
	Assets   *assets.Store
	Document content.Document
	Lang     string
}

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled. The
// article and icons modules share one Document so the page and its icon
// routes cannot disagree.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		article.New(article.Dependencies{Document: deps.Document, Lang: deps.Lang}),
		icons.New(icons.Dependencies{Assets: deps.Assets, Icons: deps.Document.Icons()}),
	}
}

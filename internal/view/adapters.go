package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter wraps a gomponents.Node to satisfy templ.Component,
// so gomponents pages can be placed inside the templ layout.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements templ.Component. gomponents has no notion of a context,
// so it is only consulted for cancellation before writing.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents.Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

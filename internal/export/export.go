// Package export writes the page and the assets it references as static
// files, ready for any plain file server.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nfrund/twupgrade/internal/assets"
	"github.com/nfrund/twupgrade/internal/content"
	"github.com/nfrund/twupgrade/internal/rendering"
	"github.com/nfrund/twupgrade/internal/storage"
	"github.com/nfrund/twupgrade/web/src/templates/pages"
)

// IndexFile is the name the page is written under.
const IndexFile = "index.html"

// Result lists what was written, in write order.
type Result struct {
	Files []string
	Bytes int64
}

// Site renders doc into IndexFile and copies every icon doc references
// from src, all through out. lang is the document language tag.
func Site(ctx context.Context, out storage.Store, r rendering.Renderer, src *assets.Store, doc content.Document, lang string) (Result, error) {
	var res Result

	html, err := r.RenderComponent(ctx, pages.ArticlePage(doc, lang))
	if err != nil {
		return res, fmt.Errorf("render %s: %w", IndexFile, err)
	}
	if err := write(ctx, out, &res, IndexFile, html); err != nil {
		return res, err
	}

	for _, icon := range doc.Icons() {
		b, err := src.ReadFile(icon.Path)
		if err != nil {
			return res, err
		}
		if err := write(ctx, out, &res, strings.TrimPrefix(icon.Path, "/"), b); err != nil {
			return res, err
		}
	}

	slog.Debug("export complete", "files", len(res.Files), "bytes", res.Bytes)
	return res, nil
}

func write(ctx context.Context, out storage.Store, res *Result, name string, b []byte) error {
	n, err := out.Save(ctx, name, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}
	res.Files = append(res.Files, name)
	res.Bytes += n
	return nil
}

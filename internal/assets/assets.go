// Package assets resolves and serves the static files the page requests,
// such as the footer icons.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/twupgrade/internal/middleware"
	"github.com/nfrund/twupgrade/web"
	"github.com/spf13/afero"
)

// Asset sources.
const (
	SourceEmbed = "embed"
	SourceDisk  = "disk"
)

// CacheControl is sent with every asset. Icon paths never change content.
const CacheControl = "public, max-age=31536000, immutable"

// Store is a read-only view over the asset files.
type Store struct {
	fs afero.Fs
}

// New opens the asset store. SourceEmbed serves the files compiled into the
// binary; SourceDisk serves dir from the OS filesystem, which is handy while
// editing the icons.
func New(source, dir string) (*Store, error) {
	switch source {
	case SourceEmbed, "":
		sub, err := fs.Sub(web.FS, "static")
		if err != nil {
			return nil, fmt.Errorf("open embedded assets: %w", err)
		}
		return NewStore(afero.FromIOFS{FS: sub}), nil
	case SourceDisk:
		if dir == "" {
			return nil, errors.New("disk asset source requires a directory")
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("resolve asset directory %s: %w", dir, err)
		}
		ok, err := afero.DirExists(afero.NewOsFs(), abs)
		if err != nil {
			return nil, fmt.Errorf("stat asset directory %s: %w", dir, err)
		}
		if !ok {
			return nil, fmt.Errorf("asset directory %s does not exist", dir)
		}
		return NewStore(afero.NewBasePathFs(afero.NewOsFs(), abs)), nil
	default:
		return nil, fmt.Errorf("unknown asset source %q", source)
	}
}

// NewStore wraps fsys read-only.
func NewStore(fsys afero.Fs) *Store {
	return &Store{fs: afero.NewReadOnlyFs(fsys)}
}

// clean maps a URL-style path such as "/file.svg" to a store-relative name.
func clean(name string) string {
	return strings.TrimPrefix(path.Clean("/"+name), "/")
}

// ReadFile returns the bytes of the named asset.
func (s *Store) ReadFile(name string) ([]byte, error) {
	b, err := afero.ReadFile(s.fs, clean(name))
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", name, err)
	}
	return b, nil
}

// Exists reports whether the named asset is present.
func (s *Store) Exists(name string) bool {
	ok, err := afero.Exists(s.fs, clean(name))
	return err == nil && ok
}

// ContentType returns the MIME type for an asset name.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return echo.MIMEOctetStream
}

// Handler serves one asset. A missing file is a 404; the page shows the
// icon's alt text in that case.
func (s *Store) Handler(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		b, err := s.ReadFile(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				middleware.FromContext(c.Request().Context()).Warn("asset not found", "asset", name)
				return echo.NewHTTPError(http.StatusNotFound, "asset not found")
			}
			return err
		}
		c.Response().Header().Set(echo.HeaderCacheControl, CacheControl)
		return c.Blob(http.StatusOK, ContentType(name), b)
	}
}

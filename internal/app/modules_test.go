package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/twupgrade/internal/assets"
	"github.com/nfrund/twupgrade/internal/content"
	"github.com/nfrund/twupgrade/internal/rendering"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModules(t *testing.T) {
	store, err := assets.New(assets.SourceEmbed, "")
	require.NoError(t, err)

	mods := NewModules(Dependencies{Assets: store, Document: content.Article(), Lang: "en"})

	var names []string
	for _, m := range mods {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"article", "icons"}, names)

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	for _, m := range mods {
		require.NoError(t, m.Boot(context.Background(), e.Group("")))
	}

	for _, path := range []string{"/", "/file.svg", "/window.svg", "/globe.svg"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	for _, m := range mods {
		assert.NoError(t, m.Shutdown(context.Background()))
	}
}

func TestNewModules_PageAndIconsShareDocument(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "docs.svg", []byte("<svg/>"), 0o644))

	doc := content.Article()
	doc.Footer = doc.Footer[:1]
	doc.Footer[0].Icon.Path = "/docs.svg"

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	for _, m := range NewModules(Dependencies{Assets: assets.NewStore(memFs), Document: doc, Lang: "en"}) {
		require.NoError(t, m.Boot(context.Background(), e.Group("")))
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `src="/docs.svg"`)
	assert.NotContains(t, rec.Body.String(), `src="/file.svg"`)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs.svg", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/file.svg", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

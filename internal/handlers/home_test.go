package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/twupgrade/internal/content"
	"github.com/nfrund/twupgrade/internal/rendering"
	"github.com/stretchr/testify/assert"
)

func TestHomeGet(t *testing.T) {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.GET("/", NewHomeHandler(content.Article(), "de").HomeGet)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="de">`)
	assert.Contains(t, body, "Tailwind CSS v3 vs v4: What&#39;s Changed?")
	assert.Contains(t, body, "Go to nextjs.org →")
}

func TestHealthGet(t *testing.T) {
	e := echo.New()
	e.GET("/health", HealthGet)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

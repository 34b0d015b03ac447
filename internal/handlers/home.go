package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/twupgrade/internal/content"
	"github.com/nfrund/twupgrade/internal/middleware"
	"github.com/nfrund/twupgrade/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	doc  content.Document
	lang string
}

// NewHomeHandler creates a new HomeHandler serving doc. lang is the document
// language written to the <html> element.
func NewHomeHandler(doc content.Document, lang string) *HomeHandler {
	return &HomeHandler{doc: doc, lang: lang}
}

// HomeGet renders the article inside the base layout. The component is
// handed to the echo renderer through c.Render; the name is ignored.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	middleware.FromContext(c.Request().Context()).Debug("rendering home page")
	return c.Render(http.StatusOK, "", pages.ArticlePage(h.doc, h.lang))
}

// HealthGet reports liveness.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

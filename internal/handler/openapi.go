package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API docs UI. The page loads its JS from a CDN
// and reads the document from /static/openapi.json.
type OpenAPIHandler struct {
	assets fs.FS
}

func NewOpenAPIHandler(assets fs.FS) *OpenAPIHandler {
	return &OpenAPIHandler{
		assets: assets,
	}
}

// ServeOpenAPIUI serves openapi.html uncached so doc changes show up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := fs.ReadFile(h.assets, "openapi.html")
	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.HTMLBlob(http.StatusOK, page)
}

package handlers

import (
	"log/slog"
	"net/http"

	"starsystem-server/internal/catalog"
	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/shared/response"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ServeHTTP lists the built-in fact sheets.
func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "catalog")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	response.Success(w, http.StatusOK, h.catalog.All())
}

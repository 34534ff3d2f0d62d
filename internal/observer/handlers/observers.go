package handlers

import (
	"log/slog"
	"net/http"

	"starsystem-server/internal/observer"
	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/shared/response"
)

type ObserversHandler struct {
	service *observer.Service
}

func NewObserversHandler(service *observer.Service) *ObserversHandler {
	return &ObserversHandler{service: service}
}

func (h *ObserversHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "observers")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	observers, err := h.service.GetObservers(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if observers == nil {
		observers = []observer.Observer{}
	}

	response.Success(w, http.StatusOK, observers)
}

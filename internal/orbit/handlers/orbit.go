package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"starsystem-server/internal/orbit"
	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/shared/response"
)

type OrbitHandler struct {
	service *orbit.Service
}

func NewOrbitHandler(service *orbit.Service) *OrbitHandler {
	return &OrbitHandler{service: service}
}

func (h *OrbitHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "create_orbit")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var req orbit.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	o, err := h.service.CreateOrbit(ctx, req, nil)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, o)
}

// GetByID serves an orbit together with its derived elements, and handles
// deletion on the same route.
func (h *OrbitHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_orbit")

	id, err := pathID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		o, err := h.service.GetOrbitWithElements(ctx, id)
		if err != nil {
			response.Error(w, r, logger, err)
			return
		}
		response.Success(w, http.StatusOK, o)
	case http.MethodDelete:
		if err := h.service.DeleteOrbit(ctx, id); err != nil {
			response.Error(w, r, logger, err)
			return
		}
		response.Success(w, http.StatusNoContent, nil)
	default:
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
	}
}

func pathID(r *http.Request) (int, error) {
	idStr := r.PathValue("id")
	if idStr == "" {
		return 0, errors.Validation("orbit ID is required")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.WrapValidation("invalid orbit ID format", err)
	}
	return id, nil
}

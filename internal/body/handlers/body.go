package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"starsystem-server/internal/body"
	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/shared/response"
)

type BodyHandler struct {
	service *body.Service
}

func NewBodyHandler(service *body.Service) *BodyHandler {
	return &BodyHandler{service: service}
}

func (h *BodyHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "create_body")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var req body.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	b, err := h.service.CreateBody(ctx, req, nil)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, b)
}

func (h *BodyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_body")

	id, err := pathID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		b, err := h.service.GetBody(ctx, id, nil)
		if err != nil {
			response.Error(w, r, logger, err)
			return
		}
		response.Success(w, http.StatusOK, b)
	case http.MethodDelete:
		if err := h.service.DeleteBody(ctx, id); err != nil {
			response.Error(w, r, logger, err)
			return
		}
		response.Success(w, http.StatusNoContent, nil)
	default:
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
	}
}

func (h *BodyHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_body_stats")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	b, err := h.service.GetBody(ctx, id, nil)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	stats, err := h.service.ComputeStats(b)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, stats)
}

func (h *BodyHandler) GetSurfaceWeight(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_body_surface_weight")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	objectMass := body.DefaultObjectMassKg
	if massStr := r.URL.Query().Get("mass"); massStr != "" {
		objectMass, err = strconv.ParseFloat(massStr, 64)
		if err != nil {
			response.Error(w, r, logger, errors.WrapValidation("invalid mass parameter", err))
			return
		}
	}

	weight, err := h.service.SurfaceWeight(ctx, id, objectMass)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, weight)
}

func pathID(r *http.Request) (int, error) {
	idStr := r.PathValue("id")
	if idStr == "" {
		return 0, errors.Validation("body ID is required")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.WrapValidation("invalid body ID format", err)
	}
	return id, nil
}

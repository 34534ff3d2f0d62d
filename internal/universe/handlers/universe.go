package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/shared/response"
	"starsystem-server/internal/universe"
)

type UniverseHandler struct {
	service *universe.Service
}

func NewUniverseHandler(service *universe.Service) *UniverseHandler {
	return &UniverseHandler{service: service}
}

// Collection handles creation and listing on the universes collection route.
func (h *UniverseHandler) Collection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "universes")

	switch r.Method {
	case http.MethodPost:
		var req universe.CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
			return
		}

		u, err := h.service.CreateUniverse(ctx, req)
		if err != nil {
			response.Error(w, r, logger, err)
			return
		}
		response.Success(w, http.StatusCreated, u)
	case http.MethodGet:
		universes, err := h.service.GetUniverses(ctx)
		if err != nil {
			response.Error(w, r, logger, err)
			return
		}
		response.Success(w, http.StatusOK, universes)
	default:
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
	}
}

func (h *UniverseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_universe")

	id, err := pathID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		u, err := h.service.GetUniverse(ctx, id)
		if err != nil {
			response.Error(w, r, logger, err)
			return
		}
		response.Success(w, http.StatusOK, u)
	case http.MethodDelete:
		if err := h.service.DeleteUniverse(ctx, id); err != nil {
			response.Error(w, r, logger, err)
			return
		}
		response.Success(w, http.StatusNoContent, nil)
	default:
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
	}
}

func (h *UniverseHandler) GetBodies(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, "get_universe_bodies", func(r *http.Request, id int) (interface{}, error) {
		return h.service.GetBodies(r.Context(), id)
	})
}

func (h *UniverseHandler) GetOrbits(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, "get_universe_orbits", func(r *http.Request, id int) (interface{}, error) {
		return h.service.GetOrbits(r.Context(), id)
	})
}

func (h *UniverseHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, "get_universe_tree", func(r *http.Request, id int) (interface{}, error) {
		return h.service.GetTree(r.Context(), id)
	})
}

func (h *UniverseHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, "get_universe_stats", func(r *http.Request, id int) (interface{}, error) {
		return h.service.GetStats(r.Context(), id)
	})
}

func (h *UniverseHandler) GetUntethered(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, "get_universe_untethered", func(r *http.Request, id int) (interface{}, error) {
		return h.service.GetUntethered(r.Context(), id)
	})
}

// SeedSol creates the demo universe from the built-in fact sheets.
func (h *UniverseHandler) SeedSol(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "seed_sol")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	u, err := h.service.SeedFromCatalog(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, u)
}

func (h *UniverseHandler) get(w http.ResponseWriter, r *http.Request, name string, fn func(r *http.Request, id int) (interface{}, error)) {
	logger := slog.With("handler", name)

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	result, err := fn(r, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, result)
}

func pathID(r *http.Request) (int, error) {
	idStr := r.PathValue("id")
	if idStr == "" {
		return 0, errors.Validation("universe ID is required")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.WrapValidation("invalid universe ID format", err)
	}
	return id, nil
}

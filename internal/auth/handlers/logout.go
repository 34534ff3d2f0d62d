package handlers

import (
	"log/slog"
	"net/http"

	"starsystem-server/internal/shared/cookies"
	"starsystem-server/internal/shared/response"
)

type LogoutHandler struct{}

func NewLogoutHandler() *LogoutHandler {
	return &LogoutHandler{}
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "logout", "remote_addr", r.RemoteAddr)
	logger.Debug("Logout requested")

	cookies.ClearAuthCookie(w)

	response.Success(w, http.StatusOK, map[string]string{"message": "logged out"})

	logger.Info("User logged out successfully")
}

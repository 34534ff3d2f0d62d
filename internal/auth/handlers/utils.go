package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"starsystem-server/internal/shared/config"
)

// resolveRedirectURI validates a caller-supplied redirect URI. Only URIs
// under the configured frontend URL are allowed; anything else falls back to
// the frontend URL itself.
func resolveRedirectURI(requested string) string {
	frontendURL := config.GlobalConfig.Frontend.URL

	if requested == "" || !strings.HasPrefix(requested, frontendURL) {
		return frontendURL
	}
	return requested
}

// redirectWithError sends the browser back to the frontend with an error
// code in the query string.
func redirectWithError(w http.ResponseWriter, r *http.Request, redirectURI, errorCode string) {
	if redirectURI == "" {
		redirectURI = config.GlobalConfig.Frontend.URL
	}

	errorURL := fmt.Sprintf("%s/auth/error?error=%s", redirectURI, errorCode)
	http.Redirect(w, r, errorURL, http.StatusTemporaryRedirect)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/theme"
	"github.com/MrSnakeDoc/folio/internal/utils"
)

// ClientHeader identifies the preference owner. Without it the client IP
// is used.
const ClientHeader = "X-Folio-Client"

type themeResponse struct {
	Theme string `json:"theme"`
}

type themeRequest struct {
	Theme string `json:"theme"`
}

func themeClient(r *http.Request, trustProxy bool) string {
	if c := strings.TrimSpace(r.Header.Get(ClientHeader)); c != "" {
		return c
	}
	if ip := utils.ClientIP(r, trustProxy); ip != "" {
		return ip
	}
	return theme.DefaultClient
}

func writeTheme(w http.ResponseWriter, status int, t theme.Theme) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(themeResponse{Theme: t.String()})
}

// GetTheme returns the saved theme, or the default when none is saved.
func GetTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client := themeClient(r, d.TrustProxy)
		writeTheme(w, http.StatusOK, d.Themes.Current(r.Context(), client))
	}
}

// PutTheme saves an explicit theme.
func PutTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req themeRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10)).Decode(&req); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}

		t, err := theme.Parse(req.Theme)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		client := themeClient(r, d.TrustProxy)
		if err := d.Themes.Set(r.Context(), client, t); err != nil {
			d.Logger.Error("failed to save theme",
				logger.String("client", client),
				logger.Error(err))
			http.Error(w, "theme store unavailable", http.StatusServiceUnavailable)
			return
		}

		writeTheme(w, http.StatusOK, t)
	}
}

// ToggleTheme flips the saved theme and returns the new value.
func ToggleTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client := themeClient(r, d.TrustProxy)

		next, err := d.Themes.Toggle(r.Context(), client)
		if err != nil {
			d.Logger.Error("failed to toggle theme",
				logger.String("client", client),
				logger.Error(err))
			http.Error(w, "theme store unavailable", http.StatusServiceUnavailable)
			return
		}

		d.Logger.Debug("theme toggled",
			logger.String("client", client),
			logger.String("theme", next.String()))
		writeTheme(w, http.StatusOK, next)
	}
}

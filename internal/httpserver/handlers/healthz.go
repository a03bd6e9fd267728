package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/version"
)

type healthzResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Themes        string  `json:"themes,omitempty"`
	version.Build
}

// Healthz is the liveness probe: the process answers, nothing else is
// checked.
func Healthz(d deps.Deps) http.HandlerFunc {
	body := healthzResponse{
		Status: "ok",
		Themes: d.ThemeBackend,
		Build:  d.Build,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		resp := body
		resp.UptimeSeconds = time.Since(d.StartTime).Seconds()

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

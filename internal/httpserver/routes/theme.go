package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/folio/internal/httpserver/mw"
)

func init() { Register("theme", registerTheme) }

func registerTheme(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:         d.ThemeBurst,
		RefillPerMin:  d.ThemePerMin,
		MaxEntries:    10_000,
		SweepInterval: time.Minute,
		IdleTTL:       15 * time.Minute,
		TrustProxy:    d.TrustProxy,
	})
	host := mw.EnforceHost(d.AllowedHosts, d.Logger)

	r.Get("/theme", handlers.GetTheme(d))
	r.With(host, limit).Put("/theme", handlers.PutTheme(d))
	r.With(host, limit).Post("/theme/toggle", handlers.ToggleTheme(d))
}

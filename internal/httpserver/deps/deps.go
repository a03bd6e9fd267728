package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/theme"
	"github.com/MrSnakeDoc/folio/internal/version"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Build        version.Build
	ContentDir   string                          // Content root published under /content/
	Themes       *theme.Preferences              // Theme preference manager
	ThemeBackend string                          // "memory" | "redis", reported by readyz
	Ping         func(ctx context.Context) error // Theme store health check (nil = always healthy)
	AllowedHosts []string                        // Host headers allowed to change the theme
	AllowedCIDRS []string                        // IPs allowed to access healthz/readyz endpoints
	TrustProxy   bool                            // true if running behind a trusted reverse proxy (e.g., cloudflared)
	ThemeBurst   int                             // Theme write rate limit bucket size
	ThemePerMin  int                             // Theme write rate limit refill per minute
}

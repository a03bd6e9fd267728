package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
	"github.com/MrSnakeDoc/folio/internal/sources/content"
)

type componentStatus struct {
	OK    bool   `json:"ok"`
	Mode  string `json:"mode,omitempty"`
	Error string `json:"error,omitempty"`
}

type readyzResponse struct {
	Ready      bool                       `json:"ready"`
	Components map[string]componentStatus `json:"components"`
}

// Readyz reports whether the content root is published and the theme
// store answers. Only a missing content root makes the server unready;
// a theme store outage degrades to default themes.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentStatus := checkContent(d.ContentDir)
		themeStatus := checkThemeStore(r.Context(), d)

		resp := readyzResponse{
			Ready: contentStatus.OK,
			Components: map[string]componentStatus{
				"content": contentStatus,
				"theme":   themeStatus,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		if !resp.Ready {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func checkContent(dir string) componentStatus {
	_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(content.BlogIndexPath)))
	switch {
	case err == nil:
		return componentStatus{OK: true}
	case errors.Is(err, fs.ErrNotExist):
		return componentStatus{OK: false, Error: "blog index not found"}
	default:
		return componentStatus{OK: false, Error: "content root unreadable"}
	}
}

func checkThemeStore(ctx context.Context, d deps.Deps) componentStatus {
	if d.Ping == nil {
		return componentStatus{OK: true, Mode: d.ThemeBackend}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.Ping(ctx); err != nil {
		return componentStatus{OK: false, Mode: "degraded", Error: "timeout"}
	}
	return componentStatus{OK: true, Mode: d.ThemeBackend}
}

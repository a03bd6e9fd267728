package handlers

import (
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/folio/internal/httpserver/deps"
)

// Content serves files below the content root. Directory listings are
// not exposed.
func Content(d deps.Deps) http.Handler {
	files := http.FileServer(http.Dir(d.ContentDir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		files.ServeHTTP(w, r)
	})
}

package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"
)

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/site/content/projects.json":
			_, _ = w.Write([]byte(`[]`))
		case "/site/content/blog/boom.md":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f, err := NewHTTPFetcher(srv.URL+"/site", time.Second)
	if err != nil {
		t.Fatalf("NewHTTPFetcher() error = %v", err)
	}

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr string
	}{
		{"ok", ProjectsPath, "[]", ""},
		{"not found", PostPath("missing"), "", "retrieval failed: HTTP 404"},
		{"server error", PostPath("boom"), "", "retrieval failed: HTTP 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := f.Fetch(context.Background(), tt.path)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("Fetch() error = %v, want %q", err, tt.wantErr)
				}
				if !errors.Is(err, ErrTransport) {
					t.Errorf("error should wrap ErrTransport")
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Fetch() = %q, want %q", data, tt.want)
			}
		})
	}
}

func TestHTTPFetcher_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	f, err := NewHTTPFetcher(base, time.Second)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.Fetch(context.Background(), ProjectsPath); !errors.Is(err, ErrTransport) {
		t.Errorf("Fetch() error = %v, want ErrTransport", err)
	}
}

func TestNewHTTPFetcher_InvalidURL(t *testing.T) {
	for _, raw := range []string{"ftp://example.org", "not a url", "://"} {
		if _, err := NewHTTPFetcher(raw, 0); err == nil {
			t.Errorf("NewHTTPFetcher(%q) expected error", raw)
		}
	}
}

func TestFSFetcher(t *testing.T) {
	f := NewFSFetcher(fstest.MapFS{
		"content/projects.json": {Data: []byte(`[]`)},
	})

	data, err := f.Fetch(context.Background(), ProjectsPath)
	if err != nil || string(data) != "[]" {
		t.Errorf("Fetch() = %q, %v", data, err)
	}

	for _, path := range []string{PostPath("missing"), "../etc/passwd", PostPath("../../secret")} {
		if _, err := f.Fetch(context.Background(), path); !errors.Is(err, ErrTransport) {
			t.Errorf("Fetch(%q) error = %v, want ErrTransport", path, err)
		}
	}
}

func TestFSFetcher_CanceledContext(t *testing.T) {
	f := NewFSFetcher(fstest.MapFS{"content/projects.json": {Data: []byte(`[]`)}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.Fetch(ctx, ProjectsPath); !errors.Is(err, ErrTransport) {
		t.Errorf("Fetch() error = %v, want ErrTransport", err)
	}
}

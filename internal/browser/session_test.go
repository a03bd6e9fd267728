package browser

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/index"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/render"
	"github.com/MrSnakeDoc/folio/internal/router"
	"github.com/MrSnakeDoc/folio/internal/sources/content"
	"github.com/MrSnakeDoc/folio/internal/terminal"
	"github.com/MrSnakeDoc/folio/internal/theme"
	"github.com/MrSnakeDoc/folio/internal/view"
)

func newTestSession(t *testing.T) (*Session, *view.Page, *bytes.Buffer) {
	t.Helper()

	files := fstest.MapFS{
		content.BlogIndexPath: {Data: []byte(`[
			{"slug":"hello","title":"Hello","date":"2024-03-01","summary":"First words"}
		]`)},
		content.PostPath("hello"): {Data: []byte("---\ntitle: Hello\n---\nIt *works*.")},
		content.ReadingsPath: {Data: []byte(`[
			{"title":"Rusty","author":"A","url":"https://a","tags":["rust"]},
			{"title":"Gopher","author":"B","url":"https://b","tags":["go"]}
		]`)},
	}

	log := logger.New("error", false)
	page := view.NewPage()
	store := index.NewContentStore()
	renderer := render.New(render.Options{})
	loader := content.NewLoader(content.NewFSFetcher(files), store, renderer, page, log)
	r := router.New(page, store, loader, renderer, log)
	term := terminal.New(terminal.Responses{Coffee: "Black."}, page)
	prefs := theme.NewPreferences(theme.NewMemoryStore(), log)

	var out bytes.Buffer
	return NewSession(r, page, term, prefs, theme.DefaultClient, &out, log), page, &out
}

func TestSession_StartShowsHome(t *testing.T) {
	s, page, out := newTestSession(t)
	s.Start(context.Background(), "")

	if !page.IsActive(domain.SectionAbout) {
		t.Errorf("active = %v, want about", page.Active())
	}
	if page.Theme() != "dark" {
		t.Errorf("Theme() = %q, want dark", page.Theme())
	}
	if !strings.Contains(out.String(), "== About ==") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestSession_OpenPostAndBack(t *testing.T) {
	s, page, out := newTestSession(t)
	ctx := context.Background()
	s.Start(ctx, "#blog")

	if !strings.Contains(out.String(), "[1] navigate Hello") {
		t.Fatalf("blog list not shown: %s", out.String())
	}

	out.Reset()
	s.Handle(ctx, "open 1")
	if page.Hash() != "blog/hello" || !page.PostShown() {
		t.Fatalf("open did not show the post (hash %q)", page.Hash())
	}
	if !strings.Contains(out.String(), "It works.") {
		t.Errorf("post text missing: %s", out.String())
	}

	s.Handle(ctx, "back")
	if page.PostShown() || page.Hash() != "blog" {
		t.Error("back should show the list")
	}
}

func TestSession_OpenOutOfRange(t *testing.T) {
	s, _, out := newTestSession(t)
	ctx := context.Background()
	s.Start(ctx, "blog")

	out.Reset()
	s.Handle(ctx, "open 9")
	if !strings.Contains(out.String(), "Nothing to open") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestSession_TagFilter(t *testing.T) {
	s, page, out := newTestSession(t)
	ctx := context.Background()
	s.Start(ctx, "#readings")

	out.Reset()
	s.Handle(ctx, "tag go")
	if strings.Contains(out.String(), "Rusty") || !strings.Contains(out.String(), "Gopher") {
		t.Errorf("filter not applied: %s", out.String())
	}

	s.Handle(ctx, "untag")
	if got := page.Fragment(view.ReadingsList).HTML; !strings.Contains(got, "Rusty") {
		t.Errorf("filter not cleared: %s", got)
	}
}

func TestSession_UnknownFragment(t *testing.T) {
	s, page, out := newTestSession(t)
	ctx := context.Background()
	s.Start(ctx, "")

	out.Reset()
	s.Handle(ctx, "#nowhere")
	if page.Active() != domain.SectionUnrecognized {
		t.Errorf("active = %v, want none", page.Active())
	}
	if !strings.Contains(out.String(), `No section named "nowhere"`) {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestSession_ThemeAndMenu(t *testing.T) {
	s, page, out := newTestSession(t)
	ctx := context.Background()
	s.Start(ctx, "")

	s.Handle(ctx, "theme")
	if page.Theme() != "light" {
		t.Errorf("Theme() = %q, want light", page.Theme())
	}

	s.Handle(ctx, "menu")
	if !page.MenuOpen() {
		t.Error("menu should be open")
	}
	if !strings.Contains(out.String(), "* about") {
		t.Errorf("menu should mark the active link: %s", out.String())
	}

	s.Handle(ctx, "nav contact")
	if page.MenuOpen() || !page.IsActive(domain.SectionContact) {
		t.Error("nav should close the menu and show contact")
	}
}

func TestSession_Terminal(t *testing.T) {
	s, _, out := newTestSession(t)
	ctx := context.Background()

	s.Handle(ctx, "$ coffee")
	if !strings.Contains(out.String(), "Black.") {
		t.Errorf("terminal output missing: %s", out.String())
	}

	out.Reset()
	s.Handle(ctx, "$ dance")
	if !strings.Contains(out.String(), "Command not found: dance") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestSession_Quit(t *testing.T) {
	s, _, _ := newTestSession(t)

	for _, line := range []string{"quit", "exit"} {
		if s.Handle(context.Background(), line) {
			t.Errorf("Handle(%q) should stop the session", line)
		}
	}
	if !s.Handle(context.Background(), "") {
		t.Error("empty input should keep the session going")
	}
}

func TestSession_ReloadKeepsLocation(t *testing.T) {
	s, page, out := newTestSession(t)
	ctx := context.Background()
	s.Start(ctx, "#readings")

	before := page.Paints(view.ReadingsList)
	out.Reset()
	s.Handle(ctx, "reload")

	if got := page.Paints(view.ReadingsList); got != before+1 {
		t.Errorf("readings paints = %d, want %d", got, before+1)
	}
	if page.Hash() != "readings" || !page.IsActive(domain.SectionReadings) {
		t.Errorf("reload moved the page to %q", page.Hash())
	}
	if !strings.Contains(out.String(), "== Readings ==") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

package router

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/index"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/render"
	"github.com/MrSnakeDoc/folio/internal/sources/content"
	"github.com/MrSnakeDoc/folio/internal/view"
)

// countingFetcher records how often each path is retrieved.
type countingFetcher struct {
	mu    sync.Mutex
	next  content.Fetcher
	calls map[string]int
}

func (f *countingFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	f.calls[path]++
	f.mu.Unlock()
	return f.next.Fetch(ctx, path)
}

func (f *countingFetcher) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[path]
}

func siteFiles() fstest.MapFS {
	return fstest.MapFS{
		content.BlogIndexPath: {Data: []byte(`[
			{"slug":"first","title":"First","date":"2024-01-01","summary":"one"},
			{"slug":"second","title":"Second","date":"2024-02-01","summary":"two"}
		]`)},
		content.PostPath("first"): {Data: []byte("---\ntitle: First post\ndate: 2024-01-01\n---\nHello from *first*")},
		content.PublicationsPath:  {Data: []byte(`[{"title":"P","authors":"Fan J","venue":"V","year":2022}]`)},
		content.ProjectsPath:      {Data: []byte(`[{"title":"Proj","description":"d"}]`)},
		content.ReadingsPath: {Data: []byte(`[
			{"title":"Rusty","author":"A","url":"https://a","tags":["rust","systems"]},
			{"title":"Gopher","author":"B","url":"https://b","tags":["go"]},
			{"title":"Crab","author":"C","url":"https://c","tags":["rust"]}
		]`)},
	}
}

type fixture struct {
	router  *Router
	page    *view.Page
	store   *index.ContentStore
	fetcher *countingFetcher
}

func newFixture(files fstest.MapFS) fixture {
	page := view.NewPage()
	store := index.NewContentStore()
	renderer := render.New(render.Options{HighlightAuthor: "Fan J"})
	log := logger.New("error", false)
	fetcher := &countingFetcher{next: content.NewFSFetcher(files), calls: map[string]int{}}
	loader := content.NewLoader(fetcher, store, renderer, page, log)

	return fixture{
		router:  New(page, store, loader, renderer, log),
		page:    page,
		store:   store,
		fetcher: fetcher,
	}
}

func activeSections(page *view.Page) []domain.Section {
	var out []domain.Section
	for _, s := range page.Sections() {
		if page.IsActive(s) {
			out = append(out, s)
		}
	}
	return out
}

func TestNavigate_Sections(t *testing.T) {
	tests := []struct {
		fragment string
		want     domain.Section
	}{
		{"", domain.SectionAbout},
		{"about", domain.SectionAbout},
		{"#about", domain.SectionAbout},
		{"blog", domain.SectionBlog},
		{"#publications", domain.SectionPublications},
		{"projects", domain.SectionProjects},
		{"readings", domain.SectionReadings},
		{"contact", domain.SectionContact},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			f := newFixture(siteFiles())
			f.router.Navigate(context.Background(), tt.fragment)

			active := activeSections(f.page)
			if len(active) != 1 || active[0] != tt.want {
				t.Errorf("active sections = %v, want exactly [%v]", active, tt.want)
			}
			for _, s := range f.page.Sections() {
				if f.page.NavLinkActive(s) != (s == tt.want) {
					t.Errorf("nav link %v active = %v", s, f.page.NavLinkActive(s))
				}
			}
			if got := f.router.State().Section; got != tt.want {
				t.Errorf("State().Section = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNavigate_UnknownDeactivatesAll(t *testing.T) {
	f := newFixture(siteFiles())
	ctx := context.Background()

	f.router.Navigate(ctx, "about")
	f.router.Navigate(ctx, "nope")

	if active := activeSections(f.page); len(active) != 0 {
		t.Errorf("active sections = %v, want none", active)
	}
	state := f.router.State()
	if state.Section != domain.SectionUnrecognized || state.Name != "nope" {
		t.Errorf("State() = %+v", state)
	}
}

func TestNavigate_Idempotent(t *testing.T) {
	f := newFixture(siteFiles())
	ctx := context.Background()

	f.router.Navigate(ctx, "projects")
	first := f.router.State()
	f.router.Navigate(ctx, "projects")

	if f.router.State() != first {
		t.Errorf("second navigation changed state: %+v -> %+v", first, f.router.State())
	}
	if active := activeSections(f.page); len(active) != 1 {
		t.Errorf("active sections = %v", active)
	}
}

func TestNavigate_BlogListLoadsIndexOnce(t *testing.T) {
	f := newFixture(siteFiles())
	ctx := context.Background()

	f.router.Navigate(ctx, "blog")
	f.router.Navigate(ctx, "about")
	f.router.Navigate(ctx, "blog")

	if n := f.fetcher.count(content.BlogIndexPath); n != 1 {
		t.Errorf("blog index fetched %d times, want 1", n)
	}
	if f.page.PostShown() {
		t.Error("list should be shown")
	}
	if got := f.page.Fragment(view.BlogList).HTML; !strings.Contains(got, `data-slug="first"`) {
		t.Errorf("blog list not painted: %s", got)
	}
}

func TestNavigate_BlogIndexRetriedAfterFailure(t *testing.T) {
	files := siteFiles()
	delete(files, content.BlogIndexPath)
	f := newFixture(files)
	ctx := context.Background()

	f.router.Navigate(ctx, "blog")
	f.router.Navigate(ctx, "blog")

	if n := f.fetcher.count(content.BlogIndexPath); n != 2 {
		t.Errorf("blog index fetched %d times, want a retry per visit", n)
	}
	if got := f.page.Fragment(view.BlogList).HTML; got != render.BlogPlaceholder {
		t.Errorf("painted %q, want placeholder", got)
	}
}

func TestNavigate_PostFetchedEveryTime(t *testing.T) {
	f := newFixture(siteFiles())
	ctx := context.Background()

	f.router.Navigate(ctx, "#blog/first")
	f.router.Navigate(ctx, "blog")
	f.router.Navigate(ctx, "blog/first")

	if n := f.fetcher.count(content.PostPath("first")); n != 2 {
		t.Errorf("post fetched %d times, want 2", n)
	}

	state := f.router.State()
	if !state.ViewingPost() || state.BlogSlug != "first" {
		t.Errorf("State() = %+v, want post first", state)
	}
	if !f.page.PostShown() {
		t.Error("post pane should be shown")
	}
	if !f.page.IsActive(domain.SectionBlog) {
		t.Error("blog section should be active while viewing a post")
	}
	if got := f.page.Fragment(view.BlogPost).HTML; !strings.Contains(got, "<h1>First post</h1>") {
		t.Errorf("post not painted: %s", got)
	}
}

func TestNavigate_MissingPost(t *testing.T) {
	f := newFixture(siteFiles())

	f.router.Navigate(context.Background(), "blog/ghost")

	got := f.page.Fragment(view.BlogPost).HTML
	if !strings.Contains(got, "Could not load post: ghost") {
		t.Errorf("expected error view, got %s", got)
	}
	if !f.page.PostShown() {
		t.Error("error is shown in the post pane")
	}
}

func TestNavigate_SetsHash(t *testing.T) {
	f := newFixture(siteFiles())
	f.router.Navigate(context.Background(), "#readings")

	if got := f.page.Hash(); got != "readings" {
		t.Errorf("Hash() = %q, want readings", got)
	}
}

func TestTagFilter(t *testing.T) {
	f := newFixture(siteFiles())
	ctx := context.Background()
	f.router.Init(ctx)
	f.router.Navigate(ctx, "readings")

	fetchesBefore := f.fetcher.count(content.ReadingsPath)
	hashBefore := f.page.Hash()

	f.router.SetTagFilter("rust")

	got := f.page.Fragment(view.ReadingsList).HTML
	if !strings.Contains(got, "Rusty") || !strings.Contains(got, "Crab") || strings.Contains(got, "Gopher") {
		t.Errorf("filter not applied: %s", got)
	}
	if strings.Index(got, "Rusty") > strings.Index(got, "Crab") {
		t.Error("filtered readings must keep source order")
	}
	if f.router.State().TagFilter != "rust" {
		t.Errorf("State().TagFilter = %q", f.router.State().TagFilter)
	}

	f.router.ClearTagFilter()
	got = f.page.Fragment(view.ReadingsList).HTML
	if !strings.Contains(got, "Gopher") || strings.Contains(got, "reading-filter") {
		t.Errorf("filter not cleared: %s", got)
	}

	if n := f.fetcher.count(content.ReadingsPath); n != fetchesBefore {
		t.Errorf("filtering fetched readings again (%d -> %d)", fetchesBefore, n)
	}
	if f.page.Hash() != hashBefore {
		t.Errorf("filtering changed the hash to %q", f.page.Hash())
	}
}

func TestTagFilter_SurvivesNavigation(t *testing.T) {
	f := newFixture(siteFiles())
	ctx := context.Background()
	f.router.Init(ctx)

	f.router.Navigate(ctx, "readings")
	f.router.SetTagFilter("go")
	f.router.Navigate(ctx, "about")
	f.router.Navigate(ctx, "readings")

	if got := f.page.Fragment(view.ReadingsList).HTML; strings.Contains(got, "Rusty") {
		t.Errorf("filter lost after navigation: %s", got)
	}
}

func TestDispatch(t *testing.T) {
	f := newFixture(siteFiles())
	ctx := context.Background()
	f.router.Init(ctx)

	f.router.Navigate(ctx, "blog")
	list := f.page.Fragment(view.BlogList)
	if len(list.Bindings) != 2 {
		t.Fatalf("got %d list bindings, want 2", len(list.Bindings))
	}

	// activating the first item behaves like a hash change to blog/first
	if err := f.router.Dispatch(ctx, list.Bindings[0]); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if f.page.Hash() != "blog/first" || !f.page.PostShown() {
		t.Errorf("hash = %q, post shown = %v", f.page.Hash(), f.page.PostShown())
	}

	// back button
	back := f.page.Fragment(view.BlogPost).BindingsFor(view.ActionNavigate)
	if err := f.router.Dispatch(ctx, back[0]); err != nil {
		t.Fatal(err)
	}
	if f.page.Hash() != "blog" || f.page.PostShown() {
		t.Errorf("back did not return to the list")
	}

	// tag binding then clear binding
	f.router.Navigate(ctx, "readings")
	tags := f.page.Fragment(view.ReadingsList).BindingsFor(view.ActionFilterTag)
	if err := f.router.Dispatch(ctx, tags[0]); err != nil {
		t.Fatal(err)
	}
	if f.router.State().TagFilter != tags[0].Target {
		t.Errorf("TagFilter = %q, want %q", f.router.State().TagFilter, tags[0].Target)
	}
	clear := f.page.Fragment(view.ReadingsList).BindingsFor(view.ActionClearFilter)
	if len(clear) != 1 {
		t.Fatalf("expected a clear binding")
	}
	if err := f.router.Dispatch(ctx, clear[0]); err != nil {
		t.Fatal(err)
	}
	if f.router.State().TagFilter != "" {
		t.Error("clear binding did not clear the filter")
	}

	if err := f.router.Dispatch(ctx, view.Binding{}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Dispatch(zero) error = %v, want ErrUnknownAction", err)
	}
}

func TestInit(t *testing.T) {
	f := newFixture(siteFiles())
	f.page.SetHash("blog")

	f.router.Init(context.Background())

	for _, path := range []string{
		content.BlogIndexPath,
		content.PublicationsPath,
		content.ProjectsPath,
		content.ReadingsPath,
	} {
		if n := f.fetcher.count(path); n != 1 {
			t.Errorf("%s fetched %d times, want 1", path, n)
		}
	}
	if !f.page.IsActive(domain.SectionBlog) {
		t.Error("Init should apply the current hash")
	}
	for _, c := range []view.Container{view.BlogList, view.PublicationsList, view.ProjectsList, view.ReadingsList} {
		if f.page.Paints(c) != 1 {
			t.Errorf("%s painted %d times, want 1", c, f.page.Paints(c))
		}
	}
}

func TestInit_EmptyHashShowsHome(t *testing.T) {
	f := newFixture(fstest.MapFS{})
	f.router.Init(context.Background())

	if !f.page.IsActive(domain.HomeSection) {
		t.Errorf("active = %v, want home", f.page.Active())
	}
}

func TestFollowNavLinkClosesMenu(t *testing.T) {
	f := newFixture(siteFiles())

	if !f.router.ToggleMenu() {
		t.Fatal("menu should open")
	}
	f.router.FollowNavLink(context.Background(), domain.SectionContact)

	if f.page.MenuOpen() {
		t.Error("following a nav link should close the menu")
	}
	if !f.page.IsActive(domain.SectionContact) {
		t.Error("contact should be active")
	}
}

func TestConcurrentNavigation(t *testing.T) {
	f := newFixture(siteFiles())
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, frag := range []string{"blog/first", "blog/first", "readings", "blog", "projects"} {
		frag := frag
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.router.Navigate(ctx, frag)
		}()
	}
	wg.Wait()

	if active := activeSections(f.page); len(active) != 1 {
		t.Errorf("active sections = %v, want exactly one", active)
	}
}

func TestReload_RefetchesWithoutNavigating(t *testing.T) {
	f := newFixture(siteFiles())
	ctx := context.Background()
	f.router.Init(ctx)
	f.router.Navigate(ctx, "blog/first")

	f.router.Reload(ctx)

	for _, p := range []string{content.BlogIndexPath, content.PublicationsPath, content.ProjectsPath, content.ReadingsPath} {
		if got := f.fetcher.count(p); got != 2 {
			t.Errorf("%s fetched %d times, want 2", p, got)
		}
	}
	if f.page.Hash() != "blog/first" || !f.page.PostShown() {
		t.Errorf("reload changed the view: hash %q, post shown %v", f.page.Hash(), f.page.PostShown())
	}
}

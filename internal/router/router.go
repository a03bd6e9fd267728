// Package router maps location fragments to page state.
package router

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/index"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/render"
	"github.com/MrSnakeDoc/folio/internal/sources/content"
	"github.com/MrSnakeDoc/folio/internal/view"
)

var ErrUnknownAction = errors.New("unknown binding action")

// Loader fetches and paints content. Implementations never fail;
// failures end up painted as placeholders.
type Loader interface {
	LoadBlogIndex(ctx context.Context)
	LoadPost(ctx context.Context, slug string)
	LoadPublications(ctx context.Context)
	LoadProjects(ctx context.Context)
	LoadReadings(ctx context.Context)
}

// Router is the navigation state machine. Transitions are driven by
// location fragments; every transition leaves at most one section active.
//
// Loads run on the caller's goroutine. Overlapping loads for the same
// container are not sequenced: whichever resolves last is what stays
// painted.
type Router struct {
	page     *view.Page
	store    *index.ContentStore
	loader   Loader
	renderer *render.Renderer
	logger   logger.Logger

	mu    sync.RWMutex
	route domain.Route
}

// New creates a router
func New(page *view.Page, store *index.ContentStore, loader Loader, renderer *render.Renderer, log logger.Logger) *Router {
	return &Router{
		page:     page,
		store:    store,
		loader:   loader,
		renderer: renderer,
		logger:   log,
		route:    domain.Route{Section: domain.SectionUnrecognized},
	}
}

// Init runs the start-up sequence: the four collections load
// concurrently, then the current location hash is applied.
func (r *Router) Init(ctx context.Context) {
	r.Reload(ctx)
	r.Navigate(ctx, r.page.Hash())
}

// Reload fetches the four collections again and repaints their views.
// The active section and the location hash are left untouched.
func (r *Router) Reload(ctx context.Context) {
	loads := []func(context.Context){
		r.loader.LoadBlogIndex,
		r.loader.LoadPublications,
		r.loader.LoadProjects,
		r.loader.LoadReadings,
	}

	var wg sync.WaitGroup
	for _, load := range loads {
		load := load
		wg.Add(1)
		go func() {
			defer wg.Done()
			load(ctx)
		}()
	}
	wg.Wait()
}

// Navigate applies a location fragment, with or without the leading '#'.
//
//   - "" and "about" show the about section
//   - "blog" shows the post list, loading the index if not yet loaded
//   - "blog/<slug>" fetches and shows that post
//   - an unknown name deactivates every section
func (r *Router) Navigate(ctx context.Context, fragment string) {
	route := domain.ParseFragment(fragment)

	r.page.SetHash(route.Fragment)
	r.mu.Lock()
	r.route = route
	r.mu.Unlock()

	if !r.page.Activate(route.Section) {
		r.logger.Debug("no section for fragment", logger.String("fragment", route.Name))
		return
	}

	if route.Section != domain.SectionBlog {
		return
	}

	if route.Slug != "" {
		r.loader.LoadPost(ctx, route.Slug)
		return
	}

	r.page.ShowBlogList()
	if !r.store.Loaded(index.BlogIndex) {
		r.loader.LoadBlogIndex(ctx)
	}
}

// FollowNavLink navigates to a section from the navigation menu,
// closing the menu.
func (r *Router) FollowNavLink(ctx context.Context, s domain.Section) {
	r.page.CloseMenu()
	r.Navigate(ctx, s.String())
}

// ToggleMenu opens or closes the navigation menu.
func (r *Router) ToggleMenu() bool {
	return r.page.ToggleMenu()
}

// SetTagFilter restricts the readings view to tag and repaints it from
// the stored collection. No fetch, no hash change.
func (r *Router) SetTagFilter(tag string) {
	r.store.SetTagFilter(tag)
	r.repaintReadings()
}

// ClearTagFilter shows every reading again.
func (r *Router) ClearTagFilter() {
	r.store.SetTagFilter("")
	r.repaintReadings()
}

func (r *Router) repaintReadings() {
	frag, err := content.RenderReadings(r.store, r.renderer)
	if err != nil {
		r.logger.Error("failed to render readings", logger.Error(err))
		frag = view.Fragment{HTML: render.ReadingsPlaceholder}
	}
	r.page.Paint(view.ReadingsList, frag)
}

// Dispatch performs a binding produced by the renderer.
func (r *Router) Dispatch(ctx context.Context, b view.Binding) error {
	switch b.Action {
	case view.ActionNavigate:
		r.Navigate(ctx, b.Target)
	case view.ActionFilterTag:
		r.SetTagFilter(b.Target)
	case view.ActionClearFilter:
		r.ClearTagFilter()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownAction, b.Action)
	}
	return nil
}

// State returns the current navigation state.
func (r *Router) State() domain.NavigationState {
	r.mu.RLock()
	route := r.route
	r.mu.RUnlock()

	return domain.NavigationState{
		Section:   route.Section,
		Name:      route.Name,
		BlogSlug:  route.Slug,
		TagFilter: r.store.TagFilter(),
	}
}

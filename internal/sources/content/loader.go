package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/frontmatter"
	"github.com/MrSnakeDoc/folio/internal/index"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/render"
	"github.com/MrSnakeDoc/folio/internal/view"
)

// Painter receives rendered fragments.
type Painter interface {
	Paint(c view.Container, f view.Fragment)
	PaintPost(f view.Fragment)
}

// Loader fetches each collection, stores it and paints it.
// Load methods never return errors: a failure is logged and the
// collection's placeholder is painted instead. Each load paints once.
type Loader struct {
	fetcher  Fetcher
	store    *index.ContentStore
	renderer *render.Renderer
	page     Painter
	logger   logger.Logger
}

// NewLoader creates a content loader
func NewLoader(fetcher Fetcher, store *index.ContentStore, renderer *render.Renderer, page Painter, log logger.Logger) *Loader {
	return &Loader{
		fetcher:  fetcher,
		store:    store,
		renderer: renderer,
		page:     page,
		logger:   log,
	}
}

func decode[T any](ctx context.Context, f Fetcher, path string) (T, error) {
	var v T

	data, err := f.Fetch(ctx, path)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return v, nil
}

func (l *Loader) failed(path string, err error) {
	l.logger.Warn("content load failed",
		logger.String("path", path),
		logger.Error(err))
}

func (l *Loader) loaded(path string, count int) {
	l.logger.Debug("content loaded",
		logger.String("path", path),
		logger.Int("count", count))
}

// paint renders with fn and paints the result, or the placeholder if
// rendering fails.
func (l *Loader) paint(c view.Container, path, placeholder string, fn func() (view.Fragment, error)) {
	frag, err := fn()
	if err != nil {
		l.failed(path, fmt.Errorf("%w: %w", ErrParse, err))
		frag = view.Fragment{HTML: placeholder}
	}
	l.page.Paint(c, frag)
}

// LoadBlogIndex fetches the blog index and paints the post list.
func (l *Loader) LoadBlogIndex(ctx context.Context) {
	posts, err := decode[[]domain.BlogSummary](ctx, l.fetcher, BlogIndexPath)
	if err != nil {
		l.failed(BlogIndexPath, err)
		l.page.Paint(view.BlogList, view.Fragment{HTML: render.BlogPlaceholder})
		return
	}

	l.store.SetBlogIndex(posts)
	l.loaded(BlogIndexPath, len(posts))
	l.paint(view.BlogList, BlogIndexPath, render.BlogPlaceholder, func() (view.Fragment, error) {
		return l.renderer.BlogList(posts)
	})
}

// LoadPost fetches a single post and shows it in place of the list.
// Posts are not cached; every call fetches.
func (l *Loader) LoadPost(ctx context.Context, slug string) {
	path := PostPath(slug)

	data, err := l.fetcher.Fetch(ctx, path)
	if err != nil {
		l.failed(path, err)
		l.page.PaintPost(l.renderer.PostError(slug, err))
		return
	}

	doc := frontmatter.Parse(string(data))
	post := domain.BlogPost{
		Slug:  slug,
		Title: doc.Get("title"),
		Date:  doc.Get("date"),
		Body:  doc.Body,
	}

	frag, err := l.renderer.Post(post)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParse, err)
		l.failed(path, err)
		l.page.PaintPost(l.renderer.PostError(slug, err))
		return
	}

	l.logger.Debug("post loaded", logger.String("slug", slug))
	l.page.PaintPost(frag)
}

// LoadPublications fetches and paints the publications list.
func (l *Loader) LoadPublications(ctx context.Context) {
	pubs, err := decode[[]domain.Publication](ctx, l.fetcher, PublicationsPath)
	if err != nil {
		l.failed(PublicationsPath, err)
		l.page.Paint(view.PublicationsList, view.Fragment{HTML: render.PublicationsPlaceholder})
		return
	}

	l.store.SetPublications(pubs)
	l.loaded(PublicationsPath, len(pubs))
	l.paint(view.PublicationsList, PublicationsPath, render.PublicationsPlaceholder, func() (view.Fragment, error) {
		return l.renderer.Publications(pubs)
	})
}

// LoadProjects fetches and paints the projects list.
func (l *Loader) LoadProjects(ctx context.Context) {
	projects, err := decode[[]domain.Project](ctx, l.fetcher, ProjectsPath)
	if err != nil {
		l.failed(ProjectsPath, err)
		l.page.Paint(view.ProjectsList, view.Fragment{HTML: render.ProjectsPlaceholder})
		return
	}

	l.store.SetProjects(projects)
	l.loaded(ProjectsPath, len(projects))
	l.paint(view.ProjectsList, ProjectsPath, render.ProjectsPlaceholder, func() (view.Fragment, error) {
		return l.renderer.Projects(projects)
	})
}

// LoadReadings fetches the reading list and paints it under the active
// tag filter.
func (l *Loader) LoadReadings(ctx context.Context) {
	readings, err := decode[[]domain.Reading](ctx, l.fetcher, ReadingsPath)
	if err != nil {
		l.failed(ReadingsPath, err)
		l.page.Paint(view.ReadingsList, view.Fragment{HTML: render.ReadingsPlaceholder})
		return
	}

	l.store.SetReadings(readings)
	l.loaded(ReadingsPath, len(readings))
	l.paint(view.ReadingsList, ReadingsPath, render.ReadingsPlaceholder, func() (view.Fragment, error) {
		return RenderReadings(l.store, l.renderer)
	})
}

// RenderReadings renders the stored readings under the store's tag filter.
func RenderReadings(store *index.ContentStore, renderer *render.Renderer) (view.Fragment, error) {
	visible, filter := store.VisibleReadings()
	return renderer.Readings(store.Readings(), visible, filter)
}

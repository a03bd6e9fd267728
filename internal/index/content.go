package index

import (
	"slices"
	"sync"
	"time"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// Collection names one of the list collections held by the store.
type Collection string

const (
	BlogIndex    Collection = "blog-index"
	Publications Collection = "publications"
	Projects     Collection = "projects"
	Readings     Collection = "readings"
)

// ContentStore holds the last-fetched copy of each collection plus the
// active readings tag filter. It starts empty; a collection is only
// replaced wholesale, and the last writer wins.
type ContentStore struct {
	mu           sync.RWMutex
	blogIndex    []domain.BlogSummary
	publications []domain.Publication
	projects     []domain.Project
	readings     []domain.Reading
	tagFilter    string
	loadedAt     map[Collection]time.Time // Collection -> time of last successful load
}

// NewContentStore creates an empty content store
func NewContentStore() *ContentStore {
	return &ContentStore{
		loadedAt: make(map[Collection]time.Time),
	}
}

// SetBlogIndex replaces the blog index
func (s *ContentStore) SetBlogIndex(posts []domain.BlogSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blogIndex = slices.Clone(posts)
	s.loadedAt[BlogIndex] = time.Now()
}

// SetPublications replaces the publications list
func (s *ContentStore) SetPublications(pubs []domain.Publication) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.publications = slices.Clone(pubs)
	s.loadedAt[Publications] = time.Now()
}

// SetProjects replaces the projects list
func (s *ContentStore) SetProjects(projects []domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = slices.Clone(projects)
	s.loadedAt[Projects] = time.Now()
}

// SetReadings replaces the readings list
func (s *ContentStore) SetReadings(readings []domain.Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.readings = slices.Clone(readings)
	s.loadedAt[Readings] = time.Now()
}

// BlogIndex returns the blog index in source order
func (s *ContentStore) BlogIndex() []domain.BlogSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.blogIndex)
}

// Publications returns the publications in source order
func (s *ContentStore) Publications() []domain.Publication {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.publications)
}

// Projects returns the projects in source order
func (s *ContentStore) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.projects)
}

// Readings returns every reading in source order, ignoring the tag filter
func (s *ContentStore) Readings() []domain.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.readings)
}

// FilterReadingsByTag returns the readings carrying tag, in source order.
// It does not touch the stored tag filter.
func (s *ContentStore) FilterReadingsByTag(tag string) []domain.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterByTag(s.readings, tag)
}

func filterByTag(readings []domain.Reading, tag string) []domain.Reading {
	out := make([]domain.Reading, 0, len(readings))
	for _, r := range readings {
		if r.HasTag(tag) {
			out = append(out, r)
		}
	}
	return out
}

// SetTagFilter sets the active readings filter. An empty tag clears it.
func (s *ContentStore) SetTagFilter(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tagFilter = tag
}

// TagFilter returns the active readings filter, "" when none
func (s *ContentStore) TagFilter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tagFilter
}

// VisibleReadings returns the readings to display along with the filter
// they were selected with: the filtered subset when a filter is active,
// every reading otherwise. Both come from the same snapshot.
func (s *ContentStore) VisibleReadings() ([]domain.Reading, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tagFilter == "" {
		return slices.Clone(s.readings), ""
	}
	return filterByTag(s.readings, s.tagFilter), s.tagFilter
}

// Loaded reports whether c has been populated by at least one successful load
func (s *ContentStore) Loaded(c Collection) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.loadedAt[c]
	return ok
}

// LastLoad returns the time of the last successful load of c
func (s *ContentStore) LastLoad(c Collection) time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt[c]
}

// Count returns the number of entries in c
func (s *ContentStore) Count(c Collection) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch c {
	case BlogIndex:
		return len(s.blogIndex)
	case Publications:
		return len(s.publications)
	case Projects:
		return len(s.projects)
	case Readings:
		return len(s.readings)
	default:
		return 0
	}
}

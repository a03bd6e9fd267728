package view

import (
	"sync"

	"github.com/MrSnakeDoc/folio/internal/domain"
)

// Container names an element the renderer paints into.
type Container string

const (
	BlogList         Container = "blog-list"
	BlogPost         Container = "blog-post-content"
	PublicationsList Container = "publications-list"
	ProjectsList     Container = "projects-list"
	ReadingsList     Container = "readings-list"
	TerminalOutput   Container = "term-output"
)

// SectionContainers maps the sections that display loaded content to the
// container they show. The blog section switches between BlogList and
// BlogPost.
var SectionContainers = map[domain.Section]Container{
	domain.SectionPublications: PublicationsList,
	domain.SectionProjects:     ProjectsList,
	domain.SectionReadings:     ReadingsList,
}

// Page is the document model: which sections exist and which is active,
// what each container holds, which blog pane is shown, the location hash,
// the menu state and the theme. Safe for concurrent use.
type Page struct {
	mu         sync.RWMutex
	sections   []domain.Section
	active     domain.Section
	containers map[Container]Fragment
	paints     map[Container]int
	postShown  bool
	hash       string
	menuOpen   bool
	theme      string
}

// NewPage creates a page rendering the given sections, or every known
// section when none are given. No section is active until Activate.
func NewPage(sections ...domain.Section) *Page {
	if len(sections) == 0 {
		sections = domain.Sections()
	}
	return &Page{
		sections:   sections,
		active:     domain.SectionUnrecognized,
		containers: make(map[Container]Fragment),
		paints:     make(map[Container]int),
	}
}

// Sections returns the rendered sections in page order.
func (p *Page) Sections() []domain.Section {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return append([]domain.Section(nil), p.sections...)
}

func (p *Page) rendered(s domain.Section) bool {
	for _, r := range p.sections {
		if r == s {
			return true
		}
	}
	return false
}

// Activate deactivates every section, then activates s if the page renders
// it. It reports whether a section is now active.
func (p *Page) Activate(s domain.Section) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.active = domain.SectionUnrecognized
	if s.Known() && p.rendered(s) {
		p.active = s
	}
	return p.active.Known()
}

// Active returns the active section, SectionUnrecognized when none.
func (p *Page) Active() domain.Section {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.active
}

// IsActive reports whether s is the active section.
func (p *Page) IsActive(s domain.Section) bool {
	return s.Known() && p.Active() == s
}

// NavLinkActive reports whether the nav link for s is highlighted.
// Nav links mirror section activation.
func (p *Page) NavLinkActive(s domain.Section) bool {
	return p.IsActive(s)
}

// Paint replaces the content of c.
func (p *Page) Paint(c Container, f Fragment) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.containers[c] = f
	p.paints[c]++
}

// PaintPost fills the post pane and shows it in place of the list.
func (p *Page) PaintPost(f Fragment) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.containers[BlogPost] = f
	p.paints[BlogPost]++
	p.postShown = true
}

// ShowBlogList hides the post pane and shows the list.
func (p *Page) ShowBlogList() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.postShown = false
}

// PostShown reports whether the post pane is visible (and the list hidden).
func (p *Page) PostShown() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.postShown
}

// Fragment returns the current content of c.
func (p *Page) Fragment(c Container) Fragment {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.containers[c]
}

// Paints returns how many times c has been painted.
func (p *Page) Paints(c Container) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.paints[c]
}

// Visible returns the container shown by the active section, if any.
func (p *Page) Visible() (Container, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.active == domain.SectionBlog {
		if p.postShown {
			return BlogPost, true
		}
		return BlogList, true
	}
	c, ok := SectionContainers[p.active]
	return c, ok
}

// SetHash records the location hash (without '#').
func (p *Page) SetHash(fragment string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.hash = fragment
}

// Hash returns the location hash (without '#').
func (p *Page) Hash() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.hash
}

// ToggleMenu flips the navigation menu and returns the new state.
func (p *Page) ToggleMenu() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.menuOpen = !p.menuOpen
	return p.menuOpen
}

// CloseMenu closes the navigation menu.
func (p *Page) CloseMenu() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.menuOpen = false
}

// MenuOpen reports whether the navigation menu is open.
func (p *Page) MenuOpen() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.menuOpen
}

// SetTheme records the document theme attribute.
func (p *Page) SetTheme(theme string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.theme = theme
}

// Theme returns the document theme attribute.
func (p *Page) Theme() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.theme
}

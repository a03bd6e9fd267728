// Package render turns content collections into page fragments.
//
// Every text field is HTML-escaped; only a post body is rendered from
// Markdown. Renderers are pure: the same input yields the same fragment.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/MrSnakeDoc/folio/internal/domain"
	"github.com/MrSnakeDoc/folio/internal/view"
)

// Placeholders painted when a collection is empty or failed to load.
const (
	BlogPlaceholder         = `<p class="muted">More to come.</p>`
	PublicationsPlaceholder = `<p class="muted">No publications yet.</p>`
	ProjectsPlaceholder     = `<p class="muted">No projects yet.</p>`
	ReadingsPlaceholder     = `<p class="muted">More to come.</p>`
)

// UntitledPost is shown when a post has no title metadata.
const UntitledPost = "Untitled"

// Options configures a Renderer.
type Options struct {
	// HighlightAuthor is wrapped in <strong class="author-highlight"> wherever
	// it appears in a publication's author list. Empty disables highlighting.
	HighlightAuthor string

	// CodeStyle is the syntax highlighting style for code blocks in posts.
	CodeStyle string
}

// Renderer produces view fragments.
type Renderer struct {
	highlight string
	md        goldmark.Markdown
}

// New creates a renderer
func New(opts Options) *Renderer {
	if opts.CodeStyle == "" {
		opts.CodeStyle = DefaultCodeStyle
	}
	return &Renderer{
		highlight: opts.HighlightAuthor,
		md:        newMarkdown(opts.CodeStyle),
	}
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

// BlogList renders the blog index. Each item navigates to its post.
func (r *Renderer) BlogList(posts []domain.BlogSummary) (view.Fragment, error) {
	if len(posts) == 0 {
		return view.Fragment{HTML: BlogPlaceholder}, nil
	}

	out, err := execute("blog-list", posts)
	if err != nil {
		return view.Fragment{}, err
	}

	bindings := make([]view.Binding, 0, len(posts))
	for _, p := range posts {
		bindings = append(bindings, view.Binding{
			Action: view.ActionNavigate,
			Target: domain.PostFragment(p.Slug),
			Label:  p.Title,
		})
	}
	return view.Fragment{HTML: out, Bindings: bindings}, nil
}

func backBinding() view.Binding {
	return view.Binding{
		Action: view.ActionNavigate,
		Target: domain.SectionBlog.String(),
		Label:  "Back to posts",
	}
}

// Post renders a single post: escaped title and date, Markdown body.
func (r *Renderer) Post(post domain.BlogPost) (view.Fragment, error) {
	body, err := r.Markdown(post.Body)
	if err != nil {
		return view.Fragment{}, err
	}

	title := post.Title
	if title == "" {
		title = UntitledPost
	}

	out, err := execute("post", struct {
		Title string
		Date  string
		Body  template.HTML
	}{title, post.Date, body})
	if err != nil {
		return view.Fragment{}, err
	}

	return view.Fragment{HTML: out, Bindings: []view.Binding{backBinding()}}, nil
}

// PostError renders the failure notice for a post that could not be loaded.
func (r *Renderer) PostError(slug string, cause error) view.Fragment {
	reason := ""
	if cause != nil {
		reason = cause.Error()
	}

	out, err := execute("post-error", struct {
		Slug   string
		Reason string
	}{slug, reason})
	if err != nil {
		out = `<p class="error">Could not load post: ` + template.HTMLEscapeString(slug) + `</p>`
	}
	return view.Fragment{HTML: out, Bindings: []view.Binding{backBinding()}}
}

type publicationView struct {
	Title   string
	Authors template.HTML
	Venue   string
	Year    string
	Links   []domain.Link
}

// Publications renders the publications list.
func (r *Renderer) Publications(pubs []domain.Publication) (view.Fragment, error) {
	if len(pubs) == 0 {
		return view.Fragment{HTML: PublicationsPlaceholder}, nil
	}

	items := make([]publicationView, 0, len(pubs))
	for _, p := range pubs {
		items = append(items, publicationView{
			Title:   p.Title,
			Authors: r.HighlightAuthors(p.Authors),
			Venue:   p.Venue,
			Year:    string(p.Year),
			Links:   p.LinkList(),
		})
	}

	out, err := execute("publications", items)
	if err != nil {
		return view.Fragment{}, err
	}
	return view.Fragment{HTML: out}, nil
}

// HighlightAuthors escapes an author list, then wraps every occurrence
// of the highlighted name.
func (r *Renderer) HighlightAuthors(authors string) template.HTML {
	escaped := template.HTMLEscapeString(authors)
	if r.highlight == "" {
		return template.HTML(escaped)
	}

	name := template.HTMLEscapeString(r.highlight)
	return template.HTML(strings.ReplaceAll(escaped, name, `<strong class="author-highlight">`+name+`</strong>`))
}

// Projects renders the projects list.
func (r *Renderer) Projects(projects []domain.Project) (view.Fragment, error) {
	if len(projects) == 0 {
		return view.Fragment{HTML: ProjectsPlaceholder}, nil
	}

	out, err := execute("projects", projects)
	if err != nil {
		return view.Fragment{}, err
	}
	return view.Fragment{HTML: out}, nil
}

type tagView struct {
	Name   string
	Active bool
}

type readingView struct {
	Title  string
	Author string
	URL    string
	Tags   []tagView
	Note   string
	Added  string
}

// Readings renders the reading list. all is the full collection and only
// decides whether the placeholder is shown; visible is what gets listed.
// A non-empty filter adds the filter bar and marks matching tags active.
func (r *Renderer) Readings(all, visible []domain.Reading, filter string) (view.Fragment, error) {
	if len(all) == 0 {
		return view.Fragment{HTML: ReadingsPlaceholder}, nil
	}

	var bindings []view.Binding
	if filter != "" {
		bindings = append(bindings, view.Binding{
			Action: view.ActionClearFilter,
			Label:  "Clear",
		})
	}

	items := make([]readingView, 0, len(visible))
	for _, rd := range visible {
		item := readingView{
			Title:  rd.Title,
			Author: rd.Author,
			URL:    rd.URL,
			Note:   rd.Note,
			Added:  rd.Added,
		}
		for _, tag := range rd.Tags {
			item.Tags = append(item.Tags, tagView{Name: tag, Active: tag == filter})
			bindings = append(bindings, view.Binding{
				Action: view.ActionFilterTag,
				Target: tag,
				Label:  tag,
			})
		}
		items = append(items, item)
	}

	out, err := execute("readings", struct {
		Filter string
		Items  []readingView
	}{filter, items})
	if err != nil {
		return view.Fragment{}, err
	}
	return view.Fragment{HTML: out, Bindings: bindings}, nil
}

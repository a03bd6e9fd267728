package domain

import (
	"encoding/json"
	"fmt"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// BlogSummary is one entry of the blog index.
// Slug is the unique key and part of the post's retrieval path.
type BlogSummary struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

// BlogPost is a single post, fetched lazily per navigation and never cached.
type BlogPost struct {
	Slug  string
	Title string
	Date  string
	Body  string // Markdown
}

// Publication is one entry of the publications list.
type Publication struct {
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Venue   string `json:"venue"`
	Year    Year   `json:"year"`

	// Links maps a label to a URL. Source order is kept for display.
	Links *orderedmap.OrderedMap[string, string] `json:"links,omitempty"`
}

// Link is a labelled URL.
type Link struct {
	Label string
	URL   string
}

// LinkList returns the publication links in source order.
func (p Publication) LinkList() []Link {
	if p.Links == nil {
		return nil
	}
	links := make([]Link, 0, p.Links.Len())
	for pair := p.Links.Oldest(); pair != nil; pair = pair.Next() {
		links = append(links, Link{Label: pair.Key, URL: pair.Value})
	}
	return links
}

// Project is one entry of the projects list.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	GitHub      string   `json:"github,omitempty"`
	Demo        string   `json:"demo,omitempty"`
}

// Reading is one entry of the annotated reading list.
type Reading struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	URL    string   `json:"url"`
	Tags   []string `json:"tags,omitempty"`
	Note   string   `json:"note,omitempty"`
	Added  string   `json:"added"`
}

// HasTag reports whether the reading carries tag (exact match).
func (r Reading) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// Year accepts both JSON numbers and strings ("2024" and 2024).
type Year string

func (y *Year) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*y = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*y = Year(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid year %s: %w", data, err)
	}
	*y = Year(n.String())
	return nil
}

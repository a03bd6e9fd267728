package domain

import "strings"

// BlogPrefix marks a fragment that addresses a single blog post.
const BlogPrefix = "blog/"

// Route is a parsed location hash fragment.
type Route struct {
	Fragment string  // Normalised fragment (no leading '#')
	Section  Section // Target view
	Name     string  // View name as written (kept for unrecognized names)
	Slug     string  // Post slug, only set for blog/<slug>
}

// ParseFragment resolves a location hash into a Route.
// Examples:
//   - "" -> about
//   - "#readings" -> readings
//   - "blog/my-post" -> blog, slug "my-post"
//   - "nope" -> unrecognized, name "nope"
func ParseFragment(fragment string) Route {
	fragment = strings.TrimPrefix(fragment, "#")

	if fragment == "" {
		return Route{
			Fragment: fragment,
			Section:  HomeSection,
			Name:     HomeSection.String(),
		}
	}

	if slug, ok := strings.CutPrefix(fragment, BlogPrefix); ok {
		// "blog/" with nothing after it is the post list
		return Route{
			Fragment: fragment,
			Section:  SectionBlog,
			Name:     SectionBlog.String(),
			Slug:     slug,
		}
	}

	return Route{
		Fragment: fragment,
		Section:  ParseSection(fragment),
		Name:     fragment,
	}
}

// PostFragment returns the fragment addressing the post with the given slug.
func PostFragment(slug string) string {
	return BlogPrefix + slug
}

// NavigationState is the router's view of where the user is.
type NavigationState struct {
	// Section is the active view. SectionUnrecognized means no view is active.
	Section Section

	// Name is the requested view name; differs from Section.String()
	// only for unrecognized names.
	Name string

	// BlogSlug is set only while a single post is viewed (Section == SectionBlog).
	BlogSlug string

	// TagFilter is the readings-view filter. Only meaningful while
	// Section == SectionReadings; it survives navigation away and back.
	TagFilter string
}

// ViewingPost reports whether a single blog post is being viewed.
func (s NavigationState) ViewingPost() bool {
	return s.Section == SectionBlog && s.BlogSlug != ""
}

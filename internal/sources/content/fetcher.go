// Package content retrieves the site's content collections and paints them.
package content

import (
	"context"
	"errors"
)

var (
	// ErrTransport means the resource could not be retrieved
	// or the server answered with a non-success status.
	ErrTransport = errors.New("retrieval failed")

	// ErrParse means the payload could not be decoded.
	ErrParse = errors.New("malformed payload")
)

// Retrieval paths, relative to the content root.
const (
	BlogIndexPath    = "content/blog/index.json"
	PublicationsPath = "content/publications.json"
	ProjectsPath     = "content/projects.json"
	ReadingsPath     = "content/readings.json"
)

// PostPath returns the retrieval path of a blog post.
func PostPath(slug string) string {
	return "content/blog/" + slug + ".md"
}

// Fetcher retrieves a resource relative to the content root.
// Failures wrap ErrTransport.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
)

// FSFetcher retrieves content from a file system rooted at the content root.
type FSFetcher struct {
	fsys fs.FS
}

// NewFSFetcher creates a fetcher reading from fsys.
func NewFSFetcher(fsys fs.FS) *FSFetcher {
	return &FSFetcher{fsys: fsys}
}

// NewDirFetcher creates a fetcher reading from a local directory.
func NewDirFetcher(dir string) *FSFetcher {
	return NewFSFetcher(os.DirFS(dir))
}

// Fetch reads path. Paths escaping the root are rejected.
func (f *FSFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if !fs.ValidPath(path) {
		return nil, fmt.Errorf("%w: invalid path %q", ErrTransport, path)
	}

	data, err := fs.ReadFile(f.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return data, nil
}

package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-animalgen/pkg/source"
)

// Loader implements source.Loader over the local filesystem or a configured
// fs.FS.
type Loader struct {
	fs fs.FS
}

var _ source.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options source.LoaderOptions) *Loader {
	return &Loader{fs: options.FileSystem}
}

// Load reads the document behind src. Read failures name the source kind and
// location and wrap the underlying error.
func (l *Loader) Load(ctx context.Context, src source.Source) ([]byte, error) {
	if src == nil {
		return nil, errors.New("loader: source is nil")
	}

	kind, location := src.Kind(), src.Location()

	var read func() ([]byte, error)
	switch kind {
	case source.KindFile:
		if location == "" || location == "." {
			return nil, errors.New("loader: file path is required")
		}
		read = func() ([]byte, error) {
			abs, err := filepath.Abs(location)
			if err != nil {
				return nil, err
			}
			return os.ReadFile(abs)
		}
	case source.KindFS:
		if l.fs == nil {
			return nil, errors.New("loader: filesystem is not configured")
		}
		if location == "" {
			return nil, errors.New("loader: fs path is required")
		}
		read = func() ([]byte, error) {
			return fs.ReadFile(l.fs, location)
		}
	default:
		return nil, fmt.Errorf("loader: unsupported source kind %q", kind)
	}

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("loader: read %s %s: %w", kind, location, ctx.Err())
	default:
	}

	data, err := read()
	if err != nil {
		return nil, fmt.Errorf("loader: read %s %s: %w", kind, location, err)
	}
	return data, nil
}

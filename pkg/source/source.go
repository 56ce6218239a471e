// Package source describes where the data file and page shell are read from.
package source

import (
	"context"
	"io/fs"
	"path/filepath"
)

// Kind identifies the backing store of a Source.
type Kind string

const (
	KindFile Kind = "file"
	KindFS   Kind = "fs"
)

// Source references a readable document.
type Source interface {
	Location() string
	Kind() Kind
}

// fileSource identifies on-disk documents.
type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }

func (s fileSource) Kind() Kind { return KindFile }

// FromFile returns a Source pointing to a file path.
func FromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }

func (s fsSource) Kind() Kind { return KindFS }

// FromFS returns a Source identifying a resource inside the loader's fs.FS.
func FromFS(name string) Source {
	return fsSource{name: name}
}

// Loader reads the raw bytes behind a Source. Implementations live under
// internal/loader.
type Loader interface {
	Load(ctx context.Context, src Source) ([]byte, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem backs KindFS sources. Nil disables them.
	FileSystem fs.FS
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for KindFS sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// NewLoaderOptions applies options and returns the resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

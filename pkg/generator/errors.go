package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAttributes is returned in local mode when no record carries a
	// usable filter value.
	ErrNoAttributes = errors.New("generator: no filter values found in data")
	// ErrUnknownMode is returned for an unsupported Request.Mode.
	ErrUnknownMode = errors.New("generator: unknown mode")
	// ErrNoSearcher is returned in remote mode without a configured searcher.
	ErrNoSearcher = errors.New("generator: remote lookup is not configured")
)

// FileIOError reports a failed read or write of one of the run's files.
type FileIOError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileIOError) Error() string {
	return fmt.Sprintf("generator: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileIOError) Unwrap() error {
	return e.Err
}

package animalgen

import (
	internalloader "github.com/goliatone/go-animalgen/internal/loader"
	"github.com/goliatone/go-animalgen/pkg/source"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...source.LoaderOption) source.Loader {
	cfg := source.NewLoaderOptions(options...)
	return internalloader.New(cfg)
}

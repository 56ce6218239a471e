// Package generator runs the two animal page pipelines: local (data file
// filtered by skin type) and remote (API lookup by name).
package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	internalloader "github.com/goliatone/go-animalgen/internal/loader"
	"github.com/goliatone/go-animalgen/pkg/animal"
	"github.com/goliatone/go-animalgen/pkg/cards"
	"github.com/goliatone/go-animalgen/pkg/compose"
	"github.com/goliatone/go-animalgen/pkg/prompt"
	"github.com/goliatone/go-animalgen/pkg/source"
)

// Mode selects the pipeline a Request runs.
type Mode string

const (
	// ModeLocal loads records from a data file and filters them by skin type.
	ModeLocal Mode = "local"
	// ModeRemote asks for a name and fetches matching records from the API.
	ModeRemote Mode = "remote"
)

// DefaultOutputPath is used when a Request omits OutputPath.
const DefaultOutputPath = "animals.html"

const missingAttributeNote = "Note: animals with missing skin_type will be excluded."

// Searcher fetches records matching a term. *lookup.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, term string) ([]animal.Record, error)
}

// WriteFunc persists the final document, replacing any existing file.
type WriteFunc func(path string, data []byte) error

// Request describes one run.
type Request struct {
	Mode Mode
	// Data is required in local mode.
	Data       source.Source
	Template   source.Source
	OutputPath string
}

// Result summarises a completed run.
type Result struct {
	Mode       Mode
	Filter     string
	SearchTerm string
	Count      int
	OutputPath string
	Strategy   compose.Strategy
}

// Option customises the Generator.
type Option func(*Generator)

// WithLoader injects the loader used for the data file and the shell.
func WithLoader(loader source.Loader) Option {
	return func(g *Generator) {
		if loader != nil {
			g.loader = loader
		}
	}
}

// WithSearcher configures remote lookups.
func WithSearcher(searcher Searcher) Option {
	return func(g *Generator) {
		g.searcher = searcher
	}
}

// WithPromptDriver overrides the console driver.
func WithPromptDriver(driver prompt.Driver) Option {
	return func(g *Generator) {
		if driver != nil {
			g.driver = driver
		}
	}
}

// WithSerializer overrides the card serializer.
func WithSerializer(serializer *cards.Serializer) Option {
	return func(g *Generator) {
		if serializer != nil {
			g.serializer = serializer
		}
	}
}

// WithWriter overrides how the output document is written.
func WithWriter(write WriteFunc) Option {
	return func(g *Generator) {
		if write != nil {
			g.write = write
		}
	}
}

// WithLogger attaches a logger. The default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator runs the local and remote pipelines.
type Generator struct {
	loader     source.Loader
	searcher   Searcher
	driver     prompt.Driver
	serializer *cards.Serializer
	write      WriteFunc
	logger     *zap.Logger
}

// New constructs a Generator. Missing dependencies fall back to the file
// loader, the survey driver, and the default serializer.
func New(options ...Option) *Generator {
	g := &Generator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	if g.loader == nil {
		g.loader = internalloader.New(source.NewLoaderOptions())
	}
	if g.driver == nil {
		g.driver = prompt.NewSurveyDriver()
	}
	if g.serializer == nil {
		g.serializer = cards.New()
	}
	if g.write == nil {
		g.write = WriteFile
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	return g
}

// Generate runs the pipeline selected by req.Mode and writes the document.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("generator: context is required")
	}
	if req.Mode != ModeLocal && req.Mode != ModeRemote {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMode, req.Mode)
	}
	if req.Template == nil {
		return Result{}, errors.New("generator: template source is required")
	}
	output := strings.TrimSpace(req.OutputPath)
	if output == "" {
		output = DefaultOutputPath
	}

	result := Result{Mode: req.Mode, OutputPath: output}

	shell, err := g.loader.Load(ctx, req.Template)
	if err != nil {
		g.logger.Error("read template failed",
			zap.String("path", req.Template.Location()),
			zap.Error(err),
		)
		return Result{}, &FileIOError{Op: "read", Path: req.Template.Location(), Err: err}
	}

	var records []animal.Record
	switch req.Mode {
	case ModeLocal:
		records, result.Filter, err = g.local(ctx, req.Data)
	case ModeRemote:
		records, result.SearchTerm, err = g.remote(ctx)
	}
	if err != nil {
		return Result{}, err
	}

	fragment := g.serializer.Collection(records)
	document, strategy := compose.Compose(string(shell), fragment)
	result.Strategy = strategy
	result.Count = len(records)

	g.logger.Debug("composed document",
		zap.String("strategy", string(strategy)),
		zap.Int("records", len(records)),
	)

	if err := g.write(output, []byte(document)); err != nil {
		g.logger.Error("write output failed",
			zap.String("path", output),
			zap.Error(err),
		)
		return Result{}, &FileIOError{Op: "write", Path: output, Err: err}
	}

	g.logger.Info("wrote output",
		zap.String("path", output),
		zap.String("mode", string(req.Mode)),
		zap.Int("records", result.Count),
	)
	return result, nil
}

func (g *Generator) local(ctx context.Context, data source.Source) ([]animal.Record, string, error) {
	if data == nil {
		return nil, "", errors.New("generator: data source is required in local mode")
	}

	raw, err := g.loader.Load(ctx, data)
	if err != nil {
		g.logger.Error("read data failed",
			zap.String("path", data.Location()),
			zap.Error(err),
		)
		return nil, "", &FileIOError{Op: "read", Path: data.Location(), Err: err}
	}

	records, err := animal.Decode(raw, animal.FormatFromPath(data.Location()))
	if err != nil {
		return nil, "", fmt.Errorf("generator: parse %s: %w", data.Location(), err)
	}
	g.logger.Debug("loaded records", zap.Int("count", len(records)))

	skinTypes := animal.SkinTypes(records)
	if len(skinTypes) == 0 {
		return nil, "", ErrNoAttributes
	}

	selected, err := prompt.SelectValue(ctx, g.driver, prompt.SelectConfig{
		Attribute: animal.KeySkinType,
		Options:   skinTypes,
		Note:      missingAttributeNote,
	})
	if err != nil {
		return nil, "", err
	}

	return animal.FilterBySkinType(records, selected), selected, nil
}

func (g *Generator) remote(ctx context.Context) ([]animal.Record, string, error) {
	if g.searcher == nil {
		return nil, "", ErrNoSearcher
	}

	term, err := prompt.SearchTerm(ctx, g.driver, "")
	if err != nil {
		return nil, "", err
	}

	records, err := g.searcher.Search(ctx, term)
	if err != nil {
		g.logger.Error("lookup failed", zap.String("term", term), zap.Error(err))
		return nil, "", err
	}
	return records, term, nil
}

// WriteFile replaces path with data, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

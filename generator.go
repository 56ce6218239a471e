// Package animalgen renders animal records into a static HTML page, either
// from a local data file filtered by skin type or from the remote animals API.
package animalgen

import (
	"context"

	"github.com/goliatone/go-animalgen/pkg/generator"
	"github.com/goliatone/go-animalgen/pkg/source"
)

// Result aliases generator.Result for callers using the top-level helpers.
type Result = generator.Result

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// GenerateLocal runs the local pipeline: load data, prompt for a skin type,
// filter, render, and write output.
func GenerateLocal(ctx context.Context, data, template source.Source, output string, options ...generator.Option) (Result, error) {
	return generator.New(options...).Generate(ctx, generator.Request{
		Mode:       generator.ModeLocal,
		Data:       data,
		Template:   template,
		OutputPath: output,
	})
}

// GenerateRemote runs the remote pipeline: prompt for a name, look it up,
// render, and write output. Pass generator.WithSearcher with a lookup client.
func GenerateRemote(ctx context.Context, template source.Source, output string, options ...generator.Option) (Result, error) {
	return generator.New(options...).Generate(ctx, generator.Request{
		Mode:       generator.ModeRemote,
		Template:   template,
		OutputPath: output,
	})
}

// BuiltinShellOptions returns the loader option and source that read the
// embedded page shell.
func BuiltinShellOptions() (source.LoaderOption, source.Source) {
	return source.WithFileSystem(ShellFS()), source.FromFS(ShellName)
}

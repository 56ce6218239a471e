package generator

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	internalloader "github.com/goliatone/go-animalgen/internal/loader"
	"github.com/goliatone/go-animalgen/pkg/animal"
	"github.com/goliatone/go-animalgen/pkg/cards"
	"github.com/goliatone/go-animalgen/pkg/compose"
	"github.com/goliatone/go-animalgen/pkg/source"
	"github.com/goliatone/go-animalgen/pkg/testsupport"
)

const shell = "<ul class=\"cards\">\n__REPLACE_ANIMALS_INFO__\n</ul>\n"

type stubSearcher struct {
	records []animal.Record
	err     error
	terms   []string
}

func (s *stubSearcher) Search(_ context.Context, term string) ([]animal.Record, error) {
	s.terms = append(s.terms, term)
	return s.records, s.err
}

func strPtr(s string) *string { return &s }

func TestGenerateLocal(t *testing.T) {
	dataPath := testsupport.WriteFile(t, "animals_data.json", testsupport.AnimalsJSON)
	templatePath := testsupport.WriteFile(t, "animals_template.html", shell)
	output := filepath.Join(t.TempDir(), "out", "animals.html")
	driver := &testsupport.ScriptedDriver{Inputs: []string{"Feathers", "Fur"}}

	gen := New(WithPromptDriver(driver))
	result, err := gen.Generate(context.Background(), Request{
		Mode:       ModeLocal,
		Data:       source.FromFile(dataPath),
		Template:   source.FromFile(templatePath),
		OutputPath: output,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := Result{
		Mode:       ModeLocal,
		Filter:     "Fur",
		Count:      2,
		OutputPath: output,
		Strategy:   compose.StrategyPlaceholder,
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if driver.Asked() != 2 {
		t.Fatalf("expected a re-prompt after invalid input, asked %d", driver.Asked())
	}
	if driver.Messages[0] != "Available skin_type values:" {
		t.Fatalf("unexpected first message %q", driver.Messages[0])
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	doc := string(data)
	if strings.Contains(doc, compose.Placeholder) {
		t.Fatalf("placeholder left in output")
	}
	wolf := strings.Index(doc, "Arctic Wolf")
	fox := strings.Index(doc, "Red Fox")
	if wolf < 0 || fox < 0 || wolf > fox {
		t.Fatalf("expected both fur animals sorted by name, got:\n%s", doc)
	}
	if strings.Contains(doc, "gecko") || strings.Contains(doc, "Mystery") {
		t.Fatalf("expected non matching animals to be filtered out")
	}
}

func TestGenerateLocalOverwritesOutput(t *testing.T) {
	dataPath := testsupport.WriteFile(t, "animals_data.json", testsupport.AnimalsJSON)
	templatePath := testsupport.WriteFile(t, "animals_template.html", "<body></body>")
	output := testsupport.WriteFile(t, "animals.html", strings.Repeat("stale ", 1000))

	gen := New(WithPromptDriver(&testsupport.ScriptedDriver{Inputs: []string{"Scales"}}))
	result, err := gen.Generate(context.Background(), Request{
		Mode:       ModeLocal,
		Data:       source.FromFile(dataPath),
		Template:   source.FromFile(templatePath),
		OutputPath: output,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Strategy != compose.StrategyAppend {
		t.Fatalf("strategy = %q", result.Strategy)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.Contains(string(data), "stale") {
		t.Fatalf("expected output to be replaced")
	}
	want := "<body></body>\n" + cards.New().Collection([]animal.Record{{
		Name:            strPtr("gecko"),
		Characteristics: animal.Characteristics{animal.KeyDiet: "Insects", animal.KeySkinType: "Scales"},
	}})
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateLocalFromYAMLInFS(t *testing.T) {
	files := fstest.MapFS{
		"data/animals.yaml": {Data: []byte("- name: Toad\n  characteristics:\n    skin_type: Scales\n")},
		"shell.html":        {Data: []byte("<ul></ul>")},
	}
	var written []byte
	gen := New(
		WithLoader(internalloader.New(source.NewLoaderOptions(source.WithFileSystem(files)))),
		WithPromptDriver(&testsupport.ScriptedDriver{Inputs: []string{"Scales"}}),
		WithWriter(func(_ string, data []byte) error {
			written = data
			return nil
		}),
	)

	result, err := gen.Generate(context.Background(), Request{
		Mode:     ModeLocal,
		Data:     source.FromFS("data/animals.yaml"),
		Template: source.FromFS("shell.html"),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.OutputPath != DefaultOutputPath {
		t.Fatalf("output path = %q", result.OutputPath)
	}
	if result.Strategy != compose.StrategyBeforeListClose {
		t.Fatalf("strategy = %q", result.Strategy)
	}
	if !strings.HasPrefix(string(written), "<ul><li class=\"cards__item\">") || !strings.HasSuffix(string(written), "\n\n</ul>") {
		t.Fatalf("unexpected document %q", written)
	}
}

func TestGenerateLocalWithoutSkinTypes(t *testing.T) {
	dataPath := testsupport.WriteFile(t, "animals_data.json", `[{"name": "Blob"}]`)
	templatePath := testsupport.WriteFile(t, "animals_template.html", shell)
	driver := &testsupport.ScriptedDriver{}

	_, err := New(WithPromptDriver(driver)).Generate(context.Background(), Request{
		Mode:     ModeLocal,
		Data:     source.FromFile(dataPath),
		Template: source.FromFile(templatePath),
	})
	if !errors.Is(err, ErrNoAttributes) {
		t.Fatalf("expected ErrNoAttributes, got %v", err)
	}
	if len(driver.Prompts) != 0 {
		t.Fatalf("expected no prompts")
	}
}

func TestGenerateLocalMalformedData(t *testing.T) {
	dataPath := testsupport.WriteFile(t, "animals_data.json", `{"name": "Fox"}`)
	templatePath := testsupport.WriteFile(t, "animals_template.html", shell)

	_, err := New(WithPromptDriver(&testsupport.ScriptedDriver{})).Generate(context.Background(), Request{
		Mode:     ModeLocal,
		Data:     source.FromFile(dataPath),
		Template: source.FromFile(templatePath),
	})
	if !errors.Is(err, animal.ErrNotCollection) {
		t.Fatalf("expected ErrNotCollection, got %v", err)
	}
}

func TestGenerateMissingTemplate(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.html")
	searcher := &stubSearcher{}
	driver := &testsupport.ScriptedDriver{Inputs: []string{"fox"}}

	_, err := New(WithSearcher(searcher), WithPromptDriver(driver)).Generate(context.Background(), Request{
		Mode:     ModeRemote,
		Template: source.FromFile(missing),
	})

	var ioErr *FileIOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected FileIOError, got %v", err)
	}
	if ioErr.Op != "read" || ioErr.Path != missing {
		t.Fatalf("unexpected error details: %+v", ioErr)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped fs.ErrNotExist")
	}
	if len(searcher.terms) != 0 || driver.Asked() != 0 {
		t.Fatalf("expected failure before prompting or searching")
	}
}

func TestGenerateWriteFailure(t *testing.T) {
	templatePath := testsupport.WriteFile(t, "animals_template.html", shell)
	writeErr := errors.New("disk full")

	_, err := New(
		WithSearcher(&stubSearcher{}),
		WithPromptDriver(&testsupport.ScriptedDriver{Inputs: []string{"fox"}}),
		WithWriter(func(string, []byte) error { return writeErr }),
	).Generate(context.Background(), Request{
		Mode:       ModeRemote,
		Template:   source.FromFile(templatePath),
		OutputPath: "animals.html",
	})

	var ioErr *FileIOError
	if !errors.As(err, &ioErr) || ioErr.Op != "write" {
		t.Fatalf("expected write FileIOError, got %v", err)
	}
	if !errors.Is(err, writeErr) {
		t.Fatalf("expected wrapped write error")
	}
}

func TestGenerateRemote(t *testing.T) {
	templatePath := testsupport.WriteFile(t, "animals_template.html", shell)
	output := filepath.Join(t.TempDir(), "animals.html")
	searcher := &stubSearcher{records: []animal.Record{
		{Name: strPtr("Fennec Fox")},
		{Name: strPtr("Arctic Fox")},
	}}
	driver := &testsupport.ScriptedDriver{Inputs: []string{"  ", "fox"}}

	result, err := New(WithSearcher(searcher), WithPromptDriver(driver)).Generate(context.Background(), Request{
		Mode:       ModeRemote,
		Template:   source.FromFile(templatePath),
		OutputPath: output,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff([]string{"fox"}, searcher.terms); diff != "" {
		t.Fatalf("terms mismatch (-want +got):\n%s", diff)
	}
	if result.SearchTerm != "fox" || result.Count != 2 || result.Filter != "" {
		t.Fatalf("unexpected result %+v", result)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.Index(string(data), "Arctic Fox") > strings.Index(string(data), "Fennec Fox") {
		t.Fatalf("expected sorted cards")
	}
}

func TestGenerateRemoteEmptyResult(t *testing.T) {
	templatePath := testsupport.WriteFile(t, "animals_template.html", shell)
	var written string

	result, err := New(
		WithSearcher(&stubSearcher{records: []animal.Record{}}),
		WithPromptDriver(&testsupport.ScriptedDriver{Inputs: []string{"unicorn"}}),
		WithWriter(func(_ string, data []byte) error {
			written = string(data)
			return nil
		}),
	).Generate(context.Background(), Request{Mode: ModeRemote, Template: source.FromFile(templatePath)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.Count != 0 {
		t.Fatalf("count = %d", result.Count)
	}
	if written != "<ul class=\"cards\">\n\n</ul>\n" {
		t.Fatalf("unexpected document %q", written)
	}
}

func TestGenerateRemotePropagatesSearchError(t *testing.T) {
	templatePath := testsupport.WriteFile(t, "animals_template.html", shell)
	searchErr := errors.New("lookup: unexpected status 500")

	_, err := New(
		WithSearcher(&stubSearcher{err: searchErr}),
		WithPromptDriver(&testsupport.ScriptedDriver{Inputs: []string{"fox"}}),
		WithWriter(func(string, []byte) error {
			t.Fatalf("write must not be called")
			return nil
		}),
	).Generate(context.Background(), Request{Mode: ModeRemote, Template: source.FromFile(templatePath)})
	if !errors.Is(err, searchErr) {
		t.Fatalf("expected search error, got %v", err)
	}
}

func TestGenerateRemoteWithoutSearcher(t *testing.T) {
	templatePath := testsupport.WriteFile(t, "animals_template.html", shell)
	_, err := New(WithPromptDriver(&testsupport.ScriptedDriver{})).Generate(context.Background(), Request{
		Mode:     ModeRemote,
		Template: source.FromFile(templatePath),
	})
	if !errors.Is(err, ErrNoSearcher) {
		t.Fatalf("expected ErrNoSearcher, got %v", err)
	}
}

func TestGenerateUnknownMode(t *testing.T) {
	_, err := New().Generate(context.Background(), Request{Mode: "batch"})
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "animals.html")
	if err := WriteFile(path, []byte("ok")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "ok" {
		t.Fatalf("read back %q, %v", data, err)
	}
}

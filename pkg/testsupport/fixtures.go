// Package testsupport holds fixtures and scripted doubles shared by tests.
package testsupport

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/goliatone/go-animalgen/pkg/prompt"
)

// AnimalsJSON is a small data file covering present, padded, and missing
// skin types.
const AnimalsJSON = `[
  {
    "name": "Red Fox",
    "taxonomy": {"scientific_name": "Vulpes vulpes"},
    "locations": ["Asia", "Europe"],
    "characteristics": {"diet": "Omnivore", "skin_type": "Fur", "lifespan": "2-5 years"}
  },
  {
    "name": "gecko",
    "characteristics": {"diet": "Insects", "skin_type": "Scales"}
  },
  {
    "name": "Arctic Wolf",
    "characteristics": {"skin_type": " Fur ", "top_speed": 75}
  },
  {
    "name": "Mystery",
    "characteristics": {"diet": "Unknown"}
  }
]`

// WriteFile writes content under a fresh temp directory and returns the path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// ErrNoInput is returned by ScriptedDriver when its answers run out.
var ErrNoInput = errors.New("testsupport: no input scripted")

// ScriptedDriver answers prompts from a fixed list and records everything it
// was asked to print.
type ScriptedDriver struct {
	Inputs []string

	mu       sync.Mutex
	pos      int
	Prompts  []string
	Messages []string
}

var _ prompt.Driver = (*ScriptedDriver)(nil)

func (d *ScriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Prompts = append(d.Prompts, cfg.Message)
	if d.pos >= len(d.Inputs) {
		return "", ErrNoInput
	}
	val := d.Inputs[d.pos]
	d.pos++
	return val, nil
}

func (d *ScriptedDriver) Info(_ context.Context, msg string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Messages = append(d.Messages, msg)
	return nil
}

// Asked reports how many answers were consumed.
func (d *ScriptedDriver) Asked() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pos
}

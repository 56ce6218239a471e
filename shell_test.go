package animalgen

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-animalgen/pkg/compose"
)

func TestShellFSContainsPlaceholder(t *testing.T) {
	data, err := fs.ReadFile(ShellFS(), ShellName)
	if err != nil {
		t.Fatalf("expected shell to be readable: %v", err)
	}
	if strings.Count(string(data), compose.Placeholder) != 1 {
		t.Fatalf("expected exactly one placeholder in shell")
	}
}

func TestBuiltinShellOptionsLoadShell(t *testing.T) {
	opt, src := BuiltinShellOptions()
	data, err := NewLoader(opt).Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load shell: %v", err)
	}
	if !strings.Contains(string(data), `<ul class="cards">`) {
		t.Fatalf("unexpected shell content")
	}
}

package animalgen

import (
	"embed"
	"io/fs"
)

// ShellName is the path of the built-in page shell inside ShellFS.
const ShellName = "animals_template.html"

//go:embed templates/animals_template.html
var embeddedShell embed.FS

// ShellFS exposes the built-in page shell so callers can render without
// shipping their own template file.
func ShellFS() fs.FS {
	sub, err := fs.Sub(embeddedShell, "templates")
	if err != nil {
		return embeddedShell
	}
	return sub
}

// Package scenes embeds the stock scenes shipped with the binary so the
// game runs with no arguments.
package scenes

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed *.yaml *.tengo
var FS embed.FS

// DefaultName is the scene loaded when none is given on the command line.
const DefaultName = "rooftops.yaml"

// Read returns an embedded file's contents.
func Read(name string) ([]byte, error) {
	data, err := fs.ReadFile(FS, name)
	if err != nil {
		return nil, fmt.Errorf("read embedded scene %s: %w", name, err)
	}
	return data, nil
}

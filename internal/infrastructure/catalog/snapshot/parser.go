// Package snapshot provides a file-backed Catalog for offline use.
package snapshot

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
)

// Parser defines the interface for parsing game records from a snapshot file.
type Parser interface {
	Parse(r io.Reader) ([]entities.Game, error)
}

// document is the object form of a snapshot: {"games": [...]}.
type document struct {
	Games []entities.Game `json:"games" yaml:"games"`
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "yaml".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	return ForFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}

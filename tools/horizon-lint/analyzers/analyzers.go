// Package analyzers lists the static analyzers run by horizon-lint.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/vgame-horizon/tools/horizon-lint/analyzers/loopcall"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		loopcall.Analyzer,
	}
}

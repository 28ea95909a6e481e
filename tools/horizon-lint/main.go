// horizon-lint flags per-item network calls made inside loops.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/vgame-horizon/tools/horizon-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}

// Package loopcall detects LLM and catalog calls inside loops.
package loopcall

import (
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// suppression marks a call that is meant to run once per iteration.
const suppression = "nolint:loopcall"

// Analyzer reports blocking network calls made once per loop iteration.
var Analyzer = &analysis.Analyzer{
	Name:     "loopcall",
	Doc:      "detects LLM and catalog calls inside loops; batch them or mark the call with //nolint:loopcall",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// networkMethods are method names that make one network round trip per call.
var networkMethods = map[string]bool{
	// ports.LLMClient
	"Complete": true,
	// ports.Catalog
	"UpcomingGames": true,
	"GameByID":      true,
	"Search":        true,
	// services
	"Translate":      true,
	"translateBatch": true,
	"Fetch":          true,
}

func run(pass *analysis.Pass) (any, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	suppressed := suppressedLines(pass)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.ForStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch stmt := n.(type) {
		case *ast.RangeStmt:
			body = stmt.Body
		case *ast.ForStmt:
			body = stmt.Body
		}
		if body == nil {
			return
		}

		ast.Inspect(body, func(n ast.Node) bool {
			// Function literals run on their own schedule.
			if _, ok := n.(*ast.FuncLit); ok {
				return false
			}

			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok || !networkMethods[sel.Sel.Name] {
				return true
			}

			pos := pass.Fset.Position(call.Pos())
			if suppressed[lineKey{pos.Filename, pos.Line}] {
				return true
			}

			pass.Reportf(call.Pos(),
				"%s called inside loop: one network round trip per iteration",
				sel.Sel.Name)
			return true
		})
	})

	return nil, nil
}

type lineKey struct {
	file string
	line int
}

// suppressedLines returns the lines covered by a suppression comment: the
// comment's own line and the line after it.
func suppressedLines(pass *analysis.Pass) map[lineKey]bool {
	lines := make(map[lineKey]bool)
	for _, file := range pass.Files {
		for _, group := range file.Comments {
			for _, c := range group.List {
				if !strings.Contains(c.Text, suppression) {
					continue
				}
				pos := pass.Fset.Position(c.Slash)
				lines[lineKey{pos.Filename, pos.Line}] = true
				lines[lineKey{pos.Filename, nextLine(pass.Fset, c)}] = true
			}
		}
	}
	return lines
}

func nextLine(fset *token.FileSet, c *ast.Comment) int {
	return fset.Position(c.End()).Line + 1
}

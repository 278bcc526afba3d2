// Package expr is the facade for license expression parsing.
//
// Most callers only need Parse; the ast and parser subpackages are exported
// for code that inspects or walks trees directly.
package expr

import (
	"oss-works/noticegen/pkg/expr/ast"
	"oss-works/noticegen/pkg/expr/parser"
)

// Parse parses a license expression string into an expression tree.
// It never fails; see the parser package for the degradation rules.
func Parse(expression string) ast.Node {
	return parser.Parse(expression)
}

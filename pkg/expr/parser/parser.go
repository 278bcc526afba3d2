package parser

import (
	"strings"

	"oss-works/noticegen/pkg/expr/ast"
)

// Operator literals matched during top-level splitting. Matching is
// case-insensitive and only happens at parenthesis depth 0.
const (
	opOr   = " OR "
	opAnd  = " AND "
	opWith = " WITH "
)

// Parse turns a license expression string into an expression tree.
//
// Parse never fails: any structure it cannot interpret degrades to a Leaf
// whose ID is the trimmed input, to be reported later as an unresolved
// license rather than a parse error. The caller is expected to have
// filtered out blank input.
//
// OR is split before AND at every recursion level, so in a mixed
// expression OR binds looser ("A OR B AND C" parses as Or(A, And(B,C))).
// A WITH clause is only recognized once no top-level AND/OR remains, and
// attaches to the immediately preceding expression.
func Parse(expression string) ast.Node {
	expr := strings.TrimSpace(expression)

	// Strip one fully-matching outer parenthesis pair before splitting.
	if inner, ok := stripOuterParens(expr); ok {
		return Parse(inner)
	}

	if parts := splitTopLevel(expr, opOr); len(parts) > 1 {
		return foldOr(parts)
	}

	if parts := splitTopLevel(expr, opAnd); len(parts) > 1 {
		return foldAnd(parts)
	}

	if parts := splitTopLevel(expr, opWith); len(parts) > 1 {
		subject := Parse(parts[0])
		exception := strings.TrimSpace(strings.Join(parts[1:], " WITH "))
		return &ast.With{Subject: subject, ExceptionID: exception}
	}

	return &ast.Leaf{ID: expr}
}

// foldOr left-folds 2+ operands into nested binary Or nodes.
func foldOr(parts []string) ast.Node {
	node := Parse(parts[0])
	for _, part := range parts[1:] {
		node = &ast.Or{Left: node, Right: Parse(part)}
	}
	return node
}

// foldAnd left-folds 2+ operands into nested binary And nodes.
func foldAnd(parts []string) ast.Node {
	node := Parse(parts[0])
	for _, part := range parts[1:] {
		node = &ast.And{Left: node, Right: Parse(part)}
	}
	return node
}

// stripOuterParens removes one outer parenthesis pair if it wraps the whole
// expression. The pair only counts as fully wrapping when the running depth
// counter first returns to zero at the final character; "(A) AND (B)" is
// left untouched.
func stripOuterParens(expr string) (string, bool) {
	if len(expr) < 2 || expr[0] != '(' || expr[len(expr)-1] != ')' {
		return expr, false
	}

	depth := 0
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(expr)-1 {
				return expr, false
			}
		}
	}

	if depth != 0 {
		// Unbalanced; leave it for the leaf fallback.
		return expr, false
	}

	return strings.TrimSpace(expr[1 : len(expr)-1]), true
}

// splitTopLevel splits expr on the given operator literal wherever it occurs
// at parenthesis depth 0. The match is case-insensitive. Segments are
// trimmed; empty segments are dropped so stray operators degrade gracefully.
func splitTopLevel(expr, op string) []string {
	var parts []string
	depth := 0
	start := 0

	for i := 0; i+len(op) <= len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
			continue
		case ')':
			depth--
			continue
		}

		if depth == 0 && strings.EqualFold(expr[i:i+len(op)], op) {
			parts = appendSegment(parts, expr[start:i])
			start = i + len(op)
			i += len(op) - 1
		}
	}

	return appendSegment(parts, expr[start:])
}

func appendSegment(parts []string, segment string) []string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return parts
	}
	return append(parts, segment)
}

// Package parser turns license expression strings into expression trees.
//
// The grammar is small enough that the parser works directly on the raw
// string: it strips a fully-wrapping outer parenthesis pair, then attempts a
// depth-0 split on " OR ", then " AND ", then " WITH ", recursing into the
// segments. Anything it cannot interpret becomes a Leaf carrying the raw
// text, so parsing never fails — malformed expressions surface later as
// unresolved license identifiers instead of errors.
//
// # Basic Usage
//
//	node := parser.Parse("MIT AND (Apache-2.0 OR BSD-3-Clause)")
//
// Note that OR is deliberately split before AND at every nesting level. The
// renderer depends on that grouping; do not reorder the splits.
package parser

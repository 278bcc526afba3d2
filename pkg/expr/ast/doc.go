// Package ast provides the expression tree definitions for license expressions.
//
// A license expression combines license identifiers with AND, OR, WITH, and
// parentheses ("MIT AND (Apache-2.0 OR BSD-3-Clause)"). The tree mirrors that
// structure as a small tagged union of node types.
//
// # Core Types
//
// Node: interface implemented by every tree node
//
// Leaf: a single license identifier ("MIT", "others")
//
// With: a license modified by an exception clause ("GPL-2.0 WITH Classpath-exception-2.0")
//
// And: conjunctive combination (both sides apply)
//
// Or: disjunctive combination (recipient's choice)
//
// # Basic Usage
//
// Trees are produced by the parser package and consumed by the license
// renderer:
//
//	node := parser.Parse("MIT AND Apache-2.0")
//	fmt.Println(node.String())   // "MIT AND Apache-2.0"
//	fmt.Println(node.Licenses()) // ["MIT" "Apache-2.0"]
//
// Nodes are immutable; build a new tree rather than mutating an existing one.
package ast

package ast

import "strings"

// Node represents one node of a parsed license expression tree.
// A tree is immutable once built: the parser constructs it in a single pass
// and the renderer only ever reads it. And/Or nodes always have exactly two
// children; n-ary chains in the source expression are folded left-associatively
// by the parser ("A AND B AND C" becomes And(And(A,B),C)).
type Node interface {
	// String returns a normalized string form of the expression.
	String() string

	// Licenses returns every license identifier referenced by the
	// expression, left to right, including WITH exception identifiers.
	Licenses() []string

	isNode()
}

// Leaf is a single license identifier, e.g. "MIT" or the non-standard
// catch-all identifier "others".
type Leaf struct {
	// ID is the identifier exactly as it appeared in the source expression.
	ID string
}

// IsOthers reports whether the leaf is the non-standard "others"
// pseudo-license. The comparison is case-insensitive.
func (l *Leaf) IsOthers() bool {
	return strings.EqualFold(l.ID, "others")
}

func (l *Leaf) String() string { return l.ID }

func (l *Leaf) Licenses() []string { return []string{l.ID} }

func (l *Leaf) isNode() {}

// With is a license expression modified by an exception clause, e.g.
// "GPL-2.0 WITH Classpath-exception-2.0". The exception attaches to the
// immediately preceding expression only; it never distributes across a
// higher-level AND/OR.
type With struct {
	Subject     Node
	ExceptionID string
}

func (w *With) String() string {
	return w.Subject.String() + " WITH " + w.ExceptionID
}

func (w *With) Licenses() []string {
	return append(w.Subject.Licenses(), w.ExceptionID)
}

func (w *With) isNode() {}

// And is a conjunctive combination: both sides apply.
type And struct {
	Left  Node
	Right Node
}

func (a *And) String() string {
	return wrap(a.Left) + " AND " + wrap(a.Right)
}

func (a *And) Licenses() []string {
	return append(a.Left.Licenses(), a.Right.Licenses()...)
}

func (a *And) isNode() {}

// Or is a disjunctive combination: the recipient may choose either side.
type Or struct {
	Left  Node
	Right Node
}

func (o *Or) String() string {
	return wrap(o.Left) + " OR " + wrap(o.Right)
}

func (o *Or) Licenses() []string {
	return append(o.Left.Licenses(), o.Right.Licenses()...)
}

func (o *Or) isNode() {}

// wrap parenthesizes composite operands so the normalized string form
// round-trips without changing the tree shape.
func wrap(n Node) string {
	switch n.(type) {
	case *And, *Or:
		return "(" + n.String() + ")"
	default:
		return n.String()
	}
}

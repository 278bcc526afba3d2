package license

import (
	"fmt"
	"log/slog"
	"strings"

	"oss-works/noticegen/pkg/expr/ast"
	"oss-works/noticegen/pkg/expr/parser"
)

// NotProvidedText is returned for blank license expressions. Blank input is
// handled here, one level above the parser, which only ever sees non-blank
// strings.
const NotProvidedText = "License information not provided for this component."

// Separator block labels inserted between rendered operands.
const (
	labelAnd  = "And also:"
	labelOr   = "Or:"
	labelWith = "With the following exception(s):"
)

// separatorWidth is the dash-rule width of the block separators.
const separatorWidth = 20

// ResolverConfig contains configuration for the Resolver.
type ResolverConfig struct {
	// IncludeHeaders controls whether each resolved license text is
	// preceded by a "For license: <id>" header. Exception texts always get
	// a header regardless of this setting.
	IncludeHeaders bool
}

// DefaultResolverConfig returns the default resolver configuration.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{IncludeHeaders: true}
}

// Resolver renders license expression trees into prose, resolving each leaf
// identifier against a Store. Missing identifiers degrade to greppable
// placeholder text and are recorded in the MissingSet passed by the caller;
// rendering always completes.
type Resolver struct {
	store  *Store
	config ResolverConfig
	logger *slog.Logger
}

// NewResolver creates a resolver over the given store.
func NewResolver(store *Store, config ResolverConfig) *Resolver {
	return &Resolver{
		store:  store,
		config: config,
		logger: slog.Default().With("component", "license.resolver"),
	}
}

// RenderExpression parses and renders a raw license expression. It prepends
// the appropriate intro phrase for compound expressions, then renders the
// tree body. Unresolved identifiers are added to missing.
func (r *Resolver) RenderExpression(raw string, missing *MissingSet) string {
	expression := strings.TrimSpace(raw)
	if expression == "" {
		return NotProvidedText
	}

	node := parser.Parse(expression)

	var sb strings.Builder
	sb.WriteString(r.intro(expression, node))
	sb.WriteString(r.Render(node, missing))
	return sb.String()
}

// Render walks an already-parsed tree and produces the rendered body.
func (r *Resolver) Render(node ast.Node, missing *MissingSet) string {
	switch n := node.(type) {
	case *ast.Leaf:
		return r.renderLeaf(n.ID, r.config.IncludeHeaders, missing)

	case *ast.With:
		var sb strings.Builder
		sb.WriteString(r.Render(n.Subject, missing))
		sb.WriteString(separator(labelWith))
		// Exception texts are looked up like any leaf, header always on.
		sb.WriteString(r.renderLeaf(n.ExceptionID, true, missing))
		return sb.String()

	case *ast.And:
		return r.Render(n.Left, missing) + separator(labelAnd) + r.Render(n.Right, missing)

	case *ast.Or:
		return r.Render(n.Left, missing) + separator(labelOr) + r.Render(n.Right, missing)

	default:
		// Unreachable with the current node set; degrade like a leaf.
		return r.renderLeaf(node.String(), r.config.IncludeHeaders, missing)
	}
}

// renderLeaf resolves a single identifier. "others" (any case) renders the
// configured catch-all text and never counts as missing.
func (r *Resolver) renderLeaf(id string, withHeader bool, missing *MissingSet) string {
	var header, text string

	if strings.EqualFold(id, "others") {
		header = fmt.Sprintf("Regarding '%s' conditions:", id)
		text = r.store.OthersDefinition()
	} else {
		header = fmt.Sprintf("For license: %s", id)
		var ok bool
		text, ok = r.store.Get(id)
		if !ok {
			text = fmt.Sprintf("ERROR: License text for '%s' not found in '%s'. "+
				"Please add the full text for this license.", id, r.store.Source())
			missing.Add(id)
			r.logger.Warn("license text not found", "license_id", id, "source", r.store.Source())
		}
	}

	if !withHeader {
		return text
	}
	return header + "\n" + strings.Repeat("-", len(header)) + "\n" + text
}

// intro returns the explanatory phrase prepended to compound expressions.
// Any parenthesis in the raw expression forces the combined-terms phrasing,
// a coarse complexity signal that is preserved deliberately. Otherwise the
// phrase follows the top-level operators present outside parentheses.
func (r *Resolver) intro(expression string, node ast.Node) string {
	hasParen := strings.ContainsAny(expression, "()")
	hasAnd, hasOr := topLevelOperators(expression)

	switch {
	case hasParen, hasAnd && hasOr:
		return fmt.Sprintf("This component is subject to a combination of license terms (%s). "+
			"You should review all applicable terms carefully:\n\n", expression)
	case hasAnd:
		return fmt.Sprintf("This component is licensed under multiple terms (%s), "+
			"and you should observe all of them:\n\n", expression)
	case hasOr:
		return fmt.Sprintf("This component is licensed under one of the following terms (%s), "+
			"at your option (unless specified otherwise by the component's documentation):\n\n",
			expression)
	default:
		return ""
	}
}

// topLevelOperators reports whether AND / OR occur outside parentheses.
func topLevelOperators(expression string) (hasAnd, hasOr bool) {
	upper := strings.ToUpper(stripParenGroups(expression))
	return strings.Contains(upper, " AND "), strings.Contains(upper, " OR ")
}

// stripParenGroups blanks out parenthesized spans so operator detection only
// sees the top level.
func stripParenGroups(expression string) string {
	var sb strings.Builder
	depth := 0
	for _, ch := range expression {
		switch ch {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				sb.WriteRune(ch)
			}
		}
	}
	return sb.String()
}

// separator builds the labeled block separator inserted between operands.
func separator(label string) string {
	rule := strings.Repeat("-", separatorWidth)
	return "\n\n" + rule + "\n" + label + "\n" + rule + "\n\n"
}

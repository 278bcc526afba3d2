// Package license resolves license expression trees into attribution prose.
//
// The package has three pieces:
//
// Store: the license-text lookup table, loaded from a licenses YAML file.
// Keys are case-insensitive; the reserved others_definition entry supplies
// the catch-all text for the non-standard "others" pseudo-license.
//
// Resolver: walks a parsed expression tree and emits the final text, with
// headers, dash rules, and labeled separator blocks between operands.
// Missing license texts never abort a render — they degrade to an ERROR
// placeholder in the output so the document can be produced and patched by
// hand afterwards.
//
// MissingSet: an explicit accumulator of unresolved identifiers, passed
// into the resolver and queried once at the end of a run to warn the
// operator which texts still need to be supplied.
//
// # Basic Usage
//
//	store, err := license.LoadStore("licenses.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resolver := license.NewResolver(store, license.DefaultResolverConfig())
//	missing := license.NewMissingSet()
//
//	text := resolver.RenderExpression("MIT AND Apache-2.0", missing)
//	for _, id := range missing.IDs() {
//	    fmt.Println("no text for:", id)
//	}
package license

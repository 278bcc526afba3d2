// Package attribution assembles open-source attribution documents.
//
// The generator groups an inventory of components by license expression,
// numbers each group's listing, resolves the group's license texts, and
// stitches the document together from configurable template slots.
//
// # Basic Usage
//
//	store, _ := license.LoadStore("licenses.yaml")
//	resolver := license.NewResolver(store, license.DefaultResolverConfig())
//	gen := attribution.NewGenerator(resolver, template.Defaults(), project, nil)
//	document, summary := gen.Generate(components)
package attribution

// Noticegen generates open-source attribution documents from a component
// inventory.
//
// It reads an inventory of third-party components (XLSX, CSV, JSON, or
// YAML), groups them by license expression, resolves each expression into
// the full license texts, and writes a single attribution file.
//
// Usage:
//
//	# Generate the attribution file from noticegen.yaml
//	noticegen generate
//
//	# Validate config, templates, licenses, and the inventory
//	noticegen validate
//
//	# List known license ids, or report unresolved ones
//	noticegen licenses
//	noticegen licenses missing
//
//	# Regenerate automatically when inputs change
//	noticegen watch
//
//	# Show past generation runs
//	noticegen history
package main

func main() {
	Execute()
}

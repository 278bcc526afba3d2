package component

// Component is one third-party software component to attribute. It is a
// plain data carrier; loaders normalize raw rows into this shape and the
// generator consumes it unchanged.
type Component struct {
	// Name is the component name. Required; rows without a name are skipped.
	Name string `json:"name" yaml:"name"`

	// Copyright is the copyright notice line. Required column.
	Copyright string `json:"copyright" yaml:"copyright"`

	// License is the raw license expression, e.g. "MIT" or
	// "Apache-2.0 OR GPL-2.0 WITH Classpath-exception-2.0". Required
	// column; an empty value is tolerated and reported at generation time.
	License string `json:"license" yaml:"license"`

	// Version is the component version, if known.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// OthersURL points at additional notices for components under "others"
	// terms.
	OthersURL string `json:"others_url,omitempty" yaml:"others_url,omitempty"`

	// Modified reports whether the component was changed locally.
	Modified bool `json:"modified,omitempty" yaml:"modified,omitempty"`

	// ModifiedURL points at the modified source, when published.
	ModifiedURL string `json:"modified_url,omitempty" yaml:"modified_url,omitempty"`
}

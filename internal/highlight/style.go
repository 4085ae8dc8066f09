package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Style returns the Chroma style with the given name.
// Unknown names resolve to Chroma's fallback style
// rather than failing; the output is still valid markup.
func Style(name string) *chroma.Style {
	return styles.Get(name)
}

// StyleNames lists the names of all registered styles,
// sorted alphabetically.
func StyleNames() []string {
	return styles.Names()
}

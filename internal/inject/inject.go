// Package inject post-processes highlighter markup.
//
// It draws translucent bands behind selected lines of an SVG drawing,
// retints pre-marked highlight spans in an HTML fragment,
// and rewrites solid background declarations for transparent output.
//
// The rewriting is pattern-based rather than DOM-based:
// the input is the highlight package's own output,
// whose shape is regular enough that a document model
// would add fragility of its own without buying anything.
package inject

import "regexp"

// Fallbacks used when the markup does not declare its own geometry.
const (
	_defaultFontSize = 14.0
	_defaultWidth    = 800
)

var (
	// A line-number label: a right-aligned text element
	// carrying the vertical position of its line.
	_svgLabel = regexp.MustCompile(`<text[^>]*\by="([0-9.]+)"[^>]*text-anchor="end"`)

	// Leading digits of the first font-size declaration.
	_svgFontSize = regexp.MustCompile(`font-size="([0-9]+)`)

	// Width attribute of the root drawing element.
	_svgWidth = regexp.MustCompile(`<svg[^>]*\bwidth="([0-9]+)"`)

	// Any solid background declaration, inline or in an attribute.
	_background = regexp.MustCompile(`(background(?:-color)?):\s*#[0-9a-fA-F]+`)

	// Solid backgrounds on container elements only.
	// Spans are excluded so a highlight tint survives the rewrite.
	_containerBackground = regexp.MustCompile(
		`(<(?:div|table|td)\b[^>]*?)(background(?:-color)?):\s*#[0-9a-fA-F]+`)

	// The tinted span the highlighter wraps marked lines in.
	_markedSpan = regexp.MustCompile(`(<span style="background-color: )#[0-9a-fA-F]+`)

	// The line-number column's inner pre-formatted block.
	_gutterPre = regexp.MustCompile(`(?s)(<td class="linenos">.*?<pre)>`)
)

package inject

import (
	"fmt"
	"sort"
	"strconv"
)

// SVG draws a translucent highlight band behind each requested line.
//
// Bands are anchored to the line-number labels found in the markup:
// the n-th label in document order stands for line n.
// Requested lines outside [1, label count] are silently dropped.
// If no lines are requested, or the markup has no labels to anchor to,
// the markup is returned unchanged.
//
// Band geometry follows the markup's font size (default 14):
// height is 1.2× the font size, the top edge sits 0.85× the font size
// above the label's baseline, and the band spans the drawing's
// declared width (default 800).
func SVG(markup string, lines []int, color string) string {
	if len(lines) == 0 {
		return markup
	}

	labels := _svgLabel.FindAllStringSubmatchIndex(markup, -1)
	if len(labels) == 0 {
		return markup
	}

	fontSize := _defaultFontSize
	if m := _svgFontSize.FindStringSubmatch(markup); m != nil {
		fontSize, _ = strconv.ParseFloat(m[1], 64)
	}

	width := _defaultWidth
	if m := _svgWidth.FindStringSubmatch(markup); m != nil {
		width, _ = strconv.Atoi(m[1])
	}

	bandHeight := 1.2 * fontSize

	type band struct {
		offset int     // insertion point: start of the label element
		top    float64 // top edge of the band
	}

	var bands []band
	for _, n := range lines {
		if n < 1 || n > len(labels) {
			continue
		}
		m := labels[n-1]
		y, err := strconv.ParseFloat(markup[m[2]:m[3]], 64)
		if err != nil {
			continue
		}
		bands = append(bands, band{
			offset: m[0],
			top:    y - 0.85*fontSize,
		})
	}

	// Insert back to front so earlier offsets stay valid.
	sort.Slice(bands, func(i, j int) bool {
		return bands[i].offset > bands[j].offset
	})
	for _, b := range bands {
		rect := fmt.Sprintf(
			`<rect x="0" y="%.2f" width="%d" height="%.2f" fill="%s" fill-opacity="0.30"/>`,
			b.top, width, bandHeight, color)
		markup = markup[:b.offset] + rect + markup[b.offset:]
	}
	return markup
}

// SVGTransparent rewrites solid background declarations
// so the drawing composites over any backdrop.
// Highlight band fills are a different property and are not touched,
// so this may run after [SVG] in any order relative to it.
func SVGTransparent(markup string) string {
	return _background.ReplaceAllString(markup, "${1}: transparent")
}

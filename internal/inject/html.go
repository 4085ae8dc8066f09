package inject

// HTML finishes an HTML fragment whose highlighted lines
// were already marked by the highlighter.
//
// When lines are highlighted and a color is given,
// every marked span's background is retinted to that color,
// leaving the rest of its inline style intact.
//
// When transparency is requested, solid backgrounds are rewritten
// to "transparent": everywhere if nothing is highlighted,
// or on container elements only (div/table/td) if lines are
// highlighted, so the tint survives.
//
// Independently of either, the line-number gutter's inner <pre>
// is given the same 125% line height as the code column,
// keeping the two columns aligned.
func HTML(markup string, lines []int, color string, transparent bool) string {
	if len(lines) > 0 && color != "" {
		markup = _markedSpan.ReplaceAllString(markup, "${1}"+color)
	}

	if transparent {
		if len(lines) == 0 {
			markup = _background.ReplaceAllString(markup, "${1}: transparent")
		} else {
			markup = _containerBackground.ReplaceAllString(markup, "${1}${2}: transparent")
		}
	}

	return _gutterPre.ReplaceAllString(markup, `${1} style="line-height: 125%;">`)
}

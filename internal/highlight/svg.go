package highlight

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	chroma "github.com/alecthomas/chroma/v2"
)

// _xmlEscaper escapes text for use inside SVG text elements.
var _xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// SVG renders the source as an SVG drawing with a line-number gutter.
//
// Each source line produces two text elements:
// a right-aligned label (text-anchor="end") holding the line number,
// and a left-aligned content element holding the code.
// The label's anchor attribute and y coordinate are what
// post-processing uses to place highlight bands.
//
// The root element carries width, height,
// and a solid background declaration that the transparency pass
// may later rewrite.
func (h *Highlighter) SVG(src string, lexer chroma.Lexer) (string, error) {
	h.init()

	lines, err := h.tokenize(src, lexer)
	if err != nil {
		return "", err
	}

	// Approximate advance width for monospaced glyphs.
	charWidth := (h.FontSize*3 + 4) / 5
	step := h.FontSize + 5

	digits := len(strconv.Itoa(len(lines)))
	gutterX := (digits + 1) * charWidth
	codeX := gutterX + charWidth

	longest := 0
	for _, line := range lines {
		n := 0
		for _, tok := range line {
			n += utf8.RuneCountInString(strings.TrimSuffix(tok.Value, "\n"))
		}
		if n > longest {
			longest = n
		}
	}

	width := codeX + longest*charWidth
	height := step * (len(lines) + 1)

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" style="background: %s">`+"\n",
		width, height, h.background())
	fmt.Fprintf(&b, `<g font-family="%s" font-size="%dpx">`+"\n", h.FontFamily, h.FontSize)

	y := step
	for i, line := range lines {
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="end" fill="#888888">%d</text>`,
			gutterX, y, i+1)
		fmt.Fprintf(&b, `<text x="%d" y="%d" xml:space="preserve">`, codeX, y)
		for _, tok := range line {
			h.writeTokenSpan(&b, tok)
		}
		b.WriteString("</text>\n")
		y += step
	}

	b.WriteString("</g>\n</svg>\n")
	return b.String(), nil
}

// writeTokenSpan writes one token as escaped text,
// wrapped in a styled tspan if the style gives it any attributes.
func (h *Highlighter) writeTokenSpan(b *strings.Builder, tok chroma.Token) {
	text := strings.TrimSuffix(tok.Value, "\n")
	if text == "" {
		return
	}

	entry := h.Style.Get(tok.Type)

	var attrs []string
	if entry.Colour.IsSet() {
		attrs = append(attrs, fmt.Sprintf(`fill="%s"`, entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		attrs = append(attrs, `font-weight="bold"`)
	}
	if entry.Italic == chroma.Yes {
		attrs = append(attrs, `font-style="italic"`)
	}

	if len(attrs) == 0 {
		_, _ = _xmlEscaper.WriteString(b, text)
		return
	}

	b.WriteString("<tspan ")
	b.WriteString(strings.Join(attrs, " "))
	b.WriteByte('>')
	_, _ = _xmlEscaper.WriteString(b, text)
	b.WriteString("</tspan>")
}

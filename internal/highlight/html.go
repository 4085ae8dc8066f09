package highlight

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
)

// HTML renders the source as a two-column line-numbered table
// using inline styles only, so the fragment can be embedded
// into documents that don't carry a style sheet.
//
// Lines listed in marked (1-based) are wrapped in a span
// tinted with [MarkColor]; the wrapping span covers the line's
// trailing newline so the tint spans the full line.
//
// The line-number column's <pre> is emitted without a line-height;
// post-processing aligns it with the code column.
func (h *Highlighter) HTML(src string, lexer chroma.Lexer, marked []int) (string, error) {
	h.init()

	lines, err := h.tokenize(src, lexer)
	if err != nil {
		return "", err
	}

	markedSet := make(map[int]struct{}, len(marked))
	for _, n := range marked {
		markedSet[n] = struct{}{}
	}

	var nums, code strings.Builder
	for i, line := range lines {
		n := i + 1
		if i > 0 {
			nums.WriteByte('\n')
		}
		fmt.Fprintf(&nums, "%d", n)

		_, hl := markedSet[n]
		if hl {
			fmt.Fprintf(&code, `<span style="background-color: %s">`, MarkColor)
		}
		if err := h.formatter.Format(&code, h.Style, chroma.Literator(line...)); err != nil {
			return "", errtrace.Wrap(err)
		}
		if hl {
			code.WriteString("</span>")
		}
	}

	var b strings.Builder
	b.WriteString(`<table class="highlighttable"><tr>`)
	fmt.Fprintf(&b, `<td class="linenos"><div class="linenodiv"><pre>%s</pre></div></td>`, nums.String())
	fmt.Fprintf(&b,
		`<td class="code"><div class="highlight" style="background: %s">`+
			`<pre style="line-height: 125%%; font-family: %s; font-size: %dpx">`,
		h.background(), h.FontFamily, h.FontSize)
	b.WriteString(code.String())
	b.WriteString("</pre></div></td></tr></table>\n")
	return b.String(), nil
}

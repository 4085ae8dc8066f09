package highlight

import (
	"sync"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// MarkColor is the background color given to lines
// marked as highlighted in HTML output.
// Post-processing may retint it to a user-chosen color afterwards.
const MarkColor = "#ffffcc"

// Defaults applied by [Highlighter] when a field is unset.
const (
	DefaultFontFamily = "monospace"
	DefaultFontSize   = 14
)

// Highlighter renders tokenized source code
// as line-numbered SVG or HTML markup.
//
// The zero value is a usable highlighter
// with Chroma's fallback style and monospace 14px text.
type Highlighter struct {
	// Style used for syntax highlighting of code.
	Style *chroma.Style

	// FontFamily names the font the markup asks renderers to use.
	FontFamily string

	// FontSize is the font size in document units (pixels).
	FontSize int

	once      sync.Once
	formatter *chromahtml.Formatter
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		h.formatter = chromahtml.New(
			chromahtml.WithClasses(false),
			chromahtml.PreventSurroundingPre(true),
		)
		if h.Style == nil {
			h.Style = styles.Fallback
		}
		if h.FontFamily == "" {
			h.FontFamily = DefaultFontFamily
		}
		if h.FontSize <= 0 {
			h.FontSize = DefaultFontSize
		}
	})
}

// tokenize splits the source into per-line token slices.
// A trailing newline in the source does not count as an extra line.
func (h *Highlighter) tokenize(src string, lexer chroma.Lexer) ([][]chroma.Token, error) {
	tokens, err := chroma.Tokenise(lexer, nil, src)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	lines := chroma.SplitTokensIntoLines(tokens)
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	return lines, nil
}

// background reports the style's background color as a hex string.
func (h *Highlighter) background() string {
	bg := h.Style.Get(chroma.Background).Background
	if !bg.IsSet() {
		return "#ffffff"
	}
	return bg.String()
}

package highlight

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Lexer picks the Chroma lexer for the given language name.
// An empty or unrecognized name falls back to content analysis,
// and failing that, to the plain text lexer.
//
// The boolean reports whether the requested name was recognized,
// so callers can warn before degrading to auto-detection.
func Lexer(name, source string) (chroma.Lexer, bool) {
	known := true

	var l chroma.Lexer
	if name != "" {
		l = lexers.Get(name)
		known = l != nil
	}
	if l == nil {
		l = lexers.Analyse(source)
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l), known
}

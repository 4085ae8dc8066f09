package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"go.abhg.dev/snip2img/internal/errdefer"
	"go.abhg.dev/snip2img/internal/highlight"
	"go.abhg.dev/snip2img/internal/inject"
)

// Output formats supported by the generator.
const (
	formatSVG  = "svg"
	formatHTML = "html"
)

var errUnsupportedFormat = errors.New("unsupported format")

// Renderer turns a source snippet into line-numbered markup.
type Renderer interface {
	HTML(src string, lexer chroma.Lexer, marked []int) (string, error)
	SVG(src string, lexer chroma.Lexer) (string, error)
}

var _ Renderer = (*highlight.Highlighter)(nil)

// Request carries everything needed for one conversion.
type Request struct {
	Source      string // snippet to render
	Format      string // formatSVG or formatHTML
	Language    string // empty requests auto-detection
	StyleName   string // reported back to the user on success
	Lines       []int  // 1-based lines to highlight
	Color       string // highlight color
	Transparent bool   // neutralize solid backgrounds
	OutputPath  string // file to write, overwritten if present
}

// Generator converts a single code snippet into its final output file.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log      *log.Logger
	Debug    *log.Logger
	Renderer Renderer
}

// Generate renders the request's snippet, highlights the requested
// lines, and writes the result to the requested output path.
func (g *Generator) Generate(req *Request) error {
	lexer, known := highlight.Lexer(req.Language, req.Source)
	if !known {
		g.Log.Printf("Warning: Unknown language %q, attempting auto-detection", req.Language)
	}

	markup, err := g.render(req, lexer)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("render: %w", err))
	}

	if err := writeFile(req.OutputPath, markup); err != nil {
		return errtrace.Wrap(fmt.Errorf("write %v: %w", req.OutputPath, err))
	}

	g.Log.Printf("%s saved to: %s", strings.ToUpper(req.Format), req.OutputPath)
	g.Log.Printf("Language: %s", lexer.Config().Name)
	if req.StyleName != "" {
		g.Log.Printf("Style: %s", req.StyleName)
	}
	return nil
}

func (g *Generator) render(req *Request, lexer chroma.Lexer) (string, error) {
	switch strings.ToLower(req.Format) {
	case formatSVG:
		markup, err := g.Renderer.SVG(req.Source, lexer)
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		if g.Debug != nil {
			g.Debug.Printf("svg: highlighting lines %v", req.Lines)
		}
		markup = inject.SVG(markup, req.Lines, req.Color)
		if req.Transparent {
			markup = inject.SVGTransparent(markup)
		}
		return markup, nil

	case formatHTML:
		markup, err := g.Renderer.HTML(req.Source, lexer, req.Lines)
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		if g.Debug != nil {
			g.Debug.Printf("html: highlighting lines %v, transparent=%v", req.Lines, req.Transparent)
		}
		return inject.HTML(markup, req.Lines, req.Color, req.Transparent), nil

	default:
		return "", errtrace.Wrap(fmt.Errorf("%w: %q", errUnsupportedFormat, req.Format))
	}
}

func writeFile(path, contents string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	_, err = io.WriteString(f, contents)
	return errtrace.Wrap(err)
}

// snip2img converts a source-code snippet into a syntax-highlighted
// SVG or HTML file, optionally emphasizing chosen line ranges.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"github.com/mattn/go-isatty"
	"go.abhg.dev/snip2img/internal/highlight"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

var (
	errEmptyInput    = errors.New("no code provided")
	errMissingOutput = errors.New("no output path given")
)

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("snip2img: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) error {
	debug, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() {
		if cerr := closeDebug(); cerr != nil {
			cmd.log.Printf("snip2img: closing debug log: %v", cerr)
		}
	}()

	if opts.ListStyles {
		return errtrace.Wrap(cmd.listStyles())
	}

	if opts.Output == "" {
		return errtrace.Wrap(errMissingOutput)
	}

	source, err := cmd.readSource(opts.Input)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if strings.TrimSpace(source) == "" {
		return errtrace.Wrap(errEmptyInput)
	}

	format := opts.Format
	if format == "" {
		format = detectFormat(opts.Output)
		if format == "" {
			cmd.log.Printf("Warning: Unknown extension, defaulting to SVG")
			format = formatSVG
		}
	}

	gen := Generator{
		Log:   cmd.log,
		Debug: log.New(debug, "", 0),
		Renderer: &highlight.Highlighter{
			Style:      highlight.Style(opts.Style),
			FontFamily: opts.Font,
			FontSize:   opts.FontSize,
		},
	}
	return errtrace.Wrap(gen.Generate(&Request{
		Source:      source,
		Format:      format,
		Language:    opts.Language,
		StyleName:   opts.Style,
		Lines:       opts.Highlight.Lines,
		Color:       opts.Color,
		Transparent: !opts.Opaque,
		OutputPath:  opts.Output,
	}))
}

// readSource reads the snippet from the given file,
// or from stdin if no file was given.
func (cmd *mainCmd) readSource(path string) (string, error) {
	if path != "" {
		bs, err := os.ReadFile(path)
		return string(bs), errtrace.Wrap(err)
	}

	if f, ok := cmd.Stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fmt.Fprintln(cmd.Stderr, "Enter your code (press Ctrl+D when finished):")
	}
	bs, err := io.ReadAll(cmd.Stdin)
	return string(bs), errtrace.Wrap(err)
}

func (cmd *mainCmd) listStyles() error {
	names := highlight.StyleNames()
	if _, err := fmt.Fprintf(cmd.Stdout, "Available styles (%d total):\n\n", len(names)); err != nil {
		return errtrace.Wrap(err)
	}
	for i, name := range names {
		if _, err := fmt.Fprintf(cmd.Stdout, "  %2d. %s\n", i+1, name); err != nil {
			return errtrace.Wrap(err)
		}
	}
	_, err := fmt.Fprintln(cmd.Stdout)
	return errtrace.Wrap(err)
}

// detectFormat guesses the output format from the path's extension,
// returning "" if the extension is not recognized.
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return formatSVG
	case ".html", ".htm":
		return formatHTML
	default:
		return ""
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/snip2img/internal/flagvalue"
	"go.abhg.dev/snip2img/internal/linerange"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for snip2img.
type params struct {
	version bool
	help    Help

	Input  string
	Output string
	Format string

	Language string
	Style    string
	Font     string
	FontSize int

	Opaque     bool
	Highlight  lineSpec
	Color      string
	ListStyles bool

	Debug flagvalue.FileSwitch
}

// cliParser parses the command line arguments for snip2img.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	fset := flag.NewFlagSet("snip2img", flag.ContinueOnError)
	fset.SetOutput(cmd.Stderr)
	fset.Usage = func() {
		_ = DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Input and output:
	fset.StringVar(&p.Input, "i", "", "")
	fset.StringVar(&p.Input, "input", "", "")
	fset.StringVar(&p.Output, "o", "", "")
	fset.StringVar(&p.Output, "output", "", "")
	fset.StringVar(&p.Format, "f", "", "")
	fset.StringVar(&p.Format, "format", "", "")

	// Rendering:
	fset.StringVar(&p.Language, "l", "", "")
	fset.StringVar(&p.Language, "language", "", "")
	fset.StringVar(&p.Style, "s", "monokai", "")
	fset.StringVar(&p.Style, "style", "monokai", "")
	fset.StringVar(&p.Font, "font", "monospace", "")
	fset.IntVar(&p.FontSize, "font-size", 14, "")
	fset.BoolVar(&p.Opaque, "opaque-background", false, "")

	// Highlighting:
	fset.Var(&p.Highlight, "highlight-lines", "")
	fset.StringVar(&p.Color, "highlight-color", "#ffffcc", "")

	// Program-level:
	fset.BoolVar(&p.ListStyles, "list-styles", false, "")
	fset.Var(&p.Debug, "debug", "")
	fset.BoolVar(&p.version, "version", false, "")
	fset.Var(&p.help, "help", "")
	fset.Var(&p.help, "h", "")

	return &p, fset
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("SNIP2IMG")); err != nil {
		return nil, errtrace.Wrap(err)
	}

	if p.version {
		fmt.Fprintln(cmd.Stdout, "snip2img", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(fset.Args()) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(fset.Args()[0]); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if args := fset.Args(); len(args) > 0 {
		fmt.Fprintf(cmd.Stderr, "unexpected argument: %q\n", args[0])
		_ = UsageHelp.Write(cmd.Stderr)
		return nil, errtrace.Wrap(errInvalidArguments)
	}

	return p, nil
}

// lineSpec is the -highlight-lines flag.
// It expands a specification like "8-10 15" at flag parse time,
// so that malformed input fails before any markup is generated.
type lineSpec struct {
	raw   string
	Lines []int
}

var _ flag.Getter = (*lineSpec)(nil)

// Get returns the expanded line numbers.
func (ls *lineSpec) Get() any { return ls.Lines }

// String returns the specification as it was typed.
func (ls *lineSpec) String() string { return ls.raw }

// Set receives and expands a line specification.
func (ls *lineSpec) Set(s string) error {
	lines, err := linerange.Parse(s)
	if err != nil {
		return errtrace.Wrap(err)
	}
	ls.raw = s
	ls.Lines = lines
	return nil
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/snip2img/internal/iotest"
)

const _pySnippet = "def greet():\n    print('hi')\ngreet()\n"

func writeSnippet(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snippet.py")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestMainCmd_help(t *testing.T) {
	t.Parallel()

	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"-h"})
	assert.Zero(t, exitCode, "-h should have zero status code")
}

func TestMainCmd_version(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: &buff,
		Stderr: iotest.Writer(t),
	}).Run([]string{"-version"})
	assert.Zero(t, exitCode, "-version should have zero status code")

	assert.Contains(t, buff.String(), "snip2img")
	assert.Contains(t, buff.String(), _version)
}

func TestMainCmd_unknownFlag(t *testing.T) {
	t.Parallel()

	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"--this-flag-does-not-exist"})
	assert.NotZero(t, exitCode, "unknown flag should have non-zero status code")
}

func TestMainCmd_listStyles(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: &buff,
		Stderr: iotest.Writer(t),
	}).Run([]string{"-list-styles"})
	require.Zero(t, exitCode)

	assert.Contains(t, buff.String(), "Available styles")
	assert.Contains(t, buff.String(), "monokai")
}

func TestMainCmd_missingOutput(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(_pySnippet),
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run(nil)
	assert.NotZero(t, exitCode)
	assert.Contains(t, stderr.String(), "no output path")
}

func TestMainCmd_emptyInput(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.svg")
	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader("   \n\t\n"),
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{"-o", out})
	assert.NotZero(t, exitCode)
	assert.Contains(t, stderr.String(), "no code provided")
	assert.NoFileExists(t, out, "no partial output on failure")
}

func TestMainCmd_badLineSpec(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.svg")
	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(_pySnippet),
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{"-o", out, "-highlight-lines", "10-8"})
	assert.NotZero(t, exitCode)
	assert.Contains(t, stderr.String(), "invalid range")
	assert.NoFileExists(t, out, "line spec must fail before markup is generated")
}

func TestMainCmd_unsupportedFormat(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(_pySnippet),
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{"-o", filepath.Join(t.TempDir(), "out.svg"), "-f", "gif"})
	assert.NotZero(t, exitCode)
	assert.Contains(t, stderr.String(), "unsupported format")
}

func TestMainCmd_generateSVG(t *testing.T) {
	t.Parallel()

	in := writeSnippet(t, _pySnippet)
	out := filepath.Join(t.TempDir(), "out.svg")

	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{"-i", in, "-o", out, "-l", "python", "-highlight-lines", "2"})
	require.Zero(t, exitCode, "stderr:\n%s", stderr.String())

	bs, err := os.ReadFile(out)
	require.NoError(t, err)
	got := string(bs)

	assert.Contains(t, got, "<svg")
	assert.Equal(t, 3, strings.Count(got, `text-anchor="end"`))
	assert.Equal(t, 1, strings.Count(got, "<rect"),
		"one highlight band for one requested line")
	assert.Contains(t, got, `fill="#ffffcc"`)

	// Default 14px font: line 2's baseline is at 2×19,
	// the band's top edge 0.85×14 above it.
	assert.Contains(t, got, `y="26.10"`)
	assert.Contains(t, got, `fill-opacity="0.30"/><text`,
		"band must sit immediately before its label")

	assert.Contains(t, got, "background: transparent",
		"background is transparent by default")

	assert.Contains(t, stderr.String(), "SVG saved to:")
	assert.Contains(t, stderr.String(), "Language: Python")
	assert.Contains(t, stderr.String(), "Style: monokai")
}

func TestMainCmd_generateSVG_opaque(t *testing.T) {
	t.Parallel()

	in := writeSnippet(t, _pySnippet)
	out := filepath.Join(t.TempDir(), "out.svg")

	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"-i", in, "-o", out, "-l", "python", "-opaque-background"})
	require.Zero(t, exitCode)

	bs, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "background: #",
		"opaque output keeps the style's background")
}

func TestMainCmd_generateHTML(t *testing.T) {
	t.Parallel()

	in := writeSnippet(t, _pySnippet)
	out := filepath.Join(t.TempDir(), "out.html")

	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{
		"-i", in, "-o", out, "-l", "python",
		"-highlight-lines", "2", "-highlight-color", "#ff0000",
	})
	require.Zero(t, exitCode, "stderr:\n%s", stderr.String())

	bs, err := os.ReadFile(out)
	require.NoError(t, err)
	got := string(bs)

	assert.Contains(t, got, `<span style="background-color: #ff0000">`,
		"marked line must be retinted to the requested color")
	assert.Contains(t, got, `<pre style="line-height: 125%;">`,
		"gutter line height must match the code column")
	assert.Contains(t, got, "background: transparent")
	assert.Contains(t, stderr.String(), "HTML saved to:")
}

func TestMainCmd_stdinInput(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.svg")
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(_pySnippet),
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"-o", out, "-l", "python"})
	require.Zero(t, exitCode)
	assert.FileExists(t, out)
}

func TestMainCmd_unknownLanguageWarns(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.svg")
	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(_pySnippet),
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{"-o", out, "-l", "klingon"})
	require.Zero(t, exitCode, "unknown languages degrade, not fail")
	assert.Contains(t, stderr.String(), `Unknown language "klingon"`)
	assert.FileExists(t, out)
}

func TestMainCmd_unknownExtensionDefaultsToSVG(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.txt")
	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(_pySnippet),
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{"-o", out, "-l", "python"})
	require.Zero(t, exitCode)

	assert.Contains(t, stderr.String(), "Unknown extension, defaulting to SVG")

	bs, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "<svg")
}

func TestMainCmd_debugLogFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out.svg")
	debugLog := filepath.Join(dir, "debug.log")

	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(_pySnippet),
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"-o", out, "-l", "python", "-debug=" + debugLog, "-highlight-lines", "1-2"})
	require.Zero(t, exitCode)

	bs, err := os.ReadFile(debugLog)
	require.NoError(t, err)
	assert.Contains(t, string(bs), "highlighting lines [1 2]")
}

func TestMainCmd_overwritesExistingOutput(t *testing.T) {
	t.Parallel()

	in := writeSnippet(t, _pySnippet)
	out := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, os.WriteFile(out, []byte("stale"), 0o644))

	exitCode := (&mainCmd{
		Stdin:  strings.NewReader(""),
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"-i", in, "-o", out, "-l", "python"})
	require.Zero(t, exitCode)

	bs, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(bs), "stale")
}

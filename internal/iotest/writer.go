// Package iotest provides io helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"
)

// Writer builds an io.Writer that logs everything written to it
// to the given testing.TB.
func Writer(t testing.TB) io.Writer {
	return &writer{t: t}
}

type writer struct{ t testing.TB }

func (w *writer) Write(b []byte) (int, error) {
	w.t.Logf("%s", bytes.TrimSuffix(b, []byte("\n")))
	return len(b), nil
}

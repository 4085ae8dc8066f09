// Package flagvalue provides flag.Value implementations
// for snip2img's command line.
package flagvalue

import (
	"flag"
	"io"
	"os"
)

// FileSwitch is a flag that may be passed as "-x" or "-x=path".
// Passed bare, it turns a feature on with a fallback destination;
// passed with a value, it sends the feature's output to that file.
//
// snip2img uses it for -debug:
// bare -debug logs to stderr, -debug=log.txt logs to the file.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the stored path, or "-" if the flag was passed bare.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the stored path, or "-" if the flag was passed bare.
func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set receives the value for this flag.
func (fs *FileSwitch) Set(v string) error {
	if v == "true" {
		v = "-"
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether this flag was set at all.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create resolves this flag into a destination writer
// and a function to release it:
//
//   - the flag wasn't passed: an [io.Discard]
//   - the flag was passed bare: the provided fallback
//   - the flag was passed with a value: a newly created file
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	switch *fs {
	case "":
		return io.Discard, nopClose, nil
	case "-":
		return fallback, nopClose, nil
	default:
		f, err := os.Create(string(*fs))
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}
}

func nopClose() error { return nil }

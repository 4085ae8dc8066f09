// Package errdefer helps with cleanup operations
// that run in a defer statement but can themselves fail,
// such as closing an output file whose writes may be buffered.
package errdefer

import (
	"errors"
	"io"
)

// Close closes the given Closer,
// joining its error, if any, with the error already in err.
//
// Use it in a defer statement with a named return:
//
//	func write(path string) (err error) {
//		f, err := os.Create(path)
//		if err != nil {
//			return err
//		}
//		defer errdefer.Close(&err, f)
//		...
//	}
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, closer.Close())
}

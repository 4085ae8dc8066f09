// Package linerange parses compact line-range specifications
// like "8-10 15 20-22" into concrete line numbers.
package linerange

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// Errors reported by [Parse].
// Parse wraps these with the offending token,
// so match them with errors.Is.
var (
	// ErrInvalidLineNumber reports a single token
	// that is not a valid integer.
	ErrInvalidLineNumber = errors.New("invalid line number")

	// ErrInvalidRange reports a range whose start is past its end.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidRangeFormat reports a range
	// whose start or end is not a valid integer.
	ErrInvalidRangeFormat = errors.New("invalid range format")
)

// Parse expands a line specification into a list of 1-based
// line numbers, sorted ascending with duplicates removed.
//
// The specification is a whitespace-separated list of tokens,
// each either a single line number ("15")
// or an inclusive range ("8-10").
// An empty specification yields an empty list.
//
// Parse does not check the numbers against any document;
// lines past the end of the rendered snippet
// are ignored at highlight time.
func Parse(spec string) ([]int, error) {
	seen := make(map[int]struct{})
	for _, tok := range strings.Fields(spec) {
		if idx := strings.IndexRune(tok, '-'); idx >= 0 {
			start, err := strconv.Atoi(strings.TrimSpace(tok[:idx]))
			if err != nil {
				return nil, errtrace.Wrap(fmt.Errorf("%w %q: %v", ErrInvalidRangeFormat, tok, err))
			}

			end, err := strconv.Atoi(strings.TrimSpace(tok[idx+1:]))
			if err != nil {
				return nil, errtrace.Wrap(fmt.Errorf("%w %q: %v", ErrInvalidRangeFormat, tok, err))
			}

			if start > end {
				return nil, errtrace.Wrap(fmt.Errorf("%w %q: start is greater than end", ErrInvalidRange, tok))
			}

			for n := start; n <= end; n++ {
				seen[n] = struct{}{}
			}
			continue
		}

		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("%w %q: %v", ErrInvalidLineNumber, tok, err))
		}
		seen[n] = struct{}{}
	}

	if len(seen) == 0 {
		return nil, nil
	}

	lines := make([]int, 0, len(seen))
	for n := range seen {
		lines = append(lines, n)
	}
	sort.Ints(lines)
	return lines, nil
}

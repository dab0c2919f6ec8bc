package twotouch

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrParse matches every *ParseError via errors.Is.
var ErrParse = errors.New("twotouch: parse error")

// ParseError reports input that cannot be converted.
// Pos is a rune index for "encode" and a byte offset for "decode";
// it is -1 when the whole input is at fault.
type ParseError struct {
	Op     string
	Input  string
	Pos    int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("twotouch: %s %q: %s", e.Op, snippet(e.Input), e.Reason)
	}
	return fmt.Sprintf("twotouch: %s %q: %s at %d", e.Op, snippet(e.Input), e.Reason, e.Pos)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// CacheError wraps a failure of the optional result cache.
type CacheError struct {
	Op  string
	Key string
	Err error
}

func (e *CacheError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("twotouch cache %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("twotouch cache %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error { return e.Err }

const maxSnippet = 32

func snippet(s string) string {
	if utf8.RuneCountInString(s) <= maxSnippet {
		return s
	}
	n := 0
	for i := range s {
		if n == maxSnippet {
			return s[:i] + "…"
		}
		n++
	}
	return s
}

// Package cabi moves conversion results across the C boundary.
//
// Every pointer handed out is allocated with C malloc and must come back
// through FreeString or FreeStrings. Pointers cross package boundaries as
// unsafe.Pointer because cgo types are private to each package.
package cabi

/*
#include <stdlib.h>
*/
import "C"

import (
	"strings"
	"sync/atomic"
	"unicode/utf8"
	"unsafe"

	"github.com/unkn0wn-root/twotouch"
)

// Result mirrors TwoTouchStringResult: Data is a char** of Len strings.
// The zero Result reports failure.
type Result struct {
	Len  int
	Data unsafe.Pointer
}

var outstanding atomic.Int64

// Outstanding is the number of live allocations made by this package.
func Outstanding() int64 { return outstanding.Load() }

// Encode converts the NUL-terminated UTF-8 string at text. NULL input,
// invalid UTF-8 and any conversion error yield the zero Result.
func Encode(text unsafe.Pointer) Result {
	s, ok := goString(text)
	if !ok {
		return Result{}
	}
	codes, err := twotouch.Encode(s)
	if err != nil || len(codes) == 0 {
		return Result{}
	}
	return AllocStrings(codes)
}

// Decode converts the NUL-terminated code string at code. The result is nil
// on any failure.
func Decode(code unsafe.Pointer) unsafe.Pointer {
	s, ok := goString(code)
	if !ok {
		return nil
	}
	text, err := twotouch.Decode(s)
	if err != nil {
		return nil
	}
	return AllocString(text)
}

// AllocString copies s into C memory. It returns nil when s holds a NUL
// byte, since the copy would be silently truncated.
func AllocString(s string) unsafe.Pointer {
	if strings.IndexByte(s, 0) >= 0 {
		return nil
	}
	p := C.CString(s)
	outstanding.Add(1)
	return unsafe.Pointer(p)
}

// AllocStrings copies ss into a C array of C strings. Partial allocations
// are released before the zero Result is returned.
func AllocStrings(ss []string) Result {
	if len(ss) == 0 {
		return Result{}
	}
	arr := C.malloc(C.size_t(len(ss)) * C.size_t(unsafe.Sizeof((*C.char)(nil))))
	if arr == nil {
		return Result{}
	}
	outstanding.Add(1)

	slots := unsafe.Slice((**C.char)(arr), len(ss))
	for i, s := range ss {
		p := AllocString(s)
		if p == nil {
			for _, q := range slots[:i] {
				FreeString(unsafe.Pointer(q))
			}
			C.free(arr)
			outstanding.Add(-1)
			return Result{}
		}
		slots[i] = (*C.char)(p)
	}
	return Result{Len: len(ss), Data: arr}
}

// FreeString releases a string from AllocString or Decode. nil is a no-op.
func FreeString(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.free(p)
	outstanding.Add(-1)
}

// FreeStrings releases every string in r and the array itself. The zero
// Result is a no-op.
func FreeStrings(r Result) {
	if r.Data == nil {
		return
	}
	for _, p := range unsafe.Slice((**C.char)(r.Data), r.Len) {
		FreeString(unsafe.Pointer(p))
	}
	C.free(r.Data)
	outstanding.Add(-1)
}

// Strings copies r back into Go memory without freeing it.
func Strings(r Result) []string {
	if r.Data == nil {
		return nil
	}
	out := make([]string, r.Len)
	for i, p := range unsafe.Slice((**C.char)(r.Data), r.Len) {
		out[i] = C.GoString(p)
	}
	return out
}

// String copies a C string back into Go memory without freeing it.
func String(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	return C.GoString((*C.char)(p))
}

func goString(p unsafe.Pointer) (string, bool) {
	if p == nil {
		return "", false
	}
	s := C.GoString((*C.char)(p))
	return s, utf8.ValidString(s)
}

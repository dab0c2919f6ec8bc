// Command libtwotouch builds the C shared library:
//
//	go build -buildmode=c-shared -o libtwotouch.so ./cmd/libtwotouch
//
// The generated header declares:
//
//	TwoTouchStringResult convert_to_two_touch_string(char *text);
//	char *convert_from_two_touch_string(char *code);
//	void free_two_touch_string_result(TwoTouchStringResult r);
//	void free_two_touch_string(char *s);
//
// Failures return {0, NULL} or NULL. Memory returned by the library must be
// released with the matching free function. example/caller.c is a minimal
// C caller.
package main

/*
#include <stddef.h>

typedef struct {
	size_t len;
	char **data;
} TwoTouchStringResult;
*/
import "C"

import (
	"unsafe"

	"github.com/unkn0wn-root/twotouch/cabi"
)

//export convert_to_two_touch_string
func convert_to_two_touch_string(text *C.char) C.TwoTouchStringResult {
	r := cabi.Encode(unsafe.Pointer(text))
	return C.TwoTouchStringResult{len: C.size_t(r.Len), data: (**C.char)(r.Data)}
}

//export convert_from_two_touch_string
func convert_from_two_touch_string(code *C.char) *C.char {
	return (*C.char)(cabi.Decode(unsafe.Pointer(code)))
}

//export free_two_touch_string_result
func free_two_touch_string_result(r C.TwoTouchStringResult) {
	cabi.FreeStrings(cabi.Result{Len: int(r.len), Data: unsafe.Pointer(r.data)})
}

//export free_two_touch_string
func free_two_touch_string(s *C.char) {
	cabi.FreeString(unsafe.Pointer(s))
}

func main() {}

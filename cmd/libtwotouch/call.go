package main

import "C"

import (
	"unsafe"

	"github.com/unkn0wn-root/twotouch/cabi"
)

// callEncode drives convert_to_two_touch_string and
// free_two_touch_string_result the way a C caller does. n is the len field
// of the returned struct; codes is nil when its data field is NULL. Text
// holding a NUL byte is passed as NULL.
func callEncode(text string) (codes []string, n int) {
	in := cabi.AllocString(text)
	defer cabi.FreeString(in)

	r := convert_to_two_touch_string((*C.char)(in))
	n = int(r.len)
	if r.data == nil {
		return nil, n
	}
	defer free_two_touch_string_result(r)
	for _, p := range unsafe.Slice(r.data, n) {
		codes = append(codes, C.GoString(p))
	}
	return codes, n
}

// callDecode drives convert_from_two_touch_string and free_two_touch_string.
// ok is false when the library returned NULL.
func callDecode(code string) (text string, ok bool) {
	in := cabi.AllocString(code)
	defer cabi.FreeString(in)

	out := convert_from_two_touch_string((*C.char)(in))
	if out == nil {
		return "", false
	}
	defer free_two_touch_string(out)
	return C.GoString(out), true
}

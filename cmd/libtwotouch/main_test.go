package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unkn0wn-root/twotouch/cabi"
)

func assertNoLeaks(t *testing.T, before int64) {
	t.Helper()
	if got := cabi.Outstanding(); got != before {
		t.Fatalf("outstanding allocations = %d, want %d", got, before)
	}
}

func TestConvertToTwoTouchString(t *testing.T) {
	before := cabi.Outstanding()
	cases := []struct {
		in   string
		want []string
	}{
		{"ごくろうさん", []string{"5963", "25042395133103"}},
		{"rust", []string{"48564940"}},
		{"ご苦労さん", []string{"5963"}},
	}
	for _, tc := range cases {
		codes, n := callEncode(tc.in)
		if n != len(tc.want) {
			t.Fatalf("%q: len = %d, want %d", tc.in, n, len(tc.want))
		}
		if diff := cmp.Diff(tc.want, codes); diff != "" {
			t.Fatalf("%q mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
	assertNoLeaks(t, before)
}

func TestConvertToTwoTouchStringFailures(t *testing.T) {
	before := cabi.Outstanding()
	for _, in := range []string{"", "筋肉", "\xff", "a\x00b"} {
		if codes, n := callEncode(in); codes != nil || n != 0 {
			t.Fatalf("%q: got {%d, %v}, want {0, NULL}", in, n, codes)
		}
	}
	free_two_touch_string_result(convert_to_two_touch_string(nil))
	assertNoLeaks(t, before)
}

func TestConvertFromTwoTouchString(t *testing.T) {
	before := cabi.Outstanding()
	text, ok := callDecode("81225223")
	if !ok || text != "やきにく" {
		t.Fatalf("decode = %q, %v", text, ok)
	}
	for _, in := range []string{"", "8", "8080", "0a"} {
		if text, ok := callDecode(in); ok {
			t.Fatalf("%q: got %q, want NULL", in, text)
		}
	}
	free_two_touch_string(nil)
	assertNoLeaks(t, before)
}

package codec

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/types/known/structpb"
)

var candidates = []string{"14106", "114106", "1410"}

func TestCandidateCodecs(t *testing.T) {
	for _, name := range []string{"json", "msgpack", "cbor", "proto"} {
		t.Run(name, func(t *testing.T) {
			c, err := ByName(name)
			if err != nil {
				t.Fatalf("ByName(%q): %v", name, err)
			}
			b, err := c.Encode(candidates)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := c.Decode(b)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(candidates, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
			if _, err := c.Decode([]byte{0xff, 0xfe, 0x01}); err == nil {
				t.Fatalf("expected error on garbage input")
			}
		})
	}
}

func TestByNameDefaultsAndUnknown(t *testing.T) {
	c, err := ByName("")
	if err != nil {
		t.Fatalf("ByName(\"\"): %v", err)
	}
	if _, ok := c.(JSON[[]string]); !ok {
		t.Fatalf("empty name should select JSON, got %T", c)
	}
	if _, err := ByName("gob"); err == nil {
		t.Fatalf("expected error for unknown codec")
	}
}

func TestCBORDeterministic(t *testing.T) {
	c := MustCBOR[map[string]string](true)
	in := map[string]string{"b": "2", "a": "1", "c": "3"}
	first, err := c.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _ := c.Encode(in)
		if string(again) != string(first) {
			t.Fatalf("deterministic CBOR produced different bytes")
		}
	}
}

func TestCandidatesRejectsNonStrings(t *testing.T) {
	lv, err := structpb.NewList([]any{"10", 42.0})
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	b, err := listValue.Encode(lv)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := (Candidates{}).Decode(b); err == nil {
		t.Fatalf("expected error for non-string candidate")
	}
}

func TestLimit(t *testing.T) {
	c := Limit[[]string]{Inner: JSON[[]string]{}, MaxDecode: 16}
	b, err := c.Encode([]string{"0123456789", "0123456789"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := c.Decode(b); err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("expected size error, got %v", err)
	}

	small, _ := c.Encode([]string{"10"})
	got, err := c.Decode(small)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff([]string{"10"}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	unlimited := Limit[[]string]{Inner: JSON[[]string]{}}
	if _, err := unlimited.Decode(b); err != nil {
		t.Fatalf("MaxDecode 0 must disable the limit: %v", err)
	}
}

func TestString(t *testing.T) {
	b, _ := String{}.Encode("やきにく")
	if s, _ := (String{}).Decode(b); s != "やきにく" {
		t.Fatalf("String round trip = %q", s)
	}
}

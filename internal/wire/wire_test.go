package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func mustDecode(t *testing.T, b []byte) Entry {
	t.Helper()
	e, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	return e
}

func TestRoundTrip(t *testing.T) {
	cases := []Entry{
		{Kind: KindEncode, Fingerprint: 0, Gen: 0, Payload: nil},
		{Kind: KindEncode, Fingerprint: 0xfeedface, Gen: 42, Payload: []byte(`["2503524261"]`)},
		{Kind: KindDecode, Fingerprint: math.MaxUint64, Gen: math.MaxUint64, Payload: []byte("やきにく")},
	}
	for _, tc := range cases {
		got := mustDecode(t, Encode(tc))
		if got.Kind != tc.Kind || got.Fingerprint != tc.Fingerprint || got.Gen != tc.Gen {
			t.Fatalf("header mismatch: got %+v want %+v", got, tc)
		}
		if !bytes.Equal(got.Payload, tc.Payload) {
			t.Fatalf("payload mismatch: got %x want %x", got.Payload, tc.Payload)
		}
	}
}

func TestRejectsTrailingBytes(t *testing.T) {
	enc := Encode(Entry{Kind: KindDecode, Gen: 7, Payload: []byte("x")})
	enc = append(enc, 0xDE, 0xAD)
	if _, err := Decode(enc); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on trailing bytes, got %v", err)
	}
}

func TestCorruptHeadersAndLengths(t *testing.T) {
	enc := Encode(Entry{Kind: KindEncode, Fingerprint: 9, Gen: 1, Payload: []byte("abc")})

	mutate := func(f func(b []byte) []byte) []byte {
		return f(append([]byte(nil), enc...))
	}

	cases := map[string][]byte{
		"bad_magic":   mutate(func(b []byte) []byte { b[0] = 'X'; return b }),
		"bad_version": mutate(func(b []byte) []byte { b[4] = version + 1; return b }),
		"zero_kind":   mutate(func(b []byte) []byte { b[5] = 0; return b }),
		"bad_kind":    mutate(func(b []byte) []byte { b[5] = 3; return b }),
		// plen sits after magic, ver, kind, fingerprint and gen
		"plen_too_long": mutate(func(b []byte) []byte {
			binary.BigEndian.PutUint32(b[22:26], uint32(len("abc")+1))
			return b
		}),
		"plen_short": mutate(func(b []byte) []byte {
			binary.BigEndian.PutUint32(b[22:26], 1)
			return b
		}),
		"truncated":   enc[:len(enc)-1],
		"header_only": enc[:headerLen-1],
		"empty":       nil,
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(b); !errors.Is(err, ErrCorrupt) {
				t.Fatalf("expected ErrCorrupt, got %v", err)
			}
		})
	}
}

func TestZeroCopyPayload(t *testing.T) {
	enc := Encode(Entry{Kind: KindDecode, Payload: []byte("Z")})
	e := mustDecode(t, enc)
	if len(e.Payload) != 1 {
		t.Fatalf("unexpected payload len")
	}
	e.Payload[0] = 'Q'
	if again := mustDecode(t, enc); again.Payload[0] != 'Q' {
		t.Fatalf("expected zero-copy slice into enc buffer")
	}
}

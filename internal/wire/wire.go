package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version byte = 1

	KindEncode byte = 1
	KindDecode byte = 2
)

var (
	ErrCorrupt = errors.New("twotouch: corrupt cache entry")
	magic4     = [...]byte{'T', 'T', 'I', 'C'}
)

const headerLen = 4 + 1 + 1 + 8 + 8 + 4

// Entry is one cached conversion result.
type Entry struct {
	Kind        byte
	Fingerprint uint64 // table revision the result was computed with
	Gen         uint64 // namespace generation at write time
	Payload     []byte
}

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Encode frames e as:
//
//	magic(4) | ver(1) | kind(1) | fingerprint(u64 be) | gen(u64 be) | plen(u32 be) | payload(plen)
func Encode(e Entry) []byte {
	var buf bytes.Buffer
	buf.Grow(headerLen + len(e.Payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(e.Kind)

	var u8 [8]byte
	var u4 [4]byte

	binary.BigEndian.PutUint64(u8[:], e.Fingerprint)
	buf.Write(u8[:])

	binary.BigEndian.PutUint64(u8[:], e.Gen)
	buf.Write(u8[:])

	binary.BigEndian.PutUint32(u4[:], uint32(len(e.Payload)))
	buf.Write(u4[:])

	buf.Write(e.Payload)
	return buf.Bytes()
}

// Decode parses a frame written by Encode. The returned payload aliases b.
// Unknown kinds, truncated frames and trailing bytes are all ErrCorrupt.
func Decode(b []byte) (Entry, error) {
	if len(b) < headerLen || !hasMagic(b) || b[4] != version {
		return Entry{}, ErrCorrupt
	}
	kind := b[5]
	if kind != KindEncode && kind != KindDecode {
		return Entry{}, ErrCorrupt
	}

	off := 6
	fp := binary.BigEndian.Uint64(b[off : off+8])
	off += 8
	gen := binary.BigEndian.Uint64(b[off : off+8])
	off += 8

	plen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if plen < 0 || plen != len(b)-off {
		return Entry{}, ErrCorrupt
	}

	return Entry{Kind: kind, Fingerprint: fp, Gen: gen, Payload: b[off : off+plen]}, nil
}

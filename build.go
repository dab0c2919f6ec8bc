package twotouch

import (
	"encoding/binary"
	"fmt"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/width"
)

// tables is the immutable state shared by every Codec.
type tables struct {
	codes   map[rune]string // canonical char -> 2 or 4 digit code
	chars   map[string]rune // 2 digit code -> char
	norm    map[rune]rune   // variant -> canonical char
	phrases map[string][]string
	fp      uint64
}

var loadTables = sync.OnceValue(func() *tables {
	return compileTables(baseTable, compositeTable, normalizationTable, phraseTable)
})

// compileTables panics on any inconsistency in the literal tables. A bad
// table is a programming error, not a runtime condition.
func compileTables(base, composite []entry, norm []normEntry, phrases []phraseEntry) *tables {
	t := &tables{
		codes:   make(map[rune]string, len(base)+len(composite)),
		chars:   make(map[string]rune, len(base)),
		norm:    make(map[rune]rune, len(norm)+0x5e),
		phrases: make(map[string][]string, len(phrases)),
	}

	for _, e := range base {
		if len(e.code) != 2 || !isDigits(e.code) {
			panic(fmt.Sprintf("twotouch: bad code %q for %q", e.code, e.char))
		}
		t.addCode(e)
		if prev, dup := t.chars[e.code]; dup {
			panic(fmt.Sprintf("twotouch: code %s shared by %q and %q", e.code, prev, e.char))
		}
		t.chars[e.code] = e.char
	}

	for _, e := range composite {
		if len(e.code) != 4 || !isDigits(e.code) {
			panic(fmt.Sprintf("twotouch: bad composite code %q for %q", e.code, e.char))
		}
		if _, ok := t.chars[e.code[:2]]; !ok {
			panic(fmt.Sprintf("twotouch: composite %q has unknown base %s", e.char, e.code[:2]))
		}
		if m := t.chars[e.code[2:]]; m != voicedMark && m != semiVoicedMark {
			panic(fmt.Sprintf("twotouch: composite %q does not end in a mark code", e.char))
		}
		t.addCode(e)
	}

	// full-width ASCII block
	for r := rune(0xFF01); r <= 0xFF5E; r++ {
		n := width.LookupRune(r).Narrow()
		if n == 0 {
			continue
		}
		n = upperASCII(n)
		if _, ok := t.codes[n]; ok {
			t.addNorm(r, n)
		}
	}
	for _, n := range norm {
		t.addNorm(n.from, n.to)
	}

	for _, p := range phrases {
		if len(p.codes) == 0 {
			panic(fmt.Sprintf("twotouch: phrase %q has no codes", p.phrase))
		}
		for _, c := range p.codes {
			if c == "" || !isDigits(c) {
				panic(fmt.Sprintf("twotouch: phrase %q has bad code %q", p.phrase, c))
			}
		}
		if _, dup := t.phrases[p.phrase]; dup {
			panic(fmt.Sprintf("twotouch: phrase %q listed twice", p.phrase))
		}
		t.phrases[p.phrase] = append([]string(nil), p.codes...)
	}

	t.fp = t.fingerprint()
	return t
}

func (t *tables) addCode(e entry) {
	if prev, dup := t.codes[e.char]; dup {
		panic(fmt.Sprintf("twotouch: %q listed twice (%s, %s)", e.char, prev, e.code))
	}
	t.codes[e.char] = e.code
}

func (t *tables) addNorm(from, to rune) {
	if _, ok := t.codes[to]; !ok {
		panic(fmt.Sprintf("twotouch: normalization target %q of %q has no code", to, from))
	}
	if _, ok := t.codes[from]; ok {
		panic(fmt.Sprintf("twotouch: %q is canonical and cannot be normalized", from))
	}
	if prev, dup := t.norm[from]; dup && prev != to {
		panic(fmt.Sprintf("twotouch: %q normalizes to both %q and %q", from, prev, to))
	}
	t.norm[from] = to
}

// fingerprint hashes every table in a stable order.
func (t *tables) fingerprint() uint64 {
	d := xxhash.New()
	var buf [4]byte
	writeRune := func(r rune) {
		binary.BigEndian.PutUint32(buf[:], uint32(r))
		_, _ = d.Write(buf[:])
	}

	for _, r := range sortedRunes(t.codes) {
		writeRune(r)
		_, _ = d.WriteString(t.codes[r])
	}
	_, _ = d.WriteString("|")
	for _, r := range sortedRunes(t.norm) {
		writeRune(r)
		writeRune(t.norm[r])
	}
	_, _ = d.WriteString("|")
	phrases := make([]string, 0, len(t.phrases))
	for p := range t.phrases {
		phrases = append(phrases, p)
	}
	sort.Strings(phrases)
	for _, p := range phrases {
		_, _ = d.WriteString(p)
		for _, c := range t.phrases[p] {
			_, _ = d.WriteString("\x00" + c)
		}
		_, _ = d.WriteString("\x01")
	}
	return d.Sum64()
}

func sortedRunes[V any](m map[rune]V) []rune {
	out := make([]rune, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func upperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

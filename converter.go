package twotouch

import (
	"sort"
	"strconv"
	"strings"
)

// Codec is the two-touch converter. It holds no mutable state and is safe
// for concurrent use; all Codecs share one set of tables.
type Codec struct {
	t     *tables
	log   Logger
	hooks Hooks
}

var _ Converter = (*Codec)(nil)

func New(opts Options) *Codec {
	return &Codec{
		t:     loadTables(),
		log:   coalesce[Logger](opts.Logger, NopLogger{}),
		hooks: coalesce[Hooks](opts.Hooks, NopHooks{}),
	}
}

func (c *Codec) Encode(text string) ([]string, error) {
	if text == "" {
		return nil, &ParseError{Op: "encode", Pos: -1, Reason: "empty input"}
	}

	var out []string
	if codes, ok := c.t.phrases[text]; ok {
		out = append(out, codes...)
	}

	var b strings.Builder
	b.Grow(2 * len(text))
	pos := 0
	for _, r := range text {
		code, ok := c.t.codes[c.Normalize(r)]
		if !ok {
			if len(out) > 0 {
				c.hooks.PhraseFallback(text, len(out))
				c.log.Debug("literal encoding unavailable; returning phrase shortcuts", Fields{"input": snippet(text), "pos": pos, "shortcuts": len(out)})
				return out, nil
			}
			c.hooks.UnknownRune(text, pos, r)
			c.log.Debug("encode rejected", Fields{"input": snippet(text), "pos": pos, "rune": string(r)})
			return nil, &ParseError{Op: "encode", Input: text, Pos: pos, Reason: "no code for " + strconv.QuoteRune(r)}
		}
		b.WriteString(code)
		pos++
	}
	return append(out, b.String()), nil
}

func (c *Codec) Decode(code string) (string, error) {
	if code == "" || len(code)%2 != 0 {
		return "", &ParseError{Op: "decode", Input: code, Pos: -1, Reason: "length must be even and non-zero"}
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return "", &ParseError{Op: "decode", Input: code, Pos: i, Reason: "non-digit byte"}
		}
	}

	var b strings.Builder
	b.Grow(len(code) * 3 / 2)
	for i := 0; i < len(code); i += 2 {
		chunk := code[i : i+2]
		r, ok := c.t.chars[chunk]
		if !ok {
			c.hooks.UnknownCode(code, i, chunk)
			c.log.Debug("decode rejected", Fields{"input": snippet(code), "pos": i, "chunk": chunk})
			return "", &ParseError{Op: "decode", Input: code, Pos: i, Reason: "unknown code " + chunk}
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Normalize maps r to the canonical character used for lookup: ASCII
// letters are uppercased, then variants (small kana, full-width forms, the
// prolonged sound mark) are folded. Runes without a mapping are returned
// unchanged.
func (c *Codec) Normalize(r rune) rune {
	r = upperASCII(r)
	if n, ok := c.t.norm[r]; ok {
		return n
	}
	return r
}

// CodeOf returns the code of a canonical character. No normalization is
// applied.
func (c *Codec) CodeOf(r rune) (string, bool) {
	code, ok := c.t.codes[r]
	return code, ok
}

// CharOf returns the character for a 2-digit code.
func (c *Codec) CharOf(code string) (rune, bool) {
	r, ok := c.t.chars[code]
	return r, ok
}

// Phrase returns a copy of the shortcut codes for an exact phrase.
func (c *Codec) Phrase(text string) ([]string, bool) {
	codes, ok := c.t.phrases[text]
	if !ok {
		return nil, false
	}
	return append([]string(nil), codes...), true
}

// Entries lists the code table ordered by code length, then code.
func (c *Codec) Entries() []Entry {
	out := make([]Entry, 0, len(c.t.codes))
	for r, code := range c.t.codes {
		out = append(out, Entry{Char: r, Code: code})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Code) != len(out[j].Code) {
			return len(out[i].Code) < len(out[j].Code)
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// Phrases lists the phrase table ordered by phrase.
func (c *Codec) Phrases() []Phrase {
	out := make([]Phrase, 0, len(c.t.phrases))
	for p, codes := range c.t.phrases {
		out = append(out, Phrase{Text: p, Codes: append([]string(nil), codes...)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Text < out[j].Text })
	return out
}

// Fingerprint identifies the table revision. Cached results carry it and
// are dropped when it changes.
func (c *Codec) Fingerprint() uint64 { return c.t.fp }

package twotouch

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type hookEvent struct {
	kind  string
	input string
	pos   int
	extra string
}

type recHooks struct {
	NopHooks
	mu     sync.Mutex
	events []hookEvent
}

func (h *recHooks) add(e hookEvent) {
	h.mu.Lock()
	h.events = append(h.events, e)
	h.mu.Unlock()
}

func (h *recHooks) UnknownRune(in string, pos int, r rune) {
	h.add(hookEvent{"unknown_rune", in, pos, string(r)})
}
func (h *recHooks) UnknownCode(in string, pos int, chunk string) {
	h.add(hookEvent{"unknown_code", in, pos, chunk})
}
func (h *recHooks) PhraseFallback(in string, n int) {
	h.add(hookEvent{"phrase_fallback", in, n, ""})
}

func TestEncode(t *testing.T) {
	c := New(Options{})
	cases := []struct {
		in   string
		want []string
	}{
		{"こんにちは", []string{"2503524261"}},
		{"ごくろうさん", []string{"5963", "25042395133103"}},
		{"ご苦労さん", []string{"5963"}},
		{"だA*（￥ぽＧ", []string{"410416868276650527"}},
		{"rust", []string{"48564940"}},
		{"ｒｕｓｔ", []string{"48564940"}},
		{"ＴＥＬ", []string{"106", "401037"}},
		{"Thank you", []string{"39", "999", "402816393688503056"}},
		{"thank you", []string{"39", "999", "402816393688503056"}},
		{"ハロー", []string{"860"}},
		{"きゃっと", []string{"22814345"}},
		{"Ｋ", []string{"36"}},
		{"ー", []string{"69"}},
	}
	for _, tc := range cases {
		got, err := c.Encode(tc.in)
		if err != nil {
			t.Fatalf("Encode(%q): %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("Encode(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	c := New(Options{})
	cases := []struct {
		in  string
		pos int
	}{
		{"", -1},
		{"筋肉", 0},
		{"@", 0},
		{"あいう筋", 3},
		{"\xff", 0},
	}
	for _, tc := range cases {
		got, err := c.Encode(tc.in)
		if err == nil {
			t.Fatalf("Encode(%q) = %v, want error", tc.in, got)
		}
		if !errors.Is(err, ErrParse) {
			t.Fatalf("Encode(%q) error %v is not ErrParse", tc.in, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Encode(%q) error %T is not *ParseError", tc.in, err)
		}
		if pe.Op != "encode" || pe.Pos != tc.pos {
			t.Fatalf("Encode(%q) op=%q pos=%d, want encode/%d", tc.in, pe.Op, pe.Pos, tc.pos)
		}
	}
}

func TestDecode(t *testing.T) {
	c := New(Options{})
	cases := map[string]string{
		"48564940":     "RUST",
		"81225223":     "やきにく",
		"250459868884": "こ゛X* )",
		"2104":         "か゛",
		"6105":         "は゜",
		"00969790":     "0125",
	}
	for in, want := range cases {
		got, err := c.Decode(in)
		if err != nil {
			t.Fatalf("Decode(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("Decode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	c := New(Options{})
	cases := []struct {
		in  string
		pos int
	}{
		{"", -1},
		{"111", -1},
		{"8080", 0},
		{"1180", 2},
		{"筋肉", 0},
		{"1a", 1},
		{"+1", 0},
	}
	for _, tc := range cases {
		got, err := c.Decode(tc.in)
		if err == nil {
			t.Fatalf("Decode(%q) = %q, want error", tc.in, got)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || !errors.Is(err, ErrParse) {
			t.Fatalf("Decode(%q) error %v is not a ParseError", tc.in, err)
		}
		if pe.Op != "decode" || pe.Pos != tc.pos {
			t.Fatalf("Decode(%q) op=%q pos=%d, want decode/%d", tc.in, pe.Op, pe.Pos, tc.pos)
		}
	}
}

func TestRoundTripEveryEntry(t *testing.T) {
	c := New(Options{})
	for _, e := range c.Entries() {
		got, err := c.Decode(e.Code)
		if err != nil {
			t.Fatalf("Decode(%q) for %q: %v", e.Code, e.Char, err)
		}
		want := string(e.Char)
		if len(e.Code) == 4 {
			base, _ := c.CharOf(e.Code[:2])
			mark, _ := c.CharOf(e.Code[2:])
			want = string(base) + string(mark)
		}
		if got != want {
			t.Fatalf("Decode(%q) = %q, want %q", e.Code, got, want)
		}

		again, err := c.Encode(got)
		if err != nil {
			t.Fatalf("Encode(%q): %v", got, err)
		}
		if diff := cmp.Diff([]string{e.Code}, again); diff != "" {
			t.Fatalf("re-encode of %q mismatch (-want +got):\n%s", got, diff)
		}
	}
}

func TestNormalize(t *testing.T) {
	c := New(Options{})
	cases := map[rune]rune{
		'ａ': 'A',
		'Ｋ': 'K',
		'ｋ': 'K',
		'x': 'X',
		'っ': 'つ',
		'ょ': 'よ',
		'ー': '-',
		'￥': '\\',
		'　': ' ',
		'７': '7',
		'（': '(',
		'あ': 'あ',
		'筋': '筋',
		'＠': '＠',
	}
	for in, want := range cases {
		if got := c.Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInverseHasOnlyTwoDigitCodes(t *testing.T) {
	c := New(Options{})
	n := 0
	for _, e := range c.Entries() {
		if len(e.Code) == 2 {
			n++
			if r, ok := c.CharOf(e.Code); !ok || r != e.Char {
				t.Fatalf("CharOf(%q) = %q,%v want %q", e.Code, r, ok, e.Char)
			}
			continue
		}
		if _, ok := c.CharOf(e.Code); ok {
			t.Fatalf("composite code %q must not be in the inverse map", e.Code)
		}
	}
	// 70, 78, 79, 80 and 89 are unassigned
	if n != 95 {
		t.Fatalf("expected 95 two-digit codes, got %d", n)
	}
}

func TestHooksAndFallback(t *testing.T) {
	h := &recHooks{}
	c := New(Options{Hooks: h})

	if _, err := c.Encode("ご苦労さん"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, _ = c.Encode("筋肉")
	_, _ = c.Decode("1180")

	want := []hookEvent{
		{"phrase_fallback", "ご苦労さん", 1, ""},
		{"unknown_rune", "筋肉", 0, "筋"},
		{"unknown_code", "1180", 2, "80"},
	}
	if diff := cmp.Diff(want, h.events, cmp.AllowUnexported(hookEvent{})); diff != "" {
		t.Fatalf("hook events mismatch (-want +got):\n%s", diff)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := New(Options{})
	codes, ok := c.Phrase("あいしてる")
	if !ok {
		t.Fatalf("phrase missing")
	}
	codes[0] = "0000"
	again, _ := c.Phrase("あいしてる")
	if diff := cmp.Diff([]string{"14106", "114106", "1410"}, again); diff != "" {
		t.Fatalf("phrase table was mutated (-want +got):\n%s", diff)
	}

	out, _ := c.Encode("いま")
	out[0] = "x"
	out2, _ := c.Encode("いま")
	if out2[0] != "10" {
		t.Fatalf("Encode result aliases the phrase table: %v", out2)
	}

	for _, p := range c.Phrases() {
		p.Codes[0] = "x"
	}
	if got, _ := c.Phrase("いま"); got[0] != "10" {
		t.Fatalf("Phrases() aliases the phrase table")
	}
}

func TestDefaultShared(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("Default must return the same codec")
	}
	if New(Options{}).Fingerprint() != Default().Fingerprint() {
		t.Fatalf("all codecs share one table set")
	}
	got, err := Encode("よろしく")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got[0] != "4649" {
		t.Fatalf("Encode(よろしく)[0] = %q, want 4649", got[0])
	}
	if s, err := Decode("85953223"); err != nil || s != "よろしく" {
		t.Fatalf("Decode = %q, %v", s, err)
	}
}

func TestConcurrentUse(t *testing.T) {
	c := New(Options{})
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if _, err := c.Encode("ごくろうさん"); err != nil {
					t.Errorf("Encode: %v", err)
					return
				}
				if _, err := c.Decode("48564940"); err != nil {
					t.Errorf("Decode: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

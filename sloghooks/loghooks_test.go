package sloghooks

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/twotouch"
)

func newBufLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestRedactsInput(t *testing.T) {
	l, buf := newBufLogger()
	c := twotouch.New(twotouch.Options{Hooks: New(l, Options{})})

	if _, err := c.Encode("秘密のメッセージ"); err == nil {
		t.Fatalf("expected error")
	}
	out := buf.String()
	if !strings.Contains(out, "twotouch.unknown_rune") || !strings.Contains(out, "rune=秘") {
		t.Fatalf("unexpected output %q", out)
	}
	if strings.Contains(out, "秘密のメッセージ") {
		t.Fatalf("input leaked into log: %q", out)
	}
}

func TestSampling(t *testing.T) {
	l, buf := newBufLogger()
	h := New(l, Options{RejectEvery: 5, Redact: func(s string) string { return "x" }})

	for i := 0; i < 10; i++ {
		h.UnknownCode("8080", 0, "80")
	}
	if n := strings.Count(buf.String(), "twotouch.unknown_code"); n != 2 {
		t.Fatalf("logged %d events, want 2", n)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	h := New(nil, Options{})
	h.UnknownRune("a", 0, 'a')
	h.UnknownCode("a", 0, "a")
	h.PhraseFallback("a", 1)
	h.CacheSelfHeal("k", "corrupt")
	h.ProviderSetRejected("k")
	h.ProviderError("get", errors.New("boom"))
}

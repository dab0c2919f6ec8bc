package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/unkn0wn-root/twotouch"
)

func TestLogrusLogger(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	l := LogrusLogger{E: logrus.NewEntry(base)}

	c := twotouch.New(twotouch.Options{Logger: l})
	if _, err := c.Decode("1180"); err == nil {
		t.Fatalf("expected error")
	}

	e := hook.LastEntry()
	if e == nil {
		t.Fatalf("no entry logged")
	}
	if e.Level != logrus.DebugLevel || e.Message != "decode rejected" {
		t.Fatalf("entry = %v %q", e.Level, e.Message)
	}
	if e.Data["chunk"] != "80" || e.Data["pos"] != 2 {
		t.Fatalf("fields = %v", e.Data)
	}

	l.Error("boom", nil)
	if got := hook.LastEntry(); got.Level != logrus.ErrorLevel {
		t.Fatalf("level = %v", got.Level)
	}
}

// Package sloghooks logs twotouch hook events to a *slog.Logger.
// Inputs and storage keys are redacted by default since they carry user text.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/twotouch"
	"github.com/unkn0wn-root/twotouch/internal/util"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	RejectEvery   uint64 // UnknownRune, UnknownCode
	SelfHealEvery uint64
	// Optional redactor for inputs and keys. Defaults to a SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	rejectCtr   atomic.Uint64
	selfHealCtr atomic.Uint64
}

var _ twotouch.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(s string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(s)
	}
	return util.Redact(s)
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) UnknownRune(input string, pos int, r rune) {
	if h.l == nil || !sample(h.opts.RejectEvery, &h.rejectCtr) {
		return
	}
	h.l.Debug("twotouch.unknown_rune",
		"input", h.redact(input),
		"pos", pos,
		"rune", string(r))
}

func (h *Hooks) UnknownCode(input string, pos int, chunk string) {
	if h.l == nil || !sample(h.opts.RejectEvery, &h.rejectCtr) {
		return
	}
	h.l.Debug("twotouch.unknown_code",
		"input", h.redact(input),
		"pos", pos,
		"chunk", chunk)
}

func (h *Hooks) PhraseFallback(input string, shortcuts int) {
	if h.l == nil {
		return
	}
	h.l.Info("twotouch.phrase_fallback",
		"input", h.redact(input),
		"shortcuts", shortcuts)
}

func (h *Hooks) CacheSelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("twotouch.cache_self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("twotouch.provider_set_rejected",
		"key", h.redact(storageKey))
}

func (h *Hooks) ProviderError(op string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("twotouch.provider_error",
		"op", op,
		"err", err)
}

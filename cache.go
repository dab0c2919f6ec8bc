package twotouch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/unkn0wn-root/twotouch/codec"
	"github.com/unkn0wn-root/twotouch/genstore"
	"github.com/unkn0wn-root/twotouch/internal/util"
	"github.com/unkn0wn-root/twotouch/internal/wire"
	"github.com/unkn0wn-root/twotouch/provider"
)

const defaultTTL = 10 * time.Minute

// SetCostFunc returns the cost passed to Provider.Set for a framed entry.
type SetCostFunc func(storageKey string, frame []byte) int64

// CacheOptions configure a Cached converter. Namespace and Provider are
// required; everything else has a default.
type CacheOptions struct {
	Namespace string
	Provider  provider.Provider

	// Codec stores encode results. Default codec.JSON.
	Codec codec.Codec[[]string]
	// Converter computes results on a miss. Default is Default().
	Converter Converter

	Logger Logger
	Hooks  Hooks

	TTL      time.Duration     // default 10m
	GenStore genstore.GenStore // default genstore.NewLocalGenStore()
	Disabled bool              // pass every call straight to Converter

	// MaxPayload rejects cached payloads larger than this many bytes.
	// 0 disables the limit.
	MaxPayload int

	// ComputeSetCost defaults to the frame length.
	ComputeSetCost SetCostFunc
}

// Cached memoizes a Converter in a Provider.
//
// Keys:
//
//	enc:<ns>:<h>  - candidate lists for a text
//	dec:<ns>:<h>  - decoded text for a code string
//
// h is a hash of the input. Each value carries the table fingerprint and the
// namespace generation it was computed under; a mismatch on either deletes
// the entry on read. Purge bumps the generation. Provider and generation
// store failures never fail a conversion: the call falls back to the
// Converter.
type Cached struct {
	ns       string
	conv     Converter
	fp       uint64
	provider provider.Provider
	enc      codec.Codec[[]string]
	dec      codec.Codec[string]
	log      Logger
	hooks    Hooks
	ttl      time.Duration
	gen      genstore.GenStore
	enabled  bool

	computeSetCost SetCostFunc
	closeOnce      sync.Once
	closeErr       error
}

var _ Converter = (*Cached)(nil)

func NewCached(opts CacheOptions) (*Cached, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("twotouch: provider is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("twotouch: namespace is required")
	}

	c := &Cached{
		ns:       opts.Namespace,
		provider: opts.Provider,
		enabled:  !opts.Disabled,
	}

	// defaults
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.ttl = coalesce[time.Duration](opts.TTL, defaultTTL)

	if opts.Converter != nil {
		c.conv = opts.Converter
	} else {
		c.conv = Default()
	}
	if f, ok := c.conv.(interface{ Fingerprint() uint64 }); ok {
		c.fp = f.Fingerprint()
	}

	var enc codec.Codec[[]string] = codec.JSON[[]string]{}
	if opts.Codec != nil {
		enc = opts.Codec
	}
	var dec codec.Codec[string] = codec.String{}
	if opts.MaxPayload > 0 {
		enc = codec.Limit[[]string]{Inner: enc, MaxDecode: opts.MaxPayload}
		dec = codec.Limit[string]{Inner: dec, MaxDecode: opts.MaxPayload}
	}
	c.enc, c.dec = enc, dec

	if opts.ComputeSetCost != nil {
		c.computeSetCost = opts.ComputeSetCost
	} else {
		c.computeSetCost = func(_ string, frame []byte) int64 { return int64(len(frame)) }
	}

	if opts.GenStore != nil {
		c.gen = opts.GenStore
	} else {
		c.gen = genstore.NewLocalGenStore()
	}

	return c, nil
}

func (c *Cached) Enabled() bool { return c.enabled }

func (c *Cached) Encode(text string) ([]string, error) {
	return c.EncodeContext(context.Background(), text)
}

func (c *Cached) Decode(code string) (string, error) {
	return c.DecodeContext(context.Background(), code)
}

// EncodeContext is Encode with a context for the provider round trips.
// Parse errors are never cached.
func (c *Cached) EncodeContext(ctx context.Context, text string) ([]string, error) {
	if !c.enabled || text == "" {
		return c.conv.Encode(text)
	}
	gen, ok := c.snapshotGen(ctx)
	if !ok {
		return c.conv.Encode(text)
	}

	k := util.StorageKey("enc:"+c.ns, text)
	if v, hit := lookup(ctx, c, k, wire.KindEncode, gen, c.enc, func(v []string) bool { return len(v) > 0 }); hit {
		return v, nil
	}

	out, err := c.conv.Encode(text)
	if err != nil {
		return nil, err
	}
	payload, err := c.enc.Encode(out)
	if err != nil {
		c.log.Warn("encode result not cached", Fields{"key": k, "err": err})
		return out, nil
	}
	c.store(ctx, k, wire.KindEncode, gen, payload)
	return out, nil
}

// DecodeContext is Decode with a context for the provider round trips.
func (c *Cached) DecodeContext(ctx context.Context, code string) (string, error) {
	if !c.enabled || code == "" {
		return c.conv.Decode(code)
	}
	gen, ok := c.snapshotGen(ctx)
	if !ok {
		return c.conv.Decode(code)
	}

	k := util.StorageKey("dec:"+c.ns, code)
	if v, hit := lookup(ctx, c, k, wire.KindDecode, gen, c.dec, func(v string) bool { return v != "" }); hit {
		return v, nil
	}

	out, err := c.conv.Decode(code)
	if err != nil {
		return "", err
	}
	payload, err := c.dec.Encode(out)
	if err != nil {
		c.log.Warn("decode result not cached", Fields{"key": k, "err": err})
		return out, nil
	}
	c.store(ctx, k, wire.KindDecode, gen, payload)
	return out, nil
}

// Purge makes every entry in the namespace stale. Stale entries are deleted
// lazily as they are read, or expire with their TTL.
func (c *Cached) Purge(ctx context.Context) error {
	if !c.enabled {
		return nil
	}
	g, err := c.gen.Bump(ctx, c.ns)
	if err != nil {
		c.hooks.ProviderError("gen_bump", err)
		c.log.Error("gen bump error", Fields{"ns": c.ns, "err": err})
		return &CacheError{Op: "purge", Key: c.ns, Err: err}
	}
	c.log.Info("cache purged", Fields{"ns": c.ns, "gen": g})
	return nil
}

// Close releases the generation store and the provider. Safe to call more
// than once.
func (c *Cached) Close(ctx context.Context) error {
	c.closeOnce.Do(func() {
		if err := c.gen.Close(ctx); err != nil {
			c.log.Warn("gen store close error", Fields{"err": err})
		}
		if err := c.provider.Close(ctx); err != nil {
			c.closeErr = &CacheError{Op: "close", Err: err}
		}
	})
	return c.closeErr
}

// lookup returns the cached value for key if it is a well-formed frame of
// the given kind, written with the current tables and generation. Anything
// else is deleted.
func lookup[V any](ctx context.Context, c *Cached, key string, kind byte, gen uint64, cd codec.Codec[V], valid func(V) bool) (V, bool) {
	var zero V
	raw, ok, err := c.provider.Get(ctx, key)
	if err != nil {
		c.hooks.ProviderError("get", err)
		c.log.Warn("provider get error", Fields{"key": key, "err": err})
		return zero, false
	}
	if !ok {
		return zero, false
	}

	e, err := wire.Decode(raw)
	switch {
	case err != nil:
		c.selfHeal(ctx, key, "corrupt")
		return zero, false
	case e.Kind != kind:
		c.selfHeal(ctx, key, "kind_mismatch")
		return zero, false
	case e.Fingerprint != c.fp:
		c.selfHeal(ctx, key, "stale_table")
		return zero, false
	case e.Gen != gen:
		c.selfHeal(ctx, key, "stale_gen")
		return zero, false
	}

	v, err := cd.Decode(e.Payload)
	if err != nil || !valid(v) {
		c.selfHeal(ctx, key, "value_decode")
		return zero, false
	}
	return v, true
}

func (c *Cached) store(ctx context.Context, key string, kind byte, gen uint64, payload []byte) {
	// generation moved while converting; skip stale write
	if cur, ok := c.snapshotGen(ctx); !ok || cur != gen {
		c.log.Debug("cache write skipped (gen mismatch)", Fields{"key": key, "obs": gen})
		return
	}

	frame := wire.Encode(wire.Entry{Kind: kind, Fingerprint: c.fp, Gen: gen, Payload: payload})
	ok, err := c.provider.Set(ctx, key, frame, c.computeSetCost(key, frame), c.ttl)
	if err != nil {
		c.hooks.ProviderError("set", err)
		c.log.Warn("provider set error", Fields{"key": key, "err": err})
		return
	}
	if !ok {
		c.hooks.ProviderSetRejected(key)
		c.log.Debug("cache write rejected by provider (pressure)", Fields{"key": key})
	}
}

func (c *Cached) selfHeal(ctx context.Context, key, reason string) {
	c.hooks.CacheSelfHeal(key, reason)
	c.log.Debug("cache entry dropped", Fields{"key": key, "reason": reason})
	if err := c.provider.Del(ctx, key); err != nil {
		c.hooks.ProviderError("del", err)
		c.log.Warn("provider del error", Fields{"key": key, "err": err})
	}
}

// snapshotGen reports ok=false when the generation is unknown; callers
// bypass the cache rather than risk serving a purged entry.
func (c *Cached) snapshotGen(ctx context.Context) (uint64, bool) {
	g, err := c.gen.Snapshot(ctx, c.ns)
	if err != nil {
		c.hooks.ProviderError("gen_snapshot", err)
		c.log.Warn("gen snapshot error", Fields{"ns": c.ns, "err": err})
		return 0, false
	}
	return g, true
}

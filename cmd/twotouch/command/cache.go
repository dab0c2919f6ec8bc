package command

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/twotouch"
	"github.com/unkn0wn-root/twotouch/codec"
	"github.com/unkn0wn-root/twotouch/genstore"
	zaplog "github.com/unkn0wn-root/twotouch/log/zap"
	"github.com/unkn0wn-root/twotouch/provider"
	"github.com/unkn0wn-root/twotouch/provider/bigcache"
	redisprovider "github.com/unkn0wn-root/twotouch/provider/redis"
	"github.com/unkn0wn-root/twotouch/provider/ristretto"
)

const inProcessCacheBytes = 64 << 20

// newCached returns nil when caching is off.
func (a *app) newCached(ctx context.Context) (*twotouch.Cached, error) {
	kind := a.v.GetString("cache")
	ttl := a.v.GetDuration("cache-ttl")

	var (
		p   provider.Provider
		gs  genstore.GenStore
		err error
	)
	switch kind {
	case "", "none":
		return nil, nil
	case "ristretto":
		p, err = ristretto.New(ristretto.DefaultConfig(inProcessCacheBytes))
	case "bigcache":
		p, err = bigcache.New(ctx, bigcache.Config{LifeWindow: ttl, HardMaxCacheSizeMB: inProcessCacheBytes >> 20})
	case "redis":
		rdb := goredis.NewClient(&goredis.Options{Addr: a.v.GetString("redis-addr")})
		// the provider owns the client; the gen store borrows it
		p, err = redisprovider.New(redisprovider.Config{Client: rdb, CloseClient: true})
		if err == nil {
			gs, err = genstore.NewRedisGenStore(genstore.RedisConfig{Client: rdb, Prefix: "twotouch:gen"})
		}
	default:
		return nil, fmt.Errorf("unknown cache %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("cache %s: %w", kind, err)
	}

	cd, err := codec.ByName(a.v.GetString("cache-codec"))
	if err != nil {
		_ = p.Close(ctx)
		return nil, err
	}

	c, err := twotouch.NewCached(twotouch.CacheOptions{
		Namespace: a.v.GetString("namespace"),
		Provider:  p,
		Codec:     cd,
		Converter: a.codec,
		Logger:    zaplog.ZapLogger{L: a.log},
		TTL:       ttl,
		GenStore:  gs,
	})
	if err != nil {
		_ = p.Close(ctx)
		return nil, err
	}
	a.provider = p
	a.log.Debug("result cache enabled", zap.String("cache", kind), zap.String("ns", a.v.GetString("namespace")))
	return c, nil
}

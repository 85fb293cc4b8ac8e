package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// Recorder receives cache outcomes. *observability.Metrics satisfies it.
type Recorder interface {
	ObserveCache(result string)
	SetCacheGeneration(gen int64)
}

// Resolver caches another resolver's results in Redis. Keys embed a generation number;
// bumping it orphans every earlier entry, which then expires by TTL. Any Redis failure falls
// through to the wrapped resolver.
type Resolver struct {
	rdb      *goredis.Client
	inner    filtering.Resolver
	registry *filtering.Registry
	log      *logger.Logger
	rec      Recorder
	name     string
	prefix   string
	ttl      time.Duration
	timeout  time.Duration
	group    singleflight.Group
}

// NewResolver wraps inner. registry narrows cache keys to the facets a kind actually uses; a
// nil registry keys on the whole bag.
func NewResolver(rdb *goredis.Client, inner filtering.Resolver, registry *filtering.Registry, baseLog *logger.Logger, rec Recorder, name string, cfg RedisConfig) *Resolver {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "abcd:filter"
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	timeout := cfg.ResolveTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Resolver{
		rdb:      rdb,
		inner:    inner,
		registry: registry,
		log:      baseLog.With("service", "ResolverCache", "registry", name),
		rec:      rec,
		name:     name,
		prefix:   prefix,
		ttl:      ttl,
		timeout:  timeout,
	}
}

func (c *Resolver) generationKey() string { return c.prefix + ":generation" }

// Key renders the cache key for one resolution. Facets the kind ignores are left out.
func (c *Resolver) Key(gen int64, kind taxonomy.Kind, bag filtering.Bag) string {
	return fmt.Sprintf("%s:g%d:%s:%s:%s", c.prefix, gen, c.name, kind, c.relevant(kind, bag).Canonical())
}

func (c *Resolver) relevant(kind taxonomy.Kind, bag filtering.Bag) filtering.Bag {
	if c.registry == nil {
		return bag
	}
	applied, err := c.registry.Applied(kind, bag)
	if err != nil {
		return bag
	}
	facets := make([]filtering.Facet, 0, len(applied))
	for _, b := range applied {
		facets = append(facets, b.Facet)
	}
	return bag.Only(facets)
}

// Generation returns the current generation; a missing counter reads as zero.
func (c *Resolver) Generation(ctx context.Context) (int64, error) {
	raw, err := c.rdb.Get(ctx, c.generationKey()).Result()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(raw, 10, 64)
}

// Invalidate bumps the generation so no earlier entry is read again.
func (c *Resolver) Invalidate(ctx context.Context) error {
	gen, err := c.rdb.Incr(ctx, c.generationKey()).Result()
	if err != nil {
		return err
	}
	if c.rec != nil {
		c.rec.SetCacheGeneration(gen)
	}
	c.log.Info("filter cache invalidated", "generation", gen)
	return nil
}

func (c *Resolver) record(result string) {
	if c.rec != nil {
		c.rec.ObserveCache(result)
	}
}

func (c *Resolver) Resolve(ctx context.Context, kind taxonomy.Kind, bag filtering.Bag) ([]filtering.ID, error) {
	gen, err := c.Generation(ctx)
	if err != nil {
		c.record(resultError)
		c.log.Warn("filter cache unavailable; resolving directly", "error", err)
		return c.inner.Resolve(ctx, kind, bag)
	}
	key := c.Key(gen, kind, bag)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var ids []filtering.ID
		if jerr := json.Unmarshal(raw, &ids); jerr == nil {
			c.record(resultHit)
			if ids == nil {
				ids = []filtering.ID{}
			}
			return ids, nil
		}
		c.log.Warn("filter cache entry unreadable", "key", key)
	case errors.Is(err, goredis.Nil):
	default:
		c.record(resultError)
		c.log.Warn("filter cache read failed; resolving directly", "key", key, "error", err)
		return c.inner.Resolve(ctx, kind, bag)
	}
	c.record(resultMiss)

	// The shared resolution outlives any one caller; each caller still stops waiting on its own ctx.
	ch := c.group.DoChan(key, func() (interface{}, error) {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		ids, err := c.inner.Resolve(sctx, kind, bag)
		if err != nil {
			return nil, err
		}
		payload, jerr := json.Marshal(ids)
		if jerr == nil {
			if serr := c.rdb.Set(sctx, key, payload, c.ttl).Err(); serr != nil {
				c.log.Warn("filter cache write failed", "key", key, "error", serr)
			}
		}
		return ids, nil
	})
	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	shared := res.Val.([]filtering.ID)
	out := make([]filtering.ID, len(shared))
	copy(out, shared)
	return out, nil
}

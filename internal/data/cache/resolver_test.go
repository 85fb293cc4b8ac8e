package cache

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

type countingResolver struct {
	calls atomic.Int32
	ids   []filtering.ID
	err   error
	delay time.Duration
}

func (r *countingResolver) Resolve(ctx context.Context, kind taxonomy.Kind, bag filtering.Bag) ([]filtering.ID, error) {
	r.calls.Add(1)
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	if r.err != nil {
		return nil, r.err
	}
	return append([]filtering.ID{}, r.ids...), nil
}

type recorder struct {
	mu      sync.Mutex
	results map[string]int
	gen     int64
}

func (r *recorder) ObserveCache(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.results == nil {
		r.results = map[string]int{}
	}
	r.results[result]++
}

func (r *recorder) SetCacheGeneration(gen int64) { r.gen = gen }

func (r *recorder) count(result string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.results[result]
}

// memoryRedis answers GET, SET and INCR from a map so the client never dials.
type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryClient(t *testing.T) *goredis.Client {
	t.Helper()
	rdb := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})
	rdb.AddHook(&memoryRedis{data: map[string]string{}})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func (m *memoryRedis) DialHook(next goredis.DialHook) goredis.DialHook { return next }

func (m *memoryRedis) ProcessPipelineHook(next goredis.ProcessPipelineHook) goredis.ProcessPipelineHook {
	return next
}

func (m *memoryRedis) ProcessHook(next goredis.ProcessHook) goredis.ProcessHook {
	return func(ctx context.Context, cmd goredis.Cmder) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		args := cmd.Args()
		key, _ := args[1].(string)
		switch c := cmd.(type) {
		case *goredis.StringCmd:
			v, ok := m.data[key]
			if !ok {
				return goredis.Nil
			}
			c.SetVal(v)
		case *goredis.StatusCmd:
			switch v := args[2].(type) {
			case []byte:
				m.data[key] = string(v)
			case string:
				m.data[key] = v
			}
			c.SetVal("OK")
		case *goredis.IntCmd:
			n, _ := strconv.ParseInt(m.data[key], 10, 64)
			n++
			m.data[key] = strconv.FormatInt(n, 10)
			c.SetVal(n)
		default:
			return errors.New("memoryRedis: unsupported command " + cmd.Name())
		}
		return nil
	}
}

// blockingResolver holds every resolution until release is closed, honouring cancellation.
type blockingResolver struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
	calls   atomic.Int32
}

func (r *blockingResolver) Resolve(ctx context.Context, kind taxonomy.Kind, bag filtering.Bag) ([]filtering.ID, error) {
	r.calls.Add(1)
	r.once.Do(func() { close(r.started) })
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-r.release:
		return []filtering.ID{7, 8}, nil
	}
}

func taxonomyRegistry(t *testing.T) *filtering.Registry {
	t.Helper()
	regs, err := filtering.LoadRegistries(logger.Nop())
	require.NoError(t, err)
	return regs.Taxonomy
}

func TestKeyFormat(t *testing.T) {
	c := NewResolver(nil, nil, nil, logger.Nop(), nil, "taxonomy", RedisConfig{})
	bag := filtering.Bag{"topic_ids": {2, 1}, "outcome_ids": {5}}
	assert.Equal(t, "abcd:filter:g7:taxonomy:behaviour:outcome_ids=5;topic_ids=2,1", c.Key(7, taxonomy.KindBehaviour, bag))
	assert.Equal(t, "abcd:filter:g0:taxonomy:course:", c.Key(0, taxonomy.KindCourse, filtering.Bag{}))
}

func TestKeyIgnoresFacetsTheKindDoesNotApply(t *testing.T) {
	c := NewResolver(nil, nil, taxonomyRegistry(t), logger.Nop(), nil, "taxonomy", RedisConfig{})
	narrow := filtering.Bag{"topic_ids": {1}}
	wide := filtering.Bag{"topic_ids": {1}, "country_ids": {44}}
	assert.Equal(t, c.Key(3, taxonomy.KindBehaviour, narrow), c.Key(3, taxonomy.KindBehaviour, wide))
	assert.Equal(t, "abcd:filter:g3:taxonomy:behaviour:topic_ids=1", c.Key(3, taxonomy.KindBehaviour, wide))
}

func TestResolveHitsAcrossIrrelevantFacets(t *testing.T) {
	inner := &countingResolver{ids: []filtering.ID{5}}
	rec := &recorder{}
	c := NewResolver(newMemoryClient(t), inner, taxonomyRegistry(t), logger.Nop(), rec, "taxonomy", RedisConfig{})
	ctx := context.Background()

	got, err := c.Resolve(ctx, taxonomy.KindBehaviour, filtering.Bag{"topic_ids": {1}})
	require.NoError(t, err)
	assert.Equal(t, []filtering.ID{5}, got)

	got, err = c.Resolve(ctx, taxonomy.KindBehaviour, filtering.Bag{"topic_ids": {1}, "country_ids": {44}})
	require.NoError(t, err)
	assert.Equal(t, []filtering.ID{5}, got)
	assert.Equal(t, int32(1), inner.calls.Load())
	assert.Equal(t, 1, rec.count("hit"))
}

func TestResolveSurvivesCancelledLeader(t *testing.T) {
	inner := &blockingResolver{started: make(chan struct{}), release: make(chan struct{})}
	c := NewResolver(newMemoryClient(t), inner, nil, logger.Nop(), nil, "taxonomy", RedisConfig{})
	bag := filtering.Bag{"topic_ids": {1}}

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := c.Resolve(leaderCtx, taxonomy.KindBehaviour, bag)
		leaderErr <- err
	}()
	<-inner.started

	type result struct {
		ids []filtering.ID
		err error
	}
	follower := make(chan result, 1)
	go func() {
		ids, err := c.Resolve(context.Background(), taxonomy.KindBehaviour, bag)
		follower <- result{ids, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelLeader()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	close(inner.release)
	got := <-follower
	require.NoError(t, got.err)
	assert.Equal(t, []filtering.ID{7, 8}, got.ids)
	assert.Equal(t, int32(1), inner.calls.Load())
}

func TestResolveDegradesWhenRedisIsDown(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	inner := &countingResolver{ids: []filtering.ID{3, 4}}
	rec := &recorder{}
	c := NewResolver(rdb, inner, nil, logger.Nop(), rec, "taxonomy", RedisConfig{})

	got, err := c.Resolve(context.Background(), taxonomy.KindBehaviour, filtering.Bag{"topic_ids": {1}})
	require.NoError(t, err)
	assert.Equal(t, []filtering.ID{3, 4}, got)
	assert.Equal(t, int32(1), inner.calls.Load())
	assert.Equal(t, 1, rec.count("error"))

	inner.err = &filtering.LookupError{Registry: "taxonomy", Err: errors.New("down")}
	_, err = c.Resolve(context.Background(), taxonomy.KindBehaviour, filtering.Bag{"topic_ids": {1}})
	assert.True(t, errors.Is(err, filtering.ErrLookupFailed))
}

func redisForTest(t *testing.T) *goredis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis cache tests")
	}
	rdb := goredis.NewClient(&goredis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(context.Background()).Err())
	return rdb
}

func TestResolveCachesAndInvalidates(t *testing.T) {
	rdb := redisForTest(t)
	ctx := context.Background()
	cfg := RedisConfig{Prefix: "abcd:test:" + t.Name() + time.Now().Format("150405.000000"), TTL: time.Minute}

	inner := &countingResolver{ids: []filtering.ID{12, 13}}
	rec := &recorder{}
	c := NewResolver(rdb, inner, nil, logger.Nop(), rec, "taxonomy", cfg)
	bag := filtering.Bag{"topic_ids": {1}, "outcome_ids": {21}}

	for i := 0; i < 3; i++ {
		got, err := c.Resolve(ctx, taxonomy.KindBehaviour, bag)
		require.NoError(t, err)
		assert.Equal(t, []filtering.ID{12, 13}, got)
	}
	assert.Equal(t, int32(1), inner.calls.Load())
	assert.Equal(t, 2, rec.count("hit"))

	inner.ids = []filtering.ID{13}
	require.NoError(t, c.Invalidate(ctx))
	got, err := c.Resolve(ctx, taxonomy.KindBehaviour, bag)
	require.NoError(t, err)
	assert.Equal(t, []filtering.ID{13}, got)
	assert.Equal(t, int32(2), inner.calls.Load())
	assert.Equal(t, int64(1), rec.gen)

	inner.ids = nil
	got, err = c.Resolve(ctx, taxonomy.KindCourse, filtering.Bag{})
	require.NoError(t, err)
	got, err = c.Resolve(ctx, taxonomy.KindCourse, filtering.Bag{})
	require.NoError(t, err)
	assert.NotNil(t, got, "cached empty result must stay an empty list")
}

func TestResolveCollapsesConcurrentMisses(t *testing.T) {
	rdb := redisForTest(t)
	ctx := context.Background()
	cfg := RedisConfig{Prefix: "abcd:test:" + t.Name() + time.Now().Format("150405.000000"), TTL: time.Minute}

	inner := &countingResolver{ids: []filtering.ID{1}, delay: 200 * time.Millisecond}
	c := NewResolver(rdb, inner, nil, logger.Nop(), nil, "taxonomy", cfg)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Resolve(ctx, taxonomy.KindBehaviour, filtering.Bag{"topic_ids": {1}})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), inner.calls.Load())
}

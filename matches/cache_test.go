package matches

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type countingFetcher struct {
	calls  int
	result Result
}

func (f *countingFetcher) Fetch(ctx context.Context) Result {
	f.calls++
	return f.result
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache(fetcher Fetcher, ttl time.Duration, clock *fakeClock, opts ...CacheOption) *Cache {
	opts = append(opts, WithClock(clock.Now))
	return NewCache(fetcher, ttl, zerolog.Nop(), opts...)
}

func TestCacheReturnsStoredWithinTTL(t *testing.T) {
	fetcher := &countingFetcher{result: Result{Matches: []Match{{Team1: "NAVI", Team2: "FaZe"}}, Source: "api"}}
	clock := &fakeClock{t: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
	cache := newTestCache(fetcher, 300*time.Second, clock)

	first := cache.UpcomingMatches(context.Background())
	clock.Advance(299 * time.Second)
	second := cache.UpcomingMatches(context.Background())

	if fetcher.calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", fetcher.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached result differs: %#v vs %#v", first, second)
	}
	if &first[0] != &second[0] {
		t.Fatal("expected the same stored slice to be returned")
	}
}

func TestCacheRefetchesAfterExpiry(t *testing.T) {
	fetcher := &countingFetcher{result: Result{Matches: []Match{{Team1: "NAVI", Team2: "FaZe"}}, Source: "api"}}
	clock := &fakeClock{t: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
	cache := newTestCache(fetcher, 300*time.Second, clock)

	cache.UpcomingMatches(context.Background())
	clock.Advance(300 * time.Second)
	cache.UpcomingMatches(context.Background())

	if fetcher.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", fetcher.calls)
	}
}

func TestCacheStoresFallbackForFullTTL(t *testing.T) {
	fetcher := &countingFetcher{result: Result{Matches: sampleFallback(), Source: FallbackSource, Fallback: true}}
	clock := &fakeClock{t: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
	cache := newTestCache(fetcher, 5*time.Minute, clock)

	cache.UpcomingMatches(context.Background())
	clock.Advance(4 * time.Minute)
	got := cache.UpcomingMatches(context.Background())

	if fetcher.calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", fetcher.calls)
	}
	if len(got) != len(sampleFallback()) {
		t.Fatalf("len = %d", len(got))
	}
}

func TestCacheFallbackTTL(t *testing.T) {
	fetcher := &countingFetcher{result: Result{Matches: sampleFallback(), Source: FallbackSource, Fallback: true}}
	clock := &fakeClock{t: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
	cache := newTestCache(fetcher, 5*time.Minute, clock, WithFallbackTTL(30*time.Second))

	cache.UpcomingMatches(context.Background())
	clock.Advance(31 * time.Second)
	cache.UpcomingMatches(context.Background())

	if fetcher.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", fetcher.calls)
	}
}

func TestCacheZeroTTLAlwaysFetches(t *testing.T) {
	fetcher := &countingFetcher{result: Result{Matches: []Match{{Team1: "A", Team2: "B"}}}}
	clock := &fakeClock{t: time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)}
	cache := newTestCache(fetcher, 0, clock)

	cache.UpcomingMatches(context.Background())
	cache.UpcomingMatches(context.Background())

	if fetcher.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", fetcher.calls)
	}
}

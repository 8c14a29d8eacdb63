package perch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// cachedAnalysis stands in for the rulegraph.Node payload that
// analyzer.AnalysisCache actually stores — enough shape to exercise
// Perch's zero-value/equality handling without pulling rulegraph into
// this package's test dependencies.
type cachedAnalysis struct {
	ruleKind string
	folded   bool
}

// AnalysisCacheStoreSuite exercises Perch the way
// analyzer.NewAnalysisCache uses it: keyed by a callable-identity
// string, one TTL for the life of an export run, values that are
// plain structs rather than primitives.
type AnalysisCacheStoreSuite struct {
	suite.Suite
	store *Perch[cachedAnalysis]
	ctx   context.Context
}

func TestAnalysisCacheStoreSuite(t *testing.T) {
	suite.Run(t, new(AnalysisCacheStoreSuite))
}

func (s *AnalysisCacheStoreSuite) SetupSuite() {
	s.ctx = context.Background()
}

func (s *AnalysisCacheStoreSuite) BeforeTest(suiteName, testName string) {
	s.store = New[cachedAnalysis](10)
}

func (s *AnalysisCacheStoreSuite) TestNewRejectsNonPositiveCapacity() {
	store := New[cachedAnalysis](5)
	s.NotNil(store)
	s.Equal(5, store.cap)
	s.Equal(6, len(store.slots)) // 1-based addressing: capacity+1

	s.Panics(func() { New[cachedAnalysis](0) })
	s.Panics(func() { New[cachedAnalysis](-1) })
}

func (s *AnalysisCacheStoreSuite) TestGetLoadsThenHitsCache() {
	key := "rule:has_sword|overworld"
	want := cachedAnalysis{ruleKind: "item_check", folded: true}
	calls := 0
	load := func(ctx context.Context, k string) (cachedAnalysis, error) {
		calls++
		s.Equal(key, k)
		return want, nil
	}

	got, err := s.store.Get(s.ctx, key, time.Minute, load)
	s.NoError(err)
	s.Equal(want, got)

	got, err = s.store.Get(s.ctx, key, time.Minute, load)
	s.NoError(err)
	s.Equal(want, got)
	s.Equal(1, calls, "second Get should hit cache, not reload")
}

func (s *AnalysisCacheStoreSuite) TestZeroTTLNeverCaches() {
	key := "rule:context_sensitive_shop|loc_a"
	calls := 0
	load := func(ctx context.Context, k string) (cachedAnalysis, error) {
		calls++
		return cachedAnalysis{ruleKind: "helper"}, nil
	}

	for i := 0; i < 3; i++ {
		_, err := s.store.Get(s.ctx, key, 0, load)
		s.NoError(err)
	}
	s.Equal(3, calls, "ttl<=0 means do not cache")
}

func (s *AnalysisCacheStoreSuite) TestEntryExpiresAfterTTL() {
	key := "rule:can_reach|entrance_1"
	short := 10 * time.Millisecond
	calls := 0
	load := func(ctx context.Context, k string) (cachedAnalysis, error) {
		calls++
		return cachedAnalysis{ruleKind: "region_check"}, nil
	}

	_, err := s.store.Get(s.ctx, key, short, load)
	s.NoError(err)
	time.Sleep(short + 5*time.Millisecond)
	_, err = s.store.Get(s.ctx, key, short, load)
	s.NoError(err)
	s.Equal(2, calls, "stale entry should reload past its expiry")
}

func (s *AnalysisCacheStoreSuite) TestDeleteForcesReload() {
	key := "rule:group_check|loc_b"
	load := func(ctx context.Context, k string) (cachedAnalysis, error) {
		return cachedAnalysis{ruleKind: "group_check"}, nil
	}

	_, err := s.store.Get(s.ctx, key, time.Minute, load)
	s.NoError(err)
	s.store.Delete(key)

	calls := 0
	_, err = s.store.Get(s.ctx, key, time.Minute, func(ctx context.Context, k string) (cachedAnalysis, error) {
		calls++
		return cachedAnalysis{ruleKind: "group_check"}, nil
	})
	s.NoError(err)
	s.Equal(1, calls, "delete should evict so the next Get reloads")
}

func (s *AnalysisCacheStoreSuite) TestPeekDoesNotLoad() {
	key := "rule:any_of|loc_c"
	_, found := s.store.Peek(key)
	s.False(found)

	want := cachedAnalysis{ruleKind: "all_of", folded: true}
	_, err := s.store.Get(s.ctx, key, time.Minute, func(ctx context.Context, k string) (cachedAnalysis, error) {
		return want, nil
	})
	s.NoError(err)

	got, found := s.store.Peek(key)
	s.True(found)
	s.Equal(want, got)
}

func (s *AnalysisCacheStoreSuite) TestCapacityOverflowEvictsLeastRecentlyUsed() {
	small := New[cachedAnalysis](2)
	load := func(kind string) Loader[cachedAnalysis] {
		return func(ctx context.Context, k string) (cachedAnalysis, error) {
			return cachedAnalysis{ruleKind: kind}, nil
		}
	}

	_, err := small.Get(s.ctx, "a", time.Minute, load("a"))
	s.NoError(err)
	_, err = small.Get(s.ctx, "b", time.Minute, load("b"))
	s.NoError(err)
	_, err = small.Get(s.ctx, "c", time.Minute, load("c"))
	s.NoError(err)

	_, found := small.Peek("a")
	s.False(found, "a is the least recently used entry once c is inserted")
	_, found = small.Peek("b")
	s.True(found)
	_, found = small.Peek("c")
	s.True(found)
}

func (s *AnalysisCacheStoreSuite) TestAccessingAnEntryKeepsItAlive() {
	small := New[cachedAnalysis](2)
	load := func(kind string) Loader[cachedAnalysis] {
		return func(ctx context.Context, k string) (cachedAnalysis, error) {
			return cachedAnalysis{ruleKind: kind}, nil
		}
	}

	_, err := small.Get(s.ctx, "a", time.Minute, load("a"))
	s.NoError(err)
	_, err = small.Get(s.ctx, "b", time.Minute, load("b"))
	s.NoError(err)
	// Touch "a" so "b" becomes the LRU victim instead.
	_, err = small.Get(s.ctx, "a", time.Minute, load("a"))
	s.NoError(err)
	_, err = small.Get(s.ctx, "c", time.Minute, load("c"))
	s.NoError(err)

	_, found := small.Peek("b")
	s.False(found, "b should be evicted since a was touched more recently")
	_, found = small.Peek("a")
	s.True(found)
}

func (s *AnalysisCacheStoreSuite) TestLoaderErrorIsNeverCached() {
	key := "rule:unresolvable|loc_d"
	boom := errors.New("analysis failed")
	calls := 0
	load := func(ctx context.Context, k string) (cachedAnalysis, error) {
		calls++
		return cachedAnalysis{}, boom
	}

	for i := 0; i < 3; i++ {
		_, err := s.store.Get(s.ctx, key, time.Minute, load)
		s.ErrorIs(err, boom)
	}
	s.Equal(3, calls, "a failed analysis must never be served from cache")
}

func (s *AnalysisCacheStoreSuite) TestLoaderPanicIsConvertedToError() {
	key := "rule:panicking_helper|loc_e"
	_, err := s.store.Get(s.ctx, key, time.Minute, func(ctx context.Context, k string) (cachedAnalysis, error) {
		panic("helper evaluation blew up")
	})
	s.Error(err)
	s.Contains(err.Error(), "helper evaluation blew up")
}

func (s *AnalysisCacheStoreSuite) TestDistinctKeysDoNotCollide() {
	load := func(kind string) Loader[cachedAnalysis] {
		return func(ctx context.Context, k string) (cachedAnalysis, error) {
			return cachedAnalysis{ruleKind: kind}, nil
		}
	}

	got1, err := s.store.Get(s.ctx, "rule:a|loc", time.Minute, load("a"))
	s.NoError(err)
	got2, err := s.store.Get(s.ctx, "rule:b|loc", time.Minute, load("b"))
	s.NoError(err)

	s.Equal("a", got1.ruleKind)
	s.Equal("b", got2.ruleKind)
}

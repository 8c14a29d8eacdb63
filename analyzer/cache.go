// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analyzer

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/worldrules/ruleexport/perch"
	"github.com/worldrules/ruleexport/predicate"
	"github.com/worldrules/ruleexport/rulegraph"
)

// cacheForever is the TTL handed to perch for every entry. One
// AnalysisCache is scoped to a single export run (§3.4) and dropped
// afterward, so entries never need to expire on their own — a run
// that somehow outlived this would be a bug elsewhere, not something
// worth a real eviction policy.
const cacheForever = 365 * 24 * time.Hour

// Identity lets a Callable supply its own stable cache key. A Callable
// without one is keyed by its address when it is a pointer, and by a
// structural hash of its exported fields otherwise.
type Identity interface {
	CacheIdentity() string
}

// AnalysisCache memoizes Analyze results by (callable identity,
// location context) per §3.4 and §4.3's caching rule. Context-sensitive
// rewrites bypass it by giving the callable a fresh identity per call
// site (§4.3 shop-uniqueness caveat, §8 scenario 6) rather than by any
// special-casing here.
type AnalysisCache struct {
	store *perch.Perch[rulegraph.Node]
}

// NewAnalysisCache builds a cache bounded to capacity entries — large
// enough to hold every distinct (callable, context) pair touched by one
// export without growing unbounded on a pathological world.
func NewAnalysisCache(capacity int) *AnalysisCache {
	return &AnalysisCache{store: perch.New[rulegraph.Node](capacity)}
}

// Get returns the cached node for (c, locationContext), computing and
// storing it via load on a miss. A nil node is a valid, cacheable
// result — it means analysis legitimately produced no rule.
func (a *AnalysisCache) Get(ctx context.Context, c predicate.Callable, locationContext string, load func(context.Context, string) (rulegraph.Node, error)) (rulegraph.Node, error) {
	key := cacheKey(c, locationContext)
	return a.store.Get(ctx, key, cacheForever, load)
}

func cacheKey(c predicate.Callable, locationContext string) string {
	if id, ok := c.(Identity); ok {
		return id.CacheIdentity() + "|" + locationContext
	}
	// Pointer callables are keyed by object identity: a structural hash
	// skips unexported fields, so distinct objects would share a key.
	if reflect.ValueOf(c).Kind() == reflect.Ptr {
		return fmt.Sprintf("%p|%s", c, locationContext)
	}
	sum, err := hashstructure.Hash(c, hashstructure.FormatV2, nil)
	if err != nil {
		// No stable identity and no structural hash either — key by
		// name, so such callables that share a name and context also
		// share one cache entry.
		return fmt.Sprintf("unhashable:%s:%s", c.Name(), locationContext)
	}
	return fmt.Sprintf("%x|%s", sum, locationContext)
}

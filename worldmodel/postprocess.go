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

package worldmodel

import (
	"github.com/google/uuid"

	"github.com/worldrules/ruleexport/predicate"
)

// uniqueIdentityCallable wraps a Callable with a synthesized identity
// so the analysis cache (keyed by callable identity, §3.4) treats
// every wrapped call as distinct even when the wrapped predicate is
// structurally identical to a sibling's — the shop-uniqueness caveat
// in §4.3/§8 scenario 6, where two shop slots sharing one lambda body
// must still analyze to different rule trees because each excludes
// its own siblings from the result.
type uniqueIdentityCallable struct {
	predicate.Callable
	identity string
}

// CacheIdentity satisfies analyzer.Identity; see AnalysisCache.
func (u *uniqueIdentityCallable) CacheIdentity() string { return u.identity }

// WithUniqueIdentity returns c wrapped with a freshly synthesized
// identity, forcing the analyzer to treat this call site as a cache
// miss regardless of what c structurally hashes to. A nil c returns
// nil — there is nothing to make unique.
func WithUniqueIdentity(c predicate.Callable) predicate.Callable {
	if c == nil {
		return nil
	}
	return &uniqueIdentityCallable{Callable: c, identity: uuid.NewString()}
}

// SynthesizeShopIdentities rewrites every location in region whose
// AccessRule or ItemRule is non-nil to carry a fresh unique identity,
// the postprocess_regions step §4.3 describes for shop-like regions
// where sibling locations would otherwise share one cached rule tree.
// Locations with a nil rule are left untouched — there is nothing
// context-sensitive to rewrite.
func SynthesizeShopIdentities(region *Region) {
	for _, loc := range region.Locations {
		if loc.AccessRule != nil {
			loc.AccessRule = WithUniqueIdentity(loc.AccessRule)
		}
		if loc.ItemRule != nil {
			loc.ItemRule = WithUniqueIdentity(loc.ItemRule)
		}
	}
}

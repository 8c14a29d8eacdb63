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

package predicate

import (
	"github.com/worldrules/ruleexport/rulegraph"
	"github.com/worldrules/ruleexport/tokens"
	"github.com/worldrules/ruleexport/xerr"
)

// Received serializes to item_check{item, count}.
type Received struct {
	ItemName string
	Count    int
}

func (Received) customPredicate()  {}
func (r Received) Name() string    { return "Received(" + r.ItemName + ")" }

// And serializes to and{conditions: [...]}.
type And struct{ Rules []Callable }

func (And) customPredicate() {}
func (And) Name() string     { return "And(...)" }

// Or serializes to or{conditions: [...]}.
type Or struct{ Rules []Callable }

func (Or) customPredicate() {}
func (Or) Name() string     { return "Or(...)" }

// True_ serializes to constant{true}.
type True_ struct{}

func (True_) customPredicate() {}
func (True_) Name() string     { return "True_" }

// False_ serializes to constant{false}.
type False_ struct{}

func (False_) customPredicate() {}
func (False_) Name() string     { return "False_" }

// Has serializes to its inner rule's serialization, unwrapped.
type Has struct{ Rule Callable }

func (Has) customPredicate() {}
func (Has) Name() string     { return "Has(...)" }

// Count is an n-of-m: when N==1 it is equivalent to Or, when
// N==len(Rules) to And; otherwise it preserves as a "count_true"
// helper so the frontend can evaluate the threshold at runtime.
type Count struct {
	N     int
	Rules []Callable
}

func (Count) customPredicate() {}
func (Count) Name() string     { return "Count(...)" }

// ReachKind discriminates what a Reach predicate checks.
type ReachKind string

const (
	ReachRegion   ReachKind = "region"
	ReachLocation ReachKind = "location"
	ReachEntrance ReachKind = "entrance"
)

// Reach serializes to region_check/location_check/can_reach_entrance
// by Kind.
type Reach struct {
	Target string
	Kind   ReachKind
}

func (Reach) customPredicate() {}
func (r Reach) Name() string   { return "Reach(" + r.Target + ")" }

// TotalReceived serializes to a "total_received" helper, since summing
// item counts across a set at runtime is not one of the specialized
// node kinds.
type TotalReceived struct {
	Count int
	Items []string
}

func (TotalReceived) customPredicate() {}
func (TotalReceived) Name() string     { return "TotalReceived(...)" }

// SerializeCustomPredicate implements §4.6's table. analyze recurses
// into any nested Callable that is not itself a CustomPredicate (e.g.
// a lambda passed to And/Or/Has/Count).
func SerializeCustomPredicate(p CustomPredicate, analyze Analyze) (rulegraph.Node, error) {
	switch v := p.(type) {
	case Received:
		return rulegraph.NewItemCheck(v.ItemName, v.Count), nil

	case And:
		conditions, err := serializeAll(v.Rules, analyze)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewAnd(conditions), nil

	case Or:
		conditions, err := serializeAll(v.Rules, analyze)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewOr(conditions), nil

	case True_:
		return rulegraph.NewConstant(true), nil

	case False_:
		return rulegraph.NewConstant(false), nil

	case Has:
		return serializeOne(v.Rule, analyze)

	case Count:
		conditions, err := serializeAll(v.Rules, analyze)
		if err != nil {
			return nil, err
		}
		switch {
		case v.N == 1:
			return rulegraph.NewOr(conditions), nil
		case v.N == len(v.Rules):
			return rulegraph.NewAnd(conditions), nil
		default:
			return rulegraph.NewHelper("count_true", []rulegraph.Node{
				rulegraph.NewConstant(v.N),
				rulegraph.NewHelper("__list__", conditions),
			}), nil
		}

	case Reach:
		switch v.Kind {
		case ReachRegion:
			return rulegraph.NewRegionCheck(v.Target), nil
		case ReachLocation:
			return rulegraph.NewLocationCheck(v.Target), nil
		case ReachEntrance:
			return rulegraph.NewCanReachEntrance(v.Target), nil
		default:
			return nil, xerr.ErrSchemaViolation("kind", "Reach predicate has unrecognized kind "+string(v.Kind))
		}

	case TotalReceived:
		items := make([]rulegraph.Node, len(v.Items))
		for i, name := range v.Items {
			items[i] = rulegraph.NewConstant(name)
		}
		return rulegraph.NewHelper("total_received", []rulegraph.Node{
			rulegraph.NewConstant(v.Count),
			rulegraph.NewHelper("__list__", items),
		}), nil

	default:
		return nil, xerr.ErrUnknownShape("custom predicate "+p.Name(), tokens.Range{})
	}
}

func serializeOne(c Callable, analyze Analyze) (rulegraph.Node, error) {
	if custom, ok := c.(CustomPredicate); ok {
		return SerializeCustomPredicate(custom, analyze)
	}
	return analyze(c)
}

func serializeAll(rules []Callable, analyze Analyze) ([]rulegraph.Node, error) {
	out := make([]rulegraph.Node, len(rules))
	for i, r := range rules {
		node, err := serializeOne(r, analyze)
		if err != nil {
			return nil, err
		}
		out[i] = node
	}
	return out, nil
}


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

// Package resolver implements the pure constant-folding pass (§4.2):
// attribute access, subscripts, and named-tuple unpacking fold to
// rulegraph.ConstantNode wherever their bases are already resolvable,
// recursively, leaving anything genuinely dynamic untouched for the
// analyzer's name/attribute/subscript nodes to carry through.
package resolver

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/worldrules/ruleexport/rulegraph"
	"github.com/worldrules/ruleexport/tokens"
	"github.com/worldrules/ruleexport/trinary"
	"github.com/worldrules/ruleexport/xerr"
)

// EnumValue is implemented by Go stand-ins for host-language enum
// members; the resolver folds such a value to whatever EnumValue
// returns, matching §4.2's "enum keys must match by their .value".
type EnumValue interface {
	EnumValue() any
}

// Coded is implemented by heavy runtime-ish objects (regions,
// locations) that have a documented serializable identity — §4.3's
// example is a region object's `.code`.
type Coded interface {
	Code() string
}

// Resolver folds rule-graph fragments against a captured environment.
type Resolver struct{}

func New() *Resolver { return &Resolver{} }

// Resolve performs one pass over node, recursively folding children
// first (post-order) so that chains like a.b[0] resolve inside out.
func (r *Resolver) Resolve(node rulegraph.Node, env map[string]any) (rulegraph.Node, error) {
	if node == nil {
		return nil, nil
	}

	switch n := node.(type) {
	case *rulegraph.NameNode:
		if v, ok := env[n.Name]; ok {
			val, err := toConstantValue(v)
			if err != nil {
				// No documented serializable identity — leave the name
				// unresolved rather than silently folding to a repr.
				return node, nil
			}
			return rulegraph.NewConstant(val), nil
		}
		return node, nil

	case *rulegraph.AttributeNode:
		// Read the attribute off the raw env value first: folding the
		// base name turns a struct into a positional list, which no
		// longer has named fields to look up.
		if name, ok := n.Object.(*rulegraph.NameNode); ok {
			if base, ok := env[name.Name]; ok {
				if val, found := resolveFieldOrKey(base, n.Attr); found {
					if folded, err := toConstantValue(val); err == nil {
						return rulegraph.NewConstant(folded), nil
					}
				}
			}
		}
		object, err := r.Resolve(n.Object, env)
		if err != nil {
			return nil, err
		}
		if constant, ok := object.(*rulegraph.ConstantNode); ok {
			if val, found := resolveFieldOrKey(constant.Value, n.Attr); found {
				folded, err := toConstantValue(val)
				if err == nil {
					return rulegraph.NewConstant(folded), nil
				}
			}
		}
		return rulegraph.NewAttribute(object, n.Attr), nil

	case *rulegraph.SubscriptNode:
		value, err := r.Resolve(n.Value, env)
		if err != nil {
			return nil, err
		}
		index, err := r.Resolve(n.Index, env)
		if err != nil {
			return nil, err
		}
		valueConst, vok := value.(*rulegraph.ConstantNode)
		indexConst, iok := index.(*rulegraph.ConstantNode)
		if vok && iok {
			if val, found := resolveSubscript(valueConst.Value, indexConst.Value); found {
				folded, err := toConstantValue(val)
				if err == nil {
					return rulegraph.NewConstant(folded), nil
				}
			}
		}
		return rulegraph.NewSubscript(value, index), nil

	case *rulegraph.AndNode:
		conditions, err := r.resolveAll(n.Conditions, env)
		if err != nil {
			return nil, err
		}
		return foldAnd(conditions), nil

	case *rulegraph.OrNode:
		conditions, err := r.resolveAll(n.Conditions, env)
		if err != nil {
			return nil, err
		}
		return foldOr(conditions), nil

	case *rulegraph.NotNode:
		condition, err := r.Resolve(n.Condition, env)
		if err != nil {
			return nil, err
		}
		if constant, ok := condition.(*rulegraph.ConstantNode); ok {
			if b, isBool := constant.Value.(bool); isBool {
				return rulegraph.NewConstant(trinary.From(b).Not().IsTrue()), nil
			}
		}
		return rulegraph.NewNot(condition), nil

	case *rulegraph.CompareNode:
		left, err := r.Resolve(n.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := r.Resolve(n.Right, env)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewCompare(left, n.Op, right), nil

	case *rulegraph.BinaryOpNode:
		left, err := r.Resolve(n.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := r.Resolve(n.Right, env)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewBinaryOp(left, n.Op, right), nil

	case *rulegraph.UnaryOpNode:
		operand, err := r.Resolve(n.Operand, env)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewUnaryOp(n.Op, operand), nil

	case *rulegraph.ConditionalNode:
		test, err := r.Resolve(n.Test, env)
		if err != nil {
			return nil, err
		}
		ifTrue, err := r.Resolve(n.IfTrue, env)
		if err != nil {
			return nil, err
		}
		ifFalse, err := r.Resolve(n.IfFalse, env)
		if err != nil {
			return nil, err
		}
		// Simplify aggressively when the test already folded to a
		// known constant truthy/falsy value (§4.3).
		if constant, ok := test.(*rulegraph.ConstantNode); ok {
			if b, isBool := constant.Value.(bool); isBool {
				if trinary.From(b).IsTrue() {
					return ifTrue, nil
				}
				return ifFalse, nil
			}
		}
		return rulegraph.NewConditional(test, ifTrue, ifFalse), nil

	case *rulegraph.HelperNode:
		args, err := r.resolveAll(n.Args, env)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewHelper(n.Name, args), nil

	case *rulegraph.StateMethodNode:
		args, err := r.resolveAll(n.Args, env)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewStateMethod(n.Method, args), nil

	case *rulegraph.AllOfNode:
		element, err := r.Resolve(n.ElementRule, env)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewAllOf(element, n.IteratorInfo), nil

	case *rulegraph.AnyOfNode:
		element, err := r.Resolve(n.ElementRule, env)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewAnyOf(element, n.IteratorInfo), nil

	default:
		// constant, item_check, group_check, location_check,
		// region_check, can_reach_entrance have no nested nodes to fold.
		return node, nil
	}
}

// foldAnd reduces a resolved AND's conditions with Kleene logic
// (trinary.Value.And): a constant-false child short-circuits the
// whole node to false regardless of what the other children are,
// constant-true children are the AND identity and get dropped, and a
// node that folds away entirely collapses to whatever boolean the
// accumulated Kleene value settled on.
func foldAnd(conditions []rulegraph.Node) rulegraph.Node {
	kept := make([]rulegraph.Node, 0, len(conditions))
	acc := trinary.True
	for _, c := range conditions {
		b, isBool := constBool(c)
		if !isBool {
			kept = append(kept, c)
			continue
		}
		acc = acc.And(trinary.From(b))
		if acc == trinary.False {
			return rulegraph.NewConstant(false)
		}
	}
	if len(kept) == 0 {
		return rulegraph.NewConstant(acc.IsTrue())
	}
	return rulegraph.NewAnd(kept)
}

// foldOr is foldAnd's dual: a constant-true child short-circuits to
// true (True ∨ x = True even when x is still unresolved), and
// constant-false children are the OR identity and get dropped.
func foldOr(conditions []rulegraph.Node) rulegraph.Node {
	kept := make([]rulegraph.Node, 0, len(conditions))
	acc := trinary.False
	for _, c := range conditions {
		b, isBool := constBool(c)
		if !isBool {
			kept = append(kept, c)
			continue
		}
		acc = acc.Or(trinary.From(b))
		if acc == trinary.True {
			return rulegraph.NewConstant(true)
		}
	}
	if len(kept) == 0 {
		return rulegraph.NewConstant(acc.IsTrue())
	}
	return rulegraph.NewOr(kept)
}

func constBool(node rulegraph.Node) (bool, bool) {
	constant, ok := node.(*rulegraph.ConstantNode)
	if !ok {
		return false, false
	}
	b, isBool := constant.Value.(bool)
	return b, isBool
}

func (r *Resolver) resolveAll(nodes []rulegraph.Node, env map[string]any) ([]rulegraph.Node, error) {
	out := make([]rulegraph.Node, len(nodes))
	for i, n := range nodes {
		resolved, err := r.Resolve(n, env)
		if err != nil {
			return nil, err
		}
		out[i] = resolved
	}
	return out, nil
}

func resolveFieldOrKey(base any, attr string) (any, bool) {
	if m, ok := base.(map[string]any); ok {
		v, ok := m[attr]
		return v, ok
	}

	rv := reflect.ValueOf(base)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	field := rv.FieldByNameFunc(func(name string) bool { return strings.EqualFold(name, attr) })
	if !field.IsValid() {
		return nil, false
	}
	return field.Interface(), true
}

func resolveSubscript(base, index any) (any, bool) {
	key := indexKey(index)

	switch b := base.(type) {
	case map[string]any:
		v, ok := b[key]
		return v, ok
	case []any:
		i, ok := index.(int)
		if !ok {
			if f, ok := index.(float64); ok {
				i = int(f)
			} else {
				return nil, false
			}
		}
		if i < 0 || i >= len(b) {
			return nil, false
		}
		return b[i], true
	}
	return nil, false
}

// indexKey folds an enum-typed index to its .value so dictionary
// subscripts keyed by enum match the way §4.2 requires.
func indexKey(index any) string {
	if ev, ok := index.(EnumValue); ok {
		return fmt.Sprintf("%v", ev.EnumValue())
	}
	return fmt.Sprintf("%v", index)
}

// ToConstantValue exposes the same normalization the resolver uses
// internally, for callers (the analyzer's Name handling, and its
// filter/map/distinct/reduce evaluation) that need to fold a captured
// environment value to a constant outside of a full node Resolve pass.
func ToConstantValue(v any) (any, error) { return toConstantValue(v) }

// toConstantValue normalizes a captured environment value into
// something JSON-serializable as a rulegraph constant. Named tuples
// (plain structs) serialize positionally by declared field order.
// Lists of heavy objects serialize element-wise via Coded. Anything
// with no documented serializable identity fails loudly rather than
// silently falling back to a textual repr (§4.3 caveat).
func toConstantValue(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool, string, int, int64, float64, float32:
		return t, nil
	case EnumValue:
		return t.EnumValue(), nil
	case Coded:
		return t.Code(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			val, err := toConstantValue(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return out, nil

	case reflect.Struct:
		out := make([]any, rv.NumField())
		for i := 0; i < rv.NumField(); i++ {
			val, err := toConstantValue(rv.Field(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return out, nil

	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := indexKey(iter.Key().Interface())
			val, err := toConstantValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[key] = val
		}
		return out, nil

	case reflect.Ptr:
		if rv.IsNil() {
			return nil, nil
		}
		return toConstantValue(rv.Elem().Interface())
	}

	return nil, xerr.ErrResolution(fmt.Sprintf("%v", v), tokens.Range{})
}

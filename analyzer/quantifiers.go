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

	"github.com/worldrules/ruleexport/ast"
	"github.com/worldrules/ruleexport/handler"
	"github.com/worldrules/ruleexport/resolver"
	"github.com/worldrules/ruleexport/rulegraph"
	"github.com/worldrules/ruleexport/worldmodel"
	"github.com/worldrules/ruleexport/xerr"
)

// translateQuantifier handles any/all/filter/map/distinct (§4.3
// Comprehensions). any/all produce boolean rule trees — an n-ary
// or/and when the collection resolves to a concrete sequence at
// analysis time, else the all_of/any_of shape the schema names for the
// unresolved case. filter/map/distinct are pure data transforms with no
// boolean-rule equivalent in the schema, so they require a resolvable
// collection and evaluate eagerly to a constant.
func (a *Analyzer) translateQuantifier(ctx context.Context, q *ast.Quantifier, env map[string]any, world *worldmodel.World, h handler.GameHandler, locationContext string) (rulegraph.Node, error) {
	collectionNode, err := a.translateExpr(ctx, q.Collection, env, world, h, locationContext)
	if err != nil {
		return nil, err
	}
	elements, resolved := asConstantList(collectionNode)

	switch q.Kind() {
	case "any", "all":
		if resolved {
			conditions := make([]rulegraph.Node, len(elements))
			for i, el := range elements {
				elemEnv := withIterationBindings(env, q.ValueIterator, q.IndexIterator, el, i)
				node, err := a.translateExpr(ctx, q.Body, elemEnv, world, h, locationContext)
				if err != nil {
					return nil, err
				}
				conditions[i] = node
			}
			if q.Kind() == "any" {
				return rulegraph.NewOr(conditions), nil
			}
			return rulegraph.NewAnd(conditions), nil
		}

		elemEnv := withIterationBindings(env, q.ValueIterator, q.IndexIterator, nil, -1)
		element, err := a.translateExpr(ctx, q.Body, elemEnv, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		iter := &rulegraph.IteratorInfo{Source: collectionNode, TargetVar: q.ValueIterator}
		if q.Kind() == "any" {
			return rulegraph.NewAnyOf(element, iter), nil
		}
		return rulegraph.NewAllOf(element, iter), nil

	case "filter":
		if !resolved {
			return nil, xerr.ErrUnknownShape("filter over unresolved collection", q.Span())
		}
		out := make([]any, 0, len(elements))
		for i, el := range elements {
			elemEnv := withIterationBindings(env, q.ValueIterator, q.IndexIterator, el, i)
			keep, err := a.evalToConstant(ctx, q.Body, elemEnv, world, h, locationContext)
			if err != nil {
				return nil, err
			}
			if isTruthy(keep) {
				out = append(out, el)
			}
		}
		return rulegraph.NewConstant(out), nil

	case "map":
		if !resolved {
			return nil, xerr.ErrUnknownShape("map over unresolved collection", q.Span())
		}
		out := make([]any, len(elements))
		for i, el := range elements {
			elemEnv := withIterationBindings(env, q.ValueIterator, q.IndexIterator, el, i)
			val, err := a.evalToConstant(ctx, q.Body, elemEnv, world, h, locationContext)
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return rulegraph.NewConstant(out), nil

	case "distinct":
		if !resolved {
			return nil, xerr.ErrUnknownShape("distinct over unresolved collection", q.Span())
		}
		seen := map[any]bool{}
		out := make([]any, 0, len(elements))
		for i, el := range elements {
			elemEnv := withIterationBindings(env, q.ValueIterator, q.IndexIterator, el, i)
			key, err := a.evalToConstant(ctx, q.Body, elemEnv, world, h, locationContext)
			if err != nil {
				return nil, err
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, el)
		}
		return rulegraph.NewConstant(out), nil

	default:
		return nil, xerr.ErrUnknownShape("quantifier "+q.Kind(), q.Span())
	}
}

func (a *Analyzer) translateReduce(ctx context.Context, r *ast.ReduceExpression, env map[string]any, world *worldmodel.World, h handler.GameHandler, locationContext string) (rulegraph.Node, error) {
	collectionNode, err := a.translateExpr(ctx, r.Collection, env, world, h, locationContext)
	if err != nil {
		return nil, err
	}
	elements, resolved := asConstantList(collectionNode)
	if !resolved {
		return nil, xerr.ErrUnknownShape("reduce over unresolved collection", r.Span())
	}

	seed, err := a.evalToConstant(ctx, r.Seed, env, world, h, locationContext)
	if err != nil {
		return nil, err
	}

	acc := seed
	for i, el := range elements {
		elemEnv := withIterationBindings(env, r.ValueIterator, r.IndexIterator, el, i)
		elemEnv = withBinding(elemEnv, r.Accumulator, acc)
		next, err := a.evalToConstant(ctx, r.Body, elemEnv, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return rulegraph.NewConstant(acc), nil
}

// evalToConstant translates body against an environment where every
// free variable is already bound to a concrete value, then forces
// resolution — used by filter/map/distinct/reduce, which operate on
// data rather than producing a boolean rule tree.
func (a *Analyzer) evalToConstant(ctx context.Context, body ast.Expression, env map[string]any, world *worldmodel.World, h handler.GameHandler, locationContext string) (any, error) {
	node, err := a.translateExpr(ctx, body, env, world, h, locationContext)
	if err != nil {
		return nil, err
	}
	resolved, err := resolver.New().Resolve(node, env)
	if err != nil {
		return nil, err
	}
	constant, ok := resolved.(*rulegraph.ConstantNode)
	if !ok {
		return nil, xerr.ErrUnknownShape("comprehension body did not resolve to a constant", body.Span())
	}
	return constant.Value, nil
}

func withIterationBindings(env map[string]any, valueVar, indexVar string, value any, index int) map[string]any {
	out := withBinding(env, valueVar, value)
	if indexVar != "" && index >= 0 {
		out = withBinding(out, indexVar, index)
	}
	return out
}

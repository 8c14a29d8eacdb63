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

// Package analyzer turns a predicate's extracted AST into a rule-graph
// node, consulting the active game handler at the points §4.4
// documents. It never evaluates the predicate — only recognizes the
// syntactic shapes the schema has a node for and falls back to an
// unresolved name/unknown-shape result otherwise.
package analyzer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/worldrules/ruleexport/ast"
	"github.com/worldrules/ruleexport/handler"
	"github.com/worldrules/ruleexport/predicate"
	"github.com/worldrules/ruleexport/rulegraph"
	"github.com/worldrules/ruleexport/worldmodel"
	"github.com/worldrules/ruleexport/xerr"
)

// Analyzer is the AST → rule graph translator (§4.3). It holds no
// per-world state of its own — every call takes the world and location
// context it needs — so one Analyzer can serve every world in a run,
// sharing only the cache and tracer.
type Analyzer struct {
	handlers       *handler.Registry
	cache          *AnalysisCache
	tracer         oteltrace.Tracer
	traceExecution bool
}

// New builds an Analyzer. tracer may be nil; traceExecution gates
// whether spans are created even when a tracer is present, mirroring
// the RULEEXPORT_OTEL_TRACE_EXECUTION switch.
func New(handlers *handler.Registry, cache *AnalysisCache, tracer oteltrace.Tracer, traceExecution bool) *Analyzer {
	return &Analyzer{handlers: handlers, cache: cache, tracer: tracer, traceExecution: traceExecution}
}

// Analyze is the entry point the exporter (and, via a bound closure,
// the source extractor's custom-predicate serializers) calls for every
// predicate. locationContext disambiguates cache entries for rules
// whose meaning depends on where they are attached (shop uniqueness,
// §4.3).
func (a *Analyzer) Analyze(ctx context.Context, world *worldmodel.World, c predicate.Callable, locationContext string) (rulegraph.Node, error) {
	var span oteltrace.Span
	if a.traceExecution && a.tracer != nil {
		ctx, span = a.tracer.Start(ctx, "analyze_rule")
		defer span.End()
		span.SetAttributes(
			attribute.String("ruleexport.predicate.name", c.Name()),
			attribute.String("ruleexport.location_context", locationContext),
		)
	}

	if a.cache == nil {
		return a.analyzeUncached(ctx, world, c, locationContext)
	}
	return a.cache.Get(ctx, c, locationContext, func(ctx context.Context, _ string) (rulegraph.Node, error) {
		return a.analyzeUncached(ctx, world, c, locationContext)
	})
}

func (a *Analyzer) analyzeUncached(ctx context.Context, world *worldmodel.World, c predicate.Callable, locationContext string) (rulegraph.Node, error) {
	h := a.handlers.For(world.Game)

	extractor := predicate.NewSourceExtractor(a.bindAnalyze(ctx, world, locationContext))
	src, serialized, err := extractor.Extract(c)
	if err != nil {
		return nil, err
	}
	if serialized != nil {
		return serialized, nil
	}

	return a.translateExpr(ctx, ast.Unwrap(src.Expr), src.Env, world, h, locationContext)
}

// bindAnalyze closes over the current world/location so custom
// predicate serializers (And/Or/Has/Count wrapping a lambda) can
// recurse back into Analyze without predicate importing analyzer.
func (a *Analyzer) bindAnalyze(ctx context.Context, world *worldmodel.World, locationContext string) predicate.Analyze {
	return func(c predicate.Callable) (rulegraph.Node, error) {
		return a.Analyze(ctx, world, c, locationContext)
	}
}

// translateExpr is the structural 1:1 translation §4.3 describes for
// every syntactic form the grammar has, dispatching to calls.go and
// quantifiers.go for the larger cases.
func (a *Analyzer) translateExpr(ctx context.Context, expr ast.Expression, env map[string]any, world *worldmodel.World, h handler.GameHandler, locationContext string) (rulegraph.Node, error) {
	expr = ast.Unwrap(expr)

	switch e := expr.(type) {
	case *ast.NullLiteral:
		return rulegraph.NewConstant(nil), nil
	case *ast.BoolLiteral:
		return rulegraph.NewConstant(e.Value), nil
	case *ast.IntegerLiteral:
		return rulegraph.NewConstant(e.Value), nil
	case *ast.FloatLiteral:
		return rulegraph.NewConstant(e.Value), nil
	case *ast.StringLiteral:
		return rulegraph.NewConstant(e.Value), nil

	case *ast.Identifier:
		return a.translateName(e, env, h)

	case *ast.ListLiteral:
		elements := make([]rulegraph.Node, len(e.Elements))
		for i, el := range e.Elements {
			node, err := a.translateExpr(ctx, el, env, world, h, locationContext)
			if err != nil {
				return nil, err
			}
			elements[i] = node
		}
		return newListNode(elements), nil

	case *ast.MapLiteral:
		return a.translateMapLiteral(ctx, e, env, world, h, locationContext)

	case *ast.FieldAccessExpression:
		object, err := a.translateExpr(ctx, e.Left, env, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewAttribute(object, e.Field), nil

	case *ast.IndexAccessExpression:
		value, err := a.translateExpr(ctx, e.Left, env, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		index, err := a.translateExpr(ctx, e.Index, env, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewSubscript(value, index), nil

	case *ast.CallExpression:
		return a.translateCall(ctx, e, env, world, h, locationContext)

	case *ast.InfixExpression:
		return a.translateInfix(ctx, e, env, world, h, locationContext)

	case *ast.UnaryExpression:
		return a.translateUnary(ctx, e, env, world, h, locationContext)

	case *ast.TernaryExpression:
		test, err := a.translateExpr(ctx, e.Condition, env, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		// Simplify aggressively when the condition already folded to a
		// known truthy/falsy constant (§4.3).
		if c, ok := test.(*rulegraph.ConstantNode); ok {
			if b, ok := c.Value.(bool); ok {
				if b {
					return a.translateExpr(ctx, e.Consequent, env, world, h, locationContext)
				}
				return a.translateExpr(ctx, e.Alternate, env, world, h, locationContext)
			}
		}
		ifTrue, err := a.translateExpr(ctx, e.Consequent, env, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		ifFalse, err := a.translateExpr(ctx, e.Alternate, env, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewConditional(test, ifTrue, ifFalse), nil

	case *ast.IsDefinedExpression:
		left, err := a.translateExpr(ctx, e.Left, env, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewHelper("is_defined", []rulegraph.Node{left}), nil

	case *ast.IsEmptyExpression:
		left, err := a.translateExpr(ctx, e.Left, env, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewHelper("is_empty", []rulegraph.Node{left}), nil

	case *ast.Quantifier:
		return a.translateQuantifier(ctx, e, env, world, h, locationContext)

	case *ast.ReduceExpression:
		return a.translateReduce(ctx, e, env, world, h, locationContext)

	default:
		return nil, xerr.ErrUnknownShape(fmt.Sprintf("%T", expr), expr.Span())
	}
}

func (a *Analyzer) translateMapLiteral(ctx context.Context, m *ast.MapLiteral, env map[string]any, world *worldmodel.World, h handler.GameHandler, locationContext string) (rulegraph.Node, error) {
	values := make(map[string]any, len(m.Entries))
	allConstant := true
	args := make([]rulegraph.Node, 0, len(m.Entries)*2)
	for _, entry := range m.Entries {
		valueNode, err := a.translateExpr(ctx, entry.Value, env, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		args = append(args, rulegraph.NewConstant(entry.Key), valueNode)
		if c, ok := valueNode.(*rulegraph.ConstantNode); ok {
			values[entry.Key] = c.Value
		} else {
			allConstant = false
		}
	}
	if allConstant {
		return rulegraph.NewConstant(values), nil
	}
	return rulegraph.NewHelper("__map__", args), nil
}

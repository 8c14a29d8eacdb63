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
	"github.com/worldrules/ruleexport/predicate"
	"github.com/worldrules/ruleexport/rulegraph"
	"github.com/worldrules/ruleexport/worldmodel"
	"github.com/worldrules/ruleexport/xerr"
)

// specializedStateMethods get a dedicated node kind from §3.2's table;
// genericStateMethods keep the catch-all state_method shape because the
// schema has no specialized node for them.
var specializedStateMethods = map[string]bool{
	"has": true, "has_all": true, "has_any": true,
	"has_group": true, "has_group_unique": true,
	"can_reach_region": true, "can_reach_location": true, "can_reach_entrance": true,
}

var genericStateMethods = map[string]bool{
	"has_all_counts": true, "has_from_list": true, "has_from_list_unique": true,
	"can_reach": true, "count": true,
}

func (a *Analyzer) translateCall(ctx context.Context, call *ast.CallExpression, env map[string]any, world *worldmodel.World, h handler.GameHandler, locationContext string) (rulegraph.Node, error) {
	if method, ok := stateMethodName(call.Callee, env); ok {
		args := call.Args
		if n := len(args); n > 0 {
			// A trailing player-id argument (`player` or `<x>.player`) is
			// kept only for host-runtime call compatibility and is never
			// part of the emitted node (§4.3); any other last argument,
			// such as has's count, is kept.
			switch last := ast.Unwrap(args[n-1]).(type) {
			case *ast.Identifier:
				if last.Value == "player" {
					args = args[:n-1]
				}
			case *ast.FieldAccessExpression:
				if last.Field == "player" {
					args = args[:n-1]
				}
			}
		}
		return a.translateStateMethod(ctx, method, args, env, world, h, locationContext)
	}

	// set(x) is transparent — has_all(set([...])) and has_all([...])
	// must analyze identically.
	if ident, ok := ast.Unwrap(call.Callee).(*ast.Identifier); ok && ident.Value == "set" && len(call.Args) == 1 {
		return a.translateExpr(ctx, call.Args[0], env, world, h, locationContext)
	}

	name := calleeDisplayName(call.Callee)

	if pres, ok := h.(handler.PreserveAsHelperHook); ok && pres.ShouldPreserveAsHelper(name) {
		args, err := a.translateArgs(ctx, call.Args, env, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		return rulegraph.NewHelper(name, args), nil
	}

	// Not preserved: if the callee resolves to another Callable in the
	// captured environment (a bound method on a game helper instance,
	// or a free function the handler does not list as a helper),
	// recursively analyze its own source rather than this call site's
	// — the call's own arguments have no counterpart in a Callable's
	// (source, env) contract and are intentionally not threaded through.
	if target, ok := lookupCallableInEnv(call.Callee, env); ok {
		return a.Analyze(ctx, world, target, locationContext)
	}

	return nil, xerr.ErrUnknownShape("call to "+name, call.Span())
}

// stateMethodName recognizes `state.method(...)` shaped calls, where
// the receiver identifier is the well-known "state" name bound for
// this predicate's first parameter.
func stateMethodName(callee ast.Expression, env map[string]any) (string, bool) {
	fa, ok := ast.Unwrap(callee).(*ast.FieldAccessExpression)
	if !ok {
		return "", false
	}
	ident, ok := ast.Unwrap(fa.Left).(*ast.Identifier)
	if !ok || ident.Value != "state" {
		return "", false
	}
	if specializedStateMethods[fa.Field] || genericStateMethods[fa.Field] {
		return fa.Field, true
	}
	return "", false
}

func calleeDisplayName(callee ast.Expression) string {
	switch c := ast.Unwrap(callee).(type) {
	case *ast.Identifier:
		return c.Value
	case *ast.FieldAccessExpression:
		return calleeDisplayName(c.Left) + "." + c.Field
	default:
		return "<call>"
	}
}

func lookupCallableInEnv(callee ast.Expression, env map[string]any) (predicate.Callable, bool) {
	ident, ok := ast.Unwrap(callee).(*ast.Identifier)
	if !ok {
		return nil, false
	}
	v, ok := env[ident.Value]
	if !ok {
		return nil, false
	}
	c, ok := v.(predicate.Callable)
	return c, ok
}

func (a *Analyzer) translateArgs(ctx context.Context, args []ast.Expression, env map[string]any, world *worldmodel.World, h handler.GameHandler, locationContext string) ([]rulegraph.Node, error) {
	out := make([]rulegraph.Node, len(args))
	for i, arg := range args {
		node, err := a.translateExpr(ctx, arg, env, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		out[i] = node
	}
	return out, nil
}

func (a *Analyzer) translateStateMethod(ctx context.Context, method string, rawArgs []ast.Expression, env map[string]any, world *worldmodel.World, h handler.GameHandler, locationContext string) (rulegraph.Node, error) {
	args, err := a.translateArgs(ctx, rawArgs, env, world, h, locationContext)
	if err != nil {
		return nil, err
	}

	switch method {
	case "has":
		if item, ok := asConstantString(firstArg(args)); ok {
			return rulegraph.NewItemCheck(item, argIntOrDefault(args, 1, 1)), nil
		}
	case "has_group":
		if group, ok := asConstantString(firstArg(args)); ok {
			return rulegraph.NewGroupCheck(group, argIntOrDefault(args, 1, 1)), nil
		}
	case "has_group_unique":
		if group, ok := asConstantString(firstArg(args)); ok {
			return rulegraph.NewGroupUniqueCheck(group, argIntOrDefault(args, 1, 1)), nil
		}
	case "can_reach_region":
		if target, ok := asConstantString(firstArg(args)); ok {
			return rulegraph.NewRegionCheck(target), nil
		}
	case "can_reach_location":
		if target, ok := asConstantString(firstArg(args)); ok {
			return rulegraph.NewLocationCheck(target), nil
		}
	case "can_reach_entrance":
		if target, ok := asConstantString(firstArg(args)); ok {
			return rulegraph.NewCanReachEntrance(target), nil
		}
	case "has_all", "has_any":
		if items, ok := asConstantStringList(firstArg(args)); ok {
			conditions := make([]rulegraph.Node, len(items))
			for i, item := range items {
				conditions[i] = rulegraph.NewItemCheck(item, 1)
			}
			if method == "has_all" {
				return rulegraph.NewAnd(conditions), nil
			}
			return rulegraph.NewOr(conditions), nil
		}
	}

	// Either a generic state method (has_all_counts, has_from_list,
	// has_from_list_unique, can_reach, count) or a specialized one whose
	// argument did not resolve to a concrete constant at analysis time
	// — leave it as a state_method node for the frontend to evaluate.
	return rulegraph.NewStateMethod(method, args), nil
}

func firstArg(args []rulegraph.Node) rulegraph.Node {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

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
	"github.com/worldrules/ruleexport/rulegraph"
	"github.com/worldrules/ruleexport/worldmodel"
	"github.com/worldrules/ruleexport/xerr"
)

// compareOps is the closed set of operator spellings that produce a
// compare node rather than and/or/binary_op. "contains" is the
// grammar's synonym for "in". The parser spells "x not in y" as
// not(in(x, y)) rather than a single "not in" token (see
// parser/not.go), so OpNotIn/OpIsNot only ever appear on a NotNode
// wrapping a CompareNode built here, never directly from this table.
var compareOps = map[string]rulegraph.CompareOp{
	"==":       rulegraph.OpEq,
	"!=":       rulegraph.OpNeq,
	"<":        rulegraph.OpLt,
	"<=":       rulegraph.OpLte,
	">":        rulegraph.OpGt,
	">=":       rulegraph.OpGte,
	"in":       rulegraph.OpIn,
	"contains": rulegraph.OpIn,
	"is":       rulegraph.OpIs,
}

var binaryOps = map[string]rulegraph.CompareOp{
	"+":  rulegraph.OpAdd,
	"-":  rulegraph.OpSub,
	"*":  rulegraph.OpMul,
	"/":  rulegraph.OpDiv,
	"//": rulegraph.OpFloorDiv,
	"%":  rulegraph.OpMod,
}

func (a *Analyzer) translateInfix(ctx context.Context, e *ast.InfixExpression, env map[string]any, world *worldmodel.World, h handler.GameHandler, locationContext string) (rulegraph.Node, error) {
	switch e.Operator {
	case "and", "or":
		left, err := a.translateExpr(ctx, e.Left, env, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		right, err := a.translateExpr(ctx, e.Right, env, world, h, locationContext)
		if err != nil {
			return nil, err
		}
		if e.Operator == "and" {
			return rulegraph.NewAnd([]rulegraph.Node{left, right}), nil
		}
		return rulegraph.NewOr([]rulegraph.Node{left, right}), nil
	}

	left, err := a.translateExpr(ctx, e.Left, env, world, h, locationContext)
	if err != nil {
		return nil, err
	}
	right, err := a.translateExpr(ctx, e.Right, env, world, h, locationContext)
	if err != nil {
		return nil, err
	}

	if op, ok := compareOps[e.Operator]; ok {
		return rulegraph.NewCompare(left, op, right), nil
	}
	if op, ok := binaryOps[e.Operator]; ok {
		return rulegraph.NewBinaryOp(left, op, right), nil
	}
	return nil, xerr.ErrUnknownShape("infix operator "+e.Operator, e.Span())
}

func (a *Analyzer) translateUnary(ctx context.Context, e *ast.UnaryExpression, env map[string]any, world *worldmodel.World, h handler.GameHandler, locationContext string) (rulegraph.Node, error) {
	operand, err := a.translateExpr(ctx, e.Operand, env, world, h, locationContext)
	if err != nil {
		return nil, err
	}

	if e.Operator == "not" {
		return rulegraph.NewNot(operand), nil
	}

	op, ok := binaryOps[e.Operator]
	if !ok {
		return nil, xerr.ErrUnknownShape("unary operator "+e.Operator, e.Span())
	}
	return rulegraph.NewUnaryOp(op, operand), nil
}

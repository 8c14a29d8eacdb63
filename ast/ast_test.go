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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worldrules/ruleexport/ast"
	"github.com/worldrules/ruleexport/tokens"
)

func span() tokens.Range {
	return tokens.NewRangeFromPos("<test>", tokens.Pos{Line: 1, Column: 1})
}

func TestLiterals_StringAndKind(t *testing.T) {
	require.Equal(t, "null", ast.NewNullLiteral(span()).String())
	require.Equal(t, "null", ast.NewNullLiteral(span()).Kind())

	require.Equal(t, "true", ast.NewBoolLiteral(true, span()).String())
	require.Equal(t, "42", ast.NewIntegerLiteral(42, span()).String())
	require.Equal(t, "1.5", ast.NewFloatLiteral(1.5, span()).String())
	require.Equal(t, `"flippers"`, ast.NewStringLiteral("flippers", span()).String())
}

func TestIdentifier_String(t *testing.T) {
	id := ast.NewIdentifier("has_sword", span())
	require.Equal(t, "has_sword", id.String())
	require.Equal(t, "identifier", id.Kind())
}

func TestInfixExpression_String(t *testing.T) {
	left := ast.NewIdentifier("a", span())
	right := ast.NewIntegerLiteral(1, span())
	expr := ast.NewInfixExpression(left, "and", right, span())
	require.Equal(t, "(a and 1)", expr.String())
}

func TestUnaryExpression_String(t *testing.T) {
	operand := ast.NewIdentifier("flag", span())
	expr := ast.NewUnaryExpression("not", operand, span())
	require.Equal(t, "(not flag)", expr.String())
}

func TestTernaryExpression_String(t *testing.T) {
	cond := ast.NewIdentifier("cond", span())
	cons := ast.NewIntegerLiteral(1, span())
	alt := ast.NewIntegerLiteral(0, span())
	expr := ast.NewTernaryExpression(cond, cons, alt, span())
	require.Equal(t, "(cond ? 1 : 0)", expr.String())
}

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

package parser

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/worldrules/ruleexport/ast"
)

type ParserTestSuite struct {
	suite.Suite
}

func (s *ParserTestSuite) SetupSuite() {
	slog.Info("ParserTestSuite SetupSuite start")
}

func (s *ParserTestSuite) BeforeTest(suiteName, testName string) {
	slog.Info("BeforeTest start", "TestSuite", "ParserTestSuite", "TestName", testName)
}

func (s *ParserTestSuite) parse(input string) ast.Expression {
	expr, err := ParseExpression(input, "<test>")
	s.Require().NoError(err)
	s.Require().NotNil(expr)
	return expr
}

func (s *ParserTestSuite) TestPrecedenceArithmetic() {
	testCases := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"1 + 2 + 3", "((1 + 2) + 3)"},
		{"1 * 2 * 3", "((1 * 2) * 3)"},
	}
	for _, tc := range testCases {
		s.Equal(tc.expected, s.parse(tc.input).String())
	}
}

func (s *ParserTestSuite) TestLogicalPrecedence() {
	expr := s.parse("has_sword and has_shield or has_bow")
	s.Equal("((has_sword and has_shield) or has_bow)", expr.String())
}

func (s *ParserTestSuite) TestComparisonAndEquality() {
	expr := s.parse("count >= 3 and flag == true")
	s.Equal("((count >= 3) and (flag == true))", expr.String())
}

func (s *ParserTestSuite) TestFieldAndIndexAccess() {
	expr := s.parse(`region.locations["chest"]`)
	access, ok := expr.(*ast.IndexAccessExpression)
	s.Require().True(ok)
	field, ok := access.Left.(*ast.FieldAccessExpression)
	s.Require().True(ok)
	s.Equal("region", field.Left.String())
	s.Equal("locations", field.Field)
}

func (s *ParserTestSuite) TestCallExpression() {
	expr := s.parse(`state.has("Progressive Sword", 2)`)
	call, ok := expr.(*ast.CallExpression)
	s.Require().True(ok)
	s.Len(call.Args, 2)
}

func (s *ParserTestSuite) TestTernary() {
	expr := s.parse("hard_logic ? has_sword : true")
	ternary, ok := expr.(*ast.TernaryExpression)
	s.Require().True(ok)
	s.Equal("hard_logic", ternary.Condition.String())
}

func (s *ParserTestSuite) TestNotIn() {
	expr := s.parse(`item not in excluded`)
	unary, ok := expr.(*ast.UnaryExpression)
	s.Require().True(ok)
	s.Equal("not", unary.Operator)
	infix, ok := unary.Operand.(*ast.InfixExpression)
	s.Require().True(ok)
	s.Equal("in", infix.Operator)
}

func (s *ParserTestSuite) TestAnyQuantifier() {
	expr := s.parse(`any locations as loc { loc.has_item }`)
	any, ok := expr.(*ast.Quantifier)
	s.Require().True(ok)
	s.Equal("any", any.Kind())
	s.Equal("loc", any.ValueIterator)
	s.Empty(any.IndexIterator)
}

func (s *ParserTestSuite) TestDistinctWithIndexIterator() {
	expr := s.parse(`distinct shops as shop, idx { shop.name }`)
	d, ok := expr.(*ast.Quantifier)
	s.Require().True(ok)
	s.Equal("distinct", d.Kind())
	s.Equal("shop", d.ValueIterator)
	s.Equal("idx", d.IndexIterator)
}

func (s *ParserTestSuite) TestReduce() {
	expr := s.parse(`reduce items from 0 as total, item { total + item.value }`)
	r, ok := expr.(*ast.ReduceExpression)
	s.Require().True(ok)
	s.Equal("total", r.Accumulator)
	s.Equal("item", r.ValueIterator)
}

func (s *ParserTestSuite) TestTrailingCommentIsStrippedFromEvaluation() {
	expr := s.parse("has_sword # reserved for future use")
	wrapped, ok := expr.(*ast.TrailingCommentExpression)
	s.Require().True(ok)
	s.Equal("has_sword", ast.Unwrap(wrapped).String())
	s.Equal("reserved for future use", wrapped.Comment)
}

func (s *ParserTestSuite) TestListLiteral() {
	expr := s.parse(`[1, 2, 3]`)
	list, ok := expr.(*ast.ListLiteral)
	s.Require().True(ok)
	s.Len(list.Elements, 3)
}

func (s *ParserTestSuite) TestMapLiteral() {
	expr := s.parse(`{"easy": 1, "hard": 2}`)
	m, ok := expr.(*ast.MapLiteral)
	s.Require().True(ok)
	s.Len(m.Entries, 2)
	s.Equal("easy", m.Entries[0].Key)
}

func (s *ParserTestSuite) TestUnexpectedTrailingTokenIsAnError() {
	_, err := ParseExpression("has_sword has_shield", "<test>")
	s.Require().Error(err)
}

func (s *ParserTestSuite) TestEmptyInputIsAnError() {
	_, err := ParseExpression("", "<test>")
	s.Require().Error(err)
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserTestSuite))
}

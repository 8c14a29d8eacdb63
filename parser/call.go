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
	"github.com/worldrules/ruleexport/ast"
	"github.com/worldrules/ruleexport/tokens"
)

func parseCallExpression(p *Parser, left ast.Expression, _ Precedence) ast.Expression {
	if !p.expect(tokens.PunctLeftParentheses) {
		return nil
	}

	args := parseExpressionList(p, tokens.PunctRightParentheses)
	if args == nil {
		args = []ast.Expression{}
	}

	rparen, ok := p.advanceExpected(tokens.PunctRightParentheses)
	if !ok {
		return nil
	}

	return ast.NewCallExpression(left, args, tokens.Range{
		File: left.Span().File,
		From: left.Span().From,
		To:   rparen.Range.To,
	})
}

func parseExpressionList(p *Parser, end tokens.Kind) []ast.Expression {
	var exprs []ast.Expression
	for p.hasTokens() && !p.canExpect(end) {
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		exprs = append(exprs, expr)
		if p.canExpect(tokens.PunctComma) {
			p.advance()
			continue
		}
	}
	return exprs
}

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
	"strconv"

	"github.com/worldrules/ruleexport/ast"
	"github.com/worldrules/ruleexport/tokens"
	"github.com/worldrules/ruleexport/trinary"
)

func parseNullLiteral(p *Parser) ast.Expression {
	token := p.advance()
	return ast.NewNullLiteral(token.Range)
}

func parseBoolLiteral(p *Parser) ast.Expression {
	token := p.advance()
	return ast.NewBoolLiteral(trinary.FromBoolToken(token).IsTrue(), token.Range)
}

func parseIdentifier(p *Parser) ast.Expression {
	token := p.advance()
	return ast.NewIdentifier(token.Value, token.Range)
}

func parseIntegerLiteral(p *Parser) ast.Expression {
	token := p.advance()
	value, err := strconv.ParseInt(token.Value, 10, 64)
	if err != nil {
		p.errorf("invalid integer literal %q at %s: %s", token.Value, token.Range, err)
		return nil
	}
	return ast.NewIntegerLiteral(value, token.Range)
}

func parseFloatLiteral(p *Parser) ast.Expression {
	token := p.advance()
	value, err := strconv.ParseFloat(token.Value, 64)
	if err != nil {
		p.errorf("invalid float literal %q at %s: %s", token.Value, token.Range, err)
		return nil
	}
	return ast.NewFloatLiteral(value, token.Range)
}

func parseStringLiteral(p *Parser) ast.Expression {
	token := p.advance()
	return ast.NewStringLiteral(token.Value, token.Range)
}

func parseGroupedExpression(p *Parser) ast.Expression {
	p.advance() // consume '('
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expect(tokens.PunctRightParentheses) {
		return nil
	}
	return expr
}

func parseUnaryExpression(p *Parser) ast.Expression {
	token := p.advance()
	operand := p.parseExpression(UNARY)
	if operand == nil {
		return nil
	}
	return ast.NewUnaryExpression(token.Value, operand, tokens.Range{
		File: token.Range.File,
		From: token.Range.From,
		To:   operand.Span().To,
	})
}

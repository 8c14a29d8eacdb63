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

func parseInfixExpression(p *Parser, left ast.Expression, precedence Precedence) ast.Expression {
	op := p.advance()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return ast.NewInfixExpression(left, op.Value, right, tokens.Range{
		File: left.Span().File,
		From: left.Span().From,
		To:   right.Span().To,
	})
}

func parseTernaryExpression(p *Parser, condition ast.Expression, precedence Precedence) ast.Expression {
	if !p.expect(tokens.TokenQuestion) {
		return nil
	}
	consequent := p.parseExpression(precedence)
	if consequent == nil {
		return nil
	}
	if !p.expect(tokens.PunctColon) {
		return nil
	}
	alternate := p.parseExpression(precedence)
	if alternate == nil {
		return nil
	}
	return ast.NewTernaryExpression(condition, consequent, alternate, tokens.Range{
		File: condition.Span().File,
		From: condition.Span().From,
		To:   alternate.Span().To,
	})
}

func parseIsExpression(p *Parser, left ast.Expression, _ Precedence) ast.Expression {
	isToken := p.advance() // 'is'

	if p.head().Kind == tokens.Ident && p.head().Value == "empty" {
		empty := p.advance()
		return ast.NewIsEmptyExpression(left, tokens.Range{File: left.Span().File, From: left.Span().From, To: empty.Range.To})
	}
	if p.head().Kind == tokens.Ident && p.head().Value == "defined" {
		defined := p.advance()
		return ast.NewIsDefinedExpression(left, tokens.Range{File: left.Span().File, From: left.Span().From, To: defined.Range.To})
	}

	p.errorf("expected 'defined' or 'empty' after 'is', got %s", p.head().Kind)
	_ = isToken
	return nil
}

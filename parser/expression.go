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
	"slices"

	"github.com/worldrules/ruleexport/ast"
	"github.com/worldrules/ruleexport/tokens"
)

// parseExpression is the Pratt parser's core: parse one prefix, then
// keep folding infix operators in while they bind tighter than
// precedence. Preceding and trailing '#' comments are folded into
// wrapper nodes so the analyzer can surface them as diagnostics without
// ever seeing them as part of the expression itself.
func (p *Parser) parseExpression(precedence Precedence) ast.Expression {
	var preceding []tokens.Instance
	for p.canExpectAnyOf(tokens.LineComment, tokens.TrailingComment) {
		preceding = append(preceding, p.advance())
	}

	prefix, exists := p.prefixHandlers[p.current.Kind]
	if !exists {
		p.noPrefixParseFnError(p.current)
		return nil
	}

	left := p.wrapWithTrailingComment(prefix(p))
	if left == nil {
		return nil
	}

	for precedences[p.current.Kind] > precedence {
		infix, exists := p.infixHandlers[p.current.Kind]
		if !exists {
			break
		}
		left = p.wrapWithTrailingComment(infix(p, left, precedences[p.current.Kind]))
		if left == nil {
			return nil
		}
	}

	slices.Reverse(preceding)
	for _, comment := range preceding {
		left = ast.NewPrecedingCommentExpression(left, comment.Value, tokens.Range{
			File: comment.Range.File,
			From: comment.Range.From,
			To:   left.Span().To,
		})
	}
	return left
}

func (p *Parser) wrapWithTrailingComment(expr ast.Expression) ast.Expression {
	if expr == nil {
		return nil
	}
	if p.head().IsOfKind(tokens.TrailingComment) {
		comment := p.advance()
		return ast.NewTrailingCommentExpression(expr, comment.Value, tokens.Range{
			File: expr.Span().File,
			From: expr.Span().From,
			To:   comment.Range.To,
		})
	}
	return expr
}

// blockBody parses the '{ expr }' body shared by quantifiers and reduce.
func (p *Parser) blockBody() ast.Expression {
	if !p.expect(tokens.PunctLeftCurly) {
		return nil
	}
	body := p.parseExpression(LOWEST)
	if body == nil {
		return nil
	}
	if !p.expect(tokens.PunctRightCurly) {
		return nil
	}
	return body
}

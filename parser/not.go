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

// parseNotExpression handles "not" in infix position — "x not in y" and
// "x not contains y" — the only spots a binary operator is spelled with
// a second keyword after "not".
func parseNotExpression(p *Parser, left ast.Expression, precedence Precedence) ast.Expression {
	notToken := p.advance()

	op := p.head()
	if !op.IsOfKind(tokens.KeywordIn, tokens.KeywordContains) {
		p.errorf("expected 'in' or 'contains' after 'not', got %s", op.Kind)
		return nil
	}
	p.advance()

	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}

	inner := ast.NewInfixExpression(left, op.Value, right, tokens.Range{
		File: left.Span().File,
		From: left.Span().From,
		To:   right.Span().To,
	})

	return ast.NewUnaryExpression(notToken.Value, inner, tokens.Range{
		File: notToken.Range.File,
		From: notToken.Range.From,
		To:   right.Span().To,
	})
}

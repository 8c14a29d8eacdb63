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

func parseFieldAccessExpression(p *Parser, left ast.Expression, _ Precedence) ast.Expression {
	p.advance() // '.'
	field, ok := p.advanceExpected(tokens.Ident)
	if !ok {
		return nil
	}
	return ast.NewFieldAccessExpression(left, field.Value, tokens.Range{
		File: left.Span().File,
		From: left.Span().From,
		To:   field.Range.To,
	})
}

func parseIndexAccessExpression(p *Parser, left ast.Expression, _ Precedence) ast.Expression {
	if !p.expect(tokens.PunctLeftBracket) {
		return nil
	}
	index := p.parseExpression(LOWEST)
	if index == nil {
		return nil
	}
	rbracket, ok := p.advanceExpected(tokens.PunctRightBracket)
	if !ok {
		return nil
	}
	return ast.NewIndexAccessExpression(left, index, tokens.Range{
		File: left.Span().File,
		From: left.Span().From,
		To:   rbracket.Range.To,
	})
}

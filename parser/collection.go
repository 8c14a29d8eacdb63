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

func parseListLiteral(p *Parser) ast.Expression {
	start := p.advance() // '['

	var elements []ast.Expression
	for p.hasTokens() && !p.canExpect(tokens.PunctRightBracket) {
		element := p.parseExpression(LOWEST)
		if element == nil {
			return nil
		}
		elements = append(elements, element)
		if p.canExpect(tokens.PunctComma) {
			p.advance()
		}
	}

	end, ok := p.advanceExpected(tokens.PunctRightBracket)
	if !ok {
		return nil
	}

	return ast.NewListLiteral(elements, tokens.Range{File: start.Range.File, From: start.Range.From, To: end.Range.To})
}

// parseMapLiteral parses {"key": value, ...} — the reconstruction of an
// enum-keyed dict literal captured from a closure.
func parseMapLiteral(p *Parser) ast.Expression {
	start := p.advance() // '{'

	var entries []ast.MapEntry
	for p.hasTokens() && !p.canExpect(tokens.PunctRightCurly) {
		key, ok := p.advanceExpected(tokens.String)
		if !ok {
			return nil
		}
		if !p.expect(tokens.PunctColon) {
			return nil
		}
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		entries = append(entries, ast.MapEntry{Key: key.Value, Value: value})
		if p.canExpect(tokens.PunctComma) {
			p.advance()
		}
	}

	end, ok := p.advanceExpected(tokens.PunctRightCurly)
	if !ok {
		return nil
	}

	return ast.NewMapLiteral(entries, tokens.Range{File: start.Range.File, From: start.Range.From, To: end.Range.To})
}

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

// parseReduceExpression parses:
//
//	reduce <collection> from <seed> as <acc>, <value>(, <index>)? { <body> }
func parseReduceExpression(p *Parser) ast.Expression {
	start := p.advance() // 'reduce'

	collection := p.parseExpression(LOWEST)
	if collection == nil {
		return nil
	}

	if !p.expect(tokens.KeywordFrom) {
		return nil
	}

	seed := p.parseExpression(LOWEST)
	if seed == nil {
		return nil
	}

	if !p.expect(tokens.KeywordAs) {
		return nil
	}

	accumulator, ok := p.advanceExpected(tokens.Ident)
	if !ok {
		return nil
	}

	if !p.expect(tokens.PunctComma) {
		return nil
	}

	valueIter, ok := p.advanceExpected(tokens.Ident)
	if !ok {
		return nil
	}

	var indexIter string
	if p.canExpect(tokens.PunctComma) {
		p.advance()
		idxIter, ok := p.advanceExpected(tokens.Ident)
		if !ok {
			return nil
		}
		indexIter = idxIter.Value
	}

	body := p.blockBody()
	if body == nil {
		return nil
	}

	return ast.NewReduceExpression(collection, seed, accumulator.Value, valueIter.Value, indexIter, body,
		tokens.Range{File: start.Range.File, From: start.Range.From, To: body.Span().To})
}

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

// quantifierParserFactory builds the prefix handler shared by
// any/all/filter/map/distinct:
//
//	<keyword> <collection> as <value>(, <index>)? { <body> }
func quantifierParserFactory(kind tokens.Kind) prefixParser {
	return func(p *Parser) ast.Expression {
		start := p.advance() // the quantifier keyword

		collection := p.parseExpression(LOWEST)
		if collection == nil {
			return nil
		}

		if !p.expect(tokens.KeywordAs) {
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

		span := tokens.Range{File: start.Range.File, From: start.Range.From, To: body.Span().To}

		switch kind {
		case tokens.KeywordAny:
			return ast.NewAnyExpression(collection, valueIter.Value, indexIter, body, span)
		case tokens.KeywordAll:
			return ast.NewAllExpression(collection, valueIter.Value, indexIter, body, span)
		case tokens.KeywordFilter:
			return ast.NewFilterExpression(collection, valueIter.Value, indexIter, body, span)
		case tokens.KeywordMap:
			return ast.NewMapExpression(collection, valueIter.Value, indexIter, body, span)
		case tokens.KeywordDistinct:
			return ast.NewDistinctExpression(collection, valueIter.Value, indexIter, body, span)
		default:
			p.errorf("unreachable quantifier kind %s", kind)
			return nil
		}
	}
}

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

type prefixParser func(p *Parser) ast.Expression
type infixParser func(p *Parser, left ast.Expression, precedence Precedence) ast.Expression

func (p *Parser) registerParseFns() {
	p.prefixHandlers = make(map[tokens.Kind]prefixParser)

	p.registerPrefix(tokens.KeywordNull, parseNullLiteral)
	p.registerPrefix(tokens.KeywordTrue, parseBoolLiteral)
	p.registerPrefix(tokens.KeywordFalse, parseBoolLiteral)

	p.registerPrefix(tokens.Ident, parseIdentifier)
	p.registerPrefix(tokens.String, parseStringLiteral)
	p.registerPrefix(tokens.Int, parseIntegerLiteral)
	p.registerPrefix(tokens.Float, parseFloatLiteral)

	p.registerPrefix(tokens.TokenBang, parseUnaryExpression)
	p.registerPrefix(tokens.TokenMinus, parseUnaryExpression)
	p.registerPrefix(tokens.KeywordNot, parseUnaryExpression)

	p.registerPrefix(tokens.PunctLeftParentheses, parseGroupedExpression)
	p.registerPrefix(tokens.PunctLeftBracket, parseListLiteral)
	p.registerPrefix(tokens.PunctLeftCurly, parseMapLiteral)

	p.registerPrefix(tokens.KeywordAny, quantifierParserFactory(tokens.KeywordAny))
	p.registerPrefix(tokens.KeywordAll, quantifierParserFactory(tokens.KeywordAll))
	p.registerPrefix(tokens.KeywordFilter, quantifierParserFactory(tokens.KeywordFilter))
	p.registerPrefix(tokens.KeywordMap, quantifierParserFactory(tokens.KeywordMap))
	p.registerPrefix(tokens.KeywordDistinct, quantifierParserFactory(tokens.KeywordDistinct))
	p.registerPrefix(tokens.KeywordReduce, parseReduceExpression)

	p.infixHandlers = make(map[tokens.Kind]infixParser)

	p.registerInfix(tokens.KeywordAnd, parseInfixExpression)
	p.registerInfix(tokens.KeywordOr, parseInfixExpression)
	p.registerInfix(tokens.KeywordIn, parseInfixExpression)
	p.registerInfix(tokens.KeywordContains, parseInfixExpression)
	p.registerInfix(tokens.KeywordIs, parseIsExpression)
	p.registerInfix(tokens.KeywordNot, parseNotExpression)

	p.registerInfix(tokens.TokenPlus, parseInfixExpression)
	p.registerInfix(tokens.TokenMinus, parseInfixExpression)
	p.registerInfix(tokens.TokenMul, parseInfixExpression)
	p.registerInfix(tokens.TokenDiv, parseInfixExpression)
	p.registerInfix(tokens.TokenIDiv, parseInfixExpression)
	p.registerInfix(tokens.TokenMod, parseInfixExpression)
	p.registerInfix(tokens.TokenEq, parseInfixExpression)
	p.registerInfix(tokens.TokenNeq, parseInfixExpression)
	p.registerInfix(tokens.TokenLt, parseInfixExpression)
	p.registerInfix(tokens.TokenGt, parseInfixExpression)
	p.registerInfix(tokens.TokenLte, parseInfixExpression)
	p.registerInfix(tokens.TokenGte, parseInfixExpression)

	p.registerInfix(tokens.TokenQuestion, parseTernaryExpression)

	p.registerInfix(tokens.TokenDot, parseFieldAccessExpression)
	p.registerInfix(tokens.PunctLeftBracket, parseIndexAccessExpression)
	p.registerInfix(tokens.PunctLeftParentheses, parseCallExpression)
}

// SPDX-License-Identifier: Apache-2.0

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

package tokens

// Kind enumerates the token kinds of the predicate expression grammar —
// the language SourceExtractor reconstructs a callable's body into
// before handing it to the parser. There is no statement grammar: a
// predicate is always exactly one expression.
type Kind string

const (
	EOF     Kind = "EOF"
	Error   Kind = "Error"
	Unknown Kind = "Unknown"

	// Literals
	Ident  Kind = "Ident"
	String Kind = "String"
	Int    Kind = "Int"
	Float  Kind = "Float"

	// Keywords
	KeywordNull  Kind = "null"
	KeywordTrue  Kind = "true"
	KeywordFalse Kind = "false"

	KeywordAnd      Kind = "and"
	KeywordOr       Kind = "or"
	KeywordNot      Kind = "not"
	KeywordIn       Kind = "in"
	KeywordIs       Kind = "is"
	KeywordContains Kind = "contains"

	KeywordAny      Kind = "any"
	KeywordAll      Kind = "all"
	KeywordFilter   Kind = "filter"
	KeywordMap      Kind = "map"
	KeywordDistinct Kind = "distinct"
	KeywordReduce   Kind = "reduce"
	KeywordFrom     Kind = "from"
	KeywordAs       Kind = "as"

	// Operators
	TokenAssign Kind = "Assign"
	TokenEq     Kind = "Equals"
	TokenNeq    Kind = "NotEquals"
	TokenLte    Kind = "LessThanOrEqual"
	TokenGte    Kind = "GreaterThanOrEqual"
	TokenLt     Kind = "LessThan"
	TokenGt     Kind = "GreaterThan"
	TokenPlus   Kind = "Plus"
	TokenMinus  Kind = "Minus"
	TokenMul    Kind = "Multiply"
	TokenDiv    Kind = "Divide"
	TokenIDiv   Kind = "FloorDivide"
	TokenMod    Kind = "Modulo"

	TokenQuestion Kind = "Question"
	PunctColon    Kind = "Colon"
	TokenBang     Kind = "Bang"
	TokenDot      Kind = "Dot"

	// Punctuation
	PunctComma            Kind = "Comma"
	PunctLeftParentheses  Kind = "LeftParen"
	PunctRightParentheses Kind = "RightParen"
	PunctLeftCurly        Kind = "LeftBrace"
	PunctRightCurly       Kind = "RightBrace"
	PunctLeftBracket      Kind = "LeftBracket"
	PunctRightBracket     Kind = "RightBracket"

	// Comments — recognized by the lexer itself (not stripped by regex,
	// per the extractor's tokenizer requirement) so that a '#' inside a
	// string literal never gets mistaken for a comment. LineComment sits
	// alone on its line; TrailingComment follows an expression on the
	// same line and is what the extractor strips when it rebuilds a
	// predicate's source text (spec step: strip trailing comments).
	LineComment     Kind = "LineComment"
	TrailingComment Kind = "TrailingComment"
)

func IsKeyword(str string) (Kind, bool) {
	kind, exists := keywords[str]
	return kind, exists
}

// Keywords map for fast lookup
var keywords = map[string]Kind{
	"and":      KeywordAnd,
	"or":       KeywordOr,
	"not":      KeywordNot,
	"in":       KeywordIn,
	"is":       KeywordIs,
	"contains": KeywordContains,

	"any":      KeywordAny,
	"all":      KeywordAll,
	"filter":   KeywordFilter,
	"map":      KeywordMap,
	"distinct": KeywordDistinct,
	"reduce":   KeywordReduce,
	"from":     KeywordFrom,
	"as":       KeywordAs,

	"true":    KeywordTrue,
	"false":   KeywordFalse,
	"null":    KeywordNull,
	"None":    KeywordNull,
}

func (k Kind) String() string {
	return string(k)
}

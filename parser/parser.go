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

// Package parser turns a token stream into the single ast.Expression a
// predicate's reconstructed source must reduce to. It is a conventional
// Pratt parser: one prefix handler per token kind that can start an
// expression, one infix handler per operator, precedence climbing in
// between.
package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/worldrules/ruleexport/lexer"
	"github.com/worldrules/ruleexport/tokens"
)

var ErrParse = errors.New("parse error")

type Parser struct {
	lexer     *lexer.Lexer
	reference string
	current   tokens.Instance
	next      tokens.Instance

	atEof bool

	err error

	prefixHandlers map[tokens.Kind]prefixParser
	infixHandlers  map[tokens.Kind]infixParser
}

// NewParser builds a parser reading from input, tagging every token's
// range with filename for diagnostics.
func NewParser(input io.Reader, filename string) *Parser {
	p := &Parser{
		lexer:     lexer.NewLexer(input, filename),
		reference: filename,
	}
	p.registerParseFns()
	p.advance()
	p.advance()
	return p
}

// NewParserFromString is a convenience constructor over a string reader.
func NewParserFromString(input, filename string) *Parser {
	return NewParser(strings.NewReader(input), filename)
}

func (p *Parser) head() tokens.Instance {
	return p.current
}

func (p *Parser) peek() tokens.Instance {
	if p.atEof {
		return tokens.Instance{Kind: tokens.EOF}
	}
	return p.next
}

func (p *Parser) advance() tokens.Instance {
	if p.atEof {
		return tokens.Err(p.current.Range, "cannot advance, already at EOF")
	}
	if p.current.IsOfKind(tokens.Error) {
		p.errorf(p.current.Value)
		return p.current
	}
	current := p.current
	p.current = p.next
	if p.current.Kind == tokens.EOF {
		p.atEof = true
		return current
	}
	p.next = p.lexer.NextToken()
	return current
}

func (p *Parser) advanceExpected(kind tokens.Kind) (tokens.Instance, bool) {
	token := p.current
	if !token.IsOfKind(kind) {
		p.errorf("expected %s, got %s at %s", kind, p.current.Kind, p.current.Range)
		return tokens.Err(p.current.Range, fmt.Sprintf("expected %s, got %s", kind, p.current.Kind)), false
	}
	return p.advance(), true
}

func (p *Parser) expect(kind tokens.Kind) bool {
	if p.current.Kind != kind {
		p.errorf("expected '%s', got %s at %s", kind, p.current.Kind, p.current.Range)
		return false
	}
	p.advance()
	return true
}

func (p *Parser) canExpect(kind tokens.Kind) bool {
	return p.current.Kind == kind
}

func (p *Parser) canExpectAnyOf(kinds ...tokens.Kind) bool {
	for _, kind := range kinds {
		if p.current.Kind == kind {
			return true
		}
	}
	return false
}

func (p *Parser) hasTokens() bool {
	return !p.atEof
}

func (p *Parser) errorf(format string, args ...any) {
	format = "parsing error at %s: " + format
	args = append([]any{p.current.Range.String()}, args...)
	p.err = errors.Wrap(p.err, fmt.Sprintf(format, args...))
}

func (p *Parser) registerPrefix(kind tokens.Kind, fn prefixParser) {
	p.prefixHandlers[kind] = fn
}

func (p *Parser) registerInfix(kind tokens.Kind, fn infixParser) {
	p.infixHandlers[kind] = fn
}

func (p *Parser) noPrefixParseFnError(t tokens.Instance) {
	p.errorf("no prefix parse function found for '%s'", t.Kind)
}

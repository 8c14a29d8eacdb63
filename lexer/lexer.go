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

// Package lexer turns reconstructed predicate source text into a stream
// of tokens.Instance values for the parser. It knows nothing about what
// a predicate means — only how to split its text into Idents, literals,
// operators and comments.
package lexer

import (
	"bufio"
	"bytes"
	"io"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/worldrules/ruleexport/tokens"
)

type Lexer struct {
	reader   *bufio.Reader
	filename string

	line   int
	column int

	current     rune
	currentLine []rune // buffer for lookback, reset on '\n'

	offset       int
	currentWidth int
	atEOF        bool

	identRegex *regexp.Regexp
}

func NewLexer(reader io.Reader, filename string) *Lexer {
	l := &Lexer{
		reader:      bufio.NewReader(reader),
		filename:    filename,
		line:        1,
		column:      1,
		currentLine: []rune{},
		identRegex:  regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`),
	}
	l.readRune() // prime the first rune
	return l
}

// Tokenize lexes source in full and returns every token, including a
// trailing EOF. Callers that only need to find token boundaries (the
// comment stripper in predicate/extract.go) use this instead of
// driving NextToken themselves.
func Tokenize(source string, filename string) ([]tokens.Instance, error) {
	l := NewLexer(strings.NewReader(source), filename)
	var out []tokens.Instance
	for {
		t := l.NextToken()
		out = append(out, t)
		if t.Kind == tokens.EOF || t.Kind == tokens.Error {
			break
		}
	}
	return out, nil
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() tokens.Instance {
	for {
		l.skipWhitespace()

		start := l.currentPos()

		if l.current == 0 {
			return tokens.New(tokens.EOF, "", l.rangeFrom(start))
		}

		switch l.current {
		case '#':
			kind, value := l.readComment()
			return tokens.New(kind, value, l.rangeFrom(start))

		case '-':
			l.readRune()
			return tokens.New(tokens.TokenMinus, "-", l.rangeFrom(start))

		case '=':
			if l.peekAhead() == '=' {
				l.readRune()
				l.readRune()
				return tokens.New(tokens.TokenEq, "==", l.rangeFrom(start))
			}
			l.readRune()
			return tokens.New(tokens.TokenAssign, "=", l.rangeFrom(start))

		case '!':
			if l.peekAhead() == '=' {
				l.readRune()
				l.readRune()
				return tokens.New(tokens.TokenNeq, "!=", l.rangeFrom(start))
			}
			l.readRune()
			return tokens.New(tokens.TokenBang, "!", l.rangeFrom(start))

		case '<':
			if l.peekAhead() == '=' {
				l.readRune()
				l.readRune()
				return tokens.New(tokens.TokenLte, "<=", l.rangeFrom(start))
			}
			l.readRune()
			return tokens.New(tokens.TokenLt, "<", l.rangeFrom(start))

		case '>':
			if l.peekAhead() == '=' {
				l.readRune()
				l.readRune()
				return tokens.New(tokens.TokenGte, ">=", l.rangeFrom(start))
			}
			l.readRune()
			return tokens.New(tokens.TokenGt, ">", l.rangeFrom(start))

		case '/':
			if l.peekAhead() == '/' {
				l.readRune()
				l.readRune()
				return tokens.New(tokens.TokenIDiv, "//", l.rangeFrom(start))
			}
			l.readRune()
			return tokens.New(tokens.TokenDiv, "/", l.rangeFrom(start))

		case '+':
			l.readRune()
			return tokens.New(tokens.TokenPlus, "+", l.rangeFrom(start))
		case '*':
			l.readRune()
			return tokens.New(tokens.TokenMul, "*", l.rangeFrom(start))
		case '%':
			l.readRune()
			return tokens.New(tokens.TokenMod, "%", l.rangeFrom(start))
		case '?':
			l.readRune()
			return tokens.New(tokens.TokenQuestion, "?", l.rangeFrom(start))
		case ':':
			l.readRune()
			return tokens.New(tokens.PunctColon, ":", l.rangeFrom(start))
		case '.':
			l.readRune()
			return tokens.New(tokens.TokenDot, ".", l.rangeFrom(start))
		case ',':
			l.readRune()
			return tokens.New(tokens.PunctComma, ",", l.rangeFrom(start))
		case '(':
			l.readRune()
			return tokens.New(tokens.PunctLeftParentheses, "(", l.rangeFrom(start))
		case ')':
			l.readRune()
			return tokens.New(tokens.PunctRightParentheses, ")", l.rangeFrom(start))
		case '{':
			l.readRune()
			return tokens.New(tokens.PunctLeftCurly, "{", l.rangeFrom(start))
		case '}':
			l.readRune()
			return tokens.New(tokens.PunctRightCurly, "}", l.rangeFrom(start))
		case '[':
			l.readRune()
			return tokens.New(tokens.PunctLeftBracket, "[", l.rangeFrom(start))
		case ']':
			l.readRune()
			return tokens.New(tokens.PunctRightBracket, "]", l.rangeFrom(start))

		case '"':
			value, err := l.readString()
			if err != nil {
				return tokens.New(tokens.Error, err.Error(), l.rangeFrom(start))
			}
			return tokens.New(tokens.String, value, l.rangeFrom(start))

		default:
			if unicode.IsLetter(l.current) || l.current == '_' {
				value := l.readIdentifier()
				if !l.identRegex.MatchString(value) {
					return tokens.Err(l.rangeFrom(start), "invalid identifier: "+value)
				}
				if kind, isKeyword := tokens.IsKeyword(value); isKeyword {
					return tokens.New(kind, value, l.rangeFrom(start))
				}
				return tokens.New(tokens.Ident, value, l.rangeFrom(start))
			}

			if unicode.IsDigit(l.current) {
				value, kind := l.readNumber()
				return tokens.New(kind, value, l.rangeFrom(start))
			}

			char := string(l.current)
			l.readRune()
			return tokens.New(tokens.Error, "unexpected character: "+char, l.rangeFrom(start))
		}
	}
}

// readRune reads the next rune from input.
func (l *Lexer) readRune() {
	if l.atEOF {
		l.current = 0
		l.currentWidth = 0
		return
	}

	r, size, err := l.reader.ReadRune()
	if err != nil {
		l.atEOF = true
		l.current = 0
		l.currentWidth = 0
		return
	}

	l.current = r
	l.currentWidth = size
	l.offset += size

	l.currentLine = append(l.currentLine, r)

	if r == '\n' {
		l.line++
		l.currentLine = []rune{}
		l.column = 1
	} else {
		l.column++
	}
}

// peekAhead returns the next rune without advancing position.
func (l *Lexer) peekAhead() rune {
	if l.atEOF {
		return 0
	}

	b, err := l.reader.Peek(4)
	if err != nil && err != io.EOF {
		return 0
	}
	if len(b) == 0 {
		return 0
	}

	r, _ := utf8.DecodeRune(b)
	return r
}

// currentPos returns the position of the rune about to be read.
func (l *Lexer) currentPos() tokens.Pos {
	return tokens.Pos{
		Line:   l.line,
		Column: l.column,
		Offset: l.offset,
	}
}

// rangeFrom builds a Range spanning from start up to (but not including)
// the rune the lexer is now sitting on.
func (l *Lexer) rangeFrom(start tokens.Pos) tokens.Range {
	return tokens.Range{File: l.filename, From: start, To: l.currentPos()}
}

// skipWhitespace skips whitespace characters.
func (l *Lexer) skipWhitespace() {
	for unicode.IsSpace(l.current) {
		l.readRune()
	}
}

// readIdentifier reads an identifier or keyword.
func (l *Lexer) readIdentifier() string {
	var result strings.Builder

	for unicode.IsLetter(l.current) || unicode.IsDigit(l.current) || l.current == '_' {
		result.WriteRune(l.current)
		l.readRune()
	}

	return result.String()
}

// readNumber reads an integer or float.
func (l *Lexer) readNumber() (string, tokens.Kind) {
	result := bytes.NewBufferString("")
	kind := tokens.Int

	for unicode.IsDigit(l.current) {
		result.WriteRune(l.current)
		l.readRune()
	}

	if l.current == '.' && unicode.IsDigit(l.peekAhead()) {
		kind = tokens.Float
		result.WriteRune(l.current)
		l.readRune() // consume '.'
		for unicode.IsDigit(l.current) {
			result.WriteRune(l.current)
			l.readRune()
		}
	}

	return result.String(), kind
}

// readComment reads a '#' line comment. Whether it is a LineComment (it
// is the only thing on its line) or a TrailingComment (an expression
// precedes it on the same line) is decided from the lookback buffer —
// the same distinction the extractor needs to strip trailing comments
// without disturbing preceding ones.
func (l *Lexer) readComment() (tokens.Kind, string) {
	kind := tokens.LineComment
	result := bytes.NewBufferString("")

	lineBeforeHash := l.currentLine[:len(l.currentLine)-1]
	idxOfNotWhitespace := slices.IndexFunc(lineBeforeHash, func(r rune) bool {
		return !unicode.IsSpace(r)
	})
	if idxOfNotWhitespace != -1 {
		kind = tokens.TrailingComment
	}

	l.readRune() // consume '#'

	for l.current != '\n' && l.current != 0 {
		result.WriteRune(l.current)
		l.readRune()
	}

	return kind, strings.TrimSpace(result.String())
}

// readString reads a quoted string literal.
func (l *Lexer) readString() (string, error) {
	l.readRune() // skip opening quote

	var result strings.Builder
	for l.current != '"' && l.current != 0 {
		if l.current == '\\' {
			l.readRune()
			switch l.current {
			case '"', '\\', '/':
				result.WriteRune(l.current)
			case 'n':
				result.WriteRune('\n')
			case 't':
				result.WriteRune('\t')
			case 'r':
				result.WriteRune('\r')
			case 'b':
				result.WriteRune('\b')
			case 'f':
				result.WriteRune('\f')
			default:
				result.WriteRune(l.current)
			}
		} else {
			result.WriteRune(l.current)
		}
		l.readRune()
	}

	if l.current != '"' {
		return "", UnterminatedStringError(l.currentPos())
	}
	l.readRune() // skip closing quote

	return result.String(), nil
}

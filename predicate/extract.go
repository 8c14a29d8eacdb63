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

package predicate

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/worldrules/ruleexport/lexer"
	"github.com/worldrules/ruleexport/parser"
	"github.com/worldrules/ruleexport/tokens"
	"github.com/worldrules/ruleexport/xerr"
)

var bracketPairs = map[rune]rune{'(': ')', '[': ']', '{': '}'}

// ExtractExpression walks rawSource tracking bracket depth outside
// string literals and returns the expression text, cut at the first
// top-level '#' comment and with trailing whitespace removed.
// Multi-line lambdas are supported the same way: lines keep being
// consumed until every opened paren/bracket/brace has a matching
// close. An unmatched closer or a bracket that never closes is an
// error.
func ExtractExpression(rawSource string) (string, error) {
	depth := 0
	inString := rune(0)
	var escaped bool

	for i, r := range rawSource {
		if inString != 0 {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == inString:
				inString = 0
			}
			continue
		}

		switch r {
		case '"', '\'':
			inString = r
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return "", errors.Errorf("unbalanced brackets at offset %d", i)
			}
		case '#':
			if depth == 0 {
				return strings.TrimRight(rawSource[:i], " \t"), nil
			}
		}
	}

	if depth != 0 {
		return "", errors.New("unbalanced brackets: expression never closes")
	}
	return strings.TrimRight(rawSource, " \t\n"), nil
}

// StripTrailingComment removes a trailing "# ..." comment from source
// using the lexer's own tokenization rather than a regex, so that a
// '#' embedded inside a string literal survives untouched.
func StripTrailingComment(source string) (string, error) {
	toks, err := lexer.Tokenize(source, "<predicate>")
	if err != nil {
		return "", errors.Wrap(err, "tokenize predicate source for comment stripping")
	}

	var end tokens.Pos
	hasEnd := false
	for _, t := range toks {
		if t.Kind == tokens.TrailingComment || t.Kind == tokens.LineComment || t.Kind == tokens.EOF {
			break
		}
		end = t.Range.To
		hasEnd = true
	}
	if !hasEnd {
		return source, nil
	}
	if end.Offset >= len(source) {
		return source, nil
	}
	return source[:end.Offset], nil
}

// SourceExtractor implements §4.1: turn a Callable into either a
// parsed expression with its environment, or a serialized custom rule
// node, or a recorded ExtractionFailure.
type SourceExtractor struct {
	// Analyze lets custom predicate serializers recurse into nested
	// rules that are themselves lambdas rather than custom objects.
	Analyze Analyze
}

func NewSourceExtractor(analyze Analyze) *SourceExtractor {
	return &SourceExtractor{Analyze: analyze}
}

// Extract returns exactly one of (ast, nil) or (nil, serialized node)
// on success, or a non-nil error (always an xerr.ExtractionFailure or
// an *xerr wrapping a parse error) on failure.
func (e *SourceExtractor) Extract(c Callable) (*PredicateSource, rulegraph.Node, error) {
	if custom, ok := c.(CustomPredicate); ok {
		node, err := SerializeCustomPredicate(custom, e.Analyze)
		if err != nil {
			return nil, nil, err
		}
		return nil, node, nil
	}

	sc, ok := c.(SourceCallable)
	if !ok {
		return nil, nil, xerr.ErrExtraction(c.Name(), "predicate has no textual source and is not a known custom predicate class")
	}

	raw, err := sc.Source()
	if err != nil {
		return nil, nil, xerr.ErrExtraction(c.Name(), err.Error())
	}

	balanced, err := ExtractExpression(raw)
	if err != nil {
		return nil, nil, xerr.ErrExtraction(c.Name(), err.Error())
	}

	stripped, err := StripTrailingComment(balanced)
	if err != nil {
		return nil, nil, xerr.ErrExtraction(c.Name(), err.Error())
	}

	expr, err := parser.ParseExpression(stripped, c.Name())
	if err != nil {
		return nil, nil, xerr.ErrExtraction(c.Name(), "parse failed: "+err.Error())
	}

	return &PredicateSource{Expr: expr, Env: sc.Env()}, nil, nil
}

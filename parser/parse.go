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
	"github.com/pkg/errors"
	"github.com/worldrules/ruleexport/ast"
	"github.com/worldrules/ruleexport/tokens"
)

// ParseExpression parses the whole input as a single expression and
// requires it to consume every token — a predicate's reconstructed
// source is never more than one expression.
func ParseExpression(input, filename string) (ast.Expression, error) {
	p := NewParserFromString(input, filename)

	if !p.hasTokens() {
		return nil, errors.Wrapf(ErrParse, "empty predicate source at %s", filename)
	}

	expr := p.parseExpression(LOWEST)
	if p.err != nil {
		return nil, p.err
	}
	if expr == nil {
		return nil, errors.Wrapf(ErrParse, "failed to parse expression at %s", filename)
	}

	if p.current.Kind != tokens.EOF {
		return nil, errors.Wrapf(ErrParse, "unexpected trailing token %s at %s", p.current.Kind, p.current.Range)
	}

	return expr, nil
}

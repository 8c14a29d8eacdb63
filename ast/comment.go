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

package ast

import "github.com/worldrules/ruleexport/tokens"

// TrailingCommentExpression wraps an expression that had a '#' comment
// on the same line, after it. The analyzer unwraps it transparently;
// the comment text is kept only for diagnostics, never evaluated.
type TrailingCommentExpression struct {
	*baseNode
	Comment string
	Wrap    Expression
}

func NewTrailingCommentExpression(wrap Expression, comment string, span tokens.Range) *TrailingCommentExpression {
	return &TrailingCommentExpression{
		baseNode: &baseNode{Rnge: span, Kind_: "trailing_comment"},
		Comment:  comment,
		Wrap:     wrap,
	}
}

func (t *TrailingCommentExpression) String() string {
	return t.Wrap.String() + " # " + t.Comment
}

func (t *TrailingCommentExpression) expressionNode() {}

// PrecedingCommentExpression wraps an expression whose '#' comment sat
// alone on the line(s) immediately before it.
type PrecedingCommentExpression struct {
	*baseNode
	Comment string
	Wrap    Expression
}

func NewPrecedingCommentExpression(wrap Expression, comment string, span tokens.Range) *PrecedingCommentExpression {
	return &PrecedingCommentExpression{
		baseNode: &baseNode{Rnge: span, Kind_: "preceding_comment"},
		Comment:  comment,
		Wrap:     wrap,
	}
}

func (p *PrecedingCommentExpression) String() string {
	return "# " + p.Comment + "\n" + p.Wrap.String()
}

func (p *PrecedingCommentExpression) expressionNode() {}

var (
	_ Expression = &TrailingCommentExpression{}
	_ Expression = &PrecedingCommentExpression{}
)

// Unwrap strips any comment wrapper from an expression, returning the
// expression it annotates. Returns expr unchanged if it carries no
// comment.
func Unwrap(expr Expression) Expression {
	for {
		switch n := expr.(type) {
		case *TrailingCommentExpression:
			expr = n.Wrap
		case *PrecedingCommentExpression:
			expr = n.Wrap
		default:
			return expr
		}
	}
}

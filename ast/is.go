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

// IsDefinedExpression is "x is not null" as the analyzer's AST sees a
// captured closure variable defaulting check, e.g. state_var is defined.
type IsDefinedExpression struct {
	*baseNode
	Left Expression
}

func NewIsDefinedExpression(left Expression, span tokens.Range) *IsDefinedExpression {
	return &IsDefinedExpression{baseNode: &baseNode{Rnge: span, Kind_: "is_defined"}, Left: left}
}

func (e *IsDefinedExpression) String() string  { return e.Left.String() + " is defined" }
func (e *IsDefinedExpression) expressionNode() {}

// IsEmptyExpression is the analogue for an empty collection/string check.
type IsEmptyExpression struct {
	*baseNode
	Left Expression
}

func NewIsEmptyExpression(left Expression, span tokens.Range) *IsEmptyExpression {
	return &IsEmptyExpression{baseNode: &baseNode{Rnge: span, Kind_: "is_empty"}, Left: left}
}

func (e *IsEmptyExpression) String() string  { return e.Left.String() + " is empty" }
func (e *IsEmptyExpression) expressionNode() {}

var (
	_ Expression = &IsDefinedExpression{}
	_ Expression = &IsEmptyExpression{}
)

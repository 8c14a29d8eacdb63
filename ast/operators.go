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

// InfixExpression covers and/or/+-*/ //%/comparison/in/contains — every
// binary operator the grammar supports shares one node shape, dispatched
// on Operator.
type InfixExpression struct {
	*baseNode
	Left     Expression
	Operator string
	Right    Expression
}

func NewInfixExpression(left Expression, operator string, right Expression, span tokens.Range) *InfixExpression {
	return &InfixExpression{
		baseNode: &baseNode{Rnge: span, Kind_: "infix"},
		Left:     left,
		Operator: operator,
		Right:    right,
	}
}

func (e *InfixExpression) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

func (e *InfixExpression) expressionNode() {}

var _ Expression = &InfixExpression{}

// UnaryExpression covers "not x" and "-x".
type UnaryExpression struct {
	*baseNode
	Operator string
	Operand  Expression
}

func NewUnaryExpression(operator string, operand Expression, span tokens.Range) *UnaryExpression {
	return &UnaryExpression{
		baseNode: &baseNode{Rnge: span, Kind_: "unary"},
		Operator: operator,
		Operand:  operand,
	}
}

func (e *UnaryExpression) String() string {
	return "(" + e.Operator + " " + e.Operand.String() + ")"
}

func (e *UnaryExpression) expressionNode() {}

var _ Expression = &UnaryExpression{}

// TernaryExpression is "Consequent if Condition else Alternate" reshaped
// into cond ? cons : alt for the grammar's own surface syntax.
type TernaryExpression struct {
	*baseNode
	Condition  Expression
	Consequent Expression
	Alternate  Expression
}

func NewTernaryExpression(condition, consequent, alternate Expression, span tokens.Range) *TernaryExpression {
	return &TernaryExpression{
		baseNode:   &baseNode{Rnge: span, Kind_: "ternary"},
		Condition:  condition,
		Consequent: consequent,
		Alternate:  alternate,
	}
}

func (e *TernaryExpression) String() string {
	return "(" + e.Condition.String() + " ? " + e.Consequent.String() + " : " + e.Alternate.String() + ")"
}

func (e *TernaryExpression) expressionNode() {}

var _ Expression = &TernaryExpression{}

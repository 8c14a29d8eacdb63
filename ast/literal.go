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

import (
	"fmt"
	"strconv"

	"github.com/worldrules/ruleexport/tokens"
)

type NullLiteral struct {
	*baseNode
}

func NewNullLiteral(span tokens.Range) *NullLiteral {
	return &NullLiteral{baseNode: &baseNode{Rnge: span, Kind_: "null"}}
}

func (n *NullLiteral) String() string { return "null" }
func (n *NullLiteral) expressionNode() {}

type BoolLiteral struct {
	*baseNode
	Value bool
}

func NewBoolLiteral(value bool, span tokens.Range) *BoolLiteral {
	return &BoolLiteral{baseNode: &baseNode{Rnge: span, Kind_: "bool"}, Value: value}
}

func (b *BoolLiteral) String() string { return strconv.FormatBool(b.Value) }
func (b *BoolLiteral) expressionNode() {}

type IntegerLiteral struct {
	*baseNode
	Value int64
}

func NewIntegerLiteral(value int64, span tokens.Range) *IntegerLiteral {
	return &IntegerLiteral{baseNode: &baseNode{Rnge: span, Kind_: "int"}, Value: value}
}

func (i *IntegerLiteral) String() string { return fmt.Sprintf("%d", i.Value) }
func (i *IntegerLiteral) expressionNode() {}

type FloatLiteral struct {
	*baseNode
	Value float64
}

func NewFloatLiteral(value float64, span tokens.Range) *FloatLiteral {
	return &FloatLiteral{baseNode: &baseNode{Rnge: span, Kind_: "float"}, Value: value}
}

func (f *FloatLiteral) String() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }
func (f *FloatLiteral) expressionNode() {}

type StringLiteral struct {
	*baseNode
	Value string
}

func NewStringLiteral(value string, span tokens.Range) *StringLiteral {
	return &StringLiteral{baseNode: &baseNode{Rnge: span, Kind_: "string"}, Value: value}
}

func (s *StringLiteral) String() string { return strconv.Quote(s.Value) }
func (s *StringLiteral) expressionNode() {}

var (
	_ Expression = &NullLiteral{}
	_ Expression = &BoolLiteral{}
	_ Expression = &IntegerLiteral{}
	_ Expression = &FloatLiteral{}
	_ Expression = &StringLiteral{}
)

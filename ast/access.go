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

// FieldAccessExpression models a.b — state.received_count, region.name,
// a closure-captured object's attribute.
type FieldAccessExpression struct {
	*baseNode
	Left  Expression
	Field string
}

func NewFieldAccessExpression(left Expression, field string, span tokens.Range) *FieldAccessExpression {
	return &FieldAccessExpression{
		baseNode: &baseNode{Rnge: span, Kind_: "field_access"},
		Left:     left,
		Field:    field,
	}
}

func (f *FieldAccessExpression) String() string {
	return f.Left.String() + "." + f.Field
}

func (f *FieldAccessExpression) expressionNode() {}

var _ Expression = &FieldAccessExpression{}

// IndexAccessExpression models a[b] — a dict/list subscript.
type IndexAccessExpression struct {
	*baseNode
	Left  Expression
	Index Expression
}

func NewIndexAccessExpression(left Expression, index Expression, span tokens.Range) *IndexAccessExpression {
	return &IndexAccessExpression{
		baseNode: &baseNode{Rnge: span, Kind_: "index_access"},
		Left:     left,
		Index:    index,
	}
}

func (i *IndexAccessExpression) String() string {
	return i.Left.String() + "[" + i.Index.String() + "]"
}

func (i *IndexAccessExpression) expressionNode() {}

var _ Expression = &IndexAccessExpression{}

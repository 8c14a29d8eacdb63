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
	"strings"

	"github.com/worldrules/ruleexport/tokens"
)

// Quantifier is the shared shape of any/all/filter/map/distinct: a
// collection expression, one or two iterator bindings (value and an
// optional index), and a body expression evaluated per element — the
// direct analogue of a generator expression or comprehension clause.
type Quantifier struct {
	*baseNode
	Collection    Expression
	ValueIterator string
	IndexIterator string // optional, "" when absent
	Body          Expression
}

func newQuantifier(kind string, collection Expression, valueIter, indexIter string, body Expression, span tokens.Range) *Quantifier {
	return &Quantifier{
		baseNode:      &baseNode{Rnge: span, Kind_: kind},
		Collection:    collection,
		ValueIterator: valueIter,
		IndexIterator: indexIter,
		Body:          body,
	}
}

func NewAnyExpression(collection Expression, valueIter, indexIter string, predicate Expression, span tokens.Range) *Quantifier {
	return newQuantifier("any", collection, valueIter, indexIter, predicate, span)
}

func NewAllExpression(collection Expression, valueIter, indexIter string, predicate Expression, span tokens.Range) *Quantifier {
	return newQuantifier("all", collection, valueIter, indexIter, predicate, span)
}

func NewFilterExpression(collection Expression, valueIter, indexIter string, predicate Expression, span tokens.Range) *Quantifier {
	return newQuantifier("filter", collection, valueIter, indexIter, predicate, span)
}

func NewMapExpression(collection Expression, valueIter, indexIter string, transform Expression, span tokens.Range) *Quantifier {
	return newQuantifier("map", collection, valueIter, indexIter, transform, span)
}

func NewDistinctExpression(collection Expression, valueIter, indexIter string, selector Expression, span tokens.Range) *Quantifier {
	return newQuantifier("distinct", collection, valueIter, indexIter, selector, span)
}

func (q *Quantifier) String() string {
	b := strings.Builder{}
	b.WriteString(q.Kind_)
	b.WriteString(" ")
	b.WriteString(q.Collection.String())
	b.WriteString(" as ")
	b.WriteString(q.ValueIterator)
	if q.IndexIterator != "" {
		b.WriteString(", ")
		b.WriteString(q.IndexIterator)
	}
	b.WriteString(" { ")
	b.WriteString(q.Body.String())
	b.WriteString(" }")
	return b.String()
}

func (q *Quantifier) expressionNode() {}

var _ Expression = &Quantifier{}

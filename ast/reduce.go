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

// ReduceExpression is the fold form: reduce Collection from Seed as
// acc, value { Body }, the analogue of functools.reduce over a
// generator.
type ReduceExpression struct {
	*baseNode
	Collection    Expression
	Seed          Expression
	Accumulator   string
	ValueIterator string
	IndexIterator string // optional, "" when absent
	Body          Expression
}

func NewReduceExpression(collection, seed Expression, accumulator, valueIter, indexIter string, body Expression, span tokens.Range) *ReduceExpression {
	return &ReduceExpression{
		baseNode:      &baseNode{Rnge: span, Kind_: "reduce"},
		Collection:    collection,
		Seed:          seed,
		Accumulator:   accumulator,
		ValueIterator: valueIter,
		IndexIterator: indexIter,
		Body:          body,
	}
}

func (r *ReduceExpression) String() string {
	b := strings.Builder{}
	b.WriteString("reduce ")
	b.WriteString(r.Collection.String())
	b.WriteString(" from ")
	b.WriteString(r.Seed.String())
	b.WriteString(" as ")
	b.WriteString(r.Accumulator)
	b.WriteString(", ")
	b.WriteString(r.ValueIterator)
	if r.IndexIterator != "" {
		b.WriteString(", ")
		b.WriteString(r.IndexIterator)
	}
	b.WriteString(" { ")
	b.WriteString(r.Body.String())
	b.WriteString(" }")
	return b.String()
}

func (r *ReduceExpression) expressionNode() {}

var _ Expression = &ReduceExpression{}

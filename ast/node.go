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

// Package ast defines the node types of the predicate expression
// language: the tree the parser builds out of a callable's reconstructed
// source, and that the analyzer walks to produce a rule-graph fragment.
// A predicate is always a single expression — there is no statement
// grammar here.
package ast

import "github.com/worldrules/ruleexport/tokens"

type Node interface {
	String() string
	Span() tokens.Range
	Kind() string
}

type Expression interface {
	Node
	expressionNode()
}

// baseNode carries the two fields every node needs and is embedded by
// value types below instead of repeating Span/Kind on each of them.
type baseNode struct {
	Rnge  tokens.Range
	Kind_ string
}

func (b *baseNode) Span() tokens.Range {
	return b.Rnge
}

func (b *baseNode) Kind() string {
	return b.Kind_
}

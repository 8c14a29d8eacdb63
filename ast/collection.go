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

// ListLiteral is a literal list, e.g. [region1, region2] appearing
// directly in a predicate body (not the world-model-provided collection
// a quantifier iterates over).
type ListLiteral struct {
	*baseNode
	Elements []Expression
}

func NewListLiteral(elements []Expression, span tokens.Range) *ListLiteral {
	return &ListLiteral{baseNode: &baseNode{Rnge: span, Kind_: "list"}, Elements: elements}
}

func (l *ListLiteral) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *ListLiteral) expressionNode() {}

var _ Expression = &ListLiteral{}

// MapEntry is one key/value pair of a MapLiteral. Keys in this grammar
// are always plain identifiers or strings, matching an enum-keyed dict
// literal reconstructed from a closure's captured source.
type MapEntry struct {
	Key   string
	Value Expression
}

type MapLiteral struct {
	*baseNode
	Entries []MapEntry
}

func NewMapLiteral(entries []MapEntry, span tokens.Range) *MapLiteral {
	return &MapLiteral{baseNode: &baseNode{Rnge: span, Kind_: "map"}, Entries: entries}
}

func (m *MapLiteral) String() string {
	parts := make([]string, len(m.Entries))
	for i, entry := range m.Entries {
		parts[i] = entry.Key + ": " + entry.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (m *MapLiteral) expressionNode() {}

var _ Expression = &MapLiteral{}

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

// Identifier is a bare name: an iterator binding, a captured closure
// variable, or the receiver of a state_method/attribute chain.
type Identifier struct {
	*baseNode
	Value string
}

func NewIdentifier(value string, span tokens.Range) *Identifier {
	return &Identifier{
		baseNode: &baseNode{Rnge: span, Kind_: "identifier"},
		Value:    value,
	}
}

func (i *Identifier) String() string {
	return i.Value
}

func (i *Identifier) expressionNode() {}

var _ Expression = &Identifier{}

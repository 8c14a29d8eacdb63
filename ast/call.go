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

// CallExpression models func(args...) or recv.method(args...) — the
// shape of both state-access helpers (state.has, state.can_reach) and
// arbitrary state_method calls a game's handler recognizes.
type CallExpression struct {
	*baseNode
	Callee Expression
	Args   []Expression
}

func NewCallExpression(callee Expression, args []Expression, span tokens.Range) *CallExpression {
	return &CallExpression{
		baseNode: &baseNode{Rnge: span, Kind_: "call"},
		Callee:   callee,
		Args:     args,
	}
}

func (c *CallExpression) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

func (c *CallExpression) expressionNode() {}

var _ Expression = &CallExpression{}

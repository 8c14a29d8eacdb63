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

package analyzer

import "github.com/worldrules/ruleexport/rulegraph"

// listNodeName is the synthetic helper name translateExpr wraps a
// literal list in. It never reaches a frontend — every consumer that
// cares (has_all/has_any, quantifier source resolution) unwraps it
// before a rule tree is emitted, and a stray one surviving to output
// would be a bug in that consumer, not a legitimate rule shape.
const listNodeName = "__list__"

func newListNode(elements []rulegraph.Node) *rulegraph.HelperNode {
	return rulegraph.NewHelper(listNodeName, elements)
}

// asConstantList extracts a Go slice out of a node if it is either an
// already-folded constant list or our synthetic __list__ wrapper around
// constants, returning ok=false for anything else (an unresolved name,
// a list containing a non-constant element).
func asConstantList(n rulegraph.Node) ([]any, bool) {
	switch v := n.(type) {
	case *rulegraph.ConstantNode:
		elems, ok := v.Value.([]any)
		return elems, ok
	case *rulegraph.HelperNode:
		if v.Name != listNodeName {
			return nil, false
		}
		out := make([]any, len(v.Args))
		for i, arg := range v.Args {
			c, ok := arg.(*rulegraph.ConstantNode)
			if !ok {
				return nil, false
			}
			out[i] = c.Value
		}
		return out, true
	default:
		return nil, false
	}
}

// asConstantStringList is asConstantList narrowed to strings, the shape
// has_all/has_any need for their item-name lists.
func asConstantStringList(n rulegraph.Node) ([]string, bool) {
	elems, ok := asConstantList(n)
	if !ok {
		return nil, false
	}
	out := make([]string, len(elems))
	for i, e := range elems {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

func asConstantString(n rulegraph.Node) (string, bool) {
	c, ok := n.(*rulegraph.ConstantNode)
	if !ok {
		return "", false
	}
	s, ok := c.Value.(string)
	return s, ok
}

// asConstantInt reads an integer-ish constant, accepting the handful of
// Go numeric types toConstantValue / JSON decoding could have produced.
func asConstantInt(n rulegraph.Node) (int, bool) {
	c, ok := n.(*rulegraph.ConstantNode)
	if !ok {
		return 0, false
	}
	switch v := c.Value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// argIntOrDefault reads args[i] as a constant int, falling back to def
// when the argument is absent or unresolved — has/has_group's optional
// trailing count parameter.
func argIntOrDefault(args []rulegraph.Node, i int, def int) int {
	if i < 0 || i >= len(args) {
		return def
	}
	if n, ok := asConstantInt(args[i]); ok {
		return n
	}
	return def
}

// isTruthy mirrors the schema's own "or" truthiness rule (§5): any
// non-zero, non-empty, non-null, non-false value passes.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// withBinding returns a copy of env with name bound to value — quantifier
// and reduce translation never mutate the caller's environment, since
// the same env is reused across sibling elements/iterations.
func withBinding(env map[string]any, name string, value any) map[string]any {
	if name == "" {
		return env
	}
	out := make(map[string]any, len(env)+1)
	for k, v := range env {
		out[k] = v
	}
	out[name] = value
	return out
}

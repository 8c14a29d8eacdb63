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

package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worldrules/ruleexport/resolver"
	"github.com/worldrules/ruleexport/rulegraph"
)

type fakeEnum struct{ v string }

func (f fakeEnum) EnumValue() any { return f.v }

type fakeCoded struct{ code string }

func (f fakeCoded) Code() string { return f.code }

func TestResolve_NameFoldsFromEnv(t *testing.T) {
	r := resolver.New()
	node, err := r.Resolve(rulegraph.NewName("max_bombs"), map[string]any{"max_bombs": 10})
	require.NoError(t, err)
	c, ok := node.(*rulegraph.ConstantNode)
	require.True(t, ok)
	require.Equal(t, 10, c.Value)
}

func TestResolve_NameLeftUnresolvedWhenNotInEnv(t *testing.T) {
	r := resolver.New()
	node, err := r.Resolve(rulegraph.NewName("unknown"), map[string]any{})
	require.NoError(t, err)
	_, ok := node.(*rulegraph.NameNode)
	require.True(t, ok)
}

func TestResolve_AttributeFoldsFromStruct(t *testing.T) {
	type settings struct{ MaxBombs int }
	r := resolver.New()

	node, err := r.Resolve(
		rulegraph.NewAttribute(rulegraph.NewName("settings"), "MaxBombs"),
		map[string]any{"settings": settings{MaxBombs: 7}},
	)
	require.NoError(t, err)
	c, ok := node.(*rulegraph.ConstantNode)
	require.True(t, ok)
	require.Equal(t, 7, c.Value)
}

func TestResolve_AttributeLeavesUnfoldedWhenBaseUnresolved(t *testing.T) {
	r := resolver.New()
	node, err := r.Resolve(rulegraph.NewAttribute(rulegraph.NewName("unknown"), "field"), map[string]any{})
	require.NoError(t, err)
	attr, ok := node.(*rulegraph.AttributeNode)
	require.True(t, ok)
	require.Equal(t, "field", attr.Attr)
}

func TestResolve_SubscriptFoldsMapAndList(t *testing.T) {
	r := resolver.New()

	node, err := r.Resolve(
		rulegraph.NewSubscript(rulegraph.NewName("m"), rulegraph.NewConstant("key")),
		map[string]any{"m": map[string]any{"key": "value"}},
	)
	require.NoError(t, err)
	c := node.(*rulegraph.ConstantNode)
	require.Equal(t, "value", c.Value)

	node, err = r.Resolve(
		rulegraph.NewSubscript(rulegraph.NewName("l"), rulegraph.NewConstant(1)),
		map[string]any{"l": []any{"a", "b", "c"}},
	)
	require.NoError(t, err)
	c = node.(*rulegraph.ConstantNode)
	require.Equal(t, "b", c.Value)
}

func TestResolve_ConditionalSimplifiesOnConstantTest(t *testing.T) {
	r := resolver.New()

	node, err := r.Resolve(
		rulegraph.NewConditional(rulegraph.NewName("flag"), rulegraph.NewConstant("yes"), rulegraph.NewConstant("no")),
		map[string]any{"flag": true},
	)
	require.NoError(t, err)
	c := node.(*rulegraph.ConstantNode)
	require.Equal(t, "yes", c.Value)

	node, err = r.Resolve(
		rulegraph.NewConditional(rulegraph.NewName("flag"), rulegraph.NewConstant("yes"), rulegraph.NewConstant("no")),
		map[string]any{"flag": false},
	)
	require.NoError(t, err)
	c = node.(*rulegraph.ConstantNode)
	require.Equal(t, "no", c.Value)
}

func TestResolve_RecursesIntoAndOr(t *testing.T) {
	r := resolver.New()
	node, err := r.Resolve(
		rulegraph.NewAnd([]rulegraph.Node{
			rulegraph.NewName("a"),
			rulegraph.NewName("b"),
		}),
		map[string]any{"a": 1, "b": 2},
	)
	require.NoError(t, err)
	and := node.(*rulegraph.AndNode)
	require.Equal(t, 1, and.Conditions[0].(*rulegraph.ConstantNode).Value)
	require.Equal(t, 2, and.Conditions[1].(*rulegraph.ConstantNode).Value)
}

func TestResolve_AndShortCircuitsOnConstantFalse(t *testing.T) {
	r := resolver.New()
	node, err := r.Resolve(
		rulegraph.NewAnd([]rulegraph.Node{
			rulegraph.NewName("unresolved"),
			rulegraph.NewConstant(false),
		}),
		nil,
	)
	require.NoError(t, err)
	c := node.(*rulegraph.ConstantNode)
	require.Equal(t, false, c.Value)
}

func TestResolve_AndDropsConstantTrue(t *testing.T) {
	r := resolver.New()
	node, err := r.Resolve(
		rulegraph.NewAnd([]rulegraph.Node{
			rulegraph.NewConstant(true),
			rulegraph.NewName("has_sword"),
		}),
		nil,
	)
	require.NoError(t, err)
	and := node.(*rulegraph.AndNode)
	require.Len(t, and.Conditions, 1)
	require.IsType(t, &rulegraph.NameNode{}, and.Conditions[0])
}

func TestResolve_AndAllConstantFoldsToBool(t *testing.T) {
	r := resolver.New()
	node, err := r.Resolve(
		rulegraph.NewAnd([]rulegraph.Node{
			rulegraph.NewConstant(true),
			rulegraph.NewConstant(true),
		}),
		nil,
	)
	require.NoError(t, err)
	c := node.(*rulegraph.ConstantNode)
	require.Equal(t, true, c.Value)
}

func TestResolve_OrShortCircuitsOnConstantTrue(t *testing.T) {
	r := resolver.New()
	node, err := r.Resolve(
		rulegraph.NewOr([]rulegraph.Node{
			rulegraph.NewName("unresolved"),
			rulegraph.NewConstant(true),
		}),
		nil,
	)
	require.NoError(t, err)
	c := node.(*rulegraph.ConstantNode)
	require.Equal(t, true, c.Value)
}

func TestResolve_OrDropsConstantFalse(t *testing.T) {
	r := resolver.New()
	node, err := r.Resolve(
		rulegraph.NewOr([]rulegraph.Node{
			rulegraph.NewConstant(false),
			rulegraph.NewName("has_sword"),
		}),
		nil,
	)
	require.NoError(t, err)
	or := node.(*rulegraph.OrNode)
	require.Len(t, or.Conditions, 1)
	require.IsType(t, &rulegraph.NameNode{}, or.Conditions[0])
}

func TestResolve_NotFoldsConstantBool(t *testing.T) {
	r := resolver.New()
	node, err := r.Resolve(rulegraph.NewNot(rulegraph.NewConstant(true)), nil)
	require.NoError(t, err)
	c := node.(*rulegraph.ConstantNode)
	require.Equal(t, false, c.Value)
}

func TestResolve_NilNodeIsNil(t *testing.T) {
	r := resolver.New()
	node, err := r.Resolve(nil, nil)
	require.NoError(t, err)
	require.Nil(t, node)
}

func TestToConstantValue_EnumAndCoded(t *testing.T) {
	v, err := resolver.ToConstantValue(fakeEnum{v: "fire_rod"})
	require.NoError(t, err)
	require.Equal(t, "fire_rod", v)

	v, err = resolver.ToConstantValue(fakeCoded{code: "LW"})
	require.NoError(t, err)
	require.Equal(t, "LW", v)
}

func TestToConstantValue_SliceAndMap(t *testing.T) {
	v, err := resolver.ToConstantValue([]int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []any{1, 2, 3}, v)

	v, err = resolver.ToConstantValue(map[string]int{"a": 1})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": 1}, v)
}

func TestToConstantValue_UnresolvableFails(t *testing.T) {
	_, err := resolver.ToConstantValue(make(chan int))
	require.Error(t, err)
}

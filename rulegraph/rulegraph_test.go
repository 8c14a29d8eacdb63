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

package rulegraph_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worldrules/ruleexport/rulegraph"
)

func TestDecodeNode_Null(t *testing.T) {
	n, err := rulegraph.DecodeNode(nil)
	require.NoError(t, err)
	require.Nil(t, n)

	n, err = rulegraph.DecodeNode(json.RawMessage("null"))
	require.NoError(t, err)
	require.Nil(t, n)
}

func TestDecodeNode_UnknownType(t *testing.T) {
	_, err := rulegraph.DecodeNode(json.RawMessage(`{"type":"not_a_kind"}`))
	require.Error(t, err)
}

func TestDecodeNode_RoundTripsAnd(t *testing.T) {
	original := rulegraph.NewAnd([]rulegraph.Node{
		rulegraph.NewItemCheck("Sword", 1),
		rulegraph.NewRegionCheck("Light World"),
	})

	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := rulegraph.DecodeNode(data)
	require.NoError(t, err)

	and, ok := decoded.(*rulegraph.AndNode)
	require.True(t, ok)
	require.Len(t, and.Conditions, 2)

	item, ok := and.Conditions[0].(*rulegraph.ItemCheckNode)
	require.True(t, ok)
	require.Equal(t, "Sword", item.Item)

	region, ok := and.Conditions[1].(*rulegraph.RegionCheckNode)
	require.True(t, ok)
	require.Equal(t, "Light World", region.Region)
}

func TestDecodeNode_RoundTripsCompare(t *testing.T) {
	original := rulegraph.NewCompare(
		rulegraph.NewGroupCheck("rupees", 1),
		rulegraph.OpGte,
		rulegraph.NewConstant(float64(100)),
	)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := rulegraph.DecodeNode(data)
	require.NoError(t, err)

	cmp, ok := decoded.(*rulegraph.CompareNode)
	require.True(t, ok)
	require.Equal(t, rulegraph.OpGte, cmp.Op)
}

func TestDecodeNode_RoundTripsHelperAndStateMethod(t *testing.T) {
	helper := rulegraph.NewHelper("can_lift_rocks", []rulegraph.Node{rulegraph.NewConstant(true)})
	data, err := json.Marshal(helper)
	require.NoError(t, err)
	decoded, err := rulegraph.DecodeNode(data)
	require.NoError(t, err)
	h, ok := decoded.(*rulegraph.HelperNode)
	require.True(t, ok)
	require.Equal(t, "can_lift_rocks", h.Name)
	require.Len(t, h.Args, 1)

	method := rulegraph.NewStateMethod("has_sword", nil)
	data, err = json.Marshal(method)
	require.NoError(t, err)
	decoded, err = rulegraph.DecodeNode(data)
	require.NoError(t, err)
	sm, ok := decoded.(*rulegraph.StateMethodNode)
	require.True(t, ok)
	require.Equal(t, "has_sword", sm.Method)
}

func TestDecodeNode_RoundTripsQuantifiers(t *testing.T) {
	original := rulegraph.NewAllOf(
		rulegraph.NewItemCheck("Bottle", 1),
		&rulegraph.IteratorInfo{TargetVar: "item"},
	)
	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded, err := rulegraph.DecodeNode(data)
	require.NoError(t, err)

	allOf, ok := decoded.(*rulegraph.AllOfNode)
	require.True(t, ok)
	require.NotNil(t, allOf.IteratorInfo)
	require.Equal(t, "item", allOf.IteratorInfo.TargetVar)
}

func TestLocationRecord_RoundTripsNilAccessRule(t *testing.T) {
	original := rulegraph.LocationRecord{Name: "Link's House", Region: "Light World"}
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded rulegraph.LocationRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "Link's House", decoded.Name)
	require.Nil(t, decoded.AccessRule)
}

func TestRegionExit_RoundTripsRule(t *testing.T) {
	original := rulegraph.RegionExit{Target: "Dark World", Rule: rulegraph.NewConstant(true)}
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded rulegraph.RegionExit
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "Dark World", decoded.Target)

	c, ok := decoded.Rule.(*rulegraph.ConstantNode)
	require.True(t, ok)
	require.Equal(t, true, c.Value)
}

func TestNewDocument_InitializesAllTables(t *testing.T) {
	doc := rulegraph.NewDocument("Alttp", true)
	require.Equal(t, "Alttp", doc.Game)
	require.True(t, doc.AssumeBidirectionalExits)
	require.NotNil(t, doc.Items)
	require.NotNil(t, doc.Locations)
	require.NotNil(t, doc.Regions)
	require.NotNil(t, doc.Settings)
	require.NotNil(t, doc.StartRegions)
}

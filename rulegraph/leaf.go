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

package rulegraph

import "encoding/json"

func init() {
	register("constant", func(d json.RawMessage) (Node, error) { var n ConstantNode; err := json.Unmarshal(d, &n); return &n, err })
	register("item_check", func(d json.RawMessage) (Node, error) { var n ItemCheckNode; err := json.Unmarshal(d, &n); return &n, err })
	register("group_check", func(d json.RawMessage) (Node, error) { var n GroupCheckNode; err := json.Unmarshal(d, &n); return &n, err })
	register("group_unique_check", func(d json.RawMessage) (Node, error) { var n GroupUniqueCheckNode; err := json.Unmarshal(d, &n); return &n, err })
	register("location_check", func(d json.RawMessage) (Node, error) { var n LocationCheckNode; err := json.Unmarshal(d, &n); return &n, err })
	register("region_check", func(d json.RawMessage) (Node, error) { var n RegionCheckNode; err := json.Unmarshal(d, &n); return &n, err })
	register("can_reach_entrance", func(d json.RawMessage) (Node, error) { var n CanReachEntranceNode; err := json.Unmarshal(d, &n); return &n, err })
	register("name", func(d json.RawMessage) (Node, error) { var n NameNode; err := json.Unmarshal(d, &n); return &n, err })
}

// ConstantNode is a literal boolean/number/string/array/object value
// folded in by the resolver or emitted directly by the extractor.
type ConstantNode struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

func NewConstant(value any) *ConstantNode { return &ConstantNode{Type: "constant", Value: value} }
func (n *ConstantNode) Kind() string      { return "constant" }

// ItemCheckNode asks whether the player holds at least Count (default
// 1) of Item.
type ItemCheckNode struct {
	Type  string `json:"type"`
	Item  string `json:"item"`
	Count int    `json:"count,omitempty"`
}

func NewItemCheck(item string, count int) *ItemCheckNode {
	return &ItemCheckNode{Type: "item_check", Item: item, Count: count}
}
func (n *ItemCheckNode) Kind() string { return "item_check" }

// GroupCheckNode sums counts across every item in Group.
type GroupCheckNode struct {
	Type  string `json:"type"`
	Group string `json:"group"`
	Count int    `json:"count,omitempty"`
}

func NewGroupCheck(group string, count int) *GroupCheckNode {
	return &GroupCheckNode{Type: "group_check", Group: group, Count: count}
}
func (n *GroupCheckNode) Kind() string { return "group_check" }

// GroupUniqueCheckNode requires Count distinct items from Group.
type GroupUniqueCheckNode struct {
	Type  string `json:"type"`
	Group string `json:"group"`
	Count int    `json:"count"`
}

func NewGroupUniqueCheck(group string, count int) *GroupUniqueCheckNode {
	return &GroupUniqueCheckNode{Type: "group_unique_check", Group: group, Count: count}
}
func (n *GroupUniqueCheckNode) Kind() string { return "group_unique_check" }

// LocationCheckNode asks whether Location is currently accessible.
type LocationCheckNode struct {
	Type     string `json:"type"`
	Location string `json:"location"`
}

func NewLocationCheck(location string) *LocationCheckNode {
	return &LocationCheckNode{Type: "location_check", Location: location}
}
func (n *LocationCheckNode) Kind() string { return "location_check" }

// RegionCheckNode asks whether Region is currently accessible.
type RegionCheckNode struct {
	Type   string `json:"type"`
	Region string `json:"region"`
}

func NewRegionCheck(region string) *RegionCheckNode {
	return &RegionCheckNode{Type: "region_check", Region: region}
}
func (n *RegionCheckNode) Kind() string { return "region_check" }

// CanReachEntranceNode asks whether Entrance is currently accessible.
type CanReachEntranceNode struct {
	Type     string `json:"type"`
	Entrance string `json:"entrance"`
}

func NewCanReachEntrance(entrance string) *CanReachEntranceNode {
	return &CanReachEntranceNode{Type: "can_reach_entrance", Entrance: entrance}
}
func (n *CanReachEntranceNode) Kind() string { return "can_reach_entrance" }

// NameNode is an unresolved reference — emitted only when resolution
// genuinely fails. A frontend must special-case Name == "self" as a
// settings lookup rather than treating it as a resolution error.
type NameNode struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

func NewName(name string) *NameNode { return &NameNode{Type: "name", Name: name} }
func (n *NameNode) Kind() string    { return "name" }

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

// ItemRecord describes one item belonging to one player. Event items
// (Id == nil) are synthesized whenever a location places one and must
// still be exported.
type ItemRecord struct {
	Name        string   `json:"name"`
	ID          *int64   `json:"id"`
	Groups      []string `json:"groups"`
	Advancement bool     `json:"advancement"`
	Useful      bool     `json:"useful"`
	Trap        bool     `json:"trap"`
	Event       bool     `json:"event"`
	GameType    *string  `json:"type,omitempty"`
	MaxCount    int      `json:"max_count,omitempty"`
}

// LocationRecord describes one location belonging to one player. A nil
// AccessRule means "always accessible given the parent region is
// reachable".
type LocationRecord struct {
	Name             string `json:"name"`
	ID               *int64 `json:"id"`
	AccessRule       Node   `json:"access_rule"`
	ItemRule         Node   `json:"item_rule"`
	Item             string `json:"item,omitempty"`
	Region           string `json:"region"`
	ParentRegionName string `json:"parent_region_name"`
}

// MarshalJSON gives LocationRecord its rule-node fields explicit
// encode support, since Node values embedded in a struct marshal via
// their concrete type automatically but a nil interface must still
// serialize as JSON null rather than being omitted.
func (l LocationRecord) MarshalJSON() ([]byte, error) {
	type alias LocationRecord
	return json.Marshal(alias(l))
}

// UnmarshalJSON decodes access_rule/item_rule through DecodeNode so the
// resulting LocationRecord carries concrete rulegraph.Node values.
func (l *LocationRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name             string          `json:"name"`
		ID               *int64          `json:"id"`
		AccessRule       json.RawMessage `json:"access_rule"`
		ItemRule         json.RawMessage `json:"item_rule"`
		Item             string          `json:"item,omitempty"`
		Region           string          `json:"region"`
		ParentRegionName string          `json:"parent_region_name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	accessRule, err := DecodeNode(raw.AccessRule)
	if err != nil {
		return err
	}
	itemRule, err := DecodeNode(raw.ItemRule)
	if err != nil {
		return err
	}
	*l = LocationRecord{
		Name:             raw.Name,
		ID:               raw.ID,
		AccessRule:       accessRule,
		ItemRule:         itemRule,
		Item:             raw.Item,
		Region:           raw.Region,
		ParentRegionName: raw.ParentRegionName,
	}
	return nil
}

// RegionExit is one exit edge from a region, carrying the access rule
// that gates traversal to Target.
type RegionExit struct {
	Target string `json:"target"`
	Rule   Node   `json:"rule"`
}

func (e RegionExit) MarshalJSON() ([]byte, error) {
	type alias RegionExit
	return json.Marshal(alias(e))
}

func (e *RegionExit) UnmarshalJSON(data []byte) error {
	var raw struct {
		Target string          `json:"target"`
		Rule   json.RawMessage `json:"rule"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rule, err := DecodeNode(raw.Rule)
	if err != nil {
		return err
	}
	*e = RegionExit{Target: raw.Target, Rule: rule}
	return nil
}

// RegionRecord describes one region belonging to one player. Locations
// is a list of names, order-preserving — the frontend relies on stable
// iteration for diffing.
type RegionRecord struct {
	Name      string       `json:"name"`
	Exits     []RegionExit `json:"exits"`
	Locations []string     `json:"locations"`
}

// ProgressionMapping is an accumulator rule mapping many item names to
// a single virtual counter, e.g. "each N-coin item adds N to coins".
type ProgressionMapping struct {
	Type     string         `json:"type"`
	BaseItem string         `json:"base_item"`
	Items    map[string]int `json:"items"`
}

func NewAdditiveProgressionMapping(baseItem string, weights map[string]int) ProgressionMapping {
	return ProgressionMapping{Type: "additive", BaseItem: baseItem, Items: weights}
}

// Document is the root of the exported JSON document, keyed by player
// id (stringified) at the outer level of every per-player table.
type Document struct {
	Items                     map[string]map[string]ItemRecord  `json:"items"`
	Locations                 map[string][]LocationRecord        `json:"locations"`
	Regions                   map[string][]RegionRecord          `json:"regions"`
	Settings                  map[string]map[string]any          `json:"settings"`
	ProgressionMapping        map[string]map[string]ProgressionMapping `json:"progression_mapping"`
	StartRegions              map[string]string                  `json:"start_regions"`
	ItemNameGroups            map[string]map[string][]string     `json:"item_name_groups"`
	GameInfo                  map[string]map[string]any          `json:"game_info"`
	Game                      string                              `json:"game"`
	AssumeBidirectionalExits  bool                                `json:"assume_bidirectional_exits"`
}

// NewDocument returns a Document with every per-player table
// initialized, ready for an exporter to populate one player at a time.
func NewDocument(game string, assumeBidirectionalExits bool) *Document {
	return &Document{
		Items:                    map[string]map[string]ItemRecord{},
		Locations:                map[string][]LocationRecord{},
		Regions:                  map[string][]RegionRecord{},
		Settings:                 map[string]map[string]any{},
		ProgressionMapping:       map[string]map[string]ProgressionMapping{},
		StartRegions:             map[string]string{},
		ItemNameGroups:           map[string]map[string][]string{},
		GameInfo:                 map[string]map[string]any{},
		Game:                     game,
		AssumeBidirectionalExits: assumeBidirectionalExits,
	}
}

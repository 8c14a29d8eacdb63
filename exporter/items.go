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

package exporter

import (
	"sort"

	"github.com/worldrules/ruleexport/rulegraph"
	"github.com/worldrules/ruleexport/worldmodel"
)

// collectItems assembles a player's item table (§4.5 step 4): every
// registry item, plus event items synthesized for placed items lacking
// an id. Precollected items not present in the registry are reported
// as missing rather than silently skipped.
func collectItems(world *worldmodel.World, diags *Diagnostics) map[string]rulegraph.ItemRecord {
	items := make(map[string]rulegraph.ItemRecord, len(world.Items.All()))

	for _, it := range world.Items.All() {
		items[it.Name] = toItemRecord(it, false)
	}

	for _, region := range world.Graph.Regions() {
		for _, loc := range region.Locations {
			if loc.PlacedItem == nil {
				continue
			}
			if _, exists := items[loc.PlacedItem.Name]; exists {
				continue
			}
			items[loc.PlacedItem.Name] = toItemRecord(loc.PlacedItem, loc.PlacedItem.ID == nil)
		}
	}

	for _, name := range world.PrecollectedItems {
		if _, ok := items[name]; !ok {
			diags.missingItem(world.Game, name)
		}
	}

	return items
}

func toItemRecord(it *worldmodel.Item, event bool) rulegraph.ItemRecord {
	groups := make([]string, 0, len(it.Groups))
	for g := range it.Groups {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return rulegraph.ItemRecord{
		Name:        it.Name,
		ID:          it.ID,
		Groups:      groups,
		Advancement: it.Advancement,
		Useful:      it.Useful,
		Trap:        it.Trap,
		Event:       event,
		GameType:    it.GameType,
		MaxCount:    it.MaxCount,
	}
}

// itemNameGroups inverts the item table's group membership into the
// group→[]name shape the document's item_name_groups block carries.
func itemNameGroups(items map[string]rulegraph.ItemRecord) map[string][]string {
	groups := map[string][]string{}
	for name, rec := range items {
		for _, g := range rec.Groups {
			groups[g] = append(groups[g], name)
		}
	}
	sortedGroupNames(groups)
	return groups
}

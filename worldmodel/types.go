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

// Package worldmodel is the input side of the compiler: the game
// plugin data the exporter walks. These types are held by reference,
// never owned or mutated except through the documented game-handler
// hooks (§3.3) — the compiler does not retain them after export.
package worldmodel

import "github.com/worldrules/ruleexport/predicate"

// Item describes one item definition belonging to a world's registry.
// Count-less items have ID == nil only when they are synthesized event
// items at export time — a World's own ItemRegistry entries always
// carry a real ID.
type Item struct {
	Name        string
	ID          *int64
	Advancement bool
	Useful      bool
	Trap        bool
	Groups      map[string]struct{}
	GameType    *string
	MaxCount    int
}

// InGroup reports whether the item belongs to the named group.
func (i *Item) InGroup(group string) bool {
	_, ok := i.Groups[group]
	return ok
}

// Location is one checkable spot in a region. A nil AccessRule means
// "always accessible given the parent region is reachable". ID == nil
// marks an event location.
type Location struct {
	Name             string
	ID               *int64
	PlacedItem       *Item
	AccessRule       predicate.Callable
	ItemRule         predicate.Callable
	ParentRegionName string
}

// Entrance is a directed edge from one region to another, gated by an
// optional access rule. Name defaults to "<Source> -> <Target>" when a
// world does not declare an explicit entrance name.
type Entrance struct {
	Name       string
	Source     string
	Target     string
	AccessRule predicate.Callable
}

// DefaultName synthesizes "Source -> Target" when a world provides no
// explicit entrance name.
func (e *Entrance) DefaultName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Source + " -> " + e.Target
}

// Region is a named collection of locations with exits to other
// regions.
type Region struct {
	Name      string
	Exits     []*Entrance
	Locations []*Location
}

// ItemRegistry is a world's catalogue of definable items, independent
// of where any of them end up being placed.
type ItemRegistry struct {
	byName map[string]*Item
	order  []string
}

func NewItemRegistry() *ItemRegistry {
	return &ItemRegistry{byName: make(map[string]*Item)}
}

func (r *ItemRegistry) Add(item *Item) {
	if _, exists := r.byName[item.Name]; !exists {
		r.order = append(r.order, item.Name)
	}
	r.byName[item.Name] = item
}

func (r *ItemRegistry) Get(name string) (*Item, bool) {
	item, ok := r.byName[name]
	return item, ok
}

func (r *ItemRegistry) All() []*Item {
	out := make([]*Item, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// World is one game instance inside a multi-world seed.
type World struct {
	Game           string
	PlayerID       int
	Options        map[string]any
	OriginRegion   string
	Graph          *RegionGraph
	Items          *ItemRegistry
	PrecollectedItems []string

	// Auxiliary holds game-specific export-time data a handler wants
	// carried through (progression tables, precomputed attributes);
	// opaque to the exporter itself.
	Auxiliary map[string]any

	// Logic is a handler-attached live instance (e.g. world.logic in
	// §4.4's prepare_closure_vars) consulted by predicate environments
	// during analysis. The exporter never reads it directly and must
	// not rely on it after emission (§5).
	Logic any
}

func NewWorld(game string, playerID int) *World {
	return &World{
		Game:      game,
		PlayerID:  playerID,
		Options:   map[string]any{},
		Graph:     NewRegionGraph(),
		Items:     NewItemRegistry(),
		Auxiliary: map[string]any{},
	}
}

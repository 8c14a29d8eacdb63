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

package loader

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/worldrules/ruleexport/predicate"
	"github.com/worldrules/ruleexport/worldmodel"
)

// WorldFileSuffix marks a file as a serialized world document — the
// generator's in-memory world object, written to disk at the boundary
// this compiler treats as external (§3.1).
const WorldFileSuffix = ".world.json"

// jsonRule adapts a world document's textual rule (source plus closure
// environment) to predicate.SourceCallable, the shape the extractor
// expects of any predicate with recoverable source text (§4.1).
type jsonRule struct {
	name   string
	source string
	env    map[string]any
}

func (r *jsonRule) Name() string              { return r.name }
func (r *jsonRule) Source() (string, error)   { return r.source, nil }
func (r *jsonRule) Env() map[string]any       { return r.env }

var _ predicate.SourceCallable = (*jsonRule)(nil)

type ruleDoc struct {
	Source string         `json:"source"`
	Env    map[string]any `json:"env,omitempty"`
}

func (r *ruleDoc) toCallable(name string) predicate.Callable {
	if r == nil {
		return nil
	}
	return &jsonRule{name: name, source: r.Source, env: r.Env}
}

type itemDoc struct {
	Name        string   `json:"name"`
	ID          *int64   `json:"id"`
	Advancement bool     `json:"advancement"`
	Useful      bool     `json:"useful"`
	Trap        bool     `json:"trap"`
	Groups      []string `json:"groups,omitempty"`
	GameType    *string  `json:"game_type,omitempty"`
	MaxCount    int      `json:"max_count,omitempty"`
}

func (it *itemDoc) toItem() *worldmodel.Item {
	groups := make(map[string]struct{}, len(it.Groups))
	for _, g := range it.Groups {
		groups[g] = struct{}{}
	}
	return &worldmodel.Item{
		Name:        it.Name,
		ID:          it.ID,
		Advancement: it.Advancement,
		Useful:      it.Useful,
		Trap:        it.Trap,
		Groups:      groups,
		GameType:    it.GameType,
		MaxCount:    it.MaxCount,
	}
}

type locationDoc struct {
	Name       string   `json:"name"`
	ID         *int64   `json:"id"`
	PlacedItem string   `json:"placed_item,omitempty"`
	AccessRule *ruleDoc `json:"access_rule,omitempty"`
	ItemRule   *ruleDoc `json:"item_rule,omitempty"`
}

type entranceDoc struct {
	Name       string   `json:"name,omitempty"`
	Target     string   `json:"target"`
	AccessRule *ruleDoc `json:"access_rule,omitempty"`
}

type regionDoc struct {
	Name      string        `json:"name"`
	Locations []locationDoc `json:"locations,omitempty"`
	Exits     []entranceDoc `json:"exits,omitempty"`
}

type worldDoc struct {
	Game              string         `json:"game"`
	PlayerID          int            `json:"player_id"`
	Options           map[string]any `json:"options,omitempty"`
	OriginRegion      string         `json:"origin_region,omitempty"`
	PrecollectedItems []string       `json:"precollected_items,omitempty"`
	Items             []itemDoc      `json:"items,omitempty"`
	Regions           []regionDoc    `json:"regions"`
}

// LoadWorld parses one serialized world document into a worldmodel.World.
func LoadWorld(path string) (*worldmodel.World, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read world file %s", path)
	}

	var doc worldDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, errors.Wrapf(err, "parse world file %s", path)
	}

	world := worldmodel.NewWorld(doc.Game, doc.PlayerID)
	world.Options = doc.Options
	world.OriginRegion = doc.OriginRegion
	world.PrecollectedItems = doc.PrecollectedItems

	itemsByName := make(map[string]*worldmodel.Item, len(doc.Items))
	for _, it := range doc.Items {
		item := it.toItem()
		world.Items.Add(item)
		itemsByName[item.Name] = item
	}

	for _, r := range doc.Regions {
		region := &worldmodel.Region{Name: r.Name}
		for _, l := range r.Locations {
			loc := &worldmodel.Location{
				Name:             l.Name,
				ID:               l.ID,
				AccessRule:       l.AccessRule.toCallable(l.Name + "#access"),
				ItemRule:         l.ItemRule.toCallable(l.Name + "#item"),
				ParentRegionName: r.Name,
			}
			if l.PlacedItem != "" {
				if item, ok := itemsByName[l.PlacedItem]; ok {
					loc.PlacedItem = item
				} else {
					loc.PlacedItem = &worldmodel.Item{Name: l.PlacedItem}
				}
			}
			region.Locations = append(region.Locations, loc)
		}
		for _, e := range r.Exits {
			entrance := &worldmodel.Entrance{
				Name:       e.Name,
				Source:     r.Name,
				Target:     e.Target,
				AccessRule: e.AccessRule.toCallable(r.Name + " -> " + e.Target),
			}
			region.Exits = append(region.Exits, entrance)
		}
		world.Graph.AddRegion(region)
	}

	return world, nil
}

// LoadWorlds loads every world document the caller named explicitly
// (world_list, §6.5); when names is empty it discovers every
// *.world.json file directly under root instead, sorted for
// deterministic export order.
func LoadWorlds(ctx context.Context, root string, names []string) ([]*worldmodel.World, error) {
	paths := names
	if len(paths) == 0 {
		discovered, err := discoverWorldFiles(root)
		if err != nil {
			return nil, err
		}
		paths = discovered
	}

	worlds := make([]*worldmodel.World, 0, len(paths))
	for _, p := range paths {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		world, err := LoadWorld(p)
		if err != nil {
			return nil, err
		}
		worlds = append(worlds, world)
	}
	return worlds, nil
}

func discoverWorldFiles(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "read world directory %s", root)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == "" {
			continue
		}
		if len(e.Name()) > len(WorldFileSuffix) && e.Name()[len(e.Name())-len(WorldFileSuffix):] == WorldFileSuffix {
			paths = append(paths, filepath.Join(root, e.Name()))
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, errors.Errorf("no %s files found under %s", WorldFileSuffix, root)
	}
	return paths, nil
}

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

// Package exporter implements §4.5's orchestration: walk every world,
// consult the handler registry at each well-defined point, analyze
// every rule, and assemble the JSON document. One Exporter serves one
// call to Export; it keeps no state between calls, so parallel exports
// need only construct separate Exporters (§9: no singletons).
package exporter

import (
	"context"
	"strconv"

	"github.com/binaek/gocoll/collection"

	"github.com/worldrules/ruleexport/analyzer"
	"github.com/worldrules/ruleexport/handler"
	"github.com/worldrules/ruleexport/predicate"
	"github.com/worldrules/ruleexport/resolver"
	"github.com/worldrules/ruleexport/rulegraph"
	"github.com/worldrules/ruleexport/worldmodel"
	"github.com/worldrules/ruleexport/xerr"
)

// Exporter is the per-export orchestrator. It keeps no state of its
// own between calls to Export — callers needing parallel exports just
// construct one Exporter per call (§9: no singletons).
type Exporter struct {
	Handlers                 *handler.Registry
	Analyzer                 *analyzer.Analyzer
	AssumeBidirectionalExits bool

	// DeclaredHelpers, when non-nil, is the manifest's declared helper
	// name list (§4 supplemented feature). An emitted helper{} node
	// whose name isn't on this list produces a warning, never a
	// failure. Nil means "no manifest declaration" and skips the check.
	DeclaredHelpers []string
}

func New(handlers *handler.Registry, an *analyzer.Analyzer, assumeBidirectionalExits bool) *Exporter {
	return &Exporter{Handlers: handlers, Analyzer: an, AssumeBidirectionalExits: assumeBidirectionalExits}
}

// Export walks every world (one per player of the same game in a
// multi-world seed) and assembles one Document plus the accumulated
// diagnostics. A SchemaViolation returned by any handler hook aborts
// the whole export immediately (§7.4) — every other analysis failure
// degrades to a null rule and a warning.
func (x *Exporter) Export(ctx context.Context, game string, worlds []*worldmodel.World) (*rulegraph.Document, *Diagnostics, error) {
	doc := rulegraph.NewDocument(game, x.AssumeBidirectionalExits)
	diags := &Diagnostics{}

	for _, world := range worlds {
		if err := x.exportWorld(ctx, world, doc, diags); err != nil {
			return nil, diags, err
		}
	}
	return doc, diags, nil
}

func (x *Exporter) exportWorld(ctx context.Context, world *worldmodel.World, doc *rulegraph.Document, diags *Diagnostics) error {
	h := x.Handlers.For(world.Game)
	player := strconv.Itoa(world.PlayerID)

	if prep, ok := h.(handler.ClosureVarPreparer); ok {
		if err := prep.PrepareClosureVars(world); err != nil {
			return xerr.ErrSchemaViolation("prepare_closure_vars", err.Error())
		}
	}
	if post, ok := h.(handler.RegionPostprocessor); ok {
		if err := post.PostprocessRegions(world); err != nil {
			return xerr.ErrSchemaViolation("postprocess_regions", err.Error())
		}
	}

	regionRecords := make([]rulegraph.RegionRecord, 0, len(world.Graph.Regions()))
	locationRecords := make([]rulegraph.LocationRecord, 0)

	for _, region := range world.Graph.Regions() {
		for _, loc := range region.Locations {
			record, err := x.exportLocation(ctx, world, h, loc, region.Name, diags)
			if err != nil {
				return err
			}
			locationRecords = append(locationRecords, record)
		}
		locNames := collection.Map(collection.From(region.Locations...), func(l *worldmodel.Location) string { return l.Name }).Elements()

		exits := make([]rulegraph.RegionExit, 0, len(region.Exits))
		for _, entrance := range region.Exits {
			rule, err := x.exportEntrance(ctx, world, h, entrance, diags)
			if err != nil {
				return err
			}
			exits = append(exits, rulegraph.RegionExit{Target: entrance.Target, Rule: rule})
		}

		regionRecords = append(regionRecords, rulegraph.RegionRecord{
			Name:      region.Name,
			Exits:     exits,
			Locations: locNames,
		})
	}
	sortLocationRecords(locationRecords)

	items := collectItems(world, diags)
	x.checkReferencedNames(world, locationRecords, regionRecords, items, diags)

	settings, err := x.settingsData(h, world)
	if err != nil {
		return err
	}
	gameInfo, err := x.gameInfo(h, world)
	if err != nil {
		return err
	}
	progression, err := x.progressionMapping(h, world)
	if err != nil {
		return err
	}

	startRegion, ok := resolveStartRegion(world)
	if !ok {
		diags.warn(DiagUnknownPredicateShape, world.Game, "", "", "no start region: no declared origin, no unique no-inbound region, and no \"Menu\" region")
	}

	doc.Items[player] = items
	doc.Locations[player] = locationRecords
	doc.Regions[player] = regionRecords
	doc.Settings[player] = settings
	doc.GameInfo[player] = gameInfo
	doc.ProgressionMapping[player] = progression
	doc.StartRegions[player] = startRegion
	doc.ItemNameGroups[player] = itemNameGroups(items)
	return nil
}

func (x *Exporter) exportLocation(ctx context.Context, world *worldmodel.World, h handler.GameHandler, loc *worldmodel.Location, regionName string, diags *Diagnostics) (rulegraph.LocationRecord, error) {
	accessRule, err := x.resolveLocationAccessRule(ctx, world, h, loc, diags)
	if err != nil {
		return rulegraph.LocationRecord{}, err
	}
	accessRule, err = x.postAnalyze(world, h, accessRule, handler.RuleContext{LocationName: loc.Name})
	if err != nil {
		return rulegraph.LocationRecord{}, err
	}

	itemRule, err := x.analyzeOptional(ctx, world, loc.ItemRule, loc.Name, diags, loc.Name, "")
	if err != nil {
		return rulegraph.LocationRecord{}, err
	}
	itemRule, err = x.postAnalyze(world, h, itemRule, handler.RuleContext{LocationName: loc.Name})
	if err != nil {
		return rulegraph.LocationRecord{}, err
	}

	itemName := ""
	if loc.PlacedItem != nil {
		itemName = loc.PlacedItem.Name
	}

	return rulegraph.LocationRecord{
		Name:             loc.Name,
		ID:               loc.ID,
		AccessRule:       accessRule,
		ItemRule:         itemRule,
		Item:             itemName,
		Region:           regionName,
		ParentRegionName: loc.ParentRegionName,
	}, nil
}

// resolveLocationAccessRule implements §9's fixed precedence: a custom
// rule provider wins over an analysis override, which wins over the
// generic analyzer.
func (x *Exporter) resolveLocationAccessRule(ctx context.Context, world *worldmodel.World, h handler.GameHandler, loc *worldmodel.Location, diags *Diagnostics) (rulegraph.Node, error) {
	if provider, ok := h.(handler.CustomLocationRuleProvider); ok {
		node, handled, err := provider.GetCustomLocationAccessRule(loc, world)
		if err != nil {
			return nil, xerr.ErrSchemaViolation("get_custom_location_access_rule", err.Error())
		}
		if handled {
			return node, nil
		}
	}
	if overrider, ok := h.(handler.RuleAnalysisOverrider); ok && loc.AccessRule != nil {
		node, handled, err := overrider.OverrideRuleAnalysis(loc.Name, loc.AccessRule)
		if err != nil {
			return nil, xerr.ErrSchemaViolation("override_rule_analysis", err.Error())
		}
		if handled {
			return node, nil
		}
	}
	return x.analyzeOptional(ctx, world, loc.AccessRule, loc.Name, diags, loc.Name, "")
}

func (x *Exporter) exportEntrance(ctx context.Context, world *worldmodel.World, h handler.GameHandler, entrance *worldmodel.Entrance, diags *Diagnostics) (rulegraph.Node, error) {
	name := entrance.DefaultName()

	var node rulegraph.Node
	var err error
	if overrider, ok := h.(handler.RuleAnalysisOverrider); ok && entrance.AccessRule != nil {
		var handled bool
		node, handled, err = overrider.OverrideRuleAnalysis(name, entrance.AccessRule)
		if err != nil {
			return nil, xerr.ErrSchemaViolation("override_rule_analysis", err.Error())
		}
		if !handled {
			node, err = x.analyzeOptional(ctx, world, entrance.AccessRule, "", diags, "", name)
		}
	} else {
		node, err = x.analyzeOptional(ctx, world, entrance.AccessRule, "", diags, "", name)
	}
	if err != nil {
		return nil, err
	}
	return x.postAnalyze(world, h, node, handler.RuleContext{EntranceName: name})
}

// analyzeOptional runs the generic analyzer for a rule that may be
// nil (nil means "always accessible", §3.2), degrading any analysis
// failure to a null rule plus a warning (§4.3 Failure, §7).
func (x *Exporter) analyzeOptional(ctx context.Context, world *worldmodel.World, rule predicate.Callable, locationContext string, diags *Diagnostics, locationName, entranceName string) (rulegraph.Node, error) {
	if rule == nil {
		return nil, nil
	}
	node, err := x.Analyzer.Analyze(ctx, world, rule, locationContext)
	if err != nil {
		diags.classifyAnalysisError(err, world.Game, locationName, entranceName)
		return nil, nil
	}
	return node, nil
}

// postAnalyze runs the handler's expand pass, then §4.2's resolver
// pass, then the handler's postprocess pass (with richer context), in
// the order §4.5 names. A handler post-pass running on a nil rule is
// skipped — there is nothing to expand.
func (x *Exporter) postAnalyze(world *worldmodel.World, h handler.GameHandler, node rulegraph.Node, ruleCtx handler.RuleContext) (rulegraph.Node, error) {
	if node == nil {
		return nil, nil
	}

	if expander, ok := h.(handler.RuleExpander); ok {
		expanded, err := expander.ExpandRule(node)
		if err != nil {
			return nil, xerr.ErrSchemaViolation("expand_rule", err.Error())
		}
		node = expanded
	}

	resolved, err := resolver.New().Resolve(node, nil)
	if err != nil {
		return nil, err
	}
	node = resolved

	if post, ok := h.(handler.RulePostprocessor); ok {
		postprocessed, err := post.PostprocessRule(node, ruleCtx)
		if err != nil {
			return nil, xerr.ErrSchemaViolation("postprocess_rule", err.Error())
		}
		node = postprocessed
	}
	return node, nil
}

func (x *Exporter) settingsData(h handler.GameHandler, world *worldmodel.World) (map[string]any, error) {
	if provider, ok := h.(handler.SettingsProvider); ok {
		m, err := provider.GetSettingsData(world)
		if err != nil {
			return nil, xerr.ErrSchemaViolation("get_settings_data", err.Error())
		}
		return m, nil
	}
	return map[string]any{}, nil
}

func (x *Exporter) gameInfo(h handler.GameHandler, world *worldmodel.World) (map[string]any, error) {
	if provider, ok := h.(handler.GameInfoProvider); ok {
		m, err := provider.GetGameInfo(world)
		if err != nil {
			return nil, xerr.ErrSchemaViolation("get_game_info", err.Error())
		}
		return m, nil
	}
	return map[string]any{}, nil
}

func (x *Exporter) progressionMapping(h handler.GameHandler, world *worldmodel.World) (map[string]rulegraph.ProgressionMapping, error) {
	if provider, ok := h.(handler.ProgressionMappingProvider); ok {
		m, err := provider.GetProgressionMapping(world)
		if err != nil {
			return nil, xerr.ErrSchemaViolation("get_progression_mapping", err.Error())
		}
		return m, nil
	}
	return map[string]rulegraph.ProgressionMapping{}, nil
}

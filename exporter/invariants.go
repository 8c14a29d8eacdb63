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
	"github.com/worldrules/ruleexport/rulegraph"
	"github.com/worldrules/ruleexport/worldmodel"
)

// referenceChecker closes over one world's known names so the
// recursive rule-tree walk doesn't have to thread five maps through
// every call.
type referenceChecker struct {
	game            string
	items           map[string]rulegraph.ItemRecord
	locations       map[string]struct{}
	regions         map[string]struct{}
	entrances       map[string]struct{}
	declaredHelpers []string
	diags           *Diagnostics
}

// checkReferencedNames walks every emitted rule node and confirms
// every item/location/region/entrance name it mentions exists in this
// world's own tables (§3.3), and that any helper{} node's name is on
// the manifest's declared helper list when one was given (§4
// supplemented feature). It never aborts the export — only records a
// diagnostic per unresolved or unknown reference (§7.5).
func (x *Exporter) checkReferencedNames(world *worldmodel.World, locations []rulegraph.LocationRecord, regions []rulegraph.RegionRecord, items map[string]rulegraph.ItemRecord, diags *Diagnostics) {
	rc := &referenceChecker{
		game:            world.Game,
		items:           items,
		locations:       map[string]struct{}{},
		regions:         map[string]struct{}{},
		entrances:       map[string]struct{}{},
		declaredHelpers: x.DeclaredHelpers,
		diags:           diags,
	}
	for _, l := range locations {
		rc.locations[l.Name] = struct{}{}
	}
	for _, r := range regions {
		rc.regions[r.Name] = struct{}{}
	}
	for _, r := range world.Graph.Regions() {
		for _, e := range r.Exits {
			rc.entrances[e.DefaultName()] = struct{}{}
		}
	}

	for _, l := range locations {
		rc.walk(l.AccessRule)
		rc.walk(l.ItemRule)
	}
	for _, r := range regions {
		for _, e := range r.Exits {
			rc.walk(e.Rule)
		}
	}
}

func (rc *referenceChecker) walk(node rulegraph.Node) {
	if node == nil {
		return
	}
	switch n := node.(type) {
	case *rulegraph.ItemCheckNode:
		if _, ok := rc.items[n.Item]; !ok {
			rc.diags.missingItem(rc.game, n.Item)
		}
	case *rulegraph.LocationCheckNode:
		if _, ok := rc.locations[n.Location]; !ok {
			rc.diags.warn(DiagMissingItem, rc.game, "", "", "references undeclared location "+n.Location)
		}
	case *rulegraph.RegionCheckNode:
		if _, ok := rc.regions[n.Region]; !ok {
			rc.diags.warn(DiagMissingItem, rc.game, "", "", "references undeclared region "+n.Region)
		}
	case *rulegraph.CanReachEntranceNode:
		if _, ok := rc.entrances[n.Entrance]; !ok {
			rc.diags.warn(DiagMissingItem, rc.game, "", "", "references undeclared entrance "+n.Entrance)
		}
	case *rulegraph.AndNode:
		rc.walkAll(n.Conditions)
	case *rulegraph.OrNode:
		rc.walkAll(n.Conditions)
	case *rulegraph.NotNode:
		rc.walk(n.Condition)
	case *rulegraph.CompareNode:
		rc.walk(n.Left)
		rc.walk(n.Right)
	case *rulegraph.BinaryOpNode:
		rc.walk(n.Left)
		rc.walk(n.Right)
	case *rulegraph.UnaryOpNode:
		rc.walk(n.Operand)
	case *rulegraph.ConditionalNode:
		rc.walk(n.Test)
		rc.walk(n.IfTrue)
		rc.walk(n.IfFalse)
	case *rulegraph.AttributeNode:
		rc.walk(n.Object)
	case *rulegraph.SubscriptNode:
		rc.walk(n.Value)
		rc.walk(n.Index)
	case *rulegraph.HelperNode:
		if rc.declaredHelpers != nil && !containsHelperName(rc.declaredHelpers, n.Name) {
			rc.diags.unknownHelper(rc.game, "", "", n.Name)
		}
		rc.walkAll(n.Args)
	case *rulegraph.StateMethodNode:
		rc.walkAll(n.Args)
	case *rulegraph.AllOfNode:
		rc.walk(n.ElementRule)
	case *rulegraph.AnyOfNode:
		rc.walk(n.ElementRule)
	}
}

func (rc *referenceChecker) walkAll(nodes []rulegraph.Node) {
	for _, n := range nodes {
		rc.walk(n)
	}
}

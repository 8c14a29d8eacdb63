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

import "github.com/worldrules/ruleexport/worldmodel"

// menuSentinel is the last-resort start region named by §3.3's
// invariant, used only when a world declares no origin region and the
// graph has no unique no-inbound-entrance region.
const menuSentinel = "Menu"

// resolveStartRegion implements the three-tier policy of §3.3: a
// declared origin region, else the unique region with no inbound
// entrance, else "Menu" if that region exists in the graph at all.
func resolveStartRegion(world *worldmodel.World) (string, bool) {
	if world.OriginRegion != "" {
		return world.OriginRegion, true
	}

	var candidate string
	candidates := 0
	for _, r := range world.Graph.Regions() {
		if world.Graph.InboundCount(r.Name) == 0 {
			candidate = r.Name
			candidates++
		}
	}
	if candidates == 1 {
		return candidate, true
	}

	if _, ok := world.Graph.Region(menuSentinel); ok {
		return menuSentinel, true
	}
	return "", false
}

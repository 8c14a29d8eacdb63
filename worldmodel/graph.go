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

package worldmodel

import "fmt"

// RegionGraph holds a world's regions in insertion order. Region exits
// form a directed graph with cycles by design (§9: "the compiler
// traverses it by enumerating regions in declaration order; rule
// analysis does not follow graph edges"), so unlike a dependency DAG
// this graph performs no cycle detection and no topological sort —
// only order-preserving storage and lookup.
type RegionGraph struct {
	order   []string
	regions map[string]*Region
}

func NewRegionGraph() *RegionGraph {
	return &RegionGraph{regions: make(map[string]*Region)}
}

// AddRegion appends r to the graph, preserving the order regions were
// declared in — the order the exporter later emits them in (§4.5).
func (g *RegionGraph) AddRegion(r *Region) {
	if _, exists := g.regions[r.Name]; !exists {
		g.order = append(g.order, r.Name)
	}
	g.regions[r.Name] = r
}

// Region looks up a region by name.
func (g *RegionGraph) Region(name string) (*Region, bool) {
	r, ok := g.regions[name]
	return r, ok
}

// Regions returns every region in declaration order.
func (g *RegionGraph) Regions() []*Region {
	out := make([]*Region, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.regions[name])
	}
	return out
}

// InboundCount counts entrances targeting name across the whole graph
// — used by start-region resolution (§3.3): the unique region with no
// inbound entrance is a start-region candidate.
func (g *RegionGraph) InboundCount(name string) int {
	count := 0
	for _, r := range g.regions {
		for _, e := range r.Exits {
			if e.Target == name {
				count++
			}
		}
	}
	return count
}

func (r *Region) String() string { return fmt.Sprintf("Region(%s)", r.Name) }

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

// Ordering helpers for §4.5's emission rule: regions keep the world
// graph's insertion order, but items, locations, and groups sort by
// name for diff-friendly output.
package exporter

import (
	"sort"

	"golang.org/x/exp/slices"

	"github.com/worldrules/ruleexport/rulegraph"
)

// sortLocationRecords orders locations by name in place.
func sortLocationRecords(records []rulegraph.LocationRecord) {
	slices.SortFunc(records, func(a, b rulegraph.LocationRecord) bool { return a.Name < b.Name })
}

// sortedGroupNames returns a stable, sorted key order over a group
// membership table.
func sortedGroupNames(groups map[string][]string) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		slices.Sort(groups[name])
	}
	return names
}

// containsHelperName reports whether a manifest's declared helper
// list names the given helper, mirroring the teacher's slices.Contains
// use for its predefined-listen-address check.
func containsHelperName(declared []string, name string) bool {
	return slices.Contains(declared, name)
}

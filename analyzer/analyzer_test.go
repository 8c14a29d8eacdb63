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

package analyzer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worldrules/ruleexport/analyzer"
	"github.com/worldrules/ruleexport/handler"
	"github.com/worldrules/ruleexport/rulegraph"
	"github.com/worldrules/ruleexport/worldmodel"
)

type fakeRule struct {
	name   string
	source string
	env    map[string]any
}

func (f *fakeRule) Name() string             { return f.name }
func (f *fakeRule) Source() (string, error)  { return f.source, nil }
func (f *fakeRule) Env() map[string]any      { return f.env }

func newWorld(game string) *worldmodel.World {
	return &worldmodel.World{Game: game, Graph: worldmodel.NewRegionGraph(), Items: worldmodel.NewItemRegistry()}
}

func TestAnalyze_StateHasSpecializesToItemCheck(t *testing.T) {
	a := analyzer.New(handler.NewRegistry(), analyzer.NewAnalysisCache(16), nil, false)
	rule := &fakeRule{name: "access_rule", source: `state.has("Progressive Sword", 2)`, env: map[string]any{}}

	node, err := a.Analyze(context.Background(), newWorld("Test Game"), rule, "")
	require.NoError(t, err)

	item, ok := node.(*rulegraph.ItemCheckNode)
	require.True(t, ok)
	require.Equal(t, "Progressive Sword", item.Item)
	require.Equal(t, 2, item.Count)
}

func TestAnalyze_LogicalInfixAndOr(t *testing.T) {
	a := analyzer.New(handler.NewRegistry(), analyzer.NewAnalysisCache(16), nil, false)
	rule := &fakeRule{name: "access_rule", source: `state.has("Bow") and state.has("Arrows")`, env: map[string]any{}}

	node, err := a.Analyze(context.Background(), newWorld("Test Game"), rule, "")
	require.NoError(t, err)

	and, ok := node.(*rulegraph.AndNode)
	require.True(t, ok)
	require.Len(t, and.Conditions, 2)
}

func TestAnalyze_TernarySimplifiesOnConstantCondition(t *testing.T) {
	a := analyzer.New(handler.NewRegistry(), analyzer.NewAnalysisCache(16), nil, false)
	rule := &fakeRule{name: "access_rule", source: `true ? state.has("Bow") : state.has("Bombs")`, env: map[string]any{}}

	node, err := a.Analyze(context.Background(), newWorld("Test Game"), rule, "")
	require.NoError(t, err)

	item, ok := node.(*rulegraph.ItemCheckNode)
	require.True(t, ok)
	require.Equal(t, "Bow", item.Item)
}

func TestAnalyze_PreservesHasPrefixedCallAsHelper(t *testing.T) {
	a := analyzer.New(handler.NewRegistry(), analyzer.NewAnalysisCache(16), nil, false)
	rule := &fakeRule{name: "access_rule", source: `has_fire_rod_or_bombos()`, env: map[string]any{}}

	node, err := a.Analyze(context.Background(), newWorld("A Link to the Past Randomizer"), rule, "")
	require.NoError(t, err)

	h, ok := node.(*rulegraph.HelperNode)
	require.True(t, ok)
	require.Equal(t, "has_fire_rod_or_bombos", h.Name)
}

func TestAnalyze_NameFoldsFromClosureEnv(t *testing.T) {
	a := analyzer.New(handler.NewRegistry(), analyzer.NewAnalysisCache(16), nil, false)
	rule := &fakeRule{name: "access_rule", source: `max_bombs`, env: map[string]any{"max_bombs": 10}}

	node, err := a.Analyze(context.Background(), newWorld("Test Game"), rule, "")
	require.NoError(t, err)

	c, ok := node.(*rulegraph.ConstantNode)
	require.True(t, ok)
	require.Equal(t, 10, c.Value)
}

func TestAnalyze_UnboundNameStaysUnresolved(t *testing.T) {
	a := analyzer.New(handler.NewRegistry(), analyzer.NewAnalysisCache(16), nil, false)
	rule := &fakeRule{name: "access_rule", source: `self`, env: map[string]any{}}

	node, err := a.Analyze(context.Background(), newWorld("Test Game"), rule, "")
	require.NoError(t, err)

	name, ok := node.(*rulegraph.NameNode)
	require.True(t, ok)
	require.Equal(t, "self", name.Name)
}

func TestAnalyze_DelegatesToNestedCallableInEnv(t *testing.T) {
	a := analyzer.New(handler.NewRegistry(), analyzer.NewAnalysisCache(16), nil, false)
	nested := &fakeRule{name: "nested_rule", source: `state.has("Hookshot")`, env: map[string]any{}}
	rule := &fakeRule{name: "access_rule", source: `other_rule()`, env: map[string]any{"other_rule": nested}}

	node, err := a.Analyze(context.Background(), newWorld("Test Game"), rule, "")
	require.NoError(t, err)

	item, ok := node.(*rulegraph.ItemCheckNode)
	require.True(t, ok)
	require.Equal(t, "Hookshot", item.Item)
}

func TestAnalyze_ResultsAreCachedByStructuralIdentity(t *testing.T) {
	cache := analyzer.NewAnalysisCache(16)
	a := analyzer.New(handler.NewRegistry(), cache, nil, false)
	rule := &fakeRule{name: "access_rule", source: `state.has("Bow")`, env: map[string]any{}}

	first, err := a.Analyze(context.Background(), newWorld("Test Game"), rule, "")
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), newWorld("Test Game"), rule, "")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

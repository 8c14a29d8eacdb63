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

package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worldrules/ruleexport/predicate"
	"github.com/worldrules/ruleexport/rulegraph"
)

type fakeCallable struct{ name string }

func (f fakeCallable) Name() string { return f.name }

func analyzeAsName(c predicate.Callable) (rulegraph.Node, error) {
	return rulegraph.NewName(c.Name()), nil
}

func TestSerializeCustomPredicate_Received(t *testing.T) {
	node, err := predicate.SerializeCustomPredicate(predicate.Received{ItemName: "Sword", Count: 1}, analyzeAsName)
	require.NoError(t, err)
	item, ok := node.(*rulegraph.ItemCheckNode)
	require.True(t, ok)
	require.Equal(t, "Sword", item.Item)
	require.Equal(t, 1, item.Count)
}

func TestSerializeCustomPredicate_AndOr(t *testing.T) {
	and, err := predicate.SerializeCustomPredicate(predicate.And{Rules: []predicate.Callable{
		predicate.Received{ItemName: "Bow"},
		predicate.True_{},
	}}, analyzeAsName)
	require.NoError(t, err)
	require.Equal(t, "and", and.Kind())

	or, err := predicate.SerializeCustomPredicate(predicate.Or{Rules: []predicate.Callable{
		predicate.False_{},
	}}, analyzeAsName)
	require.NoError(t, err)
	require.Equal(t, "or", or.Kind())
}

func TestSerializeCustomPredicate_Has_Unwraps(t *testing.T) {
	node, err := predicate.SerializeCustomPredicate(predicate.Has{Rule: predicate.Received{ItemName: "Flippers"}}, analyzeAsName)
	require.NoError(t, err)
	require.Equal(t, "item_check", node.Kind())
}

func TestSerializeCustomPredicate_Count_ThresholdBehavior(t *testing.T) {
	rules := []predicate.Callable{
		predicate.Received{ItemName: "A"},
		predicate.Received{ItemName: "B"},
		predicate.Received{ItemName: "C"},
	}

	oneOf, err := predicate.SerializeCustomPredicate(predicate.Count{N: 1, Rules: rules}, analyzeAsName)
	require.NoError(t, err)
	require.Equal(t, "or", oneOf.Kind())

	allOf, err := predicate.SerializeCustomPredicate(predicate.Count{N: 3, Rules: rules}, analyzeAsName)
	require.NoError(t, err)
	require.Equal(t, "and", allOf.Kind())

	twoOf, err := predicate.SerializeCustomPredicate(predicate.Count{N: 2, Rules: rules}, analyzeAsName)
	require.NoError(t, err)
	helper, ok := twoOf.(*rulegraph.HelperNode)
	require.True(t, ok)
	require.Equal(t, "count_true", helper.Name)
}

func TestSerializeCustomPredicate_Reach(t *testing.T) {
	region, err := predicate.SerializeCustomPredicate(predicate.Reach{Target: "Dark World", Kind: predicate.ReachRegion}, analyzeAsName)
	require.NoError(t, err)
	require.Equal(t, "region_check", region.Kind())

	location, err := predicate.SerializeCustomPredicate(predicate.Reach{Target: "Link's House", Kind: predicate.ReachLocation}, analyzeAsName)
	require.NoError(t, err)
	require.Equal(t, "location_check", location.Kind())

	entrance, err := predicate.SerializeCustomPredicate(predicate.Reach{Target: "Sanctuary", Kind: predicate.ReachEntrance}, analyzeAsName)
	require.NoError(t, err)
	require.Equal(t, "can_reach_entrance", entrance.Kind())

	_, err = predicate.SerializeCustomPredicate(predicate.Reach{Target: "?", Kind: predicate.ReachKind("bogus")}, analyzeAsName)
	require.Error(t, err)
}

func TestSerializeCustomPredicate_TotalReceived(t *testing.T) {
	node, err := predicate.SerializeCustomPredicate(predicate.TotalReceived{Count: 5, Items: []string{"A", "B"}}, analyzeAsName)
	require.NoError(t, err)
	helper, ok := node.(*rulegraph.HelperNode)
	require.True(t, ok)
	require.Equal(t, "total_received", helper.Name)
	require.Len(t, helper.Args, 2)
}

func TestSerializeCustomPredicate_NestedLambdaDelegatesToAnalyze(t *testing.T) {
	and, err := predicate.SerializeCustomPredicate(predicate.And{Rules: []predicate.Callable{
		fakeCallable{name: "a lambda"},
	}}, analyzeAsName)
	require.NoError(t, err)
	andNode := and.(*rulegraph.AndNode)
	name, ok := andNode.Conditions[0].(*rulegraph.NameNode)
	require.True(t, ok)
	require.Equal(t, "a lambda", name.Name)
}

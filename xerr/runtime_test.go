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

package xerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worldrules/ruleexport/tokens"
)

func TestErrExtractionIsOfConcreteType(t *testing.T) {
	err := ErrExtraction("Location.access_rule", "builtin callable has no source")
	var extraction ExtractionFailure
	require.True(t, errors.As(err, &extraction))
	require.Equal(t, "Location.access_rule", extraction.Predicate)
}

func TestErrUnknownShapeCarriesRange(t *testing.T) {
	rng := tokens.Range{File: "<world:Location.access_rule>", From: tokens.Pos{Line: 1, Column: 1}, To: tokens.Pos{Line: 1, Column: 5}}
	err := ErrUnknownShape("lambda_with_kwargs", rng)
	var shape UnknownPredicateShape
	require.True(t, errors.As(err, &shape))
	require.Equal(t, "lambda_with_kwargs", shape.Shape)
}

func TestErrMissingItemKinds(t *testing.T) {
	var missing MissingItem
	require.True(t, errors.As(ErrMissingItem("Progressive Sword"), &missing))
	require.Equal(t, "item", missing.Kind)

	require.True(t, errors.As(ErrMissingLocation("Chest 1"), &missing))
	require.Equal(t, "location", missing.Kind)

	require.True(t, errors.As(ErrMissingRegion("Dark Forest"), &missing))
	require.Equal(t, "region", missing.Kind)
}

func TestErrSchemaViolation(t *testing.T) {
	err := ErrSchemaViolation("kind", "unrecognized rule-node kind \"mystery\"")
	var violation SchemaViolation
	require.True(t, errors.As(err, &violation))
	require.Equal(t, "kind", violation.Field)
}

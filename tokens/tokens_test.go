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

package tokens_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worldrules/ruleexport/tokens"
)

func TestIsKeyword(t *testing.T) {
	kind, ok := tokens.IsKeyword("and")
	require.True(t, ok)
	require.Equal(t, tokens.KeywordAnd, kind)

	kind, ok = tokens.IsKeyword("None")
	require.True(t, ok)
	require.Equal(t, tokens.KeywordNull, kind)

	_, ok = tokens.IsKeyword("not-a-keyword")
	require.False(t, ok)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "Ident", tokens.Ident.String())
}

func TestInstance_IsBooleanLiteral(t *testing.T) {
	require.True(t, tokens.Instance{Kind: tokens.KeywordTrue}.IsBooleanLiteral())
	require.True(t, tokens.Instance{Kind: tokens.KeywordFalse}.IsBooleanLiteral())
	require.False(t, tokens.Instance{Kind: tokens.KeywordNull}.IsBooleanLiteral())
	require.False(t, tokens.Instance{Kind: tokens.Ident}.IsBooleanLiteral())
}

func TestRange_String_SingleLine(t *testing.T) {
	r := tokens.Range{
		File: "rule.py",
		From: tokens.Pos{Line: 1, Column: 3},
		To:   tokens.Pos{Line: 1, Column: 9},
	}
	require.Equal(t, "rule.py:1:3-9", r.String())
}

func TestRange_String_MultiLine(t *testing.T) {
	r := tokens.Range{
		File: "rule.py",
		From: tokens.Pos{Line: 1, Column: 3},
		To:   tokens.Pos{Line: 2, Column: 1},
	}
	require.Equal(t, "rule.py:1:3-2:1", r.String())
}

func TestNewRangeFromPos_IsZeroWidth(t *testing.T) {
	p := tokens.Pos{Line: 4, Column: 2, Offset: 10}
	r := tokens.NewRangeFromPos("<world:Location.access_rule>", p)
	require.Equal(t, p, r.From)
	require.Equal(t, p, r.To)
	require.Equal(t, "<world:Location.access_rule>", r.File)
}

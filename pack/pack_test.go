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

package pack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worldrules/ruleexport/pack"
)

func TestNewPackFile_Defaults(t *testing.T) {
	p := pack.NewPackFile("lttpr")
	require.Equal(t, "lttpr", p.Name)
	require.NotEmpty(t, p.SchemaVersion)
	require.Equal(t, "^0.1", p.Engines.Compiler)
}

func TestCheckEngineCompatible(t *testing.T) {
	cases := []struct {
		name       string
		constraint string
		version    string
		want       bool
		wantErr    bool
	}{
		{name: "caret range matches patch", constraint: "^0.1", version: "0.1.0", want: true},
		{name: "caret range matches minor bump", constraint: "^0.1", version: "0.1.5", want: true},
		{name: "caret range rejects next minor", constraint: "^0.1", version: "0.2.0", want: false},
		{name: "exact match", constraint: "0.1.0", version: "0.1.0", want: true},
		{name: "invalid constraint", constraint: "not-a-constraint", version: "0.1.0", wantErr: true},
		{name: "invalid version", constraint: "^0.1", version: "not-a-version", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := pack.NewPackFile("test")
			p.Engines.Compiler = tc.constraint

			ok, err := p.CheckEngineCompatible(tc.version)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}

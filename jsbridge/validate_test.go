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

package jsbridge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worldrules/ruleexport/jsbridge"
)

func TestValidateHelperModule_TypeScript(t *testing.T) {
	source := `
export function canSurf(snapshot: Snapshot, staticData: StaticData): boolean {
	return snapshot.has("flippers", 1);
}
`
	err := jsbridge.ValidateHelperModule("surf.ts", source)
	require.NoError(t, err)
}

func TestValidateHelperModule_SyntaxError(t *testing.T) {
	err := jsbridge.ValidateHelperModule("broken.ts", `function canSurf(snapshot, staticData { return true; }`)
	require.Error(t, err)
}

func TestValidateHelperModules_ReportsFirstFailure(t *testing.T) {
	modules := map[string]string{
		"good.js":   `function ok() { return true; }`,
		"broken.js": `function bad( { return 1 }`,
	}
	name, err := jsbridge.ValidateHelperModules(modules)
	require.Error(t, err)
	require.Equal(t, "broken.js", name)
}

func TestValidateHelperModules_AllValid(t *testing.T) {
	modules := map[string]string{
		"a.js": `function ok() { return true; }`,
		"b.js": `function also_ok() { return false; }`,
	}
	name, err := jsbridge.ValidateHelperModules(modules)
	require.NoError(t, err)
	require.Empty(t, name)
}

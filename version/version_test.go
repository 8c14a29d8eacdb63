// SPDX-License-Identifier: Apache-2.0
//
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

package version_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worldrules/ruleexport/version"
)

func TestGetVersionInfo_AppliesOptions(t *testing.T) {
	info := version.GetVersionInfo(
		version.WithAppDetails("ruleexport", "compiles rule graphs", "https://example.test"),
	)
	require.Equal(t, "ruleexport", info.Name)
	require.Equal(t, "compiles rule graphs", info.Description)
	require.Equal(t, "https://example.test", info.Website)
}

func TestInfo_String_IncludesAppDetails(t *testing.T) {
	info := version.GetVersionInfo(version.WithAppDetails("ruleexport", "compiles rule graphs", ""))
	info.GitVersion = "1.2.3"

	out := info.String()
	require.Contains(t, out, "ruleexport v1.2.3")
	require.Contains(t, out, "compiles rule graphs")
}

func TestInfo_String_OmitsEmptySections(t *testing.T) {
	info := version.GetVersionInfo()
	out := info.String()
	require.NotContains(t, out, "Website")
}

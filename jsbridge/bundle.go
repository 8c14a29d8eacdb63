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

// Package jsbridge gives the frontend helper calling convention (§6.4)
// a compile-time checkpoint: per-game helper modules are transpiled
// and parsed, never executed, so a syntax error surfaces at export
// time instead of in a player's browser.
package jsbridge

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// BundleResult is a transpiled helper module, ready to be written
// under gameLogic/<gameSlug>/ for the frontend to require().
type BundleResult struct {
	Code string
	Map  string
}

func isTypeScript(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".ts" || ext == ".tsx" || ext == ".mts" || ext == ".cts"
}

// Bundle transpiles a single helper module's source to the CommonJS
// the frontend's `require` expects. path is used only to pick a
// loader and to label esbuild diagnostics.
func Bundle(path, source string) (BundleResult, error) {
	loader := api.LoaderJS
	if isTypeScript(path) {
		loader = api.LoaderTS
	}

	res := api.Transform(source, api.TransformOptions{
		Loader:            loader,
		Target:            api.ES2019,
		Format:            api.FormatCommonJS,
		Platform:          api.PlatformDefault,
		Sourcemap:         api.SourceMapInline,
		LegalComments:     api.LegalCommentsNone,
		MinifyWhitespace:  false,
		MinifyIdentifiers: false,
		MinifySyntax:      false,
		SourcesContent:    api.SourcesContentExclude,
		Charset:           api.CharsetUTF8,
	})

	if len(res.Errors) > 0 {
		return BundleResult{}, fmt.Errorf("esbuild %s: %s", path, res.Errors[0].Text)
	}
	return BundleResult{Code: string(res.Code), Map: string(res.Map)}, nil
}

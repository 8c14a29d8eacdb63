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

package jsbridge

import (
	"fmt"

	"github.com/dop251/goja"
)

// wrapAsFactory wraps transpiled module code the way the frontend's
// own loader will: a factory taking (snapshot, staticData, ...args),
// never invoked here — goja.Compile only parses it.
func wrapAsFactory(js string) string {
	return "(function(snapshot, staticData) {\n" + js + "\n})"
}

// ValidateHelperModule transpiles a per-game helper module and parses
// the result with goja, catching syntax errors before export without
// ever executing the module body. name is used only to label
// diagnostics.
func ValidateHelperModule(name, source string) error {
	bundled, err := Bundle(name, source)
	if err != nil {
		return fmt.Errorf("transpile %s: %w", name, err)
	}

	if _, err := goja.Compile(name, wrapAsFactory(bundled.Code), true); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// ValidateHelperModules validates every module in modules, keyed by a
// display name (typically its path), and returns the first error
// found together with the name that failed.
func ValidateHelperModules(modules map[string]string) (failedName string, err error) {
	for name, source := range modules {
		if verr := ValidateHelperModule(name, source); verr != nil {
			return name, verr
		}
	}
	return "", nil
}

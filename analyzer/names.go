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

package analyzer

import (
	"github.com/worldrules/ruleexport/ast"
	"github.com/worldrules/ruleexport/handler"
	"github.com/worldrules/ruleexport/resolver"
	"github.com/worldrules/ruleexport/rulegraph"
)

// translateName resolves an identifier against the environment (§4.3
// Name). "self" is never folded to a constant even if present in env —
// it is the documented settings escape hatch a frontend resolves at
// evaluation time, unless a handler rewrites it first.
func (a *Analyzer) translateName(ident *ast.Identifier, env map[string]any, h handler.GameHandler) (rulegraph.Node, error) {
	name := ident.Value

	if rr, ok := h.(handler.ReservedNameResolver); ok {
		if node, ok := rr.ResolveReservedName(name); ok {
			return node, nil
		}
	}

	if name == "self" {
		return rulegraph.NewName(name), nil
	}

	v, ok := env[name]
	if !ok {
		return rulegraph.NewName(name), nil
	}

	val, err := resolver.ToConstantValue(v)
	if err != nil {
		// No documented serializable identity for this closure value
		// (§4.3 caveat) — leave it unresolved rather than fail the whole
		// analysis; the resolver's later pass gets a second chance once
		// more context (e.g. a postprocess rewrite) is available.
		return rulegraph.NewName(name), nil
	}
	return rulegraph.NewConstant(val), nil
}

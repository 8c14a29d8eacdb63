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

// Package predicate extracts a usable source representation out of a
// game plugin's access-rule predicates: either a parsed expression
// plus its captured closure environment, or a fully-formed rule node
// for one of the known custom predicate classes. It never evaluates a
// predicate — only recovers what it meant.
package predicate

import (
	"github.com/worldrules/ruleexport/ast"
	"github.com/worldrules/ruleexport/rulegraph"
)

// Callable is anything a game plugin can hand the compiler as an
// access rule. Name is used only for diagnostics.
type Callable interface {
	Name() string
}

// SourceCallable is a predicate whose body is available as text — a
// lambda or bound method. Env returns the predicate's free variables
// already merged in the precedence order §4.1 describes: closure
// cells override defaults, defaults override module globals.
type SourceCallable interface {
	Callable
	Source() (string, error)
	Env() map[string]any
}

// CustomPredicate is a predicate expressed as one of the known typed
// objects from §4.6 (Received, And, Or, ...) rather than a lambda.
// Detection is by concrete Go type via a type switch in
// SerializeCustomPredicate, never by duck-typed attribute sniffing.
type CustomPredicate interface {
	Callable
	customPredicate()
}

// PredicateSource is the SourceExtractor's AST(expr, env) outcome: a
// parsed expression together with the environment its free variables
// resolve against.
type PredicateSource struct {
	Expr ast.Expression
	Env  map[string]any
}

// Analyze recursively turns a Callable into a rule-graph node — the
// shape the custom-predicate serializers need to handle nested rules
// (And/Or/Has/Count all wrap other predicates, which may themselves be
// lambdas). Implemented by analyzer.Analyzer; passed in rather than
// imported to keep predicate free of a dependency on analyzer.
type Analyze func(Callable) (rulegraph.Node, error)

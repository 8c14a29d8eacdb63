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

// Package xerr is the compiler's typed failure taxonomy: one sentinel
// type per diagnosable way a predicate can fail to become a rule-graph
// node, each with an Err* constructor wrapping it via pkg/errors so
// callers keep a stack trace without losing the ability to
// errors.As into the concrete type.
package xerr

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/worldrules/ruleexport/tokens"
)

// ExtractionFailure means the source extractor could not pull usable
// source text out of a predicate object at all — a builtin, a
// native/compiled callable, or a callable whose source file is not on
// disk.
type ExtractionFailure struct {
	Predicate string
}

func (e ExtractionFailure) Error() string {
	return fmt.Sprintf("could not extract source for predicate %q", e.Predicate)
}

func ErrExtraction(predicate string, reason string) error {
	return errors.Wrapf(ExtractionFailure{Predicate: predicate}, reason)
}

// ResolutionFailure means the expression resolver could not fold an
// expression fragment to a constant during its pure constant-folding
// pass.
type ResolutionFailure struct {
	Expression string
	Range      tokens.Range
}

func (e ResolutionFailure) Error() string {
	return fmt.Sprintf("could not resolve expression %q at %s", e.Expression, e.Range)
}

func ErrResolution(expression string, rng tokens.Range) error {
	return errors.WithStack(ResolutionFailure{Expression: expression, Range: rng})
}

// UnknownPredicateShape means the analyzer walked an AST node it has no
// translation rule for. This is not fatal: the analyzer degrades to the
// documented null-rule fallback and records the shape as a diagnostic.
type UnknownPredicateShape struct {
	Shape string
	Range tokens.Range
}

func (e UnknownPredicateShape) Error() string {
	return fmt.Sprintf("unknown predicate shape %q at %s", e.Shape, e.Range)
}

func ErrUnknownShape(shape string, rng tokens.Range) error {
	return errors.WithStack(UnknownPredicateShape{Shape: shape, Range: rng})
}

// SchemaViolation means a rule-graph fragment was about to be emitted
// but does not satisfy the closed rule-node taxonomy — a required field
// missing, or a kind the schema doesn't recognize.
type SchemaViolation struct {
	Field  string
	Reason string
}

func (e SchemaViolation) Error() string {
	return fmt.Sprintf("schema violation on field %q: %s", e.Field, e.Reason)
}

func ErrSchemaViolation(field, reason string) error {
	return errors.WithStack(SchemaViolation{Field: field, Reason: reason})
}

// MissingItem means a rule references an item, location, or region
// name the world model doesn't have.
type MissingItem struct {
	Name string
	Kind string // "item", "location", or "region"
}

func (e MissingItem) Error() string {
	return fmt.Sprintf("missing %s: %q", e.Kind, e.Name)
}

func ErrMissingItem(name string) error {
	return errors.WithStack(MissingItem{Name: name, Kind: "item"})
}

func ErrMissingLocation(name string) error {
	return errors.WithStack(MissingItem{Name: name, Kind: "location"})
}

func ErrMissingRegion(name string) error {
	return errors.WithStack(MissingItem{Name: name, Kind: "region"})
}

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

package exporter

import (
	"errors"
	"fmt"

	"github.com/worldrules/ruleexport/xerr"
)

// DiagnosticKind names one of §7's five failure kinds.
type DiagnosticKind string

const (
	DiagExtractionFailure     DiagnosticKind = "extraction_failure"
	DiagResolutionFailure     DiagnosticKind = "resolution_failure"
	DiagUnknownPredicateShape DiagnosticKind = "unknown_predicate_shape"
	DiagMissingItem           DiagnosticKind = "missing_item"
	DiagUnknownHelper         DiagnosticKind = "unknown_helper"
)

// Diagnostic is one accumulated warning. SchemaViolation never appears
// here — it aborts the export instead (§7).
type Diagnostic struct {
	Kind         DiagnosticKind
	Message      string
	World        string
	LocationName string
	EntranceName string
}

func (d Diagnostic) String() string {
	where := d.World
	if d.LocationName != "" {
		where += "/" + d.LocationName
	}
	if d.EntranceName != "" {
		where += "/" + d.EntranceName
	}
	return fmt.Sprintf("[%s] %s: %s", d.Kind, where, d.Message)
}

// Diagnostics accumulates warnings across an export. The exporter
// never fails because of one of these — only a SchemaViolation aborts.
type Diagnostics struct {
	Warnings []Diagnostic
}

func (d *Diagnostics) warn(kind DiagnosticKind, world, location, entrance, message string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Kind: kind, Message: message, World: world, LocationName: location, EntranceName: entrance,
	})
}

// classifyAnalysisError turns an Analyzer/SourceExtractor error into a
// diagnostic recovery per §7.1-3: a null rule plus a logged warning.
// SchemaViolation is deliberately not handled here — callers that may
// see one (handler-returned rules) must check for it themselves and
// abort, per §7.4.
func (d *Diagnostics) classifyAnalysisError(err error, world, location, entrance string) {
	var extraction xerr.ExtractionFailure
	var resolution xerr.ResolutionFailure
	var unknown xerr.UnknownPredicateShape

	switch {
	case errors.As(err, &extraction):
		d.warn(DiagExtractionFailure, world, location, entrance, err.Error())
	case errors.As(err, &resolution):
		d.warn(DiagResolutionFailure, world, location, entrance, err.Error())
	case errors.As(err, &unknown):
		d.warn(DiagUnknownPredicateShape, world, location, entrance, err.Error())
	default:
		d.warn(DiagUnknownPredicateShape, world, location, entrance, err.Error())
	}
}

func (d *Diagnostics) missingItem(world, name string) {
	d.warn(DiagMissingItem, world, "", "", "references undeclared item "+name)
}

func (d *Diagnostics) unknownHelper(world, location, entrance, name string) {
	d.warn(DiagUnknownHelper, world, location, entrance, "helper \""+name+"\" is not in the manifest's declared helper list")
}

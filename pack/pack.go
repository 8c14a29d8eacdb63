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

// Package pack describes a game plugin's manifest — the TOML file that
// tells the compiler which compiler versions the plugin supports, what
// it is allowed to touch, and the metadata carried through to the
// exported rule-graph document.
package pack

import (
	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

const schemaVersion = "1.0"

// PackFile is the parsed contents of a ruleexport.pack.toml manifest.
type PackFile struct {
	SchemaVersion string            `toml:"schema_version"`
	Name          string            `toml:"name"`
	Version       string            `toml:"version,omitempty"`
	Description   string            `toml:"description,omitempty"`
	License       string            `toml:"license,omitempty"`
	Repository    string            `toml:"repository,omitempty"`
	Engines       Engines           `toml:"engines"`
	Authors       map[string]string `toml:"authors,omitempty"`
	Permissions   Permissions       `toml:"permissions"`
	Metadata      map[string]any    `toml:"metadata,omitempty"`

	// KnownHelpers, if non-empty, is the declared set of frontend helper
	// names this game's handler may reference via helper{name} rule
	// nodes. An unrecognized name produces a warning diagnostic rather
	// than a failure.
	KnownHelpers []string `toml:"known_helpers,omitempty"`

	// Location is the manifest's own path on disk, not part of the
	// TOML document.
	Location string `toml:"-"`
}

// Engines declares the range of compiler versions this plugin manifest
// is compatible with.
type Engines struct {
	Compiler string `toml:"compiler"`
}

// Permissions restricts what the plugin's helper modules may do when
// jsbridge validates them — mirrors the ambient sandboxing concerns a
// game plugin manifest carries even though rule export itself performs
// no I/O.
type Permissions struct {
	FSRead []string `toml:"fs_read,omitempty"`
	Net    []string `toml:"net,omitempty"`
}

// NewPackFile returns a fresh manifest for a pack named name, with the
// current schema version and a compiler constraint accepting any 0.x
// release.
func NewPackFile(name string) *PackFile {
	return &PackFile{
		SchemaVersion: schemaVersion,
		Name:          name,
		Engines:       Engines{Compiler: "^0.1"},
		Permissions:   Permissions{},
	}
}

// CheckEngineCompatible reports whether compilerVersion satisfies the
// manifest's declared engines.compiler constraint.
func (p *PackFile) CheckEngineCompatible(compilerVersion string) (bool, error) {
	constraint, err := semver.NewConstraint(p.Engines.Compiler)
	if err != nil {
		return false, errors.Wrapf(err, "invalid engines.compiler constraint %q", p.Engines.Compiler)
	}
	v, err := semver.NewVersion(compilerVersion)
	if err != nil {
		return false, errors.Wrapf(err, "invalid compiler version %q", compilerVersion)
	}
	return constraint.Check(v), nil
}

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

// Package handler implements the per-game override protocol (§4.4): a
// GameHandler supplies any subset of optional hooks that customize
// analysis for one game. Every hook is its own single-method
// interface; a handler implements whichever it needs and the caller
// type-asserts for it, the same pattern the standard library uses for
// http.Hijacker/http.Flusher.
package handler

import (
	"strings"

	"github.com/worldrules/ruleexport/predicate"
	"github.com/worldrules/ruleexport/rulegraph"
	"github.com/worldrules/ruleexport/worldmodel"
)

// GameHandler is a marker interface implemented by every per-game
// handler, even one that implements none of the optional hooks below.
type GameHandler interface {
	GameName() string
}

// PreserveAsHelperHook decides whether a named call should stay a
// helper reference instead of being inlined by the analyzer.
type PreserveAsHelperHook interface {
	ShouldPreserveAsHelper(name string) bool
}

// ClosureVarPreparer runs once per world before analysis; it may
// attach a live instance to World.Logic so rules can resolve
// logic.* references during analysis.
type ClosureVarPreparer interface {
	PrepareClosureVars(world *worldmodel.World) error
}

// RuleAnalysisOverrider lets a handler produce a rule directly,
// bypassing the analyzer. Returning ok=false means "fall through to
// the generic analyzer".
type RuleAnalysisOverrider interface {
	OverrideRuleAnalysis(target string, rule predicate.Callable) (node rulegraph.Node, ok bool, err error)
}

// RuleContext carries the richer context PostprocessRule gets that
// ExpandRule does not — which location or entrance the rule belongs
// to.
type RuleContext struct {
	LocationName string
	EntranceName string
}

// RuleExpander is the first post-pass over every analyzed rule.
type RuleExpander interface {
	ExpandRule(node rulegraph.Node) (rulegraph.Node, error)
}

// RulePostprocessor is the second post-pass, run after resolution.
type RulePostprocessor interface {
	PostprocessRule(node rulegraph.Node, ctx RuleContext) (rulegraph.Node, error)
}

// RegionPostprocessor mutates a world's locations/entrances before
// analysis — the hook shop-uniqueness rewrites use to inject distinct
// per-location rule identities (§4.3 caching caveat, §8 scenario 6).
type RegionPostprocessor interface {
	PostprocessRegions(world *worldmodel.World) error
}

// CustomLocationRuleProvider supplies a location's access rule without
// invoking the analyzer at all; consulted before RuleAnalysisOverrider
// (§9 precedence fix).
type CustomLocationRuleProvider interface {
	GetCustomLocationAccessRule(loc *worldmodel.Location, world *worldmodel.World) (node rulegraph.Node, ok bool, err error)
}

type SettingsProvider interface {
	GetSettingsData(world *worldmodel.World) (map[string]any, error)
}

type GameInfoProvider interface {
	GetGameInfo(world *worldmodel.World) (map[string]any, error)
}

type ProgressionMappingProvider interface {
	GetProgressionMapping(world *worldmodel.World) (map[string]rulegraph.ProgressionMapping, error)
}

type LocationAttributesProvider interface {
	GetLocationAttributes(loc *worldmodel.Location, world *worldmodel.World) (map[string]any, error)
}

// ReservedNameResolver lets a handler give meaning to the well-known
// names state/world/self/logic/player during Name resolution (§4.3).
type ReservedNameResolver interface {
	ResolveReservedName(name string) (rulegraph.Node, bool)
}

// ReservedNames is the closed set of identifiers with handler-driven
// interpretations. "self" defaults to a frontend settings lookup when
// no handler rewrites it (§8 scenario 5); the rest default to staying
// unresolved name nodes.
var ReservedNames = map[string]struct{}{
	"state": {}, "world": {}, "self": {}, "logic": {}, "player": {},
}

func IsReservedName(name string) bool {
	_, ok := ReservedNames[name]
	return ok
}

// GenericHandler is the fallback used when no registered handler
// matches a world's game name. It preserves helpers whose names begin
// with has_ or can_, a documented heuristic that callers may override
// by registering their own handler for the same game name.
type GenericHandler struct{ Game string }

func NewGenericHandler(game string) *GenericHandler { return &GenericHandler{Game: game} }

func (g *GenericHandler) GameName() string { return g.Game }

func (g *GenericHandler) ShouldPreserveAsHelper(name string) bool {
	return strings.HasPrefix(name, "has_") || strings.HasPrefix(name, "can_")
}

var (
	_ GameHandler          = &GenericHandler{}
	_ PreserveAsHelperHook = &GenericHandler{}
)

// Registry maps a game name to its handler, falling back to a fresh
// GenericHandler. Registries are never global singletons — §9 requires
// parallel exports to parameterize the registry per call.
type Registry struct {
	handlers map[string]GameHandler
}

func NewRegistry() *Registry {
	return &Registry{handlers: map[string]GameHandler{}}
}

func (r *Registry) Register(h GameHandler) {
	r.handlers[h.GameName()] = h
}

func (r *Registry) For(game string) GameHandler {
	if h, ok := r.handlers[game]; ok {
		return h
	}
	return NewGenericHandler(game)
}

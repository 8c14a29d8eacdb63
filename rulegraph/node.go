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

// Package rulegraph is the output schema: the closed taxonomy of rule
// nodes a world's access rules compile down to, plus the item,
// location, region, and document records that carry them. Every node
// kind round-trips through JSON with a "type" discriminator.
package rulegraph

import (
	"encoding/json"
	"fmt"
)

// Node is any rule-graph node. Kind returns the JSON "type" discriminator.
type Node interface {
	Kind() string
}

type nodeDecoder func(data json.RawMessage) (Node, error)

var nodeDecoders = map[string]nodeDecoder{}

func register(kind string, dec nodeDecoder) {
	nodeDecoders[kind] = dec
}

// DecodeNode inspects the "type" field of a raw JSON value and decodes
// it into the matching concrete Node implementation. A null or empty
// value decodes to (nil, nil) — the schema's documented way of
// representing an absent access rule.
func DecodeNode(data json.RawMessage) (Node, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("rulegraph: %w", err)
	}

	dec, ok := nodeDecoders[envelope.Type]
	if !ok {
		return nil, fmt.Errorf("rulegraph: unknown node type %q", envelope.Type)
	}
	return dec(data)
}

// decodeSlice decodes a JSON array of raw node values into a []Node,
// preserving order — used by every node kind that carries a nested
// node list (and/or conditions, helper/state_method args).
func decodeSlice(raw []json.RawMessage) ([]Node, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]Node, len(raw))
	for i, r := range raw {
		n, err := DecodeNode(r)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

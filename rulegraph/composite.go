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

package rulegraph

import "encoding/json"

func init() {
	register("helper", func(d json.RawMessage) (Node, error) { return decodeCall("helper", d) })
	register("state_method", func(d json.RawMessage) (Node, error) { return decodeCall("state_method", d) })
	register("and", func(d json.RawMessage) (Node, error) { return decodeJunction("and", d) })
	register("or", func(d json.RawMessage) (Node, error) { return decodeJunction("or", d) })
	register("not", func(d json.RawMessage) (Node, error) { return decodeNot(d) })
	register("compare", func(d json.RawMessage) (Node, error) { return decodeBinary("compare", d) })
	register("binary_op", func(d json.RawMessage) (Node, error) { return decodeBinary("binary_op", d) })
	register("unary_op", func(d json.RawMessage) (Node, error) { return decodeUnary(d) })
	register("conditional", func(d json.RawMessage) (Node, error) { return decodeConditional(d) })
	register("attribute", func(d json.RawMessage) (Node, error) { return decodeAttribute(d) })
	register("subscript", func(d json.RawMessage) (Node, error) { return decodeSubscript(d) })
	register("all_of", func(d json.RawMessage) (Node, error) { return decodeQuantified("all_of", d) })
	register("any_of", func(d json.RawMessage) (Node, error) { return decodeQuantified("any_of", d) })
}

// HelperNode names a frontend-registered helper with already-analyzed
// arguments; resolution is deferred to the JS runtime.
type HelperNode struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Args []Node `json:"args"`
}

func NewHelper(name string, args []Node) *HelperNode {
	return &HelperNode{Type: "helper", Name: name, Args: args}
}
func (n *HelperNode) Kind() string { return "helper" }

// StateMethodNode is a built-in snapshot method not otherwise
// specialized into one of item_check/group_check/etc.
type StateMethodNode struct {
	Type   string `json:"type"`
	Method string `json:"method"`
	Args   []Node `json:"args"`
}

func NewStateMethod(method string, args []Node) *StateMethodNode {
	return &StateMethodNode{Type: "state_method", Method: method, Args: args}
}
func (n *StateMethodNode) Kind() string { return "state_method" }

func decodeCall(kind string, data json.RawMessage) (Node, error) {
	var raw struct {
		Type   string            `json:"type"`
		Name   string            `json:"name"`
		Method string            `json:"method"`
		Args   []json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	args, err := decodeSlice(raw.Args)
	if err != nil {
		return nil, err
	}
	if kind == "helper" {
		return &HelperNode{Type: kind, Name: raw.Name, Args: args}, nil
	}
	return &StateMethodNode{Type: kind, Method: raw.Method, Args: args}, nil
}

// AndNode is short-circuit conjunction with three-valued truth.
type AndNode struct {
	Type       string `json:"type"`
	Conditions []Node `json:"conditions"`
}

func NewAnd(conditions []Node) *AndNode { return &AndNode{Type: "and", Conditions: conditions} }
func (n *AndNode) Kind() string         { return "and" }

// OrNode is short-circuit disjunction with three-valued truth.
type OrNode struct {
	Type       string `json:"type"`
	Conditions []Node `json:"conditions"`
}

func NewOr(conditions []Node) *OrNode { return &OrNode{Type: "or", Conditions: conditions} }
func (n *OrNode) Kind() string        { return "or" }

func decodeJunction(kind string, data json.RawMessage) (Node, error) {
	var raw struct {
		Conditions []json.RawMessage `json:"conditions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	conditions, err := decodeSlice(raw.Conditions)
	if err != nil {
		return nil, err
	}
	if kind == "and" {
		return &AndNode{Type: kind, Conditions: conditions}, nil
	}
	return &OrNode{Type: kind, Conditions: conditions}, nil
}

// NotNode is logical negation; negating undefined yields undefined.
type NotNode struct {
	Type      string `json:"type"`
	Condition Node   `json:"condition"`
}

func NewNot(condition Node) *NotNode { return &NotNode{Type: "not", Condition: condition} }
func (n *NotNode) Kind() string      { return "not" }

func decodeNot(data json.RawMessage) (Node, error) {
	var raw struct {
		Condition json.RawMessage `json:"condition"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	cond, err := DecodeNode(raw.Condition)
	if err != nil {
		return nil, err
	}
	return &NotNode{Type: "not", Condition: cond}, nil
}

// CompareOp is the closed set of comparison operators the schema
// recognizes.
type CompareOp string

const (
	OpEq        CompareOp = "=="
	OpNeq       CompareOp = "!="
	OpLt        CompareOp = "<"
	OpLte       CompareOp = "<="
	OpGt        CompareOp = ">"
	OpGte       CompareOp = ">="
	OpIn        CompareOp = "in"
	OpNotIn     CompareOp = "not in"
	OpIs        CompareOp = "is"
	OpIsNot     CompareOp = "is not"
	OpAdd       CompareOp = "+"
	OpSub       CompareOp = "-"
	OpMul       CompareOp = "*"
	OpDiv       CompareOp = "/"
	OpFloorDiv  CompareOp = "//"
	OpMod       CompareOp = "%"
)

// CompareNode is a two-valued comparison: `left op right`.
type CompareNode struct {
	Type  string    `json:"type"`
	Left  Node      `json:"left"`
	Op    CompareOp `json:"op"`
	Right Node      `json:"right"`
}

func NewCompare(left Node, op CompareOp, right Node) *CompareNode {
	return &CompareNode{Type: "compare", Left: left, Op: op, Right: right}
}
func (n *CompareNode) Kind() string { return "compare" }

// BinaryOpNode is an arithmetic or string operator.
type BinaryOpNode struct {
	Type  string    `json:"type"`
	Left  Node      `json:"left"`
	Op    CompareOp `json:"op"`
	Right Node      `json:"right"`
}

func NewBinaryOp(left Node, op CompareOp, right Node) *BinaryOpNode {
	return &BinaryOpNode{Type: "binary_op", Left: left, Op: op, Right: right}
}
func (n *BinaryOpNode) Kind() string { return "binary_op" }

func decodeBinary(kind string, data json.RawMessage) (Node, error) {
	var raw struct {
		Left  json.RawMessage `json:"left"`
		Op    CompareOp       `json:"op"`
		Right json.RawMessage `json:"right"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	left, err := DecodeNode(raw.Left)
	if err != nil {
		return nil, err
	}
	right, err := DecodeNode(raw.Right)
	if err != nil {
		return nil, err
	}
	if kind == "compare" {
		return &CompareNode{Type: kind, Left: left, Op: raw.Op, Right: right}, nil
	}
	return &BinaryOpNode{Type: kind, Left: left, Op: raw.Op, Right: right}, nil
}

// UnaryOpNode is `-`, `+`, or `not` applied to a single operand.
type UnaryOpNode struct {
	Type    string    `json:"type"`
	Op      CompareOp `json:"op"`
	Operand Node      `json:"operand"`
}

func NewUnaryOp(op CompareOp, operand Node) *UnaryOpNode {
	return &UnaryOpNode{Type: "unary_op", Op: op, Operand: operand}
}
func (n *UnaryOpNode) Kind() string { return "unary_op" }

func decodeUnary(data json.RawMessage) (Node, error) {
	var raw struct {
		Op      CompareOp       `json:"op"`
		Operand json.RawMessage `json:"operand"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	operand, err := DecodeNode(raw.Operand)
	if err != nil {
		return nil, err
	}
	return &UnaryOpNode{Type: "unary_op", Op: raw.Op, Operand: operand}, nil
}

// ConditionalNode is a ternary: Test ? IfTrue : IfFalse.
type ConditionalNode struct {
	Type    string `json:"type"`
	Test    Node   `json:"test"`
	IfTrue  Node   `json:"if_true"`
	IfFalse Node   `json:"if_false"`
}

func NewConditional(test, ifTrue, ifFalse Node) *ConditionalNode {
	return &ConditionalNode{Type: "conditional", Test: test, IfTrue: ifTrue, IfFalse: ifFalse}
}
func (n *ConditionalNode) Kind() string { return "conditional" }

func decodeConditional(data json.RawMessage) (Node, error) {
	var raw struct {
		Test    json.RawMessage `json:"test"`
		IfTrue  json.RawMessage `json:"if_true"`
		IfFalse json.RawMessage `json:"if_false"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	test, err := DecodeNode(raw.Test)
	if err != nil {
		return nil, err
	}
	ifTrue, err := DecodeNode(raw.IfTrue)
	if err != nil {
		return nil, err
	}
	ifFalse, err := DecodeNode(raw.IfFalse)
	if err != nil {
		return nil, err
	}
	return &ConditionalNode{Type: "conditional", Test: test, IfTrue: ifTrue, IfFalse: ifFalse}, nil
}

// AttributeNode is member access, resolved at evaluation when Object
// is a name or constant the frontend can look up.
type AttributeNode struct {
	Type   string `json:"type"`
	Object Node   `json:"object"`
	Attr   string `json:"attr"`
}

func NewAttribute(object Node, attr string) *AttributeNode {
	return &AttributeNode{Type: "attribute", Object: object, Attr: attr}
}
func (n *AttributeNode) Kind() string { return "attribute" }

func decodeAttribute(data json.RawMessage) (Node, error) {
	var raw struct {
		Object json.RawMessage `json:"object"`
		Attr   string          `json:"attr"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	object, err := DecodeNode(raw.Object)
	if err != nil {
		return nil, err
	}
	return &AttributeNode{Type: "attribute", Object: object, Attr: raw.Attr}, nil
}

// SubscriptNode is indexing; same resolution rule as AttributeNode.
type SubscriptNode struct {
	Type  string `json:"type"`
	Value Node   `json:"value"`
	Index Node   `json:"index"`
}

func NewSubscript(value, index Node) *SubscriptNode {
	return &SubscriptNode{Type: "subscript", Value: value, Index: index}
}
func (n *SubscriptNode) Kind() string { return "subscript" }

func decodeSubscript(data json.RawMessage) (Node, error) {
	var raw struct {
		Value json.RawMessage `json:"value"`
		Index json.RawMessage `json:"index"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	value, err := DecodeNode(raw.Value)
	if err != nil {
		return nil, err
	}
	index, err := DecodeNode(raw.Index)
	if err != nil {
		return nil, err
	}
	return &SubscriptNode{Type: "subscript", Value: value, Index: index}, nil
}

// IteratorInfo carries an unresolved quantifier's loop metadata so a
// later postprocess pass (or a game handler) can attempt resolution.
type IteratorInfo struct {
	Source    Node   `json:"source,omitempty"`
	TargetVar string `json:"target_var"`
}

// AllOfNode and AnyOfNode are quantifiers over a sequence that did not
// resolve to a concrete constant list at analysis time; equivalent in
// evaluated semantics to n-ary and/or.
type AllOfNode struct {
	Type         string        `json:"type"`
	ElementRule  Node          `json:"element_rule"`
	IteratorInfo *IteratorInfo `json:"iterator_info,omitempty"`
}

func NewAllOf(elementRule Node, iter *IteratorInfo) *AllOfNode {
	return &AllOfNode{Type: "all_of", ElementRule: elementRule, IteratorInfo: iter}
}
func (n *AllOfNode) Kind() string { return "all_of" }

type AnyOfNode struct {
	Type         string        `json:"type"`
	ElementRule  Node          `json:"element_rule"`
	IteratorInfo *IteratorInfo `json:"iterator_info,omitempty"`
}

func NewAnyOf(elementRule Node, iter *IteratorInfo) *AnyOfNode {
	return &AnyOfNode{Type: "any_of", ElementRule: elementRule, IteratorInfo: iter}
}
func (n *AnyOfNode) Kind() string { return "any_of" }

func decodeQuantified(kind string, data json.RawMessage) (Node, error) {
	var raw struct {
		ElementRule  json.RawMessage `json:"element_rule"`
		IteratorInfo struct {
			Source    json.RawMessage `json:"source,omitempty"`
			TargetVar string          `json:"target_var"`
		} `json:"iterator_info"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	element, err := DecodeNode(raw.ElementRule)
	if err != nil {
		return nil, err
	}
	source, err := DecodeNode(raw.IteratorInfo.Source)
	if err != nil {
		return nil, err
	}
	var iter *IteratorInfo
	if raw.IteratorInfo.TargetVar != "" || source != nil {
		iter = &IteratorInfo{Source: source, TargetVar: raw.IteratorInfo.TargetVar}
	}
	if kind == "all_of" {
		return &AllOfNode{Type: kind, ElementRule: element, IteratorInfo: iter}, nil
	}
	return &AnyOfNode{Type: kind, ElementRule: element, IteratorInfo: iter}, nil
}

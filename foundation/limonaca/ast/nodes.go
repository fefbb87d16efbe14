// File: nodes.go
// Title: Limonaca AST Node Definitions
// Description: Defines the node kinds and the immutable Node type of the
//              Limonaca syntax tree together with constructors that enforce
//              the shape of each kind, string rendering and JSON/YAML export.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial AST node definitions

package ast

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the type of a node
type Kind int

const (
	KindPlus Kind = iota + 1
	KindMinus
	KindMultiply
	KindDivide
	KindNumber
	KindIdentifier
	KindDevprint
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindPlus:
		return "Plus"
	case KindMinus:
		return "Minus"
	case KindMultiply:
		return "Multiply"
	case KindDivide:
		return "Divide"
	case KindNumber:
		return "Number"
	case KindIdentifier:
		return "Identifier"
	case KindDevprint:
		return "Devprint"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsBinary reports whether nodes of this kind have two operands
func (k Kind) IsBinary() bool {
	switch k {
	case KindPlus, KindMinus, KindMultiply, KindDivide:
		return true
	default:
		return false
	}
}

// IsLeaf reports whether nodes of this kind carry a value and no children
func (k Kind) IsLeaf() bool {
	return k == KindNumber || k == KindIdentifier
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based, in runes)
	Offset int // Byte offset (0-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is a single node of the syntax tree
type Node struct {
	kind  Kind
	left  *Node
	right *Node
	value string
	pos   Position
}

// NewBinary creates an operator node. It panics when kind is not a binary
// kind or an operand is nil; the parser only calls it with mapped operators.
func NewBinary(kind Kind, left, right *Node, pos Position) *Node {
	if !kind.IsBinary() {
		panic(fmt.Sprintf("ast: %s is not a binary node kind", kind))
	}
	if left == nil || right == nil {
		panic(fmt.Sprintf("ast: %s node requires two operands", kind))
	}
	return &Node{kind: kind, left: left, right: right, pos: pos}
}

// NewNumber creates a numeric literal leaf. The text is kept verbatim.
func NewNumber(text string, pos Position) *Node {
	return &Node{kind: KindNumber, value: text, pos: pos}
}

// NewIdentifier creates an identifier leaf
func NewIdentifier(name string, pos Position) *Node {
	return &Node{kind: KindIdentifier, value: name, pos: pos}
}

// NewDevprint creates a devprint statement wrapping expr
func NewDevprint(expr *Node, pos Position) *Node {
	if expr == nil {
		panic("ast: Devprint node requires an expression")
	}
	return &Node{kind: KindDevprint, left: expr, pos: pos}
}

// Kind returns the node kind
func (n *Node) Kind() Kind { return n.kind }

// Left returns the left operand, or the printed expression of a Devprint node
func (n *Node) Left() *Node { return n.left }

// Right returns the right operand of a binary node
func (n *Node) Right() *Node { return n.right }

// Value returns the literal text of Number and Identifier nodes
func (n *Node) Value() string { return n.value }

// Pos returns the source position of the token that produced the node
func (n *Node) Pos() Position { return n.pos }

// String renders the node as a compact expression, e.g.
// Minus(Minus(Number(1), Number(2)), Number(3)).
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	switch {
	case n.kind.IsLeaf():
		return fmt.Sprintf("%s(%s)", n.kind, n.value)
	case n.kind == KindDevprint:
		return fmt.Sprintf("%s(%s)", n.kind, n.left)
	default:
		return fmt.Sprintf("%s(%s, %s)", n.kind, n.left, n.right)
	}
}

// Equal reports whether two trees have the same shape, kinds and values.
// Positions are ignored.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.kind == other.kind &&
		n.value == other.value &&
		n.left.Equal(other.left) &&
		n.right.Equal(other.right)
}

type nodeDocument struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
	Left   *Node  `json:"left,omitempty" yaml:"left,omitempty"`
	Right  *Node  `json:"right,omitempty" yaml:"right,omitempty"`
}

func (n *Node) document() nodeDocument {
	return nodeDocument{
		Kind:   n.kind,
		Value:  n.value,
		Line:   n.pos.Line,
		Column: n.pos.Column,
		Left:   n.left,
		Right:  n.right,
	}
}

// MarshalJSON implements json.Marshaler
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.document())
}

// MarshalYAML implements yaml.Marshaler from gopkg.in/yaml.v3
func (n *Node) MarshalYAML() (interface{}, error) {
	return n.document(), nil
}

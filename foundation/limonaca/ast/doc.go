// File: doc.go
// Title: Limonaca AST Package Documentation
// Description: Abstract syntax tree produced by the Limonaca parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial AST definitions

/*
Package ast defines the syntax tree of the Limonaca language.

A tree is built from *Node values. Every node has a Kind drawn from a closed
set:

  - Plus, Minus, Multiply, Divide: binary operators with exactly two children
  - Number, Identifier: leaves carrying the literal text as their value
  - Devprint: a statement node with exactly one child (Left)

Nodes are created through the constructors in this package, which enforce
those shapes, and cannot be changed afterwards. Children are owned by their
parent; the parser never shares a node between two parents.

Fprint renders a tree in the indented depth-first layout used by the
command-line tools; Walk visits nodes in the same order.
*/
package ast

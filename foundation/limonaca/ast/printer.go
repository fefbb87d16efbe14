// File: printer.go
// Title: AST Traversal and Printing
// Description: Depth-first traversal of the syntax tree and the indented
//              text layout used by the command-line tools.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial printer and walker

package ast

import (
	"bufio"
	"io"
	"strings"
)

// Walk visits n and its descendants depth-first, left before right. The
// root has depth 0 and both children of a node are one level deeper. When
// fn returns false the children of that node are skipped.
func Walk(n *Node, fn func(node *Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	walk(n.left, depth+1, fn)
	walk(n.right, depth+1, fn)
}

// Label returns the printed form of a single node: the kind name followed by
// the value for leaves.
func Label(n *Node) string {
	if n.value == "" {
		return n.kind.String()
	}
	return n.kind.String() + " " + n.value
}

// Printer renders trees one node per line
type Printer struct {
	// Indent is the number of spaces added per depth level
	Indent int

	// Decorate, if set, transforms each label before it is written
	// (used for terminal colouring).
	Decorate func(kind Kind, label string) string
}

// DefaultIndent is the indentation step of Fprint
const DefaultIndent = 2

// Fprint writes node to w with the default printer, e.g. for "1 + 2;":
//
//	Plus
//	  Number 1
//	  Number 2
func Fprint(w io.Writer, node *Node) error {
	return (&Printer{Indent: DefaultIndent}).Fprint(w, node)
}

// Sprint returns the Fprint rendering of node as a string
func Sprint(node *Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, node)
	return sb.String()
}

// Fprint writes node to w. A nil node writes nothing.
func (p *Printer) Fprint(w io.Writer, node *Node) error {
	indent := p.Indent
	if indent < 0 {
		indent = 0
	}

	bw := bufio.NewWriter(w)
	var err error
	Walk(node, func(n *Node, depth int) bool {
		label := Label(n)
		if p.Decorate != nil {
			label = p.Decorate(n.kind, label)
		}
		if _, err = bw.WriteString(strings.Repeat(" ", depth*indent) + label + "\n"); err != nil {
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

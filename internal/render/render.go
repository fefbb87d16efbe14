// ============================================================================
// limonaca - Limonaca language front end
// ============================================================================
//
// Package:     render
// Description: Output formats for tokens, syntax trees and errors
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/limonaca/foundation/core/error"
	mdwast "github.com/msto63/limonaca/foundation/limonaca/ast"
	mdwparser "github.com/msto63/limonaca/foundation/limonaca/parser"
	mdwstringx "github.com/msto63/limonaca/foundation/utils/stringx"
)

// Format is an AST output format
type Format int

const (
	FormatTree Format = iota + 1
	FormatJSON
	FormatYAML
)

// String returns the name used on the command line
func (f Format) String() string {
	switch f {
	case FormatTree:
		return "tree"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name. The empty string selects the tree.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "tree":
		return FormatTree, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, mdwerror.Newf("unknown output format %q (expected tree, json or yaml)", name).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("format", name)
	}
}

// Style controls terminal presentation
type Style struct {
	Color     bool // colour labels with lipgloss
	Positions bool // prefix token lines and suffix tree lines with line:column
}

// positionWidth is the column width of the position prefix in token listings
const positionWidth = 8

// Tokens writes one line per token in the form "Kind Text"
func Tokens(w io.Writer, tokens []mdwparser.Token, style Style) error {
	bw := bufio.NewWriter(w)
	for _, tok := range tokens {
		line := tok.Kind.String()
		if style.Color {
			line = tokenStyle(tok.Kind).Render(line)
		}
		if tok.Text != "" {
			line += " " + tok.Text
		}
		if style.Positions {
			pos := mdwstringx.PadRight(tok.Pos().String(), positionWidth, ' ')
			if style.Color {
				pos = PositionStyle.Render(pos)
			}
			line = pos + line
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Tree writes every node in the indented tree layout, one after another
func Tree(w io.Writer, nodes []*mdwast.Node, style Style) error {
	if style.Positions {
		return treeWithPositions(w, nodes, style)
	}

	printer := &mdwast.Printer{Indent: mdwast.DefaultIndent}
	if style.Color {
		printer.Decorate = decorateNode
	}
	for _, node := range nodes {
		if err := printer.Fprint(w, node); err != nil {
			return err
		}
	}
	return nil
}

func treeWithPositions(w io.Writer, nodes []*mdwast.Node, style Style) error {
	bw := bufio.NewWriter(w)
	var err error
	for _, node := range nodes {
		mdwast.Walk(node, func(n *mdwast.Node, depth int) bool {
			label := mdwast.Label(n)
			pos := "@" + n.Pos().String()
			if style.Color {
				label = decorateNode(n.Kind(), label)
				pos = PositionStyle.Render(pos)
			}
			_, err = bw.WriteString(strings.Repeat(" ", depth*mdwast.DefaultIndent) + label + "  " + pos + "\n")
			return err == nil
		})
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// JSON writes the nodes as an indented JSON array
func JSON(w io.Writer, nodes []*mdwast.Node) error {
	if nodes == nil {
		nodes = []*mdwast.Node{}
	}
	return encodeJSON(w, nodes)
}

// YAML writes the nodes as a YAML sequence
func YAML(w io.Writer, nodes []*mdwast.Node) error {
	if nodes == nil {
		nodes = []*mdwast.Node{}
	}
	return encodeYAML(w, nodes)
}

// Encode writes any value in one of the document formats (json or yaml)
func Encode(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, v)
	case FormatYAML:
		return encodeYAML(w, v)
	default:
		return mdwerror.Newf("format %s cannot encode documents", format).
			WithCode(mdwerror.CodeInvalidInput)
	}
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Write renders nodes in the given format. Style only applies to the tree.
func Write(w io.Writer, format Format, nodes []*mdwast.Node, style Style) error {
	switch format {
	case FormatTree:
		return Tree(w, nodes, style)
	case FormatJSON:
		return JSON(w, nodes)
	case FormatYAML:
		return YAML(w, nodes)
	default:
		return mdwerror.Newf("unsupported output format %s", format).
			WithCode(mdwerror.CodeInvalidInput)
	}
}

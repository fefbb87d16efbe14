// ============================================================================
// limonaca - Limonaca language front end
// ============================================================================
//
// Package:     render
// Description: Terminal colours for token listings and syntax trees
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss"

	mdwast "github.com/msto63/limonaca/foundation/limonaca/ast"
	mdwparser "github.com/msto63/limonaca/foundation/limonaca/parser"
)

// Color Palette - shared with the REPL
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

var (
	OperatorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	KeywordStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	IdentifierStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	NumberStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	PunctuationStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	CaretStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// tokenStyle returns the style used for a token kind
func tokenStyle(kind mdwparser.TokenKind) lipgloss.Style {
	switch kind {
	case mdwparser.TokenPlus, mdwparser.TokenMinus, mdwparser.TokenStar, mdwparser.TokenSlash,
		mdwparser.TokenArrow, mdwparser.TokenAssignment:
		return OperatorStyle
	case mdwparser.TokenIdentifier:
		return IdentifierStyle
	case mdwparser.TokenNumber:
		return NumberStyle
	case mdwparser.TokenColon, mdwparser.TokenSemiColon, mdwparser.TokenComma,
		mdwparser.TokenParenthesisOpen, mdwparser.TokenParenthesisClose, mdwparser.TokenEOF:
		return PunctuationStyle
	default:
		// Keywords and type names
		return KeywordStyle
	}
}

// nodeStyle returns the style used for a node kind
func nodeStyle(kind mdwast.Kind) lipgloss.Style {
	switch {
	case kind == mdwast.KindDevprint:
		return KeywordStyle
	case kind == mdwast.KindNumber:
		return NumberStyle
	case kind == mdwast.KindIdentifier:
		return IdentifierStyle
	case kind.IsBinary():
		return OperatorStyle
	default:
		return lipgloss.NewStyle()
	}
}

// decorateNode colours a tree label by node kind
func decorateNode(kind mdwast.Kind, label string) string {
	return nodeStyle(kind).Render(label)
}

// File: token.go
// Title: Limonaca Token Definitions
// Description: Defines the closed set of token kinds, the Token value and
//              the keyword table of the Limonaca language.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial token definitions

package parser

import (
	"fmt"

	mdwast "github.com/msto63/limonaca/foundation/limonaca/ast"
)

// TokenKind represents the type of a lexical token
type TokenKind int

const (
	// Operators
	TokenPlus  TokenKind = iota + 1 // +
	TokenMinus                      // -
	TokenStar                       // *
	TokenSlash                      // /

	// Identifiers and literals
	TokenIdentifier // x, _tmp, abc123
	TokenNumber     // 42

	// Keywords
	TokenKeywordIn
	TokenKeywordFn
	TokenKeywordReturn
	TokenKeywordAs
	TokenKeywordBegin
	TokenKeywordEnd
	TokenKeywordNone
	TokenKeywordVar
	TokenKeywordDevprint

	// Type names
	TokenTypeInt32
	TokenTypeInt16

	// Punctuation
	TokenColon            // :
	TokenSemiColon        // ;
	TokenComma            // ,
	TokenArrow            // >
	TokenAssignment       // =
	TokenParenthesisOpen  // (
	TokenParenthesisClose // )

	// End of input
	TokenEOF
)

var tokenKindNames = map[TokenKind]string{
	TokenPlus:             "Plus",
	TokenMinus:            "Minus",
	TokenStar:             "Star",
	TokenSlash:            "Slash",
	TokenIdentifier:       "Identifier",
	TokenNumber:           "Number",
	TokenKeywordIn:        "KeywordIn",
	TokenKeywordFn:        "KeywordFn",
	TokenKeywordReturn:    "KeywordReturn",
	TokenKeywordAs:        "KeywordAs",
	TokenKeywordBegin:     "KeywordBegin",
	TokenKeywordEnd:       "KeywordEnd",
	TokenKeywordNone:      "KeywordNone",
	TokenKeywordVar:       "KeywordVar",
	TokenKeywordDevprint:  "KeywordDevprint",
	TokenTypeInt32:        "TypeInt32",
	TokenTypeInt16:        "TypeInt16",
	TokenColon:            "Colon",
	TokenSemiColon:        "SemiColon",
	TokenComma:            "Comma",
	TokenArrow:            "Arrow",
	TokenAssignment:       "Assignment",
	TokenParenthesisOpen:  "ParenthesisOpen",
	TokenParenthesisClose: "ParenthesisClose",
	TokenEOF:              "Eof",
}

// String returns the name of the token kind
func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Valid reports whether k is one of the defined token kinds
func (k TokenKind) Valid() bool {
	return k >= TokenPlus && k <= TokenEOF
}

// MarshalText implements encoding.TextMarshaler
func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token represents a lexical token with position information
type Token struct {
	Kind   TokenKind `json:"kind" yaml:"kind"`
	Text   string    `json:"text,omitempty" yaml:"text,omitempty"` // Empty for operators and punctuation
	Offset int       `json:"offset" yaml:"offset"`                 // Byte offset in input
	Line   int       `json:"line" yaml:"line"`                     // Line number (1-based)
	Column int       `json:"column" yaml:"column"`                 // Column number (1-based, in runes)
}

// String returns "<Kind> <Text>", or just the kind for tokens without text
func (t Token) String() string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + " " + t.Text
}

// Pos returns the token position as an AST position
func (t Token) Pos() mdwast.Position {
	return mdwast.Position{Line: t.Line, Column: t.Column, Offset: t.Offset}
}

var keywords = map[string]TokenKind{
	"in":       TokenKeywordIn,
	"fn":       TokenKeywordFn,
	"return":   TokenKeywordReturn,
	"as":       TokenKeywordAs,
	"begin":    TokenKeywordBegin,
	"end":      TokenKeywordEnd,
	"none":     TokenKeywordNone,
	"var":      TokenKeywordVar,
	"devprint": TokenKeywordDevprint,
	"int32":    TokenTypeInt32,
	"int16":    TokenTypeInt16,
}

// LookupKeyword returns the keyword kind for text. Matching is exact and
// case-sensitive.
func LookupKeyword(text string) (TokenKind, bool) {
	kind, ok := keywords[text]
	return kind, ok
}

// IsKeyword reports whether text is a reserved word
func IsKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}

var punctuation = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	':': TokenColon,
	';': TokenSemiColon,
	',': TokenComma,
	'=': TokenAssignment,
	'(': TokenParenthesisOpen,
	')': TokenParenthesisClose,
	'>': TokenArrow,
}

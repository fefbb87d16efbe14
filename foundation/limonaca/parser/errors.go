// File: errors.go
// Title: Limonaca Tokenizer and Parser Errors
// Description: Typed errors reported by the tokenizer and the parser. Each
//              carries the source position and a structured error code.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial error taxonomy

package parser

import (
	"fmt"

	mdwerror "github.com/msto63/limonaca/foundation/core/error"
	mdwast "github.com/msto63/limonaca/foundation/limonaca/ast"
)

// Error is implemented by every error this package returns
type Error interface {
	error
	Code() mdwerror.Code
	Position() mdwast.Position
}

func at(pos mdwast.Position) string {
	return fmt.Sprintf("at line %d, column %d", pos.Line, pos.Column)
}

// UnrecognizedCharacterError is returned when the input contains a
// character outside letters, digits, underscore, whitespace and the
// operator/punctuation set. A byte that does not start valid UTF-8 is
// reported with InvalidUTF8 set and the raw value in Byte; Char is then
// utf8.RuneError.
type UnrecognizedCharacterError struct {
	Char        rune
	Byte        byte
	InvalidUTF8 bool
	Pos         mdwast.Position
}

func (e *UnrecognizedCharacterError) Error() string {
	if e.InvalidUTF8 {
		return fmt.Sprintf("invalid UTF-8 byte 0x%02x %s", e.Byte, at(e.Pos))
	}
	return fmt.Sprintf("unrecognized character %q %s", e.Char, at(e.Pos))
}

// Code returns LIM_LEXICAL
func (e *UnrecognizedCharacterError) Code() mdwerror.Code { return mdwerror.CodeLexical }

// Position returns the position of the character
func (e *UnrecognizedCharacterError) Position() mdwast.Position { return e.Pos }

// UnterminatedStatementError is returned when a statement is not followed
// by ';'. Found is the token in its place.
type UnterminatedStatementError struct {
	Found Token
}

func (e *UnterminatedStatementError) Error() string {
	return fmt.Sprintf("expected ';' at the end of the statement, found %s %s", e.Found.Kind, at(e.Found.Pos()))
}

// Code returns LIM_SYNTAX
func (e *UnterminatedStatementError) Code() mdwerror.Code { return mdwerror.CodeSyntax }

// Position returns the position of the token found instead of ';'
func (e *UnterminatedStatementError) Position() mdwast.Position { return e.Found.Pos() }

// UnexpectedTokenError is returned when a factor starts with anything other
// than '(', a number or an identifier.
type UnexpectedTokenError struct {
	Found Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %s %s", e.Found, at(e.Found.Pos()))
}

// Code returns LIM_SYNTAX
func (e *UnexpectedTokenError) Code() mdwerror.Code { return mdwerror.CodeSyntax }

// Position returns the position of the offending token
func (e *UnexpectedTokenError) Position() mdwast.Position { return e.Found.Pos() }

// UnclosedGroupError is returned in strict mode when a parenthesised
// expression is not followed by ')'.
type UnclosedGroupError struct {
	Open  Token // The '(' that started the group
	Found Token // The token in place of ')'
}

func (e *UnclosedGroupError) Error() string {
	return fmt.Sprintf("expected ')' to close '(' %s, found %s %s",
		at(e.Open.Pos()), e.Found.Kind, at(e.Found.Pos()))
}

// Code returns LIM_SYNTAX
func (e *UnclosedGroupError) Code() mdwerror.Code { return mdwerror.CodeSyntax }

// Position returns the position of the token found instead of ')'
func (e *UnclosedGroupError) Position() mdwast.Position { return e.Found.Pos() }

// UnexpectedOperatorError reports an operator that has no node kind at the
// precedence level that consumed it. The parser's loop guards make it
// unreachable for well-behaved input.
type UnexpectedOperatorError struct {
	Operator Token
}

func (e *UnexpectedOperatorError) Error() string {
	return fmt.Sprintf("unexpected operator %s %s", e.Operator.Kind, at(e.Operator.Pos()))
}

// Code returns LIM_INTERNAL
func (e *UnexpectedOperatorError) Code() mdwerror.Code { return mdwerror.CodeParserInvariant }

// Position returns the position of the operator
func (e *UnexpectedOperatorError) Position() mdwast.Position { return e.Operator.Pos() }

// TooManyTokensError is returned when a token sequence exceeds
// Options.MaxTokens.
type TooManyTokensError struct {
	Count int
	Limit int
}

func (e *TooManyTokensError) Error() string {
	return fmt.Sprintf("input has %d tokens, maximum is %d", e.Count, e.Limit)
}

// Code returns LIM_LIMIT
func (e *TooManyTokensError) Code() mdwerror.Code { return mdwerror.CodeLimitExceeded }

// Position returns the zero position; the limit applies to the whole input
func (e *TooManyTokensError) Position() mdwast.Position { return mdwast.Position{} }

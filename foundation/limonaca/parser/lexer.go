// File: lexer.go
// Title: Limonaca Lexical Analyzer (Tokenizer)
// Description: Converts Limonaca source text into a token sequence. Words
//              are accumulated in a pending buffer that is flushed on
//              whitespace, punctuation and end of input.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial lexer implementation
// - 2026-10-16 v0.1.1: Invalid UTF-8 bytes reported by value

package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer performs lexical analysis of Limonaca source text
type Lexer struct {
	input string
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// scanState holds the per-call scanning state
type scanState struct {
	tokens []Token

	buf        strings.Builder
	identifier bool  // Buffer holds a letter or underscore
	bufStart   Token // Position of the first buffered rune

	line   int
	column int
}

// Tokenize converts the whole input into tokens. The result always ends
// with exactly one TokenEOF. The first unrecognized character aborts with
// an *UnrecognizedCharacterError and no tokens.
func (l *Lexer) Tokenize() ([]Token, error) {
	s := &scanState{line: 1, column: 1}

	for offset, r := range l.input {
		switch {
		case unicode.IsSpace(r):
			s.flush()
		case unicode.IsLetter(r) || r == '_':
			s.appendRune(r, offset)
			s.identifier = true
		case unicode.IsDigit(r):
			s.appendRune(r, offset)
		default:
			s.flush()
			if r == utf8.RuneError {
				if _, width := utf8.DecodeRuneInString(l.input[offset:]); width == 1 {
					return nil, &UnrecognizedCharacterError{
						Char:        r,
						Byte:        l.input[offset],
						InvalidUTF8: true,
						Pos:         Token{Offset: offset, Line: s.line, Column: s.column}.Pos(),
					}
				}
			}
			kind, ok := punctuation[r]
			if !ok {
				return nil, &UnrecognizedCharacterError{
					Char: r,
					Pos:  Token{Offset: offset, Line: s.line, Column: s.column}.Pos(),
				}
			}
			s.tokens = append(s.tokens, Token{Kind: kind, Offset: offset, Line: s.line, Column: s.column})
		}
		s.advance(r)
	}

	s.flush()
	s.tokens = append(s.tokens, Token{Kind: TokenEOF, Offset: len(l.input), Line: s.line, Column: s.column})

	return s.tokens, nil
}

func (s *scanState) appendRune(r rune, offset int) {
	if s.buf.Len() == 0 {
		s.bufStart = Token{Offset: offset, Line: s.line, Column: s.column}
	}
	s.buf.WriteRune(r)
}

func (s *scanState) advance(r rune) {
	if r == '\n' {
		s.line++
		s.column = 1
		return
	}
	s.column++
}

// flush emits the pending buffer as a keyword, identifier or number token
func (s *scanState) flush() {
	if s.buf.Len() == 0 {
		return
	}

	tok := s.bufStart
	tok.Text = s.buf.String()
	if kind, ok := LookupKeyword(tok.Text); ok {
		tok.Kind = kind
	} else if s.identifier {
		tok.Kind = TokenIdentifier
	} else {
		tok.Kind = TokenNumber
	}
	s.tokens = append(s.tokens, tok)

	s.buf.Reset()
	s.identifier = false
}

// Tokenize is a convenience function that tokenizes source
func Tokenize(source string) ([]Token, error) {
	return NewLexer(source).Tokenize()
}

// File: lexer_test.go
// Title: Limonaca Lexer Unit Tests
// Description: Tests for tokenization of all Limonaca token kinds, buffer
//              classification, keyword lookup, position tracking and
//              unrecognized characters.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test suite
// - 2026-10-16 v0.1.1: Invalid UTF-8 input

package parser

import (
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/limonaca/foundation/core/error"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func equalKinds(a, b []TokenKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Devprint statement",
			input: "devprint 42;",
			expected: []Token{
				{Kind: TokenKeywordDevprint, Text: "devprint", Offset: 0, Line: 1, Column: 1},
				{Kind: TokenNumber, Text: "42", Offset: 9, Line: 1, Column: 10},
				{Kind: TokenSemiColon, Offset: 11, Line: 1, Column: 12},
				{Kind: TokenEOF, Offset: 12, Line: 1, Column: 13},
			},
		},
		{
			name:  "Operators without spaces",
			input: "a+b*(c-1)/2;",
			expected: []Token{
				{Kind: TokenIdentifier, Text: "a", Offset: 0, Line: 1, Column: 1},
				{Kind: TokenPlus, Offset: 1, Line: 1, Column: 2},
				{Kind: TokenIdentifier, Text: "b", Offset: 2, Line: 1, Column: 3},
				{Kind: TokenStar, Offset: 3, Line: 1, Column: 4},
				{Kind: TokenParenthesisOpen, Offset: 4, Line: 1, Column: 5},
				{Kind: TokenIdentifier, Text: "c", Offset: 5, Line: 1, Column: 6},
				{Kind: TokenMinus, Offset: 6, Line: 1, Column: 7},
				{Kind: TokenNumber, Text: "1", Offset: 7, Line: 1, Column: 8},
				{Kind: TokenParenthesisClose, Offset: 8, Line: 1, Column: 9},
				{Kind: TokenSlash, Offset: 9, Line: 1, Column: 10},
				{Kind: TokenNumber, Text: "2", Offset: 10, Line: 1, Column: 11},
				{Kind: TokenSemiColon, Offset: 11, Line: 1, Column: 12},
				{Kind: TokenEOF, Offset: 12, Line: 1, Column: 13},
			},
		},
		{
			name:  "Multiple lines",
			input: "devprint x;\n  y;",
			expected: []Token{
				{Kind: TokenKeywordDevprint, Text: "devprint", Offset: 0, Line: 1, Column: 1},
				{Kind: TokenIdentifier, Text: "x", Offset: 9, Line: 1, Column: 10},
				{Kind: TokenSemiColon, Offset: 10, Line: 1, Column: 11},
				{Kind: TokenIdentifier, Text: "y", Offset: 14, Line: 2, Column: 3},
				{Kind: TokenSemiColon, Offset: 15, Line: 2, Column: 4},
				{Kind: TokenEOF, Offset: 16, Line: 2, Column: 5},
			},
		},
		{
			name:  "Columns count runes",
			input: "é1 ;",
			expected: []Token{
				{Kind: TokenIdentifier, Text: "é1", Offset: 0, Line: 1, Column: 1},
				{Kind: TokenSemiColon, Offset: 4, Line: 1, Column: 4},
				{Kind: TokenEOF, Offset: 5, Line: 1, Column: 5},
			},
		},
		{
			name:  "Empty input",
			input: "",
			expected: []Token{
				{Kind: TokenEOF, Offset: 0, Line: 1, Column: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if len(tokens) != len(tt.expected) {
				t.Fatalf("Tokenize() returned %d tokens, want %d: %v", len(tokens), len(tt.expected), tokens)
			}
			for i, want := range tt.expected {
				if tokens[i] != want {
					t.Errorf("token %d = %+v, want %+v", i, tokens[i], want)
				}
			}
		})
	}
}

func TestTokenizePunctuation(t *testing.T) {
	tokens, err := Tokenize("+ - * / : ; , = ( ) >")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	expected := []TokenKind{
		TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenColon, TokenSemiColon,
		TokenComma, TokenAssignment, TokenParenthesisOpen, TokenParenthesisClose,
		TokenArrow, TokenEOF,
	}
	if !equalKinds(kinds(tokens), expected) {
		t.Errorf("kinds = %v, want %v", kinds(tokens), expected)
	}
	for _, tok := range tokens {
		if tok.Text != "" {
			t.Errorf("%s token should have empty text, got %q", tok.Kind, tok.Text)
		}
	}
}

func TestTokenizeKeywords(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenKind
	}{
		{"in", TokenKeywordIn},
		{"fn", TokenKeywordFn},
		{"return", TokenKeywordReturn},
		{"as", TokenKeywordAs},
		{"begin", TokenKeywordBegin},
		{"end", TokenKeywordEnd},
		{"none", TokenKeywordNone},
		{"var", TokenKeywordVar},
		{"devprint", TokenKeywordDevprint},
		{"int32", TokenTypeInt32},
		{"int16", TokenTypeInt16},
		{"Devprint", TokenIdentifier},
		{"int64", TokenIdentifier},
		{"devprinter", TokenIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if len(tokens) != 2 {
				t.Fatalf("Tokenize() returned %d tokens, want 2", len(tokens))
			}
			if tokens[0].Kind != tt.expected || tokens[0].Text != tt.input {
				t.Errorf("token = %v, want %s %s", tokens[0], tt.expected, tt.input)
			}
			if IsKeyword(tt.input) != (tt.expected != TokenIdentifier) {
				t.Errorf("IsKeyword(%q) = %v", tt.input, IsKeyword(tt.input))
			}
		})
	}

	if kind, ok := LookupKeyword("var"); !ok || kind != TokenKeywordVar {
		t.Errorf("LookupKeyword(var) = %v, %v", kind, ok)
	}
	if _, ok := LookupKeyword("x"); ok {
		t.Error("LookupKeyword(x) should not match")
	}
}

func TestIdentifierVersusNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenKind
	}{
		{"abc123", TokenIdentifier},
		{"123", TokenNumber},
		{"_", TokenIdentifier},
		{"_1", TokenIdentifier},
		{"x_y_2", TokenIdentifier},
		{"007", TokenNumber},
		// Any letter in the buffer makes it an identifier
		{"12abc", TokenIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if len(tokens) != 2 {
				t.Fatalf("Tokenize() returned %d tokens, want 2", len(tokens))
			}
			if tokens[0].Kind != tt.expected || tokens[0].Text != tt.input {
				t.Errorf("token = %v, want %s %s", tokens[0], tt.expected, tt.input)
			}
		})
	}
}

func TestNumberTokensContainOnlyDigits(t *testing.T) {
	tokens, err := Tokenize("1 a1 1a 22+33 _4 x5y 6;7")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	for _, tok := range tokens {
		if tok.Kind != TokenNumber {
			continue
		}
		for _, r := range tok.Text {
			if r < '0' || r > '9' {
				t.Errorf("number token %q contains %q", tok.Text, r)
			}
		}
	}
}

func TestUnrecognizedCharacter(t *testing.T) {
	tests := []struct {
		input  string
		char   rune
		line   int
		column int
	}{
		{"1 @ 2;", '@', 1, 3},
		{"x;\n#", '#', 2, 1},
		{"a.b", '.', 1, 2},
		{"\"str\"", '"', 1, 1},
		{"x < 1", '<', 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if tokens != nil {
				t.Errorf("Tokenize() should not return tokens on error, got %v", tokens)
			}

			var charErr *UnrecognizedCharacterError
			if !errors.As(err, &charErr) {
				t.Fatalf("error = %v, want *UnrecognizedCharacterError", err)
			}
			if charErr.Char != tt.char {
				t.Errorf("Char = %q, want %q", charErr.Char, tt.char)
			}
			if charErr.Pos.Line != tt.line || charErr.Pos.Column != tt.column {
				t.Errorf("Pos = %s, want %d:%d", charErr.Pos, tt.line, tt.column)
			}
			if charErr.Code() != mdwerror.CodeLexical {
				t.Errorf("Code() = %s, want %s", charErr.Code(), mdwerror.CodeLexical)
			}
			if !strings.Contains(err.Error(), string(tt.char)) {
				t.Errorf("message %q should name the character", err.Error())
			}
		})
	}
}

func TestInvalidUTF8Byte(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		invalid bool
		b       byte
		column  int
		message string
	}{
		{"lone continuation byte", "ab \xff;", true, 0xff, 4, "invalid UTF-8 byte 0xff at line 1, column 4"},
		{"truncated sequence", "x\xc3", true, 0xc3, 2, "invalid UTF-8 byte 0xc3 at line 1, column 2"},
		{"encoded replacement character", "x \uFFFD", false, 0, 3, "unrecognized character '\uFFFD' at line 1, column 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)

			var charErr *UnrecognizedCharacterError
			if !errors.As(err, &charErr) {
				t.Fatalf("error = %v, want *UnrecognizedCharacterError", err)
			}
			if charErr.InvalidUTF8 != tt.invalid || charErr.Byte != tt.b {
				t.Errorf("InvalidUTF8 = %v, Byte = 0x%02x, want %v, 0x%02x", charErr.InvalidUTF8, charErr.Byte, tt.invalid, tt.b)
			}
			if charErr.Pos.Column != tt.column {
				t.Errorf("Pos = %s, want column %d", charErr.Pos, tt.column)
			}
			if err.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.message)
			}
		})
	}
}

func TestTokenizeEndsWithSingleEOF(t *testing.T) {
	inputs := []string{"", "   ", "x", "devprint 1 + 2;", "a;\nb;\n", "\t(\n)\t"}

	for _, input := range inputs {
		tokens, err := Tokenize(input)
		if err != nil {
			t.Fatalf("Tokenize(%q) error = %v", input, err)
		}

		eofCount := 0
		for _, tok := range tokens {
			if tok.Kind == TokenEOF {
				eofCount++
			}
		}
		if eofCount != 1 || tokens[len(tokens)-1].Kind != TokenEOF {
			t.Errorf("Tokenize(%q) = %v, want exactly one trailing Eof", input, tokens)
		}
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"devprint ( a + 12 ) * b_2 ;",
		"var x : int32 = 5 ;",
		"fn f ( a , b ) > int16 begin return a / b ; end",
		"none in as",
	}

	for _, input := range inputs {
		tokens, err := Tokenize(input)
		if err != nil {
			t.Fatalf("Tokenize(%q) error = %v", input, err)
		}

		words := strings.Fields(input)
		if len(tokens) != len(words)+1 {
			t.Fatalf("Tokenize(%q) returned %d tokens, want %d", input, len(tokens), len(words)+1)
		}

		var rebuilt []string
		for _, tok := range tokens[:len(tokens)-1] {
			rebuilt = append(rebuilt, tokenText(tok))
		}
		if strings.Join(rebuilt, " ") != input {
			t.Errorf("rebuilt %q, want %q", strings.Join(rebuilt, " "), input)
		}

		again, err := Tokenize(strings.Join(rebuilt, " "))
		if err != nil || !equalKinds(kinds(again), kinds(tokens)) {
			t.Errorf("re-tokenizing %q changed the kinds: %v", input, err)
		}
	}
}

// tokenText restores the source text of a token
func tokenText(tok Token) string {
	if tok.Text != "" {
		return tok.Text
	}
	for r, kind := range punctuation {
		if kind == tok.Kind {
			return string(r)
		}
	}
	return ""
}

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind     TokenKind
		expected string
	}{
		{TokenPlus, "Plus"},
		{TokenSemiColon, "SemiColon"},
		{TokenKeywordDevprint, "KeywordDevprint"},
		{TokenTypeInt32, "TypeInt32"},
		{TokenParenthesisClose, "ParenthesisClose"},
		{TokenEOF, "Eof"},
		{TokenKind(0), "TokenKind(0)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}

	if TokenKind(0).Valid() || !TokenEOF.Valid() || TokenKind(99).Valid() {
		t.Error("Valid() does not match the defined range")
	}

	if got := (Token{Kind: TokenNumber, Text: "7"}).String(); got != "Number 7" {
		t.Errorf("Token.String() = %q", got)
	}
	if got := (Token{Kind: TokenComma}).String(); got != "Comma" {
		t.Errorf("Token.String() = %q", got)
	}
}

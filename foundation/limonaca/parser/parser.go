// File: parser.go
// Title: Limonaca Recursive Descent Parser
// Description: Converts token sequences into syntax trees. One grammar
//              method per precedence level; the read position lives in a
//              cursor created for each call.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial parser implementation

package parser

import (
	mdwast "github.com/msto63/limonaca/foundation/limonaca/ast"
)

// Options configures parser behavior
type Options struct {
	// LenientParens skips the token after a parenthesised expression
	// without checking that it is ')'.
	LenientParens bool

	// MaxTokens rejects longer token sequences; 0 means unlimited.
	MaxTokens int
}

// Parser parses Limonaca token sequences. It holds no per-parse state and
// may be shared between goroutines.
type Parser struct {
	options Options
}

// New creates a new parser with the given options
func New(opts Options) *Parser {
	if opts.MaxTokens < 0 {
		opts.MaxTokens = 0
	}
	return &Parser{options: opts}
}

// Options returns the options the parser was created with
func (p *Parser) Options() Options {
	return p.options
}

var defaultParser = New(Options{})

// Parse parses one statement with the default options
func Parse(tokens []Token) (*mdwast.Node, error) {
	return defaultParser.Parse(tokens)
}

// ParseSource tokenizes source and parses one statement with the default
// options
func ParseSource(source string) (*mdwast.Node, error) {
	return defaultParser.ParseSource(source)
}

// Parse parses exactly one statement starting at the first token. Tokens
// after the terminating ';' are ignored.
func (p *Parser) Parse(tokens []Token) (*mdwast.Node, error) {
	if err := p.checkLimit(tokens); err != nil {
		return nil, err
	}

	c := &cursor{tokens: tokens}
	return p.parseStatement(c)
}

// ParseProgram parses statements until the end of input
func (p *Parser) ParseProgram(tokens []Token) ([]*mdwast.Node, error) {
	if err := p.checkLimit(tokens); err != nil {
		return nil, err
	}

	c := &cursor{tokens: tokens}
	var statements []*mdwast.Node
	for c.peek().Kind != TokenEOF {
		stmt, err := p.parseStatement(c)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// ParseSource tokenizes source and parses one statement
func (p *Parser) ParseSource(source string) (*mdwast.Node, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens)
}

func (p *Parser) checkLimit(tokens []Token) error {
	if p.options.MaxTokens > 0 && len(tokens) > p.options.MaxTokens {
		return &TooManyTokensError{Count: len(tokens), Limit: p.options.MaxTokens}
	}
	return nil
}

// cursor is the read position of a single parse call
type cursor struct {
	tokens []Token
	pos    int
}

// peek returns the current token. Past the end of the sequence it returns
// a synthetic TokenEOF.
func (c *cursor) peek() Token {
	if c.pos < len(c.tokens) {
		return c.tokens[c.pos]
	}

	eof := Token{Kind: TokenEOF, Line: 1, Column: 1}
	if n := len(c.tokens); n > 0 {
		last := c.tokens[n-1]
		eof.Offset, eof.Line, eof.Column = last.Offset, last.Line, last.Column
	}
	return eof
}

// next returns the current token and moves past it. The cursor stays on
// TokenEOF once reached.
func (c *cursor) next() Token {
	tok := c.peek()
	if tok.Kind != TokenEOF {
		c.pos++
	}
	return tok
}

// parseStatement parses: "devprint" expression ";" | expression ";"
func (p *Parser) parseStatement(c *cursor) (*mdwast.Node, error) {
	if start := c.peek(); start.Kind == TokenKeywordDevprint {
		c.next()

		expr, err := p.parseExpression(c)
		if err != nil {
			return nil, err
		}
		if err := expectSemiColon(c); err != nil {
			return nil, err
		}
		return mdwast.NewDevprint(expr, start.Pos()), nil
	}

	expr, err := p.parseExpression(c)
	if err != nil {
		return nil, err
	}
	if err := expectSemiColon(c); err != nil {
		return nil, err
	}
	return expr, nil
}

func expectSemiColon(c *cursor) error {
	if tok := c.peek(); tok.Kind != TokenSemiColon {
		return &UnterminatedStatementError{Found: tok}
	}
	c.next()
	return nil
}

// parseExpression parses: term (("+" | "-") term)*
func (p *Parser) parseExpression(c *cursor) (*mdwast.Node, error) {
	left, err := p.parseTerm(c)
	if err != nil {
		return nil, err
	}

	for c.peek().Kind == TokenPlus || c.peek().Kind == TokenMinus {
		op := c.next()

		right, err := p.parseTerm(c)
		if err != nil {
			return nil, err
		}

		kind, err := additiveKind(op)
		if err != nil {
			return nil, err
		}
		left = mdwast.NewBinary(kind, left, right, op.Pos())
	}

	return left, nil
}

// parseTerm parses: factor (("*" | "/") factor)*
func (p *Parser) parseTerm(c *cursor) (*mdwast.Node, error) {
	left, err := p.parseFactor(c)
	if err != nil {
		return nil, err
	}

	for c.peek().Kind == TokenStar || c.peek().Kind == TokenSlash {
		op := c.next()

		right, err := p.parseFactor(c)
		if err != nil {
			return nil, err
		}

		kind, err := multiplicativeKind(op)
		if err != nil {
			return nil, err
		}
		left = mdwast.NewBinary(kind, left, right, op.Pos())
	}

	return left, nil
}

// parseFactor parses: "(" expression ")" | NUMBER | IDENTIFIER
func (p *Parser) parseFactor(c *cursor) (*mdwast.Node, error) {
	tok := c.peek()

	switch tok.Kind {
	case TokenParenthesisOpen:
		c.next()
		expr, err := p.parseExpression(c)
		if err != nil {
			return nil, err
		}

		if closing := c.peek(); !p.options.LenientParens && closing.Kind != TokenParenthesisClose {
			return nil, &UnclosedGroupError{Open: tok, Found: closing}
		}
		c.next()
		return expr, nil

	case TokenNumber:
		c.next()
		return mdwast.NewNumber(tok.Text, tok.Pos()), nil

	case TokenIdentifier:
		c.next()
		return mdwast.NewIdentifier(tok.Text, tok.Pos()), nil

	default:
		return nil, &UnexpectedTokenError{Found: tok}
	}
}

func additiveKind(op Token) (mdwast.Kind, error) {
	switch op.Kind {
	case TokenPlus:
		return mdwast.KindPlus, nil
	case TokenMinus:
		return mdwast.KindMinus, nil
	default:
		return 0, &UnexpectedOperatorError{Operator: op}
	}
}

func multiplicativeKind(op Token) (mdwast.Kind, error) {
	switch op.Kind {
	case TokenStar:
		return mdwast.KindMultiply, nil
	case TokenSlash:
		return mdwast.KindDivide, nil
	default:
		return 0, &UnexpectedOperatorError{Operator: op}
	}
}

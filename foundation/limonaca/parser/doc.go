// File: doc.go
// Title: Limonaca Parser Package Documentation
// Description: Tokenizer and recursive descent parser for the Limonaca
//              language.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial parser implementation

/*
Package parser turns Limonaca source text into syntax trees.

Tokenize classifies every non-whitespace character of the input and always
terminates the result with a single TokenEOF. Parse consumes such a sequence
and returns the tree of one statement:

	statement  := "devprint" expression ";" | expression ";"
	expression := term (("+" | "-") term)*
	term       := factor (("*" | "/") factor)*
	factor     := "(" expression ")" | NUMBER | IDENTIFIER

Binary operators are left-associative. ParseProgram repeats the statement
rule until the end of input.

Every failure is returned as one of the typed errors in this package, all
implementing Error. Nothing is logged or printed here.

Example:

	tokens, err := parser.Tokenize("devprint (1 + 2) * x;")
	if err != nil {
		return err
	}
	node, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	fmt.Println(node) // Devprint(Multiply(Plus(Number(1), Number(2)), Identifier(x)))
*/
package parser

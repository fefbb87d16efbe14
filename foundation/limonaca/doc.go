// File: doc.go
// Title: Limonaca Package Documentation
// Description: Front end of the Limonaca language: tokenizer, parser,
//              syntax tree and the engine that ties them together.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial Limonaca engine

/*
Package limonaca implements the front end of the Limonaca language.

Limonaca is a minimal expression-oriented language. The implemented grammar
covers arithmetic over identifiers and integer literals and a single
statement form for debug output, each statement terminated by ';':

	devprint (width + 2) * height;
	total - 1;

The work is split over three packages:

  - parser: tokenizer and recursive descent parser
  - ast: immutable syntax tree, printer and traversal
  - source: loading source text from files and readers

Engine combines them for applications. Every call gets its own run id,
which is attached to log entries and to returned errors:

	engine := limonaca.New(limonaca.Options{Logger: logger})
	result, err := engine.ParseFile("code.liml")
	if err != nil {
		return err // *mdwerror.Error carrying LIM_SYNTAX, LOAD_FAILED, ...
	}
	for _, stmt := range result.Statements {
		_ = ast.Fprint(os.Stdout, stmt)
	}

The parser packages themselves never log; logging happens in Engine only.
*/
package limonaca

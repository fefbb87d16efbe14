// Package error provides structured error handling for the limonaca tools.
//
// Package: error
// Title: Limonaca Error Handling Framework
// Description: Structured errors with codes, severities, details and the
//              operation that failed. Front-end failures (lexical and syntax
//              errors, source loading, configuration) are wrapped into this
//              type at the engine boundary so that they can be logged and
//              presented consistently.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Reduced to the codes used by the Limonaca front end
//
// Usage:
//
//	err := error.Wrap(parseErr, "parse failed").
//		WithCode(error.CodeSyntax).
//		WithOperation("parse").
//		WithDetail("file", "code.liml")
//
//	if error.HasCode(err, error.CodeSyntax) {
//		// report to the user
//	}
package error

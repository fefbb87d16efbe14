// ============================================================================
// limonaca - Limonaca language front end
// ============================================================================
//
// Package:     repl
// Description: Message types for async operations in the REPL
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package repl

// Entry is one evaluated input line
type Entry struct {
	Input  string
	Output string // Rendered tree or error text
	Failed bool
}

// parsedMsg is sent when an input line has been parsed
type parsedMsg struct {
	entry Entry
}

// clearMsg clears the history
type clearMsg struct{}

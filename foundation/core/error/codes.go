// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the limonaca tools.
//              Codes classify failures by the phase that produced them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Language front-end codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Source loading
	CodeLoadFailed Code = "LOAD_FAILED"

	// Language front end
	CodeLexical         Code = "LIM_LEXICAL"
	CodeSyntax          Code = "LIM_SYNTAX"
	CodeParserInvariant Code = "LIM_INTERNAL"
	CodeLimitExceeded   Code = "LIM_LIMIT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeLoadFailed,
		CodeLexical, CodeSyntax, CodeParserInvariant, CodeLimitExceeded,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLoadFailed:
		return "source"
	case CodeLexical, CodeSyntax, CodeParserInvariant, CodeLimitExceeded:
		return "language"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for the CLI.
func (c Code) ExitCode() int {
	switch c {
	case CodeLexical, CodeSyntax, CodeLimitExceeded:
		return 1
	case CodeLoadFailed:
		return 2
	case CodeConfigError, CodeInvalidConfig, CodeInvalidInput:
		return 3
	default:
		return 70
	}
}

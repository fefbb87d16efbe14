// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level for an error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.2.0: Severity mapping for front-end codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers problems in user input such as syntax errors
	SeverityLow Severity = iota

	// SeverityMedium covers failures with an obvious workaround
	SeverityMedium

	// SeverityHigh covers broken configuration or unreadable sources
	SeverityHigh

	// SeverityCritical covers violated internal invariants
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeParserInvariant, CodeInternal:
		return SeverityCritical
	case CodeLoadFailed, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeLexical, CodeSyntax, CodeLimitExceeded, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

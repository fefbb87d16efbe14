// ============================================================================
// limonaca - Limonaca language front end
// ============================================================================
//
// Package:     version
// Description: Central version information of the tools and the grammar
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Tool version
	Version = "0.1.0"

	// Grammar revision understood by the parser
	Language = "0.1"
)

// Build metadata, set with -ldflags "-X ...version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// String returns the full version line printed by the CLI
func String() string {
	return fmt.Sprintf("limonaca %s (language %s, commit %s, built %s)", Version, Language, Commit, BuildDate)
}

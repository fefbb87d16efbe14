// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the small set of Unicode-safe string
//              helpers shared by the Limonaca tools.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-16 v0.3.0: Reduced to the helpers used by the Limonaca tools

// Package stringx provides Unicode-safe string helpers that extend the
// standard strings package.
//
// All functions count runes, not bytes, so multi-byte characters are never
// split:
//
//	stringx.IsBlank(" \t\n")                  // true
//	stringx.Truncate("devprint 1 + 2;", 8, "…") // "devprin…"
//	stringx.PadRight("1:3", 6, ' ')          // "1:3   "
//	stringx.SplitLines("a;\r\nb;")           // []string{"a;", "b;"}
package stringx

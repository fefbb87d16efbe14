// File: doc.go
// Title: Package Documentation for filex
// Description: Package filex provides the file helpers shared by the
//              Limonaca tools: existence checks, size formatting, reading
//              and search-path resolution.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples and mDW integration
// - 2026-10-16 v0.2.0: Reduced to the helpers used by the Limonaca tools

// Package filex implements file helpers that extend the os and path/filepath
// packages.
//
// Existence and type checks never return errors; a path that cannot be
// stat'ed simply does not exist. Reading functions wrap the underlying error
// with the path:
//
//	if filex.IsFile("code.liml") {
//		text, err := filex.ReadString("code.liml")
//		...
//	}
//
// FirstExisting resolves search paths such as configuration file locations,
// expanding a leading "~/" to the user's home directory.
package filex

// ============================================================================
// limonaca - Limonaca language front end
// ============================================================================
//
// Package:     main
// Description: Entry point of the limonaca command line tool
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package main

import (
	"os"

	"github.com/msto63/limonaca/cmd/limonaca/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

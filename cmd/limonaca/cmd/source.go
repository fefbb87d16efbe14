// ============================================================================
// limonaca - Limonaca language front end
// ============================================================================
//
// Package:     cmd
// Description: Source file argument handling shared by the commands
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/limonaca/foundation/core/log"
	mdwsource "github.com/msto63/limonaca/foundation/limonaca/source"
)

// stdinDisplayName names standard input in error messages
const stdinDisplayName = "<stdin>"

// sourcePath returns the file argument, or the default source file
func sourcePath(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return mdwsource.DefaultFile
	}
	return args[0]
}

// readSource reads the file argument, "-" meaning standard input
func (a *app) readSource(cmd *cobra.Command, path string) (string, error) {
	if path == mdwsource.StdinName {
		return mdwsource.Read(stdinDisplayName, cmd.InOrStdin())
	}

	if !mdwsource.HasSourceExtension(path) {
		a.logger.Warn("Source file does not use the "+mdwsource.Extension+" extension", mdwlog.Fields{"path": path})
	}
	return mdwsource.Load(path)
}

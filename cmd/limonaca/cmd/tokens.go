// ============================================================================
// limonaca - Limonaca language front end
// ============================================================================
//
// Package:     cmd
// Description: tokens command - prints the token listing of a source
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/limonaca/internal/render"
)

func (a *app) newTokensCmd() *cobra.Command {
	var positions bool

	tokensCmd := &cobra.Command{
		Use:     "tokens [file]",
		Aliases: []string{"lex", "tokenize"},
		Short:   "Prints the tokens of a source file",
		Long: `Splits the source into tokens and prints one token per line as
"<Kind> <Text>". The listing always ends with Eof.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readSource(cmd, sourcePath(args))
			if err != nil {
				return err
			}

			result, err := a.engine(false).Tokenize(text)
			if err != nil {
				return &sourceError{err: err, source: text}
			}

			style := a.style()
			style.Positions = positions
			return render.Tokens(cmd.OutOrStdout(), result.Tokens, style)
		},
	}

	tokensCmd.Flags().BoolVarP(&positions, "positions", "p", false, "Prefix each token with line:column")
	return tokensCmd
}

// ============================================================================
// limonaca - Limonaca language front end
// ============================================================================
//
// Package:     render
// Description: Error output with the offending source line
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	mdwparser "github.com/msto63/limonaca/foundation/limonaca/parser"
)

// Error writes "Error: <message>". When err carries a source position that
// lies inside source, the source line and a caret under the column follow.
func Error(w io.Writer, err error, source string, style Style) error {
	if err == nil {
		return nil
	}

	head := "Error:"
	if style.Color {
		head = ErrorStyle.Render(head)
	}
	if _, werr := fmt.Fprintf(w, "%s %s\n", head, err.Error()); werr != nil {
		return werr
	}

	line, caret, ok := errorContext(err, source)
	if !ok {
		return nil
	}
	if style.Color {
		caret = CaretStyle.Render(caret)
	}
	_, werr := fmt.Fprintf(w, "  %s\n  %s\n", line, caret)
	return werr
}

// errorContext returns the source line of err's position and the caret line
// pointing at its column
func errorContext(err error, source string) (string, string, bool) {
	var perr mdwparser.Error
	if !errors.As(err, &perr) || source == "" {
		return "", "", false
	}

	pos := perr.Position()
	// Lines are counted on '\n' only, as the tokenizer does
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return "", "", false
	}

	line := strings.TrimRight(lines[pos.Line-1], "\r")
	runes := []rune(line)
	col := pos.Column - 1
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}

	// Keep tabs so the caret lines up with the source line
	var caret strings.Builder
	for _, r := range runes[:col] {
		if r == '\t' {
			caret.WriteRune('\t')
		} else {
			caret.WriteRune(' ')
		}
	}
	caret.WriteRune('^')
	return line, caret.String(), true
}

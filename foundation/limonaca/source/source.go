// File: source.go
// Title: Limonaca Source Provider
// Description: Loads Limonaca source text from files or readers. Failures
//              are reported as load errors, distinct from syntax errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial source provider

// Package source supplies Limonaca source text to the tokenizer.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"unicode/utf8"

	mdwerror "github.com/msto63/limonaca/foundation/core/error"
	mdwfilex "github.com/msto63/limonaca/foundation/utils/filex"
)

const (
	// DefaultFile is read when no path is given
	DefaultFile = "code.liml"

	// Extension is the conventional extension of Limonaca source files
	Extension = ".liml"

	// StdinName selects standard input in command-line arguments
	StdinName = "-"
)

// ErrNotAFile is the cause of a LoadError for directories and other
// non-regular files
var ErrNotAFile = errors.New("not a regular file")

// ErrInvalidEncoding is the cause of a LoadError for input that is not UTF-8
var ErrInvalidEncoding = errors.New("input is not valid UTF-8")

// LoadError reports that source text could not be supplied
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause
func (e *LoadError) Unwrap() error { return e.Err }

// Code returns LOAD_FAILED
func (e *LoadError) Code() mdwerror.Code { return mdwerror.CodeLoadFailed }

// Load reads the source file at path. An empty path reads DefaultFile.
func Load(path string) (string, error) {
	if path == "" {
		path = DefaultFile
	}

	if !mdwfilex.Exists(path) {
		return "", &LoadError{Path: path, Err: fs.ErrNotExist}
	}
	if !mdwfilex.IsFile(path) {
		return "", &LoadError{Path: path, Err: ErrNotAFile}
	}

	text, err := mdwfilex.ReadString(path)
	if err != nil {
		return "", &LoadError{Path: path, Err: errors.Unwrap(err)}
	}
	if !utf8.ValidString(text) {
		return "", &LoadError{Path: path, Err: ErrInvalidEncoding}
	}
	return text, nil
}

// Read reads source text from r; name identifies the input in errors.
func Read(name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &LoadError{Path: name, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &LoadError{Path: name, Err: ErrInvalidEncoding}
	}
	return string(data), nil
}

// HasSourceExtension reports whether path uses the .liml extension. Other
// files are still accepted by Load.
func HasSourceExtension(path string) bool {
	return mdwfilex.HasExt(path, Extension)
}

// File: engine.go
// Title: Limonaca Engine
// Description: High-level interface that tokenizes, parses and loads
//              Limonaca source with logging, timing and structured errors.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial engine implementation
// - 2026-10-16 v0.1.1: Failures logged at debug through the run timer,
//                      trace entries per token and node

package limonaca

import (
	"errors"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/limonaca/foundation/core/error"
	mdwlog "github.com/msto63/limonaca/foundation/core/log"
	mdwast "github.com/msto63/limonaca/foundation/limonaca/ast"
	mdwparser "github.com/msto63/limonaca/foundation/limonaca/parser"
	mdwsource "github.com/msto63/limonaca/foundation/limonaca/source"
	mdwstringx "github.com/msto63/limonaca/foundation/utils/stringx"
)

// previewLength limits the source excerpt written to debug logs
const previewLength = 40

// Engine coordinates source loading, tokenizing and parsing
type Engine struct {
	parser  *mdwparser.Parser
	logger  *mdwlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to the default logger)
	Logger *mdwlog.Logger

	// LenientParens skips the token after a parenthesised expression
	// without checking that it is ')'
	LenientParens bool

	// MaxTokens rejects longer inputs (0 = unlimited)
	MaxTokens int
}

// Result is the outcome of one engine call
type Result struct {
	RunID      string            `json:"run_id" yaml:"run_id"`
	Tokens     []mdwparser.Token `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Statements []*mdwast.Node    `json:"statements,omitempty" yaml:"statements,omitempty"`
}

// New creates a new engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxTokens < 0 {
		opts.MaxTokens = 0
	}

	logger := opts.Logger.WithField("component", "limonaca-engine")
	logger.Debug("Limonaca engine initialized", mdwlog.Fields{
		"lenientParens": opts.LenientParens,
		"maxTokens":     opts.MaxTokens,
	})

	return &Engine{
		parser: mdwparser.New(mdwparser.Options{
			LenientParens: opts.LenientParens,
			MaxTokens:     opts.MaxTokens,
		}),
		logger:  logger,
		options: opts,
	}
}

// Options returns the options the engine was created with
func (e *Engine) Options() Options {
	return e.options
}

// Tokenize converts source into tokens
func (e *Engine) Tokenize(source string) (*Result, error) {
	r := e.begin("tokenize", source)

	tokens, err := r.tokenize(source)
	if err != nil {
		return nil, err
	}

	r.timer.WithField("tokens", len(tokens)).Stop()
	return &Result{RunID: r.id, Tokens: tokens}, nil
}

// Parse tokenizes source and parses exactly one statement
func (e *Engine) Parse(source string) (*Result, error) {
	r := e.begin("parse", source)

	tokens, err := r.tokenize(source)
	if err != nil {
		return nil, err
	}

	node, err := e.parser.Parse(tokens)
	if err != nil {
		return nil, r.fail(err, "parse failed")
	}

	statements := []*mdwast.Node{node}
	r.traceStatements(statements)
	r.timer.WithField("tokens", len(tokens)).Stop()
	return &Result{RunID: r.id, Tokens: tokens, Statements: statements}, nil
}

// ParseProgram tokenizes source and parses every statement in it
func (e *Engine) ParseProgram(source string) (*Result, error) {
	r := e.begin("parse-program", source)
	return e.parseProgram(r, source)
}

// ParseFile loads the file at path and parses every statement in it. An
// empty path reads the default source file.
func (e *Engine) ParseFile(path string) (*Result, error) {
	if path == "" {
		path = mdwsource.DefaultFile
	}

	r := e.begin("parse-file", "")
	r.logger = r.logger.WithField("path", path)
	r.timer.WithField("path", path)
	if !mdwsource.HasSourceExtension(path) {
		r.logger.Warn("Source file does not use the " + mdwsource.Extension + " extension")
	}

	text, err := mdwsource.Load(path)
	if err != nil {
		return nil, r.fail(err, "failed to load source")
	}
	r.timer.WithField("bytes", len(text))

	return e.parseProgram(r, text)
}

func (e *Engine) parseProgram(r *run, source string) (*Result, error) {
	tokens, err := r.tokenize(source)
	if err != nil {
		return nil, err
	}

	statements, err := e.parser.ParseProgram(tokens)
	if err != nil {
		return nil, r.fail(err, "parse failed")
	}

	r.traceStatements(statements)
	r.timer.WithField("tokens", len(tokens)).WithField("statements", len(statements)).Stop()
	return &Result{RunID: r.id, Tokens: tokens, Statements: statements}, nil
}

// run carries the logging context of a single engine call
type run struct {
	id     string
	op     string
	logger *mdwlog.Logger
	timer  *mdwlog.Timer
}

func (e *Engine) begin(op, source string) *run {
	id := uuid.NewString()
	logger := e.logger.WithCorrelationID(id).WithFields(mdwlog.Fields{"operation": op})

	fields := mdwlog.Fields{}
	if source != "" {
		fields["bytes"] = len(source)
		fields["preview"] = mdwstringx.Truncate(source, previewLength, "...")
	}
	logger.Debug("Starting "+op, fields)

	return &run{id: id, op: op, logger: logger, timer: logger.StartTimer(op)}
}

func (r *run) tokenize(source string) ([]mdwparser.Token, error) {
	tokens, err := mdwparser.Tokenize(source)
	if err != nil {
		return nil, r.fail(err, "tokenization failed")
	}
	r.traceTokens(tokens)
	return tokens, nil
}

func (r *run) traceTokens(tokens []mdwparser.Token) {
	if !r.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		return
	}
	for _, tok := range tokens {
		r.logger.Trace("Token", mdwlog.Field("token", tok.String()), mdwlog.Fields{
			"line":   tok.Line,
			"column": tok.Column,
		})
	}
}

func (r *run) traceStatements(statements []*mdwast.Node) {
	if !r.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		return
	}
	for i, stmt := range statements {
		mdwast.Walk(stmt, func(n *mdwast.Node, depth int) bool {
			r.logger.Trace("Node", mdwlog.Field("node", mdwast.Label(n)), mdwlog.Fields{
				"statement": i,
				"depth":     depth,
			})
			return true
		})
	}
}

// fail wraps err with the code, position and run id and stops the timer
// with it. Failures are logged at debug level only; presenting them is up
// to the caller.
func (r *run) fail(err error, message string) error {
	wrapped := mdwerror.Wrap(err, message).
		WithOperation("limonaca."+r.op).
		WithRunID(r.id)

	var coded interface{ Code() mdwerror.Code }
	if errors.As(err, &coded) {
		wrapped = wrapped.WithCode(coded.Code())
	} else {
		wrapped = wrapped.WithCode(mdwerror.CodeInternal)
	}

	var parseErr mdwparser.Error
	if errors.As(err, &parseErr) {
		if pos := parseErr.Position(); pos.Line > 0 {
			wrapped = wrapped.WithDetail("line", pos.Line).WithDetail("column", pos.Column)
		}
	}

	var loadErr *mdwsource.LoadError
	if errors.As(err, &loadErr) {
		wrapped = wrapped.WithDetail("path", loadErr.Path)
	}

	r.timer.StopWithError(wrapped)
	return wrapped
}

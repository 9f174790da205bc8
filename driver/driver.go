// Package driver wires a Tokenizer to a TreeBuilder and runs one parse to
// completion. It owns no tree representation: the caller supplies a
// TreeSink and a finalizer that knows how to pull the finished tree back
// out of it.
package driver

import (
	"github.com/renato-zannon/html5ever/herrors"
	"github.com/renato-zannon/html5ever/tokenizer"
	"github.com/renato-zannon/html5ever/treebuilder"
)

// ParseResult pairs the finalized tree with whatever parse errors the sink
// observed along the way. Parse errors are advisory (WHATWG HTML §13.2.2),
// never fatal.
type ParseResult[T any] struct {
	Tree   T
	Errors herrors.ParseErrors
}

// Config collects the few knobs a driver call needs beyond the
// tokenizer/tree-builder option lists themselves.
type Config struct {
	TokenizerOpts   []tokenizer.Option
	TreeBuilderOpts []treebuilder.Option
	Fragment        *treebuilder.FragmentContext
}

// Finalize extracts a caller-defined tree representation T from sink once
// parsing has finished. It runs after End() so every token, including the
// synthetic EOF, has already been applied.
type Finalize[T any] func(sink treebuilder.TreeSink, tb *treebuilder.TreeBuilder) T

// Parse feeds html through a Tokenizer/TreeBuilder pair wired to sink, runs
// to completion, and returns finalize's result alongside every parse error
// the sink recorded. It is ParseChunks for the common case of one
// already-assembled string.
func Parse[T any](html string, sink treebuilder.TreeSink, finalize Finalize[T], cfg Config) ParseResult[T] {
	if html == "" {
		return ParseChunks[T](nil, sink, finalize, cfg)
	}
	return ParseChunks[T]([]string{html}, sink, finalize, cfg)
}

// ParseChunks wires a fresh Tokenizer/TreeBuilder pair to sink, runs feed
// once per chunk in chunks then a single end, and returns finalize's
// result. The tree builder keeps the tokenizer's AllowCDATA
// flag current as each token is processed, so chunk boundaries may fall
// anywhere the caller's I/O naturally produces them.
func ParseChunks[T any](chunks []string, sink treebuilder.TreeSink, finalize Finalize[T], cfg Config) ParseResult[T] {
	collector := &errorCollector{}
	wrapped := wrapCollecting(sink, collector)

	var tb *treebuilder.TreeBuilder
	tok := tokenizer.New(nil, cfg.TokenizerOpts...)

	if cfg.Fragment != nil {
		tb = treebuilder.NewFragment(wrapped, tok, cfg.Fragment, cfg.TreeBuilderOpts...)
	} else {
		tb = treebuilder.New(wrapped, tok, cfg.TreeBuilderOpts...)
	}
	tok.SetSink(tb)

	for _, chunk := range chunks {
		if chunk != "" {
			tok.Feed(chunk)
		}
	}
	tok.End()

	return ParseResult[T]{
		Tree:   finalize(sink, tb),
		Errors: collector.errs,
	}
}

// errorCollector accumulates every ParseError message the sink observes,
// in the order they were reported.
type errorCollector struct {
	errs herrors.ParseErrors
}

// add records one already-rendered ParseError message. TreeSink.ParseError
// only carries the rendered text, not the structured code/line/column that
// produced it, so Code is left blank here; callers that need the code
// should match on the text itself.
func (c *errorCollector) add(message string) {
	c.errs = append(c.errs, &herrors.ParseError{Message: message})
}

// collectingSink forwards every TreeSink call to an inner sink, recording
// ParseError messages on the way through.
type collectingSink struct {
	treebuilder.TreeSink
	collector *errorCollector
}

func (c *collectingSink) ParseError(message string) {
	c.collector.add(message)
	c.TreeSink.ParseError(message)
}

func wrapCollecting(sink treebuilder.TreeSink, collector *errorCollector) treebuilder.TreeSink {
	return &collectingSink{TreeSink: sink, collector: collector}
}

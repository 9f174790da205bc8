package herrors

import (
	"fmt"
	"strings"
)

// ParseError is a single advisory diagnostic with an optional source
// location, per the "parse error" concept of WHATWG HTML §13.2.2. It is
// never returned from Tokenizer/TreeBuilder calls. It travels as rendered
// text: tokenizer errors as a ParseErrorToken through TokenSink.ProcessToken,
// and tree-builder errors (plus tokenizer errors the tree builder forwards)
// through TreeSink.ParseError.
type ParseError struct {
	Code    string
	Message string
	Line    int
	Column  int
}

// New builds a ParseError in exact_errors mode: Message is the full
// human-readable text for Code.
func New(code string, line, column int) *ParseError {
	return &ParseError{Code: code, Message: Message(code), Line: line, Column: column}
}

// Coarse builds a ParseError for non-exact_errors mode: Message is just the
// bare code, a cheap fallback when callers don't need the prose text.
func Coarse(code string, line, column int) *ParseError {
	return &ParseError{Code: code, Message: code, Line: line, Column: column}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Code, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ParseErrors aggregates every ParseError observed during one parse. It
// implements error so callers that collect errors (driver.Parse, the
// WithCollectErrors option) can surface the whole batch through the usual
// error-handling idiom.
type ParseErrors []*ParseError

// Error implements the error interface.
func (e ParseErrors) Error() string {
	switch len(e) {
	case 0:
		return "no parse errors"
	case 1:
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d parse errors:\n", len(e))
	for i, err := range e {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap supports errors.Is/errors.As across the whole batch.
func (e ParseErrors) Unwrap() []error {
	out := make([]error, len(e))
	for i, err := range e {
		out[i] = err
	}
	return out
}

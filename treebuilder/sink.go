// Package treebuilder implements HTML5 tree construction (WHATWG HTML
// §13.2.6): the insertion-mode state machine that turns a tokenizer.Token
// stream into calls against an abstract TreeSink. It never references a
// concrete DOM representation directly — any sink implementing TreeSink can
// be driven.
package treebuilder

import "github.com/renato-zannon/html5ever/tokenizer"

// Handle is an opaque node identifier owned by the sink. The tree builder
// only ever clones and compares handles via SameNode; it never inspects
// their representation.
type Handle any

// QualName re-exports the tokenizer's (namespace, local) pair.
type QualName = tokenizer.QualName

// QuirksMode records the document compatibility mode, decided once while
// processing the Initial insertion mode.
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	Quirks
	LimitedQuirks
)

// NodeOrText is either a Handle (IsText=false) or raw text (IsText=true),
// the payload type shared by Append and AppendBeforeSibling.
type NodeOrText struct {
	IsText bool
	Handle Handle
	Text   string
}

// TextNode builds a NodeOrText carrying text.
func TextNode(s string) NodeOrText { return NodeOrText{IsText: true, Text: s} }

// ElementNode builds a NodeOrText carrying a handle.
func ElementNode(h Handle) NodeOrText { return NodeOrText{IsText: false, Handle: h} }

// TreeSink is the tree builder's only collaborator. A sink decides its own
// internal node representation; the tree builder treats every Handle as
// opaque.
type TreeSink interface {
	ParseError(message string)
	GetDocument() Handle
	SetQuirksMode(mode QuirksMode)
	SameNode(a, b Handle) bool
	ElemName(h Handle) QualName
	CreateElement(name QualName, attrs []tokenizer.Attr) Handle
	CreateComment(text string) Handle

	// Append inserts child as the last child of parent, or merges it with a
	// trailing text sibling when child is text.
	Append(parent Handle, child NodeOrText)

	// AppendBeforeSibling inserts child immediately before sibling. It
	// reports ok=false (and returns the rejected node) only when sibling
	// currently has no parent.
	AppendBeforeSibling(sibling Handle, child NodeOrText) (ok bool, rejected NodeOrText)

	AppendDoctypeToDocument(name, publicID, systemID string)

	// AddAttrsIfMissing performs a non-destructive merge by attribute name.
	AddAttrsIfMissing(target Handle, attrs []tokenizer.Attr)

	RemoveFromParent(target Handle)
	MarkScriptAlreadyStarted(h Handle)
}

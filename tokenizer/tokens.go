// Package tokenizer implements the HTML5 tokenization stage (WHATWG HTML
// §13.2.5): a streaming lexical state machine that turns text chunks into a
// Token stream.
package tokenizer

import "github.com/renato-zannon/html5ever/internal/constants"

// TokenKind tags the Token sum type.
type TokenKind int

// Token kinds: Doctype, Tag(Start|End), Comment, CharacterTokens,
// NullCharacter, EOF, ParseError.
const (
	DoctypeToken TokenKind = iota
	StartTagToken
	EndTagToken
	CommentToken
	CharacterTokensToken
	NullCharacterToken
	EOFToken
	ParseErrorToken
)

func (k TokenKind) String() string {
	switch k {
	case DoctypeToken:
		return "Doctype"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case CommentToken:
		return "Comment"
	case CharacterTokensToken:
		return "CharacterTokens"
	case NullCharacterToken:
		return "NullCharacter"
	case EOFToken:
		return "EOF"
	case ParseErrorToken:
		return "ParseError"
	default:
		return "Unknown"
	}
}

// QualName is a (namespace, local name) pair. Namespace is empty for plain
// HTML attributes/elements produced by the core tokenizer; the tree builder
// is the layer that assigns SVG/MathML/XLink/XML/XMLNS namespaces during
// foreign-content adjustment (WHATWG HTML §13.2.6.2).
type QualName struct {
	Namespace string
	Local     string
}

// HTML builds an unnamespaced QualName.
func HTML(local string) QualName { return QualName{Namespace: constants.NamespaceHTML, Local: local} }

// Attr is one tag attribute. Order within Attrs is insertion order;
// duplicate names are rejected at tokenization time.
type Attr struct {
	Name  QualName
	Value string
}

// Token is the tagged union the tokenizer emits. Which fields are
// meaningful depends on Kind:
//
//   - DoctypeToken: Name, PublicID, SystemID, ForceQuirks
//   - StartTagToken/EndTagToken: Name, Attrs, SelfClosing
//   - CommentToken: Data
//   - CharacterTokensToken: Data (a run of non-NUL characters)
//   - NullCharacterToken: no payload — always exactly one U+0000
//   - EOFToken: no payload
//   - ParseErrorToken: Data (advisory message)
type Token struct {
	Kind TokenKind

	Name        string
	Attrs       []Attr
	SelfClosing bool

	Data string

	PublicID    *string
	SystemID    *string
	ForceQuirks bool
}

// AttrVal returns the value of the named (unnamespaced) attribute, or "".
func (t *Token) AttrVal(name string) string {
	for _, a := range t.Attrs {
		if a.Name.Namespace == "" && a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the named (unnamespaced) attribute is present.
func (t *Token) HasAttr(name string) bool {
	for _, a := range t.Attrs {
		if a.Name.Namespace == "" && a.Name.Local == name {
			return true
		}
	}
	return false
}

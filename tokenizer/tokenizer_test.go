package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// collectingSink is the minimal TokenSink used throughout this package's
// tests: it just appends whatever it's given, with no tree semantics.
type collectingSink struct {
	tokens      []Token
	stateChange State
	hasChange   bool
}

func (s *collectingSink) ProcessToken(tok Token) { s.tokens = append(s.tokens, tok) }

func (s *collectingSink) QueryStateChange() (State, bool) {
	if s.hasChange {
		s.hasChange = false
		return s.stateChange, true
	}
	return InvalidState, false
}

func (s *collectingSink) charData() string {
	var out string
	for _, tok := range s.tokens {
		if tok.Kind == CharacterTokensToken {
			out += tok.Data
		}
	}
	return out
}

// nonErrorTokens returns the recorded tokens without the ParseErrorToken
// entries, which the tokenizer sends as soon as it detects a problem, ahead
// of the token it is still building.
func (s *collectingSink) nonErrorTokens() []Token {
	var out []Token
	for _, tok := range s.tokens {
		if tok.Kind != ParseErrorToken {
			out = append(out, tok)
		}
	}
	return out
}

func runAll(html string, opts ...Option) *collectingSink {
	sink := &collectingSink{}
	tok := New(sink, opts...)
	tok.Feed(html)
	tok.End()
	return sink
}

func TestTokenizer_CRLFNormalization(t *testing.T) {
	sink := runAll("a\r\nb\rc")
	require.Equal(t, "a\nb\nc", sink.charData())
}

func TestTokenizer_BOMDiscard(t *testing.T) {
	sink := runAll("\U0000FEFF<div>")
	require.Len(t, sink.tokens, 2) // StartTag + EOF
	require.Equal(t, StartTagToken, sink.tokens[0].Kind)
	require.Equal(t, "div", sink.tokens[0].Name)
}

func TestTokenizer_SimpleStartAndEndTag(t *testing.T) {
	sink := runAll("<div class=\"a b\">hi</div>")
	require.Equal(t, StartTagToken, sink.tokens[0].Kind)
	require.Equal(t, "div", sink.tokens[0].Name)
	require.Equal(t, "a b", sink.tokens[0].AttrVal("class"))

	require.Equal(t, CharacterTokensToken, sink.tokens[1].Kind)
	require.Equal(t, "hi", sink.tokens[1].Data)

	require.Equal(t, EndTagToken, sink.tokens[2].Kind)
	require.Equal(t, "div", sink.tokens[2].Name)
}

func TestTokenizer_NullCharacterInData(t *testing.T) {
	sink := runAll("a\x00b")
	var kinds []TokenKind
	for _, tok := range sink.tokens {
		if tok.Kind == EOFToken || tok.Kind == ParseErrorToken {
			continue
		}
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []TokenKind{CharacterTokensToken, NullCharacterToken, CharacterTokensToken}, kinds)
}

func TestTokenizer_NullInAttributeValue(t *testing.T) {
	sink := runAll("<div a=\"b\x00c\">")
	require.Equal(t, "b�c", sink.nonErrorTokens()[0].AttrVal("a"))
}

func TestTokenizer_DuplicateAttributeIsDropped(t *testing.T) {
	sink := runAll("<div a=\"1\" a=\"2\">")
	require.Equal(t, "1", sink.nonErrorTokens()[0].AttrVal("a"))
}

func TestTokenizer_MissingAttributeValue(t *testing.T) {
	sink := runAll("<div a=>")
	require.Equal(t, "", sink.nonErrorTokens()[0].AttrVal("a"))
	require.True(t, sink.nonErrorTokens()[0].HasAttr("a"))
}

func TestTokenizer_SelfClosingTag(t *testing.T) {
	sink := runAll("<br/>")
	require.True(t, sink.tokens[0].SelfClosing)
}

func TestTokenizer_Comment(t *testing.T) {
	sink := runAll("<!-- hi -->")
	require.Equal(t, CommentToken, sink.tokens[0].Kind)
	require.Equal(t, " hi ", sink.tokens[0].Data)
}

func TestTokenizer_BogusComment(t *testing.T) {
	sink := runAll("<?xml version=\"1.0\"?>")
	require.Equal(t, CommentToken, sink.nonErrorTokens()[0].Kind)
}

func TestTokenizer_Doctype(t *testing.T) {
	sink := runAll("<!DOCTYPE html>")
	require.Equal(t, DoctypeToken, sink.tokens[0].Kind)
	require.Equal(t, "html", sink.tokens[0].Name)
	require.False(t, sink.tokens[0].ForceQuirks)
}

func TestTokenizer_DoctypeWithPublicAndSystem(t *testing.T) {
	sink := runAll(`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`)
	tok := sink.tokens[0]
	require.Equal(t, DoctypeToken, tok.Kind)
	require.NotNil(t, tok.PublicID)
	require.Equal(t, "-//W3C//DTD HTML 4.01//EN", *tok.PublicID)
	require.NotNil(t, tok.SystemID)
	require.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", *tok.SystemID)
}

func TestTokenizer_NamedCharacterReference(t *testing.T) {
	sink := runAll("a &amp; b")
	require.Equal(t, "a & b", sink.charData())
}

func TestTokenizer_NumericCharacterReference(t *testing.T) {
	sink := runAll("&#65;&#x42;")
	require.Equal(t, "AB", sink.charData())
}

func TestTokenizer_AmbiguousAmpersandInAttribute(t *testing.T) {
	sink := runAll(`<a href="?a=1&b=2">`)
	require.Equal(t, "?a=1&b=2", sink.nonErrorTokens()[0].AttrVal("href"))
}

func TestTokenizer_SwitchToRCDATAForTitle(t *testing.T) {
	sink := &collectingSink{stateChange: RCDATAState, hasChange: true}
	tok := New(sink)
	tok.Feed("<title>Hi &amp; bye</title>")
	tok.End()

	var kinds []TokenKind
	for _, tok := range sink.tokens {
		if tok.Kind == EOFToken {
			continue
		}
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []TokenKind{StartTagToken, CharacterTokensToken, EndTagToken}, kinds)
	require.Equal(t, "Hi & bye", sink.charData())
}

func TestTokenizer_ScriptDataRawPassthrough(t *testing.T) {
	sink := &collectingSink{stateChange: ScriptDataState, hasChange: true}
	tok := New(sink)
	tok.Feed("<script>var x = 1 < 2;</script>")
	tok.End()
	require.Contains(t, sink.charData(), "var x = 1 < 2;")
}

func TestTokenizer_ChunkBoundaryInvariance(t *testing.T) {
	whole := &collectingSink{}
	tWhole := New(whole)
	tWhole.Feed("<div class=\"x\">hi &amp; bye</div>")
	tWhole.End()

	chunked := &collectingSink{}
	tChunked := New(chunked)
	pieces := []string{"<di", "v cla", "ss=\"x", "\">hi ", "&am", "p; by", "e</d", "iv>"}
	for _, p := range pieces {
		tChunked.Feed(p)
	}
	tChunked.End()

	require.Equal(t, len(whole.tokens), len(chunked.tokens))
	for i := range whole.tokens {
		require.Equal(t, whole.tokens[i].Kind, chunked.tokens[i].Kind)
		require.Equal(t, whole.tokens[i].Data, chunked.tokens[i].Data)
		require.Equal(t, whole.tokens[i].Name, chunked.tokens[i].Name)
	}
}

func TestTokenizer_EOFBeforeTagName(t *testing.T) {
	sink := runAll("<")
	found := false
	for _, tok := range sink.tokens {
		if tok.Kind == CharacterTokensToken && tok.Data == "<" {
			found = true
		}
	}
	require.True(t, found)
}

func TestTokenizer_UnknownNamedReferenceFallsBackToLiteral(t *testing.T) {
	sink := runAll("&bogusref;")
	require.Contains(t, sink.charData(), "&bogusref;")
}

package tokenizer

import (
	"unicode"

	"github.com/renato-zannon/html5ever/herrors"
	"github.com/renato-zannon/html5ever/internal/constants"
)

// --- attribute states -----------------------------------------------------

func (t *Tokenizer) stepBeforeAttributeName() bool {
	for {
		c, ok := t.buf.Peek()
		if !ok {
			if t.atEOF {
				t.state = AfterAttributeNameState
				return true
			}
			return false
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			t.buf.Next()
			t.advancePos(c)
		case c == '/' || c == '>':
			t.state = AfterAttributeNameState
			return true
		case c == '=':
			t.buf.Next()
			t.advancePos(c)
			t.reportParseError(herrors.UnexpectedEqualsSignBeforeAttributeName)
			t.startAttribute()
			t.curAttrName = append(t.curAttrName, c)
			t.state = AttributeNameState
			return true
		default:
			t.startAttribute()
			t.state = AttributeNameState
			return true
		}
	}
}

func (t *Tokenizer) stepAttributeName() bool {
	for {
		c, ok := t.buf.Peek()
		if !ok {
			if t.atEOF {
				t.finishAttribute()
				t.reportParseError(herrors.EOFInTag)
				return false
			}
			return false
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ' || c == '/' || c == '>':
			t.finishAttribute()
			t.state = AfterAttributeNameState
			return true
		case c == '=':
			t.buf.Next()
			t.advancePos(c)
			t.state = BeforeAttributeValueState
			return true
		case c == 0:
			t.buf.Next()
			t.advancePos(c)
			t.reportParseError(herrors.UnexpectedNullCharacter)
			t.curAttrName = append(t.curAttrName, unicode.ReplacementChar)
		case c == '"' || c == '\'' || c == '<':
			t.buf.Next()
			t.advancePos(c)
			t.reportParseError(herrors.UnexpectedCharacterInAttributeName)
			t.curAttrName = append(t.curAttrName, c)
		default:
			t.buf.Next()
			t.advancePos(c)
			t.curAttrName = append(t.curAttrName, constants.ToLower(c))
		}
	}
}

func (t *Tokenizer) stepAfterAttributeName() bool {
	for {
		c, ok := t.buf.Peek()
		if !ok {
			if t.atEOF {
				t.reportParseError(herrors.EOFInTag)
				return false
			}
			return false
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			t.buf.Next()
			t.advancePos(c)
		case c == '/':
			t.buf.Next()
			t.advancePos(c)
			t.state = SelfClosingStartTagState
			return true
		case c == '=':
			t.buf.Next()
			t.advancePos(c)
			t.state = BeforeAttributeValueState
			return true
		case c == '>':
			t.buf.Next()
			t.advancePos(c)
			t.emitCurrentTag()
			return true
		default:
			t.startAttribute()
			t.state = AttributeNameState
			return true
		}
	}
}

func (t *Tokenizer) stepBeforeAttributeValue() bool {
	for {
		c, ok := t.buf.Peek()
		if !ok {
			if t.atEOF {
				return false
			}
			return false
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			t.buf.Next()
			t.advancePos(c)
		case c == '"':
			t.buf.Next()
			t.advancePos(c)
			t.state = AttributeValueDoubleQuotedState
			return true
		case c == '\'':
			t.buf.Next()
			t.advancePos(c)
			t.state = AttributeValueSingleQuotedState
			return true
		case c == '>':
			t.buf.Next()
			t.advancePos(c)
			t.reportParseError(herrors.MissingAttributeValue)
			t.emitCurrentTag()
			return true
		default:
			t.state = AttributeValueUnquotedState
			return true
		}
	}
}

func (t *Tokenizer) stepAttributeValueQuoted(quote rune) bool {
	delims := NewSmallCharSet(byte(quote), '&', 0)
	for {
		res, ok := t.buf.PopExceptFrom(delims)
		if !ok {
			if t.atEOF {
				t.reportParseError(herrors.EOFInTag)
				return false
			}
			return false
		}
		if !res.FromSet {
			for _, c := range res.Run {
				t.advancePos(c)
			}
			t.curAttrValue = append(t.curAttrValue, []rune(res.Run)...)
			continue
		}
		c := rune(res.Run[0])
		t.advancePos(c)
		switch c {
		case quote:
			t.finishAttribute()
			t.state = AfterAttributeValueQuotedState
			return true
		case '&':
			t.cref = newCharRefTokenizer(true, quote, true)
			t.crReturnToAttr = true
			return true
		case 0:
			t.reportParseError(herrors.UnexpectedNullCharacter)
			t.curAttrValue = append(t.curAttrValue, unicode.ReplacementChar)
		}
	}
}

func (t *Tokenizer) stepAttributeValueUnquoted() bool {
	for {
		c, ok := t.buf.Peek()
		if !ok {
			if t.atEOF {
				t.reportParseError(herrors.EOFInTag)
				return false
			}
			return false
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			t.buf.Next()
			t.advancePos(c)
			t.finishAttribute()
			t.state = BeforeAttributeNameState
			return true
		case c == '&':
			t.buf.Next()
			t.advancePos(c)
			t.cref = newCharRefTokenizer(true, '>', true)
			t.crReturnToAttr = true
			return true
		case c == '>':
			t.buf.Next()
			t.advancePos(c)
			t.emitCurrentTag()
			return true
		case c == 0:
			t.buf.Next()
			t.advancePos(c)
			t.reportParseError(herrors.UnexpectedNullCharacter)
			t.curAttrValue = append(t.curAttrValue, unicode.ReplacementChar)
		case c == '"' || c == '\'' || c == '<' || c == '=' || c == '`':
			t.buf.Next()
			t.advancePos(c)
			t.reportParseError(herrors.UnexpectedCharacterInUnquotedAttributeValue)
			t.curAttrValue = append(t.curAttrValue, c)
		default:
			t.buf.Next()
			t.advancePos(c)
			t.curAttrValue = append(t.curAttrValue, c)
		}
	}
}

func (t *Tokenizer) stepAfterAttributeValueQuoted() bool {
	// The attribute is finished the moment the closing quote is consumed, in
	// stepAttributeValueQuoted — not here, since this state can be re-entered
	// across a chunk boundary with nothing left to do but wait for more input.
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.reportParseError(herrors.EOFInTag)
			return false
		}
		return false
	}
	switch {
	case c == '\t' || c == '\n' || c == '\f' || c == ' ':
		t.buf.Next()
		t.advancePos(c)
		t.state = BeforeAttributeNameState
	case c == '/':
		t.buf.Next()
		t.advancePos(c)
		t.state = SelfClosingStartTagState
	case c == '>':
		t.buf.Next()
		t.advancePos(c)
		t.emitCurrentTag()
	default:
		t.reportParseError(herrors.MissingWhitespaceBetweenAttributes)
		t.state = BeforeAttributeNameState
	}
	return true
}

func (t *Tokenizer) stepSelfClosingStartTag() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.reportParseError(herrors.EOFInTag)
			return false
		}
		return false
	}
	if c == '>' {
		t.buf.Next()
		t.advancePos(c)
		t.curTagSelfClosing = true
		t.emitCurrentTag()
		return true
	}
	t.reportParseError(herrors.UnexpectedSolidusInTag)
	t.state = BeforeAttributeNameState
	return true
}

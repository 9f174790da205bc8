package tokenizer

import (
	"strings"
	"unicode"

	"github.com/renato-zannon/html5ever/herrors"
	"github.com/renato-zannon/html5ever/internal/constants"
)

// --- bogus comment / markup declaration -----------------------------------

func (t *Tokenizer) stepBogusComment() bool {
	res, ok := t.buf.PopExceptFrom(NewSmallCharSet('>', 0))
	if !ok {
		if t.atEOF {
			t.emit(Token{Kind: CommentToken, Data: string(t.curComment)})
			return false
		}
		return false
	}
	if !res.FromSet {
		for _, c := range res.Run {
			t.advancePos(c)
		}
		t.curComment = append(t.curComment, []rune(res.Run)...)
		return true
	}
	c := rune(res.Run[0])
	t.advancePos(c)
	if c == '>' {
		t.emit(Token{Kind: CommentToken, Data: string(t.curComment)})
		t.state = DataState
		return true
	}
	t.reportParseError(herrors.UnexpectedNullCharacter)
	t.curComment = append(t.curComment, unicode.ReplacementChar)
	return true
}

func (t *Tokenizer) stepMarkupDeclarationOpen() bool {
	if t.buf.Has(2) {
		s, _ := peekString(&t.buf, 2)
		if s == "--" {
			t.buf.PopFront(2)
			t.column += 2
			t.curComment = t.curComment[:0]
			t.state = CommentStartState
			return true
		}
	}
	if t.buf.Has(7) {
		s, _ := peekString(&t.buf, 7)
		if strings.EqualFold(s, "DOCTYPE") {
			t.buf.PopFront(7)
			t.column += 7
			t.state = DOCTYPEState
			return true
		}
		if s == "[CDATA[" {
			t.buf.PopFront(7)
			t.column += 7
			if t.allowCDATA {
				t.state = CDATASectionState
				return true
			}
			t.reportParseError(herrors.CDATAInHTMLContent)
			t.curComment = t.curComment[:0]
			t.state = BogusCommentState
			return true
		}
	}
	if !t.buf.Has(7) && !t.atEOF {
		return false
	}
	t.reportParseError(herrors.IncorrectlyOpenedComment)
	t.curComment = t.curComment[:0]
	t.state = BogusCommentState
	return true
}

// peekString reads n runes without consuming them.
func peekString(buf *BufferQueue, n int) (string, bool) {
	s, ok := buf.PopFront(n)
	if !ok {
		return "", false
	}
	buf.PushFront([]rune(s))
	return s, true
}

// --- comment states --------------------------------------------------------

func (t *Tokenizer) stepCommentStart() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.state = CommentState
			return true
		}
		return false
	}
	switch c {
	case '-':
		t.buf.Next()
		t.advancePos(c)
		t.state = CommentStartDashState
	case '>':
		t.buf.Next()
		t.advancePos(c)
		t.reportParseError(herrors.AbruptClosingOfEmptyComment)
		t.emit(Token{Kind: CommentToken, Data: string(t.curComment)})
		t.state = DataState
	default:
		t.state = CommentState
	}
	return true
}

func (t *Tokenizer) stepCommentStartDash() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.reportParseError(herrors.EOFInComment)
			t.emit(Token{Kind: CommentToken, Data: string(t.curComment)})
			return false
		}
		return false
	}
	switch c {
	case '-':
		t.buf.Next()
		t.advancePos(c)
		t.state = CommentEndState
	case '>':
		t.buf.Next()
		t.advancePos(c)
		t.reportParseError(herrors.AbruptClosingOfEmptyComment)
		t.emit(Token{Kind: CommentToken, Data: string(t.curComment)})
		t.state = DataState
	default:
		t.curComment = append(t.curComment, '-')
		t.state = CommentState
	}
	return true
}

func (t *Tokenizer) stepComment() bool {
	res, ok := t.buf.PopExceptFrom(NewSmallCharSet('<', '-', 0))
	if !ok {
		if t.atEOF {
			t.reportParseError(herrors.EOFInComment)
			t.emit(Token{Kind: CommentToken, Data: string(t.curComment)})
			return false
		}
		return false
	}
	if !res.FromSet {
		for _, c := range res.Run {
			t.advancePos(c)
		}
		t.curComment = append(t.curComment, []rune(res.Run)...)
		return true
	}
	c := rune(res.Run[0])
	t.advancePos(c)
	switch c {
	case '<':
		t.curComment = append(t.curComment, c)
		t.state = CommentLessThanSignState
	case '-':
		t.state = CommentEndDashState
	case 0:
		t.reportParseError(herrors.UnexpectedNullCharacter)
		t.curComment = append(t.curComment, unicode.ReplacementChar)
	}
	return true
}

func (t *Tokenizer) stepCommentLessThanSign() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.state = CommentState
			return true
		}
		return false
	}
	switch c {
	case '!':
		t.buf.Next()
		t.advancePos(c)
		t.curComment = append(t.curComment, c)
		t.state = CommentLessThanSignBangState
	case '<':
		t.buf.Next()
		t.advancePos(c)
		t.curComment = append(t.curComment, c)
	default:
		t.state = CommentState
	}
	return true
}

func (t *Tokenizer) stepCommentLessThanSignBang() bool {
	c, ok := t.buf.Peek()
	if ok && c == '-' {
		t.buf.Next()
		t.advancePos(c)
		t.state = CommentLessThanSignBangDashState
		return true
	}
	if !ok && !t.atEOF {
		return false
	}
	t.state = CommentState
	return true
}

func (t *Tokenizer) stepCommentLessThanSignBangDash() bool {
	c, ok := t.buf.Peek()
	if ok && c == '-' {
		t.buf.Next()
		t.advancePos(c)
		t.state = CommentLessThanSignBangDashDashState
		return true
	}
	if !ok && !t.atEOF {
		return false
	}
	t.state = CommentEndDashState
	return true
}

func (t *Tokenizer) stepCommentLessThanSignBangDashDash() bool {
	c, ok := t.buf.Peek()
	if !ok {
		t.state = CommentEndState
		return true
	}
	if c != '>' {
		t.reportParseError(herrors.NestedComment)
	}
	t.state = CommentEndState
	return true
}

func (t *Tokenizer) stepCommentEndDash() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.reportParseError(herrors.EOFInComment)
			t.emit(Token{Kind: CommentToken, Data: string(t.curComment)})
			return false
		}
		return false
	}
	if c == '-' {
		t.buf.Next()
		t.advancePos(c)
		t.state = CommentEndState
		return true
	}
	t.curComment = append(t.curComment, '-')
	t.state = CommentState
	return true
}

func (t *Tokenizer) stepCommentEnd() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.reportParseError(herrors.EOFInComment)
			t.emit(Token{Kind: CommentToken, Data: string(t.curComment)})
			return false
		}
		return false
	}
	switch c {
	case '>':
		t.buf.Next()
		t.advancePos(c)
		t.emit(Token{Kind: CommentToken, Data: string(t.curComment)})
		t.state = DataState
	case '!':
		t.buf.Next()
		t.advancePos(c)
		t.state = CommentEndBangState
	case '-':
		t.buf.Next()
		t.advancePos(c)
		t.curComment = append(t.curComment, '-')
	default:
		t.curComment = append(t.curComment, '-', '-')
		t.state = CommentState
	}
	return true
}

func (t *Tokenizer) stepCommentEndBang() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.reportParseError(herrors.EOFInComment)
			t.emit(Token{Kind: CommentToken, Data: string(t.curComment)})
			return false
		}
		return false
	}
	switch c {
	case '-':
		t.buf.Next()
		t.advancePos(c)
		t.curComment = append(t.curComment, '-', '-', '!')
		t.state = CommentEndDashState
	case '>':
		t.buf.Next()
		t.advancePos(c)
		t.reportParseError(herrors.IncorrectlyClosedComment)
		t.emit(Token{Kind: CommentToken, Data: string(t.curComment)})
		t.state = DataState
	default:
		t.curComment = append(t.curComment, '-', '-', '!')
		t.state = CommentState
	}
	return true
}

// --- DOCTYPE states ----------------------------------------------------

func (t *Tokenizer) emitDoctype() {
	tok := Token{Kind: DoctypeToken, PublicID: runesToStrPtr(t.curDoctypePublic), SystemID: runesToStrPtr(t.curDoctypeSystem), ForceQuirks: t.curDoctypeForceQuirks}
	if t.curDoctypeHasName {
		tok.Name = string(t.curDoctypeName)
	}
	t.emit(tok)
}

func runesToStrPtr(r *[]rune) *string {
	if r == nil {
		return nil
	}
	s := string(*r)
	return &s
}

func (t *Tokenizer) resetDoctype() {
	t.curDoctypeName = t.curDoctypeName[:0]
	t.curDoctypeHasName = false
	t.curDoctypePublic = nil
	t.curDoctypeSystem = nil
	t.curDoctypeForceQuirks = false
}

func (t *Tokenizer) stepDoctype() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.resetDoctype()
			t.curDoctypeForceQuirks = true
			t.reportParseError(herrors.EOFInDoctype)
			t.emitDoctype()
			return false
		}
		return false
	}
	t.resetDoctype()
	if c == '\t' || c == '\n' || c == '\f' || c == ' ' {
		t.buf.Next()
		t.advancePos(c)
		t.state = BeforeDOCTYPENameState
		return true
	}
	t.reportParseError(herrors.MissingWhitespaceBeforeDoctypeName)
	t.state = BeforeDOCTYPENameState
	return true
}

func (t *Tokenizer) stepBeforeDoctypeName() bool {
	for {
		c, ok := t.buf.Peek()
		if !ok {
			if t.atEOF {
				t.curDoctypeForceQuirks = true
				t.reportParseError(herrors.EOFInDoctype)
				t.emitDoctype()
				return false
			}
			return false
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			t.buf.Next()
			t.advancePos(c)
		case c == '>':
			t.buf.Next()
			t.advancePos(c)
			t.reportParseError(herrors.MissingDoctypeName)
			t.curDoctypeForceQuirks = true
			t.emitDoctype()
			t.state = DataState
			return true
		case c == 0:
			t.buf.Next()
			t.advancePos(c)
			t.reportParseError(herrors.UnexpectedNullCharacter)
			t.curDoctypeHasName = true
			t.curDoctypeName = append(t.curDoctypeName, unicode.ReplacementChar)
			t.state = DOCTYPENameState
			return true
		default:
			t.curDoctypeHasName = true
			t.state = DOCTYPENameState
			return true
		}
	}
}

func (t *Tokenizer) stepDoctypeName() bool {
	for {
		c, ok := t.buf.Peek()
		if !ok {
			if t.atEOF {
				t.curDoctypeForceQuirks = true
				t.reportParseError(herrors.EOFInDoctype)
				t.emitDoctype()
				return false
			}
			return false
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			t.buf.Next()
			t.advancePos(c)
			t.state = AfterDOCTYPENameState
			return true
		case c == '>':
			t.buf.Next()
			t.advancePos(c)
			t.emitDoctype()
			t.state = DataState
			return true
		case c == 0:
			t.buf.Next()
			t.advancePos(c)
			t.reportParseError(herrors.UnexpectedNullCharacter)
			t.curDoctypeName = append(t.curDoctypeName, unicode.ReplacementChar)
		default:
			t.buf.Next()
			t.advancePos(c)
			t.curDoctypeName = append(t.curDoctypeName, constants.ToLower(c))
		}
	}
}

func (t *Tokenizer) stepAfterDoctypeName() bool {
	if !t.buf.Has(6) && !t.atEOF {
		return false
	}
	c, ok := t.buf.Peek()
	if !ok {
		t.curDoctypeForceQuirks = true
		t.reportParseError(herrors.EOFInDoctype)
		t.emitDoctype()
		return false
	}
	if c == '\t' || c == '\n' || c == '\f' || c == ' ' {
		t.buf.Next()
		t.advancePos(c)
		return true
	}
	if c == '>' {
		t.buf.Next()
		t.advancePos(c)
		t.emitDoctype()
		t.state = DataState
		return true
	}
	if s, ok := peekString(&t.buf, 6); ok {
		switch {
		case strings.EqualFold(s, "PUBLIC"):
			t.buf.PopFront(6)
			t.column += 6
			t.state = AfterDOCTYPEPublicKeywordState
			return true
		case strings.EqualFold(s, "SYSTEM"):
			t.buf.PopFront(6)
			t.column += 6
			t.state = AfterDOCTYPESystemKeywordState
			return true
		}
	}
	t.reportParseError(herrors.InvalidCharacterSequenceAfterDoctypeName)
	t.curDoctypeForceQuirks = true
	t.state = BogusDOCTYPEState
	return true
}

func (t *Tokenizer) stepAfterDoctypeKeyword(public bool) bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.curDoctypeForceQuirks = true
			t.reportParseError(herrors.EOFInDoctype)
			t.emitDoctype()
			return false
		}
		return false
	}
	missingWSCode := herrors.MissingWhitespaceAfterDoctypePublicKeyword
	missingIDCode := herrors.MissingDoctypePublicIdentifier
	missingQuoteCode := herrors.MissingQuoteBeforeDoctypePublicIdentifier
	if !public {
		missingWSCode = herrors.MissingWhitespaceAfterDoctypeSystemKeyword
		missingIDCode = herrors.MissingDoctypeSystemIdentifier
		missingQuoteCode = herrors.MissingQuoteBeforeDoctypeSystemIdentifier
	}
	switch {
	case c == '\t' || c == '\n' || c == '\f' || c == ' ':
		t.buf.Next()
		t.advancePos(c)
		t.state = pickState(public, BeforeDOCTYPEPublicIdentifierState, BeforeDOCTYPESystemIdentifierState)
	case c == '"' || c == '\'':
		t.buf.Next()
		t.advancePos(c)
		t.reportParseError(missingWSCode)
		t.setDoctypeIDStart(public)
		t.state = pickState(public, DOCTYPEPublicIdentifierDoubleQuotedState, DOCTYPESystemIdentifierDoubleQuotedState)
		if c == '\'' {
			t.state = pickState(public, DOCTYPEPublicIdentifierSingleQuotedState, DOCTYPESystemIdentifierSingleQuotedState)
		}
	case c == '>':
		t.buf.Next()
		t.advancePos(c)
		t.reportParseError(missingIDCode)
		t.curDoctypeForceQuirks = true
		t.emitDoctype()
		t.state = DataState
	default:
		t.reportParseError(missingQuoteCode)
		t.curDoctypeForceQuirks = true
		t.state = BogusDOCTYPEState
	}
	return true
}

func pickState(public bool, ifPublic, ifSystem State) State {
	if public {
		return ifPublic
	}
	return ifSystem
}

func (t *Tokenizer) setDoctypeIDStart(public bool) {
	empty := []rune{}
	if public {
		t.curDoctypePublic = &empty
	} else {
		t.curDoctypeSystem = &empty
	}
}

func (t *Tokenizer) stepBeforeDoctypeIdentifier(public bool) bool {
	missingIDCode := herrors.MissingDoctypePublicIdentifier
	missingQuoteCode := herrors.MissingQuoteBeforeDoctypePublicIdentifier
	if !public {
		missingIDCode = herrors.MissingDoctypeSystemIdentifier
		missingQuoteCode = herrors.MissingQuoteBeforeDoctypeSystemIdentifier
	}
	for {
		c, ok := t.buf.Peek()
		if !ok {
			if t.atEOF {
				t.curDoctypeForceQuirks = true
				t.reportParseError(herrors.EOFInDoctype)
				t.emitDoctype()
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
			t.setDoctypeIDStart(public)
			t.state = pickState(public, DOCTYPEPublicIdentifierDoubleQuotedState, DOCTYPESystemIdentifierDoubleQuotedState)
			return true
		case c == '\'':
			t.buf.Next()
			t.advancePos(c)
			t.setDoctypeIDStart(public)
			t.state = pickState(public, DOCTYPEPublicIdentifierSingleQuotedState, DOCTYPESystemIdentifierSingleQuotedState)
			return true
		case c == '>':
			t.buf.Next()
			t.advancePos(c)
			t.reportParseError(missingIDCode)
			t.curDoctypeForceQuirks = true
			t.emitDoctype()
			t.state = DataState
			return true
		default:
			t.reportParseError(missingQuoteCode)
			t.curDoctypeForceQuirks = true
			t.state = BogusDOCTYPEState
			return true
		}
	}
}

func (t *Tokenizer) stepDoctypeIdentifierQuoted(public bool, quote rune) bool {
	abruptCode := herrors.AbruptDoctypePublicIdentifier
	if !public {
		abruptCode = herrors.AbruptDoctypeSystemIdentifier
	}
	target := &t.curDoctypePublic
	if !public {
		target = &t.curDoctypeSystem
	}
	for {
		c, ok := t.buf.Peek()
		if !ok {
			if t.atEOF {
				t.curDoctypeForceQuirks = true
				t.reportParseError(herrors.EOFInDoctype)
				t.emitDoctype()
				return false
			}
			return false
		}
		switch {
		case c == quote:
			t.buf.Next()
			t.advancePos(c)
			t.state = pickState(public, AfterDOCTYPEPublicIdentifierState, AfterDOCTYPESystemIdentifierState)
			return true
		case c == '>':
			t.buf.Next()
			t.advancePos(c)
			t.reportParseError(abruptCode)
			t.curDoctypeForceQuirks = true
			t.emitDoctype()
			t.state = DataState
			return true
		case c == 0:
			t.buf.Next()
			t.advancePos(c)
			t.reportParseError(herrors.UnexpectedNullCharacter)
			**target = append(**target, unicode.ReplacementChar)
		default:
			t.buf.Next()
			t.advancePos(c)
			**target = append(**target, c)
		}
	}
}

func (t *Tokenizer) stepAfterDoctypePublicIdentifier() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.curDoctypeForceQuirks = true
			t.reportParseError(herrors.EOFInDoctype)
			t.emitDoctype()
			return false
		}
		return false
	}
	switch {
	case c == '\t' || c == '\n' || c == '\f' || c == ' ':
		t.buf.Next()
		t.advancePos(c)
		t.state = BetweenDOCTYPEPublicAndSystemIdentifiersState
	case c == '>':
		t.buf.Next()
		t.advancePos(c)
		t.emitDoctype()
		t.state = DataState
	case c == '"' || c == '\'':
		t.buf.Next()
		t.advancePos(c)
		t.reportParseError(herrors.MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.setDoctypeIDStart(false)
		if c == '"' {
			t.state = DOCTYPESystemIdentifierDoubleQuotedState
		} else {
			t.state = DOCTYPESystemIdentifierSingleQuotedState
		}
	default:
		t.reportParseError(herrors.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.curDoctypeForceQuirks = true
		t.state = BogusDOCTYPEState
	}
	return true
}

func (t *Tokenizer) stepBetweenDoctypePublicAndSystem() bool {
	for {
		c, ok := t.buf.Peek()
		if !ok {
			if t.atEOF {
				t.curDoctypeForceQuirks = true
				t.reportParseError(herrors.EOFInDoctype)
				t.emitDoctype()
				return false
			}
			return false
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			t.buf.Next()
			t.advancePos(c)
		case c == '>':
			t.buf.Next()
			t.advancePos(c)
			t.emitDoctype()
			t.state = DataState
			return true
		case c == '"' || c == '\'':
			t.buf.Next()
			t.advancePos(c)
			t.setDoctypeIDStart(false)
			if c == '"' {
				t.state = DOCTYPESystemIdentifierDoubleQuotedState
			} else {
				t.state = DOCTYPESystemIdentifierSingleQuotedState
			}
			return true
		default:
			t.reportParseError(herrors.MissingQuoteBeforeDoctypeSystemIdentifier)
			t.curDoctypeForceQuirks = true
			t.state = BogusDOCTYPEState
			return true
		}
	}
}

func (t *Tokenizer) stepAfterDoctypeSystemIdentifier() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.curDoctypeForceQuirks = true
			t.reportParseError(herrors.EOFInDoctype)
			t.emitDoctype()
			return false
		}
		return false
	}
	switch {
	case c == '\t' || c == '\n' || c == '\f' || c == ' ':
		t.buf.Next()
		t.advancePos(c)
	case c == '>':
		t.buf.Next()
		t.advancePos(c)
		t.emitDoctype()
		t.state = DataState
	default:
		t.reportParseError(herrors.UnexpectedCharacterAfterDoctypeSystemIdentifier)
		t.state = BogusDOCTYPEState
	}
	return true
}

func (t *Tokenizer) stepBogusDoctype() bool {
	res, ok := t.buf.PopExceptFrom(NewSmallCharSet('>', 0))
	if !ok {
		if t.atEOF {
			t.emitDoctype()
			return false
		}
		return false
	}
	if !res.FromSet {
		for _, c := range res.Run {
			t.advancePos(c)
		}
		return true
	}
	c := rune(res.Run[0])
	t.advancePos(c)
	if c == '>' {
		t.emitDoctype()
		t.state = DataState
		return true
	}
	return true
}

// --- CDATA section states (WHATWG HTML §13.2.5.68-70) ---------------------
//
// Conformance for how the emitted characters interact with foreign-content
// insertion remains the tree builder's job; see Non-goals.

func (t *Tokenizer) stepCDATASection() bool {
	res, ok := t.buf.PopExceptFrom(NewSmallCharSet(']'))
	if !ok {
		if t.atEOF {
			t.reportParseError(herrors.EOFInCDATA)
			return false
		}
		return false
	}
	if !res.FromSet {
		for _, c := range res.Run {
			t.advancePos(c)
		}
		t.emitChars(res.Run)
		return true
	}
	c := rune(res.Run[0])
	t.advancePos(c)
	if c != ']' {
		// SmallCharSet folds every character >= 64 onto one bit, so a
		// set member here is only a candidate for ']'.
		t.emitChars(string(c))
		return true
	}
	t.state = CDATASectionBracketState
	return true
}

func (t *Tokenizer) stepCDATASectionBracket() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.emitChars("]")
			t.state = CDATASectionState
			return true
		}
		return false
	}
	if c == ']' {
		t.buf.Next()
		t.advancePos(c)
		t.state = CDATASectionEndState
		return true
	}
	t.emitChars("]")
	t.state = CDATASectionState
	return true
}

func (t *Tokenizer) stepCDATASectionEnd() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.emitChars("]]")
			t.state = CDATASectionState
			return true
		}
		return false
	}
	switch c {
	case ']':
		t.buf.Next()
		t.advancePos(c)
		t.emitChars("]")
	case '>':
		t.buf.Next()
		t.advancePos(c)
		t.state = DataState
	default:
		t.emitChars("]]")
		t.state = CDATASectionState
	}
	return true
}

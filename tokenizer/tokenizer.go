package tokenizer

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/renato-zannon/html5ever/herrors"
	"github.com/renato-zannon/html5ever/internal/constants"
)

// Tokenizer is the HTML5 lexical state machine (WHATWG HTML §13.2.5). It
// consumes text via Feed/End and drives a TokenSink; it never halts on
// malformed input and never returns an error — every problem becomes an
// advisory ParseErrorToken on the sink.
type Tokenizer struct {
	sink TokenSink
	opts Opts

	buf        BufferQueue
	bomHandled bool
	atEOF      bool
	eofRun     bool // set once End has run the state machine at EOF
	ignoreLF   bool // the last fed chunk ended in '\r', so a leading '\n' is dropped

	state  State
	rawRet State // text-content state to return to from a Raw*/Script* family

	cref *charRefTokenizer
	// crReturn* remembers where to resume once the active character
	// reference sub-machine reports Done.
	crReturnToAttr bool

	curTagKind        TokenKind
	curTagName        []rune
	curTagSelfClosing bool
	curTagAttrs       []Attr
	curAttrName       []rune
	curAttrValue      []rune
	attrNameSeen      map[string]bool

	curComment []rune

	curDoctypeName        []rune
	curDoctypeHasName     bool
	curDoctypePublic      *[]rune
	curDoctypeSystem      *[]rune
	curDoctypeForceQuirks bool

	tempBuf         []rune
	lastStartTag    string
	doubleEscapeTmp []rune

	quote rune

	line, column int

	profile map[State]int64

	textBuf []rune // pending CharacterTokens run, flushed on state/kind change

	allowCDATA bool
}

// New creates a Tokenizer that feeds tokens to sink.
func New(sink TokenSink, opts ...Option) *Tokenizer {
	o := defaultOpts()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tokenizer{
		sink:         sink,
		opts:         o,
		state:        o.InitialState,
		rawRet:       DataState,
		line:         1,
		column:       0,
		lastStartTag: o.LastStartTagName,
		attrNameSeen: make(map[string]bool, 8),
	}
	if o.Profile {
		t.profile = make(map[State]int64)
	}
	return t
}

// SetSink binds (or rebinds) the TokenSink that receives emitted tokens.
// Construction order otherwise has the tree builder take an already-built
// Tokenizer, so a driver builds the tokenizer with a nil sink first and
// wires the tree builder in once it exists.
func (t *Tokenizer) SetSink(sink TokenSink) { t.sink = sink }

// SetState lets a driving TreeBuilder switch tokenizer state immediately
// after a start tag (RAWTEXT/RCDATA/script-data/PLAINTEXT), per the
// "appropriate place to tokenize" hand-off WHATWG HTML §13.2.6.1 describes.
func (t *Tokenizer) SetState(s State) {
	t.state = s
	switch s {
	case DataState, RCDATAState, RAWTEXTState, ScriptDataState, PLAINTEXTState:
		t.rawRet = s
	}
}

// SetLastStartTagName seeds the "appropriate end tag" check.
func (t *Tokenizer) SetLastStartTagName(name string) { t.lastStartTag = name }

// SetAllowCDATA toggles whether a `<![CDATA[` markup declaration is
// tokenized as a CDATA section rather than a bogus comment.
// TreeBuilder.ProcessToken re-derives this from the adjusted current node
// after every token it processes (WHATWG HTML §13.2.6.2).
func (t *Tokenizer) SetAllowCDATA(allowed bool) { t.allowCDATA = allowed }

// Feed appends text to the input buffer and runs the state machine to
// quiescence. It may be called any number of times with arbitrarily small
// fragments; producing the same tokens regardless of how input is chunked
// depends on every state correctly suspending instead of assuming more
// input is available.
func (t *Tokenizer) Feed(text string) {
	if text == "" {
		return
	}
	if t.ignoreLF && text[0] == '\n' {
		text = text[1:]
	}
	t.ignoreLF = text != "" && text[len(text)-1] == '\r'
	text = strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")
	if text == "" {
		return
	}
	offset := 0
	if !t.bomHandled {
		t.bomHandled = true
		if t.opts.DiscardBOM {
			r := []rune(text)
			if len(r) > 0 && r[0] == '\U0000FEFF' {
				offset = 1
			}
		}
	}
	t.buf.PushBack(text, offset)
	t.run()
}

// End marks end-of-file: it drains any buffered input, finalizes a pending
// character-reference sub-machine, and runs the state machine with EOF set
// until it settles, so each state's EOF branch emits its errors and final
// tokens once.
func (t *Tokenizer) End() {
	t.atEOF = true
	t.run()
	t.eofRun = true
	t.flushText()
	t.emit(Token{Kind: EOFToken})
	if t.profile != nil {
		t.printProfile()
	}
}

func (t *Tokenizer) run() {
	for {
		if t.cref != nil {
			if t.stepCharRef(t.cref) == crStuck {
				return
			}
			t.applyCharRefResult()
			continue
		}
		if !t.step() {
			return
		}
	}
}

func (t *Tokenizer) applyCharRefResult() {
	cr := t.cref
	t.cref = nil
	var text string
	if cr.result == nil {
		text = "&"
	} else {
		text = string(cr.result)
	}
	if t.crReturnToAttr {
		t.curAttrValue = append(t.curAttrValue, []rune(text)...)
	} else {
		t.emitChars(text)
	}
	t.crReturnToAttr = false
}

func (t *Tokenizer) profileTick(s State, start time.Time) {
	t.profile[s] += time.Since(start).Nanoseconds()
}

// printProfile writes the nanoseconds spent in each state that ran to
// standard error, one state per line.
func (t *Tokenizer) printProfile() {
	for s := State(0); int(s) < len(stateNames); s++ {
		if ns, ok := t.profile[s]; ok {
			fmt.Fprintf(os.Stderr, "%s: %d ns\n", s, ns)
		}
	}
}

// step executes one iteration of the main loop for the current state. It
// returns false when the buffer is exhausted and more input (or EOF) is
// needed before progress can continue.
func (t *Tokenizer) step() bool {
	if t.profile != nil {
		defer t.profileTick(t.state, time.Now())
	}

	switch t.state {
	case DataState:
		return t.stepData()
	case RCDATAState:
		return t.stepRawFamily(RCDATAState, t.emitRCDATAChar)
	case RAWTEXTState:
		return t.stepRawFamily(RAWTEXTState, t.emitPlainTextChar)
	case ScriptDataState:
		return t.stepRawFamily(ScriptDataState, t.emitPlainTextChar)
	case PLAINTEXTState:
		return t.stepPlaintext()

	case TagOpenState:
		return t.stepTagOpen()
	case EndTagOpenState:
		return t.stepEndTagOpen()
	case TagNameState:
		return t.stepTagName()

	case RCDATALessThanSignState:
		return t.stepRawLessThanSign(RCDATAEndTagOpenState, RCDATAState)
	case RCDATAEndTagOpenState:
		return t.stepRawEndTagOpen(RCDATAEndTagNameState, RCDATAState)
	case RCDATAEndTagNameState:
		return t.stepRawEndTagName(RCDATAState)

	case RAWTEXTLessThanSignState:
		return t.stepRawLessThanSign(RAWTEXTEndTagOpenState, RAWTEXTState)
	case RAWTEXTEndTagOpenState:
		return t.stepRawEndTagOpen(RAWTEXTEndTagNameState, RAWTEXTState)
	case RAWTEXTEndTagNameState:
		return t.stepRawEndTagName(RAWTEXTState)

	case ScriptDataLessThanSignState:
		return t.stepScriptDataLessThanSign()
	case ScriptDataEndTagOpenState:
		return t.stepRawEndTagOpen(ScriptDataEndTagNameState, ScriptDataState)
	case ScriptDataEndTagNameState:
		return t.stepRawEndTagName(ScriptDataState)
	case ScriptDataEscapeStartState:
		return t.stepScriptDataEscapeStart()
	case ScriptDataEscapeStartDashState:
		return t.stepScriptDataEscapeStartDash()
	case ScriptDataEscapedState:
		return t.stepScriptDataEscaped()
	case ScriptDataEscapedDashState:
		return t.stepScriptDataEscapedDash()
	case ScriptDataEscapedDashDashState:
		return t.stepScriptDataEscapedDashDash()
	case ScriptDataEscapedLessThanSignState:
		return t.stepScriptDataEscapedLessThanSign()
	case ScriptDataEscapedEndTagOpenState:
		return t.stepRawEndTagOpen(ScriptDataEscapedEndTagNameState, ScriptDataEscapedState)
	case ScriptDataEscapedEndTagNameState:
		return t.stepRawEndTagName(ScriptDataEscapedState)
	case ScriptDataDoubleEscapeStartState:
		return t.stepScriptDataDoubleEscapeStart()
	case ScriptDataDoubleEscapedState:
		return t.stepScriptDataDoubleEscaped()
	case ScriptDataDoubleEscapedDashState:
		return t.stepScriptDataDoubleEscapedDash()
	case ScriptDataDoubleEscapedDashDashState:
		return t.stepScriptDataDoubleEscapedDashDash()
	case ScriptDataDoubleEscapedLessThanSignState:
		return t.stepScriptDataDoubleEscapedLessThanSign()
	case ScriptDataDoubleEscapeEndState:
		return t.stepScriptDataDoubleEscapeEnd()

	case BeforeAttributeNameState:
		return t.stepBeforeAttributeName()
	case AttributeNameState:
		return t.stepAttributeName()
	case AfterAttributeNameState:
		return t.stepAfterAttributeName()
	case BeforeAttributeValueState:
		return t.stepBeforeAttributeValue()
	case AttributeValueDoubleQuotedState:
		return t.stepAttributeValueQuoted('"')
	case AttributeValueSingleQuotedState:
		return t.stepAttributeValueQuoted('\'')
	case AttributeValueUnquotedState:
		return t.stepAttributeValueUnquoted()
	case AfterAttributeValueQuotedState:
		return t.stepAfterAttributeValueQuoted()
	case SelfClosingStartTagState:
		return t.stepSelfClosingStartTag()

	case BogusCommentState:
		return t.stepBogusComment()
	case MarkupDeclarationOpenState:
		return t.stepMarkupDeclarationOpen()
	case CommentStartState:
		return t.stepCommentStart()
	case CommentStartDashState:
		return t.stepCommentStartDash()
	case CommentState:
		return t.stepComment()
	case CommentLessThanSignState:
		return t.stepCommentLessThanSign()
	case CommentLessThanSignBangState:
		return t.stepCommentLessThanSignBang()
	case CommentLessThanSignBangDashState:
		return t.stepCommentLessThanSignBangDash()
	case CommentLessThanSignBangDashDashState:
		return t.stepCommentLessThanSignBangDashDash()
	case CommentEndDashState:
		return t.stepCommentEndDash()
	case CommentEndState:
		return t.stepCommentEnd()
	case CommentEndBangState:
		return t.stepCommentEndBang()

	case DOCTYPEState:
		return t.stepDoctype()
	case BeforeDOCTYPENameState:
		return t.stepBeforeDoctypeName()
	case DOCTYPENameState:
		return t.stepDoctypeName()
	case AfterDOCTYPENameState:
		return t.stepAfterDoctypeName()
	case AfterDOCTYPEPublicKeywordState:
		return t.stepAfterDoctypeKeyword(true)
	case BeforeDOCTYPEPublicIdentifierState:
		return t.stepBeforeDoctypeIdentifier(true)
	case DOCTYPEPublicIdentifierDoubleQuotedState:
		return t.stepDoctypeIdentifierQuoted(true, '"')
	case DOCTYPEPublicIdentifierSingleQuotedState:
		return t.stepDoctypeIdentifierQuoted(true, '\'')
	case AfterDOCTYPEPublicIdentifierState:
		return t.stepAfterDoctypePublicIdentifier()
	case BetweenDOCTYPEPublicAndSystemIdentifiersState:
		return t.stepBetweenDoctypePublicAndSystem()
	case AfterDOCTYPESystemKeywordState:
		return t.stepAfterDoctypeKeyword(false)
	case BeforeDOCTYPESystemIdentifierState:
		return t.stepBeforeDoctypeIdentifier(false)
	case DOCTYPESystemIdentifierDoubleQuotedState:
		return t.stepDoctypeIdentifierQuoted(false, '"')
	case DOCTYPESystemIdentifierSingleQuotedState:
		return t.stepDoctypeIdentifierQuoted(false, '\'')
	case AfterDOCTYPESystemIdentifierState:
		return t.stepAfterDoctypeSystemIdentifier()
	case BogusDOCTYPEState:
		return t.stepBogusDoctype()

	case CDATASectionState:
		return t.stepCDATASection()
	case CDATASectionBracketState:
		return t.stepCDATASectionBracket()
	case CDATASectionEndState:
		return t.stepCDATASectionEnd()

	default:
		// Character-reference sub-states are only ever entered through
		// t.cref and handled by stepCharRef; reaching them here would be a
		// driver bug, not malformed input. Treat as Data to keep forward
		// progress.
		t.state = DataState
		return true
	}
}

// --- character stream helpers -------------------------------------------

// getChar consumes one character, applying the CR/LF normalization
// (WHATWG HTML §13.2.3.5) and NUL/control preprocessing required once per
// consumed character.
func (t *Tokenizer) getChar() (rune, bool) {
	c, ok := t.buf.Next()
	if !ok {
		return 0, false
	}
	if c == '\r' {
		if c2, ok2 := t.buf.Peek(); ok2 && c2 == '\n' {
			t.buf.Next()
		}
		c = '\n'
	}
	t.advancePos(c)
	if t.opts.ExactErrors && isDisallowedControl(c) {
		t.reportParseError(herrors.ControlCharacterInInputStream)
	}
	return c, true
}

func (t *Tokenizer) advancePos(c rune) {
	if c == '\n' {
		t.line++
		t.column = 0
	} else {
		t.column++
	}
}

func isDisallowedControl(c rune) bool {
	if c >= 0x01 && c <= 0x08 {
		return true
	}
	if c >= 0x0E && c <= 0x1F {
		return true
	}
	if c >= 0x7F && c <= 0x9F {
		return true
	}
	return false
}

func (t *Tokenizer) reportParseError(code string) {
	var e *herrors.ParseError
	if t.opts.ExactErrors {
		e = herrors.New(code, t.line, t.column)
	} else {
		e = herrors.Coarse(code, t.line, t.column)
	}
	t.sink.ProcessToken(Token{Kind: ParseErrorToken, Data: e.Error()})
}

// emitChars buffers non-NUL text; consecutive calls coalesce into one
// CharacterTokens token, a run of non-null characters.
func (t *Tokenizer) emitChars(s string) {
	t.textBuf = append(t.textBuf, []rune(s)...)
}

func (t *Tokenizer) flushText() {
	if len(t.textBuf) == 0 {
		return
	}
	t.emit(Token{Kind: CharacterTokensToken, Data: string(t.textBuf)})
	t.textBuf = t.textBuf[:0]
}

func (t *Tokenizer) emit(tok Token) {
	if tok.Kind != CharacterTokensToken {
		t.flushText()
	}
	t.sink.ProcessToken(tok)
}

func (t *Tokenizer) emitNull() {
	t.flushText()
	t.emit(Token{Kind: NullCharacterToken})
}

// --- tag/attribute accumulator management -------------------------------

func (t *Tokenizer) startTag(kind TokenKind) {
	t.curTagKind = kind
	t.curTagName = t.curTagName[:0]
	t.curTagSelfClosing = false
	t.curTagAttrs = nil
	for k := range t.attrNameSeen {
		delete(t.attrNameSeen, k)
	}
}

func (t *Tokenizer) startAttribute() {
	t.curAttrName = t.curAttrName[:0]
	t.curAttrValue = t.curAttrValue[:0]
}

func (t *Tokenizer) finishAttribute() {
	if len(t.curAttrName) == 0 {
		return
	}
	name := string(t.curAttrName)
	t.curAttrName = t.curAttrName[:0]
	if t.attrNameSeen[name] {
		t.reportParseError(herrors.DuplicateAttribute)
		return
	}
	t.attrNameSeen[name] = true
	t.curTagAttrs = append(t.curTagAttrs, Attr{Name: QualName{Local: name}, Value: string(t.curAttrValue)})
}

func (t *Tokenizer) emitCurrentTag() {
	t.finishAttribute()
	name := string(t.curTagName)
	tok := Token{Kind: t.curTagKind, Name: name, Attrs: t.curTagAttrs, SelfClosing: t.curTagSelfClosing}
	if t.curTagKind == EndTagToken {
		if t.curTagSelfClosing {
			t.reportParseError(herrors.EndTagWithTrailingSolidus)
		}
		if len(t.curTagAttrs) > 0 {
			t.reportParseError(herrors.EndTagWithAttributes)
		}
	}
	t.emit(tok)
	if t.curTagKind == StartTagToken {
		t.lastStartTag = name
		if s, ok := t.sink.QueryStateChange(); ok {
			t.SetState(s)
			return
		}
	}
	if t.state != DataState || true {
		// Default post-tag state is Data unless the sink (or a RAWTEXT/
		// RCDATA dispatch already performed by the sink before returning)
		// requested otherwise via QueryStateChange above.
	}
	t.state = DataState
	t.rawRet = DataState
}

func (t *Tokenizer) isAppropriateEndTag() bool {
	return t.lastStartTag != "" && string(t.curTagName) == t.lastStartTag
}

// --- Data / RCDATA / RAWTEXT / ScriptData / PLAINTEXT -------------------

var dataDelims = NewSmallCharSet('&', '<', 0)

func (t *Tokenizer) stepData() bool {
	res, ok := t.buf.PopExceptFrom(dataDelims)
	if !ok {
		if t.atEOF {
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
	switch c {
	case '&':
		t.cref = newCharRefTokenizer(false, 0, false)
		return true
	case '<':
		t.state = TagOpenState
		return true
	case 0:
		t.reportParseError(herrors.UnexpectedNullCharacter)
		t.emitNull()
		return true
	}
	return true
}

func (t *Tokenizer) stepPlaintext() bool {
	for {
		c, ok := t.getChar()
		if !ok {
			return false
		}
		if c == 0 {
			t.reportParseError(herrors.UnexpectedNullCharacter)
			t.emitChars(string(unicode.ReplacementChar))
			continue
		}
		t.emitChars(string(c))
	}
}

func (t *Tokenizer) emitRCDATAChar(c rune) { t.emitChars(string(c)) }
func (t *Tokenizer) emitPlainTextChar(c rune) { t.emitChars(string(c)) }

// stepRawFamily implements RCDATA/RAWTEXT/ScriptData's shared "consume
// until & or <" behavior (RCDATA also supports character references).
func (t *Tokenizer) stepRawFamily(self State, emitChar func(rune)) bool {
	allowAmp := self == RCDATAState
	var delims SmallCharSet
	if allowAmp {
		delims = NewSmallCharSet('&', '<', 0)
	} else {
		delims = NewSmallCharSet('<', 0)
	}
	res, ok := t.buf.PopExceptFrom(delims)
	if !ok {
		return false
	}
	if !res.FromSet {
		for _, c := range res.Run {
			t.advancePos(c)
			emitChar(c)
		}
		return true
	}
	c := rune(res.Run[0])
	t.advancePos(c)
	switch c {
	case '&':
		t.cref = newCharRefTokenizer(false, 0, false)
		return true
	case '<':
		switch self {
		case RCDATAState:
			t.state = RCDATALessThanSignState
		case RAWTEXTState:
			t.state = RAWTEXTLessThanSignState
		case ScriptDataState:
			t.state = ScriptDataLessThanSignState
		}
		return true
	case 0:
		t.reportParseError(herrors.UnexpectedNullCharacter)
		emitChar(unicode.ReplacementChar)
		return true
	}
	return true
}

func (t *Tokenizer) stepRawLessThanSign(endTagOpen, returnState State) bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.emitChars("<")
			t.state = returnState
			return true
		}
		return false
	}
	if c == '/' {
		t.buf.Next()
		t.advancePos(c)
		t.tempBuf = t.tempBuf[:0]
		t.state = endTagOpen
		return true
	}
	t.emitChars("<")
	t.state = returnState
	return true
}

func (t *Tokenizer) stepRawEndTagOpen(endTagName, returnState State) bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.emitChars("</")
			t.state = returnState
			return true
		}
		return false
	}
	if constants.IsASCIIAlpha(c) {
		t.startTag(EndTagToken)
		t.state = endTagName
		return true
	}
	t.emitChars("</")
	t.state = returnState
	return true
}

func (t *Tokenizer) stepRawEndTagName(returnState State) bool {
	for {
		c, ok := t.buf.Peek()
		if !ok {
			if t.atEOF {
				t.emitChars("</" + string(t.tempBuf))
				t.state = returnState
				return true
			}
			return false
		}
		if constants.IsASCIIAlpha(c) {
			t.buf.Next()
			t.advancePos(c)
			t.tempBuf = append(t.tempBuf, c)
			t.curTagName = append(t.curTagName, constants.ToLower(c))
			continue
		}
		if t.isAppropriateEndTag() {
			switch c {
			case '\t', '\n', '\f', ' ':
				t.buf.Next()
				t.advancePos(c)
				t.state = BeforeAttributeNameState
				return true
			case '/':
				t.buf.Next()
				t.advancePos(c)
				t.state = SelfClosingStartTagState
				return true
			case '>':
				t.buf.Next()
				t.advancePos(c)
				t.emitCurrentTag()
				return true
			}
		}
		t.emitChars("</" + string(t.tempBuf))
		t.state = returnState
		return true
	}
}

// --- TagOpen / TagName / EndTagOpen --------------------------------------

func (t *Tokenizer) stepTagOpen() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.reportParseError(herrors.EOFBeforeTagName)
			t.emitChars("<")
			return false
		}
		return false
	}
	switch {
	case c == '!':
		t.buf.Next()
		t.advancePos(c)
		t.state = MarkupDeclarationOpenState
		return true
	case c == '/':
		t.buf.Next()
		t.advancePos(c)
		t.state = EndTagOpenState
		return true
	case constants.IsASCIIAlpha(c):
		t.startTag(StartTagToken)
		t.state = TagNameState
		return true
	case c == '?':
		t.reportParseError(herrors.UnexpectedQuestionMarkInsteadOfTagName)
		t.curComment = t.curComment[:0]
		t.state = BogusCommentState
		return true
	default:
		t.reportParseError(herrors.InvalidFirstCharacterOfTagName)
		t.emitChars("<")
		t.state = DataState
		return true
	}
}

func (t *Tokenizer) stepEndTagOpen() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.reportParseError(herrors.EOFBeforeTagName)
			t.emitChars("</")
			return false
		}
		return false
	}
	switch {
	case constants.IsASCIIAlpha(c):
		t.startTag(EndTagToken)
		t.state = TagNameState
		return true
	case c == '>':
		t.buf.Next()
		t.advancePos(c)
		t.reportParseError(herrors.MissingEndTagName)
		t.state = DataState
		return true
	default:
		t.reportParseError(herrors.InvalidFirstCharacterOfTagName)
		t.curComment = t.curComment[:0]
		t.state = BogusCommentState
		return true
	}
}

func (t *Tokenizer) stepTagName() bool {
	for {
		c, ok := t.getChar()
		if !ok {
			if t.atEOF {
				t.reportParseError(herrors.EOFInTag)
				return false
			}
			return false
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			t.state = BeforeAttributeNameState
			return true
		case c == '/':
			t.state = SelfClosingStartTagState
			return true
		case c == '>':
			t.emitCurrentTag()
			return true
		case c == 0:
			t.reportParseError(herrors.UnexpectedNullCharacter)
			t.curTagName = append(t.curTagName, unicode.ReplacementChar)
		default:
			t.curTagName = append(t.curTagName, constants.ToLower(c))
		}
	}
}

// --- Script-data escape family -------------------------------------------

func (t *Tokenizer) stepScriptDataLessThanSign() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.emitChars("<")
			t.state = ScriptDataState
			return true
		}
		return false
	}
	switch c {
	case '/':
		t.buf.Next()
		t.advancePos(c)
		t.tempBuf = t.tempBuf[:0]
		t.state = ScriptDataEndTagOpenState
	case '!':
		t.buf.Next()
		t.advancePos(c)
		t.emitChars("<!")
		t.state = ScriptDataEscapeStartState
	default:
		t.emitChars("<")
		t.state = ScriptDataState
	}
	return true
}

func (t *Tokenizer) stepScriptDataEscapeStart() bool {
	c, ok := t.buf.Peek()
	if ok && c == '-' {
		t.buf.Next()
		t.advancePos(c)
		t.emitChars("-")
		t.state = ScriptDataEscapeStartDashState
		return true
	}
	t.state = ScriptDataState
	return true
}

func (t *Tokenizer) stepScriptDataEscapeStartDash() bool {
	c, ok := t.buf.Peek()
	if ok && c == '-' {
		t.buf.Next()
		t.advancePos(c)
		t.emitChars("-")
		t.state = ScriptDataEscapedDashDashState
		return true
	}
	t.state = ScriptDataState
	return true
}

func (t *Tokenizer) stepScriptDataEscaped() bool {
	res, ok := t.buf.PopExceptFrom(NewSmallCharSet('-', '<', 0))
	if !ok {
		if t.atEOF {
			t.reportParseError(herrors.EOFInScriptHTMLCommentLikeText)
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
	switch c {
	case '-':
		t.emitChars("-")
		t.state = ScriptDataEscapedDashState
	case '<':
		t.state = ScriptDataEscapedLessThanSignState
	case 0:
		t.reportParseError(herrors.UnexpectedNullCharacter)
		t.emitChars(string(unicode.ReplacementChar))
	}
	return true
}

func (t *Tokenizer) stepScriptDataEscapedDash() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			return false
		}
		return false
	}
	t.buf.Next()
	t.advancePos(c)
	switch c {
	case '-':
		t.emitChars("-")
		t.state = ScriptDataEscapedDashDashState
	case '<':
		t.state = ScriptDataEscapedLessThanSignState
	case 0:
		t.reportParseError(herrors.UnexpectedNullCharacter)
		t.emitChars(string(unicode.ReplacementChar))
		t.state = ScriptDataEscapedState
	default:
		t.emitChars(string(c))
		t.state = ScriptDataEscapedState
	}
	return true
}

func (t *Tokenizer) stepScriptDataEscapedDashDash() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			return false
		}
		return false
	}
	t.buf.Next()
	t.advancePos(c)
	switch c {
	case '-':
		t.emitChars("-")
	case '<':
		t.state = ScriptDataEscapedLessThanSignState
	case '>':
		t.emitChars(">")
		t.state = ScriptDataState
	case 0:
		t.reportParseError(herrors.UnexpectedNullCharacter)
		t.emitChars(string(unicode.ReplacementChar))
		t.state = ScriptDataEscapedState
	default:
		t.emitChars(string(c))
		t.state = ScriptDataEscapedState
	}
	return true
}

func (t *Tokenizer) stepScriptDataEscapedLessThanSign() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.emitChars("<")
			t.state = ScriptDataEscapedState
			return true
		}
		return false
	}
	switch {
	case c == '/':
		t.buf.Next()
		t.advancePos(c)
		t.tempBuf = t.tempBuf[:0]
		t.state = ScriptDataEscapedEndTagOpenState
	case constants.IsASCIIAlpha(c):
		t.emitChars("<")
		t.doubleEscapeTmp = t.doubleEscapeTmp[:0]
		t.state = ScriptDataDoubleEscapeStartState
	default:
		t.emitChars("<")
		t.state = ScriptDataEscapedState
	}
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscapeStart() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.state = ScriptDataEscapedState
			return true
		}
		return false
	}
	switch {
	case c == '\t' || c == '\n' || c == '\f' || c == ' ' || c == '/' || c == '>':
		t.buf.Next()
		t.advancePos(c)
		t.emitChars(string(c))
		if string(t.doubleEscapeTmp) == "script" {
			t.state = ScriptDataDoubleEscapedState
		} else {
			t.state = ScriptDataEscapedState
		}
	case constants.IsASCIIAlpha(c):
		t.buf.Next()
		t.advancePos(c)
		t.doubleEscapeTmp = append(t.doubleEscapeTmp, constants.ToLower(c))
		t.emitChars(string(c))
	default:
		t.state = ScriptDataEscapedState
	}
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscaped() bool {
	res, ok := t.buf.PopExceptFrom(NewSmallCharSet('-', '<', 0))
	if !ok {
		if t.atEOF {
			t.reportParseError(herrors.EOFInScriptHTMLCommentLikeText)
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
	switch c {
	case '-':
		t.emitChars("-")
		t.state = ScriptDataDoubleEscapedDashState
	case '<':
		t.emitChars("<")
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		t.reportParseError(herrors.UnexpectedNullCharacter)
		t.emitChars(string(unicode.ReplacementChar))
	}
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscapedDash() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			return false
		}
		return false
	}
	t.buf.Next()
	t.advancePos(c)
	switch c {
	case '-':
		t.emitChars("-")
		t.state = ScriptDataDoubleEscapedDashDashState
	case '<':
		t.emitChars("<")
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		t.reportParseError(herrors.UnexpectedNullCharacter)
		t.emitChars(string(unicode.ReplacementChar))
		t.state = ScriptDataDoubleEscapedState
	default:
		t.emitChars(string(c))
		t.state = ScriptDataDoubleEscapedState
	}
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscapedDashDash() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			return false
		}
		return false
	}
	t.buf.Next()
	t.advancePos(c)
	switch c {
	case '-':
		t.emitChars("-")
	case '<':
		t.emitChars("<")
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case '>':
		t.emitChars(">")
		t.state = ScriptDataState
	case 0:
		t.reportParseError(herrors.UnexpectedNullCharacter)
		t.emitChars(string(unicode.ReplacementChar))
		t.state = ScriptDataDoubleEscapedState
	default:
		t.emitChars(string(c))
		t.state = ScriptDataDoubleEscapedState
	}
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscapedLessThanSign() bool {
	c, ok := t.buf.Peek()
	if ok && c == '/' {
		t.buf.Next()
		t.advancePos(c)
		t.emitChars("/")
		t.doubleEscapeTmp = t.doubleEscapeTmp[:0]
		t.state = ScriptDataDoubleEscapeEndState
		return true
	}
	t.state = ScriptDataDoubleEscapedState
	return true
}

func (t *Tokenizer) stepScriptDataDoubleEscapeEnd() bool {
	c, ok := t.buf.Peek()
	if !ok {
		if t.atEOF {
			t.state = ScriptDataDoubleEscapedState
			return true
		}
		return false
	}
	switch {
	case c == '\t' || c == '\n' || c == '\f' || c == ' ' || c == '/' || c == '>':
		t.buf.Next()
		t.advancePos(c)
		t.emitChars(string(c))
		if string(t.doubleEscapeTmp) == "script" {
			t.state = ScriptDataEscapedState
		} else {
			t.state = ScriptDataDoubleEscapedState
		}
	case constants.IsASCIIAlpha(c):
		t.buf.Next()
		t.advancePos(c)
		t.doubleEscapeTmp = append(t.doubleEscapeTmp, constants.ToLower(c))
		t.emitChars(string(c))
	default:
		t.state = ScriptDataDoubleEscapedState
	}
	return true
}

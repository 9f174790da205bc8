package treebuilder

import (
	"strings"

	"github.com/renato-zannon/html5ever/herrors"
	"github.com/renato-zannon/html5ever/internal/constants"
	"github.com/renato-zannon/html5ever/tokenizer"
)

// FragmentContext specifies the context element for fragment parsing, per
// the "parsing HTML fragments" algorithm of WHATWG HTML §13.4.
type FragmentContext struct {
	TagName   string
	Namespace string
}

// openElement is one entry of the stack of open elements: a Handle plus the
// QualName the sink reported when it was created, cached to avoid repeated
// ElemName round-trips in the hot adoption-agency/scope-checking paths.
type openElement struct {
	handle Handle
	name   QualName
}

// formattingEntry is one node of the list of active formatting elements
// (WHATWG HTML §13.2.5.2). A Marker entry (handle == nil) delimits scopes
// introduced by table cells/captions/object elements, per the "Noah's Ark"
// bookkeeping.
type formattingEntry struct {
	marker bool
	handle Handle
	name   QualName
	attrs  []tokenizer.Attr
}

// TreeBuilder drives tree construction by dispatching each token through
// the current insertion mode (WHATWG HTML §13.2.6.4) to the configured
// TreeSink.
type TreeBuilder struct {
	sink TreeSink
	opts Opts
	tok  *tokenizer.Tokenizer

	mode         InsertionMode
	originalMode InsertionMode

	openElements     []openElement
	activeFormatting []formattingEntry

	headElement *openElement
	formElement *openElement

	templateModes []InsertionMode

	pendingTableText      []string
	pendingTableTextNonWS bool
	tableTextOriginalMode InsertionMode

	framesetOK bool

	fragmentContext *FragmentContext
	fragmentElement Handle

	quirksModeSet bool
	quirksMode    QuirksMode
	forceHTML     bool
	scriptStarted bool
}

// New creates a tree builder for full-document parsing, wired to tok as its
// TokenSink.
func New(sink TreeSink, tok *tokenizer.Tokenizer, opts ...Option) *TreeBuilder {
	o := defaultOpts()
	for _, opt := range opts {
		opt(&o)
	}
	return &TreeBuilder{
		sink:       sink,
		opts:       o,
		tok:        tok,
		mode:       Initial,
		framesetOK: true,
	}
}

// NewFragment creates a tree builder for fragment parsing (e.g. innerHTML),
// seeded with a synthetic <html> root and the given context element, per
// WHATWG HTML §13.4's fragment-parsing algorithm.
func NewFragment(sink TreeSink, tok *tokenizer.Tokenizer, ctx *FragmentContext, opts ...Option) *TreeBuilder {
	o := defaultOpts()
	o.Fragment = true
	for _, opt := range opts {
		opt(&o)
	}
	tb := &TreeBuilder{
		sink:            sink,
		opts:            o,
		tok:             tok,
		mode:            Initial,
		framesetOK:      true,
		fragmentContext: ctx,
	}

	htmlHandle := tb.sink.CreateElement(tokenizer.HTML("html"), nil)
	tb.sink.Append(tb.sink.GetDocument(), ElementNode(htmlHandle))
	tb.pushOpen(htmlHandle, tokenizer.HTML("html"))

	if ctx != nil && ctx.TagName != "" {
		name := QualName{Local: ctx.TagName}
		switch ctx.Namespace {
		case "svg":
			name.Namespace = constants.NamespaceSVG
		case "mathml":
			name.Namespace = constants.NamespaceMathML
		default:
			name.Namespace = constants.NamespaceHTML
		}
		ctxHandle := tb.sink.CreateElement(name, nil)
		tb.sink.Append(htmlHandle, ElementNode(ctxHandle))
		tb.pushOpen(ctxHandle, name)
		tb.fragmentElement = ctxHandle

		if name.Namespace != constants.NamespaceHTML {
			tb.mode = InBody
		} else {
			switch name.Local {
			case "html":
				tb.mode = BeforeHead
			case "tbody", "thead", "tfoot":
				tb.mode = InTableBody
			case "tr":
				tb.mode = InRow
			case "td", "th":
				tb.mode = InCell
			case "caption":
				tb.mode = InCaption
			case "colgroup":
				tb.mode = InColumnGroup
			case "table":
				tb.mode = InTable
			case "select":
				tb.mode = InSelect
			default:
				tb.mode = InBody
			}
		}
		tb.originalMode = tb.mode

		if name.Namespace == constants.NamespaceHTML {
			switch name.Local {
			case "title", "textarea":
				tb.tok.SetLastStartTagName(name.Local)
				tb.tok.SetState(tokenizer.RCDATAState)
			case "style", "xmp", "iframe", "noembed", "noframes":
				tb.tok.SetLastStartTagName(name.Local)
				tb.tok.SetState(tokenizer.RAWTEXTState)
			case "script":
				tb.tok.SetLastStartTagName(name.Local)
				tb.tok.SetState(tokenizer.ScriptDataState)
			case "plaintext":
				tb.tok.SetLastStartTagName(name.Local)
				tb.tok.SetState(tokenizer.PLAINTEXTState)
			}
		}
		tb.resetInsertionModeAppropriately()
	}

	return tb
}

// QueryStateChange implements tokenizer.TokenSink: the tree builder is the
// tokenizer's usual sink.
func (tb *TreeBuilder) QueryStateChange() (tokenizer.State, bool) {
	cur := tb.currentOpen()
	if cur == nil || cur.name.Namespace != constants.NamespaceHTML {
		return tokenizer.InvalidState, false
	}
	switch cur.name.Local {
	case "title", "textarea":
		return tokenizer.RCDATAState, true
	case "style", "xmp", "iframe", "noembed", "noframes", "script":
		// script actually uses ScriptDataState; textarea/title use RCDATA.
		if cur.name.Local == "script" {
			return tokenizer.ScriptDataState, true
		}
		return tokenizer.RAWTEXTState, true
	case "plaintext":
		return tokenizer.PLAINTEXTState, true
	}
	return tokenizer.InvalidState, false
}

// FragmentNodes returns the Handles of the fragment result's top-level
// children, per WHATWG HTML §13.4's fragment-parsing algorithm.
func (tb *TreeBuilder) FragmentNodes() []Handle {
	root := tb.fragmentElement
	if root == nil && len(tb.openElements) > 0 {
		root = tb.openElements[0].handle
	}
	if root == nil {
		return nil
	}
	// The sink owns child enumeration; callers that need the actual list
	// should walk their own tree from this Handle. We track it here only
	// because it's the stack-rooted handle chosen at fragment setup time.
	return []Handle{root}
}

func (tb *TreeBuilder) reportError(code string) {
	var e *herrors.ParseError
	if tb.opts.ExactErrors {
		e = herrors.New(code, 0, 0)
	} else {
		e = herrors.Coarse(code, 0, 0)
	}
	tb.sink.ParseError(e.Error())
}

// --- ProcessToken dispatch -------------------------------------------------

// ProcessToken implements tokenizer.TokenSink.
func (tb *TreeBuilder) ProcessToken(tok tokenizer.Token) {
	if tok.Kind == tokenizer.ParseErrorToken {
		tb.sink.ParseError(tok.Data)
		return
	}
	for {
		if !tb.forceHTML && tb.shouldUseForeignContent(tok) {
			if tb.processForeignContent(tok) {
				continue
			}
			tb.tok.SetAllowCDATA(tb.AllowCDATA())
			return
		}
		tb.forceHTML = false

		var reprocess bool
		switch tb.mode {
		case Initial:
			reprocess = tb.processInitial(tok)
		case BeforeHTML:
			reprocess = tb.processBeforeHTML(tok)
		case BeforeHead:
			reprocess = tb.processBeforeHead(tok)
		case InHead:
			reprocess = tb.processInHead(tok)
		case InHeadNoscript:
			reprocess = tb.processInHeadNoscript(tok)
		case AfterHead:
			reprocess = tb.processAfterHead(tok)
		case InBody:
			reprocess = tb.processInBody(tok)
		case Text:
			reprocess = tb.processText(tok)
		case InTable:
			reprocess = tb.processInTable(tok)
		case InTableText:
			reprocess = tb.processInTableText(tok)
		case InCaption:
			reprocess = tb.processInCaption(tok)
		case InColumnGroup:
			reprocess = tb.processInColumnGroup(tok)
		case InTableBody:
			reprocess = tb.processInTableBody(tok)
		case InRow:
			reprocess = tb.processInRow(tok)
		case InCell:
			reprocess = tb.processInCell(tok)
		case InSelect:
			reprocess = tb.processInSelect(tok)
		case InSelectInTable:
			reprocess = tb.processInSelectInTable(tok)
		case InTemplate:
			reprocess = tb.processInTemplate(tok)
		case AfterBody:
			reprocess = tb.processAfterBody(tok)
		case InFrameset:
			reprocess = tb.processInFrameset(tok)
		case AfterFrameset:
			reprocess = tb.processAfterFrameset(tok)
		case AfterAfterBody:
			reprocess = tb.processAfterAfterBody(tok)
		case AfterAfterFrameset:
			reprocess = tb.processAfterAfterFrameset(tok)
		default:
			reprocess = tb.processInBody(tok)
		}
		if !reprocess {
			tb.tok.SetAllowCDATA(tb.AllowCDATA())
			return
		}
	}
}

// --- open-elements stack helpers -------------------------------------------

func (tb *TreeBuilder) pushOpen(h Handle, name QualName) {
	tb.openElements = append(tb.openElements, openElement{handle: h, name: name})
}

func (tb *TreeBuilder) currentOpen() *openElement {
	if len(tb.openElements) == 0 {
		return nil
	}
	return &tb.openElements[len(tb.openElements)-1]
}

func (tb *TreeBuilder) currentHandle() Handle {
	if c := tb.currentOpen(); c != nil {
		return c.handle
	}
	return nil
}

// AllowCDATA reports whether the tokenizer should tokenize a `<![CDATA[`
// declaration as markup rather than a bogus comment; ProcessToken
// re-queries this after every token. It follows the "adjusted current
// node" rule (WHATWG HTML §13.2.6.3): the fragment context element stands
// in for the bottommost stack entry during fragment parsing.
func (tb *TreeBuilder) AllowCDATA() bool {
	if len(tb.openElements) == 0 {
		return false
	}
	name := tb.openElements[len(tb.openElements)-1].name
	if len(tb.openElements) == 1 && tb.fragmentContext != nil {
		switch tb.fragmentContext.Namespace {
		case "svg":
			name.Namespace = constants.NamespaceSVG
		case "mathml":
			name.Namespace = constants.NamespaceMathML
		default:
			name.Namespace = constants.NamespaceHTML
		}
	}
	return name.Namespace != constants.NamespaceHTML
}

func (tb *TreeBuilder) popCurrent() *openElement {
	if len(tb.openElements) == 0 {
		return nil
	}
	el := tb.openElements[len(tb.openElements)-1]
	tb.openElements = tb.openElements[:len(tb.openElements)-1]
	return &el
}

func (tb *TreeBuilder) popUntilName(name string) {
	for len(tb.openElements) > 0 {
		el := tb.popCurrent()
		if el.name.Local == name {
			return
		}
	}
}

func (tb *TreeBuilder) elementInStack(name string) bool {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		if tb.openElements[i].name.Local == name {
			return true
		}
	}
	return false
}

func (tb *TreeBuilder) indexOfHandle(h Handle) int {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		if tb.sink.SameNode(tb.openElements[i].handle, h) {
			return i
		}
	}
	return -1
}

// --- insertion helpers ------------------------------------------------------

func (tb *TreeBuilder) insertComment(data string) {
	h := tb.sink.CreateComment(data)
	parent, before := tb.appropriateInsertionLocation()
	tb.insertNodeOrText(parent, before, ElementNode(h))
}

func (tb *TreeBuilder) insertCommentIntoNode(parent Handle, data string) {
	h := tb.sink.CreateComment(data)
	tb.sink.Append(parent, ElementNode(h))
}

func (tb *TreeBuilder) insertText(data string) {
	if data == "" {
		return
	}
	parent, before := tb.appropriateInsertionLocation()
	tb.insertNodeOrText(parent, before, TextNode(data))
}

func (tb *TreeBuilder) insertNodeOrText(parent, before Handle, n NodeOrText) {
	if before == nil {
		tb.sink.Append(parent, n)
		return
	}
	ok, rejected := tb.sink.AppendBeforeSibling(before, n)
	if !ok {
		tb.sink.Append(parent, rejected)
	}
}

func (tb *TreeBuilder) insertElementForToken(tok tokenizer.Token, namespace string) Handle {
	name := QualName{Namespace: namespace, Local: tok.Name}
	h := tb.sink.CreateElement(name, tok.Attrs)
	parent, before := tb.appropriateInsertionLocation()
	tb.insertNodeOrText(parent, before, ElementNode(h))
	tb.pushOpen(h, name)
	return h
}

func (tb *TreeBuilder) insertHTMLElement(tok tokenizer.Token) Handle {
	return tb.insertElementForToken(tok, constants.NamespaceHTML)
}

// insertElement is the common case of insertHTMLElement: building a start
// tag's worth of state just to name and attrs is unnecessary busywork.
func (tb *TreeBuilder) insertElement(name string, attrs []tokenizer.Attr) Handle {
	return tb.insertHTMLElement(tokenizer.Token{Kind: tokenizer.StartTagToken, Name: name, Attrs: attrs})
}

// findOpenByName returns the first (outermost) open HTML element with the
// given name, or nil. Used for "does a body/frameset element already exist"
// checks that don't require a full document accessor on the sink.
func (tb *TreeBuilder) findOpenByName(name string) *openElement {
	for i := range tb.openElements {
		if tb.openElements[i].name.Namespace == constants.NamespaceHTML && tb.openElements[i].name.Local == name {
			return &tb.openElements[i]
		}
	}
	return nil
}

// setQuirksModeFromDoctype implements the quirks-mode classification table
// driven by a DOCTYPE token (HTML §13.2.5.4.1, Initial insertion mode).
func (tb *TreeBuilder) setQuirksModeFromDoctype(name string, publicID, systemID *string, forceQuirks bool) {
	nameLower := strings.ToLower(name)
	public := strings.ToLower(ptrToString(publicID))
	system := strings.ToLower(ptrToString(systemID))

	mode := NoQuirks
	switch {
	case forceQuirks:
		mode = Quirks
	case tb.opts.IframeSrcdoc:
		mode = NoQuirks
	case nameLower != "html":
		mode = Quirks
	case constants.QuirkyPublicMatches[public]:
		mode = Quirks
	case constants.QuirkySystemMatches[system]:
		mode = Quirks
	case public != "" && hasAnyPrefix(public, constants.QuirkyPublicPrefixes):
		mode = Quirks
	case public != "" && hasAnyPrefix(public, constants.LimitedQuirkyPublicPrefixes):
		mode = LimitedQuirks
	case public != "" && hasAnyPrefix(public, constants.HTML4PublicPrefixes):
		if systemID == nil {
			mode = Quirks
		} else {
			mode = LimitedQuirks
		}
	}
	tb.quirksModeSet = true
	tb.quirksMode = mode
	tb.sink.SetQuirksMode(mode)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func (tb *TreeBuilder) appropriateInsertionLocation() (Handle, Handle) {
	cur := tb.currentOpen()
	if cur != nil && cur.name.Namespace == constants.NamespaceHTML && cur.name.Local == "template" {
		return cur.handle, nil
	}
	if !tb.shouldFosterForCurrent() {
		return tb.currentHandle(), nil
	}
	return tb.fosterInsertionLocation()
}

func (tb *TreeBuilder) shouldFosterForCurrent() bool {
	cur := tb.currentOpen()
	if cur == nil || cur.name.Namespace != constants.NamespaceHTML {
		return false
	}
	return constants.TableFosterTargets[cur.name.Local]
}

func (tb *TreeBuilder) fosterInsertionLocation() (Handle, Handle) {
	tableIdx := -1
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		if tb.openElements[i].name.Namespace == constants.NamespaceHTML && tb.openElements[i].name.Local == "table" {
			tableIdx = i
			break
		}
	}
	templateIdx := -1
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		if tb.openElements[i].name.Namespace == constants.NamespaceHTML && tb.openElements[i].name.Local == "template" {
			templateIdx = i
			break
		}
	}
	if templateIdx != -1 && (tableIdx == -1 || templateIdx > tableIdx) {
		return tb.openElements[templateIdx].handle, nil
	}
	if tableIdx == -1 {
		return tb.openElements[0].handle, nil
	}
	tableHandle := tb.openElements[tableIdx].handle
	if tableIdx > 0 {
		return tb.openElements[tableIdx-1].handle, tableHandle
	}
	return tb.sink.GetDocument(), tableHandle
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
		default:
			return false
		}
	}
	return true
}

func ptrToString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func lowerASCII(s string) string { return strings.ToLower(s) }

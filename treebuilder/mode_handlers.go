package treebuilder

import (
	"strings"

	"github.com/renato-zannon/html5ever/herrors"
	"github.com/renato-zannon/html5ever/internal/constants"
	"github.com/renato-zannon/html5ever/tokenizer"
)

// Each processXxx method implements one insertion mode from HTML §13.2.6.
// It returns true when the token must be reprocessed (usually after a mode
// change), false once it has been fully consumed.

func (tb *TreeBuilder) processInitial(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CharacterTokensToken:
		if isAllWhitespace(tok.Data) {
			return false
		}
	case tokenizer.CommentToken:
		tb.insertCommentIntoNode(tb.sink.GetDocument(), tok.Data)
		return false
	case tokenizer.DoctypeToken:
		if !tb.opts.DropDoctype {
			tb.sink.AppendDoctypeToDocument(tok.Name, ptrToString(tok.PublicID), ptrToString(tok.SystemID))
		}
		tb.setQuirksModeFromDoctype(tok.Name, tok.PublicID, tok.SystemID, tok.ForceQuirks)
		tb.mode = BeforeHTML
		return false
	}
	if !tb.quirksModeSet {
		tb.quirksModeSet = true
		tb.quirksMode = Quirks
		tb.sink.SetQuirksMode(Quirks)
	}
	tb.mode = BeforeHTML
	return true
}

func (tb *TreeBuilder) processBeforeHTML(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CharacterTokensToken:
		if isAllWhitespace(tok.Data) {
			return false
		}
	case tokenizer.CommentToken:
		tb.insertCommentIntoNode(tb.sink.GetDocument(), tok.Data)
		return false
	case tokenizer.DoctypeToken:
		return false
	case tokenizer.StartTagToken:
		if tok.Name == "html" {
			h := tb.sink.CreateElement(tokenizer.HTML("html"), tok.Attrs)
			tb.sink.Append(tb.sink.GetDocument(), ElementNode(h))
			tb.pushOpen(h, tokenizer.HTML("html"))
			tb.mode = BeforeHead
			return false
		}
	case tokenizer.EndTagToken:
		switch tok.Name {
		case "head", "body", "html", "br":
		default:
			return false
		}
	}

	h := tb.sink.CreateElement(tokenizer.HTML("html"), nil)
	tb.sink.Append(tb.sink.GetDocument(), ElementNode(h))
	tb.pushOpen(h, tokenizer.HTML("html"))
	tb.mode = BeforeHead
	return true
}

func (tb *TreeBuilder) processBeforeHead(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CharacterTokensToken:
		if isAllWhitespace(tok.Data) {
			return false
		}
	case tokenizer.CommentToken:
		tb.insertComment(tok.Data)
		return false
	case tokenizer.DoctypeToken:
		return false
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "head":
			h := tb.insertElement("head", tok.Attrs)
			tb.headElement = &openElement{handle: h, name: tokenizer.HTML("head")}
			tb.mode = InHead
			return false
		}
	case tokenizer.EndTagToken:
		switch tok.Name {
		case "head", "body", "html", "br":
		default:
			tb.reportError(herrors.UnexpectedEndTag)
			return false
		}
	}

	h := tb.insertElement("head", nil)
	tb.headElement = &openElement{handle: h, name: tokenizer.HTML("head")}
	tb.mode = InHead
	return true
}

func (tb *TreeBuilder) processInHead(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CharacterTokensToken:
		if isAllWhitespace(tok.Data) {
			tb.insertText(tok.Data)
			return false
		}
	case tokenizer.CommentToken:
		tb.insertComment(tok.Data)
		return false
	case tokenizer.DoctypeToken:
		return false
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "base", "basefont", "bgsound", "link", "meta":
			tb.insertElement(tok.Name, tok.Attrs)
			tb.popCurrent()
			return false
		case "title":
			tb.switchToText(tok, tokenizer.RCDATAState)
			return false
		case "noscript":
			if tb.opts.ScriptingEnabled {
				tb.insertElement("noscript", tok.Attrs)
				tb.mode = InHeadNoscript
				return false
			}
			tb.insertElement("noscript", tok.Attrs)
			return false
		case "noframes", "style":
			tb.switchToText(tok, tokenizer.RAWTEXTState)
			return false
		case "script":
			h := tb.insertForeignElement("script", constants.NamespaceHTML, tok.Attrs, false)
			if tb.opts.Fragment {
				tb.sink.MarkScriptAlreadyStarted(h)
			}
			tb.originalMode = tb.mode
			tb.mode = Text
			tb.tok.SetLastStartTagName("script")
			tb.tok.SetState(tokenizer.ScriptDataState)
			return false
		case "template":
			tb.insertElement("template", tok.Attrs)
			tb.pushFormattingMarker()
			tb.framesetOK = false
			tb.mode = InTemplate
			tb.templateModes = append(tb.templateModes, InTemplate)
			return false
		case "head":
			tb.reportError(herrors.UnexpectedStartTag)
			return false
		}
	case tokenizer.EndTagToken:
		switch tok.Name {
		case "head":
			tb.popCurrent()
			tb.mode = AfterHead
			return false
		case "body", "html", "br":
		case "template":
			if !tb.elementInStack("template") {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.generateImpliedEndTagsThoroughly()
			tb.popUntilName("template")
			tb.clearFormattingToLastMarker()
			if len(tb.templateModes) > 0 {
				tb.templateModes = tb.templateModes[:len(tb.templateModes)-1]
			}
			tb.resetInsertionModeAppropriately()
			return false
		default:
			tb.reportError(herrors.UnexpectedEndTag)
			return false
		}
	case tokenizer.EOFToken:
		if !tb.elementInStack("template") {
			tb.popCurrent()
			tb.mode = AfterHead
			return true
		}
		tb.popUntilName("template")
		tb.clearFormattingToLastMarker()
		if len(tb.templateModes) > 0 {
			tb.templateModes = tb.templateModes[:len(tb.templateModes)-1]
		}
		tb.resetInsertionModeAppropriately()
		return true
	}

	tb.popCurrent()
	tb.mode = AfterHead
	return true
}

// switchToText inserts tok as an element, then switches to Text mode and
// primes the tokenizer's RAWTEXT/RCDATA state directly (the tokenizer's
// QueryStateChange back-channel handles the common case, but setting it
// eagerly here avoids one token of lag for the element that triggered it).
func (tb *TreeBuilder) switchToText(tok tokenizer.Token, state tokenizer.State) {
	tb.insertElement(tok.Name, tok.Attrs)
	tb.originalMode = tb.mode
	tb.mode = Text
	tb.tok.SetLastStartTagName(tok.Name)
	tb.tok.SetState(state)
}

func (tb *TreeBuilder) processInHeadNoscript(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.DoctypeToken:
		return false
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return tb.processInHead(tok)
		case "head", "noscript":
			tb.reportError(herrors.UnexpectedStartTag)
			return false
		}
	case tokenizer.EndTagToken:
		switch tok.Name {
		case "noscript":
			tb.popCurrent()
			tb.mode = InHead
			return false
		case "br":
		default:
			tb.reportError(herrors.UnexpectedEndTag)
			return false
		}
	case tokenizer.CharacterTokensToken:
		if isAllWhitespace(tok.Data) {
			return tb.processInHead(tok)
		}
	case tokenizer.CommentToken:
		return tb.processInHead(tok)
	}

	tb.reportError(herrors.UnexpectedEndTag)
	tb.popCurrent()
	tb.mode = InHead
	return true
}

func (tb *TreeBuilder) processAfterHead(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CharacterTokensToken:
		if isAllWhitespace(tok.Data) {
			tb.insertText(tok.Data)
			return false
		}
	case tokenizer.CommentToken:
		tb.insertComment(tok.Data)
		return false
	case tokenizer.DoctypeToken:
		return false
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "body":
			tb.insertElement("body", tok.Attrs)
			tb.framesetOK = false
			tb.mode = InBody
			return false
		case "frameset":
			tb.insertElement("frameset", tok.Attrs)
			tb.mode = InFrameset
			return false
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
			"style", "template", "title":
			tb.reportError(herrors.UnexpectedStartTag)
			if tb.headElement != nil {
				tb.openElements = append(tb.openElements, *tb.headElement)
				tb.processInHead(tok)
				tb.removeOpenAt(tb.indexOfHandle(tb.headElement.handle))
			}
			return false
		case "head":
			tb.reportError(herrors.UnexpectedStartTag)
			return false
		}
	case tokenizer.EndTagToken:
		switch tok.Name {
		case "template":
			return tb.processInHead(tok)
		case "body", "html", "br":
		default:
			tb.reportError(herrors.UnexpectedEndTag)
			return false
		}
	}

	tb.insertElement("body", nil)
	tb.framesetOK = true
	tb.mode = InBody
	return true
}

func (tb *TreeBuilder) processText(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CharacterTokensToken:
		tb.insertText(tok.Data)
		return false
	case tokenizer.NullCharacterToken:
		tb.insertText("�")
		return false
	case tokenizer.EOFToken:
		tb.reportError(herrors.EOFInTag)
		if cur := tb.currentOpen(); cur != nil && cur.name.Local == "script" {
			tb.sink.MarkScriptAlreadyStarted(cur.handle)
		}
		tb.popCurrent()
		tb.mode = tb.originalMode
		return true
	case tokenizer.EndTagToken:
		if tok.Name == "script" {
			tb.popCurrent()
			tb.mode = tb.originalMode
			return false
		}
		tb.popCurrent()
		tb.mode = tb.originalMode
		return false
	default:
		return false
	}
}

func (tb *TreeBuilder) processInBody(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.NullCharacterToken:
		tb.reportError(herrors.UnexpectedNullCharacter)
		return false
	case tokenizer.CharacterTokensToken:
		tb.reconstructActiveFormattingElements()
		if !isAllWhitespace(tok.Data) {
			tb.framesetOK = false
		}
		tb.insertText(tok.Data)
		return false
	case tokenizer.CommentToken:
		tb.insertComment(tok.Data)
		return false
	case tokenizer.DoctypeToken:
		tb.reportError(herrors.UnexpectedDoctype)
		return false
	case tokenizer.EOFToken:
		if len(tb.templateModes) > 0 {
			return tb.processInTemplate(tok)
		}
		return false
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "html":
			tb.reportError(herrors.UnexpectedStartTag)
			if h := tb.findOpenByName("html"); h != nil {
				tb.sink.AddAttrsIfMissing(h.handle, tok.Attrs)
			}
			return false
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script",
			"style", "template", "title":
			return tb.processInHead(tok)
		case "body":
			tb.reportError(herrors.UnexpectedStartTag)
			if len(tb.openElements) >= 2 {
				if body := tb.findOpenByName("body"); body != nil {
					tb.sink.AddAttrsIfMissing(body.handle, tok.Attrs)
				}
			}
			tb.framesetOK = false
			return false
		case "frameset":
			tb.reportError(herrors.UnexpectedStartTag)
			if !tb.framesetOK || len(tb.openElements) < 2 {
				return false
			}
			tb.sink.RemoveFromParent(tb.openElements[1].handle)
			tb.openElements = tb.openElements[:1]
			tb.insertElement("frameset", tok.Attrs)
			tb.mode = InFrameset
			return false
		case "address", "article", "aside", "blockquote", "center", "details",
			"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure",
			"footer", "header", "hgroup", "main", "menu", "nav", "ol", "p",
			"section", "summary", "ul":
			tb.closePElementIfInButtonScope()
			tb.insertElement(tok.Name, tok.Attrs)
			return false
		case "h1", "h2", "h3", "h4", "h5", "h6":
			tb.closePElementIfInButtonScope()
			if cur := tb.currentOpen(); cur != nil {
				switch cur.name.Local {
				case "h1", "h2", "h3", "h4", "h5", "h6":
					tb.popCurrent()
				}
			}
			tb.insertElement(tok.Name, tok.Attrs)
			return false
		case "pre", "listing":
			tb.closePElementIfInButtonScope()
			tb.insertElement(tok.Name, tok.Attrs)
			tb.framesetOK = false
			return false
		case "form":
			if tb.formElement != nil && !tb.elementInStack("template") {
				tb.reportError(herrors.UnexpectedStartTag)
				return false
			}
			tb.closePElementIfInButtonScope()
			h := tb.insertElement("form", tok.Attrs)
			if !tb.elementInStack("template") {
				oe := openElement{handle: h, name: tokenizer.HTML("form")}
				tb.formElement = &oe
			}
			return false
		case "li":
			tb.framesetOK = false
			for i := len(tb.openElements) - 1; i >= 0; i-- {
				el := tb.openElements[i]
				if el.name.Local == "li" {
					tb.generateImpliedEndTags("li")
					tb.popUntilName("li")
					break
				}
				if isSpecialElement(el.name) && el.name.Local != "address" && el.name.Local != "div" && el.name.Local != "p" {
					break
				}
			}
			tb.closePElementIfInButtonScope()
			tb.insertElement("li", tok.Attrs)
			return false
		case "dd", "dt":
			tb.framesetOK = false
			for i := len(tb.openElements) - 1; i >= 0; i-- {
				el := tb.openElements[i]
				if el.name.Local == "dd" || el.name.Local == "dt" {
					tb.generateImpliedEndTags(el.name.Local)
					tb.popUntilName(el.name.Local)
					break
				}
				if isSpecialElement(el.name) && el.name.Local != "address" && el.name.Local != "div" && el.name.Local != "p" {
					break
				}
			}
			tb.closePElementIfInButtonScope()
			tb.insertElement(tok.Name, tok.Attrs)
			return false
		case "plaintext":
			tb.closePElementIfInButtonScope()
			tb.insertElement("plaintext", tok.Attrs)
			tb.tok.SetState(tokenizer.PLAINTEXTState)
			return false
		case "button":
			if tb.elementInDefaultScope("button") {
				tb.reportError(herrors.UnexpectedStartTag)
				tb.generateImpliedEndTags("")
				tb.popUntilName("button")
			}
			tb.reconstructActiveFormattingElements()
			tb.insertElement("button", tok.Attrs)
			tb.framesetOK = false
			return false
		case "a":
			if i := tb.findFormattingByName("a"); i != -1 {
				tb.reportError(herrors.UnexpectedStartTag)
				tb.adoptionAgency("a")
				tb.removeLastActiveFormattingByName("a")
				tb.removeLastOpenElementByName("a")
			}
			tb.reconstructActiveFormattingElements()
			h := tb.insertElement("a", tok.Attrs)
			tb.pushFormatting(h, tokenizer.HTML("a"), tok.Attrs)
			return false
		case "b", "big", "code", "em", "font", "i", "s", "small", "strike",
			"strong", "tt", "u":
			tb.reconstructActiveFormattingElements()
			h := tb.insertElement(tok.Name, tok.Attrs)
			tb.pushFormatting(h, tokenizer.HTML(tok.Name), tok.Attrs)
			return false
		case "nobr":
			tb.reconstructActiveFormattingElements()
			if tb.elementInDefaultScope("nobr") {
				tb.reportError(herrors.UnexpectedStartTag)
				tb.adoptionAgency("nobr")
				tb.reconstructActiveFormattingElements()
			}
			h := tb.insertElement("nobr", tok.Attrs)
			tb.pushFormatting(h, tokenizer.HTML("nobr"), tok.Attrs)
			return false
		case "applet", "marquee", "object":
			tb.reconstructActiveFormattingElements()
			tb.insertElement(tok.Name, tok.Attrs)
			tb.pushFormattingMarker()
			tb.framesetOK = false
			return false
		case "table":
			if tb.quirksMode != Quirks {
				tb.closePElementIfInButtonScope()
			}
			tb.insertElement("table", tok.Attrs)
			tb.framesetOK = false
			tb.mode = InTable
			return false
		case "area", "br", "embed", "img", "keygen", "wbr":
			tb.reconstructActiveFormattingElements()
			tb.insertElement(tok.Name, tok.Attrs)
			tb.popCurrent()
			tb.framesetOK = false
			return false
		case "input":
			tb.reconstructActiveFormattingElements()
			tb.insertElement("input", tok.Attrs)
			tb.popCurrent()
			if !isHiddenInputType(tok.Attrs) {
				tb.framesetOK = false
			}
			return false
		case "param", "source", "track":
			tb.insertElement(tok.Name, tok.Attrs)
			tb.popCurrent()
			return false
		case "hr":
			tb.closePElementIfInButtonScope()
			tb.insertElement("hr", tok.Attrs)
			tb.popCurrent()
			tb.framesetOK = false
			return false
		case "image":
			tok.Name = "img"
			return true
		case "textarea":
			tb.insertElement("textarea", tok.Attrs)
			tb.originalMode = tb.mode
			tb.framesetOK = false
			tb.mode = Text
			tb.tok.SetLastStartTagName("textarea")
			tb.tok.SetState(tokenizer.RCDATAState)
			return false
		case "xmp":
			tb.closePElementIfInButtonScope()
			tb.reconstructActiveFormattingElements()
			tb.framesetOK = false
			tb.switchToText(tok, tokenizer.RAWTEXTState)
			return false
		case "iframe":
			tb.framesetOK = false
			tb.switchToText(tok, tokenizer.RAWTEXTState)
			return false
		case "noembed":
			tb.switchToText(tok, tokenizer.RAWTEXTState)
			return false
		case "select":
			tb.reconstructActiveFormattingElements()
			tb.insertElement("select", tok.Attrs)
			tb.framesetOK = false
			switch tb.mode {
			case InTable, InCaption, InTableBody, InRow, InCell:
				tb.mode = InSelectInTable
			default:
				tb.mode = InSelect
			}
			return false
		case "optgroup", "option":
			if cur := tb.currentOpen(); cur != nil && cur.name.Local == "option" {
				tb.popCurrent()
			}
			tb.reconstructActiveFormattingElements()
			tb.insertElement(tok.Name, tok.Attrs)
			return false
		case "rb", "rtc":
			if tb.elementInDefaultScope("ruby") {
				tb.generateImpliedEndTags("")
			}
			tb.insertElement(tok.Name, tok.Attrs)
			return false
		case "rp", "rt":
			if tb.elementInDefaultScope("ruby") {
				tb.generateImpliedEndTags("rtc")
			}
			tb.insertElement(tok.Name, tok.Attrs)
			return false
		case "math":
			tb.reconstructActiveFormattingElements()
			attrs := prepareForeignAttributes(constants.NamespaceMathML, tok.Attrs)
			tb.insertForeignElement("math", constants.NamespaceMathML, attrs, tok.SelfClosing)
			return false
		case "svg":
			tb.reconstructActiveFormattingElements()
			attrs := prepareForeignAttributes(constants.NamespaceSVG, tok.Attrs)
			tb.insertForeignElement("svg", constants.NamespaceSVG, attrs, tok.SelfClosing)
			return false
		case "caption", "col", "colgroup", "frame", "head", "tbody", "td",
			"tfoot", "th", "thead", "tr":
			tb.reportError(herrors.UnexpectedStartTag)
			return false
		}

		tb.reconstructActiveFormattingElements()
		tb.insertElement(tok.Name, tok.Attrs)
		return false
	case tokenizer.EndTagToken:
		switch tok.Name {
		case "template":
			return tb.processInHead(tok)
		case "body":
			if !tb.elementInDefaultScope("body") {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.mode = AfterBody
			return false
		case "html":
			if !tb.elementInDefaultScope("body") {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.mode = AfterBody
			return true
		case "address", "article", "aside", "blockquote", "button", "center",
			"details", "dialog", "dir", "div", "dl", "fieldset", "figcaption",
			"figure", "footer", "header", "hgroup", "listing", "main", "menu",
			"nav", "ol", "pre", "section", "summary", "ul":
			if !tb.elementInDefaultScope(tok.Name) {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.generateImpliedEndTags("")
			if cur := tb.currentOpen(); cur == nil || cur.name.Local != tok.Name {
				tb.reportError(herrors.UnexpectedEndTag)
			}
			tb.popUntilName(tok.Name)
			return false
		case "form":
			if !tb.elementInStack("template") {
				node := tb.formElement
				tb.formElement = nil
				if node == nil || !tb.elementInDefaultScope(node.name.Local) {
					tb.reportError(herrors.UnexpectedEndTag)
					return false
				}
				tb.generateImpliedEndTags("")
				if idx := tb.indexOfHandle(node.handle); idx != -1 {
					tb.removeOpenAt(idx)
				}
				return false
			}
			if !tb.elementInDefaultScope("form") {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.generateImpliedEndTags("")
			if cur := tb.currentOpen(); cur == nil || cur.name.Local != "form" {
				tb.reportError(herrors.UnexpectedEndTag)
			}
			tb.popUntilName("form")
			return false
		case "p":
			tb.closePElement()
			return false
		case "li":
			if !tb.elementInListItemScope("li") {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.generateImpliedEndTags("li")
			if cur := tb.currentOpen(); cur == nil || cur.name.Local != "li" {
				tb.reportError(herrors.UnexpectedEndTag)
			}
			tb.popUntilName("li")
			return false
		case "dd", "dt":
			if !tb.elementInDefaultScope(tok.Name) {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.generateImpliedEndTags(tok.Name)
			if cur := tb.currentOpen(); cur == nil || cur.name.Local != tok.Name {
				tb.reportError(herrors.UnexpectedEndTag)
			}
			tb.popUntilName(tok.Name)
			return false
		case "h1", "h2", "h3", "h4", "h5", "h6":
			if !tb.hasElementInScope("h1", constants.DefaultScope) &&
				!tb.hasElementInScope("h2", constants.DefaultScope) &&
				!tb.hasElementInScope("h3", constants.DefaultScope) &&
				!tb.hasElementInScope("h4", constants.DefaultScope) &&
				!tb.hasElementInScope("h5", constants.DefaultScope) &&
				!tb.hasElementInScope("h6", constants.DefaultScope) {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.generateImpliedEndTags("")
			if cur := tb.currentOpen(); cur == nil || cur.name.Local != tok.Name {
				tb.reportError(herrors.UnexpectedEndTag)
			}
			for len(tb.openElements) > 0 {
				name := tb.popCurrent().name.Local
				switch name {
				case "h1", "h2", "h3", "h4", "h5", "h6":
					return false
				}
			}
			return false
		case "a", "b", "big", "code", "em", "font", "i", "nobr", "s", "small",
			"strike", "strong", "tt", "u":
			tb.adoptionAgency(tok.Name)
			return false
		case "applet", "marquee", "object":
			if !tb.elementInDefaultScope(tok.Name) {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.generateImpliedEndTags("")
			if cur := tb.currentOpen(); cur == nil || cur.name.Local != tok.Name {
				tb.reportError(herrors.UnexpectedEndTag)
			}
			tb.popUntilName(tok.Name)
			tb.clearFormattingToLastMarker()
			return false
		case "br":
			tb.reportError(herrors.UnexpectedEndTag)
			tb.reconstructActiveFormattingElements()
			tb.insertElement("br", nil)
			tb.popCurrent()
			tb.framesetOK = false
			return false
		default:
			tb.anyOtherEndTag(tok.Name)
			return false
		}
	}
	return false
}

// anyOtherEndTag implements the "any other end tag" catch-all of in-body.
func (tb *TreeBuilder) anyOtherEndTag(name string) {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		el := tb.openElements[i]
		if el.name.Local == name {
			tb.generateImpliedEndTags(name)
			if cur := tb.currentOpen(); cur != nil && cur.name.Local != name {
				tb.reportError(herrors.UnexpectedEndTag)
			}
			tb.openElements = tb.openElements[:i]
			return
		}
		if isSpecialElement(el.name) {
			tb.reportError(herrors.UnexpectedEndTag)
			return
		}
	}
}

func isHiddenInputType(attrs []tokenizer.Attr) bool {
	for _, a := range attrs {
		if a.Name.Namespace == "" && strings.EqualFold(a.Name.Local, "type") && strings.EqualFold(a.Value, "hidden") {
			return true
		}
	}
	return false
}

func (tb *TreeBuilder) processInTable(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CharacterTokensToken, tokenizer.NullCharacterToken:
		switch cur := tb.currentOpen(); {
		case cur != nil && constants.TableFosterTargets[cur.name.Local]:
			tb.pendingTableText = tb.pendingTableText[:0]
			tb.pendingTableTextNonWS = false
			tb.tableTextOriginalMode = tb.mode
			tb.mode = InTableText
			return true
		}
	case tokenizer.CommentToken:
		tb.insertComment(tok.Data)
		return false
	case tokenizer.DoctypeToken:
		tb.reportError(herrors.UnexpectedDoctype)
		return false
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "caption":
			tb.clearStackToTableContext()
			tb.pushFormattingMarker()
			tb.insertElement("caption", tok.Attrs)
			tb.mode = InCaption
			return false
		case "colgroup":
			tb.clearStackToTableContext()
			tb.insertElement("colgroup", tok.Attrs)
			tb.mode = InColumnGroup
			return false
		case "col":
			tb.clearStackToTableContext()
			tb.insertElement("colgroup", nil)
			tb.mode = InColumnGroup
			return true
		case "tbody", "tfoot", "thead":
			tb.clearStackToTableContext()
			tb.insertElement(tok.Name, tok.Attrs)
			tb.mode = InTableBody
			return false
		case "td", "th", "tr":
			tb.clearStackToTableContext()
			tb.insertElement("tbody", nil)
			tb.mode = InTableBody
			return true
		case "table":
			tb.reportError(herrors.UnexpectedStartTag)
			if !tb.elementInTableScope("table") {
				return false
			}
			tb.popUntilName("table")
			tb.resetInsertionModeAppropriately()
			return true
		case "style", "script", "template":
			return tb.processInHead(tok)
		case "input":
			if isHiddenInputType(tok.Attrs) {
				tb.reportError(herrors.UnexpectedStartTag)
				tb.insertElement("input", tok.Attrs)
				tb.popCurrent()
				return false
			}
		case "form":
			tb.reportError(herrors.UnexpectedStartTag)
			if tb.formElement == nil && !tb.elementInStack("template") {
				h := tb.insertElement("form", tok.Attrs)
				oe := openElement{handle: h, name: tokenizer.HTML("form")}
				tb.formElement = &oe
				tb.popCurrent()
			}
			return false
		}
	case tokenizer.EndTagToken:
		switch tok.Name {
		case "table":
			if !tb.elementInTableScope("table") {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.popUntilName("table")
			tb.resetInsertionModeAppropriately()
			return false
		case "body", "caption", "col", "colgroup", "html", "tbody", "td",
			"tfoot", "th", "thead", "tr":
			tb.reportError(herrors.UnexpectedEndTag)
			return false
		case "template":
			return tb.processInHead(tok)
		}
	case tokenizer.EOFToken:
		return tb.processInBody(tok)
	}

	tb.reportError(herrors.FosterParentedCharacter)
	tb.processInBody(tok)
	return false
}

func (tb *TreeBuilder) clearStackToTableContext() {
	for {
		cur := tb.currentOpen()
		if cur == nil {
			return
		}
		switch cur.name.Local {
		case "table", "template", "html":
			return
		}
		tb.popCurrent()
	}
}

func (tb *TreeBuilder) processInTableText(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.NullCharacterToken:
		tb.reportError(herrors.UnexpectedNullCharacter)
		return false
	case tokenizer.CharacterTokensToken:
		if !isAllWhitespace(tok.Data) {
			tb.pendingTableTextNonWS = true
		}
		tb.pendingTableText = append(tb.pendingTableText, tok.Data)
		return false
	}

	text := strings.Join(tb.pendingTableText, "")
	tb.pendingTableText = tb.pendingTableText[:0]
	if tb.pendingTableTextNonWS {
		tb.pendingTableTextNonWS = false
		tb.reportError(herrors.NonSpaceCharacterInTableText)
		tb.insertText(text)
	} else if text != "" {
		tb.insertText(text)
	}
	tb.mode = tb.tableTextOriginalMode
	return true
}

func (tb *TreeBuilder) processInCaption(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.EndTagToken:
		switch tok.Name {
		case "caption":
			if !tb.elementInTableScope("caption") {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.generateImpliedEndTags("")
			tb.popUntilName("caption")
			tb.clearFormattingToLastMarker()
			tb.mode = InTable
			return false
		case "table":
			if !tb.elementInTableScope("caption") {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.popUntilName("caption")
			tb.clearFormattingToLastMarker()
			tb.mode = InTable
			return true
		case "body", "col", "colgroup", "html", "tbody", "td", "tfoot", "th",
			"thead", "tr":
			tb.reportError(herrors.UnexpectedEndTag)
			return false
		}
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th",
			"thead", "tr":
			if !tb.elementInTableScope("caption") {
				return false
			}
			tb.popUntilName("caption")
			tb.clearFormattingToLastMarker()
			tb.mode = InTable
			return true
		}
	}
	return tb.processInBody(tok)
}

func (tb *TreeBuilder) processInColumnGroup(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CharacterTokensToken:
		if isAllWhitespace(tok.Data) {
			tb.insertText(tok.Data)
			return false
		}
	case tokenizer.CommentToken:
		tb.insertComment(tok.Data)
		return false
	case tokenizer.DoctypeToken:
		tb.reportError(herrors.UnexpectedDoctype)
		return false
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "col":
			tb.insertElement("col", tok.Attrs)
			tb.popCurrent()
			return false
		case "template":
			return tb.processInHead(tok)
		}
	case tokenizer.EndTagToken:
		switch tok.Name {
		case "colgroup":
			if cur := tb.currentOpen(); cur == nil || cur.name.Local != "colgroup" {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.popCurrent()
			tb.mode = InTable
			return false
		case "col":
			tb.reportError(herrors.UnexpectedEndTag)
			return false
		case "template":
			return tb.processInHead(tok)
		}
	case tokenizer.EOFToken:
		return tb.processInBody(tok)
	}

	if cur := tb.currentOpen(); cur == nil || cur.name.Local != "colgroup" {
		return false
	}
	tb.popCurrent()
	tb.mode = InTable
	return true
}

func (tb *TreeBuilder) processInTableBody(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "tr":
			tb.clearStackToTableBodyContext()
			tb.insertElement("tr", tok.Attrs)
			tb.mode = InRow
			return false
		case "th", "td":
			tb.reportError(herrors.UnexpectedStartTag)
			tb.clearStackToTableBodyContext()
			tb.insertElement("tr", nil)
			tb.mode = InRow
			return true
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			if !tb.tableBodyInScope() {
				return false
			}
			tb.clearStackToTableBodyContext()
			tb.popCurrent()
			tb.mode = InTable
			return true
		}
	case tokenizer.EndTagToken:
		switch tok.Name {
		case "tbody", "tfoot", "thead":
			if !tb.hasElementInScope(tok.Name, constants.TableScope) {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.clearStackToTableBodyContext()
			tb.popCurrent()
			tb.mode = InTable
			return false
		case "table":
			if !tb.tableBodyInScope() {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.clearStackToTableBodyContext()
			tb.popCurrent()
			tb.mode = InTable
			return true
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			tb.reportError(herrors.UnexpectedEndTag)
			return false
		}
	}
	return tb.processInTable(tok)
}

func (tb *TreeBuilder) tableBodyInScope() bool {
	return tb.hasElementInScope("tbody", constants.TableScope) ||
		tb.hasElementInScope("thead", constants.TableScope) ||
		tb.hasElementInScope("tfoot", constants.TableScope)
}

func (tb *TreeBuilder) clearStackToTableBodyContext() {
	for {
		cur := tb.currentOpen()
		if cur == nil {
			return
		}
		switch cur.name.Local {
		case "tbody", "tfoot", "thead", "template", "html":
			return
		}
		tb.popCurrent()
	}
}

func (tb *TreeBuilder) clearStackToTableRowContext() {
	for {
		cur := tb.currentOpen()
		if cur == nil {
			return
		}
		switch cur.name.Local {
		case "tr", "template", "html":
			return
		}
		tb.popCurrent()
	}
}

func (tb *TreeBuilder) processInRow(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "th", "td":
			tb.clearStackToTableRowContext()
			tb.insertElement(tok.Name, tok.Attrs)
			tb.mode = InCell
			tb.pushFormattingMarker()
			return false
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			if !tb.hasElementInScope("tr", constants.TableScope) {
				return false
			}
			tb.clearStackToTableRowContext()
			tb.popCurrent()
			tb.mode = InTableBody
			return true
		}
	case tokenizer.EndTagToken:
		switch tok.Name {
		case "tr":
			if !tb.hasElementInScope("tr", constants.TableScope) {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.clearStackToTableRowContext()
			tb.popCurrent()
			tb.mode = InTableBody
			return false
		case "table":
			if !tb.hasElementInScope("tr", constants.TableScope) {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.clearStackToTableRowContext()
			tb.popCurrent()
			tb.mode = InTableBody
			return true
		case "tbody", "tfoot", "thead":
			if !tb.hasElementInScope(tok.Name, constants.TableScope) || !tb.hasElementInScope("tr", constants.TableScope) {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.clearStackToTableRowContext()
			tb.popCurrent()
			tb.mode = InTableBody
			return true
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			tb.reportError(herrors.UnexpectedEndTag)
			return false
		}
	}
	return tb.processInTable(tok)
}

func (tb *TreeBuilder) processInCell(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.EndTagToken:
		switch tok.Name {
		case "td", "th":
			if !tb.elementInTableScope(tok.Name) {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.generateImpliedEndTags("")
			if cur := tb.currentOpen(); cur == nil || cur.name.Local != tok.Name {
				tb.reportError(herrors.UnexpectedEndTag)
			}
			tb.popUntilName(tok.Name)
			tb.clearFormattingToLastMarker()
			tb.mode = InRow
			return false
		case "body", "caption", "col", "colgroup", "html":
			tb.reportError(herrors.UnexpectedEndTag)
			return false
		case "table", "tbody", "tfoot", "thead", "tr":
			if !tb.elementInTableScope(tok.Name) {
				return false
			}
			tb.closeTableCell()
			return true
		}
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th",
			"thead", "tr":
			if !tb.elementInTableScope("td") && !tb.elementInTableScope("th") {
				return false
			}
			tb.closeTableCell()
			return true
		}
	}
	return tb.processInBody(tok)
}

func (tb *TreeBuilder) closeTableCell() {
	tb.generateImpliedEndTags("")
	for len(tb.openElements) > 0 {
		name := tb.currentOpen().name.Local
		tb.popCurrent()
		if name == "td" || name == "th" {
			break
		}
	}
	tb.clearFormattingToLastMarker()
	tb.mode = InRow
}

func (tb *TreeBuilder) processInSelect(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.NullCharacterToken:
		tb.reportError(herrors.UnexpectedNullCharacter)
		return false
	case tokenizer.CharacterTokensToken:
		tb.insertText(tok.Data)
		return false
	case tokenizer.CommentToken:
		tb.insertComment(tok.Data)
		return false
	case tokenizer.DoctypeToken:
		tb.reportError(herrors.UnexpectedDoctype)
		return false
	case tokenizer.EOFToken:
		return tb.processInBody(tok)
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "option":
			if cur := tb.currentOpen(); cur != nil && cur.name.Local == "option" {
				tb.popCurrent()
			}
			tb.insertElement("option", tok.Attrs)
			return false
		case "optgroup":
			if cur := tb.currentOpen(); cur != nil && cur.name.Local == "option" {
				tb.popCurrent()
			}
			if cur := tb.currentOpen(); cur != nil && cur.name.Local == "optgroup" {
				tb.popCurrent()
			}
			tb.insertElement("optgroup", tok.Attrs)
			return false
		case "select":
			tb.reportError(herrors.UnexpectedStartTag)
			if !tb.elementInSelectScope("select") {
				return false
			}
			tb.popUntilName("select")
			tb.resetInsertionModeAppropriately()
			return false
		case "input", "keygen", "textarea":
			tb.reportError(herrors.UnexpectedStartTag)
			if !tb.elementInSelectScope("select") {
				return false
			}
			tb.popUntilName("select")
			tb.resetInsertionModeAppropriately()
			return true
		case "script", "template":
			return tb.processInHead(tok)
		}
	case tokenizer.EndTagToken:
		switch tok.Name {
		case "optgroup":
			if cur := tb.currentOpen(); cur != nil && cur.name.Local == "option" {
				if len(tb.openElements) >= 2 && tb.openElements[len(tb.openElements)-2].name.Local == "optgroup" {
					tb.popCurrent()
				}
			}
			if cur := tb.currentOpen(); cur != nil && cur.name.Local == "optgroup" {
				tb.popCurrent()
			} else {
				tb.reportError(herrors.UnexpectedEndTag)
			}
			return false
		case "option":
			if cur := tb.currentOpen(); cur != nil && cur.name.Local == "option" {
				tb.popCurrent()
			} else {
				tb.reportError(herrors.UnexpectedEndTag)
			}
			return false
		case "select":
			if !tb.elementInSelectScope("select") {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.popUntilName("select")
			tb.resetInsertionModeAppropriately()
			return false
		case "template":
			return tb.processInHead(tok)
		}
	}
	tb.reportError(herrors.UnexpectedTokenInForeignContent)
	return false
}

func (tb *TreeBuilder) processInSelectInTable(tok tokenizer.Token) bool {
	if tok.Kind == tokenizer.StartTagToken {
		switch tok.Name {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			tb.reportError(herrors.UnexpectedStartTag)
			tb.popUntilName("select")
			tb.resetInsertionModeAppropriately()
			return true
		}
	}
	if tok.Kind == tokenizer.EndTagToken {
		switch tok.Name {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			tb.reportError(herrors.UnexpectedEndTag)
			if !tb.elementInTableScope(tok.Name) {
				return false
			}
			tb.popUntilName("select")
			tb.resetInsertionModeAppropriately()
			return true
		}
	}
	return tb.processInSelect(tok)
}

func (tb *TreeBuilder) processInTemplate(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CharacterTokensToken, tokenizer.NullCharacterToken, tokenizer.CommentToken, tokenizer.DoctypeToken:
		return tb.processInBody(tok)
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "base", "basefont", "bgsound", "link", "meta", "noframes",
			"script", "style", "template", "title":
			return tb.processInHead(tok)
		case "caption", "colgroup", "tbody", "tfoot", "thead":
			tb.popTemplateMode()
			tb.templateModes = append(tb.templateModes, InTable)
			tb.mode = InTable
			return true
		case "col":
			tb.popTemplateMode()
			tb.templateModes = append(tb.templateModes, InColumnGroup)
			tb.mode = InColumnGroup
			return true
		case "tr":
			tb.popTemplateMode()
			tb.templateModes = append(tb.templateModes, InTableBody)
			tb.mode = InTableBody
			return true
		case "td", "th":
			tb.popTemplateMode()
			tb.templateModes = append(tb.templateModes, InRow)
			tb.mode = InRow
			return true
		default:
			tb.popTemplateMode()
			tb.templateModes = append(tb.templateModes, InBody)
			tb.mode = InBody
			return true
		}
	case tokenizer.EndTagToken:
		if tok.Name == "template" {
			return tb.processInHead(tok)
		}
		tb.reportError(herrors.UnexpectedEndTag)
		return false
	case tokenizer.EOFToken:
		if !tb.elementInStack("template") {
			return false
		}
		tb.reportError(herrors.EOFInTag)
		tb.popUntilName("template")
		tb.clearFormattingToLastMarker()
		tb.popTemplateMode()
		tb.resetInsertionModeAppropriately()
		return true
	}
	return false
}

func (tb *TreeBuilder) popTemplateMode() {
	if len(tb.templateModes) > 0 {
		tb.templateModes = tb.templateModes[:len(tb.templateModes)-1]
	}
}

func (tb *TreeBuilder) processAfterBody(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CharacterTokensToken:
		if isAllWhitespace(tok.Data) {
			return tb.processInBody(tok)
		}
	case tokenizer.CommentToken:
		if len(tb.openElements) > 0 {
			tb.insertCommentIntoNode(tb.openElements[0].handle, tok.Data)
		} else {
			tb.insertCommentIntoNode(tb.sink.GetDocument(), tok.Data)
		}
		return false
	case tokenizer.DoctypeToken:
		tb.reportError(herrors.UnexpectedDoctype)
		return false
	case tokenizer.StartTagToken:
		if tok.Name == "html" {
			return tb.processInBody(tok)
		}
	case tokenizer.EndTagToken:
		if tok.Name == "html" {
			if tb.opts.Fragment {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.mode = AfterAfterBody
			return false
		}
	case tokenizer.EOFToken:
		return false
	}

	tb.reportError(herrors.UnexpectedStartTag)
	tb.mode = InBody
	return true
}

func (tb *TreeBuilder) processInFrameset(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CharacterTokensToken:
		if isAllWhitespace(tok.Data) {
			tb.insertText(tok.Data)
		}
		return false
	case tokenizer.CommentToken:
		tb.insertComment(tok.Data)
		return false
	case tokenizer.DoctypeToken:
		tb.reportError(herrors.UnexpectedDoctype)
		return false
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "frameset":
			tb.insertElement("frameset", tok.Attrs)
			return false
		case "frame":
			tb.insertElement("frame", tok.Attrs)
			tb.popCurrent()
			return false
		case "noframes":
			return tb.processInHead(tok)
		}
	case tokenizer.EndTagToken:
		if tok.Name == "frameset" {
			if len(tb.openElements) <= 1 {
				tb.reportError(herrors.UnexpectedEndTag)
				return false
			}
			tb.popCurrent()
			if !tb.opts.Fragment {
				if cur := tb.currentOpen(); cur == nil || cur.name.Local != "frameset" {
					tb.mode = AfterFrameset
				}
			}
			return false
		}
	case tokenizer.EOFToken:
		if len(tb.openElements) > 1 {
			tb.reportError(herrors.EOFInTag)
		}
		return false
	}
	tb.reportError(herrors.UnexpectedTokenInForeignContent)
	return false
}

func (tb *TreeBuilder) processAfterFrameset(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CharacterTokensToken:
		if isAllWhitespace(tok.Data) {
			tb.insertText(tok.Data)
		}
		return false
	case tokenizer.CommentToken:
		tb.insertComment(tok.Data)
		return false
	case tokenizer.DoctypeToken:
		tb.reportError(herrors.UnexpectedDoctype)
		return false
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "noframes":
			return tb.processInHead(tok)
		}
	case tokenizer.EndTagToken:
		if tok.Name == "html" {
			tb.mode = AfterAfterFrameset
			return false
		}
	case tokenizer.EOFToken:
		return false
	}
	tb.reportError(herrors.UnexpectedTokenInForeignContent)
	return false
}

func (tb *TreeBuilder) processAfterAfterBody(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CommentToken:
		tb.insertCommentIntoNode(tb.sink.GetDocument(), tok.Data)
		return false
	case tokenizer.DoctypeToken:
		return tb.processInBody(tok)
	case tokenizer.CharacterTokensToken:
		if isAllWhitespace(tok.Data) {
			return tb.processInBody(tok)
		}
	case tokenizer.StartTagToken:
		if tok.Name == "html" {
			return tb.processInBody(tok)
		}
	case tokenizer.EOFToken:
		return false
	}
	tb.reportError(herrors.UnexpectedTokenInForeignContent)
	tb.mode = InBody
	return true
}

func (tb *TreeBuilder) processAfterAfterFrameset(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.CommentToken:
		tb.insertCommentIntoNode(tb.sink.GetDocument(), tok.Data)
		return false
	case tokenizer.DoctypeToken:
		return tb.processInBody(tok)
	case tokenizer.CharacterTokensToken:
		if isAllWhitespace(tok.Data) {
			return tb.processInBody(tok)
		}
	case tokenizer.StartTagToken:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "noframes":
			return tb.processInHead(tok)
		}
	case tokenizer.EOFToken:
		return false
	}
	tb.reportError(herrors.UnexpectedTokenInForeignContent)
	return false
}

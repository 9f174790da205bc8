package treebuilder

import (
	"strings"

	"github.com/renato-zannon/html5ever/internal/constants"
	"github.com/renato-zannon/html5ever/tokenizer"
)

// Foreign-content handling covers namespace-aware insertion and the
// documented breakout rules, using the SVG/MathML attribute-adjustment
// tables in internal/constants; it does not re-derive those tables from
// scratch.

func (tb *TreeBuilder) shouldUseForeignContent(tok tokenizer.Token) bool {
	cur := tb.currentOpen()
	if cur == nil {
		return false
	}
	if cur.name.Namespace == constants.NamespaceHTML {
		return false
	}
	if tok.Kind == tokenizer.EOFToken {
		return false
	}

	if tb.isMathMLTextIntegrationPoint(cur.name) {
		if tok.Kind == tokenizer.CharacterTokensToken {
			return false
		}
		if tok.Kind == tokenizer.StartTagToken && tok.Name != "mglyph" && tok.Name != "malignmark" {
			return false
		}
	}

	if cur.name.Namespace == constants.NamespaceMathML && strings.EqualFold(cur.name.Local, "annotation-xml") {
		if tok.Kind == tokenizer.StartTagToken && tok.Name == "svg" {
			return false
		}
	}

	if tb.isHTMLIntegrationPoint(cur.name) {
		if tok.Kind == tokenizer.CharacterTokensToken || tok.Kind == tokenizer.StartTagToken {
			return false
		}
	}

	return true
}

// processForeignContent returns true when the token must be reprocessed
// under normal HTML insertion-mode rules (tb.forceHTML is set first).
func (tb *TreeBuilder) processForeignContent(tok tokenizer.Token) bool {
	if tb.currentOpen() == nil {
		return false
	}

	switch tok.Kind {
	case tokenizer.CharacterTokensToken, tokenizer.NullCharacterToken:
		data := tok.Data
		if tok.Kind == tokenizer.NullCharacterToken {
			data = "�"
		}
		if !isAllWhitespace(data) {
			tb.framesetOK = false
		}
		tb.insertText(data)
		return false
	case tokenizer.CommentToken:
		tb.insertComment(tok.Data)
		return false
	case tokenizer.StartTagToken:
		if constants.ForeignBreakoutElements[tok.Name] || (tok.Name == "font" && foreignBreakoutFont(tok.Attrs)) {
			tb.popUntilHTMLOrIntegrationPoint()
			tb.resetInsertionModeAppropriately()
			tb.forceHTML = true
			return true
		}

		namespace := tb.currentOpen().name.Namespace
		adjustedName := tok.Name
		if namespace == constants.NamespaceSVG {
			adjustedName = adjustSVGTagName(tok.Name)
		}
		attrs := prepareForeignAttributes(namespace, tok.Attrs)
		tb.insertForeignElement(adjustedName, namespace, attrs, tok.SelfClosing)
		return false
	case tokenizer.EndTagToken:
		if tok.Name == "br" || tok.Name == "p" {
			tb.popUntilHTMLOrIntegrationPoint()
			tb.resetInsertionModeAppropriately()
			tb.forceHTML = true
			return true
		}
		for i := len(tb.openElements) - 1; i >= 0; i-- {
			node := tb.openElements[i]
			isHTML := node.name.Namespace == constants.NamespaceHTML
			if strings.EqualFold(node.name.Local, tok.Name) {
				if tb.fragmentElement != nil && tb.sink.SameNode(node.handle, tb.fragmentElement) {
					return false
				}
				if isHTML {
					tb.forceHTML = true
					return true
				}
				tb.openElements = tb.openElements[:i]
				return false
			}
			if isHTML {
				tb.forceHTML = true
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (tb *TreeBuilder) popUntilHTMLOrIntegrationPoint() {
	for len(tb.openElements) > 0 {
		cur := tb.currentOpen()
		if cur == nil || cur.name.Namespace == constants.NamespaceHTML || tb.isHTMLIntegrationPoint(cur.name) {
			return
		}
		tb.popCurrent()
	}
}

func (tb *TreeBuilder) isHTMLIntegrationPoint(name QualName) bool {
	if name.Namespace == constants.NamespaceMathML && name.Local == "annotation-xml" {
		// Encoding-attribute gating (WHATWG HTML §13.2.6.2's annotation-xml
		// integration point rule) needs the element's live attribute set,
		// which the sink owns; treated conservatively as "not an
		// integration point" without it.
		return false
	}
	ip := constants.IntegrationPoint{Namespace: name.Namespace, LocalName: name.Local}
	return constants.HTMLIntegrationPoints[ip]
}

func (tb *TreeBuilder) isMathMLTextIntegrationPoint(name QualName) bool {
	ip := constants.IntegrationPoint{Namespace: name.Namespace, LocalName: name.Local}
	return constants.MathMLTextIntegrationPoints[ip]
}

func foreignBreakoutFont(attrs []tokenizer.Attr) bool {
	for _, a := range attrs {
		switch strings.ToLower(a.Name.Local) {
		case "color", "face", "size":
			return true
		}
	}
	return false
}

func adjustSVGTagName(name string) string {
	if adjusted, ok := constants.SVGTagNameAdjustments[strings.ToLower(name)]; ok {
		return adjusted
	}
	return name
}

func prepareForeignAttributes(namespace string, attrs []tokenizer.Attr) []tokenizer.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]tokenizer.Attr, 0, len(attrs))
	for _, a := range attrs {
		lower := strings.ToLower(a.Name.Local)
		adjustedName := a.Name.Local

		switch namespace {
		case constants.NamespaceMathML:
			if adj, ok := constants.MathMLAttributeAdjustments[lower]; ok {
				adjustedName = adj
				lower = strings.ToLower(adjustedName)
			}
		case constants.NamespaceSVG:
			if adj, ok := constants.SVGAttributeAdjustments[lower]; ok {
				adjustedName = adj
				lower = strings.ToLower(adjustedName)
			}
		}

		if foreignAdj, ok := constants.ForeignAttributeAdjustments[lower]; ok {
			local := foreignAdj.LocalName
			out = append(out, tokenizer.Attr{Name: QualName{Namespace: foreignAdj.NamespaceURL, Local: local}, Value: a.Value})
			continue
		}

		out = append(out, tokenizer.Attr{Name: QualName{Local: adjustedName}, Value: a.Value})
	}
	return out
}

func (tb *TreeBuilder) insertForeignElement(name, namespace string, attrs []tokenizer.Attr, selfClosing bool) Handle {
	qn := QualName{Namespace: namespace, Local: name}
	h := tb.sink.CreateElement(qn, attrs)
	parent, before := tb.appropriateInsertionLocation()
	tb.insertNodeOrText(parent, before, ElementNode(h))
	if !selfClosing {
		tb.pushOpen(h, qn)
	}
	return h
}

package treebuilder

import (
	"github.com/renato-zannon/html5ever/herrors"
	"github.com/renato-zannon/html5ever/internal/constants"
	"github.com/renato-zannon/html5ever/tokenizer"
)

// hasElementInScope walks the stack of open elements from the top, per the
// "has an element in scope" family of algorithms (WHATWG HTML §13.2.5.2.5),
// stopping at the first scope-terminator named in terminators.
func (tb *TreeBuilder) hasElementInScope(name string, terminators map[string]bool) bool {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		el := tb.openElements[i]
		if el.name.Namespace == constants.NamespaceHTML && el.name.Local == name {
			return true
		}
		if el.name.Namespace == constants.NamespaceHTML && terminators[el.name.Local] {
			return false
		}
	}
	return false
}

func (tb *TreeBuilder) hasHandleInScope(h Handle, terminators map[string]bool) bool {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		el := tb.openElements[i]
		if tb.sink.SameNode(el.handle, h) {
			return true
		}
		if el.name.Namespace == constants.NamespaceHTML && terminators[el.name.Local] {
			return false
		}
	}
	return false
}

func (tb *TreeBuilder) elementInDefaultScope(name string) bool {
	return tb.hasElementInScope(name, constants.DefaultScope)
}

func (tb *TreeBuilder) elementInListItemScope(name string) bool {
	return tb.hasElementInScope(name, constants.ListItemScope)
}

func (tb *TreeBuilder) elementInButtonScope(name string) bool {
	return tb.hasElementInScope(name, constants.ButtonScope)
}

func (tb *TreeBuilder) elementInTableScope(name string) bool {
	return tb.hasElementInScope(name, constants.TableScope)
}

func (tb *TreeBuilder) elementInSelectScope(name string) bool {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		el := tb.openElements[i]
		if el.name.Namespace != constants.NamespaceHTML {
			continue
		}
		if el.name.Local == name {
			return true
		}
		if el.name.Local != "optgroup" && el.name.Local != "option" {
			return false
		}
	}
	return false
}

// anyOfElementsInButtonScope reports true if any named element is in scope;
// used by the "has a p element in button scope" close-p check family.
func (tb *TreeBuilder) closePElementIfInButtonScope() {
	if tb.elementInButtonScope("p") {
		tb.closePElement()
	}
}

func (tb *TreeBuilder) closePElement() {
	tb.generateImpliedEndTags("p")
	if cur := tb.currentOpen(); cur == nil || cur.name.Local != "p" {
		tb.reportError(herrors.UnexpectedEndTag)
	}
	tb.popUntilName("p")
}

// generateImpliedEndTags pops elements named in constants.ImpliedEndTagElements
// from the stack, stopping at (and not popping) except when its name equals
// exceptFor.
func (tb *TreeBuilder) generateImpliedEndTags(exceptFor string) {
	for {
		cur := tb.currentOpen()
		if cur == nil || cur.name.Namespace != constants.NamespaceHTML {
			return
		}
		if cur.name.Local == exceptFor {
			return
		}
		if !constants.ImpliedEndTagElements[cur.name.Local] {
			return
		}
		tb.popCurrent()
	}
}

func (tb *TreeBuilder) generateImpliedEndTagsThoroughly() {
	for {
		cur := tb.currentOpen()
		if cur == nil || cur.name.Namespace != constants.NamespaceHTML {
			return
		}
		if !constants.ThoroughlyImpliedEndTagElements[cur.name.Local] {
			return
		}
		tb.popCurrent()
	}
}

func isSpecialElement(name QualName) bool {
	return name.Namespace == constants.NamespaceHTML && constants.SpecialElements[name.Local]
}

// resetInsertionModeAppropriately implements the "reset the insertion mode
// appropriately" algorithm (used after fragment setup and after popping
// template boundaries).
func (tb *TreeBuilder) resetInsertionModeAppropriately() {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		last := i == 0
		node := tb.openElements[i]
		name := node.name.Local
		if last && tb.fragmentContext != nil {
			name = tb.fragmentContext.TagName
		}
		switch name {
		case "select":
			for j := i; j > 0; j-- {
				anc := tb.openElements[j-1]
				if anc.name.Local == "template" {
					break
				}
				if anc.name.Local == "table" {
					tb.mode = InSelectInTable
					return
				}
			}
			tb.mode = InSelect
			return
		case "td", "th":
			if !last {
				tb.mode = InCell
				return
			}
		case "tr":
			tb.mode = InRow
			return
		case "tbody", "thead", "tfoot":
			tb.mode = InTableBody
			return
		case "caption":
			tb.mode = InCaption
			return
		case "colgroup":
			tb.mode = InColumnGroup
			return
		case "table":
			tb.mode = InTable
			return
		case "template":
			if len(tb.templateModes) > 0 {
				tb.mode = tb.templateModes[len(tb.templateModes)-1]
				return
			}
			tb.mode = InBody
			return
		case "head":
			if !last {
				tb.mode = InHead
				return
			}
		case "body":
			tb.mode = InBody
			return
		case "frameset":
			tb.mode = InFrameset
			return
		case "html":
			if tb.headElement == nil {
				tb.mode = BeforeHead
			} else {
				tb.mode = AfterHead
			}
			return
		}
		if last {
			tb.mode = InBody
			return
		}
	}
	tb.mode = InBody
}

// --- list of active formatting elements (WHATWG HTML §13.2.5.2, "Noah's Ark clause") ----

func (tb *TreeBuilder) pushFormatting(h Handle, name QualName, attrs []tokenizer.Attr) {
	count := 0
	removeAt := -1
	for i := len(tb.activeFormatting) - 1; i >= 0; i-- {
		e := tb.activeFormatting[i]
		if e.marker {
			break
		}
		if e.name == name && attrsEqual(e.attrs, attrs) {
			count++
			if count >= 3 {
				removeAt = i
			}
		}
	}
	if removeAt >= 0 {
		tb.activeFormatting = append(tb.activeFormatting[:removeAt], tb.activeFormatting[removeAt+1:]...)
	}
	tb.activeFormatting = append(tb.activeFormatting, formattingEntry{handle: h, name: name, attrs: attrs})
}

func attrsEqual(a, b []tokenizer.Attr) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]string, len(a))
	for _, at := range a {
		seen[at.Name.Local] = at.Value
	}
	for _, bt := range b {
		v, ok := seen[bt.Name.Local]
		if !ok || v != bt.Value {
			return false
		}
	}
	return true
}

func (tb *TreeBuilder) pushFormattingMarker() {
	tb.activeFormatting = append(tb.activeFormatting, formattingEntry{marker: true})
}

func (tb *TreeBuilder) clearFormattingToLastMarker() {
	for len(tb.activeFormatting) > 0 {
		last := tb.activeFormatting[len(tb.activeFormatting)-1]
		tb.activeFormatting = tb.activeFormatting[:len(tb.activeFormatting)-1]
		if last.marker {
			return
		}
	}
}

func (tb *TreeBuilder) findFormattingByHandle(h Handle) int {
	for i := len(tb.activeFormatting) - 1; i >= 0; i-- {
		if !tb.activeFormatting[i].marker && tb.sink.SameNode(tb.activeFormatting[i].handle, h) {
			return i
		}
	}
	return -1
}

// removeLastActiveFormattingByName and removeLastOpenElementByName are the
// safety net after adoptionAgency: if its 8-iteration outer loop bailed out
// without clearing the subject element, drop any instance left behind.
func (tb *TreeBuilder) removeLastActiveFormattingByName(name string) {
	if i := tb.findFormattingByName(name); i != -1 {
		tb.removeFormattingAt(i)
	}
}

func (tb *TreeBuilder) removeLastOpenElementByName(name string) {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		if tb.openElements[i].name.Local == name {
			tb.removeOpenAt(i)
			return
		}
	}
}

func (tb *TreeBuilder) findFormattingByName(name string) int {
	for i := len(tb.activeFormatting) - 1; i >= 0; i-- {
		e := tb.activeFormatting[i]
		if e.marker {
			return -1
		}
		if e.name.Local == name {
			return i
		}
	}
	return -1
}

// reconstructActiveFormattingElements implements the algorithm of the same
// name: re-insert formatting elements that were implicitly closed (e.g. by
// table/foster-parenting) so later text picks them back up.
func (tb *TreeBuilder) reconstructActiveFormattingElements() {
	if len(tb.activeFormatting) == 0 {
		return
	}
	last := len(tb.activeFormatting) - 1
	entry := tb.activeFormatting[last]
	if entry.marker || tb.indexOfHandle(entry.handle) != -1 {
		return
	}

	i := last
	for i > 0 {
		i--
		entry = tb.activeFormatting[i]
		if entry.marker || tb.indexOfHandle(entry.handle) != -1 {
			i++
			break
		}
	}

	for ; i <= last; i++ {
		entry := &tb.activeFormatting[i]
		h := tb.sink.CreateElement(entry.name, entry.attrs)
		parent, before := tb.appropriateInsertionLocation()
		tb.insertNodeOrText(parent, before, ElementNode(h))
		tb.pushOpen(h, entry.name)
		entry.handle = h
	}
}

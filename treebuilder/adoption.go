package treebuilder

// adoptionAgency implements the adoption agency algorithm for misnested
// formatting elements (WHATWG HTML §13.2.5.2.5), driven entirely through
// TreeSink calls so it works against any opaque Handle representation.
func (tb *TreeBuilder) adoptionAgency(subject string) {
	if cur := tb.currentOpen(); cur != nil && cur.name.Local == subject {
		if tb.findFormattingByName(subject) == -1 {
			tb.popUntilName(subject)
			return
		}
	}

	for outer := 0; outer < 8; outer++ {
		fmtIdx := tb.findFormattingByName(subject)
		if fmtIdx == -1 {
			return
		}
		fmtEntry := tb.activeFormatting[fmtIdx]

		fmtOpenIdx := tb.indexOfHandle(fmtEntry.handle)
		if fmtOpenIdx == -1 {
			tb.removeFormattingAt(fmtIdx)
			return
		}

		if !tb.elementInDefaultScope(subject) {
			tb.reportError("unexpected-end-tag")
			return
		}

		furthestBlockIdx := -1
		for i := fmtOpenIdx + 1; i < len(tb.openElements); i++ {
			if isSpecialElement(tb.openElements[i].name) {
				furthestBlockIdx = i
				break
			}
		}

		if furthestBlockIdx == -1 {
			for len(tb.openElements) > fmtOpenIdx {
				tb.popCurrent()
			}
			tb.removeFormattingAt(fmtIdx)
			return
		}

		bookmark := fmtIdx + 1
		node := tb.openElements[furthestBlockIdx]
		lastNode := node

		innerCounter := 0
		nodeIdx := furthestBlockIdx
		for {
			innerCounter++
			nodeIdx--
			if nodeIdx <= 0 {
				return
			}
			node = tb.openElements[nodeIdx]

			if tb.sink.SameNode(node.handle, fmtEntry.handle) {
				break
			}

			nodeFmtIdx := tb.findFormattingByHandle(node.handle)
			if innerCounter > 3 && nodeFmtIdx != -1 {
				tb.removeFormattingAt(nodeFmtIdx)
				if nodeFmtIdx < bookmark {
					bookmark--
				}
				nodeFmtIdx = -1
			}

			if nodeFmtIdx == -1 {
				tb.sink.RemoveFromParent(node.handle)
				tb.removeOpenAt(nodeIdx)
				furthestBlockIdx--
				continue
			}

			newHandle := tb.sink.CreateElement(node.name, tb.activeFormatting[nodeFmtIdx].attrs)
			tb.activeFormatting[nodeFmtIdx].handle = newHandle
			tb.openElements[nodeIdx] = openElement{handle: newHandle, name: node.name}
			node = tb.openElements[nodeIdx]

			if tb.sink.SameNode(lastNode.handle, tb.openElements[furthestBlockIdx].handle) {
				bookmark = nodeFmtIdx + 1
			}

			tb.sink.RemoveFromParent(lastNode.handle)
			tb.sink.Append(node.handle, ElementNode(lastNode.handle))
			lastNode = node
		}

		commonAncestor := tb.openElements[fmtOpenIdx-1]
		tb.sink.RemoveFromParent(lastNode.handle)
		if tb.shouldFosterParentInto(commonAncestor.name.Local) {
			parent, before := tb.fosterInsertionLocation()
			tb.insertNodeOrText(parent, before, ElementNode(lastNode.handle))
		} else {
			tb.sink.Append(commonAncestor.handle, ElementNode(lastNode.handle))
		}

		newFmtHandle := tb.sink.CreateElement(fmtEntry.name, fmtEntry.attrs)
		tb.activeFormatting[fmtIdx].handle = newFmtHandle

		furthestHandle := tb.openElements[furthestBlockIdx].handle
		tb.sink.Append(newFmtHandle, ElementNode(furthestHandle))

		entryToMove := tb.activeFormatting[fmtIdx]
		tb.removeFormattingAt(fmtIdx)
		bookmark--
		if bookmark < 0 {
			bookmark = 0
		}
		if bookmark > len(tb.activeFormatting) {
			bookmark = len(tb.activeFormatting)
		}
		tb.activeFormatting = append(tb.activeFormatting, formattingEntry{})
		copy(tb.activeFormatting[bookmark+1:], tb.activeFormatting[bookmark:])
		entryToMove.handle = newFmtHandle
		tb.activeFormatting[bookmark] = entryToMove

		if idx := tb.indexOfHandle(fmtEntry.handle); idx != -1 {
			tb.removeOpenAt(idx)
			if idx < furthestBlockIdx {
				furthestBlockIdx--
			}
		}
		tb.insertOpenAt(furthestBlockIdx+1, openElement{handle: newFmtHandle, name: fmtEntry.name})
	}
}

func (tb *TreeBuilder) shouldFosterParentInto(name string) bool {
	switch name {
	case "table", "tbody", "tfoot", "thead", "tr":
		return true
	default:
		return false
	}
}

func (tb *TreeBuilder) removeFormattingAt(idx int) {
	tb.activeFormatting = append(tb.activeFormatting[:idx], tb.activeFormatting[idx+1:]...)
}

func (tb *TreeBuilder) removeOpenAt(idx int) {
	if idx < 0 || idx >= len(tb.openElements) {
		return
	}
	tb.openElements = append(tb.openElements[:idx], tb.openElements[idx+1:]...)
}

func (tb *TreeBuilder) insertOpenAt(idx int, el openElement) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(tb.openElements) {
		idx = len(tb.openElements)
	}
	tb.openElements = append(tb.openElements, openElement{})
	copy(tb.openElements[idx+1:], tb.openElements[idx:])
	tb.openElements[idx] = el
}

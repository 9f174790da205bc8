package treebuilder

// InsertionMode is one of the tree-construction insertion modes enumerated
// in WHATWG HTML §13.2.6.4.
type InsertionMode int

const (
	Initial InsertionMode = iota
	BeforeHTML
	BeforeHead
	InHead
	InHeadNoscript
	AfterHead
	InBody
	Text
	InTable
	InTableText
	InCaption
	InColumnGroup
	InTableBody
	InRow
	InCell
	InSelect
	InSelectInTable
	InTemplate
	AfterBody
	InFrameset
	AfterFrameset
	AfterAfterBody
	AfterAfterFrameset
)

var modeNames = [...]string{
	"initial", "before html", "before head", "in head", "in head noscript",
	"after head", "in body", "text", "in table", "in table text",
	"in caption", "in column group", "in table body", "in row", "in cell",
	"in select", "in select in table", "in template", "after body",
	"in frameset", "after frameset", "after after body", "after after frameset",
}

func (m InsertionMode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

package treebuilder_test

import (
	"testing"

	"github.com/renato-zannon/html5ever/internal/testtree"
	"github.com/stretchr/testify/require"
)

// TestFosterParentingMovesStrayTableText covers the foster-parenting rule of
// WHATWG HTML §13.2.6.1: non-whitespace
// text that appears directly inside <table> (before any cell) is foster
// parented out in front of the table rather than becoming the table's own
// text child.
func TestFosterParentingMovesStrayTableText(t *testing.T) {
	sink := parse(t, "<table>stray<tr><td>cell</td></tr></table>")

	body := documentElement(sink).Children[1]
	require.Len(t, body.Children, 2)

	require.Equal(t, testtree.TextNode, body.Children[0].Type)
	require.Equal(t, "stray", body.Children[0].Data)

	table := body.Children[1]
	require.Equal(t, "table", table.TagName)

	td := findDescendant(table, "td")
	require.NotNil(t, td)
	require.Equal(t, "cell", td.Children[0].Data)
}

// TestFosterParentingMovesStrayElement covers the same rule for an element
// insertion (not just text): a stray <div> opened directly inside <table>
// is foster parented in front of the table too.
func TestFosterParentingMovesStrayElement(t *testing.T) {
	sink := parse(t, "<table><div>stray</div><tr><td>cell</td></tr></table>")

	body := documentElement(sink).Children[1]
	require.Len(t, body.Children, 2)

	div := body.Children[0]
	require.Equal(t, "div", div.TagName)
	require.Equal(t, "stray", div.Children[0].Data)

	require.Equal(t, "table", body.Children[1].TagName)
}

func TestTableStructureIsAutoCompletedAroundCells(t *testing.T) {
	sink := parse(t, "<table><td>a<td>b</table>")

	table := findDescendant(documentElement(sink), "table")
	require.NotNil(t, table)
	tbody := findDescendant(table, "tbody")
	require.NotNil(t, tbody)
	tr := findDescendant(tbody, "tr")
	require.NotNil(t, tr)
	require.Len(t, tr.Children, 2)
	require.Equal(t, "td", tr.Children[0].TagName)
	require.Equal(t, "td", tr.Children[1].TagName)
}

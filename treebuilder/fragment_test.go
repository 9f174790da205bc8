package treebuilder_test

import (
	"testing"

	"github.com/renato-zannon/html5ever/treebuilder"
	"github.com/stretchr/testify/require"
)

func TestFragmentParsingTDStartsInCellMode(t *testing.T) {
	sink := parseFragment(t, "plain text", &treebuilder.FragmentContext{TagName: "td"})

	html := documentElement(sink)
	require.Equal(t, "html", html.TagName)
	td := html.Children[0]
	require.Equal(t, "td", td.TagName)
	require.Equal(t, "plain text", td.Children[0].Data)
}

func TestFragmentParsingTRDropsBareCharacterData(t *testing.T) {
	// <tr> context starts in InRow mode, where bare non-whitespace text is
	// foster parented out of the row entirely (no td/th is open to receive
	// it), leaving the row with no children.
	sink := parseFragment(t, "x", &treebuilder.FragmentContext{TagName: "tr"})

	html := documentElement(sink)
	tr := html.Children[0]
	require.Equal(t, "tr", tr.TagName)
	require.Empty(t, tr.Children)
}

func TestFragmentParsingSelectClosesPriorOptionOnNextOption(t *testing.T) {
	sink := parseFragment(t, "<option>a<option>b", &treebuilder.FragmentContext{TagName: "select"})

	html := documentElement(sink)
	sel := html.Children[0]
	require.Equal(t, "select", sel.TagName)

	require.Len(t, sel.Children, 2)
	require.Equal(t, "option", sel.Children[0].TagName)
	require.Equal(t, "a", sel.Children[0].Children[0].Data)
	require.Equal(t, "option", sel.Children[1].TagName)
	require.Equal(t, "b", sel.Children[1].Children[0].Data)
}

func TestFragmentParsingTableContextBuildsRowsDirectly(t *testing.T) {
	sink := parseFragment(t, "<tr><td>cell</td></tr>", &treebuilder.FragmentContext{TagName: "table"})

	html := documentElement(sink)
	table := html.Children[0]
	require.Equal(t, "table", table.TagName)

	tr := findDescendant(table, "tr")
	require.NotNil(t, tr)
	require.Equal(t, "td", tr.Children[0].TagName)
	require.Equal(t, "cell", tr.Children[0].Children[0].Data)
}

func TestFragmentParsingForeignContextUsesContextNamespace(t *testing.T) {
	sink := parseFragment(t, "<circle/>", &treebuilder.FragmentContext{TagName: "svg", Namespace: "svg"})

	html := documentElement(sink)
	svg := html.Children[0]
	require.Equal(t, "svg", svg.TagName)

	circle := svg.Children[0]
	require.Equal(t, "circle", circle.TagName)
}

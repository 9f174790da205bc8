package html5ever_test

import (
	"testing"

	"github.com/renato-zannon/html5ever"
	"github.com/renato-zannon/html5ever/herrors"
	"github.com/renato-zannon/html5ever/internal/testtree"
	"github.com/renato-zannon/html5ever/treebuilder"
	"github.com/stretchr/testify/require"
)

func asTestSink(sink treebuilder.TreeSink, _ *treebuilder.TreeBuilder) *testtree.Sink {
	return sink.(*testtree.Sink)
}

func TestParseReturnsNilErrorByDefaultDespiteParseErrors(t *testing.T) {
	sink := testtree.New()
	tree, err := html5ever.Parse("<p></br></p>", sink, asTestSink)
	require.NoError(t, err)
	require.NotNil(t, tree)
}

func TestParseWithCollectErrorsReturnsParseErrors(t *testing.T) {
	sink := testtree.New()
	_, err := html5ever.Parse("<p></br></p>", sink, asTestSink, html5ever.WithCollectErrors())
	require.Error(t, err)

	var parseErrs herrors.ParseErrors
	require.ErrorAs(t, err, &parseErrs)
	require.NotEmpty(t, parseErrs)
}

func TestParseWithStrictModeReturnsFirstError(t *testing.T) {
	sink := testtree.New()
	_, err := html5ever.Parse("<p></br></p>", sink, asTestSink, html5ever.WithStrictMode())
	require.Error(t, err)

	var parseErr *herrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseFragmentBuildsFragmentTree(t *testing.T) {
	sink := testtree.New()
	tree, err := html5ever.ParseFragment("plain text", "td", "html", sink, asTestSink)
	require.NoError(t, err)

	var html *testtree.Node
	for _, c := range tree.Document.Children {
		if c.Type == testtree.ElementNode {
			html = c
		}
	}
	require.NotNil(t, html)
	td := html.Children[0]
	require.Equal(t, "td", td.TagName)
	require.Equal(t, "plain text", td.Children[0].Data)
}

func TestParseFragmentWithForeignNamespace(t *testing.T) {
	sink := testtree.New()
	tree, err := html5ever.ParseFragment("<circle/>", "svg", "svg", sink, asTestSink)
	require.NoError(t, err)

	var html *testtree.Node
	for _, c := range tree.Document.Children {
		if c.Type == testtree.ElementNode {
			html = c
		}
	}
	require.NotNil(t, html)
	svg := html.Children[0]
	require.Equal(t, "svg", svg.TagName)
	require.Equal(t, "circle", svg.Children[0].TagName)
}

package treebuilder_test

import (
	"testing"

	"github.com/renato-zannon/html5ever/internal/testtree"
	"github.com/stretchr/testify/require"
)

func TestMinimalDocumentGetsImpliedHTMLHeadBody(t *testing.T) {
	sink := parse(t, "<p>hi</p>")

	html := documentElement(sink)
	require.NotNil(t, html)
	require.Equal(t, "html", html.TagName)
	require.Len(t, html.Children, 2)
	require.Equal(t, "head", html.Children[0].TagName)
	require.Equal(t, "body", html.Children[1].TagName)

	p := findDescendant(html, "p")
	require.NotNil(t, p)
	require.Len(t, p.Children, 1)
	require.Equal(t, testtree.TextNode, p.Children[0].Type)
	require.Equal(t, "hi", p.Children[0].Data)
}

func TestUnclosedPIsClosedByNextBlockLevelElement(t *testing.T) {
	sink := parse(t, "<p>one<p>two")

	body := documentElement(sink).Children[1]
	require.Len(t, body.Children, 2)
	require.Equal(t, "p", body.Children[0].TagName)
	require.Equal(t, "one", body.Children[0].Children[0].Data)
	require.Equal(t, "p", body.Children[1].TagName)
	require.Equal(t, "two", body.Children[1].Children[0].Data)
}

func TestHeadElementsGoInHead(t *testing.T) {
	sink := parse(t, "<title>T</title><p>body text")

	html := documentElement(sink)
	head := html.Children[0]
	require.Equal(t, "title", head.Children[0].TagName)
	require.Equal(t, "T", head.Children[0].Children[0].Data)

	body := html.Children[1]
	require.Equal(t, "p", body.Children[0].TagName)
}

func TestAttributesOnHTMLTagAreMergedNotDuplicated(t *testing.T) {
	sink := parse(t, `<html lang="en"><html lang="fr" class="x">`)

	html := documentElement(sink)
	require.Equal(t, "en", html.Attr("lang"))
	require.Equal(t, "x", html.Attr("class"))
}

func TestCommentsAreInsertedAtCurrentPosition(t *testing.T) {
	sink := parse(t, "<p>a<!-- c -->b</p>")

	p := findDescendant(documentElement(sink), "p")
	require.Len(t, p.Children, 3)
	require.Equal(t, testtree.TextNode, p.Children[0].Type)
	require.Equal(t, testtree.CommentNode, p.Children[1].Type)
	require.Equal(t, " c ", p.Children[1].Data)
	require.Equal(t, testtree.TextNode, p.Children[2].Type)
}

func TestVoidElementsHaveNoChildren(t *testing.T) {
	sink := parse(t, "<p>before<br>after</p>")

	p := findDescendant(documentElement(sink), "p")
	br := p.Children[1]
	require.Equal(t, "br", br.TagName)
	require.Empty(t, br.Children)
}

func TestTemplateContentIsKeptSeparateFromChildren(t *testing.T) {
	sink := parse(t, "<template><p>inside</p></template>")

	head := documentElement(sink).Children[0]
	tmpl := head.Children[0]
	require.Equal(t, "template", tmpl.TagName)
	require.Empty(t, tmpl.Children)
	require.NotNil(t, tmpl.TemplateContent)
	require.Equal(t, "p", tmpl.TemplateContent.Children[0].TagName)
}

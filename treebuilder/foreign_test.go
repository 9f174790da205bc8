package treebuilder_test

import (
	"testing"

	"github.com/renato-zannon/html5ever/internal/constants"
	"github.com/stretchr/testify/require"
)

// TestSVGElementGetsSVGNamespace covers the simplest foreign-content entry
// point: a bare <svg> start tag in body inserts into the SVG namespace and
// stays there for its children.
func TestSVGElementGetsSVGNamespace(t *testing.T) {
	sink := parse(t, "<body><svg><circle/></svg></body>")

	body := documentElement(sink).Children[1]
	svg := body.Children[0]
	require.Equal(t, "svg", svg.TagName)
	require.Equal(t, constants.NamespaceSVG, svg.Namespace)

	circle := svg.Children[0]
	require.Equal(t, "circle", circle.TagName)
	require.Equal(t, constants.NamespaceSVG, circle.Namespace)
}

// TestSVGTagNameIsCaseAdjusted covers adjustSVGTagName: a handful of SVG
// element names have camelCase spellings that the tokenizer always
// lowercases, so tree construction must restore them on the way in.
func TestSVGTagNameIsCaseAdjusted(t *testing.T) {
	sink := parse(t, "<svg><foreignobject></foreignobject></svg>")

	svg := findDescendant(documentElement(sink), "svg")
	require.NotNil(t, svg)
	require.Equal(t, "foreignObject", svg.Children[0].TagName)
}

// TestMathMLAnnotationXMLAcceptsSVGStartTag covers the documented
// annotation-xml special case: an <svg> start tag, specifically, is allowed
// to breach MathML's "everything is foreign" rule when the current node is
// an <annotation-xml> element. It lands inside annotation-xml in the SVG
// namespace rather than being absorbed as another MathML element.
func TestMathMLAnnotationXMLAcceptsSVGStartTag(t *testing.T) {
	sink := parse(t, "<math><annotation-xml><svg><circle/></svg></annotation-xml></math>")

	math := findDescendant(documentElement(sink), "math")
	require.NotNil(t, math)
	require.Equal(t, constants.NamespaceMathML, math.Namespace)

	annotation := math.Children[0]
	require.Equal(t, "annotation-xml", annotation.TagName)
	require.Equal(t, constants.NamespaceMathML, annotation.Namespace)

	svg := annotation.Children[0]
	require.Equal(t, "svg", svg.TagName)
	require.Equal(t, constants.NamespaceSVG, svg.Namespace)
}

// TestForeignBreakoutElementReturnsToHTML covers the breakout element list
// of WHATWG HTML §13.2.6.5: a <p> start tag inside foreign content (not
// matching any of the integration
// point exceptions) pops back out of the foreign subtree and is inserted as
// an ordinary HTML element as a sibling of the foreign root, not a
// descendant of it.
func TestForeignBreakoutElementReturnsToHTML(t *testing.T) {
	sink := parse(t, "<body><svg><p>back in html</p></svg></body>")

	body := documentElement(sink).Children[1]
	require.Len(t, body.Children, 2)

	svg := body.Children[0]
	require.Equal(t, "svg", svg.TagName)
	require.Empty(t, svg.Children)

	p := body.Children[1]
	require.Equal(t, "p", p.TagName)
	require.Equal(t, constants.NamespaceHTML, p.Namespace)
	require.Equal(t, "back in html", p.Children[0].Data)
}

// TestForeignAttributeGetsXLinkNamespace covers prepareForeignAttributes:
// xlink:href on a foreign element is split into the xlink namespace rather
// than kept as a single colon-containing local name.
func TestForeignAttributeGetsXLinkNamespace(t *testing.T) {
	sink := parse(t, `<svg><a xlink:href="http://example.com"></a></svg>`)

	a := findDescendant(documentElement(sink), "a")
	require.NotNil(t, a)
	require.Len(t, a.Attrs, 1)
	require.Equal(t, "http://www.w3.org/1999/xlink", a.Attrs[0].Namespace)
	require.Equal(t, "href", a.Attrs[0].Name)
	require.Equal(t, "http://example.com", a.Attrs[0].Value)
}

package driver_test

import (
	"testing"

	"github.com/renato-zannon/html5ever/driver"
	"github.com/renato-zannon/html5ever/internal/testtree"
	"github.com/renato-zannon/html5ever/treebuilder"
	"github.com/stretchr/testify/require"
)

// asTestSink is the Finalize used throughout this file: the driver only
// knows about the abstract TreeSink interface, so pulling the concrete tree
// back out means type-asserting to the sink implementation the caller
// actually passed in.
func asTestSink(sink treebuilder.TreeSink, _ *treebuilder.TreeBuilder) *testtree.Sink {
	return sink.(*testtree.Sink)
}

func TestParseBuildsDocumentTree(t *testing.T) {
	sink := testtree.New()
	result := driver.Parse("<p>hi</p>", sink, asTestSink, driver.Config{})

	var html *testtree.Node
	for _, c := range result.Tree.Document.Children {
		if c.Type == testtree.ElementNode {
			html = c
		}
	}
	require.NotNil(t, html)
	require.Equal(t, "html", html.TagName)
	require.Empty(t, result.Errors)
}

func TestParseChunksSplitAcrossTokenBoundariesProduceSameTree(t *testing.T) {
	sink := testtree.New()
	whole := driver.Parse("<p>hello world</p>", sink, asTestSink, driver.Config{})

	chunkedSink := testtree.New()
	chunked := driver.ParseChunks([]string{"<p>hel", "lo wo", "rld</p>"}, chunkedSink, asTestSink, driver.Config{})

	require.Equal(t, testtree.Serialize(whole.Tree.Document), testtree.Serialize(chunked.Tree.Document))
}

// TestParseChunksTracksAllowCDATAAcrossChunkBoundary covers the case
// the AllowCDATA mechanism exists for: a chunk boundary falling in the
// middle of an SVG subtree must not make the tokenizer forget it is inside
// foreign content when the next chunk opens a CDATA section.
func TestParseChunksTracksAllowCDATAAcrossChunkBoundary(t *testing.T) {
	sink := testtree.New()
	result := driver.ParseChunks(
		[]string{"<svg>", "<![CDATA[hi]]></svg>"},
		sink, asTestSink, driver.Config{},
	)

	var svg *testtree.Node
	for _, c := range result.Tree.Document.Children {
		if c.Type == testtree.ElementNode {
			svg = findFirst(c, "svg")
		}
	}
	require.NotNil(t, svg)
	require.Len(t, svg.Children, 1)
	require.Equal(t, testtree.TextNode, svg.Children[0].Type)
	require.Equal(t, "hi", svg.Children[0].Data)
}

func TestParseCollectsParseErrors(t *testing.T) {
	sink := testtree.New()
	result := driver.Parse("<p></br></p>", sink, asTestSink, driver.Config{})
	require.NotEmpty(t, result.Errors)
}

func TestParseFragmentUsesFragmentContext(t *testing.T) {
	sink := testtree.New()
	result := driver.Parse("plain text", sink, asTestSink, driver.Config{
		Fragment: &treebuilder.FragmentContext{TagName: "td"},
	})

	var html *testtree.Node
	for _, c := range result.Tree.Document.Children {
		if c.Type == testtree.ElementNode {
			html = c
		}
	}
	require.NotNil(t, html)
	td := html.Children[0]
	require.Equal(t, "td", td.TagName)
	require.Equal(t, "plain text", td.Children[0].Data)
}

func findFirst(n *testtree.Node, tag string) *testtree.Node {
	if n.Type == testtree.ElementNode && n.TagName == tag {
		return n
	}
	for _, c := range n.Children {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

package treebuilder_test

import (
	"testing"

	"github.com/renato-zannon/html5ever/internal/testtree"
	"github.com/renato-zannon/html5ever/tokenizer"
	"github.com/renato-zannon/html5ever/treebuilder"
)

// parse runs html through a fresh Tokenizer/TreeBuilder pair wired to a
// testtree.Sink and returns the sink so assertions can walk the tree or
// read accumulated errors.
func parse(t *testing.T, html string, opts ...treebuilder.Option) *testtree.Sink {
	t.Helper()
	sink := testtree.New()
	tok := tokenizer.New(nil)
	tb := treebuilder.New(sink, tok, opts...)
	tok.SetSink(tb)
	tok.Feed(html)
	tok.End()
	return sink
}

func parseFragment(t *testing.T, html string, ctx *treebuilder.FragmentContext, opts ...treebuilder.Option) *testtree.Sink {
	t.Helper()
	sink := testtree.New()
	tok := tokenizer.New(nil)
	tb := treebuilder.NewFragment(sink, tok, ctx, opts...)
	tok.SetSink(tb)
	tok.Feed(html)
	tok.End()
	return sink
}

func documentElement(sink *testtree.Sink) *testtree.Node {
	for _, c := range sink.Document.Children {
		if c.Type == testtree.ElementNode {
			return c
		}
	}
	return nil
}

func findDescendant(n *testtree.Node, tag string) *testtree.Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Type == testtree.ElementNode && c.TagName == tag {
			return c
		}
		if found := findDescendant(c, tag); found != nil {
			return found
		}
	}
	return nil
}

package treebuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAdoptionAgencyReparentsMisnestedFormatting exercises the misnested
// "<p><b>1<i>2</b>3</p>" adoption-agency case: closing </b> while <i> is
// still open pops both, and "3" then lands in a reconstructed <i> that is a
// sibling of <b> inside the <p>, not in the original <i>.
func TestAdoptionAgencyReparentsMisnestedFormatting(t *testing.T) {
	sink := parse(t, "<p><b>1<i>2</b>3</p>")

	body := documentElement(sink).Children[1]
	p := body.Children[0]
	require.Equal(t, "p", p.TagName)

	require.Len(t, p.Children, 2)
	b := p.Children[0]
	require.Equal(t, "b", b.TagName)
	require.Equal(t, "1", b.Children[0].Data)

	i := b.Children[1]
	require.Equal(t, "i", i.TagName)
	require.Equal(t, "2", i.Children[0].Data)

	outerI := p.Children[1]
	require.Equal(t, "i", outerI.TagName)
	require.Equal(t, "3", outerI.Children[0].Data)
}

// TestActiveFormattingElementsReconstructAcrossBlocks covers the case
// where </p> force-closes a still-open <b> (popping it off the stack of
// open elements without removing it from the active formatting elements
// list). The next character token must reconstruct a fresh <b> as a
// sibling of <p>, rather than leaving "still bold" as plain body text.
func TestActiveFormattingElementsReconstructAcrossBlocks(t *testing.T) {
	sink := parse(t, "<p><b>bold</p>still bold")

	body := documentElement(sink).Children[1]
	require.Len(t, body.Children, 2)

	p := body.Children[0]
	require.Equal(t, "p", p.TagName)
	innerB := p.Children[0]
	require.Equal(t, "b", innerB.TagName)
	require.Equal(t, "bold", innerB.Children[0].Data)

	reconstructedB := body.Children[1]
	require.Equal(t, "b", reconstructedB.TagName)
	require.Equal(t, "still bold", reconstructedB.Children[0].Data)
}

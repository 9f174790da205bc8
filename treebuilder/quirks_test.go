package treebuilder_test

import (
	"testing"

	"github.com/renato-zannon/html5ever/treebuilder"
	"github.com/stretchr/testify/require"
)

func TestBareHTML5DoctypeIsNoQuirks(t *testing.T) {
	sink := parse(t, "<!DOCTYPE html><p>x")
	require.Equal(t, treebuilder.NoQuirks, sink.Mode)
}

func TestMissingDoctypeIsQuirks(t *testing.T) {
	sink := parse(t, "<p>x")
	require.Equal(t, treebuilder.Quirks, sink.Mode)
}

func TestNonHTMLDoctypeNameIsQuirks(t *testing.T) {
	sink := parse(t, "<!DOCTYPE not-html><p>x")
	require.Equal(t, treebuilder.Quirks, sink.Mode)
}

func TestQuirkyPublicIdentifierPrefixIsQuirks(t *testing.T) {
	sink := parse(t, `<!DOCTYPE html PUBLIC "-//IETF//DTD HTML 3.2//EN"><p>x`)
	require.Equal(t, treebuilder.Quirks, sink.Mode)
}

func TestXHTML1TransitionalPublicIdentifierIsLimitedQuirks(t *testing.T) {
	sink := parse(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd"><p>x`)
	require.Equal(t, treebuilder.LimitedQuirks, sink.Mode)
}

// TestHTML4TransitionalWithoutSystemIDIsQuirks covers the one classification
// rule that depends on the system identifier's mere presence rather than its
// value: an HTML 4.01 Transitional public ID with no system ID at all forces
// full quirks mode, but the same public ID WITH a system ID only forces
// limited quirks.
func TestHTML4TransitionalWithoutSystemIDIsQuirks(t *testing.T) {
	sink := parse(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN"><p>x`)
	require.Equal(t, treebuilder.Quirks, sink.Mode)
}

func TestHTML4TransitionalWithSystemIDIsLimitedQuirks(t *testing.T) {
	sink := parse(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd"><p>x`)
	require.Equal(t, treebuilder.LimitedQuirks, sink.Mode)
}

func TestQuirkySystemIdentifierMatchIsQuirks(t *testing.T) {
	sink := parse(t, `<!DOCTYPE html SYSTEM "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"><p>x`)
	require.Equal(t, treebuilder.Quirks, sink.Mode)
}

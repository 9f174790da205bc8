package html5ever

import (
	"github.com/renato-zannon/html5ever/tokenizer"
	"github.com/renato-zannon/html5ever/treebuilder"
)

// config holds parser configuration, assembled from the supplied Options
// before a Tokenizer/TreeBuilder pair is built.
type config struct {
	tokenizerOpts   []tokenizer.Option
	treeBuilderOpts []treebuilder.Option
	fragmentContext *treebuilder.FragmentContext
	strict          bool
	collectErrors   bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures Parse/ParseFragment.
type Option func(*config)

// WithExactErrors enables verbose, spec-precise parse-error messages on
// both the tokenizer and the tree builder.
func WithExactErrors() Option {
	return func(c *config) {
		c.tokenizerOpts = append(c.tokenizerOpts, tokenizer.WithExactErrors())
		c.treeBuilderOpts = append(c.treeBuilderOpts, treebuilder.WithExactErrors())
	}
}

// WithScriptingDisabled marks scripting as disabled, changing how
// <noscript> is handled in the head.
func WithScriptingDisabled() Option {
	return func(c *config) {
		c.treeBuilderOpts = append(c.treeBuilderOpts, treebuilder.WithScriptingDisabled())
	}
}

// WithIframeSrcdoc enables iframe srcdoc parsing mode, which relaxes the
// initial quirks-mode decision the way a browser does for an iframe's
// srcdoc attribute.
func WithIframeSrcdoc() Option {
	return func(c *config) {
		c.treeBuilderOpts = append(c.treeBuilderOpts, treebuilder.WithIframeSrcdoc())
	}
}

// WithDropDoctype skips appending the DOCTYPE to the document, while still
// using it for quirks-mode classification.
func WithDropDoctype() Option {
	return func(c *config) {
		c.treeBuilderOpts = append(c.treeBuilderOpts, treebuilder.WithDropDoctype())
	}
}

// WithStrictMode makes Parse/ParseFragment return the first parse error as
// their error. Parsing still recovers and runs to completion, and the tree
// is returned alongside that error. By default parse errors are advisory
// (WHATWG HTML §13.2.2) and no error is returned.
func WithStrictMode() Option {
	return func(c *config) { c.strict = true }
}

// WithCollectErrors makes Parse/ParseFragment return every parse error as
// an aggregate herrors.ParseErrors, without aborting the parse early.
func WithCollectErrors() Option {
	return func(c *config) { c.collectErrors = true }
}

// Package html5ever implements the WHATWG HTML5 tokenizer and tree
// construction algorithm as a pair of abstract stages: a Tokenizer
// (package tokenizer) and a TreeBuilder (package treebuilder) driven
// against a caller-supplied TreeSink. The package itself owns no concrete
// DOM representation — see treebuilder.TreeSink and driver.Parse.
package html5ever

import (
	"github.com/renato-zannon/html5ever/driver"
	"github.com/renato-zannon/html5ever/herrors"
	"github.com/renato-zannon/html5ever/treebuilder"
)

// Parse drives html through a fresh Tokenizer/TreeBuilder pair against
// sink, then calls finalize to pull a caller-defined tree representation T
// back out of it.
//
// Parse errors are advisory by default: parsing always runs to completion.
// WithCollectErrors turns them into a returned herrors.ParseErrors, and
// WithStrictMode additionally stops reporting (the *parse*, not the
// algorithm, has already finished by the time Parse returns) by surfacing
// only the first one.
func Parse[T any](html string, sink treebuilder.TreeSink, finalize driver.Finalize[T], opts ...Option) (T, error) {
	cfg := newConfig(opts...)
	result := driver.Parse(html, sink, finalize, driverConfig(cfg))
	return result.Tree, parseError(cfg, result.Errors)
}

// ParseFragment parses an HTML fragment the way a browser evaluates
// `element.innerHTML = html` for an element named by contextTag in
// contextNamespace ("html", "svg", or "mathml"), per the fragment-parsing
// algorithm of WHATWG HTML §13.4.
func ParseFragment[T any](html, contextTag, contextNamespace string, sink treebuilder.TreeSink, finalize driver.Finalize[T], opts ...Option) (T, error) {
	cfg := newConfig(opts...)
	cfg.fragmentContext = &treebuilder.FragmentContext{TagName: contextTag, Namespace: contextNamespace}
	result := driver.Parse(html, sink, finalize, driverConfig(cfg))
	return result.Tree, parseError(cfg, result.Errors)
}

func driverConfig(cfg *config) driver.Config {
	return driver.Config{
		TokenizerOpts:   cfg.tokenizerOpts,
		TreeBuilderOpts: cfg.treeBuilderOpts,
		Fragment:        cfg.fragmentContext,
	}
}

func parseError(cfg *config, errs herrors.ParseErrors) error {
	if len(errs) == 0 {
		return nil
	}
	if cfg.strict {
		return errs[0]
	}
	if cfg.collectErrors {
		return errs
	}
	return nil
}

package treebuilder

// Opts configures a TreeBuilder: error-reporting granularity, scripting,
// fragment-parsing mode, and the srcdoc quirks-mode override.
type Opts struct {
	ExactErrors      bool
	ScriptingEnabled bool
	IframeSrcdoc     bool
	Fragment         bool
	DropDoctype      bool
}

// Option configures Opts via the functional-options idiom.
type Option func(*Opts)

func defaultOpts() Opts {
	return Opts{ScriptingEnabled: true}
}

func WithExactErrors() Option { return func(o *Opts) { o.ExactErrors = true } }

func WithScriptingDisabled() Option { return func(o *Opts) { o.ScriptingEnabled = false } }

func WithIframeSrcdoc() Option { return func(o *Opts) { o.IframeSrcdoc = true } }

func WithDropDoctype() Option { return func(o *Opts) { o.DropDoctype = true } }

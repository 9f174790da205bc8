package tokenizer

// Opts configures a Tokenizer: error-reporting granularity, BOM handling,
// profiling, and testing-only overrides of initial state.
type Opts struct {
	// ExactErrors selects verbose, spec-precise parse-error messages over
	// the coarse literal-code default.
	ExactErrors bool

	// DiscardBOM drops a leading U+FEFF the first time Feed is called.
	DiscardBOM bool

	// Profile records per-state nanosecond counters, printed to standard
	// error by End.
	Profile bool

	// InitialState overrides the default DataState. Testing only.
	InitialState State
	hasInitial   bool

	// LastStartTagName seeds the "appropriate end tag" check. Testing only.
	LastStartTagName string
}

// Option configures Opts via the functional-options idiom.
type Option func(*Opts)

func defaultOpts() Opts {
	return Opts{DiscardBOM: true, InitialState: DataState}
}

// WithExactErrors enables verbose parse-error messages.
func WithExactErrors() Option { return func(o *Opts) { o.ExactErrors = true } }

// WithoutDiscardBOM disables automatic BOM stripping.
func WithoutDiscardBOM() Option { return func(o *Opts) { o.DiscardBOM = false } }

// WithProfile enables per-state profiling counters.
func WithProfile() Option { return func(o *Opts) { o.Profile = true } }

// WithInitialState overrides the tokenizer's starting state (tests only).
func WithInitialState(s State) Option {
	return func(o *Opts) { o.InitialState = s; o.hasInitial = true }
}

// WithLastStartTagName seeds the appropriate-end-tag check (tests only).
func WithLastStartTagName(name string) Option {
	return func(o *Opts) { o.LastStartTagName = name }
}

package tokenizer

// TokenSink is the tokenizer's only collaborator. The tree builder is the
// TokenSink used in normal operation; a standalone consumer may implement
// it directly for lexical-only tooling.
type TokenSink interface {
	// ProcessToken receives one token. Tokens are single-use: the sink
	// must not retain slices/strings beyond the call if it plans to
	// mutate them (the tokenizer never reuses a Token's storage, so in
	// practice retention is safe, but the contract makes no such promise).
	ProcessToken(tok Token)

	// QueryStateChange is invoked once after each start tag is emitted.
	// Returning a state (e.g. RAWTEXTState after <script>) switches the
	// tokenizer immediately, before the next character is consumed.
	QueryStateChange() (State, bool)
}

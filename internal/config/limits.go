package config

const (
	// MaxInputBytes is the largest text accepted for classification.
	// Pastes beyond a few megabytes are not meant to be read by a person,
	// and the tag formatter and highlighter are linear in the input.
	MaxInputBytes = 5 << 20

	// MaxRequestBytes caps a JSON request body. Leaves room for the JSON
	// escaping of a MaxInputBytes text.
	MaxRequestBytes = 2 * MaxInputBytes

	// DefaultDebounceMS is the quiet period after the last edit before a
	// session reclassifies.
	DefaultDebounceMS = 300

	// DefaultMaxSessions bounds live sessions per server.
	DefaultMaxSessions = 1000

	// MaxSubscribersPerSession bounds concurrent SSE streams of one session.
	MaxSubscribersPerSession = 8
)

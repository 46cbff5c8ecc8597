package output

// Translator exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + placeholder interpolation for
// a given locale.
type Translator interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for {{name}} placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}

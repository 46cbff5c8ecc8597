package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPreferred(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name  string
		prefs []string
		want  string
		ok    bool
	}{
		{"exact code", []string{"hi"}, "hi", true},
		{"region subtag stripped", []string{"hi-IN"}, "hi", true},
		{"underscore separator", []string{"or_IN"}, "or", true},
		{"case folded", []string{"HI-IN"}, "hi", true},
		{"no preferences", nil, "", false},
		{"empty first entry", []string{""}, "", false},
		{"unknown language", []string{"fr-FR"}, "", false},
		// Only the first preference is consulted, even when a later one
		// would match.
		{"first miss wins", []string{"fr-FR", "hi-IN"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.DetectPreferred(tt.prefs)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreferencesFromAcceptLanguage(t *testing.T) {
	prefs := PreferencesFromAcceptLanguage("hi-IN,hi;q=0.9,en;q=0.8")
	assert.NotEmpty(t, prefs)
	assert.Equal(t, "hi-IN", prefs[0])

	assert.Empty(t, PreferencesFromAcceptLanguage(""))
	assert.Empty(t, PreferencesFromAcceptLanguage(";;;"))
}

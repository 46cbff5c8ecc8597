package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DetectPreferred picks a startup language from an ordered preference
// list (most preferred first). Only the first entry is considered: its
// primary subtag is extracted, lowercased and matched against the catalog
// codes. Later entries are deliberately not scanned; the selection must
// stay stable with what existing clients observe.
func (r *Resolver) DetectPreferred(prefs []string) (string, bool) {
	if len(prefs) == 0 {
		return "", false
	}
	subtag := primarySubtag(prefs[0])
	if subtag == "" {
		return "", false
	}
	for _, lang := range r.catalog.Load().Languages {
		if lang.Code == subtag {
			return subtag, true
		}
	}
	return "", false
}

// primarySubtag returns the lowercased text before any region or script
// separator: "hi-IN" -> "hi", "pt_BR" -> "pt".
func primarySubtag(pref string) string {
	pref = strings.TrimSpace(pref)
	if i := strings.IndexAny(pref, "-_"); i >= 0 {
		pref = pref[:i]
	}
	return strings.ToLower(pref)
}

// PreferencesFromAcceptLanguage expands an Accept-Language header into an
// ordered most-preferred-first list of tags. A malformed header yields an
// empty list.
func PreferencesFromAcceptLanguage(header string) []string {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.String()
	}
	return out
}

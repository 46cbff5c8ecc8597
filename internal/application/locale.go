package application

import (
	"context"

	"cropai/internal/infrastructure/i18n"
	"cropai/internal/ports/output"
)

var _ output.Translator = (*LocaleService)(nil)

// LocaleService fronts the shared translation resolver for the rest of
// the application. Per-client language state stays in i18n.Session
// instances built through SessionFor; the service itself holds no mutable
// locale state.
type LocaleService struct {
	resolver *i18n.Resolver
}

func NewLocaleService(resolver *i18n.Resolver) *LocaleService {
	return &LocaleService{resolver: resolver}
}

// T implements the output.Translator port.
func (s *LocaleService) T(locale, key string, data map[string]any) string {
	return s.resolver.Translate(locale, key, data)
}

// Languages lists the catalog with RTL and availability flags, ordered
// for display.
func (s *LocaleService) Languages() []i18n.LanguageInfo {
	return s.resolver.AvailableLanguages()
}

// Table exposes a language's full translation tree (for client-side
// rendering).
func (s *LocaleService) Table(code string) (i18n.Branch, bool) {
	return s.resolver.Table(code)
}

// SessionFor builds a per-client locale session backed by store.
func (s *LocaleService) SessionFor(ctx context.Context, store i18n.PreferenceStore) *i18n.Session {
	return s.resolver.NewSession(ctx, store)
}

// DetectFromHeader applies the startup-detection policy to an
// Accept-Language header.
func (s *LocaleService) DetectFromHeader(header string) (string, bool) {
	return s.resolver.DetectPreferred(i18n.PreferencesFromAcceptLanguage(header))
}

// Fallback returns the fallback locale code.
func (s *LocaleService) Fallback() string {
	return s.resolver.Fallback()
}

// HasLocale reports whether code has translations loaded.
func (s *LocaleService) HasLocale(code string) bool {
	return s.resolver.HasLocale(code)
}

package i18n

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// PreferenceStore persists a client's chosen locale. Implementations are
// best-effort: the session catches and logs failures without letting them
// affect the in-memory language state.
type PreferenceStore interface {
	Load(ctx context.Context) (string, bool)
	Store(ctx context.Context, code string) error
}

// Change is emitted to subscribers after every committed SetLanguage.
type Change struct {
	Previous string
	Current  string
	Language LanguageInfo
}

// Session holds the mutable locale state for one client. The resolver and
// its catalog are shared read-only across sessions; two sessions never
// observe each other's current language.
type Session struct {
	resolver *Resolver
	store    PreferenceStore

	applying atomic.Bool

	mu          sync.RWMutex
	code        string
	subscribers []func(Change)
}

// NewSession builds a session whose initial language comes from the
// preference store when it holds a known locale, otherwise the fallback.
func (r *Resolver) NewSession(ctx context.Context, store PreferenceStore) *Session {
	code := r.fallback
	if store != nil {
		if stored, ok := store.Load(ctx); ok && r.HasLocale(stored) {
			code = stored
		}
	}
	return &Session{resolver: r, store: store, code: code}
}

// Code returns the active locale.
func (s *Session) Code() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.code
}

// Direction returns the text direction of the active locale.
func (s *Session) Direction() string {
	return s.resolver.Direction(s.Code())
}

// Subscribe registers fn to run after every committed language change.
func (s *Session) Subscribe(fn func(Change)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// SetLanguage switches the active locale. An unknown code is substituted
// with the fallback. The preference write is best-effort and subscribers
// are notified exactly once with the previous and resolved codes. A call
// arriving while another is still applying its side effects is dropped,
// not queued, and reported with false.
func (s *Session) SetLanguage(ctx context.Context, code string) bool {
	if !s.applying.CompareAndSwap(false, true) {
		return false
	}
	defer s.applying.Store(false)

	resolved := code
	if !s.resolver.HasLocale(resolved) && resolved != s.resolver.Fallback() {
		s.resolver.log.Warn("unknown locale requested, substituting fallback",
			zap.String("requested", code), zap.String("fallback", s.resolver.Fallback()))
		resolved = s.resolver.Fallback()
	}

	s.mu.Lock()
	previous := s.code
	s.code = resolved
	subscribers := make([]func(Change), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Store(ctx, resolved); err != nil {
			s.resolver.log.Warn("language preference write failed",
				zap.String("code", resolved), zap.Error(err))
		}
	}

	info := LanguageInfo{
		IsRTL:          s.resolver.IsRTL(resolved),
		HasTranslation: s.resolver.HasLocale(resolved),
	}
	if lang, ok := s.resolver.Language(resolved); ok {
		info.Language = lang
	} else {
		info.Language = Language{Code: resolved}
	}
	change := Change{Previous: previous, Current: resolved, Language: info}
	for _, fn := range subscribers {
		fn(change)
	}
	return true
}

// Translate resolves key in the session's active locale.
func (s *Session) Translate(key string, data map[string]any) string {
	return s.resolver.Translate(s.Code(), key, data)
}

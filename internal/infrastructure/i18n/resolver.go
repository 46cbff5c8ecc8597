package i18n

import (
	"context"
	"sort"
	"sync/atomic"

	"go.uber.org/zap"
)

// Default resolver settings. The RTL set covers the catalog languages
// written in Perso-Arabic script.
const DefaultFallbackCode = "en"

// DefaultRTLCodes lists locale codes rendered right-to-left.
var DefaultRTLCodes = []string{"ur", "sd", "ks"}

// AppName is the single string served when the catalog cannot be loaded.
const AppName = "CropAI Crop Yield Platform"

// Options configures a Resolver.
type Options struct {
	// FallbackCode is the locale used when the active one misses a key.
	// Defaults to DefaultFallbackCode.
	FallbackCode string
	// RTLCodes overrides DefaultRTLCodes when non-nil.
	RTLCodes []string
	// Logger receives diagnostics (degraded load, unknown locales). A nil
	// logger is replaced with zap.NewNop.
	Logger *zap.Logger
}

// Resolver owns the shared, read-only side of translation resolution: the
// language catalog and the translation tables. Per-client mutable state
// lives in Session. The catalog pointer is swapped atomically on reload,
// so lookups always run against a complete snapshot.
type Resolver struct {
	fallback string
	rtl      map[string]struct{}
	log      *zap.Logger

	catalog  atomic.Pointer[Catalog]
	degraded atomic.Bool
}

// New loads the catalog from source and returns a ready resolver. A load
// failure does not abort startup: the resolver degrades to a minimal
// built-in table for the fallback locale and keeps serving literal keys
// for everything else.
func New(ctx context.Context, source Source, opts Options) *Resolver {
	fallback := opts.FallbackCode
	if fallback == "" {
		fallback = DefaultFallbackCode
	}
	codes := opts.RTLCodes
	if codes == nil {
		codes = DefaultRTLCodes
	}
	rtl := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		rtl[code] = struct{}{}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := &Resolver{fallback: fallback, rtl: rtl, log: log}
	catalog, err := source.Load(ctx)
	if err != nil {
		log.Warn("catalog load failed, entering degraded mode",
			zap.String("fallback", fallback), zap.Error(err))
		catalog = builtinCatalog(fallback)
		r.degraded.Store(true)
	}
	r.catalog.Store(catalog)
	return r
}

// builtinCatalog is the last-resort table installed when the catalog
// source is unusable.
func builtinCatalog(fallback string) *Catalog {
	return &Catalog{
		Languages: map[string]Language{
			"english": {Key: "english", Code: fallback, Name: "English", Native: "English", Region: "Global"},
		},
		Tables: map[string]Branch{
			fallback: {"app_name": Leaf(AppName)},
		},
	}
}

// Reload fetches a fresh catalog and swaps it in atomically. On failure
// the previous catalog stays in place and the error is returned.
func (r *Resolver) Reload(ctx context.Context, source Source) error {
	catalog, err := source.Load(ctx)
	if err != nil {
		r.log.Warn("catalog reload failed, keeping previous catalog", zap.Error(err))
		return err
	}
	r.catalog.Store(catalog)
	r.degraded.Store(false)
	return nil
}

// Degraded reports whether the resolver is serving the built-in table
// because the catalog source failed.
func (r *Resolver) Degraded() bool {
	return r.degraded.Load()
}

// Fallback returns the fallback locale code.
func (r *Resolver) Fallback() string {
	return r.fallback
}

// HasLocale reports whether code has a translation table in the current
// catalog.
func (r *Resolver) HasLocale(code string) bool {
	return r.catalog.Load().HasLocale(code)
}

// IsRTL reports whether code renders right-to-left.
func (r *Resolver) IsRTL(code string) bool {
	_, ok := r.rtl[code]
	return ok
}

// Direction returns "rtl" or "ltr" for code.
func (r *Resolver) Direction(code string) string {
	if r.IsRTL(code) {
		return "rtl"
	}
	return "ltr"
}

// Table returns the translation tree for code, if present. The returned
// branch is a snapshot and must not be mutated.
func (r *Resolver) Table(code string) (Branch, bool) {
	table, ok := r.catalog.Load().Tables[code]
	return table, ok
}

// Translate resolves key for locale: the locale's own table first, then
// the fallback table, then the literal key. The resolved string is
// interpolated with data. It never fails; a dotted key in rendered output
// is the designed signal of a missing translation.
func (r *Resolver) Translate(locale, key string, data map[string]any) string {
	catalog := r.catalog.Load()
	if table, ok := catalog.Tables[locale]; ok {
		if s, ok := table.Lookup(key); ok {
			return Interpolate(s, data)
		}
	}
	if locale != r.fallback {
		if table, ok := catalog.Tables[r.fallback]; ok {
			if s, ok := table.Lookup(key); ok {
				return Interpolate(s, data)
			}
		}
	}
	return key
}

// AvailableLanguages lists the catalog entries with their RTL and
// translation-availability flags. English is pinned first; the rest are
// ordered by region, then by native name in code-point order. The order
// is deterministic for a given catalog.
func (r *Resolver) AvailableLanguages() []LanguageInfo {
	catalog := r.catalog.Load()
	out := make([]LanguageInfo, 0, len(catalog.Languages))
	for _, lang := range catalog.Languages {
		out = append(out, LanguageInfo{
			Language:       lang,
			IsRTL:          r.IsRTL(lang.Code),
			HasTranslation: catalog.HasLocale(lang.Code),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Code == "en") != (b.Code == "en") {
			return a.Code == "en"
		}
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.Native != b.Native {
			return a.Native < b.Native
		}
		return a.Code < b.Code
	})
	return out
}

// Language returns the descriptor for a locale code.
func (r *Resolver) Language(code string) (Language, bool) {
	return r.catalog.Load().ByCode(code)
}

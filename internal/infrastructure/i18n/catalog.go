package i18n

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Language describes one entry of the language catalog.
type Language struct {
	// Key is the stable catalog identifier ("hindi", "odia", ...). It is
	// filled from the map key of the catalog document, not from the body.
	Key    string `json:"key" toml:"-"`
	Code   string `json:"code" toml:"code"`
	Name   string `json:"name" toml:"name"`
	Native string `json:"native" toml:"native"`
	Region string `json:"region" toml:"region"`
}

// LanguageInfo is a catalog entry augmented with resolver-derived flags.
type LanguageInfo struct {
	Language
	IsRTL          bool `json:"is_rtl"`
	HasTranslation bool `json:"has_translation"`
}

// Tree is one node of a translation table: either a Leaf string or a
// Branch of named children. Anything else found in a catalog document is
// dropped at decode time, so "not a string" is a typed miss during lookup
// rather than a runtime type check.
type Tree interface {
	isTree()
}

// Leaf is a translated string.
type Leaf string

// Branch maps a key segment to its subtree.
type Branch map[string]Tree

func (Leaf) isTree()   {}
func (Branch) isTree() {}

// MarshalJSON renders a Leaf as a plain JSON string.
func (l Leaf) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(l))
}

// Lookup walks a dot-delimited key path. It succeeds only when every
// segment exists and the final segment lands on a Leaf.
func (b Branch) Lookup(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	node := Tree(b)
	for _, segment := range strings.Split(key, ".") {
		branch, ok := node.(Branch)
		if !ok {
			return "", false
		}
		node, ok = branch[segment]
		if !ok {
			return "", false
		}
	}
	leaf, ok := node.(Leaf)
	if !ok {
		return "", false
	}
	return string(leaf), true
}

// Catalog is the immutable language + translation data loaded at startup.
// Replacing it is done wholesale via Resolver.Reload; readers always see a
// complete document.
type Catalog struct {
	Languages map[string]Language
	Tables    map[string]Branch
}

// HasLocale reports whether code has a translation table.
func (c *Catalog) HasLocale(code string) bool {
	_, ok := c.Tables[code]
	return ok
}

// ByCode returns the descriptor whose Code matches.
func (c *Catalog) ByCode(code string) (Language, bool) {
	for _, lang := range c.Languages {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}

// rawCatalog mirrors the catalog document shape:
//
//	{"languages": {<key>: {...}}, "translations": {<code>: <string tree>}}
type rawCatalog struct {
	Languages    map[string]Language       `json:"languages" toml:"languages"`
	Translations map[string]map[string]any `json:"translations" toml:"translations"`
}

// DecodeJSON parses a JSON catalog document.
func DecodeJSON(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog json: %w", err)
	}
	return raw.build()
}

// DecodeTOML parses a TOML catalog document.
func DecodeTOML(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog toml: %w", err)
	}
	return raw.build()
}

func (raw rawCatalog) build() (*Catalog, error) {
	if len(raw.Languages) == 0 {
		return nil, fmt.Errorf("catalog has no languages")
	}
	catalog := &Catalog{
		Languages: make(map[string]Language, len(raw.Languages)),
		Tables:    make(map[string]Branch, len(raw.Translations)),
	}
	seen := make(map[string]string, len(raw.Languages))
	for key, lang := range raw.Languages {
		if lang.Code == "" {
			return nil, fmt.Errorf("language %q has no code", key)
		}
		if other, dup := seen[lang.Code]; dup {
			return nil, fmt.Errorf("languages %q and %q share code %q", other, key, lang.Code)
		}
		seen[lang.Code] = key
		lang.Key = key
		catalog.Languages[key] = lang
	}
	for code, tree := range raw.Translations {
		catalog.Tables[code] = branchFromRaw(tree)
	}
	return catalog, nil
}

// branchFromRaw converts a decoded document tree into a Branch. String
// values become leaves, nested maps become branches and every other value
// type is dropped so it later resolves as missing.
func branchFromRaw(raw map[string]any) Branch {
	branch := make(Branch, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			branch[key] = Leaf(v)
		case map[string]any:
			branch[key] = branchFromRaw(v)
		case map[any]any:
			// Some decoders produce untyped keys for nested tables.
			converted := make(map[string]any, len(v))
			for k, inner := range v {
				if ks, ok := k.(string); ok {
					converted[ks] = inner
				}
			}
			branch[key] = branchFromRaw(converted)
		}
	}
	return branch
}

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONBuildsTypedTree(t *testing.T) {
	doc := []byte(`{
		"languages": {
			"english": {"code": "en", "name": "English", "native": "English", "region": "Global"},
			"hindi": {"code": "hi", "name": "Hindi", "native": "हिन्दी", "region": "North India"}
		},
		"translations": {
			"en": {
				"app_name": "CropAI",
				"actions": {"generate_prediction": "Generate Prediction"},
				"bad_leaf": 42,
				"bad_list": ["a", "b"]
			}
		}
	}`)

	catalog, err := DecodeJSON(doc)
	require.NoError(t, err)

	require.Contains(t, catalog.Languages, "hindi")
	assert.Equal(t, "hindi", catalog.Languages["hindi"].Key)
	assert.Equal(t, "hi", catalog.Languages["hindi"].Code)

	table, ok := catalog.Tables["en"]
	require.True(t, ok)

	s, ok := table.Lookup("actions.generate_prediction")
	require.True(t, ok)
	assert.Equal(t, "Generate Prediction", s)

	// Non-string values are dropped at decode time and resolve as missing.
	_, ok = table.Lookup("bad_leaf")
	assert.False(t, ok)
	_, ok = table.Lookup("bad_list")
	assert.False(t, ok)

	// A path ending on a branch is not a translation.
	_, ok = table.Lookup("actions")
	assert.False(t, ok)
	_, ok = table.Lookup("actions.generate_prediction.extra")
	assert.False(t, ok)
}

func TestDecodeJSONRejectsMalformedDocuments(t *testing.T) {
	_, err := DecodeJSON([]byte(`{not json`))
	assert.Error(t, err)

	_, err = DecodeJSON([]byte(`{"languages": {}, "translations": {}}`))
	assert.Error(t, err, "empty language list is unusable")

	_, err = DecodeJSON([]byte(`{
		"languages": {
			"hindi": {"code": "hi", "native": "हिन्दी"},
			"hindustani": {"code": "hi", "native": "हिन्दी"}
		},
		"translations": {}
	}`))
	assert.Error(t, err, "duplicate codes must be rejected")
}

func TestDecodeTOML(t *testing.T) {
	doc := []byte(`
[languages.english]
code = "en"
name = "English"
native = "English"
region = "Global"

[translations.en]
app_name = "CropAI"

[translations.en.nav]
dashboard = "Dashboard"
`)
	catalog, err := DecodeTOML(doc)
	require.NoError(t, err)

	table, ok := catalog.Tables["en"]
	require.True(t, ok)
	s, ok := table.Lookup("nav.dashboard")
	require.True(t, ok)
	assert.Equal(t, "Dashboard", s)
}

func TestCatalogToleratesDescriptorWithoutTable(t *testing.T) {
	doc := []byte(`{
		"languages": {
			"english": {"code": "en", "native": "English", "region": "Global"},
			"santali": {"code": "sat", "native": "ᱥᱟᱱᱛᱟᱲᱤ", "region": "East India"}
		},
		"translations": {"en": {"app_name": "CropAI"}}
	}`)
	catalog, err := DecodeJSON(doc)
	require.NoError(t, err)

	assert.True(t, catalog.HasLocale("en"))
	assert.False(t, catalog.HasLocale("sat"))
	_, ok := catalog.ByCode("sat")
	assert.True(t, ok, "descriptor without a table stays listed")
}

func TestEmbeddedCatalogLoads(t *testing.T) {
	catalog, err := EmbeddedSource().Load(t.Context())
	require.NoError(t, err)

	for _, code := range []string{"en", "hi", "or"} {
		assert.True(t, catalog.HasLocale(code), "embedded catalog must carry %s", code)
	}
	table := catalog.Tables["hi"]
	s, ok := table.Lookup("crops.rice")
	require.True(t, ok)
	assert.NotEqual(t, "crops.rice", s)
}

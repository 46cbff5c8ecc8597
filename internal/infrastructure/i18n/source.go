package i18n

import (
	"context"
	"embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed catalog.json
var embeddedFS embed.FS

// Source produces the catalog document. It is read exactly once at
// construction and again on every explicit Reload.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (*Catalog, error)

func (f SourceFunc) Load(ctx context.Context) (*Catalog, error) {
	return f(ctx)
}

// EmbeddedSource serves the catalog compiled into the binary.
func EmbeddedSource() Source {
	return SourceFunc(func(context.Context) (*Catalog, error) {
		data, err := embeddedFS.ReadFile("catalog.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded catalog: %w", err)
		}
		return DecodeJSON(data)
	})
}

// FileSource loads the catalog from disk, decoding by file extension
// (.toml for TOML, anything else as JSON).
type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) (*Catalog, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(s.Path), ".toml") {
		return DecodeTOML(data)
	}
	return DecodeJSON(data)
}

// HTTPSource fetches the catalog as a single JSON document.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Load(ctx context.Context) (*Catalog, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}
	return DecodeJSON(data)
}

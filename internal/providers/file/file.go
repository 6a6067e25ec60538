package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"
	"github.com/preston-bernstein/rivalry-service/internal/providers"
)

// DefaultPath is the well-known location of the rivalry document relative to the working directory.
const DefaultPath = "data/rivalry.json"

// Provider loads the rivalry document from the filesystem.
type Provider struct {
	path string
}

// New constructs a file-backed provider. An empty path uses DefaultPath.
func New(path string) *Provider {
	if path == "" {
		path = DefaultPath
	}
	return &Provider{path: path}
}

// Path reports the file the provider reads.
func (p *Provider) Path() string {
	return p.path
}

// FetchRecord opens and decodes the document. Files ending in .yaml or .yml are read as YAML.
func (p *Provider) FetchRecord(ctx context.Context) (rivalry.Record, error) {
	if p == nil {
		return rivalry.Record{}, errors.New("file provider not configured")
	}
	if err := ctx.Err(); err != nil {
		return rivalry.Record{}, err
	}
	f, err := os.Open(p.path)
	if err != nil {
		return rivalry.Record{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(p.path)) {
	case ".yaml", ".yml":
		return providers.DecodeYAMLRecord(f)
	default:
		return providers.DecodeRecord(f)
	}
}

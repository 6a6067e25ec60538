package fixture

import (
	"bytes"
	"context"
	_ "embed"

	"github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"
	"github.com/preston-bernstein/rivalry-service/internal/providers"
)

//go:embed data/rivalry.json
var document []byte

// Provider serves the rivalry document bundled with the binary. Useful for local runs and bootstrapping.
type Provider struct {
	doc []byte
}

// New creates a fixture provider over the bundled document.
func New() *Provider {
	return &Provider{doc: document}
}

// Document returns a copy of the raw bundled JSON.
func Document() []byte {
	return bytes.Clone(document)
}

// FetchRecord decodes the bundled document.
func (p *Provider) FetchRecord(ctx context.Context) (rivalry.Record, error) {
	if err := ctx.Err(); err != nil {
		return rivalry.Record{}, err
	}
	return providers.DecodeRecord(bytes.NewReader(p.doc))
}

package providers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/rivalry-service/internal/domain/rivalry"
)

// maxDocumentBytes bounds how much of a rivalry document is read.
const maxDocumentBytes = 4 << 20

// DecodeRecord parses a rivalry JSON document.
func DecodeRecord(r io.Reader) (rivalry.Record, error) {
	var rec rivalry.Record
	if err := json.NewDecoder(io.LimitReader(r, maxDocumentBytes)).Decode(&rec); err != nil {
		return rivalry.Record{}, fmt.Errorf("decode rivalry document: %w", err)
	}
	return rec, nil
}

// DecodeYAMLRecord parses a rivalry document authored as YAML. Keys follow the JSON field names.
func DecodeYAMLRecord(r io.Reader) (rivalry.Record, error) {
	var doc any
	if err := yaml.NewDecoder(io.LimitReader(r, maxDocumentBytes)).Decode(&doc); err != nil {
		return rivalry.Record{}, fmt.Errorf("decode rivalry yaml: %w", err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return rivalry.Record{}, fmt.Errorf("decode rivalry yaml: %w", err)
	}
	return DecodeRecord(bytes.NewReader(raw))
}

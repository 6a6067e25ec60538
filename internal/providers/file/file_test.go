package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/rivalry-service/internal/providers/fixture"
)

func TestFetchRecordReadsDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rivalry.json")
	if err := os.WriteFile(path, fixture.Document(), 0o644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}

	rec, err := New(path).FetchRecord(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rec.Excuses) == 0 {
		t.Fatalf("expected excuses from document")
	}
}

func TestFetchRecordMissingFile(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := p.FetchRecord(context.Background()); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestFetchRecordMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rivalry.json")
	if err := os.WriteFile(path, []byte("not-json"), 0o644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	if _, err := New(path).FetchRecord(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNewDefaultsPath(t *testing.T) {
	if got := New("").Path(); got != DefaultPath {
		t.Fatalf("expected default path %s, got %s", DefaultPath, got)
	}
}

func TestNilProvider(t *testing.T) {
	var p *Provider
	if _, err := p.FetchRecord(context.Background()); err == nil {
		t.Fatalf("expected error from nil provider")
	}
}

func TestFetchRecordReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rivalry.yml")
	doc := "updatedThroughSeason: \"2024\"\nallTime:\n  packersWins: 1\n  bearsWins: 2\n  ties: 0\nexcuses:\n  - Refs.\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	rec, err := New(path).FetchRecord(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.AllTime.BearsWins != 2 || rec.Excuses[0] != "Refs." {
		t.Fatalf("unexpected record %+v", rec)
	}
}

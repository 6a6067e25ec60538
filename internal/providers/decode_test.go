package providers

import (
	"strings"
	"testing"
)

func TestDecodeRecord(t *testing.T) {
	doc := `{"updatedThroughSeason":"2024","allTime":{"packersWins":112,"bearsWins":96,"ties":6,"packersWinPct":0.537},"excuses":["a"]}`
	rec, err := DecodeRecord(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("expected decode success, got %v", err)
	}
	if rec.AllTime.TotalGames() != 214 || rec.Excuses[0] != "a" {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestDecodeRecordMalformed(t *testing.T) {
	_, err := DecodeRecord(strings.NewReader("{"))
	if err == nil || !strings.Contains(err.Error(), "decode rivalry document") {
		t.Fatalf("expected wrapped decode error, got %v", err)
	}
}

func TestDecodeYAMLRecord(t *testing.T) {
	doc := `
updatedThroughSeason: "2024"
allTime:
  packersWins: 112
  bearsWins: 96
  ties: 6
  packersWinPct: 0.537
eras:
  - name: Lambeau vs Halas
    packers: 30
    bears: 40
    ties: 4
excuses:
  - The wind off the lake changed direction.
`
	rec, err := DecodeYAMLRecord(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("expected decode success, got %v", err)
	}
	if rec.AllTime.TotalGames() != 214 || rec.AllTime.PackersWinPct != 0.537 {
		t.Fatalf("unexpected tally %+v", rec.AllTime)
	}
	if len(rec.Eras) != 1 || rec.Eras[0].Name != "Lambeau vs Halas" || rec.Eras[0].Ties != 4 {
		t.Fatalf("unexpected eras %+v", rec.Eras)
	}
}

func TestDecodeYAMLRecordMalformed(t *testing.T) {
	if _, err := DecodeYAMLRecord(strings.NewReader("allTime: [unclosed")); err == nil {
		t.Fatalf("expected yaml error")
	}
	// An unquoted season is a YAML integer and does not fit the string field.
	if _, err := DecodeYAMLRecord(strings.NewReader("updatedThroughSeason: 2024\n")); err == nil {
		t.Fatalf("expected type mismatch error")
	}
}

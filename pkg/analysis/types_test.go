package analysis_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-partyreport/pkg/analysis"
)

func TestResults_GroupsBySize(t *testing.T) {
	results := analysis.Results{
		"Small": {Total: 3},
		"B":     {Total: 20},
		"A":     {Total: 20},
		"Large": {Total: 300},
	}

	want := []string{"Large", "A", "B", "Small"}
	if diff := cmp.Diff(want, results.GroupsBySize()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestResults_MemberCount(t *testing.T) {
	results := analysis.Results{
		"A": {Proud: make([]analysis.Member, 2), Shy: make([]analysis.Member, 1)},
		"B": {Invisible: make([]analysis.Member, 4)},
	}
	if got := results.MemberCount(); got != 7 {
		t.Fatalf("expected 7 members, got %d", got)
	}
}

func TestDecode(t *testing.T) {
	raw := []byte(`{
		"Green": {
			"total": 12,
			"proud": [{"name": "Ada", "constituency": "North", "description": "a|b\nc", "twitterUsername": "ada", "followers": 10}],
			"shy": null
		}
	}`)

	got, err := analysis.Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := analysis.Results{
		"Green": {
			Total: 12,
			Proud: []analysis.Member{{
				Name:            "Ada",
				Constituency:    "North",
				Description:     "a|b\nc",
				TwitterUsername: "ada",
			}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"malformed": `{"Green": `,
		"null":      "null",
		"wrong":     `{"Green": {"total": "many"}}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := analysis.Decode([]byte(raw)); err == nil {
				t.Fatalf("expected error for %q", raw)
			}
		})
	}
}

func TestDocument_DecodeNamesSource(t *testing.T) {
	doc := analysis.MustNewDocument(analysis.SourceFromFile("output/analysis.json"), []byte("[]"))
	_, err := doc.Decode()
	if err == nil {
		t.Fatal("expected error decoding an array")
	}
	if !strings.Contains(err.Error(), "output/analysis.json") {
		t.Fatalf("expected source location in error, got %v", err)
	}
}

func TestParseSource(t *testing.T) {
	src, err := analysis.ParseSource("https://example.com/analysis.json")
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	if src.Kind() != analysis.SourceKindURL {
		t.Fatalf("expected url source, got %s", src.Kind())
	}

	src, err = analysis.ParseSource(" output/./analysis.json ")
	if err != nil {
		t.Fatalf("parse file: %v", err)
	}
	if src.Kind() != analysis.SourceKindFile || src.Location() != "output/analysis.json" {
		t.Fatalf("unexpected file source %s %q", src.Kind(), src.Location())
	}

	if _, err := analysis.ParseSource("   "); err == nil {
		t.Fatal("expected error for blank source")
	}
}

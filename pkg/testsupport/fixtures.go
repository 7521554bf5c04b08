package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/goliatone/go-partyreport/pkg/analysis"
)

// LoadResults reads an analysis fixture and decodes it. Testing helpers fail
// the test on error to keep contract tests concise.
func LoadResults(t *testing.T, path string) analysis.Results {
	t.Helper()

	results, err := LoadResultsFromPath(path)
	if err != nil {
		t.Fatalf("load results: %v", err)
	}
	return results
}

// LoadResultsFromPath returns decoded Results without requiring testing.T.
func LoadResultsFromPath(path string) (analysis.Results, error) {
	if path == "" {
		return nil, errors.New("testsupport: results path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read results: %w", err)
	}
	doc, err := analysis.NewDocument(analysis.SourceFromFile(path), data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc.Decode()
}

// SampleResults returns a small in-memory analysis covering every member
// category, a tie on total, and a group below the summary threshold.
func SampleResults() analysis.Results {
	return analysis.Results{
		"Labour": {
			Total: 12,
			Proud: []analysis.Member{
				{Name: "Ada Lovelace", Constituency: "Marylebone", Description: "Labour MP | Engines\nViews my own", TwitterUsername: "ada"},
				{Name: "Alan Turing", Constituency: "Wilmslow", Description: "Labour & proud", TwitterUsername: "alan"},
				{Name: "Grace Hopper", Constituency: "Arlington", Description: "Labour", TwitterUsername: "grace"},
			},
			Shy: []analysis.Member{
				{Name: "Edsger Dijkstra", Constituency: "Rotterdam", Description: "Goto considered harmful", TwitterUsername: "ewd"},
			},
			Invisible: []analysis.Member{
				{Name: "Charles Babbage", Constituency: "Walworth"},
			},
		},
		"Conservative": {
			Total: 12,
			Proud: []analysis.Member{
				{Name: "Barbara Liskov", Constituency: "Los Angeles", Description: "Conservative", TwitterUsername: "liskov"},
			},
		},
		"Green": {
			Total: 1,
			Shy: []analysis.Member{
				{Name: "Donald Knuth", Constituency: "Milwaukee", Description: "TeX", TwitterUsername: "knuth"},
			},
		},
	}
}

// NewMemFS returns an in-memory filesystem seeded with files (path -> content).
func NewMemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("seed %s: %v", path, err)
		}
	}
	return fs
}

// MustReadFile reads a file from an afero filesystem.
func MustReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

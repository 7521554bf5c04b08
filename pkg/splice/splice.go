// Package splice replaces literal placeholder markers inside templates.
package splice

import (
	"errors"
	"fmt"
	"strings"
)

// Markers recognised by the report templates.
const (
	SummaryMarker = "<!--summary-auto-gen-->"
	ResultsMarker = "<!--results-auto-gen-->"
	ContentMarker = "<insert-content-here />"
)

// ErrMarkerNotFound is returned when a template lacks the requested marker.
var ErrMarkerNotFound = errors.New("splice: marker not found")

// Splice replaces the first occurrence of marker in template with content.
// Content is inserted verbatim.
func Splice(template, marker, content string) (string, error) {
	if marker == "" {
		return "", errors.New("splice: marker is required")
	}
	index := strings.Index(template, marker)
	if index == -1 {
		return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
	}
	return template[:index] + content + template[index+len(marker):], nil
}

// MustSplice panics when the marker is missing.
func MustSplice(template, marker, content string) string {
	out, err := Splice(template, marker, content)
	if err != nil {
		panic(err)
	}
	return out
}

package analysis

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document wraps the raw analysis payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("analysis: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("analysis: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Decode parses the payload into Results.
func (d Document) Decode() (Results, error) {
	results, err := Decode(d.raw)
	if err != nil {
		return nil, fmt.Errorf("%w (source %s)", err, d.Location())
	}
	return results, nil
}

// Decode parses an analysis payload shaped as
// {"<group>": {"total": n, "proud": [], "shy": [], "invisible": []}}.
// Unknown fields are ignored.
func Decode(raw []byte) (Results, error) {
	if len(raw) == 0 {
		return nil, errors.New("analysis: raw document is empty")
	}
	var results Results
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("analysis: decode document: %w", err)
	}
	if results == nil {
		return nil, errors.New("analysis: document is null")
	}
	return results, nil
}

// Package convert turns the composed Markdown report into HTML, either through
// GitHub's markdown rendering endpoint or locally.
package convert

import (
	"context"
	"errors"
	"net/http"
)

// ErrTransport marks failures where no response was received at all.
var ErrTransport = errors.New("convert: transport failure")

// Converter renders Markdown into HTML.
type Converter interface {
	Name() string
	Convert(ctx context.Context, markdown string) (Result, error)
}

// Result carries the converted body together with the status reported by the
// backend. A non-200 status still carries whatever body was returned.
type Result struct {
	Body       string
	StatusCode int
}

// OK reports whether the backend answered with 200.
func (r Result) OK() bool {
	return r.StatusCode == http.StatusOK
}

package convert

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// GoldmarkName is the registry name of the local converter.
const GoldmarkName = "goldmark"

// Goldmark converts Markdown locally with GitHub flavoured extensions. Raw HTML
// in the document is kept and the output is sanitized.
type Goldmark struct {
	md goldmark.Markdown
}

var _ Converter = (*Goldmark)(nil)

// NewGoldmark constructs the local converter.
func NewGoldmark() *Goldmark {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Goldmark{md: md}
}

// Name implements Converter.
func (g *Goldmark) Name() string {
	return GoldmarkName
}

// Convert implements Converter. The status is always 200.
func (g *Goldmark) Convert(ctx context.Context, markdown string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(markdown), &buf); err != nil {
		return Result{}, fmt.Errorf("convert: goldmark: %w", err)
	}
	return Result{Body: Sanitize(buf.String()), StatusCode: http.StatusOK}, nil
}

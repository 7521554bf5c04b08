package convert

import (
	"context"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	reportPolicyOnce sync.Once
	reportPolicy     *bluemonday.Policy
)

// Sanitize strips anything outside the user generated content policy while
// keeping the collapsible <details>/<summary> blocks the report relies on.
func Sanitize(html string) string {
	return reportSanitizer().Sanitize(html)
}

func reportSanitizer() *bluemonday.Policy {
	reportPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("details", "summary")
		policy.AllowAttrs("open").OnElements("details")
		// GitHub wraps headings in anchors and tags tables with classes.
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("aria-hidden", "tabindex").OnElements("a")
		reportPolicy = policy
	})
	return reportPolicy
}

// Sanitized wraps a converter so its output passes through Sanitize.
func Sanitized(next Converter) Converter {
	return sanitized{next: next}
}

type sanitized struct {
	next Converter
}

func (s sanitized) Name() string {
	return s.next.Name()
}

func (s sanitized) Convert(ctx context.Context, markdown string) (Result, error) {
	result, err := s.next.Convert(ctx, markdown)
	if err != nil {
		return result, err
	}
	result.Body = Sanitize(result.Body)
	return result, nil
}

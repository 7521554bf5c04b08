package report

import (
	"fmt"

	"github.com/goliatone/go-partyreport/pkg/analysis"
	"github.com/goliatone/go-partyreport/pkg/splice"
)

// Compose splices the summary and the detailed breakdown into a Markdown
// template holding splice.SummaryMarker and splice.ResultsMarker.
func Compose(template string, results analysis.Results) (string, error) {
	out, err := splice.Splice(template, splice.SummaryMarker, BuildSummary(results))
	if err != nil {
		return "", fmt.Errorf("report: summary: %w", err)
	}
	out, err = splice.Splice(out, splice.ResultsMarker, BuildDetails(results))
	if err != nil {
		return "", fmt.Errorf("report: results: %w", err)
	}
	return out, nil
}

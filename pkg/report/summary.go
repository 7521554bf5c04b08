package report

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-partyreport/pkg/analysis"
)

// MinSummaryTotal is the smallest group total listed in the summary table.
const MinSummaryTotal = 10

const (
	summaryHeader    = "| Party | # of MPs | # of MPs mentioning their party | # of MPs not mentioning their party | # of MPs not on Twitter |\n"
	summarySeparator = "| - | :-: | :-: | :-: | :-: |\n"
)

// BuildSummary renders the summary table for every group whose total reaches
// MinSummaryTotal, largest first. The fragment starts with a newline so it can
// replace a marker sitting on its own line.
func BuildSummary(results analysis.Results) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(summaryHeader)
	b.WriteString(summarySeparator)

	for _, name := range results.GroupsBySize() {
		group := results[name]
		if group.Total < MinSummaryTotal {
			continue
		}
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s |\n",
			name,
			group.Total,
			RenderNumberWithPercent(len(group.Proud), group.Total),
			RenderNumberWithPercent(len(group.Shy), group.Total),
			RenderNumberWithPercent(len(group.Invisible), group.Total),
		)
	}
	return b.String()
}

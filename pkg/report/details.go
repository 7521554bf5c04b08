package report

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-partyreport/pkg/analysis"
)

// Section labels used in the collapsible breakdown.
const (
	LabelProud     = "MPs mentioning their party"
	LabelShy       = "MPs not mentioning their party"
	LabelInvisible = "MPs not on Twitter"
)

// ProfileBaseURL prefixes member usernames to build profile links.
const ProfileBaseURL = "https://twitter.com/"

// BuildDetails renders one collapsible section per group, largest first, with
// an inner section per non-empty member category. Unlike the summary no group
// is filtered out.
func BuildDetails(results analysis.Results) string {
	var b strings.Builder
	b.WriteString("\n")

	for _, name := range results.GroupsBySize() {
		group := results[name]

		var inner strings.Builder
		if len(group.Proud) > 0 {
			inner.WriteString(profileTable(LabelProud, group.Proud, group.Total))
		}
		if len(group.Shy) > 0 {
			inner.WriteString(profileTable(LabelShy, group.Shy, group.Total))
		}
		if len(group.Invisible) > 0 {
			inner.WriteString(profilelessTable(LabelInvisible, group.Invisible, group.Total))
		}

		b.WriteString(collapsible(name, inner.String()))
	}
	return b.String()
}

func collapsible(summary, body string) string {
	return fmt.Sprintf("<details>\n<summary>%s</summary>\n\n%s\n</details>\n", summary, body)
}

func sectionSummary(label string, members []analysis.Member, total int) string {
	return fmt.Sprintf("%s (%d of %d)", label, len(members), total)
}

func profileTable(label string, members []analysis.Member, total int) string {
	var b strings.Builder
	b.WriteString("| Name | Constituency | Bio |\n")
	b.WriteString("| - | - | - |\n")
	for _, m := range members {
		fmt.Fprintf(&b, "| [%s](%s%s) | %s | %s |\n",
			m.Name, ProfileBaseURL, m.TwitterUsername, m.Constituency, SanitiseDescription(m.Description))
	}
	return collapsible(sectionSummary(label, members, total), b.String())
}

// profilelessTable omits the link and bio columns.
func profilelessTable(label string, members []analysis.Member, total int) string {
	var b strings.Builder
	b.WriteString("| Name | Constituency |\n")
	b.WriteString("| - | - |\n")
	for _, m := range members {
		fmt.Fprintf(&b, "| %s | %s |\n", m.Name, m.Constituency)
	}
	return collapsible(sectionSummary(label, members, total), b.String())
}

package report_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-partyreport/pkg/analysis"
	"github.com/goliatone/go-partyreport/pkg/report"
	"github.com/goliatone/go-partyreport/pkg/splice"
)

func members(names ...string) []analysis.Member {
	out := make([]analysis.Member, 0, len(names))
	for _, name := range names {
		out = append(out, analysis.Member{
			Name:            name,
			Constituency:    name + " Central",
			Description:     "bio of " + name,
			TwitterUsername: strings.ToLower(name),
		})
	}
	return out
}

func TestBuildSummary(t *testing.T) {
	results := analysis.Results{
		"B":     {Total: 20, Proud: members("B1"), Shy: members("B2", "B3"), Invisible: members("B4")},
		"A":     {Total: 20, Proud: members("A1", "A2", "A3", "A4", "A5")},
		"Tiny":  {Total: 9, Proud: members("T1")},
		"Large": {Total: 12, Proud: members("L1", "L2", "L3"), Shy: members("L4")},
	}

	want := "\n" +
		"| Party | # of MPs | # of MPs mentioning their party | # of MPs not mentioning their party | # of MPs not on Twitter |\n" +
		"| - | :-: | :-: | :-: | :-: |\n" +
		"| A | 20 | 5 (25%) | 0 (0%) | 0 (0%) |\n" +
		"| B | 20 | 1 (5%) | 2 (10%) | 1 (5%) |\n" +
		"| Large | 12 | 3 (25%) | 1 (8%) | 0 (0%) |\n"

	if diff := cmp.Diff(want, report.BuildSummary(results)); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSummary_SmallGroupOnlyInDetails(t *testing.T) {
	results := analysis.Results{
		"Tiny": {Total: 9, Invisible: members("T1")},
		"Big":  {Total: 10, Invisible: members("G1")},
	}

	summary := report.BuildSummary(results)
	if strings.Contains(summary, "Tiny") {
		t.Fatalf("expected Tiny to be filtered from the summary:\n%s", summary)
	}
	if !strings.Contains(summary, "| Big | 10 |") {
		t.Fatalf("expected Big in the summary:\n%s", summary)
	}

	details := report.BuildDetails(results)
	if !strings.Contains(details, "<summary>Tiny</summary>") {
		t.Fatalf("expected Tiny in the details:\n%s", details)
	}
}

func TestBuildDetails(t *testing.T) {
	results := analysis.Results{
		"Green": {
			Total: 3,
			Proud: []analysis.Member{{
				Name:            "Ada",
				Constituency:    "North",
				Description:     "Line one\nA | B",
				TwitterUsername: "ada",
			}},
			Invisible: []analysis.Member{{Name: "Bob", Constituency: "South", Description: "ignored"}},
		},
		"Red": {
			Total: 5,
			Shy:   []analysis.Member{{Name: "Cy", Constituency: "East", Description: "", TwitterUsername: "cy"}},
		},
	}

	want := "\n" +
		"<details>\n<summary>Red</summary>\n\n" +
		"<details>\n<summary>MPs not mentioning their party (1 of 5)</summary>\n\n" +
		"| Name | Constituency | Bio |\n" +
		"| - | - | - |\n" +
		"| [Cy](https://twitter.com/cy) | East |  |\n" +
		"\n</details>\n" +
		"\n</details>\n" +
		"<details>\n<summary>Green</summary>\n\n" +
		"<details>\n<summary>MPs mentioning their party (1 of 3)</summary>\n\n" +
		"| Name | Constituency | Bio |\n" +
		"| - | - | - |\n" +
		"| [Ada](https://twitter.com/ada) | North | Line one<br>A \\| B |\n" +
		"\n</details>\n" +
		"<details>\n<summary>MPs not on Twitter (1 of 3)</summary>\n\n" +
		"| Name | Constituency |\n" +
		"| - | - |\n" +
		"| Bob | South |\n" +
		"\n</details>\n" +
		"\n</details>\n"

	if diff := cmp.Diff(want, report.BuildDetails(results)); diff != "" {
		t.Fatalf("details mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDetails_EmptyGroup(t *testing.T) {
	got := report.BuildDetails(analysis.Results{"Vacant": {Total: 0}})
	want := "\n<details>\n<summary>Vacant</summary>\n\n\n</details>\n"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestCompose(t *testing.T) {
	results := analysis.Results{"Green": {Total: 10, Proud: members("Ada")}}
	template := "# Report\n<!--summary-auto-gen-->\n## Details\n<!--results-auto-gen-->\n"

	got, err := report.Compose(template, results)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	want := "# Report\n" + report.BuildSummary(results) + "\n## Details\n" + report.BuildDetails(results) + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("compose mismatch (-want +got):\n%s", diff)
	}
}

func TestCompose_MissingMarker(t *testing.T) {
	results := analysis.Results{"Green": {Total: 10}}

	_, err := report.Compose("<!--summary-auto-gen--> only", results)
	if !errors.Is(err, splice.ErrMarkerNotFound) {
		t.Fatalf("expected ErrMarkerNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), splice.ResultsMarker) {
		t.Fatalf("expected results marker in error, got %v", err)
	}
}

package report_test

import (
	"testing"

	"github.com/goliatone/go-partyreport/pkg/report"
)

func TestRenderNumberWithPercent(t *testing.T) {
	cases := []struct {
		numerator, denominator int
		want                   string
	}{
		{3, 12, "3 (25%)"},
		{1, 3, "1 (33%)"},
		{2, 3, "2 (67%)"},
		{1, 8, "1 (13%)"},
		{0, 15, "0 (0%)"},
		{15, 15, "15 (100%)"},
		{4, 0, "4 (0%)"},
	}
	for _, tc := range cases {
		if got := report.RenderNumberWithPercent(tc.numerator, tc.denominator); got != tc.want {
			t.Errorf("RenderNumberWithPercent(%d, %d) = %q, want %q", tc.numerator, tc.denominator, got, tc.want)
		}
	}
}

func TestSanitiseDescription(t *testing.T) {
	got := report.SanitiseDescription("Member for X | Minister\nViews my own")
	want := `Member for X \| Minister<br>Views my own`
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

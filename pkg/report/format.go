package report

import (
	"fmt"
	"math"
	"strings"
)

var descriptionReplacer = strings.NewReplacer(
	"\n", "<br>",
	"|", `\|`,
)

// RenderNumberWithPercent formats numerator as "N (P%)" where P is the share
// of denominator rounded to the nearest integer, halves away from zero. A zero
// denominator renders "N (0%)" rather than a NaN percentage.
func RenderNumberWithPercent(numerator, denominator int) string {
	if denominator == 0 {
		return fmt.Sprintf("%d (0%%)", numerator)
	}
	percent := 100 * float64(numerator) / float64(denominator)
	return fmt.Sprintf("%d (%d%%)", numerator, int(math.Round(percent)))
}

// SanitiseDescription makes free text safe for a Markdown table cell: newlines
// become <br> and pipes are escaped.
func SanitiseDescription(description string) string {
	return descriptionReplacer.Replace(description)
}

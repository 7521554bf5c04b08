package pipeline

import (
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-partyreport/pkg/analysis"
	"github.com/goliatone/go-partyreport/pkg/report"
)

// shellData is the per-run context templates are rendered with; title and
// source are engine globals.
func (p *Pipeline) shellData(results analysis.Results) map[string]any {
	groups := make([]map[string]any, 0, len(results))
	for _, name := range results.GroupsBySize() {
		group := results[name]
		groups = append(groups, map[string]any{
			"name":      name,
			"total":     group.Total,
			"proud":     len(group.Proud),
			"shy":       len(group.Shy),
			"invisible": len(group.Invisible),
		})
	}

	return map[string]any{
		"generated_at": p.now().UTC().Format(time.RFC3339),
		"group_count":  len(results),
		"member_count": results.MemberCount(),
		"groups":       groups,
	}
}

// filterPercent renders {{ count|percent:total }} as "N (P%)".
func filterPercent(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(report.RenderNumberWithPercent(in.Integer(), param.Integer())), nil
}

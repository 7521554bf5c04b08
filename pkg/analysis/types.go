package analysis

import (
	"sort"
	"strings"
)

// Member is a single legislator record.
type Member struct {
	Name         string `json:"name"`
	Constituency string `json:"constituency"`
	// Description is the free-text profile bio. It may contain newlines and
	// pipe characters.
	Description string `json:"description"`
	// TwitterUsername is only meaningful for members that have a profile.
	TwitterUsername string `json:"twitterUsername,omitempty"`
}

// Group aggregates the members of one party. Total is trusted from upstream and
// is expected to roughly equal len(Proud)+len(Shy)+len(Invisible).
type Group struct {
	Total int `json:"total"`
	// Proud members mention their party on their profile.
	Proud []Member `json:"proud"`
	// Shy members have a profile that does not mention their party.
	Shy []Member `json:"shy"`
	// Invisible members have no profile at all.
	Invisible []Member `json:"invisible"`
}

// Results maps a group name to its counts.
type Results map[string]Group

// GroupsBySize returns the group names ordered by descending total. Ties are
// broken by ascending name.
func (r Results) GroupsBySize() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := r[names[i]], r[names[j]]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return strings.Compare(names[i], names[j]) < 0
	})
	return names
}

// MemberCount returns the number of member records across every group.
func (r Results) MemberCount() int {
	count := 0
	for _, group := range r {
		count += len(group.Proud) + len(group.Shy) + len(group.Invisible)
	}
	return count
}

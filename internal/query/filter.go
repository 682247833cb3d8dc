package query

import (
	"fantasy-projection/internal/dataset"
)

// Filter keeps the records that satisfy every active facet. Facets combine
// with AND; values inside one facet combine with OR. Input order is kept.
func Filter(records []dataset.ProjectionRecord, sel Selection) []dataset.ProjectionRecord {
	names := toSet(sel.Names)
	positions := toSet(sel.Positions)
	teams := toSet(sel.Teams)

	out := make([]dataset.ProjectionRecord, 0, len(records))
	for _, r := range records {
		if names != nil && !names[r.Name] {
			continue
		}
		if sel.MatchNumber != nil && r.MatchNumber != *sel.MatchNumber {
			continue
		}
		if positions != nil && !positions[r.Position] {
			continue
		}
		if teams != nil && !teams[r.Team] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// toSet returns nil for an empty facet so callers can treat it as "any".
func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

package query

import (
	"slices"

	"fantasy-projection/internal/dataset"
)

// BuildFacets collects the sorted distinct values of each filterable column.
func BuildFacets(records []dataset.ProjectionRecord) Facets {
	names := map[string]struct{}{}
	matches := map[int]struct{}{}
	positions := map[string]struct{}{}
	teams := map[string]struct{}{}

	for _, r := range records {
		names[r.Name] = struct{}{}
		matches[r.MatchNumber] = struct{}{}
		positions[r.Position] = struct{}{}
		teams[r.Team] = struct{}{}
	}

	return Facets{
		Names:        sortedKeys(names),
		MatchNumbers: sortedKeys(matches),
		Positions:    sortedKeys(positions),
		Teams:        sortedKeys(teams),
	}
}

func sortedKeys[K string | int](m map[K]struct{}) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

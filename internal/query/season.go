package query

import (
	"sort"

	"fantasy-projection/internal/dataset"
)

type playerKey struct {
	name, team, position string
}

// SummarizeSeason groups rows by (name, team, position) and projects each
// group over a full season as mean(fpoints) * SeasonLength. The mean is used
// instead of the sum because players can be missing matches in the source.
//
// Rows come back sorted by total, highest first. Equal totals are ordered by
// name, then team, then position.
func SummarizeSeason(subset []dataset.ProjectionRecord) []SeasonSummary {
	type acc struct {
		sum   float64
		count int
	}

	groups := make(map[playerKey]*acc)
	for _, r := range subset {
		k := playerKey{r.Name, r.Team, r.Position}
		g, ok := groups[k]
		if !ok {
			g = &acc{}
			groups[k] = g
		}
		g.sum += r.FPoints
		g.count++
	}

	out := make([]SeasonSummary, 0, len(groups))
	for k, g := range groups {
		mean := g.sum / float64(g.count)
		out = append(out, SeasonSummary{
			Name:         k.name,
			Team:         k.team,
			Position:     k.position,
			TotalFPoints: mean * SeasonLength,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.TotalFPoints != b.TotalFPoints {
			return a.TotalFPoints > b.TotalFPoints
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		return a.Position < b.Position
	})
	return out
}

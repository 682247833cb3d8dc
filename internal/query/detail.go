package query

import (
	"math"
	"sort"

	"fantasy-projection/internal/dataset"
)

// MatchDetail lists every row of subset ordered by match number ascending,
// then projected fantasy points descending. Ordering uses the raw floats.
//
// Runs and wickets are rounded half to even before the integer conversion,
// the same as the float rounding the projections were published with.
func MatchDetail(subset []dataset.ProjectionRecord) []MatchDetailRow {
	out := make([]MatchDetailRow, 0, len(subset))
	for _, r := range subset {
		out = append(out, MatchDetailRow{
			MatchNumber: r.MatchNumber,
			Name:        r.Name,
			Team:        r.Team,
			Position:    r.Position,
			FPoints:     r.FPoints,
			Runs:        int(math.RoundToEven(r.Runs)),
			Wickets:     int(math.RoundToEven(r.Wickets)),
			Opponent:    r.Opponent,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchNumber != out[j].MatchNumber {
			return out[i].MatchNumber < out[j].MatchNumber
		}
		return out[i].FPoints > out[j].FPoints
	})
	return out
}

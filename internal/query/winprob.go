package query

import "fantasy-projection/internal/dataset"

// WinProbabilityView renames the win probability columns for display and
// truncates both percentages toward zero. Row order is unchanged.
func WinProbabilityView(records []dataset.WinProbabilityRecord) []WinProbabilityRow {
	out := make([]WinProbabilityRow, 0, len(records))
	for _, w := range records {
		out = append(out, WinProbabilityRow{
			Match:                 w.MatchNumber,
			HomeTeam:              w.Team1Name,
			AwayTeam:              w.Team2Name,
			HomeTeamWinPercentage: int(w.Team1WinPct),
			AwayTeamWinPercentage: int(w.Team2WinPct),
		})
	}
	return out
}

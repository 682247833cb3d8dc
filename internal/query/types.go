// Package query filters and aggregates the projection relation into the tables
// the dashboard shows. Every function here is pure: it reads its inputs and
// returns fresh slices.
package query

// SeasonLength is the number of league matches a player's per-match average
// is scaled to. Players missing rows are still projected over a full season.
const SeasonLength = 14

// Selection holds the four filter facets. A nil or empty facet does not
// constrain its attribute.
type Selection struct {
	Names       []string `json:"names,omitempty"`
	MatchNumber *int     `json:"match_number,omitempty"`
	Positions   []string `json:"positions,omitempty"`
	Teams       []string `json:"teams,omitempty"`
}

// IsEmpty reports whether no facet is active.
func (s Selection) IsEmpty() bool {
	return len(s.Names) == 0 && s.MatchNumber == nil && len(s.Positions) == 0 && len(s.Teams) == 0
}

// SeasonSummary is one player's projected total over a full season.
type SeasonSummary struct {
	Name         string  `json:"name"`
	Team         string  `json:"team"`
	Position     string  `json:"position"`
	TotalFPoints float64 `json:"total_fpoints"`
}

// MatchDetailRow is one player's projection for one match, ready for display.
// FPoints keeps full precision; Runs and Wickets are already rounded.
type MatchDetailRow struct {
	MatchNumber int     `json:"matchnumber"`
	Name        string  `json:"name"`
	Team        string  `json:"team"`
	Position    string  `json:"position"`
	FPoints     float64 `json:"fpoints_projected"`
	Runs        int     `json:"runs_projected"`
	Wickets     int     `json:"wickets_projected"`
	Opponent    string  `json:"opponent"`
}

// WinProbabilityRow is a match outcome with whole-number percentages.
type WinProbabilityRow struct {
	Match                 int    `json:"match"`
	HomeTeam              string `json:"HomeTeam"`
	AwayTeam              string `json:"AwayTeam"`
	HomeTeamWinPercentage int    `json:"Home_Team_win_percentage"`
	AwayTeamWinPercentage int    `json:"Away_Team_win_percentage"`
}

// Facets lists the distinct values available for each filter, sorted.
type Facets struct {
	Names        []string `json:"names"`
	MatchNumbers []int    `json:"match_numbers"`
	Positions    []string `json:"positions"`
	Teams        []string `json:"teams"`
}

// Projection is the output of one filter pass.
type Projection struct {
	Selection Selection        `json:"selection"`
	Season    []SeasonSummary  `json:"season"`
	Matches   []MatchDetailRow `json:"matches"`
}

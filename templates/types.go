package templates

// Tab names passed to Layout to mark the active navigation link.
const (
	TabProjection     = "projection"
	TabWinProbability = "win-probability"
)

type SeasonRow struct {
	Name         string  `json:"name"`
	Team         string  `json:"team"`
	Position     string  `json:"position"`
	TotalFPoints float64 `json:"total_fpoints"`
}

type MatchRow struct {
	MatchNumber int     `json:"matchnumber"`
	Name        string  `json:"name"`
	Team        string  `json:"team"`
	Position    string  `json:"position"`
	FPoints     float64 `json:"fpoints_projected"`
	Runs        int     `json:"runs_projected"`
	Wickets     int     `json:"wickets_projected"`
	Opponent    string  `json:"opponent"`
}

type WinRow struct {
	Match      int    `json:"match"`
	HomeTeam   string `json:"HomeTeam"`
	AwayTeam   string `json:"AwayTeam"`
	HomeWinPct int    `json:"Home_Team_win_percentage"`
	AwayWinPct int    `json:"Away_Team_win_percentage"`
}

// FilterOption is one entry of a sidebar select box.
type FilterOption struct {
	Value    string
	Selected bool
}

type FilterForm struct {
	Names     []FilterOption
	Matches   []FilterOption // first entry is "All"
	Positions []FilterOption
	Teams     []FilterOption
}

type ProjectionPageData struct {
	Filters FilterForm
	Season  []SeasonRow
	Matches []MatchRow
}

type WinProbabilityPageData struct {
	Rows []WinRow
}

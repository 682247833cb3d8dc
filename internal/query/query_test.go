package query

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fantasy-projection/internal/dataset"
)

func intPtr(n int) *int { return &n }

func sampleRecords() []dataset.ProjectionRecord {
	return []dataset.ProjectionRecord{
		{Name: "V Kohli", MatchNumber: 1, Position: "BAT", Team: "RCB", Opponent: "CSK", FPoints: 52.314, Runs: 38.6, Wickets: 0.2},
		{Name: "R Jadeja", MatchNumber: 1, Position: "AR", Team: "CSK", Opponent: "RCB", FPoints: 61.5, Runs: 18.5, Wickets: 1.5},
		{Name: "MS Dhoni", MatchNumber: 1, Position: "WK", Team: "CSK", Opponent: "RCB", FPoints: 30.0, Runs: 22.5, Wickets: 0},
		{Name: "V Kohli", MatchNumber: 2, Position: "BAT", Team: "RCB", Opponent: "PBKS", FPoints: 44.02, Runs: 31.2, Wickets: 0},
		{Name: "A Singh", MatchNumber: 2, Position: "BOWL", Team: "PBKS", Opponent: "RCB", FPoints: 44.02, Runs: 2.49, Wickets: 2.5},
		{Name: "R Jadeja", MatchNumber: 3, Position: "AR", Team: "CSK", Opponent: "MI", FPoints: 55.5, Runs: 21.0, Wickets: 1.4},
	}
}

func names(rs []dataset.ProjectionRecord) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestFilterFacets(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{"no facets", Selection{}, []string{"V Kohli", "R Jadeja", "MS Dhoni", "V Kohli", "A Singh", "R Jadeja"}},
		{"name or", Selection{Names: []string{"V Kohli", "A Singh"}}, []string{"V Kohli", "V Kohli", "A Singh"}},
		{"match", Selection{MatchNumber: intPtr(1)}, []string{"V Kohli", "R Jadeja", "MS Dhoni"}},
		{"team and position", Selection{Teams: []string{"CSK"}, Positions: []string{"AR"}}, []string{"R Jadeja", "R Jadeja"}},
		{"all four", Selection{Names: []string{"R Jadeja"}, MatchNumber: intPtr(3), Positions: []string{"AR"}, Teams: []string{"CSK"}}, []string{"R Jadeja"}},
		{"unknown match", Selection{MatchNumber: intPtr(99)}, []string{}},
		{"unknown team", Selection{Teams: []string{"X"}}, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(records, tc.sel)
			assert.Equal(t, tc.want, names(got))
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	records := sampleRecords()
	sel := Selection{Teams: []string{"CSK", "RCB"}, Positions: []string{"AR", "BAT"}}

	once := Filter(records, sel)
	twice := Filter(once, sel)
	assert.Equal(t, once, twice)
	assert.Equal(t, once, Filter(records, sel))
}

func TestSummarizeSeasonSingleRow(t *testing.T) {
	v := 37.13
	got := SummarizeSeason([]dataset.ProjectionRecord{{Name: "A", Team: "X", Position: "BAT", MatchNumber: 1, FPoints: v}})
	require.Len(t, got, 1)
	assert.Equal(t, v*14, got[0].TotalFPoints)
}

func TestSummarizeSeasonMeanTimesFourteen(t *testing.T) {
	subset := []dataset.ProjectionRecord{
		{Name: "A", Team: "X", Position: "BAT", MatchNumber: 1, FPoints: 50.0},
		{Name: "A", Team: "X", Position: "BAT", MatchNumber: 2, FPoints: 30.0},
	}
	got := SummarizeSeason(Filter(subset, Selection{}))
	assert.Equal(t, []SeasonSummary{{Name: "A", Team: "X", Position: "BAT", TotalFPoints: 560.0}}, got)
}

func TestSummarizeSeasonOrdering(t *testing.T) {
	got := SummarizeSeason(sampleRecords())
	require.Len(t, got, 4)

	for i := 0; i+1 < len(got); i++ {
		assert.GreaterOrEqual(t, got[i].TotalFPoints, got[i+1].TotalFPoints)
	}
	assert.Equal(t, "R Jadeja", got[0].Name)
	assert.Equal(t, 58.5*14, got[0].TotalFPoints)
	assert.Equal(t, "MS Dhoni", got[3].Name)
}

func TestSummarizeSeasonTiesOrderedByKey(t *testing.T) {
	subset := []dataset.ProjectionRecord{
		{Name: "B", Team: "T", Position: "BAT", MatchNumber: 1, FPoints: 10},
		{Name: "A", Team: "T", Position: "BAT", MatchNumber: 1, FPoints: 10},
		{Name: "C", Team: "T", Position: "BAT", MatchNumber: 1, FPoints: 20},
		{Name: "A", Team: "S", Position: "BOWL", MatchNumber: 2, FPoints: 10},
		{Name: "A", Team: "S", Position: "AR", MatchNumber: 3, FPoints: 10},
	}
	got := SummarizeSeason(subset)
	require.Len(t, got, 5)

	keys := make([]string, len(got))
	for i, s := range got {
		keys[i] = s.Name + "/" + s.Team + "/" + s.Position
	}
	assert.Equal(t, []string{"C/T/BAT", "A/S/AR", "A/S/BOWL", "A/T/BAT", "B/T/BAT"}, keys)
}

func TestSummarizeSeasonGroupsOnTeamAndPosition(t *testing.T) {
	subset := []dataset.ProjectionRecord{
		{Name: "A", Team: "X", Position: "BAT", MatchNumber: 1, FPoints: 10},
		{Name: "A", Team: "Y", Position: "BAT", MatchNumber: 2, FPoints: 20},
		{Name: "A", Team: "Y", Position: "AR", MatchNumber: 3, FPoints: 30},
	}
	assert.Len(t, SummarizeSeason(subset), 3)
}

func TestMatchDetailOrdering(t *testing.T) {
	got := MatchDetail(sampleRecords())
	require.Len(t, got, 6)

	for i := 0; i+1 < len(got); i++ {
		require.LessOrEqual(t, got[i].MatchNumber, got[i+1].MatchNumber)
		if got[i].MatchNumber == got[i+1].MatchNumber {
			assert.GreaterOrEqual(t, got[i].FPoints, got[i+1].FPoints)
		}
	}

	order := make([]string, len(got))
	for i, r := range got {
		order[i] = r.Name
	}
	// Equal points in match 2 keep input order.
	assert.Equal(t, []string{"R Jadeja", "V Kohli", "MS Dhoni", "V Kohli", "A Singh", "R Jadeja"}, order)
}

func TestMatchDetailRounding(t *testing.T) {
	got := MatchDetail(sampleRecords())
	require.Len(t, got, 6)

	jadeja, kohli, dhoni, singh := got[0], got[1], got[2], got[4]

	assert.Equal(t, 52.314, kohli.FPoints, "points keep full precision")
	assert.Equal(t, 39, kohli.Runs)
	assert.Equal(t, 0, kohli.Wickets)
	assert.Equal(t, 18, jadeja.Runs, "18.5 rounds half to even")
	assert.Equal(t, 2, jadeja.Wickets, "1.5 rounds half to even")
	assert.Equal(t, 22, dhoni.Runs, "22.5 rounds half to even")
	assert.Equal(t, 2, singh.Runs)
	assert.Equal(t, 2, singh.Wickets, "2.5 rounds half to even")
	assert.Equal(t, "PBKS", singh.Team)
	assert.Equal(t, "RCB", singh.Opponent)
}

func TestEmptySubset(t *testing.T) {
	subset := Filter(sampleRecords(), Selection{Teams: []string{"X"}})
	assert.Empty(t, subset)

	season := SummarizeSeason(subset)
	assert.NotNil(t, season)
	assert.Empty(t, season)

	detail := MatchDetail(subset)
	assert.NotNil(t, detail)
	assert.Empty(t, detail)
}

func TestWinProbabilityView(t *testing.T) {
	records := []dataset.WinProbabilityRecord{
		{MatchNumber: 1, Team1Name: "CSK", Team2Name: "RCB", Team1WinPct: 55.7, Team2WinPct: 44.3},
		{MatchNumber: 2, Team1Name: "MI", Team2Name: "GT", Team1WinPct: 99.99, Team2WinPct: 0.01},
		{MatchNumber: 3, Team1Name: "KKR", Team2Name: "SRH", Team1WinPct: 100, Team2WinPct: 0},
	}
	got := WinProbabilityView(records)
	require.Len(t, got, 3)

	assert.Equal(t, WinProbabilityRow{Match: 1, HomeTeam: "CSK", AwayTeam: "RCB", HomeTeamWinPercentage: 55, AwayTeamWinPercentage: 44}, got[0])
	assert.Equal(t, 99, got[1].HomeTeamWinPercentage, "truncated, not rounded")

	for i, row := range got {
		assert.Equal(t, records[i].MatchNumber, row.Match)
		assert.True(t, row.HomeTeamWinPercentage >= 0 && row.HomeTeamWinPercentage <= 100)
		assert.True(t, row.AwayTeamWinPercentage >= 0 && row.AwayTeamWinPercentage <= 100)
		assert.Equal(t, int(records[i].Team1WinPct), row.HomeTeamWinPercentage)
		assert.Equal(t, int(records[i].Team2WinPct), row.AwayTeamWinPercentage)
	}
}

func TestBuildFacets(t *testing.T) {
	f := BuildFacets(sampleRecords())
	assert.Equal(t, []string{"A Singh", "MS Dhoni", "R Jadeja", "V Kohli"}, f.Names)
	assert.Equal(t, []int{1, 2, 3}, f.MatchNumbers)
	assert.Equal(t, []string{"AR", "BAT", "BOWL", "WK"}, f.Positions)
	assert.Equal(t, []string{"CSK", "PBKS", "RCB"}, f.Teams)
}

func TestParseSelection(t *testing.T) {
	v := url.Values{
		ParamName:     {"V Kohli", "", "R Jadeja"},
		ParamMatch:    {"2"},
		ParamPosition: {"BAT"},
		ParamTeam:     {"RCB", "CSK"},
	}
	sel, err := ParseSelection(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"V Kohli", "R Jadeja"}, sel.Names)
	require.NotNil(t, sel.MatchNumber)
	assert.Equal(t, 2, *sel.MatchNumber)
	assert.Equal(t, []string{"BAT"}, sel.Positions)
	assert.Equal(t, []string{"RCB", "CSK"}, sel.Teams)

	back, err := ParseSelection(sel.Values())
	require.NoError(t, err)
	assert.Equal(t, sel, back)

	for _, m := range []string{"", "All", "all"} {
		sel, err := ParseSelection(url.Values{ParamMatch: {m}})
		require.NoError(t, err)
		assert.Nil(t, sel.MatchNumber)
		assert.True(t, sel.IsEmpty())
	}

	_, err = ParseSelection(url.Values{ParamMatch: {"two"}})
	assert.Error(t, err)
}

func TestParseSelectionKeepsPaddedValues(t *testing.T) {
	records := []dataset.ProjectionRecord{
		{Name: " Padded ", MatchNumber: 1, Position: "BAT", Team: "X", FPoints: 10},
		{Name: "Padded", MatchNumber: 1, Position: "BAT", Team: "Y", FPoints: 20},
	}

	sel, err := ParseSelection(url.Values{ParamName: {" Padded "}})
	require.NoError(t, err)
	assert.Equal(t, []string{" Padded "}, sel.Names)

	got := Filter(records, sel)
	require.Len(t, got, 1)
	assert.Equal(t, "X", got[0].Team)
}

func TestEngineProjection(t *testing.T) {
	ds, err := dataset.New("test", sampleRecords(), []dataset.WinProbabilityRecord{
		{MatchNumber: 1, Team1Name: "CSK", Team2Name: "RCB", Team1WinPct: 50.5, Team2WinPct: 49.5},
	})
	require.NoError(t, err)

	eng := NewEngine(ds)
	ctx := context.Background()

	p := eng.Projection(ctx, Selection{Teams: []string{"RCB"}})
	require.Len(t, p.Season, 1)
	assert.Equal(t, "V Kohli", p.Season[0].Name)
	assert.InDelta(t, (52.314+44.02)/2*14, p.Season[0].TotalFPoints, 1e-9)
	assert.Len(t, p.Matches, 2)
	assert.Equal(t, []string{"RCB"}, p.Selection.Teams)

	wp := eng.WinProbability(ctx)
	require.Len(t, wp, 1)
	assert.Equal(t, 50, wp[0].HomeTeamWinPercentage)

	assert.Len(t, eng.Facets(ctx).Names, 4)
	assert.Len(t, ds.Projections(), 6, "queries do not modify the dataset")
}

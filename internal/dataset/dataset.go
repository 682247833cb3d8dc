// Package dataset loads the projection and win probability relations and holds
// them as an immutable snapshot for the lifetime of the process.
package dataset

import (
	"slices"

	"github.com/pkg/errors"
)

// ProjectionRecord is one player's projected line for one match.
type ProjectionRecord struct {
	Name        string  `csv:"name" json:"name"`
	MatchNumber int     `csv:"matchnumber" json:"matchnumber"`
	Position    string  `csv:"position" json:"position"`
	Team        string  `csv:"team" json:"team"`
	Opponent    string  `csv:"opponent" json:"opponent"`
	FPoints     float64 `csv:"fpoints_projected" json:"fpoints_projected"`
	Runs        float64 `csv:"runs_projected" json:"runs_projected"`
	Wickets     float64 `csv:"wickets_projected" json:"wickets_projected"`
}

// WinProbabilityRecord is the simulated outcome of one match.
// Team1WinPct and Team2WinPct are percentages in [0, 100]; they are expected
// to sum to roughly 100 but that is not enforced.
type WinProbabilityRecord struct {
	MatchNumber int     `csv:"match_number" json:"match_number"`
	Team1Name   string  `csv:"team1name" json:"team1name"`
	Team2Name   string  `csv:"team2name" json:"team2name"`
	Team1WinPct float64 `csv:"team1_win_percentage" json:"team1_win_percentage"`
	Team2WinPct float64 `csv:"team2_win_percentage" json:"team2_win_percentage"`
}

// Required column names, in the order the upstream files write them.
var (
	ProjectionColumns = []string{
		"name", "matchnumber", "position", "team", "opponent",
		"fpoints_projected", "runs_projected", "wickets_projected",
	}
	WinProbabilityColumns = []string{
		"match_number", "team1name", "team2name",
		"team1_win_percentage", "team2_win_percentage",
	}
)

// Columns that must hold a value in every row. An empty cell would otherwise
// decode as zero.
var (
	projectionNumeric     = []string{"matchnumber", "fpoints_projected", "runs_projected", "wickets_projected"}
	winProbabilityNumeric = []string{"match_number", "team1_win_percentage", "team2_win_percentage"}
)

// Dataset is the read-only snapshot every query runs against.
type Dataset struct {
	projections    []ProjectionRecord
	winProbability []WinProbabilityRecord
	source         string
}

// New builds a Dataset from already parsed records. It copies its inputs and
// rejects a relation where a (name, matchnumber) pair repeats.
func New(source string, projections []ProjectionRecord, winProbability []WinProbabilityRecord) (*Dataset, error) {
	type key struct {
		name  string
		match int
	}
	seen := make(map[key]int, len(projections))
	for i, p := range projections {
		k := key{p.Name, p.MatchNumber}
		if first, ok := seen[k]; ok {
			return nil, errors.Wrapf(ErrParse, "%s: duplicate projection for %q in match %d (rows %d and %d)",
				source, p.Name, p.MatchNumber, first+1, i+1)
		}
		seen[k] = i
	}

	return &Dataset{
		projections:    slices.Clone(projections),
		winProbability: slices.Clone(winProbability),
		source:         source,
	}, nil
}

// Projections returns a copy of the projection relation in file order.
func (d *Dataset) Projections() []ProjectionRecord {
	return slices.Clone(d.projections)
}

// WinProbabilities returns a copy of the win probability relation in file order.
func (d *Dataset) WinProbabilities() []WinProbabilityRecord {
	return slices.Clone(d.winProbability)
}

// Source describes where the snapshot was read from.
func (d *Dataset) Source() string { return d.source }

// Len reports the row counts of both relations.
func (d *Dataset) Len() (projections, winProbability int) {
	return len(d.projections), len(d.winProbability)
}

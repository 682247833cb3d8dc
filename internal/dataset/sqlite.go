package dataset

import (
	"database/sql"
	"io/fs"
	"os"

	"github.com/pkg/errors"

	_ "github.com/glebarez/go-sqlite"
)

// Table names used when both relations ship in one sqlite file.
const (
	ProjectionTable     = "fantasy_projections"
	WinProbabilityTable = "win_probability"
)

// LoadSQLite reads both relations from a sqlite database file. The tables use
// the same column names as the CSV files. The connection is query-only.
func LoadSQLite(path string) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(ErrFileNotFound, path)
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)")
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer db.Close()

	projections, err := queryProjections(db)
	if err != nil {
		return nil, errors.Wrapf(ErrParse, "%s: %s: %v", path, ProjectionTable, err)
	}
	winProbability, err := queryWinProbability(db)
	if err != nil {
		return nil, errors.Wrapf(ErrParse, "%s: %s: %v", path, WinProbabilityTable, err)
	}

	return New(path, projections, winProbability)
}

func queryProjections(db *sql.DB) ([]ProjectionRecord, error) {
	rows, err := db.Query(`
		SELECT name, matchnumber, position, team, opponent,
		       fpoints_projected, runs_projected, wickets_projected
		FROM ` + ProjectionTable + ` ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProjectionRecord
	for rows.Next() {
		var p ProjectionRecord
		if err := rows.Scan(&p.Name, &p.MatchNumber, &p.Position, &p.Team, &p.Opponent,
			&p.FPoints, &p.Runs, &p.Wickets); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func queryWinProbability(db *sql.DB) ([]WinProbabilityRecord, error) {
	rows, err := db.Query(`
		SELECT match_number, team1name, team2name, team1_win_percentage, team2_win_percentage
		FROM ` + WinProbabilityTable + ` ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WinProbabilityRecord
	for rows.Next() {
		var w WinProbabilityRecord
		if err := rows.Scan(&w.MatchNumber, &w.Team1Name, &w.Team2Name, &w.Team1WinPct, &w.Team2WinPct); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

package dataset

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectionsCSV = `name,matchnumber,position,team,opponent,fpoints_projected,runs_projected,wickets_projected
V Kohli,1,BAT,RCB,CSK,52.314,38.6,0.0
R Jadeja,1,AR,CSK,RCB,47.9,18.5,1.5
V Kohli,2,BAT,RCB,PBKS,44.02,31.2,0.0
`

const winProbabilityCSV = `match_number,team1name,team2name,team1_win_percentage,team2_win_percentage
1,CSK,RCB,55.7,44.3
2,PBKS,RCB,49.9,50.1
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	proj := writeFile(t, dir, "fantasy_projections.csv", projectionsCSV)
	win := writeFile(t, dir, "win_probability.csv", winProbabilityCSV)

	ds, err := LoadCSV(proj, win)
	require.NoError(t, err)

	p := ds.Projections()
	require.Len(t, p, 3)
	assert.Equal(t, ProjectionRecord{
		Name: "V Kohli", MatchNumber: 1, Position: "BAT", Team: "RCB", Opponent: "CSK",
		FPoints: 52.314, Runs: 38.6, Wickets: 0,
	}, p[0])
	assert.Equal(t, "R Jadeja", p[1].Name)

	w := ds.WinProbabilities()
	require.Len(t, w, 2)
	assert.Equal(t, WinProbabilityRecord{
		MatchNumber: 2, Team1Name: "PBKS", Team2Name: "RCB", Team1WinPct: 49.9, Team2WinPct: 50.1,
	}, w[1])

	np, nw := ds.Len()
	assert.Equal(t, 3, np)
	assert.Equal(t, 2, nw)
}

func TestLoadCSVColumnOrderIsFree(t *testing.T) {
	dir := t.TempDir()
	proj := writeFile(t, dir, "p.csv", `team,name,opponent,matchnumber,position,wickets_projected,runs_projected,fpoints_projected,extra
MI,R Sharma,GT,4,BAT,0.1,33.4,40.5,ignored
`)
	win := writeFile(t, dir, "w.csv", winProbabilityCSV)

	ds, err := LoadCSV(proj, win)
	require.NoError(t, err)
	p := ds.Projections()
	require.Len(t, p, 1)
	assert.Equal(t, "R Sharma", p[0].Name)
	assert.Equal(t, 4, p[0].MatchNumber)
	assert.Equal(t, 40.5, p[0].FPoints)
}

func TestLoadCSVMissingFile(t *testing.T) {
	dir := t.TempDir()
	win := writeFile(t, dir, "w.csv", winProbabilityCSV)

	_, err := LoadCSV(filepath.Join(dir, "nope.csv"), win)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.Contains(t, err.Error(), "nope.csv")

	proj := writeFile(t, dir, "p.csv", projectionsCSV)
	_, err = LoadCSV(proj, filepath.Join(dir, "missing.csv"))
	assert.True(t, errors.Is(err, ErrFileNotFound))
}

func TestLoadCSVParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":           "",
		"wrong delimiter": "name;matchnumber;position;team;opponent;fpoints_projected;runs_projected;wickets_projected\nA;1;BAT;X;Y;1;1;1\n",
		"missing column":  "name,matchnumber,position,team,opponent,fpoints_projected,runs_projected\nA,1,BAT,X,Y,1,1\n",
		"short row":       "name,matchnumber,position,team,opponent,fpoints_projected,runs_projected,wickets_projected\nA,1,BAT,X,Y,1,1\n",
		"bad number":      "name,matchnumber,position,team,opponent,fpoints_projected,runs_projected,wickets_projected\nA,one,BAT,X,Y,1,1,1\n",
		"bad encoding":    "name,matchnumber,position,team,opponent,fpoints_projected,runs_projected,wickets_projected\n\xff\xfe,1,BAT,X,Y,1,1,1\n",
		"empty points":    "name,matchnumber,position,team,opponent,fpoints_projected,runs_projected,wickets_projected\nA,3,BAT,X,Y,,1,1\n",
		"blank match":     "name,matchnumber,position,team,opponent,fpoints_projected,runs_projected,wickets_projected\nA, ,BAT,X,Y,1,1,1\n",
		"duplicate":       "name,matchnumber,position,team,opponent,fpoints_projected,runs_projected,wickets_projected\nA,1,BAT,X,Y,1,1,1\nA,1,BAT,X,Y,2,2,2\n",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			proj := writeFile(t, dir, "p.csv", body)
			win := writeFile(t, dir, "w.csv", winProbabilityCSV)

			ds, err := LoadCSV(proj, win)
			require.Error(t, err)
			assert.Nil(t, ds)
			assert.True(t, errors.Is(err, ErrParse), "got %v", err)
		})
	}
}

func TestLoadCSVRejectsEmptyWinPercentage(t *testing.T) {
	dir := t.TempDir()
	proj := writeFile(t, dir, "p.csv", projectionsCSV)
	win := writeFile(t, dir, "w.csv", "match_number,team1name,team2name,team1_win_percentage,team2_win_percentage\n1,CSK,RCB,55.7,\n")

	_, err := LoadCSV(proj, win)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse), "got %v", err)
	assert.Contains(t, err.Error(), "team2_win_percentage")
}

func TestLoadCSVStripsBOM(t *testing.T) {
	dir := t.TempDir()
	proj := writeFile(t, dir, "p.csv", "\xEF\xBB\xBF"+projectionsCSV)
	win := writeFile(t, dir, "w.csv", winProbabilityCSV)

	ds, err := LoadCSV(proj, win)
	require.NoError(t, err)
	assert.Equal(t, "V Kohli", ds.Projections()[0].Name)
}

func TestDatasetIsImmutable(t *testing.T) {
	ds, err := New("mem", []ProjectionRecord{{Name: "A", MatchNumber: 1, FPoints: 10}}, nil)
	require.NoError(t, err)

	p := ds.Projections()
	p[0].FPoints = 99
	assert.Equal(t, 10.0, ds.Projections()[0].FPoints)
	assert.Equal(t, "mem", ds.Source())
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	stmts := []string{
		`CREATE TABLE fantasy_projections (name TEXT, matchnumber INTEGER, position TEXT, team TEXT,
			opponent TEXT, fpoints_projected REAL, runs_projected REAL, wickets_projected REAL)`,
		`CREATE TABLE win_probability (match_number INTEGER, team1name TEXT, team2name TEXT,
			team1_win_percentage REAL, team2_win_percentage REAL)`,
		`INSERT INTO fantasy_projections VALUES ('V Kohli', 1, 'BAT', 'RCB', 'CSK', 52.5, 38.6, 0)`,
		`INSERT INTO fantasy_projections VALUES ('R Jadeja', 1, 'AR', 'CSK', 'RCB', 47.9, 18.5, 1.5)`,
		`INSERT INTO win_probability VALUES (1, 'CSK', 'RCB', 55.7, 44.3)`,
	}
	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	ds, err := LoadSQLite(path)
	require.NoError(t, err)

	p := ds.Projections()
	require.Len(t, p, 2)
	assert.Equal(t, "V Kohli", p[0].Name)
	assert.Equal(t, 52.5, p[0].FPoints)
	assert.Equal(t, 1.5, p[1].Wickets)

	w := ds.WinProbabilities()
	require.Len(t, w, 1)
	assert.Equal(t, 44.3, w[0].Team2WinPct)
}

func TestLoadSQLiteErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSQLite(filepath.Join(dir, "absent.db"))
	assert.True(t, errors.Is(err, ErrFileNotFound))
	_, statErr := os.Stat(filepath.Join(dir, "absent.db"))
	assert.True(t, os.IsNotExist(statErr), "loader must not create the database")

	path := filepath.Join(dir, "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE unrelated (id INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = LoadSQLite(path)
	assert.True(t, errors.Is(err, ErrParse), "got %v", err)
}

package main

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"

	"github.com/a-h/templ"

	"fantasy-projection/internal/logger"
	"fantasy-projection/internal/query"
	"fantasy-projection/templates"
)

type server struct {
	runner query.Runner
}

func newMux(runner query.Runner) *http.ServeMux {
	s := &server{runner: runner}
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("/", s.projectionPageHandler)
	mux.HandleFunc("/win-probability", s.winProbabilityPageHandler)

	// JSON mirror of the same tables
	mux.HandleFunc("/api/season", s.seasonAPIHandler)
	mux.HandleFunc("/api/matches", s.matchesAPIHandler)
	mux.HandleFunc("/api/win-probability", s.winProbabilityAPIHandler)
	mux.HandleFunc("/api/facets", s.facetsAPIHandler)

	return mux
}

func onlyGET(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		http.Error(w, "Only GET allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// selection reads the filter facets from the query string, answering 400 on
// a malformed value.
func selection(w http.ResponseWriter, r *http.Request) (query.Selection, bool) {
	sel, err := query.ParseSelection(r.URL.Query())
	if err != nil {
		logger.Warn(r.Context(), "Rejected filter selection", "query", r.URL.RawQuery, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return query.Selection{}, false
	}
	return sel, true
}

func (s *server) projectionPageHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !onlyGET(w, r) {
		return
	}
	sel, ok := selection(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	p := s.runner.Projection(ctx, sel)
	data := templates.ProjectionPageData{
		Filters: filterForm(s.runner.Facets(ctx), sel),
		Season:  toSeasonRows(p.Season),
		Matches: toMatchRows(p.Matches),
	}
	templ.Handler(templates.ProjectionPage(data)).ServeHTTP(w, r)
}

func (s *server) winProbabilityPageHandler(w http.ResponseWriter, r *http.Request) {
	if !onlyGET(w, r) {
		return
	}
	data := templates.WinProbabilityPageData{
		Rows: toWinRows(s.runner.WinProbability(r.Context())),
	}
	templ.Handler(templates.WinProbabilityPage(data)).ServeHTTP(w, r)
}

func (s *server) seasonAPIHandler(w http.ResponseWriter, r *http.Request) {
	if !onlyGET(w, r) {
		return
	}
	sel, ok := selection(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, s.runner.Projection(r.Context(), sel).Season)
}

func (s *server) matchesAPIHandler(w http.ResponseWriter, r *http.Request) {
	if !onlyGET(w, r) {
		return
	}
	sel, ok := selection(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, s.runner.Projection(r.Context(), sel).Matches)
}

func (s *server) winProbabilityAPIHandler(w http.ResponseWriter, r *http.Request) {
	if !onlyGET(w, r) {
		return
	}
	writeJSON(w, r, s.runner.WinProbability(r.Context()))
}

func (s *server) facetsAPIHandler(w http.ResponseWriter, r *http.Request) {
	if !onlyGET(w, r) {
		return
	}
	writeJSON(w, r, s.runner.Facets(r.Context()))
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.ErrorWithErr(r.Context(), "Failed to encode response", err, "path", r.URL.Path)
	}
}

// filterForm builds the sidebar options, marking what sel has chosen.
func filterForm(f query.Facets, sel query.Selection) templates.FilterForm {
	form := templates.FilterForm{
		Names:     options(f.Names, sel.Names),
		Positions: options(f.Positions, sel.Positions),
		Teams:     options(f.Teams, sel.Teams),
	}

	form.Matches = append(form.Matches, templates.FilterOption{Value: query.AllMatches, Selected: sel.MatchNumber == nil})
	for _, m := range f.MatchNumbers {
		form.Matches = append(form.Matches, templates.FilterOption{
			Value:    strconv.Itoa(m),
			Selected: sel.MatchNumber != nil && *sel.MatchNumber == m,
		})
	}
	return form
}

func options(values, selected []string) []templates.FilterOption {
	out := make([]templates.FilterOption, 0, len(values))
	for _, v := range values {
		out = append(out, templates.FilterOption{Value: v, Selected: slices.Contains(selected, v)})
	}
	return out
}

func toSeasonRows(in []query.SeasonSummary) []templates.SeasonRow {
	out := make([]templates.SeasonRow, len(in))
	for i, s := range in {
		out[i] = templates.SeasonRow{
			Name:         s.Name,
			Team:         s.Team,
			Position:     s.Position,
			TotalFPoints: s.TotalFPoints,
		}
	}
	return out
}

func toMatchRows(in []query.MatchDetailRow) []templates.MatchRow {
	out := make([]templates.MatchRow, len(in))
	for i, m := range in {
		out[i] = templates.MatchRow(m)
	}
	return out
}

func toWinRows(in []query.WinProbabilityRow) []templates.WinRow {
	out := make([]templates.WinRow, len(in))
	for i, w := range in {
		out[i] = templates.WinRow{
			Match:      w.Match,
			HomeTeam:   w.HomeTeam,
			AwayTeam:   w.AwayTeam,
			HomeWinPct: w.HomeTeamWinPercentage,
			AwayWinPct: w.AwayTeamWinPercentage,
		}
	}
	return out
}

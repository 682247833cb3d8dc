package query

import (
	"context"

	"fantasy-projection/internal/dataset"
)

// Runner answers the dashboard's queries against one dataset snapshot.
type Runner interface {
	Projection(ctx context.Context, sel Selection) Projection
	WinProbability(ctx context.Context) []WinProbabilityRow
	Facets(ctx context.Context) Facets
}

// Engine is the Runner backed by an in-memory Dataset.
type Engine struct {
	ds *dataset.Dataset
}

var _ Runner = (*Engine)(nil)

// NewEngine returns an Engine reading from ds. ds is never modified.
func NewEngine(ds *dataset.Dataset) *Engine {
	return &Engine{ds: ds}
}

// Projection runs filter, season summary and match detail in one pass.
func (e *Engine) Projection(_ context.Context, sel Selection) Projection {
	subset := Filter(e.ds.Projections(), sel)
	return Projection{
		Selection: sel,
		Season:    SummarizeSeason(subset),
		Matches:   MatchDetail(subset),
	}
}

func (e *Engine) WinProbability(_ context.Context) []WinProbabilityRow {
	return WinProbabilityView(e.ds.WinProbabilities())
}

func (e *Engine) Facets(_ context.Context) Facets {
	return BuildFacets(e.ds.Projections())
}

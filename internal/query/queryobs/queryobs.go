package queryobs

import (
	"context"
	"log/slog"

	"fantasy-projection/internal/logger"
	"fantasy-projection/internal/query"
)

type observableRunner struct {
	runner query.Runner
}

var _ query.Runner = (*observableRunner)(nil)

// Wrap returns a Runner that traces and logs every call to runner.
func Wrap(runner query.Runner) query.Runner {
	return &observableRunner{runner: runner}
}

func (o *observableRunner) Projection(ctx context.Context, sel query.Selection) query.Projection {
	op := logger.StartOperation(ctx, "query.Projection",
		"names", len(sel.Names),
		"positions", len(sel.Positions),
		"teams", len(sel.Teams),
		"match_filtered", sel.MatchNumber != nil,
	)

	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug(op.Context(), "Projection selection", "selection", sel.Values().Encode())
	}

	p := o.runner.Projection(op.Context(), sel)

	if len(p.Matches) == 0 && !sel.IsEmpty() {
		logger.Info(op.Context(), "Filter matched no projections", "selection", sel.Values().Encode())
	}
	op.End("season_rows", len(p.Season), "match_rows", len(p.Matches))
	return p
}

func (o *observableRunner) WinProbability(ctx context.Context) []query.WinProbabilityRow {
	op := logger.StartOperation(ctx, "query.WinProbability")
	rows := o.runner.WinProbability(op.Context())
	op.End("rows", len(rows))
	return rows
}

func (o *observableRunner) Facets(ctx context.Context) query.Facets {
	op := logger.StartOperation(ctx, "query.Facets")
	f := o.runner.Facets(op.Context())
	op.End("names", len(f.Names), "matches", len(f.MatchNumbers))
	return f
}

package main

import (
	"context"

	"fantasy-projection/internal/config"
	"fantasy-projection/internal/dataset"
	"fantasy-projection/internal/logger"
)

// loadDataset reads the snapshot from whichever source the config selects.
// Relative paths resolve against data.dir, which DATA_DIR can point at a
// mounted volume.
func loadDataset(ctx context.Context, cfg *config.Config) (*dataset.Dataset, error) {
	op := logger.StartOperation(ctx, "dataset.Load", "source", cfg.Data.Source)

	var (
		ds  *dataset.Dataset
		err error
	)
	switch cfg.Data.Source {
	case config.SourceSQLite:
		ds, err = dataset.LoadSQLite(cfg.Resolve(cfg.Data.SQLitePath))
	default:
		ds, err = dataset.LoadCSV(
			cfg.Resolve(cfg.Data.ProjectionsPath),
			cfg.Resolve(cfg.Data.WinProbabilityPath),
		)
	}
	if err != nil {
		op.EndWithError(err)
		return nil, err
	}

	projections, winProbability := ds.Len()
	op.End("projections", projections, "win_probability", winProbability)
	logger.Info(op.Context(), "📊 Dataset loaded",
		"source", ds.Source(),
		"projections", projections,
		"win_probability", winProbability,
	)
	return ds, nil
}

package cli

import (
	"context"
	"errors"

	"github.com/SeamusWaldron/minicube"
	"github.com/SeamusWaldron/minicube/internal/storage"
)

// openHistory opens and migrates the configured history database.
func openHistory(ctx context.Context) (*storage.DB, *storage.RunRepository, error) {
	path := appConfig.DBPath
	if path == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if err := db.MigrateUp(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	logger.Debug("history database ready", "path", db.Path())
	return db, storage.NewRunRepository(db), nil
}

// newRun describes the outcome of applying sequence to start. applyErr is
// the error ApplySequence returned, if any.
func newRun(label string, start minicube.State, sequence string, end minicube.State, applyErr error) storage.Run {
	run := storage.Run{
		Label:    label,
		Start:    start,
		Sequence: sequence,
		End:      end,
		Solved:   applyErr == nil && end.IsSolved(),
	}

	var seqErr *minicube.SequenceError
	if errors.As(applyErr, &seqErr) {
		idx := seqErr.Index
		run.FailedIndex = &idx
	}
	if applyErr != nil {
		text := applyErr.Error()
		run.ErrorText = &text
	}
	return run
}

// recordRuns stores runs in one connection and returns their IDs.
func recordRuns(ctx context.Context, runs ...storage.Run) ([]string, error) {
	db, repo, err := openHistory(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ids := make([]string, 0, len(runs))
	for _, run := range runs {
		id, err := repo.Create(ctx, run)
		if err != nil {
			return ids, err
		}
		logger.Info("run recorded", "id", id, "label", run.Label, "solved", run.Solved)
		ids = append(ids, id)
	}
	return ids, nil
}

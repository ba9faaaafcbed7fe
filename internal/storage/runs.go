package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/minicube"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("storage: run not found")

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one recorded application of a sequence to a start state.
// FailedIndex is set when the sequence stopped at an unknown token; End is
// then the state after the tokens before it.
type Run struct {
	RunID       string
	CreatedAt   time.Time
	Label       string
	Start       minicube.State
	Sequence    string
	End         minicube.State
	Solved      bool
	FailedIndex *int
	ErrorText   *string
}

// RunRepository provides CRUD operations for runs.
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create stores a run and the tokens that were applied, returning the new
// run ID. RunID and CreatedAt on the argument are ignored.
func (r *RunRepository) Create(ctx context.Context, run Run) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	startJSON, err := json.Marshal(run.Start)
	if err != nil {
		return "", fmt.Errorf("failed to encode start state: %w", err)
	}
	endJSON, err := json.Marshal(run.End)
	if err != nil {
		return "", fmt.Errorf("failed to encode end state: %w", err)
	}

	var labelPtr *string
	if run.Label != "" {
		labelPtr = &run.Label
	}

	tokens := strings.Fields(run.Sequence)
	if run.FailedIndex != nil && *run.FailedIndex < len(tokens) {
		tokens = tokens[:*run.FailedIndex]
	}

	err = r.db.Transaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO runs (run_id, created_at, label, start_state, sequence, end_state, solved, failed_index, error_text, end_twist)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, createdAt.Format(timeLayout), labelPtr, string(startJSON), run.Sequence, string(endJSON),
			run.Solved, run.FailedIndex, run.ErrorText, run.End.Twist())
		if err != nil {
			return fmt.Errorf("failed to create run: %w", err)
		}

		for i, token := range tokens {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO run_moves (run_id, move_index, notation)
				VALUES (?, ?, ?)
			`, id, i, token)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

const runColumns = `run_id, created_at, label, start_state, sequence, end_state, solved, failed_index, error_text`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run          Run
		createdAtStr string
		label        sql.NullString
		startJSON    string
		endJSON      string
		failedIndex  sql.NullInt64
		errorText    sql.NullString
	)

	err := row.Scan(&run.RunID, &createdAtStr, &label, &startJSON, &run.Sequence, &endJSON,
		&run.Solved, &failedIndex, &errorText)
	if err != nil {
		return nil, err
	}

	run.CreatedAt, err = time.Parse(timeLayout, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(startJSON), &run.Start); err != nil {
		return nil, fmt.Errorf("failed to decode start state: %w", err)
	}
	if err := json.Unmarshal([]byte(endJSON), &run.End); err != nil {
		return nil, fmt.Errorf("failed to decode end state: %w", err)
	}

	run.Label = label.String
	if failedIndex.Valid {
		idx := int(failedIndex.Int64)
		run.FailedIndex = &idx
	}
	if errorText.Valid {
		run.ErrorText = &errorText.String
	}

	return &run, nil
}

// Get retrieves a run by ID.
func (r *RunRepository) Get(ctx context.Context, runID string) (*Run, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first.
func (r *RunRepository) List(ctx context.Context, limit int) ([]Run, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+runColumns+`
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

// Moves returns the applied tokens of a run in order.
func (r *RunRepository) Moves(ctx context.Context, runID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT notation FROM run_moves
		WHERE run_id = ?
		ORDER BY move_index
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []string
	for rows.Next() {
		var notation string
		if err := rows.Scan(&notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, notation)
	}
	return moves, rows.Err()
}

// Count returns the number of recorded runs.
func (r *RunRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}

// Delete removes a run and its moves.
func (r *RunRepository) Delete(ctx context.Context, runID string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("run not found")

// SaveRun stores a run and its ranked results. The run ID and creation time
// are assigned here if unset.
func (db *DB) SaveRun(ctx context.Context, run *Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	return db.Transaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO runs (id, preferences_path, dataset_path, weights_path, recipe_count, top_n, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, run.ID, run.PreferencesPath, run.DatasetPath, run.WeightsPath, run.RecipeCount, run.TopN, run.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		for _, res := range run.Results {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO run_results (run_id, position, recipe_id, name, accuracy)
				VALUES (?, ?, ?, ?, ?)
			`, run.ID, res.Rank, res.RecipeID, res.Name, res.Accuracy)
			if err != nil {
				return fmt.Errorf("failed to insert run result: %w", err)
			}
		}

		return nil
	})
}

// ListRuns returns saved runs, newest first. A limit of 0 means no limit.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, preferences_path, dataset_path, COALESCE(weights_path, ''), recipe_count, top_n, created_at
		FROM runs
		ORDER BY created_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.PreferencesPath, &r.DatasetPath, &r.WeightsPath,
			&r.RecipeCount, &r.TopN, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// GetRun returns one run with its ranked results.
func (db *DB) GetRun(ctx context.Context, id string) (*Run, error) {
	var r Run
	err := db.QueryRowContext(ctx, `
		SELECT id, preferences_path, dataset_path, COALESCE(weights_path, ''), recipe_count, top_n, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&r.ID, &r.PreferencesPath, &r.DatasetPath, &r.WeightsPath,
		&r.RecipeCount, &r.TopN, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT position, recipe_id, name, accuracy
		FROM run_results
		WHERE run_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get run results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var res RunResult
		if err := rows.Scan(&res.Rank, &res.RecipeID, &res.Name, &res.Accuracy); err != nil {
			return nil, fmt.Errorf("failed to scan run result: %w", err)
		}
		r.Results = append(r.Results, res)
	}

	return &r, rows.Err()
}

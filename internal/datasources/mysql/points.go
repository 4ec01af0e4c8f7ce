package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nairobell/feed/internal/datasources"
)

var (
	_ datasources.PointsLedger = (*Repository)(nil)
	_ datasources.PointsGetter = (*Repository)(nil)
)

const (
	addPointsQuery = "INSERT INTO user_points (user_id, total_points, updated_at) VALUES (?, GREATEST(?, 0), ?) " +
		"ON DUPLICATE KEY UPDATE total_points = GREATEST(total_points + ?, 0), updated_at = VALUES(updated_at)"
	getPointsQuery     = "SELECT total_points FROM user_points WHERE user_id = ?"
	getPointsForUpdate = getPointsQuery + " FOR UPDATE"
)

// AddPoints atomically adds delta to the user's total. Totals never drop
// below zero.
func (r *Repository) AddPoints(ctx context.Context, userID string, delta int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, addPointsQuery, userID, delta, r.now(), delta); err != nil {
		return 0, fmt.Errorf("adding points: %w", err)
	}

	var total int64
	if err := tx.QueryRowContext(ctx, getPointsForUpdate, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("reading new points total: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return total, nil
}

func (r *Repository) GetPoints(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, getPointsQuery, userID).Scan(&total)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading points total: %w", err)
	}
	return total, nil
}

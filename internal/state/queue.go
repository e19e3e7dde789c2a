package state

import (
	"context"
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/songrow/internal/db"
)

// QueueState represents the saved queue: track ids in play order and the
// index of the current entry (-1 if none).
type QueueState struct {
	CurrentIndex int
	TrackIDs     []string
}

func getQueue(ctx context.Context, db *sql.DB) (QueueState, error) {
	var currentIndex int
	row := db.QueryRowContext(ctx, `SELECT current_index FROM queue_state WHERE id = 1`)
	err := row.Scan(&currentIndex)
	if errors.Is(err, sql.ErrNoRows) {
		return QueueState{CurrentIndex: -1}, nil
	}
	if err != nil {
		return QueueState{}, err
	}

	rows, err := db.QueryContext(ctx, `SELECT track_id FROM queue_tracks ORDER BY position`)
	if err != nil {
		return QueueState{}, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return QueueState{}, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return QueueState{}, err
	}

	if currentIndex >= len(ids) {
		currentIndex = len(ids) - 1
	}
	return QueueState{CurrentIndex: currentIndex, TrackIDs: ids}, nil
}

func saveQueue(ctx context.Context, sqlDB *sql.DB, q QueueState) error {
	return dbutil.WithTx(ctx, sqlDB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM queue_tracks`); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO queue_state (id, current_index)
			VALUES (1, ?)
			ON CONFLICT(id) DO UPDATE SET current_index = excluded.current_index
		`, q.CurrentIndex)
		if err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO queue_tracks (position, track_id) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, id := range q.TrackIDs {
			if _, err := stmt.ExecContext(ctx, i, id); err != nil {
				return err
			}
		}
		return nil
	})
}

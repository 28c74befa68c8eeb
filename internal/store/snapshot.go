package store

import (
	"database/sql"
	"time"
)

// Snapshot represents one saved screenshot recorded in the catalog.
type Snapshot struct {
	ID         string    `json:"id"`
	Path       string    `json:"path"`
	HandCount  int       `json:"hand_count"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	CapturedAt time.Time `json:"captured_at"`
}

// SnapshotRepository provides CRUD operations for snapshots.
type SnapshotRepository struct {
	db *sql.DB
}

// Snapshots returns the snapshot repository for this store.
func (s *Store) Snapshots() *SnapshotRepository {
	return &SnapshotRepository{db: s.db}
}

// Create inserts a snapshot record.
func (r *SnapshotRepository) Create(snap Snapshot) error {
	_, err := r.db.Exec(
		`INSERT INTO snapshots (id, path, hand_count, width, height, captured_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		snap.ID, snap.Path, snap.HandCount, snap.Width, snap.Height, snap.CapturedAt,
	)
	return err
}

// List retrieves all snapshots, newest first.
func (r *SnapshotRepository) List() ([]Snapshot, error) {
	rows, err := r.db.Query(
		`SELECT id, path, hand_count, width, height, captured_at
		 FROM snapshots
		 ORDER BY captured_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.Path, &s.HandCount, &s.Width, &s.Height, &s.CapturedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// Get retrieves a snapshot by ID. Returns sql.ErrNoRows if not found.
func (r *SnapshotRepository) Get(id string) (Snapshot, error) {
	var s Snapshot
	err := r.db.QueryRow(
		`SELECT id, path, hand_count, width, height, captured_at
		 FROM snapshots WHERE id = ?`,
		id,
	).Scan(&s.ID, &s.Path, &s.HandCount, &s.Width, &s.Height, &s.CapturedAt)
	return s, err
}

// Delete removes a snapshot record by ID.
func (r *SnapshotRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM snapshots WHERE id = ?`, id)
	return err
}

// Package sqlite implements the durable audit journal on top of the
// single-writer database layer.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	dbpkg "github.com/mnystrom/floorgate/internal/db"
	"github.com/mnystrom/floorgate/internal/floorgate/store"
)

type AuditStore struct {
	conn   *sql.DB
	writer *dbpkg.Writer
}

func NewAuditStore(conn *sql.DB, writer *dbpkg.Writer) *AuditStore {
	return &AuditStore{conn: conn, writer: writer}
}

// Record appends one decision to the journal. Rows are insert-only;
// nothing ever updates or deletes them.
func (s *AuditStore) Record(ctx context.Context, rec store.AuditEventRecord) error {
	if rec.EventID == "" {
		rec.EventID = uuid.NewString()
	}
	if rec.OccurredAt.IsZero() {
		rec.OccurredAt = time.Now()
	}

	occurredMs := rec.OccurredAt.UTC().UnixMilli()

	var authorized int
	if rec.Authorized {
		authorized = 1
	}

	return s.writer.Do(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO access_events(
  event_id, floor_id, user_id, user_name, occurred_at_ms, authorized
) VALUES (?, ?, ?, ?, ?, ?);
`,
			rec.EventID, rec.FloorID, rec.UserID, rec.UserName, occurredMs, authorized,
		); err != nil {
			return fmt.Errorf("record access event: %w", err)
		}
		return nil
	})
}

// EventsForFloor returns the floor's events in insertion order. The
// implicit rowid preserves append order even when wall-clock timestamps
// collide within a millisecond.
func (s *AuditStore) EventsForFloor(ctx context.Context, floorID string) ([]store.AuditEventRecord, error) {
	rows, err := s.conn.QueryContext(ctx, `
SELECT event_id, floor_id, user_id, user_name, occurred_at_ms, authorized
FROM access_events
WHERE floor_id = ?
ORDER BY rowid;
`, floorID)
	if err != nil {
		return nil, fmt.Errorf("query access events: %w", err)
	}
	defer rows.Close()

	var out []store.AuditEventRecord
	for rows.Next() {
		var rec store.AuditEventRecord
		var occurredMs int64
		var authorized int
		if err := rows.Scan(&rec.EventID, &rec.FloorID, &rec.UserID,
			&rec.UserName, &occurredMs, &authorized); err != nil {
			return nil, fmt.Errorf("scan access event: %w", err)
		}
		rec.OccurredAt = time.UnixMilli(occurredMs).UTC()
		rec.Authorized = authorized == 1
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate access events: %w", err)
	}
	return out, nil
}

package store

import (
	"context"
	"time"
)

// AuditEventRecord captures a single authorization decision for the
// durable journal. EventID is assigned by the store on insert.
type AuditEventRecord struct {
	EventID    string
	FloorID    string
	UserID     string
	UserName   string
	OccurredAt time.Time
	Authorized bool
}

// AuditStore persists access decisions as an append-only journal.
// Entries are never edited or removed.
type AuditStore interface {
	Record(ctx context.Context, rec AuditEventRecord) error

	// EventsForFloor returns the floor's events in insertion order.
	EventsForFloor(ctx context.Context, floorID string) ([]AuditEventRecord, error)
}

// Package memory holds the in-memory audit journal used by tests and by
// sessions running without a database file.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mnystrom/floorgate/internal/floorgate/store"
)

// AuditStore is an append-only in-memory journal of access decisions.
type AuditStore struct {
	mu     sync.Mutex
	events []store.AuditEventRecord
}

func NewAuditStore() *AuditStore {
	return &AuditStore{}
}

func (s *AuditStore) Record(_ context.Context, rec store.AuditEventRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.EventID == "" {
		rec.EventID = uuid.NewString()
	}
	s.events = append(s.events, rec)
	return nil
}

func (s *AuditStore) EventsForFloor(_ context.Context, floorID string) ([]store.AuditEventRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []store.AuditEventRecord
	for _, ev := range s.events {
		if ev.FloorID == floorID {
			out = append(out, ev)
		}
	}
	return out, nil
}

// Events returns a copy of every recorded event. Test-only helper.
func (s *AuditStore) Events() []store.AuditEventRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]store.AuditEventRecord, len(s.events))
	copy(out, s.events)
	return out
}

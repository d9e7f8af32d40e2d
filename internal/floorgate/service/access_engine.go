package service

import (
	"context"
	"log"
	"time"

	"github.com/mnystrom/floorgate/internal/floorgate/store"
	"github.com/mnystrom/floorgate/internal/floorgate/types"
)

// AccessEngine makes the authorization decision and maintains its
// durable trace. The decision itself is a total function of two
// integers; the care is in the audit semantics: every attempt, granted
// or denied, appends exactly one immutable entry to the floor's history.
type AccessEngine struct {
	journal store.AuditStore
	logger  *log.Logger
	now     func() time.Time
}

func NewAccessEngine(journal store.AuditStore, logger *log.Logger) *AccessEngine {
	return &AccessEngine{
		journal: journal,
		logger:  logger,
		now:     time.Now,
	}
}

// Authorize decides whether user may enter floor, appends the entry to
// the floor's in-memory history and returns it. The entry is also
// mirrored to the audit journal; a failed journal write is logged but
// does not block the decision or the in-memory append.
func (e *AccessEngine) Authorize(ctx context.Context, user *types.User, floor *types.Floor) types.AccessLogEntry {
	now := e.now()
	entry := types.AccessLogEntry{
		UserID:     user.ID,
		UserName:   user.Name,
		Timestamp:  now.Format(types.TimestampLayout),
		Authorized: user.Card.ClearanceLevel >= floor.ClearanceLevel,
	}
	floor.AccessHistory = append(floor.AccessHistory, entry)

	if err := e.journal.Record(ctx, store.AuditEventRecord{
		FloorID:    floor.ID,
		UserID:     entry.UserID,
		UserName:   entry.UserName,
		OccurredAt: now,
		Authorized: entry.Authorized,
	}); err != nil && e.logger != nil {
		e.logger.Printf("audit journal write failed for floor %s: %v", floor.ID, err)
	}

	return entry
}

// History returns the floor's access log in append order. The returned
// slice is a copy; iterating it has no side effects on the log.
func (e *AccessEngine) History(floor *types.Floor) []types.AccessLogEntry {
	out := make([]types.AccessLogEntry, len(floor.AccessHistory))
	copy(out, floor.AccessHistory)
	return out
}

// ReplayJournal restores each floor's in-memory history from the
// durable journal. Called once at startup, before any new decisions are
// made, so replayed entries keep their original order.
func (e *AccessEngine) ReplayJournal(ctx context.Context, floors []types.Floor) error {
	for i := range floors {
		events, err := e.journal.EventsForFloor(ctx, floors[i].ID)
		if err != nil {
			return err
		}
		for _, ev := range events {
			floors[i].AccessHistory = append(floors[i].AccessHistory, types.AccessLogEntry{
				UserID:     ev.UserID,
				UserName:   ev.UserName,
				Timestamp:  ev.OccurredAt.Local().Format(types.TimestampLayout),
				Authorized: ev.Authorized,
			})
		}
	}
	return nil
}

// Package store defines the persistence boundaries of the registry: a
// snapshot-style roster store for identity records and an append-only
// audit journal for access decisions.
package store

import (
	"github.com/mnystrom/floorgate/internal/floorgate/types"
)

// RosterStore loads and saves the directory collections as whole
// snapshots. Load happens once at startup, save once at shutdown; there
// are no incremental writes mid-session.
type RosterStore interface {
	LoadUsers() ([]types.User, error)
	SaveUsers([]types.User) error
	LoadAdmins() ([]types.Admin, error)
	SaveAdmins([]types.Admin) error
	LoadFloors() ([]types.Floor, error)
	SaveFloors([]types.Floor) error
}

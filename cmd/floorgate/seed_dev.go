package main

import (
	"os"

	"github.com/mnystrom/floorgate/internal/floorgate/store/csvfile"
	"github.com/mnystrom/floorgate/internal/floorgate/types"
)

// seedDev writes a starter roster in dev so a fresh checkout has
// something to log in with. It only runs when none of the roster files
// exist yet; it never touches data the operator already has.
func seedDev(roster *csvfile.Store) error {
	for _, p := range []string{roster.UsersPath, roster.AdminsPath, roster.FloorsPath} {
		if _, err := os.Stat(p); err == nil {
			return nil
		}
	}

	users := []types.User{
		{
			ID: "u1", Name: "Maja Lind", Email: "maja.lind@example.com", Phone: "0701234567",
			Card: types.Card{ID: "card-100", ClearanceLevel: 3},
		},
		{
			ID: "u2", Name: "Erik Dahl", Email: "erik.dahl@example.com", Phone: "0707654321",
			Card: types.Card{ID: "card-101", ClearanceLevel: 1},
		},
	}
	admins := []types.Admin{
		{
			ID: "a1", Password: "Sup3r-Secret", Name: "Nora Berg",
			Email: "nora.berg@example.com", Phone: "+46701112233",
			Card: types.Card{ID: "card-001", ClearanceLevel: 5},
		},
	}
	floors := []types.Floor{
		{ID: "f1", Name: "Lobby", ClearanceLevel: 0},
		{ID: "f2", Name: "Offices", ClearanceLevel: 2},
		{ID: "f3", Name: "Server Room", ClearanceLevel: 5},
	}

	if err := roster.SaveUsers(users); err != nil {
		return err
	}
	if err := roster.SaveAdmins(admins); err != nil {
		return err
	}
	return roster.SaveFloors(floors)
}

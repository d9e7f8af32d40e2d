package tui

import (
	"strings"
	"testing"

	"github.com/mnystrom/floorgate/internal/floorgate/types"
)

func TestRenderFloorList(t *testing.T) {
	out := renderFloorList([]types.Floor{
		{ID: "f1", Name: "Lobby", ClearanceLevel: 0},
		{ID: "f2", Name: "Server Room", ClearanceLevel: 5},
	})

	for _, want := range []string{"f1", "Lobby", "(clearance 0)", "f2", "Server Room", "(clearance 5)"} {
		if !strings.Contains(out, want) {
			t.Errorf("floor list missing %q:\n%s", want, out)
		}
	}
}

func TestRenderUser(t *testing.T) {
	out := renderUser(&types.User{
		ID: "u1", Name: "Maja Lind", Email: "maja@example.com", Phone: "0701234567",
		Card: types.Card{ID: "card-100", ClearanceLevel: 3},
	})

	for _, want := range []string{
		"ID: u1", "Name: Maja Lind", "Email: maja@example.com",
		"Phone: 0701234567", "Card ID: card-100", "Card clearance: 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("user info missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHistory(t *testing.T) {
	floor := &types.Floor{ID: "f1", Name: "Lobby"}

	if out := renderHistory(floor, nil); !strings.Contains(out, "No entries.") {
		t.Errorf("empty history should say so:\n%s", out)
	}

	out := renderHistory(floor, []types.AccessLogEntry{
		{UserID: "u1", UserName: "Maja Lind", Timestamp: "2026-08-29 09:30:00", Authorized: true},
		{UserID: "u2", UserName: "Erik Dahl", Timestamp: "2026-08-29 09:31:00", Authorized: false},
	})

	for _, want := range []string{
		"2026-08-29 09:30:00 - u1 (Maja Lind)", "AUTHORIZED",
		"2026-08-29 09:31:00 - u2 (Erik Dahl)", "DENIED",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("history missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDecision(t *testing.T) {
	floor := &types.Floor{ID: "f1", Name: "Lobby"}

	granted := renderDecision(floor, types.AccessLogEntry{Timestamp: "2026-08-29 09:30:00", Authorized: true})
	if !strings.Contains(granted, "Access granted") || !strings.Contains(granted, "Lobby") {
		t.Errorf("granted decision malformed:\n%s", granted)
	}

	denied := renderDecision(floor, types.AccessLogEntry{Timestamp: "2026-08-29 09:30:00", Authorized: false})
	if !strings.Contains(denied, "Access denied") || !strings.Contains(denied, "2026-08-29 09:30:00") {
		t.Errorf("denied decision malformed:\n%s", denied)
	}
}

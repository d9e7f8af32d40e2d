package tui

import (
	"fmt"
	"strings"

	"github.com/mnystrom/floorgate/internal/floorgate/types"
)

// Rendering helpers are pure string builders so they stay testable
// without a terminal attached.

func renderFloorList(floors []types.Floor) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Available floors") + "\n")
	for _, f := range floors {
		fmt.Fprintf(&b, " - %s : %s %s\n",
			f.ID, f.Name, labelStyle.Render(fmt.Sprintf("(clearance %d)", f.ClearanceLevel)))
	}
	return b.String()
}

func renderUserList(users []types.User) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Users") + "\n")
	for _, u := range users {
		fmt.Fprintf(&b, "%s - %s %s\n",
			u.ID, u.Name,
			labelStyle.Render(fmt.Sprintf("(card %s, clearance %d)", u.Card.ID, u.Card.ClearanceLevel)))
	}
	return b.String()
}

func renderUser(u *types.User) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your information") + "\n")
	fmt.Fprintf(&b, "ID: %s\n", u.ID)
	fmt.Fprintf(&b, "Name: %s\n", u.Name)
	fmt.Fprintf(&b, "Email: %s\n", u.Email)
	fmt.Fprintf(&b, "Phone: %s\n", u.Phone)
	fmt.Fprintf(&b, "Card ID: %s\n", u.Card.ID)
	fmt.Fprintf(&b, "Card clearance: %d\n", u.Card.ClearanceLevel)
	return b.String()
}

func renderHistory(floor *types.Floor, entries []types.AccessLogEntry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Access history for floor "+floor.Name) + "\n")
	if len(entries) == 0 {
		b.WriteString("No entries.\n")
		return b.String()
	}
	for _, e := range entries {
		verdict := deniedStyle.Render("DENIED")
		if e.Authorized {
			verdict = grantedStyle.Render("AUTHORIZED")
		}
		fmt.Fprintf(&b, "%s - %s (%s) -> %s\n", e.Timestamp, e.UserID, e.UserName, verdict)
	}
	return b.String()
}

func renderDecision(floor *types.Floor, entry types.AccessLogEntry) string {
	if entry.Authorized {
		return grantedStyle.Render("Access granted") +
			fmt.Sprintf(" to floor %s at %s.", floor.Name, entry.Timestamp)
	}
	return deniedStyle.Render("Access denied") +
		fmt.Sprintf(" to floor %s at %s.", floor.Name, entry.Timestamp)
}

package types

// TimestampLayout is the wall-clock format used for audit entries and
// operator-facing output.
const TimestampLayout = "2006-01-02 15:04:05"

// Card carries a clearance level. A card is owned by exactly one User or
// Admin and is never shared or persisted on its own.
type Card struct {
	ID             string
	ClearanceLevel int
}

type User struct {
	ID    string
	Name  string
	Email string
	Phone string
	Card  Card
}

type Admin struct {
	ID       string
	Password string
	Name     string
	Email    string
	Phone    string
	Card     Card
}

type Floor struct {
	ID             string
	Name           string
	ClearanceLevel int

	// AccessHistory is append-only; entries are created by the access
	// engine and never edited or removed.
	AccessHistory []AccessLogEntry
}

// AccessLogEntry records one authorization attempt against one floor.
// Immutable once appended; ordering is append order.
type AccessLogEntry struct {
	UserID     string
	UserName   string
	Timestamp  string
	Authorized bool
}

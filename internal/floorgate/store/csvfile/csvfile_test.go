package csvfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mnystrom/floorgate/internal/floorgate/store/csvfile"
	"github.com/mnystrom/floorgate/internal/floorgate/types"
)

func newTestStore(t *testing.T) *csvfile.Store {
	t.Helper()
	dir := t.TempDir()
	return &csvfile.Store{
		UsersPath:  filepath.Join(dir, "users.csv"),
		AdminsPath: filepath.Join(dir, "admins.csv"),
		FloorsPath: filepath.Join(dir, "floors.csv"),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestLoadUsers(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.UsersPath,
		"ID,Name,Email,Phone,CardID,CardClearance\n"+
			"u1,Maja Lind,maja@example.com,0701234567,card-100,3\n"+
			"u2,Erik Dahl,erik@example.com,0707654321,card-101,1\n")

	users, err := s.LoadUsers()
	if err != nil {
		t.Fatalf("LoadUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != "u1" || users[0].Card.ClearanceLevel != 3 {
		t.Errorf("first user mismatch: %+v", users[0])
	}
	if users[1].Name != "Erik Dahl" || users[1].Card.ID != "card-101" {
		t.Errorf("second user mismatch: %+v", users[1])
	}
}

func TestLoadUsers_MissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	users, err := s.LoadUsers()
	if err != nil {
		t.Fatalf("LoadUsers on missing file: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty collection, got %d", len(users))
	}
}

func TestLoadUsers_SkipsMalformedRows(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.UsersPath,
		"ID,Name,Email,Phone,CardID,CardClearance\n"+
			"u1,Maja Lind,maja@example.com,0701234567,card-100,3\n"+
			"short,row\n"+
			"\n"+
			"u2,Erik Dahl,erik@example.com,0707654321,card-101,NaN\n"+
			"u3,Sara Holm,sara@example.com,0709999999,card-102,2\n")

	users, err := s.LoadUsers()
	if err != nil {
		t.Fatalf("LoadUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected malformed rows skipped, got %d users", len(users))
	}
	if users[0].ID != "u1" || users[1].ID != "u3" {
		t.Errorf("wrong survivors: %q, %q", users[0].ID, users[1].ID)
	}
}

func TestUsers_RoundTripIsByteExact(t *testing.T) {
	s := newTestStore(t)
	original := "ID,Name,Email,Phone,CardID,CardClearance\n" +
		"u1,Maja Lind,maja@example.com,0701234567,card-100,3\n" +
		"u2,Erik Dahl,erik@example.com,0707654321,card-101,1\n"
	writeFile(t, s.UsersPath, original)

	users, err := s.LoadUsers()
	if err != nil {
		t.Fatalf("LoadUsers: %v", err)
	}
	if err := s.SaveUsers(users); err != nil {
		t.Fatalf("SaveUsers: %v", err)
	}
	if got := readFile(t, s.UsersPath); got != original {
		t.Errorf("round trip not byte-exact:\n got: %q\nwant: %q", got, original)
	}
}

func TestAdmins_RoundTripIsByteExact(t *testing.T) {
	s := newTestStore(t)
	original := "ID,Password,Name,Email,Phone,CardID,CardClearance\n" +
		"a1,Sup3r-Secret,Nora Berg,nora@example.com,+46701112233,card-001,5\n"
	writeFile(t, s.AdminsPath, original)

	admins, err := s.LoadAdmins()
	if err != nil {
		t.Fatalf("LoadAdmins: %v", err)
	}
	if len(admins) != 1 || admins[0].Password != "Sup3r-Secret" {
		t.Fatalf("admin not loaded: %+v", admins)
	}
	if err := s.SaveAdmins(admins); err != nil {
		t.Fatalf("SaveAdmins: %v", err)
	}
	if got := readFile(t, s.AdminsPath); got != original {
		t.Errorf("round trip not byte-exact:\n got: %q\nwant: %q", got, original)
	}
}

func TestFloors_RoundTripIsByteExact(t *testing.T) {
	s := newTestStore(t)
	original := "ID,Name,ClearanceLevel\n" +
		"f1,Lobby,0\n" +
		"f2,Server Room,5\n"
	writeFile(t, s.FloorsPath, original)

	floors, err := s.LoadFloors()
	if err != nil {
		t.Fatalf("LoadFloors: %v", err)
	}
	if err := s.SaveFloors(floors); err != nil {
		t.Fatalf("SaveFloors: %v", err)
	}
	if got := readFile(t, s.FloorsPath); got != original {
		t.Errorf("round trip not byte-exact:\n got: %q\nwant: %q", got, original)
	}
}

func TestSaveUsers_EmbeddedCommaCorruptsRow(t *testing.T) {
	// The legacy format has no escaping; a comma inside a field splits
	// into extra columns on reload. Documented limitation, pinned here
	// so nobody "fixes" it and breaks round-trip compatibility.
	s := newTestStore(t)
	err := s.SaveUsers([]types.User{
		{ID: "u1", Name: "Lind, Maja", Email: "maja@example.com", Phone: "0701234567",
			Card: types.Card{ID: "card-100", ClearanceLevel: 3}},
	})
	if err != nil {
		t.Fatalf("SaveUsers: %v", err)
	}

	users, err := s.LoadUsers()
	if err != nil {
		t.Fatalf("LoadUsers: %v", err)
	}
	// The extra comma shifts the card id into the clearance column, so
	// the whole row is dropped as malformed on reload.
	if len(users) != 0 {
		t.Errorf("expected corrupted row to be dropped, got %+v", users)
	}
}

func TestLoadFloors_StartsWithEmptyHistory(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s.FloorsPath, "ID,Name,ClearanceLevel\nf1,Lobby,0\n")

	floors, err := s.LoadFloors()
	if err != nil {
		t.Fatalf("LoadFloors: %v", err)
	}
	if len(floors) != 1 || floors[0].AccessHistory != nil {
		t.Errorf("floors must load with empty history: %+v", floors)
	}
}

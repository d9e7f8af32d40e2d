// Package csvfile implements the flat-file roster store.
//
// The format is the legacy one: a header row, then one comma-joined
// record per line. Fields are split on every comma with no quoting or
// escaping, so a field value containing a comma corrupts its row. That
// gap is part of the format contract — files written here must round-trip
// byte-for-byte against files written by earlier versions, so no escaping
// is added.
package csvfile

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mnystrom/floorgate/internal/floorgate/types"
)

// ErrMalformedRecord marks a row with too few columns or an unparsable
// numeric cell. Such rows are skipped on load, never fatal.
var ErrMalformedRecord = errors.New("malformed record")

const (
	usersHeader  = "ID,Name,Email,Phone,CardID,CardClearance"
	adminsHeader = "ID,Password,Name,Email,Phone,CardID,CardClearance"
	floorsHeader = "ID,Name,ClearanceLevel"
)

// Store reads and writes the three roster files. A missing file on load
// yields an empty collection; only an unreadable or unwritable file is
// reported as an error, and the caller decides whether to continue.
type Store struct {
	UsersPath  string
	AdminsPath string
	FloorsPath string

	// Logger receives one line per skipped malformed row. Optional.
	Logger *log.Logger
}

func (s *Store) LoadUsers() ([]types.User, error) {
	var users []types.User
	err := s.loadRows(s.UsersPath, 6, func(cols []string) error {
		clearance, err := strconv.Atoi(cols[5])
		if err != nil {
			return fmt.Errorf("%w: bad clearance %q", ErrMalformedRecord, cols[5])
		}
		users = append(users, types.User{
			ID:    cols[0],
			Name:  cols[1],
			Email: cols[2],
			Phone: cols[3],
			Card:  types.Card{ID: cols[4], ClearanceLevel: clearance},
		})
		return nil
	})
	return users, err
}

func (s *Store) SaveUsers(users []types.User) error {
	rows := make([]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, strings.Join([]string{
			u.ID, u.Name, u.Email, u.Phone,
			u.Card.ID, strconv.Itoa(u.Card.ClearanceLevel),
		}, ","))
	}
	return writeRows(s.UsersPath, usersHeader, rows)
}

func (s *Store) LoadAdmins() ([]types.Admin, error) {
	var admins []types.Admin
	err := s.loadRows(s.AdminsPath, 7, func(cols []string) error {
		clearance, err := strconv.Atoi(cols[6])
		if err != nil {
			return fmt.Errorf("%w: bad clearance %q", ErrMalformedRecord, cols[6])
		}
		admins = append(admins, types.Admin{
			ID:       cols[0],
			Password: cols[1],
			Name:     cols[2],
			Email:    cols[3],
			Phone:    cols[4],
			Card:     types.Card{ID: cols[5], ClearanceLevel: clearance},
		})
		return nil
	})
	return admins, err
}

func (s *Store) SaveAdmins(admins []types.Admin) error {
	rows := make([]string, 0, len(admins))
	for _, a := range admins {
		rows = append(rows, strings.Join([]string{
			a.ID, a.Password, a.Name, a.Email, a.Phone,
			a.Card.ID, strconv.Itoa(a.Card.ClearanceLevel),
		}, ","))
	}
	return writeRows(s.AdminsPath, adminsHeader, rows)
}

func (s *Store) LoadFloors() ([]types.Floor, error) {
	var floors []types.Floor
	err := s.loadRows(s.FloorsPath, 3, func(cols []string) error {
		clearance, err := strconv.Atoi(cols[2])
		if err != nil {
			return fmt.Errorf("%w: bad clearance %q", ErrMalformedRecord, cols[2])
		}
		floors = append(floors, types.Floor{
			ID:             cols[0],
			Name:           cols[1],
			ClearanceLevel: clearance,
		})
		return nil
	})
	return floors, err
}

func (s *Store) SaveFloors(floors []types.Floor) error {
	rows := make([]string, 0, len(floors))
	for _, f := range floors {
		rows = append(rows, strings.Join([]string{
			f.ID, f.Name, strconv.Itoa(f.ClearanceLevel),
		}, ","))
	}
	return writeRows(s.FloorsPath, floorsHeader, rows)
}

// loadRows reads path line by line, skipping the header, blank lines,
// rows with fewer than minCols columns, and rows the record callback
// rejects as malformed. A missing file is treated as an empty one.
func (s *Store) loadRows(path string, minCols int, record func(cols []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	first := true
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if first {
			first = false
			continue
		}
		if line == "" {
			continue
		}
		cols := strings.Split(line, ",")
		if len(cols) < minCols {
			s.skip(path, lineNo, fmt.Errorf("%w: %d of %d columns", ErrMalformedRecord, len(cols), minCols))
			continue
		}
		if err := record(cols); err != nil {
			s.skip(path, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func (s *Store) skip(path string, lineNo int, err error) {
	if s.Logger != nil {
		s.Logger.Printf("%s:%d skipped: %v", path, lineNo, err)
	}
}

func writeRows(path, header string, rows []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, header)
	for _, row := range rows {
		fmt.Fprintln(w, row)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

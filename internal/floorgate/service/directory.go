package service

import (
	"errors"
	"strings"

	"github.com/mnystrom/floorgate/internal/floorgate/types"
	"github.com/mnystrom/floorgate/internal/floorgate/validate"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateID  = errors.New("id already exists")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrWeakPassword = errors.New("password does not meet strength requirements")

	// ErrInvalidNumber is reported by callers that parse numeric input
	// before handing it to the directory; a failed parse leaves the
	// target field unchanged.
	ErrInvalidNumber = errors.New("invalid number")
)

// Directory owns the in-memory collections of users, admins and floors.
// It is the single authoritative copy during a session; the roster store
// only sees snapshots of it at startup and shutdown.
//
// All operations are synchronous and run on the single operator
// goroutine, so no locking is needed.
type Directory struct {
	users  []types.User
	admins []types.Admin
	floors []types.Floor
}

func NewDirectory(users []types.User, admins []types.Admin, floors []types.Floor) *Directory {
	return &Directory{users: users, admins: admins, floors: floors}
}

// FindUser matches id or name, returning the first hit in storage order.
// When two users share a name the earlier insertion wins; this is the
// documented lookup policy, not an accident.
func (d *Directory) FindUser(key string) (*types.User, error) {
	for i := range d.users {
		if d.users[i].ID == key || d.users[i].Name == key {
			return &d.users[i], nil
		}
	}
	return nil, ErrNotFound
}

// FindAdmin matches on id only.
func (d *Directory) FindAdmin(id string) (*types.Admin, error) {
	for i := range d.admins {
		if d.admins[i].ID == id {
			return &d.admins[i], nil
		}
	}
	return nil, ErrNotFound
}

// FindFloor matches id or name, first hit in storage order.
func (d *Directory) FindFloor(key string) (*types.Floor, error) {
	for i := range d.floors {
		if d.floors[i].ID == key || d.floors[i].Name == key {
			return &d.floors[i], nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser appends a new user with an owned card. The id must not
// collide with an existing user id or name (a name collision would make
// the new user unreachable through FindUser).
func (d *Directory) CreateUser(id, name, email, phone, cardID string, clearance int) error {
	if _, err := d.FindUser(id); err == nil {
		return ErrDuplicateID
	}
	if !validate.Email(email) {
		return ErrInvalidEmail
	}
	if !validate.Phone(phone) {
		return ErrInvalidPhone
	}
	d.users = append(d.users, types.User{
		ID:    id,
		Name:  name,
		Email: email,
		Phone: phone,
		Card:  types.Card{ID: cardID, ClearanceLevel: clearance},
	})
	return nil
}

// DeleteUser removes the first user matching id or name, along with the
// card it owns. Floor audit histories that mention the user are left
// untouched: they are a historical record, not a foreign key.
func (d *Directory) DeleteUser(key string) error {
	for i := range d.users {
		if d.users[i].ID == key || d.users[i].Name == key {
			d.users = append(d.users[:i], d.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// UserEdit carries the optional fields of an EditUser call. A nil field
// means "keep the current value".
type UserEdit struct {
	Name  *string
	Email *string
	Phone *string
}

// EditUser applies each supplied field independently. An invalid email
// or phone leaves that field unchanged and is reported in the returned
// slice without aborting the other edits.
func (d *Directory) EditUser(u *types.User, edit UserEdit) []error {
	var errs []error
	if edit.Name != nil {
		u.Name = *edit.Name
	}
	if edit.Email != nil {
		if validate.Email(*edit.Email) {
			u.Email = *edit.Email
		} else {
			errs = append(errs, ErrInvalidEmail)
		}
	}
	if edit.Phone != nil {
		if validate.Phone(*edit.Phone) {
			u.Phone = *edit.Phone
		} else {
			errs = append(errs, ErrInvalidPhone)
		}
	}
	return errs
}

// FloorEdit carries the optional fields of an EditFloor call.
type FloorEdit struct {
	Name      *string
	Clearance *int
}

func (d *Directory) EditFloor(f *types.Floor, edit FloorEdit) {
	if edit.Name != nil {
		f.Name = *edit.Name
	}
	if edit.Clearance != nil {
		f.ClearanceLevel = *edit.Clearance
	}
}

// ChangeAdminPassword replaces the password if it passes the strength
// rule, otherwise reports ErrWeakPassword and leaves it unchanged.
func (d *Directory) ChangeAdminPassword(a *types.Admin, newPassword string) error {
	if !validate.Password(newPassword) {
		return ErrWeakPassword
	}
	a.Password = newPassword
	return nil
}

// Users returns the collection in storage order. Used for listing and
// for the shutdown snapshot.
func (d *Directory) Users() []types.User { return d.users }

func (d *Directory) Admins() []types.Admin { return d.admins }

func (d *Directory) Floors() []types.Floor { return d.floors }

// AuthenticateAdmin looks up the admin and checks the password with a
// plain equality compare. Credentials are stored in the clear; see the
// roster file format.
func (d *Directory) AuthenticateAdmin(id, password string) (*types.Admin, error) {
	a, err := d.FindAdmin(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if a.Password != password {
		return nil, ErrNotFound
	}
	return a, nil
}

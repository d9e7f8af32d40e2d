// Package tui drives the interactive operator session: numbered menus
// with bounds-checked choices and free-text prompts where an empty line
// keeps the current value or cancels, depending on context.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/mnystrom/floorgate/internal/floorgate/service"
)

// errQuit unwinds the menu stack when the operator closes the input
// stream (Ctrl-D) or aborts with Ctrl-C at a prompt.
var errQuit = errors.New("session closed")

type Session struct {
	dir    *service.Directory
	engine *service.AccessEngine
	line   *liner.State
}

func NewSession(dir *service.Directory, engine *service.AccessEngine) *Session {
	return &Session{dir: dir, engine: engine}
}

// Run executes the top-level menu loop until the operator exits. It
// always returns nil on a clean exit so the caller proceeds to save.
func (s *Session) Run(ctx context.Context) error {
	s.line = liner.NewLiner()
	s.line.SetCtrlCAborts(true)
	defer s.line.Close()

	for {
		fmt.Println()
		fmt.Println(titleStyle.Render("Secure Card System"))
		fmt.Println(menuStyle.Render("[1] User login"))
		fmt.Println(menuStyle.Render("[2] Admin login"))
		fmt.Println(menuStyle.Render("[0] Exit"))

		choice, err := s.promptChoice(0, 2)
		if err != nil {
			return nil
		}

		switch choice {
		case 0:
			return nil
		case 1:
			if err := s.userLogin(ctx); errors.Is(err, errQuit) {
				return nil
			}
		case 2:
			if err := s.adminLogin(ctx); errors.Is(err, errQuit) {
				return nil
			}
		}
	}
}

// ── user flows ──────────────────────────────────────────────────────────────

func (s *Session) userLogin(ctx context.Context) error {
	key, err := s.prompt("Enter user ID or full name: ")
	if err != nil {
		return err
	}
	user, findErr := s.dir.FindUser(key)
	if findErr != nil {
		fmt.Println(errorStyle.Render("User not found."))
		return nil
	}
	return s.userMenu(ctx, user.ID)
}

func (s *Session) userMenu(ctx context.Context, userID string) error {
	for {
		// Re-resolve each pass: edits may have renamed the user.
		user, err := s.dir.FindUser(userID)
		if err != nil {
			return nil
		}

		fmt.Println()
		fmt.Println(titleStyle.Render("User menu for " + user.Name))
		fmt.Println(menuStyle.Render("[1] List floors / access floor"))
		fmt.Println(menuStyle.Render("[2] Show / edit personal info"))
		fmt.Println(menuStyle.Render("[3] Go back"))

		choice, err := s.promptChoice(1, 3)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if err := s.accessFloor(ctx, userID); err != nil {
				return err
			}
		case 2:
			fmt.Println()
			fmt.Print(renderUser(user))
			fmt.Println(menuStyle.Render("[1] Change info"))
			fmt.Println(menuStyle.Render("[0] Back"))
			c, err := s.promptChoice(0, 1)
			if err != nil {
				return err
			}
			if c == 1 {
				if err := s.editUser(user.ID); err != nil {
					return err
				}
			}
		case 3:
			return nil
		}
	}
}

func (s *Session) accessFloor(ctx context.Context, userID string) error {
	fmt.Println()
	fmt.Print(renderFloorList(s.dir.Floors()))

	key, err := s.prompt("Enter floor ID or floor name to access: ")
	if err != nil {
		return err
	}
	floor, findErr := s.dir.FindFloor(key)
	if findErr != nil {
		fmt.Println(errorStyle.Render("Floor not found."))
		return nil
	}
	user, findErr := s.dir.FindUser(userID)
	if findErr != nil {
		return nil
	}

	entry := s.engine.Authorize(ctx, user, floor)
	fmt.Println(renderDecision(floor, entry))
	return nil
}

func (s *Session) editUser(key string) error {
	user, err := s.dir.FindUser(key)
	if err != nil {
		fmt.Println(errorStyle.Render("User not found."))
		return nil
	}

	var edit service.UserEdit
	name, err := s.prompt("New name (leave empty to keep): ")
	if err != nil {
		return err
	}
	if name != "" {
		edit.Name = &name
	}

	email, err := s.prompt("New email (leave empty to keep): ")
	if err != nil {
		return err
	}
	if email != "" {
		edit.Email = &email
	}

	phone, err := s.prompt("New phone (leave empty to keep): ")
	if err != nil {
		return err
	}
	if phone != "" {
		edit.Phone = &phone
	}

	for _, e := range s.dir.EditUser(user, edit) {
		switch {
		case errors.Is(e, service.ErrInvalidEmail):
			fmt.Println(errorStyle.Render("Invalid email; unchanged."))
		case errors.Is(e, service.ErrInvalidPhone):
			fmt.Println(errorStyle.Render("Invalid phone; unchanged."))
		}
	}
	return nil
}

// ── admin flows ─────────────────────────────────────────────────────────────

func (s *Session) adminLogin(ctx context.Context) error {
	id, err := s.prompt("Admin ID: ")
	if err != nil {
		return err
	}
	password, err := s.promptSecret("Password: ")
	if err != nil {
		return err
	}
	admin, authErr := s.dir.AuthenticateAdmin(id, password)
	if authErr != nil {
		fmt.Println(errorStyle.Render("Admin not found or wrong password."))
		return nil
	}
	return s.adminMenu(ctx, admin.ID)
}

func (s *Session) adminMenu(ctx context.Context, adminID string) error {
	for {
		admin, err := s.dir.FindAdmin(adminID)
		if err != nil {
			return nil
		}

		fmt.Println()
		fmt.Println(titleStyle.Render("Admin menu (" + admin.Name + ")"))
		fmt.Println(menuStyle.Render("[1] List floors / manage floor"))
		fmt.Println(menuStyle.Render("[2] List / manage users"))
		fmt.Println(menuStyle.Render("[3] Create new user"))
		fmt.Println(menuStyle.Render("[4] Change admin password"))
		fmt.Println(menuStyle.Render("[5] Go back"))

		choice, err := s.promptChoice(1, 5)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if err := s.manageFloor(); err != nil {
				return err
			}
		case 2:
			if err := s.manageUser(); err != nil {
				return err
			}
		case 3:
			if err := s.createUser(); err != nil {
				return err
			}
		case 4:
			if err := s.changePassword(adminID); err != nil {
				return err
			}
		case 5:
			return nil
		}
	}
}

func (s *Session) manageFloor() error {
	fmt.Println()
	fmt.Print(renderFloorList(s.dir.Floors()))

	key, err := s.prompt("Choose floor ID or name (empty = back): ")
	if err != nil {
		return err
	}
	if key == "" {
		return nil
	}
	floor, findErr := s.dir.FindFloor(key)
	if findErr != nil {
		fmt.Println(errorStyle.Render("Floor not found."))
		return nil
	}

	fmt.Println(menuStyle.Render("[1] Show access history"))
	fmt.Println(menuStyle.Render("[2] Change floor info"))
	fmt.Println(menuStyle.Render("[0] Back"))
	c, err := s.promptChoice(0, 2)
	if err != nil {
		return err
	}
	switch c {
	case 1:
		fmt.Println()
		fmt.Print(renderHistory(floor, s.engine.History(floor)))
	case 2:
		return s.editFloor(floor.ID)
	}
	return nil
}

func (s *Session) editFloor(floorID string) error {
	floor, err := s.dir.FindFloor(floorID)
	if err != nil {
		return nil
	}

	var edit service.FloorEdit
	name, err := s.prompt("New name (empty to keep): ")
	if err != nil {
		return err
	}
	if name != "" {
		edit.Name = &name
	}

	raw, err := s.prompt("New clearance level (empty to keep): ")
	if err != nil {
		return err
	}
	if raw != "" {
		if n, convErr := strconv.Atoi(raw); convErr == nil {
			edit.Clearance = &n
		} else {
			fmt.Println(errorStyle.Render("Invalid number; unchanged."))
		}
	}

	s.dir.EditFloor(floor, edit)
	return nil
}

func (s *Session) manageUser() error {
	fmt.Println()
	fmt.Print(renderUserList(s.dir.Users()))

	key, err := s.prompt("Choose user by ID or name (empty = back): ")
	if err != nil {
		return err
	}
	if key == "" {
		return nil
	}
	if _, findErr := s.dir.FindUser(key); findErr != nil {
		fmt.Println(errorStyle.Render("User not found."))
		return nil
	}

	fmt.Println(menuStyle.Render("[1] Change user info"))
	fmt.Println(menuStyle.Render("[2] Delete user"))
	fmt.Println(menuStyle.Render("[0] Back"))
	c, err := s.promptChoice(0, 2)
	if err != nil {
		return err
	}
	switch c {
	case 1:
		return s.editUser(key)
	case 2:
		if delErr := s.dir.DeleteUser(key); delErr != nil {
			fmt.Println(errorStyle.Render("User not found."))
		} else {
			fmt.Println("User (and their card) deleted.")
		}
	}
	return nil
}

func (s *Session) createUser() error {
	id, err := s.prompt("New user ID: ")
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}

	name, err := s.prompt("Name: ")
	if err != nil {
		return err
	}
	email, err := s.prompt("Email: ")
	if err != nil {
		return err
	}
	phone, err := s.prompt("Phone: ")
	if err != nil {
		return err
	}
	cardID, err := s.prompt("Card ID: ")
	if err != nil {
		return err
	}
	raw, err := s.prompt("Card clearance level (int): ")
	if err != nil {
		return err
	}
	clearance, convErr := strconv.Atoi(raw)
	if convErr != nil {
		fmt.Println(errorStyle.Render("Invalid number."))
		return nil
	}

	switch createErr := s.dir.CreateUser(id, name, email, phone, cardID, clearance); {
	case createErr == nil:
		fmt.Println("User created.")
	case errors.Is(createErr, service.ErrDuplicateID):
		fmt.Println(errorStyle.Render("User with that ID already exists."))
	case errors.Is(createErr, service.ErrInvalidEmail):
		fmt.Println(errorStyle.Render("Invalid email."))
	case errors.Is(createErr, service.ErrInvalidPhone):
		fmt.Println(errorStyle.Render("Invalid phone."))
	}
	return nil
}

func (s *Session) changePassword(adminID string) error {
	admin, err := s.dir.FindAdmin(adminID)
	if err != nil {
		return nil
	}

	password, promptErr := s.promptSecret("Enter new password (empty = back): ")
	if promptErr != nil {
		return promptErr
	}
	if password == "" {
		return nil
	}
	if chErr := s.dir.ChangeAdminPassword(admin, password); chErr != nil {
		fmt.Println(errorStyle.Render(
			"Password must be at least 8 characters long and include uppercase, lowercase, digit, and special character."))
		return nil
	}
	fmt.Println("Password changed successfully.")
	return nil
}

// ── prompt helpers ──────────────────────────────────────────────────────────

func (s *Session) prompt(label string) (string, error) {
	in, err := s.line.Prompt(label)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", errQuit
		}
		return "", err
	}
	return strings.TrimSpace(in), nil
}

func (s *Session) promptSecret(label string) (string, error) {
	in, err := s.line.PasswordPrompt(label)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", errQuit
		}
		return "", err
	}
	return strings.TrimSpace(in), nil
}

// promptChoice reads a bounds-checked menu selection, re-prompting on
// anything that is not an integer in [min, max].
func (s *Session) promptChoice(min, max int) (int, error) {
	for {
		in, err := s.prompt("Choose an option: ")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(in)
		if convErr != nil || n < min || n > max {
			fmt.Println(errorStyle.Render(
				fmt.Sprintf("Invalid input. Enter a number between %d and %d.", min, max)))
			continue
		}
		return n, nil
	}
}

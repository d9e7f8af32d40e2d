// Package validate holds the pure field predicates shared by directory
// mutations and the operator interface. No state, no side effects.
package validate

import (
	"regexp"
	"unicode"
)

var (
	// local-part@domain.tld — no whitespace, no second @, at least one
	// dot in the domain.
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// Swedish mobile numbers: 07XXXXXXXX or +467XXXXXXXX.
	phonePattern = regexp.MustCompile(`^07\d{8}$|^\+467\d{8}$`)
)

// Password reports whether p is acceptable as an admin password:
// at least 8 characters with at least one uppercase letter, one lowercase
// letter, one digit, and one character outside those three classes.
func Password(p string) bool {
	if len(p) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range p {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

func Email(s string) bool {
	return emailPattern.MatchString(s)
}

func Phone(s string) bool {
	return phonePattern.MatchString(s)
}

package validate_test

import (
	"testing"

	"github.com/mnystrom/floorgate/internal/floorgate/validate"
)

func TestPassword(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Abcdef1!", true},
		{"abcdefg1", false}, // no uppercase, no special
		{"ABCDEFG1!", false}, // no lowercase
		{"Abcdefg!", false}, // no digit
		{"Abcdefg1", false}, // no special
		{"Ab1!", false},     // too short
		{"Sup3r-Secret", true},
		{"", false},
	}
	for _, c := range cases {
		if got := validate.Password(c.in); got != c.want {
			t.Errorf("Password(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.com", true},
		{"first.last@sub.example.org", true},
		{"a@b", false},       // no dot in domain
		{"a b@c.com", false}, // whitespace
		{"a@@b.com", false},  // second @
		{"@b.com", false},    // empty local part
		{"a@.com", false},    // empty host before the dot
		{"", false},
	}
	for _, c := range cases {
		if got := validate.Email(c.in); got != c.want {
			t.Errorf("Email(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0712345678", true},
		{"+46712345678", true},
		{"12345678", false},
		{"071234567", false},    // one digit short
		{"07123456789", false},  // one digit long
		{"+4612345678", false},  // +46 but not +467
		{"07 12345678", false},  // whitespace
		{"", false},
	}
	for _, c := range cases {
		if got := validate.Phone(c.in); got != c.want {
			t.Errorf("Phone(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

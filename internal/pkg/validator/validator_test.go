package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-28"); !ok {
		t.Error("IsValidDate(2025-02-28) = false, want true")
	}
	for _, bad := range []string{"2025-13-01", "28/02/2025", "2025-02-30", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if _, ok := IsValidMonth("2025-07"); !ok {
		t.Error("IsValidMonth(2025-07) = false, want true")
	}
	for _, bad := range []string{"2025-13", "07/2025", "2025-07-01", ""} {
		if _, ok := IsValidMonth(bad); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", bad)
		}
	}
}

func TestIsValidPercent(t *testing.T) {
	cases := []struct {
		input float64
		want  bool
	}{
		{0, true},
		{0.2, true},
		{1, true},
		{-0.1, false},
		{1.01, false},
	}
	for _, c := range cases {
		if got := IsValidPercent(c.input); got != c.want {
			t.Errorf("IsValidPercent(%v) = %v, want %v", c.input, got, c.want)
		}
	}
}

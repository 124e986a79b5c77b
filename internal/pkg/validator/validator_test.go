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

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:05", "18:30", "23:59"}
	invalid := []string{"24:00", "9:05", "09:60", "09:05:30", "0905", "", "ab:cd"}
	for _, tm := range valid {
		if !IsValidClockTime(tm) {
			t.Errorf("IsValidClockTime(%q) = false, want true", tm)
		}
	}
	for _, tm := range invalid {
		if IsValidClockTime(tm) {
			t.Errorf("IsValidClockTime(%q) = true, want false", tm)
		}
	}
}

func TestIsValidPunchTime(t *testing.T) {
	valid := []string{"09:05", "09:05:30", "23:59:59"}
	invalid := []string{"09:05:60", "24:00", "9:05", ""}
	for _, tm := range valid {
		if !IsValidPunchTime(tm) {
			t.Errorf("IsValidPunchTime(%q) = false, want true", tm)
		}
	}
	for _, tm := range invalid {
		if IsValidPunchTime(tm) {
			t.Errorf("IsValidPunchTime(%q) = true, want false", tm)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-30"); ok {
		t.Error("IsValidDate accepted 2025-02-30")
	}
	if _, ok := IsValidDate("2025-06-15"); !ok {
		t.Error("IsValidDate rejected 2025-06-15")
	}
}

package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"alice@example.com", "a.b+tag@sub.example.org"}
	for _, e := range valid {
		if !ValidateEmail(e) {
			t.Errorf("ValidateEmail(%q) = false, want true", e)
		}
	}

	invalid := []string{"", "alice", "alice@", "@example.com", "alice@example"}
	for _, e := range invalid {
		if ValidateEmail(e) {
			t.Errorf("ValidateEmail(%q) = true, want false", e)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  A Study of Things\x00  "); got != "A Study of Things" {
		t.Fatalf("SanitizeInput = %q", got)
	}
}

func TestSanitizeListDropsEmpties(t *testing.T) {
	got := SanitizeList([]string{" ml ", "", "  ", "systems"})
	if len(got) != 2 || got[0] != "ml" || got[1] != "systems" {
		t.Fatalf("SanitizeList = %v", got)
	}
}

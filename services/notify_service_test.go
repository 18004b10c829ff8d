package services

import (
	"strings"
	"testing"
)

func TestRenderEmailBody(t *testing.T) {
	body := renderEmailBody("Alice Doe", "Your paper ICML_25_P0001 has been accepted.")

	if !strings.Contains(body, "Dear Alice Doe,") {
		t.Errorf("body missing salutation: %q", body)
	}
	if !strings.Contains(body, "Your paper ICML_25_P0001 has been accepted.") {
		t.Errorf("body missing message: %q", body)
	}
	if !strings.Contains(body, "The SubmitEase Team") {
		t.Errorf("body missing sign-off: %q", body)
	}
}

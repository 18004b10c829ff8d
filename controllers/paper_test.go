package controllers

import (
	"testing"

	"submitease-api/models"
)

func TestValidatePaperUpdateKeepsConference(t *testing.T) {
	paper := models.Paper{PaperID: "ICML_25_P0001", ConferenceID: 1}

	req := SavePaperRequest{PaperID: "ICML_25_P0001", ConferenceID: 2, Title: "Revised title"}
	if msg := validatePaperUpdate(req, &paper); msg == "" {
		t.Fatal("expected rejection when the update names another conference")
	}

	req.ConferenceID = 1
	if msg := validatePaperUpdate(req, &paper); msg != "" {
		t.Fatalf("same-conference update rejected: %s", msg)
	}
}

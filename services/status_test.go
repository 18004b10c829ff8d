package services

import (
	"testing"
	"time"

	"submitease-api/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		kind string
		from string
		to   string
		want bool
	}{
		{models.TrackKindConference, models.StatusPendingSubmission, models.StatusUnderReview, true},
		{models.TrackKindConference, models.StatusUnderReview, models.StatusAccepted, true},
		{models.TrackKindConference, models.StatusUnderReview, models.StatusRejected, true},
		{models.TrackKindConference, models.StatusUnderReview, models.StatusRevisionRequired, false},
		{models.TrackKindConference, models.StatusPendingSubmission, models.StatusAccepted, false},
		{models.TrackKindConference, models.StatusAccepted, models.StatusRejected, false},
		{models.TrackKindJournal, models.StatusUnderReview, models.StatusRevisionRequired, true},
		{models.TrackKindJournal, models.StatusRevisionRequired, models.StatusUnderReview, true},
		{models.TrackKindJournal, models.StatusRevisionRequired, models.StatusAccepted, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.kind, tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %q, %q) = %v, want %v", tc.kind, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestTransitionPaperMarksDecisionFinal(t *testing.T) {
	paper := models.Paper{PaperID: "ICML_25_P0001", Status: models.StatusUnderReview}
	if err := TransitionPaper(&paper, models.TrackKindConference, models.StatusAccepted); err != nil {
		t.Fatalf("TransitionPaper returned error: %v", err)
	}
	if paper.Status != models.StatusAccepted || !paper.IsFinal {
		t.Fatalf("paper = %q final=%v, want Accepted final=true", paper.Status, paper.IsFinal)
	}

	// A final paper accepts no further transitions.
	if err := TransitionPaper(&paper, models.TrackKindConference, models.StatusRejected); err == nil {
		t.Fatal("expected error transitioning a final paper")
	}
}

func TestTransitionPaperRejectsUnknownStatus(t *testing.T) {
	paper := models.Paper{PaperID: "ICML_25_P0001", Status: models.StatusUnderReview}
	if err := TransitionPaper(&paper, models.TrackKindConference, "Approved"); err == nil {
		t.Fatal("expected error for status outside the enum")
	}
}

func TestEffectiveStatusConference(t *testing.T) {
	// Not final and past Pending Submission reads as Under Review even if
	// the stored status drifted.
	paper := models.Paper{Status: models.StatusRevisionRequired, IsFinal: false}
	if got := EffectiveStatus(&paper, models.TrackKindConference); got != models.StatusUnderReview {
		t.Errorf("EffectiveStatus = %q, want Under Review", got)
	}

	paper = models.Paper{Status: models.StatusPendingSubmission}
	if got := EffectiveStatus(&paper, models.TrackKindConference); got != models.StatusPendingSubmission {
		t.Errorf("EffectiveStatus = %q, want Pending Submission", got)
	}

	paper = models.Paper{Status: models.StatusAccepted, IsFinal: true}
	if got := EffectiveStatus(&paper, models.TrackKindConference); got != models.StatusAccepted {
		t.Errorf("EffectiveStatus = %q, want Accepted", got)
	}
}

func TestEffectiveStatusJournalUsesLatestRevision(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	paper := models.Paper{
		Status: models.StatusUnderReview,
		Revisions: []models.Revision{
			{RevisionID: 1, Status: models.StatusRevisionRequired, CreatedAt: base},
			{RevisionID: 2, Status: models.StatusUnderReview, CreatedAt: base.Add(48 * time.Hour)},
		},
	}
	if got := EffectiveStatus(&paper, models.TrackKindJournal); got != models.StatusUnderReview {
		t.Errorf("EffectiveStatus = %q, want latest revision status Under Review", got)
	}

	paper.Revisions = append(paper.Revisions, models.Revision{
		RevisionID: 3, Status: models.StatusRevisionRequired, CreatedAt: base.Add(96 * time.Hour),
	})
	if got := EffectiveStatus(&paper, models.TrackKindJournal); got != models.StatusRevisionRequired {
		t.Errorf("EffectiveStatus = %q, want Revision Required", got)
	}
}

func TestEffectiveStatusJournalWithoutRevisions(t *testing.T) {
	paper := models.Paper{Status: models.StatusPendingSubmission}
	if got := EffectiveStatus(&paper, models.TrackKindJournal); got != models.StatusPendingSubmission {
		t.Errorf("EffectiveStatus = %q, want the paper's own status", got)
	}
}

func TestTrackKindOf(t *testing.T) {
	paper := models.Paper{}
	if got := TrackKindOf(&paper); got != models.TrackKindConference {
		t.Errorf("trackless paper kind = %q, want conference", got)
	}
	paper.Track = &models.Track{Kind: models.TrackKindJournal}
	if got := TrackKindOf(&paper); got != models.TrackKindJournal {
		t.Errorf("kind = %q, want journal", got)
	}
}

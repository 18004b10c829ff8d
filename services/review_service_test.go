package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"submitease-api/models"
)

func TestSubmitReviewStampsAndScores(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE .reviews. SET"),
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	review := models.Review{ReviewID: 7, PaperID: "ICML_25_P0001", ReviewerID: 3}
	draft := ReviewDraft{
		Originality:    4,
		Clarity:        5,
		Soundness:      4,
		Significance:   3,
		Relevance:      4,
		Comment:        "Solid work.",
		Recommendation: models.RecommendWeakAccept,
	}

	if err := SubmitReview(db, &review, draft); err != nil {
		t.Fatalf("SubmitReview returned error: %v", err)
	}

	if review.SubmittedAt == nil {
		t.Fatal("submitted_at not stamped")
	}
	if review.AvgScore == nil || *review.AvgScore != 4.0 {
		t.Fatalf("avg score = %v, want 4.0", review.AvgScore)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitReviewValidatesScores(t *testing.T) {
	review := models.Review{ReviewID: 7}
	draft := ReviewDraft{Originality: 0, Clarity: 5, Soundness: 4, Significance: 3, Relevance: 4,
		Recommendation: models.RecommendReject}
	if err := SubmitReview(nil, &review, draft); err == nil {
		t.Fatal("expected error for out-of-range score")
	}
}

func TestSubmitReviewValidatesRecommendation(t *testing.T) {
	review := models.Review{ReviewID: 7}
	draft := ReviewDraft{Originality: 3, Clarity: 3, Soundness: 3, Significance: 3, Relevance: 3,
		Recommendation: "Maybe"}
	if err := SubmitReview(nil, &review, draft); err == nil {
		t.Fatal("expected error for recommendation outside the enum")
	}
}

func TestSubmittedReviewIsImmutable(t *testing.T) {
	now := time.Now()
	review := models.Review{ReviewID: 7, SubmittedAt: &now}

	if err := SaveReview(nil, &review, ReviewDraft{Comment: "edit"}); !errors.Is(err, ErrReviewSubmitted) {
		t.Fatalf("SaveReview error = %v, want ErrReviewSubmitted", err)
	}
	if err := SubmitReview(nil, &review, ReviewDraft{}); !errors.Is(err, ErrReviewSubmitted) {
		t.Fatalf("SubmitReview error = %v, want ErrReviewSubmitted", err)
	}
	if review.Comment == "edit" {
		t.Fatal("rejected save must not mutate the review")
	}
}

func TestRedactForBlindReviewHidesAuthorIdentity(t *testing.T) {
	paper := models.Paper{
		PaperID:     "ICML_25_P0001",
		Authors:     []models.User{{UserID: 4}},
		AuthorOrder: models.IntList{4},
	}

	RedactForBlindReview(&paper)

	if paper.Authors != nil {
		t.Error("author records must be cleared for a blind review")
	}
	if paper.AuthorOrder != nil {
		t.Error("ordered author ids must be cleared for a blind review")
	}
}

func TestSaveReviewRoundTripsDraftFields(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE .reviews. SET"),
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	review := models.Review{ReviewID: 9, PaperID: "ICML_25_P0002", ReviewerID: 4}
	draft := ReviewDraft{
		Originality:    2,
		Clarity:        3,
		Soundness:      2,
		Significance:   2,
		Relevance:      3,
		Comment:        "Needs a stronger evaluation section.",
		Recommendation: models.RecommendReject,
	}

	if err := SaveReview(db, &review, draft); err != nil {
		t.Fatalf("SaveReview returned error: %v", err)
	}

	if review.Comment != draft.Comment || review.Recommendation != draft.Recommendation {
		t.Fatalf("draft fields not applied: %+v", review)
	}
	if review.SubmittedAt != nil {
		t.Fatal("draft save must not stamp submitted_at")
	}
	if review.AvgScore != nil {
		t.Fatal("draft save must not persist an avg score")
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

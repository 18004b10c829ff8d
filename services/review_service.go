package services

import (
	"errors"
	"fmt"
	"time"

	"submitease-api/models"

	"gorm.io/gorm"
)

// ErrReviewSubmitted is returned on any attempt to change a finalized review.
var ErrReviewSubmitted = errors.New("review has already been submitted")

// ReviewDraft carries the editable fields of a review.
type ReviewDraft struct {
	Originality    int
	Clarity        int
	Soundness      int
	Significance   int
	Relevance      int
	Comment        string
	Recommendation string
}

// AssignReviewer creates the draft review row for a (paper, reviewer) pair.
// The unique index rejects a second assignment of the same reviewer.
func AssignReviewer(db *gorm.DB, paperID string, reviewerID int, isBlind bool) (*models.Review, error) {
	var existing models.Review
	err := db.Where("paper_id = ? AND reviewer_id = ?", paperID, reviewerID).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("reviewer %d is already assigned to paper %s", reviewerID, paperID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	review := models.Review{
		PaperID:    paperID,
		ReviewerID: reviewerID,
		IsBlind:    isBlind,
		CreateAt:   &now,
	}
	if err := db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// SaveReview stores a draft. Repeatable until the review is submitted.
func SaveReview(db *gorm.DB, review *models.Review, draft ReviewDraft) error {
	if review.IsSubmitted() {
		return ErrReviewSubmitted
	}
	applyDraft(review, draft)
	now := time.Now()
	review.UpdateAt = &now
	return db.Save(review).Error
}

// SubmitReview finalizes a review: validates scores and recommendation,
// stamps submitted_at and persists the derived avg_score. One-shot.
func SubmitReview(db *gorm.DB, review *models.Review, draft ReviewDraft) error {
	if review.IsSubmitted() {
		return ErrReviewSubmitted
	}
	applyDraft(review, draft)
	if !review.ScoresValid() {
		return fmt.Errorf("all scores must be between 1 and 5")
	}
	if !models.ValidRecommendation(review.Recommendation) {
		return fmt.Errorf("invalid recommendation %q", review.Recommendation)
	}
	now := time.Now()
	avg := review.ComputeAvgScore()
	review.SubmittedAt = &now
	review.AvgScore = &avg
	review.UpdateAt = &now
	return db.Save(review).Error
}

// RedactForBlindReview hides author identity from a blind reviewer's view
// of a paper. Both the resolved author records and the ordered author-ID
// list are cleared; the ID list alone resolves to identities through the
// user directory.
func RedactForBlindReview(paper *models.Paper) {
	paper.Authors = nil
	paper.AuthorOrder = nil
}

func applyDraft(review *models.Review, draft ReviewDraft) {
	review.Originality = draft.Originality
	review.Clarity = draft.Clarity
	review.Soundness = draft.Soundness
	review.Significance = draft.Significance
	review.Relevance = draft.Relevance
	review.Comment = draft.Comment
	review.Recommendation = draft.Recommendation
}

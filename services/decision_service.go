package services

import (
	"errors"
	"fmt"
	"time"

	"submitease-api/models"

	"gorm.io/gorm"
)

// BulkDecisionResult reports the outcome of a bulk decision. Papers resolve
// independently; one failure never blocks or rolls back the others.
type BulkDecisionResult struct {
	SuccessCount int      `json:"success_count"`
	FailureCount int      `json:"failure_count"`
	FailedIDs    []string `json:"failed_ids"`
}

// Decide applies a final Accept/Reject decision to one paper. The status
// transition is validated against the paper's track kind and the paper is
// marked final.
func Decide(db *gorm.DB, paperID, decision string) (*models.Paper, error) {
	if decision != models.StatusAccepted && decision != models.StatusRejected {
		return nil, fmt.Errorf("decision must be %q or %q", models.StatusAccepted, models.StatusRejected)
	}

	var paper models.Paper
	err := db.Preload("Track").
		Where("paper_id = ? AND delete_at IS NULL", paperID).
		First(&paper).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("paper %s not found", paperID)
		}
		return nil, err
	}

	if err := TransitionPaper(&paper, TrackKindOf(&paper), decision); err != nil {
		return nil, err
	}

	now := time.Now()
	paper.UpdateAt = &now
	if err := db.Model(&models.Paper{}).
		Where("paper_id = ?", paper.PaperID).
		Updates(map[string]interface{}{
			"status":    paper.Status,
			"is_final":  paper.IsFinal,
			"update_at": now,
		}).Error; err != nil {
		return nil, err
	}
	return &paper, nil
}

// BulkDecide fans one decision out over many papers. Every id is attempted
// regardless of earlier failures, and the result carries both counts and the
// ids that failed.
func BulkDecide(db *gorm.DB, paperIDs []string, decision string) BulkDecisionResult {
	result := BulkDecisionResult{FailedIDs: []string{}}
	for _, id := range paperIDs {
		if _, err := Decide(db, id, decision); err != nil {
			result.FailureCount++
			result.FailedIDs = append(result.FailedIDs, id)
			continue
		}
		result.SuccessCount++
	}
	return result
}

// SendBack moves a journal paper into Revision Required by recording a new
// revision row. Conference-track papers have no revision loop.
func SendBack(db *gorm.DB, paper *models.Paper, note string) (*models.Revision, error) {
	kind := TrackKindOf(paper)
	if kind != models.TrackKindJournal {
		return nil, fmt.Errorf("paper %s is not on a journal track", paper.PaperID)
	}
	if err := TransitionPaper(paper, kind, models.StatusRevisionRequired); err != nil {
		return nil, err
	}

	revision := models.Revision{
		PaperID:   paper.PaperID,
		Status:    models.StatusRevisionRequired,
		Note:      note,
		CreatedAt: time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&revision).Error; err != nil {
			return err
		}
		return tx.Model(&models.Paper{}).
			Where("paper_id = ?", paper.PaperID).
			Update("status", models.StatusRevisionRequired).Error
	})
	if err != nil {
		return nil, err
	}
	return &revision, nil
}

// ResubmitRevision records the author's revised file and loops the paper
// back to Under Review. Only a journal paper that was actually sent back
// may take this path; everything else goes through the normal submission
// flow with its deadline and file checks.
func ResubmitRevision(db *gorm.DB, paper *models.Paper, fileURL string) (*models.Revision, error) {
	kind := TrackKindOf(paper)
	if kind != models.TrackKindJournal {
		return nil, fmt.Errorf("paper %s is not on a journal track", paper.PaperID)
	}
	if paper.Status != models.StatusRevisionRequired {
		return nil, fmt.Errorf("paper %s has no pending revision request", paper.PaperID)
	}
	if err := TransitionPaper(paper, kind, models.StatusUnderReview); err != nil {
		return nil, err
	}

	revision := models.Revision{
		PaperID:   paper.PaperID,
		Status:    models.StatusUnderReview,
		FileURL:   fileURL,
		CreatedAt: time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&revision).Error; err != nil {
			return err
		}
		return tx.Model(&models.Paper{}).
			Where("paper_id = ?", paper.PaperID).
			Updates(map[string]interface{}{
				"status":   models.StatusUnderReview,
				"file_url": fileURL,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &revision, nil
}

package services

import "submitease-api/models"

// AverageRating recomputes a paper's displayed rating from its submitted
// reviews. Draft reviews (no avg_score yet) are excluded. The boolean is
// false when no scored review exists; such papers display "N/A" and rate 0.
func AverageRating(reviews []models.Review) (float64, bool) {
	var sum float64
	var n int
	for _, r := range reviews {
		if r.AvgScore == nil {
			continue
		}
		sum += *r.AvgScore
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// ApplyRating fills the paper's transient rating fields from its loaded
// reviews. Aggregates are never persisted; every paper-list read recomputes.
func ApplyRating(paper *models.Paper) {
	paper.AverageRating, paper.HasRating = AverageRating(paper.Reviews)
}

// PassesMinRating applies the rating filter: a minimum of 0 means no
// minimum, and unrated papers are excluded by any positive threshold.
func PassesMinRating(paper *models.Paper, minRating float64) bool {
	if minRating <= 0 {
		return true
	}
	return paper.HasRating && paper.AverageRating >= minRating
}

// PreparePaperView readies a paper for a non-chair reader: the rating
// aggregate is recomputed, the authors are put in their persisted order,
// and the review rows themselves are stripped. Review contents are
// chair-only; everyone else sees just the aggregate.
func PreparePaperView(paper *models.Paper) {
	ApplyRating(paper)
	paper.SortAuthors()
	paper.Reviews = nil
}

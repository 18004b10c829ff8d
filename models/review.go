package models

import "time"

// Review recommendations.
const (
	RecommendStrongAccept = "Strong Accept"
	RecommendWeakAccept   = "Weak Accept"
	RecommendReject       = "Reject"
)

// ValidRecommendation reports whether r is an accepted recommendation value.
func ValidRecommendation(r string) bool {
	switch r {
	case RecommendStrongAccept, RecommendWeakAccept, RecommendReject:
		return true
	}
	return false
}

// Review is one reviewer's scored assessment of one paper. At most one row
// exists per (paper, reviewer) pair, enforced by the unique index.
type Review struct {
	ReviewID   int    `gorm:"primaryKey;column:review_id" json:"review_id"`
	PaperID    string `gorm:"column:paper_id;uniqueIndex:idx_paper_reviewer,priority:1" json:"paper_id"`
	ReviewerID int    `gorm:"column:reviewer_id;uniqueIndex:idx_paper_reviewer,priority:2" json:"reviewer_id"`

	Originality  int `gorm:"column:originality" json:"originality"`
	Clarity      int `gorm:"column:clarity" json:"clarity"`
	Soundness    int `gorm:"column:soundness" json:"soundness"`
	Significance int `gorm:"column:significance" json:"significance"`
	Relevance    int `gorm:"column:relevance" json:"relevance"`

	Comment        string `gorm:"column:comment" json:"comment"`
	Recommendation string `gorm:"column:recommendation" json:"recommendation"`
	IsBlind        bool   `gorm:"column:is_blind" json:"is_blind"`

	// SubmittedAt is null while the review is a draft. Once set the review
	// is immutable.
	SubmittedAt *time.Time `gorm:"column:submitted_at" json:"submitted_at"`
	AvgScore    *float64   `gorm:"column:avg_score" json:"avg_score"`

	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Paper    *Paper `gorm:"foreignKey:PaperID;references:PaperID" json:"paper,omitempty"`
	Reviewer *User  `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

// IsSubmitted reports whether the review has been finalized.
func (r *Review) IsSubmitted() bool {
	return r.SubmittedAt != nil
}

// ComputeAvgScore returns the mean of the five sub-scores.
func (r *Review) ComputeAvgScore() float64 {
	sum := r.Originality + r.Clarity + r.Soundness + r.Significance + r.Relevance
	return float64(sum) / 5.0
}

// ScoresValid reports whether every sub-score lies in the 1..5 range.
func (r *Review) ScoresValid() bool {
	for _, s := range []int{r.Originality, r.Clarity, r.Soundness, r.Significance, r.Relevance} {
		if s < 1 || s > 5 {
			return false
		}
	}
	return true
}

package controllers

import (
	"errors"
	"net/http"

	"submitease-api/config"
	"submitease-api/models"
	"submitease-api/services"

	"github.com/gin-gonic/gin"
)

// AssignReviewer creates a draft review for a (paper, reviewer) pair and
// emails the invitation. Track chair / host only.
func AssignReviewer(c *gin.Context) {
	type AssignReviewerRequest struct {
		PaperID    string `json:"paper_id" binding:"required"`
		ReviewerID int    `json:"reviewer_id" binding:"required"`
		IsBlind    bool   `json:"is_blind"`
	}
	var req AssignReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var paper models.Paper
	if err := config.DB.Where("paper_id = ? AND delete_at IS NULL", req.PaperID).
		First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	if !canDecideOnPaper(c, &paper) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only a chair of this paper's track may assign reviewers"})
		return
	}

	var reviewer models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", req.ReviewerID).
		First(&reviewer).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reviewer not found"})
		return
	}
	if !reviewer.HasRole(models.RoleReviewer) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User does not hold the Reviewer role"})
		return
	}

	review, err := services.AssignReviewer(config.DB, paper.PaperID, reviewer.UserID, req.IsBlind)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	services.NotifyReviewerInvite(config.DB, &reviewer, &paper)

	c.JSON(http.StatusCreated, gin.H{"success": true, "review": review})
}

type reviewPayload struct {
	PaperID        string `json:"paper_id" binding:"required"`
	Originality    int    `json:"originality"`
	Clarity        int    `json:"clarity"`
	Soundness      int    `json:"soundness"`
	Significance   int    `json:"significance"`
	Relevance      int    `json:"relevance"`
	Comment        string `json:"comment"`
	Recommendation string `json:"recommendation"`
}

func (p reviewPayload) draft() services.ReviewDraft {
	return services.ReviewDraft{
		Originality:    p.Originality,
		Clarity:        p.Clarity,
		Soundness:      p.Soundness,
		Significance:   p.Significance,
		Relevance:      p.Relevance,
		Comment:        p.Comment,
		Recommendation: p.Recommendation,
	}
}

// loadOwnReview fetches the caller's review row for the paper.
func loadOwnReview(c *gin.Context, paperID string) (*models.Review, bool) {
	var review models.Review
	if err := config.DB.Where("paper_id = ? AND reviewer_id = ?", paperID, currentUserID(c)).
		First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "You are not assigned to review this paper"})
		return nil, false
	}
	return &review, true
}

// SaveReview stores a draft review. Repeatable until submission.
func SaveReview(c *gin.Context) {
	var req reviewPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, ok := loadOwnReview(c, req.PaperID)
	if !ok {
		return
	}

	if err := services.SaveReview(config.DB, review, req.draft()); err != nil {
		if errors.Is(err, services.ErrReviewSubmitted) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Review has already been submitted"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "review": review})
}

// SubmitReview finalizes the caller's review. One-shot; later saves fail.
func SubmitReview(c *gin.Context) {
	var req reviewPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, ok := loadOwnReview(c, req.PaperID)
	if !ok {
		return
	}

	if err := services.SubmitReview(config.DB, review, req.draft()); err != nil {
		if errors.Is(err, services.ErrReviewSubmitted) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Review has already been submitted"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "review": review})
}

// GetReview returns the caller's review for a paper. When the review is
// blind the paper carries no author identity, neither the author records
// nor the ordered id list.
func GetReview(c *gin.Context) {
	type GetReviewRequest struct {
		PaperID string `json:"paper_id" binding:"required"`
	}
	var req GetReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, ok := loadOwnReview(c, req.PaperID)
	if !ok {
		return
	}

	var paper models.Paper
	query := config.DB.Where("paper_id = ? AND delete_at IS NULL", req.PaperID)
	if !review.IsBlind {
		query = query.Preload("Authors")
	}
	if err := query.First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}
	if review.IsBlind {
		services.RedactForBlindReview(&paper)
	} else {
		paper.SortAuthors()
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "review": review, "paper": paper})
}

// GetPaperReviews lists a paper's reviews for its chairs.
func GetPaperReviews(c *gin.Context) {
	paperID := c.Param("id")

	var paper models.Paper
	if err := config.DB.Where("paper_id = ? AND delete_at IS NULL", paperID).
		First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	if !canDecideOnPaper(c, &paper) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only a chair of this paper's track may view its reviews"})
		return
	}

	var reviews []models.Review
	if err := config.DB.Preload("Reviewer").
		Where("paper_id = ?", paperID).
		Order("review_id ASC").
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	avg, has := services.AverageRating(reviews)

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"reviews":        reviews,
		"total":          len(reviews),
		"average_rating": avg,
		"has_rating":     has,
	})
}

// GetMyReviews lists the caller's review assignments.
func GetMyReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Preload("Paper").
		Where("reviewer_id = ?", currentUserID(c)).
		Order("review_id DESC").
		Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews, "total": len(reviews)})
}

// RemindReviewer sends a reminder for a pending review. Best-effort.
func RemindReviewer(c *gin.Context) {
	type RemindRequest struct {
		PaperID    string `json:"paper_id" binding:"required"`
		ReviewerID int    `json:"reviewer_id" binding:"required"`
	}
	var req RemindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var paper models.Paper
	if err := config.DB.Where("paper_id = ? AND delete_at IS NULL", req.PaperID).
		First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}
	if !canDecideOnPaper(c, &paper) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only a chair of this paper's track may send reminders"})
		return
	}

	var review models.Review
	if err := config.DB.Where("paper_id = ? AND reviewer_id = ?", req.PaperID, req.ReviewerID).
		First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review assignment not found"})
		return
	}
	if review.IsSubmitted() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Review has already been submitted"})
		return
	}

	var reviewer models.User
	if err := config.DB.Where("user_id = ?", req.ReviewerID).First(&reviewer).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reviewer not found"})
		return
	}

	services.NotifyReviewReminder(config.DB, &reviewer, &paper)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reminder sent"})
}

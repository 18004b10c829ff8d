package controllers

import (
	"net/http"

	"submitease-api/config"
	"submitease-api/models"
	"submitease-api/services"

	"github.com/gin-gonic/gin"
)

// FinalPaperDecision applies an Accept/Reject decision to one paper and
// notifies its authors.
func FinalPaperDecision(c *gin.Context) {
	type DecisionRequest struct {
		PaperID  string `json:"paper_id" binding:"required"`
		Decision string `json:"decision" binding:"required"`
	}
	var req DecisionRequest
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
		c.JSON(http.StatusForbidden, gin.H{"error": "Only a chair of this paper's track may decide"})
		return
	}

	decided, err := services.Decide(config.DB, req.PaperID, req.Decision)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config.DB.Preload("Authors").Where("paper_id = ?", decided.PaperID).First(decided)
	services.NotifyDecision(config.DB, decided)

	c.JSON(http.StatusOK, gin.H{"success": true, "paper": decided})
}

// BulkDecision fans one decision out over many papers. Each id resolves
// independently; the response reports success and failure counts along with
// the ids that failed.
func BulkDecision(c *gin.Context) {
	type BulkDecisionRequest struct {
		PaperIDs []string `json:"paper_ids" binding:"required,min=1"`
		Decision string   `json:"decision" binding:"required"`
	}
	var req BulkDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Decision != models.StatusAccepted && req.Decision != models.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Decision must be Accepted or Rejected"})
		return
	}

	// Authorization is per paper: ids the caller cannot decide on count as
	// failures rather than failing the whole batch.
	allowed := make([]string, 0, len(req.PaperIDs))
	result := services.BulkDecisionResult{FailedIDs: []string{}}
	for _, id := range req.PaperIDs {
		var paper models.Paper
		if err := config.DB.Where("paper_id = ? AND delete_at IS NULL", id).
			First(&paper).Error; err != nil || !canDecideOnPaper(c, &paper) {
			result.FailureCount++
			result.FailedIDs = append(result.FailedIDs, id)
			continue
		}
		allowed = append(allowed, id)
	}

	decided := services.BulkDecide(config.DB, allowed, req.Decision)
	result.SuccessCount = decided.SuccessCount
	result.FailureCount += decided.FailureCount
	result.FailedIDs = append(result.FailedIDs, decided.FailedIDs...)

	failed := make(map[string]bool, len(decided.FailedIDs))
	for _, id := range decided.FailedIDs {
		failed[id] = true
	}
	for _, id := range allowed {
		if failed[id] {
			continue
		}
		var paper models.Paper
		if err := config.DB.Preload("Authors").
			Where("paper_id = ?", id).
			First(&paper).Error; err == nil {
			services.NotifyDecision(config.DB, &paper)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

// SendBackPaper moves a journal paper into Revision Required and notifies
// the authors.
func SendBackPaper(c *gin.Context) {
	type SendBackRequest struct {
		PaperID string `json:"paper_id" binding:"required"`
		Note    string `json:"note"`
	}
	var req SendBackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var paper models.Paper
	if err := config.DB.Preload("Track").Preload("Authors").
		Where("paper_id = ? AND delete_at IS NULL", req.PaperID).
		First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}
	if !canDecideOnPaper(c, &paper) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only a chair of this paper's track may send it back"})
		return
	}

	revision, err := services.SendBack(config.DB, &paper, req.Note)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	services.NotifySendBack(config.DB, &paper, req.Note)

	c.JSON(http.StatusOK, gin.H{"success": true, "revision": revision})
}

// ResubmitRevision records an author's revised paper file and loops the
// paper back to Under Review.
func ResubmitRevision(c *gin.Context) {
	type ResubmitRequest struct {
		PaperID string `json:"paper_id" binding:"required"`
		FileURL string `json:"file_url" binding:"required"`
	}
	var req ResubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var paper models.Paper
	if err := config.DB.Preload("Track").
		Where("paper_id = ? AND delete_at IS NULL", req.PaperID).
		First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}
	if !isPaperAuthor(c, paper.PaperID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only listed authors may resubmit"})
		return
	}

	revision, err := services.ResubmitRevision(config.DB, &paper, req.FileURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "revision": revision})
}

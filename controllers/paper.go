package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"submitease-api/config"
	"submitease-api/models"
	"submitease-api/services"
	"submitease-api/utils"

	"github.com/gin-gonic/gin"
)

type SavePaperRequest struct {
	PaperID      string   `json:"paper_id"` // empty on create
	ConferenceID int      `json:"conference_id" binding:"required"`
	TrackID      *int     `json:"track_id"`
	Title        string   `json:"title" binding:"required"`
	Abstract     string   `json:"abstract"`
	Keywords     []string `json:"keywords"`
	AuthorIDs    []int    `json:"author_ids" binding:"required,min=1"`
}

// SavePaper creates or updates a draft paper. New papers enter Pending
// Submission with a freshly reserved identifier; updates are only allowed
// while the paper is still editable.
func SavePaper(c *gin.Context) {
	var req SavePaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Title = utils.SanitizeInput(req.Title)
	req.Abstract = utils.SanitizeInput(req.Abstract)
	req.Keywords = utils.SanitizeList(req.Keywords)
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	var conference models.Conference
	if err := config.DB.Where("conference_id = ? AND delete_at IS NULL", req.ConferenceID).
		First(&conference).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conference not found"})
		return
	}

	if req.TrackID != nil {
		var track models.Track
		if err := config.DB.Where("track_id = ? AND conference_id = ? AND delete_at IS NULL",
			*req.TrackID, req.ConferenceID).First(&track).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Track does not belong to this conference"})
			return
		}
	}

	var authors []models.User
	if err := config.DB.Where("user_id IN ? AND delete_at IS NULL", req.AuthorIDs).
		Find(&authors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch authors"})
		return
	}
	if len(authors) != len(req.AuthorIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "One or more author ids are invalid"})
		return
	}

	if !models.IntList(req.AuthorIDs).Contains(currentUserID(c)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The submitting author must be on the author list"})
		return
	}

	if req.PaperID != "" {
		updatePaper(c, req, authors)
		return
	}

	now := time.Now()
	paper := models.Paper{
		ConferenceID: req.ConferenceID,
		TrackID:      req.TrackID,
		Title:        req.Title,
		Abstract:     req.Abstract,
		Keywords:     models.StringList(req.Keywords),
		Status:       models.StatusPendingSubmission,
		AuthorOrder:  models.IntList(req.AuthorIDs),
		CreateAt:     &now,
	}

	if err := services.AssignPaperID(config.DB, &paper, &conference); err != nil {
		if errors.Is(err, services.ErrEmptyAbbreviation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Conference name cannot be abbreviated"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create paper"})
		return
	}

	if err := config.DB.Model(&paper).Association("Authors").Replace(authors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach authors"})
		return
	}

	paper.Authors = authors
	paper.SortAuthors()

	c.JSON(http.StatusCreated, gin.H{"success": true, "paper": paper})
}

// validatePaperUpdate guards the fields an update must not change: a paper
// stays with the conference that issued its identifier, so its track can
// only be swapped within that conference.
func validatePaperUpdate(req SavePaperRequest, paper *models.Paper) string {
	if req.ConferenceID != paper.ConferenceID {
		return "Paper cannot be moved to another conference"
	}
	return ""
}

func updatePaper(c *gin.Context, req SavePaperRequest, authors []models.User) {
	var paper models.Paper
	if err := config.DB.Where("paper_id = ? AND delete_at IS NULL", req.PaperID).
		First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	if msg := validatePaperUpdate(req, &paper); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if !isPaperAuthor(c, paper.PaperID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only listed authors may edit the paper"})
		return
	}
	if !paper.IsEditable() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paper can no longer be edited"})
		return
	}

	now := time.Now()
	paper.Title = req.Title
	paper.Abstract = req.Abstract
	paper.Keywords = models.StringList(req.Keywords)
	paper.TrackID = req.TrackID
	paper.AuthorOrder = models.IntList(req.AuthorIDs)
	paper.UpdateAt = &now

	if err := config.DB.Save(&paper).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update paper"})
		return
	}
	if err := config.DB.Model(&paper).Association("Authors").Replace(authors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update authors"})
		return
	}

	paper.Authors = authors
	paper.SortAuthors()

	c.JSON(http.StatusOK, gin.H{"success": true, "paper": paper})
}

// SubmitPaper moves a draft into Under Review and stamps submitted_at.
// Rejected when the conference deadline has passed.
func SubmitPaper(c *gin.Context) {
	type SubmitPaperRequest struct {
		PaperID string `json:"paper_id" binding:"required"`
	}
	var req SubmitPaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var paper models.Paper
	if err := config.DB.Preload("Conference").Preload("Track").
		Where("paper_id = ? AND delete_at IS NULL", req.PaperID).
		First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	if !isPaperAuthor(c, paper.PaperID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only listed authors may submit the paper"})
		return
	}

	now := time.Now()
	if paper.Conference == nil || !paper.Conference.SubmissionOpen(now) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The submission deadline has passed"})
		return
	}
	if paper.FileURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Upload the paper file before submitting"})
		return
	}

	if err := services.TransitionPaper(&paper, services.TrackKindOf(&paper), models.StatusUnderReview); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	paper.SubmittedAt = &now
	paper.UpdateAt = &now

	if err := config.DB.Model(&models.Paper{}).
		Where("paper_id = ?", paper.PaperID).
		Updates(map[string]interface{}{
			"status":       paper.Status,
			"submitted_at": now,
			"update_at":    now,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit paper"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "paper": paper})
}

// GetPapers lists papers with recomputed average ratings. Filters:
// author_id, conference_id, track_id, status, min_rating. A min_rating of 0
// means no minimum; any positive threshold excludes unrated papers.
func GetPapers(c *gin.Context) {
	query := config.DB.Preload("Authors").Preload("Reviews").Preload("Revisions").
		Preload("Track").
		Where("papers.delete_at IS NULL")

	if authorID := c.Query("author_id"); authorID != "" {
		query = query.Joins("JOIN paper_authors pa ON pa.paper_id = papers.paper_id").
			Where("pa.user_id = ?", authorID)
	}
	if conferenceID := c.Query("conference_id"); conferenceID != "" {
		query = query.Where("papers.conference_id = ?", conferenceID)
	}
	if trackID := c.Query("track_id"); trackID != "" {
		query = query.Where("papers.track_id = ?", trackID)
	}

	var papers []models.Paper
	if err := query.Order("papers.create_at DESC").Find(&papers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch papers"})
		return
	}

	minRating := 0.0
	if raw := c.Query("min_rating"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			minRating = v
		}
	}
	statusFilter := c.Query("status")

	out := make([]models.Paper, 0, len(papers))
	for i := range papers {
		p := &papers[i]
		services.PreparePaperView(p)
		if statusFilter != "" && services.EffectiveStatus(p, services.TrackKindOf(p)) != statusFilter {
			continue
		}
		if !services.PassesMinRating(p, minRating) {
			continue
		}
		out = append(out, *p)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "papers": out, "total": len(out)})
}

// GetPaper returns one paper with authors in their persisted order, its
// revisions and recomputed rating. Individual review rows are included
// only for callers entitled to decide on the paper; everyone else gets
// the aggregate alone.
func GetPaper(c *gin.Context) {
	var paper models.Paper
	if err := config.DB.
		Preload("Authors").Preload("Reviews.Reviewer").Preload("Revisions").
		Preload("Track").Preload("Conference").
		Where("paper_id = ? AND delete_at IS NULL", c.Param("id")).
		First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	services.ApplyRating(&paper)
	paper.SortAuthors()
	if !canDecideOnPaper(c, &paper) {
		paper.Reviews = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"paper":            paper,
		"effective_status": services.EffectiveStatus(&paper, services.TrackKindOf(&paper)),
	})
}

// ReorderAuthors persists a new author order for a paper. The order list
// must contain exactly the paper's current authors.
func ReorderAuthors(c *gin.Context) {
	type ReorderRequest struct {
		PaperID   string `json:"paper_id" binding:"required"`
		AuthorIDs []int  `json:"author_ids" binding:"required,min=1"`
	}
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var paper models.Paper
	if err := config.DB.Preload("Authors").
		Where("paper_id = ? AND delete_at IS NULL", req.PaperID).
		First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	if !isPaperAuthor(c, paper.PaperID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only listed authors may reorder the author list"})
		return
	}

	requested := make(map[int]bool, len(req.AuthorIDs))
	for _, id := range req.AuthorIDs {
		requested[id] = true
	}
	if len(requested) != len(req.AuthorIDs) || len(requested) != len(paper.Authors) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order list must contain each author exactly once"})
		return
	}
	for _, u := range paper.Authors {
		if !requested[u.UserID] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order list must contain each author exactly once"})
			return
		}
	}

	now := time.Now()
	if err := config.DB.Model(&models.Paper{}).
		Where("paper_id = ?", paper.PaperID).
		Updates(map[string]interface{}{
			"author_order": models.IntList(req.AuthorIDs),
			"update_at":    now,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder authors"})
		return
	}

	paper.AuthorOrder = models.IntList(req.AuthorIDs)
	paper.SortAuthors()

	c.JSON(http.StatusOK, gin.H{"success": true, "authors": paper.Authors})
}

package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"submitease-api/config"
	"submitease-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Upload kinds map to the paper field that stores the resulting link.
const (
	uploadKindPaper        = "paper"
	uploadKindCopyright    = "copyright"
	uploadKindFinalPaper   = "final_paper"
	uploadKindRegistration = "registration"
)

var allowedUploadExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".png": true, ".jpg": true, ".jpeg": true,
}

const maxUploadBytes = 25 << 20 // 25 MB

// UploadPaperDocument accepts a multipart file for a paper and stores it
// under UPLOAD_PATH with a generated name. The served link is persisted on
// the paper field selected by the "kind" form value.
func UploadPaperDocument(c *gin.Context) {
	paperID := c.Param("id")
	kind := c.DefaultPostForm("kind", uploadKindPaper)

	var paper models.Paper
	if err := config.DB.Where("paper_id = ? AND delete_at IS NULL", paperID).
		First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	if !isPaperAuthor(c, paper.PaperID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only listed authors may upload documents"})
		return
	}

	switch kind {
	case uploadKindPaper:
		if !paper.IsEditable() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Paper can no longer be edited"})
			return
		}
	case uploadKindCopyright, uploadKindFinalPaper, uploadKindRegistration:
		if paper.Status != models.StatusAccepted {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Paper must be accepted first"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document kind"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 25MB limit"})
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
		return
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	dir := filepath.Join(uploadPath, "papers", paper.PaperID)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	storedName := fmt.Sprintf("%s_%s%s", kind, uuid.New().String(), ext)
	dest := filepath.Join(dir, storedName)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	link := fmt.Sprintf("/files/papers/%s/%s", paper.PaperID, storedName)

	column := map[string]string{
		uploadKindPaper:        "file_url",
		uploadKindCopyright:    "copyright_url",
		uploadKindFinalPaper:   "final_paper_url",
		uploadKindRegistration: "registration_url",
	}[kind]

	now := time.Now()
	if err := config.DB.Model(&models.Paper{}).
		Where("paper_id = ?", paper.PaperID).
		Updates(map[string]interface{}{column: link, "update_at": now}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"kind":    kind,
		"url":     link,
		"name":    file.Filename,
	})
}

// VerifyPublication marks the publication workflow complete once the
// camera-ready and copyright documents are in place. Publication chair or
// conference host only.
func VerifyPublication(c *gin.Context) {
	completePostAcceptance(c, func(paper *models.Paper) (string, string) {
		if paper.FinalPaperURL == "" || paper.CopyrightURL == "" {
			return "", "Camera-ready and copyright documents are required"
		}
		return "completed", ""
	}, isPublicationChair)
}

// VerifyRegistration marks the registration workflow complete once the
// payment proof is in place. Registration chair or conference host only.
func VerifyRegistration(c *gin.Context) {
	completePostAcceptance(c, func(paper *models.Paper) (string, string) {
		if paper.RegistrationURL == "" {
			return "", "Registration payment proof is required"
		}
		return "completed_registration", ""
	}, isRegistrationChair)
}

func completePostAcceptance(c *gin.Context, check func(*models.Paper) (string, string), chairCheck func(*gin.Context, int) bool) {
	paperID := c.Param("id")

	var paper models.Paper
	if err := config.DB.Where("paper_id = ? AND delete_at IS NULL", paperID).
		First(&paper).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}

	if !chairCheck(c, paper.ConferenceID) && !isConferenceHost(c, paper.ConferenceID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only a chair of this conference may verify"})
		return
	}
	if paper.Status != models.StatusAccepted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paper is not accepted"})
		return
	}

	column, problem := check(&paper)
	if problem != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": problem})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&models.Paper{}).
		Where("paper_id = ?", paper.PaperID).
		Updates(map[string]interface{}{column: true, "update_at": now}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

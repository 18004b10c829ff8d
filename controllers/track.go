package controllers

import (
	"net/http"
	"strconv"
	"time"

	"submitease-api/config"
	"submitease-api/models"

	"github.com/gin-gonic/gin"
)

// CreateTrack adds a track to a conference the caller hosts.
func CreateTrack(c *gin.Context) {
	type CreateTrackRequest struct {
		ConferenceID int    `json:"conference_id" binding:"required"`
		Name         string `json:"name" binding:"required"`
		Kind         string `json:"kind"`
	}

	var req CreateTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !isConferenceHost(c, req.ConferenceID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the conference host may create tracks"})
		return
	}

	kind := req.Kind
	if kind == "" {
		kind = models.TrackKindConference
	}
	if kind != models.TrackKindConference && kind != models.TrackKindJournal {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Track kind must be conference or journal"})
		return
	}

	var conference models.Conference
	if err := config.DB.Where("conference_id = ? AND delete_at IS NULL", req.ConferenceID).
		First(&conference).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conference not found"})
		return
	}

	now := time.Now()
	track := models.Track{
		Name:         req.Name,
		Kind:         kind,
		ConferenceID: req.ConferenceID,
		CreateAt:     &now,
	}

	if err := config.DB.Create(&track).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create track"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "track": track})
}

// GetTracks lists a conference's tracks with chairs.
func GetTracks(c *gin.Context) {
	conferenceID := c.Query("conference_id")
	if conferenceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "conference_id is required"})
		return
	}

	var tracks []models.Track
	if err := config.DB.Preload("Chairs").
		Where("conference_id = ? AND delete_at IS NULL", conferenceID).
		Order("track_id ASC").
		Find(&tracks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tracks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tracks": tracks, "total": len(tracks)})
}

// AssignTrackChairs replaces the full chair set of a track. Idempotent and
// set-replacing; adding one chair is done by sending the current set plus
// the new member.
func AssignTrackChairs(c *gin.Context) {
	type AssignTrackChairsRequest struct {
		TrackID int   `json:"track_id" binding:"required"`
		UserIDs []int `json:"user_ids" binding:"required"`
	}

	var req AssignTrackChairsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var track models.Track
	if err := config.DB.Where("track_id = ? AND delete_at IS NULL", req.TrackID).
		First(&track).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Track not found"})
		return
	}

	if !isConferenceHost(c, track.ConferenceID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the conference host may assign track chairs"})
		return
	}

	users, ok := loadChairUsers(c, req.UserIDs, models.RoleTrackChair)
	if !ok {
		return
	}

	if err := config.DB.Model(&track).Association("Chairs").Replace(users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign track chairs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "chairs": users, "total": len(users)})
}

// RemoveTrackChair removes one chair from a track.
func RemoveTrackChair(c *gin.Context) {
	trackID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid track id"})
		return
	}
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var track models.Track
	if err := config.DB.Where("track_id = ? AND delete_at IS NULL", trackID).
		First(&track).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Track not found"})
		return
	}

	if !isConferenceHost(c, track.ConferenceID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the conference host may remove track chairs"})
		return
	}

	if err := config.DB.Model(&track).Association("Chairs").
		Delete(&models.User{UserID: userID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove track chair"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

package controllers

import (
	"net/http"
	"strconv"
	"time"

	"submitease-api/config"
	"submitease-api/models"

	"github.com/gin-gonic/gin"
)

type ConferenceRequest struct {
	Name               string     `json:"name" binding:"required"`
	Location           string     `json:"location"`
	StartDate          time.Time  `json:"start_date" binding:"required"`
	EndDate            time.Time  `json:"end_date" binding:"required"`
	SubmissionDeadline *time.Time `json:"submission_deadline"`
	Website            string     `json:"website"`
	Partners           []string   `json:"partners"`
}

// CreateConference registers a new conference hosted by the caller. New
// conferences await approval before accepting submissions.
func CreateConference(c *gin.Context) {
	var req ConferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EndDate.Before(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date must not precede start date"})
		return
	}

	now := time.Now()
	conference := models.Conference{
		Name:               req.Name,
		Location:           req.Location,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		SubmissionDeadline: req.SubmissionDeadline,
		Website:            req.Website,
		Status:             models.ConferenceStatusPendingApproval,
		Partners:           models.StringList(req.Partners),
		HostID:             currentUserID(c),
		CreateAt:           &now,
	}

	if err := config.DB.Create(&conference).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create conference"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "conference": conference})
}

// GetConferences lists conferences, optionally filtered by status.
func GetConferences(c *gin.Context) {
	query := config.DB.Preload("Tracks").Preload("Host").
		Where("delete_at IS NULL")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if hostID := c.Query("host_id"); hostID != "" {
		query = query.Where("host_id = ?", hostID)
	}

	var conferences []models.Conference
	if err := query.Order("start_date DESC").Find(&conferences).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "conferences": conferences, "total": len(conferences)})
}

// GetConference returns one conference with tracks and chair sets.
func GetConference(c *gin.Context) {
	var conference models.Conference
	if err := config.DB.
		Preload("Tracks.Chairs").Preload("Host").
		Preload("PublicationChairs").Preload("RegistrationChairs").
		Where("conference_id = ? AND delete_at IS NULL", c.Param("id")).
		First(&conference).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conference not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "conference": conference})
}

// UpdateConference edits core conference details. Editing drops the
// conference back to Pending Approval and it must be re-approved.
func UpdateConference(c *gin.Context) {
	conferenceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conference id"})
		return
	}
	if !isConferenceHost(c, conferenceID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the conference host may edit it"})
		return
	}

	var req ConferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var conference models.Conference
	if err := config.DB.Where("conference_id = ? AND delete_at IS NULL", conferenceID).
		First(&conference).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conference not found"})
		return
	}

	now := time.Now()
	conference.Name = req.Name
	conference.Location = req.Location
	conference.StartDate = req.StartDate
	conference.EndDate = req.EndDate
	conference.SubmissionDeadline = req.SubmissionDeadline
	conference.Website = req.Website
	conference.Partners = models.StringList(req.Partners)
	conference.Status = models.ConferenceStatusPendingApproval
	conference.UpdateAt = &now

	if err := config.DB.Save(&conference).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update conference"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "conference": conference})
}

// ApproveConference moves a pending conference to Open.
func ApproveConference(c *gin.Context) {
	var conference models.Conference
	if err := config.DB.Where("conference_id = ? AND delete_at IS NULL", c.Param("id")).
		First(&conference).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conference not found"})
		return
	}

	if conference.Status != models.ConferenceStatusPendingApproval {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Conference is not awaiting approval"})
		return
	}

	now := time.Now()
	conference.Status = models.ConferenceStatusOpen
	conference.UpdateAt = &now

	if err := config.DB.Save(&conference).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve conference"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "conference": conference})
}

// CloseConference moves a conference to Closed.
func CloseConference(c *gin.Context) {
	conferenceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conference id"})
		return
	}
	if !isConferenceHost(c, conferenceID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the conference host may close it"})
		return
	}

	now := time.Now()
	result := config.DB.Model(&models.Conference{}).
		Where("conference_id = ? AND delete_at IS NULL", conferenceID).
		Updates(map[string]interface{}{"status": models.ConferenceStatusClosed, "update_at": now})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close conference"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conference not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AssignPublicationChairs replaces the conference's publication-chair set.
// Set-replacing and idempotent, like track chair assignment.
func AssignPublicationChairs(c *gin.Context) {
	assignConferenceChairs(c, "PublicationChairs", models.RolePublicationChair)
}

// AssignRegistrationChairs replaces the conference's registration-chair set.
func AssignRegistrationChairs(c *gin.Context) {
	assignConferenceChairs(c, "RegistrationChairs", models.RoleRegistrationChair)
}

func assignConferenceChairs(c *gin.Context, association, role string) {
	conferenceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conference id"})
		return
	}
	if !isConferenceHost(c, conferenceID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the conference host may assign chairs"})
		return
	}

	type AssignChairsRequest struct {
		UserIDs []int `json:"user_ids" binding:"required"`
	}
	var req AssignChairsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var conference models.Conference
	if err := config.DB.Where("conference_id = ? AND delete_at IS NULL", conferenceID).
		First(&conference).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conference not found"})
		return
	}

	users, ok := loadChairUsers(c, req.UserIDs, role)
	if !ok {
		return
	}

	if err := config.DB.Model(&conference).Association(association).Replace(users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign chairs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "chairs": users, "total": len(users)})
}

// loadChairUsers resolves the requested users and grants them the chair
// role tag. Writes an error response and returns false when any id is
// unknown.
func loadChairUsers(c *gin.Context, userIDs []int, role string) ([]models.User, bool) {
	var users []models.User
	if err := config.DB.Where("user_id IN ? AND delete_at IS NULL", userIDs).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return nil, false
	}
	if len(users) != len(userIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "One or more users not found"})
		return nil, false
	}

	now := time.Now()
	for i := range users {
		if !users[i].HasRole(role) {
			users[i].AddRole(role)
			users[i].UpdateAt = &now
			if err := config.DB.Save(&users[i]).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant chair role"})
				return nil, false
			}
		}
	}
	return users, true
}

// RemoveConferenceChair removes a single chair from one of the conference
// chair sets. Distinct from reassignment, which replaces the whole set.
func RemoveConferenceChair(c *gin.Context) {
	conferenceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conference id"})
		return
	}
	if !isConferenceHost(c, conferenceID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the conference host may remove chairs"})
		return
	}

	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	association := "PublicationChairs"
	if c.Query("kind") == "registration" {
		association = "RegistrationChairs"
	}

	var conference models.Conference
	if err := config.DB.Where("conference_id = ? AND delete_at IS NULL", conferenceID).
		First(&conference).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conference not found"})
		return
	}

	if err := config.DB.Model(&conference).Association(association).
		Delete(&models.User{UserID: userID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove chair"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

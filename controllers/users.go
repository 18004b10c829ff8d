package controllers

import (
	"net/http"
	"time"

	"submitease-api/config"
	"submitease-api/models"
	"submitease-api/services"

	"github.com/gin-gonic/gin"
)

// GetUserEmails returns every user's id and email for assignment pickers.
// Deliberately unpaginated: the SPA filters client-side and the directory is
// assumed small.
func GetUserEmails(c *gin.Context) {
	type userEmail struct {
		UserID int    `gorm:"column:user_id" json:"user_id"`
		Email  string `gorm:"column:email" json:"email"`
	}

	var rows []userEmail
	if err := config.DB.Model(&models.User{}).
		Select("user_id", "email").
		Where("delete_at IS NULL").
		Order("email ASC").
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": rows, "total": len(rows)})
}

// GrantRoles adds role tags to a user and emails an invitation. Additive:
// existing roles are kept. Conference hosts use this to invite reviewers
// and chairs.
func GrantRoles(c *gin.Context) {
	type GrantRolesRequest struct {
		UserID int      `json:"user_id" binding:"required"`
		Roles  []string `json:"roles" binding:"required"`
	}

	var req GrantRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid := map[string]bool{
		models.RoleAuthor:            true,
		models.RoleReviewer:          true,
		models.RoleTrackChair:        true,
		models.RolePublicationChair:  true,
		models.RoleRegistrationChair: true,
		models.RoleConferenceHost:    true,
	}
	for _, r := range req.Roles {
		if !valid[r] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role: " + r})
			return
		}
	}

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", req.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	for _, r := range req.Roles {
		user.AddRole(r)
	}
	now := time.Now()
	user.UpdateAt = &now

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update roles"})
		return
	}

	services.Notify(config.DB, &user, "info", "SubmitEase role invitation",
		"You have been granted additional roles on SubmitEase.", nil)

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// GetNotifications lists the caller's in-app notifications, newest first.
func GetNotifications(c *gin.Context) {
	userID, _ := c.Get("userID")

	var rows []models.Notification
	if err := config.DB.
		Where("user_id = ?", userID).
		Order("create_at DESC").
		Limit(100).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notifications": rows, "total": len(rows)})
}

// MarkNotificationRead flags one of the caller's notifications as read.
func MarkNotificationRead(c *gin.Context) {
	userID, _ := c.Get("userID")
	notificationID := c.Param("id")

	result := config.DB.Model(&models.Notification{}).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{"is_read": true, "update_at": time.Now()})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

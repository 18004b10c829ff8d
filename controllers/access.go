package controllers

import (
	"submitease-api/config"
	"submitease-api/models"

	"github.com/gin-gonic/gin"
)

// Per-object authorization helpers. Role middleware gates the endpoint;
// these check that the caller actually holds the role for the object in
// question, not merely the role tag.

func currentUserID(c *gin.Context) int {
	v, _ := c.Get("userID")
	id, _ := v.(int)
	return id
}

func isConferenceHost(c *gin.Context, conferenceID int) bool {
	var count int64
	config.DB.Model(&models.Conference{}).
		Where("conference_id = ? AND host_id = ?", conferenceID, currentUserID(c)).
		Count(&count)
	return count > 0
}

func isTrackChair(c *gin.Context, trackID int) bool {
	var count int64
	config.DB.Table("track_chairs").
		Where("track_id = ? AND user_id = ?", trackID, currentUserID(c)).
		Count(&count)
	return count > 0
}

func isPublicationChair(c *gin.Context, conferenceID int) bool {
	var count int64
	config.DB.Table("conference_publication_chairs").
		Where("conference_id = ? AND user_id = ?", conferenceID, currentUserID(c)).
		Count(&count)
	return count > 0
}

func isRegistrationChair(c *gin.Context, conferenceID int) bool {
	var count int64
	config.DB.Table("conference_registration_chairs").
		Where("conference_id = ? AND user_id = ?", conferenceID, currentUserID(c)).
		Count(&count)
	return count > 0
}

// canDecideOnPaper reports whether the caller may make decisions for the
// paper: chair of its track, or host of its conference.
func canDecideOnPaper(c *gin.Context, paper *models.Paper) bool {
	if paper.TrackID != nil && isTrackChair(c, *paper.TrackID) {
		return true
	}
	return isConferenceHost(c, paper.ConferenceID)
}

// isPaperAuthor reports whether the caller is on the paper's author list.
func isPaperAuthor(c *gin.Context, paperID string) bool {
	var count int64
	config.DB.Table("paper_authors").
		Where("paper_id = ? AND user_id = ?", paperID, currentUserID(c)).
		Count(&count)
	return count > 0
}

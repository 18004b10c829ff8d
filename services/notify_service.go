package services

import (
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"submitease-api/config"
	"submitease-api/models"

	"gorm.io/gorm"
)

// Notify writes an in-app notification and emails the user. Both are
// best-effort: failures are logged and never fail the triggering request.
func Notify(db *gorm.DB, user *models.User, kind, title, message string, paperID *string) {
	notification := models.Notification{
		UserID:         user.UserID,
		Title:          title,
		Message:        message,
		Type:           kind,
		RelatedPaperID: paperID,
		IsRead:         false,
		CreateAt:       time.Now(),
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("Warning: failed to store notification for user %d: %v", user.UserID, err)
	}

	if user.Email == "" {
		return
	}
	body := renderEmailBody(user.FullName(), message)
	if err := config.SendMail([]string{user.Email}, title, body); err != nil {
		log.Printf("Warning: failed to email %s: %v", user.Email, err)
	}
}

// NotifyReviewerInvite emails a reviewer assigned to a paper.
func NotifyReviewerInvite(db *gorm.DB, reviewer *models.User, paper *models.Paper) {
	title := fmt.Sprintf("Review invitation: %s", paper.PaperID)
	msg := fmt.Sprintf("You have been assigned to review paper %s (%s).", paper.PaperID, paper.Title)
	Notify(db, reviewer, "info", title, msg, &paper.PaperID)
}

// NotifyReviewReminder nudges a reviewer with a pending draft review.
func NotifyReviewReminder(db *gorm.DB, reviewer *models.User, paper *models.Paper) {
	title := fmt.Sprintf("Review reminder: %s", paper.PaperID)
	msg := fmt.Sprintf("Your review for paper %s (%s) has not been submitted yet.", paper.PaperID, paper.Title)
	Notify(db, reviewer, "warning", title, msg, &paper.PaperID)
}

// NotifyDecision informs every author of a final decision.
func NotifyDecision(db *gorm.DB, paper *models.Paper) {
	kind := "success"
	if paper.Status == models.StatusRejected {
		kind = "error"
	}
	title := fmt.Sprintf("Decision for %s: %s", paper.PaperID, paper.Status)
	msg := fmt.Sprintf("Your paper %s (%s) has been %s.", paper.PaperID, paper.Title, strings.ToLower(paper.Status))
	for i := range paper.Authors {
		Notify(db, &paper.Authors[i], kind, title, msg, &paper.PaperID)
	}
}

// NotifySendBack informs the authors that a revision is required.
func NotifySendBack(db *gorm.DB, paper *models.Paper, note string) {
	title := fmt.Sprintf("Revision required for %s", paper.PaperID)
	msg := fmt.Sprintf("Paper %s (%s) was sent back for revision. %s", paper.PaperID, paper.Title, note)
	for i := range paper.Authors {
		Notify(db, &paper.Authors[i], "warning", title, msg, &paper.PaperID)
	}
}

var emailTemplate = template.Must(template.New("email").Parse(`
<p>Dear {{.Name}},</p>
<p>{{.Message}}</p>
<p>Regards,<br>The SubmitEase Team</p>
`))

func renderEmailBody(name, message string) string {
	var b strings.Builder
	if err := emailTemplate.Execute(&b, map[string]string{"Name": name, "Message": message}); err != nil {
		return message
	}
	return b.String()
}

package models

import "time"

// Notification is an in-app message shown on a user's dashboard, written on
// decision, invitation and send-back events.
type Notification struct {
	NotificationID uint       `gorm:"primaryKey;column:notification_id" json:"notification_id"`
	UserID         int        `gorm:"column:user_id;index" json:"user_id"`
	Title          string     `gorm:"column:title" json:"title"`
	Message        string     `gorm:"column:message" json:"message"`
	Type           string     `gorm:"column:type" json:"type"` // info|success|warning|error
	RelatedPaperID *string    `gorm:"column:related_paper_id" json:"related_paper_id,omitempty"`
	IsRead         bool       `gorm:"column:is_read" json:"is_read"`
	CreateAt       time.Time  `gorm:"column:create_at" json:"created_at"`
	UpdateAt       *time.Time `gorm:"column:update_at" json:"-"`
}

func (Notification) TableName() string { return "notifications" }

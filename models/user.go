package models

import (
	"time"
)

// Role tags. A user holds a set of these in the roles JSON column.
const (
	RoleAuthor            = "Author"
	RoleReviewer          = "Reviewer"
	RoleTrackChair        = "Track Chair"
	RolePublicationChair  = "Publication Chair"
	RoleRegistrationChair = "Registration Chair"
	RoleConferenceHost    = "Conference Host"
)

type User struct {
	UserID       int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Email        string     `gorm:"column:email;unique" json:"email"`
	Password     string     `gorm:"column:password" json:"-"`
	FirstName    string     `gorm:"column:first_name" json:"first_name"`
	LastName     string     `gorm:"column:last_name" json:"last_name"`
	Roles        StringList `gorm:"column:roles;type:json" json:"roles"`
	Expertise    StringList `gorm:"column:expertise;type:json" json:"expertise"`
	Organisation string     `gorm:"column:organisation" json:"organisation"`
	Country      string     `gorm:"column:country" json:"country"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// HasRole reports whether the user carries the given role tag.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AddRole appends a role tag if not already present.
func (u *User) AddRole(role string) {
	if !u.HasRole(role) {
		u.Roles = append(u.Roles, role)
	}
}

// FullName returns "First Last" for display and email templates.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

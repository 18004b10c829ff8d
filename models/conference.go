package models

import "time"

// Conference status values.
const (
	ConferenceStatusOpen            = "Open"
	ConferenceStatusPendingApproval = "Pending Approval"
	ConferenceStatusClosed          = "Closed"
)

type Conference struct {
	ConferenceID       int        `gorm:"primaryKey;column:conference_id" json:"conference_id"`
	Name               string     `gorm:"column:name" json:"name"`
	Location           string     `gorm:"column:location" json:"location"`
	StartDate          time.Time  `gorm:"column:start_date" json:"start_date"`
	EndDate            time.Time  `gorm:"column:end_date" json:"end_date"`
	SubmissionDeadline *time.Time `gorm:"column:submission_deadline" json:"submission_deadline"`
	Website            string     `gorm:"column:website" json:"website"`
	Status             string     `gorm:"column:status" json:"status"`
	Partners           StringList `gorm:"column:partners;type:json" json:"partners"`
	HostID             int        `gorm:"column:host_id" json:"host_id"`
	CreateAt           *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt           *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt           *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Host               *User   `gorm:"foreignKey:HostID" json:"host,omitempty"`
	Tracks             []Track `gorm:"foreignKey:ConferenceID" json:"tracks,omitempty"`
	PublicationChairs  []User  `gorm:"many2many:conference_publication_chairs;foreignKey:ConferenceID;joinForeignKey:conference_id;References:UserID;joinReferences:user_id" json:"publication_chairs,omitempty"`
	RegistrationChairs []User  `gorm:"many2many:conference_registration_chairs;foreignKey:ConferenceID;joinForeignKey:conference_id;References:UserID;joinReferences:user_id" json:"registration_chairs,omitempty"`
}

func (Conference) TableName() string {
	return "conferences"
}

// SubmissionOpen reports whether new papers may still be submitted.
func (c *Conference) SubmissionOpen(now time.Time) bool {
	if c.Status != ConferenceStatusOpen {
		return false
	}
	if c.SubmissionDeadline != nil && now.After(*c.SubmissionDeadline) {
		return false
	}
	return true
}

// Track kinds. A journal track uses the revision-based status derivation.
const (
	TrackKindConference = "conference"
	TrackKindJournal    = "journal"
)

type Track struct {
	TrackID      int        `gorm:"primaryKey;column:track_id" json:"track_id"`
	Name         string     `gorm:"column:name" json:"name"`
	Kind         string     `gorm:"column:kind" json:"kind"`
	ConferenceID int        `gorm:"column:conference_id" json:"conference_id"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Conference *Conference `gorm:"foreignKey:ConferenceID" json:"conference,omitempty"`
	Chairs     []User      `gorm:"many2many:track_chairs;foreignKey:TrackID;joinForeignKey:track_id;References:UserID;joinReferences:user_id" json:"chairs,omitempty"`
	Papers     []Paper     `gorm:"foreignKey:TrackID" json:"papers,omitempty"`
}

func (Track) TableName() string {
	return "tracks"
}

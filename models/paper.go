package models

import "time"

// Paper status values. These are the only status strings the API accepts or
// emits; handlers must never compare against ad hoc literals.
const (
	StatusPendingSubmission = "Pending Submission"
	StatusUnderReview       = "Under Review"
	StatusAccepted          = "Accepted"
	StatusRejected          = "Rejected"
	StatusRevisionRequired  = "Revision Required"
)

// ValidStatus reports whether s is a member of the closed status enum.
func ValidStatus(s string) bool {
	switch s {
	case StatusPendingSubmission, StatusUnderReview, StatusAccepted,
		StatusRejected, StatusRevisionRequired:
		return true
	}
	return false
}

type Paper struct {
	// PaperID is the human-readable identifier, e.g. "ICML_25_P0001".
	// Immutable once assigned.
	PaperID      string     `gorm:"primaryKey;column:paper_id" json:"paper_id"`
	Seq          int        `gorm:"column:seq;uniqueIndex:idx_conference_seq,priority:2" json:"seq"`
	ConferenceID int        `gorm:"column:conference_id;uniqueIndex:idx_conference_seq,priority:1" json:"conference_id"`
	TrackID      *int       `gorm:"column:track_id" json:"track_id,omitempty"`
	Title        string     `gorm:"column:title" json:"title"`
	Abstract     string     `gorm:"column:abstract" json:"abstract"`
	Keywords     StringList `gorm:"column:keywords;type:json" json:"keywords"`
	FileURL      string     `gorm:"column:file_url" json:"file_url"`
	Status       string     `gorm:"column:status" json:"status"`
	IsFinal      bool       `gorm:"column:is_final" json:"is_final"`
	SubmittedAt  *time.Time `gorm:"column:submitted_at" json:"submitted_at"`

	// AuthorOrder is the author-controlled ordering of the unordered
	// paper_authors relation. See SortAuthors.
	AuthorOrder IntList `gorm:"column:author_order;type:json" json:"author_order"`

	// Post-acceptance publication workflow
	CopyrightURL  string `gorm:"column:copyright_url" json:"copyright_url"`
	FinalPaperURL string `gorm:"column:final_paper_url" json:"final_paper_url"`
	Completed     bool   `gorm:"column:completed" json:"completed"`

	// Post-acceptance registration workflow
	RegistrationURL       string `gorm:"column:registration_url" json:"registration_url"`
	CompletedRegistration bool   `gorm:"column:completed_registration" json:"completed_registration"`

	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Conference *Conference `gorm:"foreignKey:ConferenceID" json:"conference,omitempty"`
	Track      *Track      `gorm:"foreignKey:TrackID" json:"track,omitempty"`
	Authors    []User      `gorm:"many2many:paper_authors;foreignKey:PaperID;joinForeignKey:paper_id;References:UserID;joinReferences:user_id" json:"authors,omitempty"`
	Reviews    []Review    `gorm:"foreignKey:PaperID" json:"reviews,omitempty"`
	Revisions  []Revision  `gorm:"foreignKey:PaperID" json:"revisions,omitempty"`

	// AverageRating is recomputed on read from submitted reviews; it is
	// never persisted.
	AverageRating float64 `gorm:"-" json:"average_rating"`
	HasRating     bool    `gorm:"-" json:"has_rating"`
}

func (Paper) TableName() string {
	return "papers"
}

// IsEditable reports whether authors may still change the paper record.
func (p *Paper) IsEditable() bool {
	return p.Status == StatusPendingSubmission && !p.IsFinal
}

// SortAuthors reorders p.Authors in place according to p.AuthorOrder. Authors
// present in the relation but missing from the order list keep their relative
// position and are appended after the ordered ones; this tolerates drift
// between the two representations instead of failing the read.
func (p *Paper) SortAuthors() {
	if len(p.AuthorOrder) == 0 || len(p.Authors) == 0 {
		return
	}
	pos := make(map[int]int, len(p.AuthorOrder))
	for i, id := range p.AuthorOrder {
		pos[id] = i
	}
	ordered := make([]User, 0, len(p.Authors))
	var trailing []User
	for _, u := range p.Authors {
		if _, ok := pos[u.UserID]; ok {
			ordered = append(ordered, u)
		} else {
			trailing = append(trailing, u)
		}
	}
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && pos[ordered[j-1].UserID] > pos[ordered[j].UserID]; j-- {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
		}
	}
	p.Authors = append(ordered, trailing...)
}

// Correspondent returns the first-ordered author, the paper's primary contact.
func (p *Paper) Correspondent() *User {
	p.SortAuthors()
	if len(p.Authors) == 0 {
		return nil
	}
	return &p.Authors[0]
}

// Revision is a journal-track resubmission record carrying its own status.
type Revision struct {
	RevisionID int        `gorm:"primaryKey;column:revision_id" json:"revision_id"`
	PaperID    string     `gorm:"column:paper_id;index" json:"paper_id"`
	Status     string     `gorm:"column:status" json:"status"`
	FileURL    string     `gorm:"column:file_url" json:"file_url"`
	Note       string     `gorm:"column:note" json:"note"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdateAt   *time.Time `gorm:"column:update_at" json:"update_at"`
}

func (Revision) TableName() string {
	return "revisions"
}

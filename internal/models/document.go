package models

import "time"

type DocumentStatus string

const (
	StatusPending    DocumentStatus = "pending"
	StatusApproved   DocumentStatus = "approved"
	StatusRejected   DocumentStatus = "rejected"
	StatusInProgress DocumentStatus = "in_progress"
)

// ValidStatus reports whether s is one of the four document statuses.
// There is no transition graph: any status may follow any other.
func ValidStatus(s DocumentStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusInProgress:
		return true
	}
	return false
}

// Document is a citizen's request for a document, linking a User to a DocumentType
type Document struct {
	ID          uint           `gorm:"column:document_id;primaryKey;autoIncrement" json:"document_id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	DocTypeID   uint           `gorm:"column:doctype_id;not null;index" json:"doctype_id"`
	Status      DocumentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	RequestDate time.Time      `gorm:"not null" json:"request_date"`
	IssueDate   *time.Time     `json:"issue_date"`
	Notes       *string        `gorm:"type:text" json:"notes"`

	// Foreign key relationships (no cascade: deletes are blocked at the service layer)
	User    User         `gorm:"foreignKey:UserID" json:"-"`
	DocType DocumentType `gorm:"foreignKey:DocTypeID" json:"-"`
}

// EnrichedDocument is a Document joined with display fields from its owning
// user and document type, returned by all read operations
type EnrichedDocument struct {
	Document
	UserName           string `json:"user_name"`
	UserEmail          string `json:"user_email"`
	DocTypeName        string `gorm:"column:doctype_name" json:"doctype_name"`
	DocTypeDescription string `gorm:"column:doctype_description" json:"doctype_description"`
}

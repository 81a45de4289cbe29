package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectType classifies a capstone record within its lifecycle.
type ProjectType string

const (
	TypeProposal  ProjectType = "proposal"
	TypeFinal     ProjectType = "final"
	TypeInventory ProjectType = "inventory"
)

// ProjectStatus is the review status of a capstone record.
type ProjectStatus string

const (
	StatusPending  ProjectStatus = "pending"
	StatusApproved ProjectStatus = "approved"
	StatusRejected ProjectStatus = "rejected"
)

// Progress milestone labels.
const (
	ProgressInProgress       = "In Progress"
	ProgressProposalDefended = "Proposal Defended"
	ProgressFinalDefended    = "Final Capstone Defended"
)

// DefenseResult is the judged outcome of a defense event.
type DefenseResult string

const (
	DefensePassed DefenseResult = "passed"
	DefenseFailed DefenseResult = "failed"
)

// Project represents a capstone research project record in the database.
// Adviser, panel members and documenter are plain faculty names matched by
// equality, never foreign keys.
type Project struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string        `gorm:"not null" json:"title"`
	College     string        `gorm:"not null" json:"college"`
	Department  string        `gorm:"not null" json:"department"`
	Adviser     string        `gorm:"not null" json:"adviser"`
	Members     []string      `gorm:"serializer:json" json:"members"`
	Description string        `json:"description"`
	Type        ProjectType   `gorm:"not null;index" json:"type"`
	Status      ProjectStatus `gorm:"not null" json:"status"`
	Progress    string        `json:"progress"`
	CreatedAt   time.Time     `json:"created_at"`

	// Defense sub-record, populated once a defense is scheduled.
	DefenseSchedule *time.Time    `gorm:"index" json:"defense_schedule,omitempty"`
	Venue           string        `json:"venue,omitempty"`
	PanelMembers    []string      `gorm:"serializer:json" json:"panel_members,omitempty"`
	Documenter      string        `json:"documenter,omitempty"`
	DefenseResult   DefenseResult `json:"defense_result,omitempty"`

	// Back-references written by the move operations. Lookup only.
	ProposalID *uuid.UUID `gorm:"type:uuid" json:"proposal_id,omitempty"`
	OriginalID *uuid.UUID `gorm:"type:uuid" json:"original_id,omitempty"`
}

// HasDefense reports whether a defense has been scheduled for the project.
func (p *Project) HasDefense() bool {
	return p.DefenseSchedule != nil
}

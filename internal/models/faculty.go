package models

import "github.com/google/uuid"

// FacultyMember represents an adviser identity record. The directory is
// append-only: members are created once and never mutated.
type FacultyMember struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"not null;index:idx_faculty_name_dept" json:"name"`
	College    string    `gorm:"not null" json:"college"`
	Department string    `gorm:"not null;index:idx_faculty_name_dept" json:"department"`
}

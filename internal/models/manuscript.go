package models

import (
	"time"

	"github.com/google/uuid"
)

// Manuscript represents the metadata of an uploaded capstone document
// stored in object storage.
type Manuscript struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID        uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	OriginalFilename string    `json:"original_filename"`
	ContentType      string    `json:"content_type"`
	Size             int64     `json:"size"`
	UploadedAt       time.Time `json:"uploaded_at"`
	StorageKey       string    `json:"storage_key"`
}

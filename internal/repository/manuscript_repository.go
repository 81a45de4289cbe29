package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"capstone-service/internal/apperrors"
	"capstone-service/internal/models"
)

// ManuscriptRepository defines persistence operations for manuscript
// metadata rows.
type ManuscriptRepository interface {
	Create(manuscript *models.Manuscript) error
	GetByID(id uuid.UUID) (*models.Manuscript, error)
	ListByProject(projectID uuid.UUID) ([]models.Manuscript, error)
	Delete(id uuid.UUID) error
	DeleteByProject(projectID uuid.UUID) error
}

// ManuscriptRepositoryImpl provides methods to interact with the Manuscript
// model in the database.
type ManuscriptRepositoryImpl struct {
	db *gorm.DB
}

// NewManuscriptRepository creates a new ManuscriptRepositoryImpl instance
// with the provided GORM database connection.
func NewManuscriptRepository(db *gorm.DB) *ManuscriptRepositoryImpl {
	return &ManuscriptRepositoryImpl{db: db}
}

// Create inserts a new Manuscript row into the database.
func (r *ManuscriptRepositoryImpl) Create(manuscript *models.Manuscript) error {
	if err := r.db.Create(manuscript).Error; err != nil {
		return wrapStorage(err, "create manuscript")
	}
	return nil
}

// GetByID retrieves a Manuscript by its ID.
func (r *ManuscriptRepositoryImpl) GetByID(id uuid.UUID) (*models.Manuscript, error) {
	var manuscript models.Manuscript
	err := r.db.First(&manuscript, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.NotFound("manuscript")
	}
	if err != nil {
		return nil, wrapStorage(err, "fetch manuscript")
	}
	return &manuscript, nil
}

// ListByProject retrieves all manuscripts attached to a project, newest
// upload first.
func (r *ManuscriptRepositoryImpl) ListByProject(projectID uuid.UUID) ([]models.Manuscript, error) {
	var manuscripts []models.Manuscript
	err := r.db.Where("project_id = ?", projectID).
		Order("uploaded_at DESC").
		Find(&manuscripts).Error
	if err != nil {
		return nil, wrapStorage(err, "list manuscripts")
	}
	return manuscripts, nil
}

// Delete removes a Manuscript row by its ID.
func (r *ManuscriptRepositoryImpl) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Manuscript{}, "id = ?", id)
	if result.Error != nil {
		return wrapStorage(result.Error, "delete manuscript")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("manuscript")
	}
	return nil
}

// DeleteByProject removes all manuscript rows for a project.
func (r *ManuscriptRepositoryImpl) DeleteByProject(projectID uuid.UUID) error {
	err := r.db.Where("project_id = ?", projectID).Delete(&models.Manuscript{}).Error
	if err != nil {
		return wrapStorage(err, "delete project manuscripts")
	}
	return nil
}

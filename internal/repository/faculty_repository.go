package repository

import (
	"gorm.io/gorm"

	"capstone-service/internal/models"
)

// FacultyRepository defines persistence operations for the faculty
// directory. The directory is append-only: no update or delete.
type FacultyRepository interface {
	Create(member *models.FacultyMember) error
	List() ([]models.FacultyMember, error)
	ExistsInDepartment(name, department string) (bool, error)
}

// FacultyRepositoryImpl provides methods to interact with the FacultyMember
// model in the database.
type FacultyRepositoryImpl struct {
	db *gorm.DB
}

// NewFacultyRepository creates a new FacultyRepositoryImpl instance with the
// provided GORM database connection.
func NewFacultyRepository(db *gorm.DB) *FacultyRepositoryImpl {
	return &FacultyRepositoryImpl{db: db}
}

// Create inserts a new FacultyMember into the database.
func (r *FacultyRepositoryImpl) Create(member *models.FacultyMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapStorage(err, "create faculty member")
	}
	return nil
}

// List retrieves all faculty members, ordered by name.
func (r *FacultyRepositoryImpl) List() ([]models.FacultyMember, error) {
	var members []models.FacultyMember
	if err := r.db.Order("name ASC").Find(&members).Error; err != nil {
		return nil, wrapStorage(err, "list faculty")
	}
	return members, nil
}

// ExistsInDepartment reports whether a member with the same (name,
// department) pair is already registered.
func (r *FacultyRepositoryImpl) ExistsInDepartment(name, department string) (bool, error) {
	var count int64
	err := r.db.Model(&models.FacultyMember{}).
		Where("name = ? AND department = ?", name, department).
		Count(&count).Error
	if err != nil {
		return false, wrapStorage(err, "check faculty existence")
	}
	return count > 0, nil
}

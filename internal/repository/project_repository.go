package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"capstone-service/internal/apperrors"
	"capstone-service/internal/models"
)

// dailyDefenseCap is the maximum number of defenses on one calendar day.
const dailyDefenseCap = 4

// ProjectRepository defines persistence operations for capstone projects.
type ProjectRepository interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	List(projectType models.ProjectType) ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
	MoveAtomic(deleteID uuid.UUID, replacement *models.Project) error
	FindSimilarByTitle(title string) ([]models.Project, error)
	CountDefensesOnDay(day time.Time) (int, error)
	DayAvailable(day time.Time) (bool, error)
}

// ProjectRepositoryImpl provides methods to interact with the Project model
// in the database.
type ProjectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepositoryImpl instance with the
// provided GORM database connection.
func NewProjectRepository(db *gorm.DB) *ProjectRepositoryImpl {
	return &ProjectRepositoryImpl{db: db}
}

// Create inserts a new Project into the database.
func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return wrapStorage(err, "create project")
	}
	return nil
}

// GetByID retrieves a Project by its ID.
func (r *ProjectRepositoryImpl) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.NotFound("project")
	}
	if err != nil {
		return nil, wrapStorage(err, "fetch project")
	}
	return &project, nil
}

// List retrieves projects ordered by creation time, newest first. An empty
// projectType returns every record.
func (r *ProjectRepositoryImpl) List(projectType models.ProjectType) ([]models.Project, error) {
	var projects []models.Project
	q := r.db.Order("created_at DESC")
	if projectType != "" {
		q = q.Where("type = ?", projectType)
	}
	if err := q.Find(&projects).Error; err != nil {
		return nil, wrapStorage(err, "list projects")
	}
	return projects, nil
}

// Update saves an existing Project.
func (r *ProjectRepositoryImpl) Update(project *models.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		return wrapStorage(err, "update project")
	}
	return nil
}

// Delete removes a Project by its ID.
func (r *ProjectRepositoryImpl) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return wrapStorage(result.Error, "delete project")
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("project")
	}
	return nil
}

// MoveAtomic deletes one record and inserts its replacement in a single
// transaction. Both succeed or neither does.
func (r *ProjectRepositoryImpl) MoveAtomic(deleteID uuid.UUID, replacement *models.Project) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Project{}, "id = ?", deleteID)
		if result.Error != nil {
			return wrapStorage(result.Error, "delete source project")
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("project")
		}
		if err := tx.Create(replacement).Error; err != nil {
			return wrapStorage(err, "insert successor project")
		}
		return nil
	})
	return err
}

// FindSimilarByTitle returns projects whose title contains, or is contained
// in, the given title (case-insensitive). Inputs shorter than three
// characters match nothing.
func (r *ProjectRepositoryImpl) FindSimilarByTitle(title string) ([]models.Project, error) {
	normalized := strings.ToLower(strings.TrimSpace(title))
	if len(normalized) < 3 {
		return []models.Project{}, nil
	}

	var projects []models.Project
	if err := r.db.Find(&projects).Error; err != nil {
		return nil, wrapStorage(err, "scan project titles")
	}

	similar := make([]models.Project, 0)
	for _, p := range projects {
		existing := strings.ToLower(p.Title)
		if strings.Contains(existing, normalized) || strings.Contains(normalized, existing) {
			similar = append(similar, p)
		}
	}
	return similar, nil
}

// CountDefensesOnDay counts projects with a defense scheduled on the same
// calendar day, ignoring time of day.
func (r *ProjectRepositoryImpl) CountDefensesOnDay(day time.Time) (int, error) {
	start, end := dayBounds(day)
	var count int64
	err := r.db.Model(&models.Project{}).
		Where("defense_schedule >= ? AND defense_schedule <= ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, wrapStorage(err, "count defenses")
	}
	return int(count), nil
}

// DayAvailable reports whether the given calendar day still has room for
// another defense. It is a second, independent read performed before commit.
func (r *ProjectRepositoryImpl) DayAvailable(day time.Time) (bool, error) {
	count, err := r.CountDefensesOnDay(day)
	if err != nil {
		return false, err
	}
	return count < dailyDefenseCap, nil
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

package services

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"capstone-service/internal/apperrors"
	"capstone-service/internal/models"
	"capstone-service/internal/repository"
)

// FacultyService manages the append-only faculty directory.
type FacultyService struct {
	repo repository.FacultyRepository
	log  *logrus.Logger
}

// NewFacultyService creates a new FacultyService.
func NewFacultyService(repo repository.FacultyRepository, log *logrus.Logger) *FacultyService {
	return &FacultyService{repo: repo, log: log}
}

// SeedDirectory registers the initial adviser roster. Members already
// present are left untouched, so the seed is safe to run at every boot.
func (s *FacultyService) SeedDirectory() error {
	for department, names := range models.SeedFaculty {
		college, ok := models.CollegeOf(department)
		if !ok {
			continue
		}
		for _, name := range names {
			exists, err := s.repo.ExistsInDepartment(name, department)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			member := &models.FacultyMember{
				ID:         uuid.New(),
				Name:       name,
				College:    college,
				Department: department,
			}
			if err := s.repo.Create(member); err != nil {
				return err
			}
		}
	}
	return nil
}

// ListFaculty returns all faculty members.
func (s *FacultyService) ListFaculty() ([]models.FacultyMember, error) {
	return s.repo.List()
}

// AddFaculty registers a new faculty member after validating the college
// enumeration, the college's department list, and (name, department)
// uniqueness.
func (s *FacultyService) AddFaculty(name, college, department string) (*models.FacultyMember, error) {
	if name == "" {
		return nil, apperrors.Validation("faculty name is required")
	}
	if !models.ValidCollege(college) {
		return nil, apperrors.Validation("unknown college: %s", college)
	}
	if !models.ValidDepartment(college, department) {
		return nil, apperrors.Validation("department %q does not belong to %s", department, college)
	}

	exists, err := s.repo.ExistsInDepartment(name, department)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Validation("faculty member %q already exists in %s", name, department)
	}

	member := &models.FacultyMember{
		ID:         uuid.New(),
		Name:       name,
		College:    college,
		Department: department,
	}
	if err := s.repo.Create(member); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"name":       name,
		"department": department,
	}).Info("faculty member added")
	return member, nil
}

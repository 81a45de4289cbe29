package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"capstone-service/internal/apperrors"
	"capstone-service/internal/models"
)

// ── Mock ProjectRepository ──

type mockProjectRepo struct {
	projects map[uuid.UUID]*models.Project

	// Failure injection.
	listErr          error
	countErr         error
	availableErr     error
	forceUnavailable bool
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[uuid.UUID]*models.Project)}
}

func (m *mockProjectRepo) Create(project *models.Project) error {
	clone := *project
	m.projects[project.ID] = &clone
	return nil
}

func (m *mockProjectRepo) GetByID(id uuid.UUID) (*models.Project, error) {
	if p, ok := m.projects[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, apperrors.NotFound("project")
}

func (m *mockProjectRepo) List(projectType models.ProjectType) ([]models.Project, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []models.Project
	for _, p := range m.projects {
		if projectType != "" && p.Type != projectType {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockProjectRepo) Update(project *models.Project) error {
	if _, ok := m.projects[project.ID]; !ok {
		return apperrors.NotFound("project")
	}
	clone := *project
	m.projects[project.ID] = &clone
	return nil
}

func (m *mockProjectRepo) Delete(id uuid.UUID) error {
	if _, ok := m.projects[id]; !ok {
		return apperrors.NotFound("project")
	}
	delete(m.projects, id)
	return nil
}

func (m *mockProjectRepo) MoveAtomic(deleteID uuid.UUID, replacement *models.Project) error {
	if _, ok := m.projects[deleteID]; !ok {
		return apperrors.NotFound("project")
	}
	delete(m.projects, deleteID)
	clone := *replacement
	m.projects[replacement.ID] = &clone
	return nil
}

func (m *mockProjectRepo) FindSimilarByTitle(title string) ([]models.Project, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	normalized := strings.ToLower(strings.TrimSpace(title))
	if len(normalized) < 3 {
		return []models.Project{}, nil
	}
	similar := make([]models.Project, 0)
	for _, p := range m.projects {
		existing := strings.ToLower(p.Title)
		if strings.Contains(existing, normalized) || strings.Contains(normalized, existing) {
			similar = append(similar, *p)
		}
	}
	return similar, nil
}

func (m *mockProjectRepo) CountDefensesOnDay(day time.Time) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	count := 0
	for _, p := range m.projects {
		if p.DefenseSchedule == nil {
			continue
		}
		if sameDay(*p.DefenseSchedule, day) {
			count++
		}
	}
	return count, nil
}

func (m *mockProjectRepo) DayAvailable(day time.Time) (bool, error) {
	if m.availableErr != nil {
		return false, m.availableErr
	}
	if m.forceUnavailable {
		return false, nil
	}
	count, err := m.CountDefensesOnDay(day)
	if err != nil {
		return false, err
	}
	return count < DailyDefenseCap, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ── Mock FacultyRepository ──

type mockFacultyRepo struct {
	members []models.FacultyMember
}

func newMockFacultyRepo() *mockFacultyRepo {
	return &mockFacultyRepo{}
}

func (m *mockFacultyRepo) Create(member *models.FacultyMember) error {
	m.members = append(m.members, *member)
	return nil
}

func (m *mockFacultyRepo) List() ([]models.FacultyMember, error) {
	result := make([]models.FacultyMember, len(m.members))
	copy(result, m.members)
	return result, nil
}

func (m *mockFacultyRepo) ExistsInDepartment(name, department string) (bool, error) {
	for _, member := range m.members {
		if member.Name == name && member.Department == department {
			return true, nil
		}
	}
	return false, nil
}

package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"capstone-service/internal/apperrors"
	"capstone-service/internal/metrics"
	"capstone-service/internal/models"
	"capstone-service/internal/repository"
)

// ProjectService implements the project lifecycle: creation with the
// similar-title gate, status/progress updates, defense results, and the
// move operations between lifecycle types.
//
// Every mutating method returns the fresh, authoritative project list so
// callers never hold a cache of their own.
type ProjectService struct {
	repo        repository.ProjectRepository
	manuscripts manuscriptCleaner
	collector   *metrics.Collector
	log         *logrus.Logger
}

// manuscriptCleaner is the slice of ManuscriptService the lifecycle needs
// when a project is removed.
type manuscriptCleaner interface {
	DeleteForProject(projectID uuid.UUID) error
}

// NewProjectService creates a new ProjectService. manuscripts and collector
// may be nil.
func NewProjectService(repo repository.ProjectRepository, manuscripts manuscriptCleaner, collector *metrics.Collector, log *logrus.Logger) *ProjectService {
	return &ProjectService{
		repo:        repo,
		manuscripts: manuscripts,
		collector:   collector,
		log:         log,
	}
}

// CreateProjectInput carries the caller-supplied fields for a new project.
type CreateProjectInput struct {
	Title       string             `json:"title"`
	College     string             `json:"college"`
	Department  string             `json:"department"`
	Adviser     string             `json:"adviser"`
	Members     []string           `json:"members"`
	Description string             `json:"description"`
	Type        models.ProjectType `json:"type"`
}

func (in *CreateProjectInput) validate() error {
	if in.Title == "" {
		return apperrors.Validation("project title is required")
	}
	if !models.ValidCollege(in.College) {
		return apperrors.Validation("unknown college: %s", in.College)
	}
	if !models.ValidDepartment(in.College, in.Department) {
		return apperrors.Validation("department %q does not belong to %s", in.Department, in.College)
	}
	if in.Adviser == "" {
		return apperrors.Validation("adviser is required")
	}
	if len(in.Members) == 0 {
		return apperrors.Validation("at least one group member is required")
	}
	switch in.Type {
	case models.TypeProposal, models.TypeFinal, models.TypeInventory:
		return nil
	default:
		return apperrors.Validation("unknown project type: %s", in.Type)
	}
}

// CreateProject validates the input, rejects titles similar to an existing
// project, and inserts a new pending record. Returns the created project and
// the fresh project list.
func (s *ProjectService) CreateProject(in CreateProjectInput) (*models.Project, []models.Project, error) {
	start := time.Now()
	project, list, err := s.createProject(in)
	s.observe("create_project", start, err)
	return project, list, err
}

func (s *ProjectService) createProject(in CreateProjectInput) (*models.Project, []models.Project, error) {
	if err := in.validate(); err != nil {
		return nil, nil, err
	}

	similar := s.FindSimilarByTitle(in.Title)
	if len(similar) > 0 {
		return nil, nil, apperrors.Validation("a similar project title already exists: %q", similar[0].Title)
	}

	project := &models.Project{
		ID:          uuid.New(),
		Title:       in.Title,
		College:     in.College,
		Department:  in.Department,
		Adviser:     in.Adviser,
		Members:     in.Members,
		Description: in.Description,
		Type:        in.Type,
		Status:      models.StatusPending,
		Progress:    models.ProgressInProgress,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(project); err != nil {
		return nil, nil, err
	}

	list, err := s.repo.List("")
	if err != nil {
		return nil, nil, err
	}
	return project, list, nil
}

// ListProjects returns all projects, optionally filtered by type, newest
// first.
func (s *ProjectService) ListProjects(projectType models.ProjectType) ([]models.Project, error) {
	return s.repo.List(projectType)
}

// GetProject fetches a single project by id.
func (s *ProjectService) GetProject(id uuid.UUID) (*models.Project, error) {
	return s.repo.GetByID(id)
}

// FindSimilarByTitle returns projects whose title contains, or is contained
// in, the given text. The read degrades to an empty result on failure.
func (s *ProjectService) FindSimilarByTitle(title string) []models.Project {
	similar, err := s.repo.FindSimilarByTitle(title)
	if err != nil {
		s.log.WithError(err).Warn("similarity search failed, treating as no matches")
		return []models.Project{}
	}
	return similar
}

// UpdateStatus overwrites a project's status. Beyond the three-value
// enumeration there is no transition guard.
func (s *ProjectService) UpdateStatus(id uuid.UUID, status models.ProjectStatus) ([]models.Project, error) {
	start := time.Now()
	list, err := s.updateStatus(id, status)
	s.observe("update_status", start, err)
	return list, err
}

func (s *ProjectService) updateStatus(id uuid.UUID, status models.ProjectStatus) ([]models.Project, error) {
	switch status {
	case models.StatusPending, models.StatusApproved, models.StatusRejected:
	default:
		return nil, apperrors.Validation("unknown status: %s", status)
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	project.Status = status
	if err := s.repo.Update(project); err != nil {
		return nil, err
	}
	return s.repo.List("")
}

// UpdateProgress overwrites a project's free-text progress label.
func (s *ProjectService) UpdateProgress(id uuid.UUID, progress string) ([]models.Project, error) {
	start := time.Now()
	list, err := s.updateProgress(id, progress)
	s.observe("update_progress", start, err)
	return list, err
}

func (s *ProjectService) updateProgress(id uuid.UUID, progress string) ([]models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	project.Progress = progress
	if err := s.repo.Update(project); err != nil {
		return nil, err
	}
	return s.repo.List("")
}

// DeleteProject removes a project and its archived manuscripts.
func (s *ProjectService) DeleteProject(id uuid.UUID) ([]models.Project, error) {
	start := time.Now()
	list, err := s.deleteProject(id)
	s.observe("delete_project", start, err)
	return list, err
}

func (s *ProjectService) deleteProject(id uuid.UUID) ([]models.Project, error) {
	// Confirm the record exists before touching its manuscripts.
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, err
	}
	if s.manuscripts != nil {
		if err := s.manuscripts.DeleteForProject(id); err != nil {
			s.log.WithError(err).WithField("project_id", id).
				Warn("manuscript cleanup failed, deleting project anyway")
		}
	}
	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}
	return s.repo.List("")
}

// SetDefenseResult records the judged outcome of a previously scheduled
// defense. A pass approves the project and advances its progress label; a
// fail rejects it and leaves progress unchanged.
func (s *ProjectService) SetDefenseResult(id uuid.UUID, result models.DefenseResult) ([]models.Project, error) {
	start := time.Now()
	list, err := s.setDefenseResult(id, result)
	s.observe("set_defense_result", start, err)
	return list, err
}

func (s *ProjectService) setDefenseResult(id uuid.UUID, result models.DefenseResult) ([]models.Project, error) {
	if result != models.DefensePassed && result != models.DefenseFailed {
		return nil, apperrors.Validation("unknown defense result: %s", result)
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !project.HasDefense() {
		return nil, apperrors.Validation("no defense has been scheduled for this project")
	}

	project.DefenseResult = result
	if result == models.DefensePassed {
		project.Status = models.StatusApproved
		switch project.Type {
		case models.TypeProposal:
			project.Progress = models.ProgressProposalDefended
		case models.TypeFinal:
			project.Progress = models.ProgressFinalDefended
		}
	} else {
		project.Status = models.StatusRejected
	}

	if err := s.repo.Update(project); err != nil {
		return nil, err
	}
	return s.repo.List("")
}

// MoveToFinals atomically replaces a proposal with a fresh pending final
// record that carries a back-reference to the proposal.
func (s *ProjectService) MoveToFinals(id uuid.UUID) (*models.Project, []models.Project, error) {
	start := time.Now()
	project, list, err := s.moveToFinals(id)
	s.observe("move_to_finals", start, err)
	return project, list, err
}

func (s *ProjectService) moveToFinals(id uuid.UUID) (*models.Project, []models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if project.Type != models.TypeProposal {
		return nil, nil, apperrors.Validation("only proposal records can be moved to finals")
	}

	proposalID := project.ID
	final := &models.Project{
		ID:          uuid.New(),
		Title:       project.Title,
		College:     project.College,
		Department:  project.Department,
		Adviser:     project.Adviser,
		Members:     project.Members,
		Description: project.Description,
		Type:        models.TypeFinal,
		Status:      models.StatusPending,
		Progress:    models.ProgressInProgress,
		CreatedAt:   time.Now(),
		ProposalID:  &proposalID,
	}

	if err := s.repo.MoveAtomic(id, final); err != nil {
		return nil, nil, err
	}
	s.log.WithFields(logrus.Fields{
		"proposal_id": proposalID,
		"final_id":    final.ID,
	}).Info("proposal moved to finals")

	list, err := s.repo.List("")
	if err != nil {
		return nil, nil, err
	}
	return final, list, nil
}

// MoveToInventory atomically replaces a final record with an archived
// inventory record, preserving the defense sub-record.
func (s *ProjectService) MoveToInventory(id uuid.UUID) (*models.Project, []models.Project, error) {
	start := time.Now()
	project, list, err := s.moveToInventory(id)
	s.observe("move_to_inventory", start, err)
	return project, list, err
}

func (s *ProjectService) moveToInventory(id uuid.UUID) (*models.Project, []models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if project.Type != models.TypeFinal {
		return nil, nil, apperrors.Validation("only final records can be moved to inventory")
	}

	originalID := project.ID
	inventory := &models.Project{
		ID:          uuid.New(),
		Title:       project.Title,
		College:     project.College,
		Department:  project.Department,
		Adviser:     project.Adviser,
		Members:     project.Members,
		Description: project.Description,
		Type:        models.TypeInventory,
		Status:      models.StatusApproved,
		Progress:    models.ProgressFinalDefended,
		CreatedAt:   time.Now(),
		OriginalID:  &originalID,

		DefenseSchedule: project.DefenseSchedule,
		Venue:           project.Venue,
		PanelMembers:    project.PanelMembers,
		Documenter:      project.Documenter,
		DefenseResult:   project.DefenseResult,
	}

	if err := s.repo.MoveAtomic(id, inventory); err != nil {
		return nil, nil, err
	}
	s.log.WithFields(logrus.Fields{
		"final_id":     originalID,
		"inventory_id": inventory.ID,
	}).Info("final moved to inventory")

	list, err := s.repo.List("")
	if err != nil {
		return nil, nil, err
	}
	return inventory, list, nil
}

func (s *ProjectService) observe(operation string, start time.Time, err error) {
	if s.collector != nil {
		s.collector.ObserveOperation(operation, start, err)
	}
}

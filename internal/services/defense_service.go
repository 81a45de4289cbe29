package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"capstone-service/internal/apperrors"
	"capstone-service/internal/metrics"
	"capstone-service/internal/models"
	"capstone-service/internal/repository"
)

// DailyDefenseCap is the maximum number of defenses on one calendar day.
const DailyDefenseCap = 4

// DefenseDetails carries the caller-supplied fields for a defense event.
type DefenseDetails struct {
	PanelMembers []string `json:"panel_members"`
	Documenter   string   `json:"documenter"`
	Venue        string   `json:"venue"`
}

// ScheduleResult is the outcome of a successful scheduling call. Warning is
// set when the target day was already near capacity.
type ScheduleResult struct {
	Project  *models.Project  `json:"project"`
	Projects []models.Project `json:"projects"`
	Warning  string           `json:"warning,omitempty"`
}

// DefenseService validates and commits defense schedules against the
// calendar-conflict rule and the panel-uniqueness rule.
type DefenseService struct {
	repo      repository.ProjectRepository
	collector *metrics.Collector
	log       *logrus.Logger
	now       func() time.Time
}

// NewDefenseService creates a new DefenseService. collector may be nil.
func NewDefenseService(repo repository.ProjectRepository, collector *metrics.Collector, log *logrus.Logger) *DefenseService {
	return &DefenseService{
		repo:      repo,
		collector: collector,
		log:       log,
		now:       time.Now,
	}
}

// Schedule validates the defense request in order, failing on the first
// violated rule, then writes the defense sub-record and force-sets the
// project to approved. Progress is not advanced here; that happens when the
// defense result is recorded.
func (s *DefenseService) Schedule(projectID uuid.UUID, dateTime time.Time, details DefenseDetails) (*ScheduleResult, error) {
	start := time.Now()
	result, err := s.schedule(projectID, dateTime, details)
	if s.collector != nil {
		s.collector.ObserveOperation("schedule_defense", start, err)
	}
	return result, err
}

func (s *DefenseService) schedule(projectID uuid.UUID, dateTime time.Time, details DefenseDetails) (*ScheduleResult, error) {
	if dateTime.Before(s.now()) {
		return nil, apperrors.Conflict("cannot schedule a defense in the past")
	}
	if details.Venue == "" {
		return nil, apperrors.Validation("venue is required")
	}
	if len(details.PanelMembers) < 2 {
		return nil, apperrors.Validation("at least two panel members are required")
	}
	if len(details.PanelMembers) > 3 {
		return nil, apperrors.Validation("at most three panel members are allowed")
	}
	if details.Documenter == "" {
		return nil, apperrors.Validation("documenter is required")
	}

	project, err := s.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}

	if err := checkPanelDistinct(details, project.Adviser); err != nil {
		return nil, err
	}

	count, err := s.repo.CountDefensesOnDay(dateTime)
	if err != nil {
		return nil, err
	}
	if s.collector != nil {
		s.collector.SetDayDefenseCount(count)
	}
	if count >= DailyDefenseCap {
		return nil, apperrors.Conflict("this date has reached the maximum number of scheduled defenses (%d)", DailyDefenseCap)
	}
	var warning string
	if count == DailyDefenseCap-1 {
		warning = fmt.Sprintf("this date already has %d scheduled defenses", count)
	}

	// Independent re-check against staleness between the count above and
	// the commit below. Degrades open on a read failure.
	if !s.CheckDayAvailability(dateTime) {
		return nil, apperrors.Conflict("this date is no longer available")
	}

	project.DefenseSchedule = &dateTime
	project.Venue = details.Venue
	project.PanelMembers = details.PanelMembers
	project.Documenter = details.Documenter
	project.Status = models.StatusApproved

	if err := s.repo.Update(project); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"project_id": projectID,
		"date":       dateTime,
		"venue":      details.Venue,
	}).Info("defense scheduled")

	list, err := s.repo.List("")
	if err != nil {
		return nil, err
	}
	return &ScheduleResult{Project: project, Projects: list, Warning: warning}, nil
}

// checkPanelDistinct enforces that the panel members, the documenter, and
// the project's adviser are pairwise-distinct faculty names.
func checkPanelDistinct(details DefenseDetails, adviser string) error {
	seen := map[string]bool{adviser: true}
	if seen[details.Documenter] {
		return apperrors.Conflict("documenter must differ from the adviser")
	}
	seen[details.Documenter] = true
	for _, member := range details.PanelMembers {
		if seen[member] {
			return apperrors.Conflict("panel members, documenter, and adviser must be distinct; %q appears twice", member)
		}
		seen[member] = true
	}
	return nil
}

// CountDefensesOnDay counts defenses scheduled on the same calendar day.
func (s *DefenseService) CountDefensesOnDay(day time.Time) (int, error) {
	return s.repo.CountDefensesOnDay(day)
}

// CheckDayAvailability reports whether the given day still has room for
// another defense. A failed read degrades open.
func (s *DefenseService) CheckDayAvailability(day time.Time) bool {
	available, err := s.repo.DayAvailable(day)
	if err != nil {
		s.log.WithError(err).Warn("day availability check failed, assuming available")
		return true
	}
	return available
}

package services

import (
	"io"
	"testing"
	"time"

	"github.com/google/uuid"

	"capstone-service/internal/apperrors"
	"capstone-service/internal/models"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func setupDefenseService() (*DefenseService, *mockProjectRepo) {
	repo := newMockProjectRepo()
	svc := NewDefenseService(repo, nil, testLogger())
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func seedProject(repo *mockProjectRepo) *models.Project {
	project := &models.Project{
		ID:         uuid.New(),
		Title:      "Crowd Density Monitor",
		College:    "COLLEGE OF INFORMATION AND COMPUTING SCIENCES",
		Department: "Department of Computer Sciences",
		Adviser:    "Janice Wade",
		Members:    []string{"Ana Reyes"},
		Type:       models.TypeProposal,
		Status:     models.StatusPending,
		Progress:   models.ProgressInProgress,
		CreatedAt:  testNow.Add(-time.Hour),
	}
	repo.Create(project)
	return project
}

func seedDefenseOnDay(repo *mockProjectRepo, day time.Time) {
	when := day
	repo.Create(&models.Project{
		ID:              uuid.New(),
		Title:           "Occupied Slot " + uuid.NewString()[:8],
		Type:            models.TypeProposal,
		Status:          models.StatusApproved,
		CreatedAt:       testNow.Add(-time.Hour),
		DefenseSchedule: &when,
	})
}

func validDetails() DefenseDetails {
	return DefenseDetails{
		PanelMembers: []string{"Joseph Sieras", "Reymark Delena"},
		Documenter:   "Llewelyn Elcana",
		Venue:        "AVR 1",
	}
}

func TestSchedule_Success(t *testing.T) {
	svc, repo := setupDefenseService()
	project := seedProject(repo)

	when := testNow.Add(72 * time.Hour)
	result, err := svc.Schedule(project.ID, when, validDetails())
	if err != nil {
		t.Fatalf("Schedule should succeed: %v", err)
	}
	if result.Warning != "" {
		t.Errorf("no warning expected on an empty day, got %q", result.Warning)
	}

	after, _ := repo.GetByID(project.ID)
	if after.DefenseSchedule == nil || !after.DefenseSchedule.Equal(when) {
		t.Error("the defense schedule should be written")
	}
	if after.Venue != "AVR 1" || after.Documenter != "Llewelyn Elcana" {
		t.Error("the defense details should be written")
	}
	if after.Status != models.StatusApproved {
		t.Errorf("scheduling should force status=approved, got %s", after.Status)
	}
	if after.Progress != models.ProgressInProgress {
		t.Errorf("scheduling must not advance progress, got %q", after.Progress)
	}
}

func TestSchedule_RejectsPastDate(t *testing.T) {
	svc, repo := setupDefenseService()
	project := seedProject(repo)

	_, err := svc.Schedule(project.ID, testNow.Add(-time.Minute), validDetails())
	if !apperrors.IsConflict(err) {
		t.Fatalf("expected ConflictError for a past date, got %v", err)
	}
}

func TestSchedule_FieldValidation(t *testing.T) {
	svc, repo := setupDefenseService()
	project := seedProject(repo)
	when := testNow.Add(72 * time.Hour)

	cases := []struct {
		name   string
		mutate func(*DefenseDetails)
	}{
		{"empty venue", func(d *DefenseDetails) { d.Venue = "" }},
		{"one panel member", func(d *DefenseDetails) { d.PanelMembers = d.PanelMembers[:1] }},
		{"four panel members", func(d *DefenseDetails) {
			d.PanelMembers = append(d.PanelMembers, "Extra One", "Extra Two")
		}},
		{"missing documenter", func(d *DefenseDetails) { d.Documenter = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			details := validDetails()
			tc.mutate(&details)
			_, err := svc.Schedule(project.ID, when, details)
			if !apperrors.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestSchedule_PanelMustBeDistinct(t *testing.T) {
	svc, repo := setupDefenseService()
	project := seedProject(repo)
	when := testNow.Add(72 * time.Hour)

	// Documenter doubles as a panel member.
	details := validDetails()
	details.Documenter = details.PanelMembers[0]
	if _, err := svc.Schedule(project.ID, when, details); !apperrors.IsConflict(err) {
		t.Errorf("expected ConflictError when documenter sits on the panel, got %v", err)
	}

	// Adviser sneaks onto the panel.
	details = validDetails()
	details.PanelMembers[1] = project.Adviser
	if _, err := svc.Schedule(project.ID, when, details); !apperrors.IsConflict(err) {
		t.Errorf("expected ConflictError when adviser sits on the panel, got %v", err)
	}

	// Adviser as documenter.
	details = validDetails()
	details.Documenter = project.Adviser
	if _, err := svc.Schedule(project.ID, when, details); !apperrors.IsConflict(err) {
		t.Errorf("expected ConflictError when adviser documents, got %v", err)
	}

	// Duplicated panel member.
	details = validDetails()
	details.PanelMembers = []string{"Joseph Sieras", "Joseph Sieras"}
	if _, err := svc.Schedule(project.ID, when, details); !apperrors.IsConflict(err) {
		t.Errorf("expected ConflictError for a duplicated panel member, got %v", err)
	}
}

func TestSchedule_ProjectNotFound(t *testing.T) {
	svc, _ := setupDefenseService()

	_, err := svc.Schedule(uuid.New(), testNow.Add(72*time.Hour), validDetails())
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSchedule_DayCapacity(t *testing.T) {
	svc, repo := setupDefenseService()
	project := seedProject(repo)
	day := testNow.Add(72 * time.Hour)

	// Three defenses already on the day: the fourth succeeds with a warning.
	for i := 0; i < 3; i++ {
		seedDefenseOnDay(repo, day.Add(time.Duration(i)*time.Hour))
	}
	result, err := svc.Schedule(project.ID, day, validDetails())
	if err != nil {
		t.Fatalf("the fourth defense on a day should succeed: %v", err)
	}
	if result.Warning == "" {
		t.Error("a near-capacity day should produce a warning")
	}

	// The day is now full: a fifth is rejected.
	fifth := seedProject(repo)
	_, err = svc.Schedule(fifth.ID, day.Add(5*time.Hour), validDetails())
	if !apperrors.IsConflict(err) {
		t.Fatalf("expected ConflictError for a full day, got %v", err)
	}
}

func TestSchedule_AvailabilityRecheckRejects(t *testing.T) {
	svc, repo := setupDefenseService()
	project := seedProject(repo)
	repo.forceUnavailable = true

	_, err := svc.Schedule(project.ID, testNow.Add(72*time.Hour), validDetails())
	if !apperrors.IsConflict(err) {
		t.Fatalf("expected ConflictError when the re-check reports unavailable, got %v", err)
	}
}

func TestCheckDayAvailability_DegradesOpen(t *testing.T) {
	svc, repo := setupDefenseService()
	repo.availableErr = apperrors.Storage(io.ErrUnexpectedEOF, "count defenses")

	if !svc.CheckDayAvailability(testNow.Add(72 * time.Hour)) {
		t.Error("a failed availability read should degrade open")
	}
}

func TestCountDefensesOnDay_IgnoresTimeOfDay(t *testing.T) {
	svc, repo := setupDefenseService()
	day := testNow.Add(72 * time.Hour)

	seedDefenseOnDay(repo, day.Add(-3*time.Hour))
	seedDefenseOnDay(repo, day.Add(6*time.Hour))
	seedDefenseOnDay(repo, day.Add(26*time.Hour)) // next day

	count, err := svc.CountDefensesOnDay(day)
	if err != nil {
		t.Fatalf("CountDefensesOnDay should succeed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 defenses on the day, got %d", count)
	}
}

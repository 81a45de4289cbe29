package services

import (
	"testing"

	"capstone-service/internal/apperrors"
	"capstone-service/internal/models"
)

func setupFacultyService() (*FacultyService, *mockFacultyRepo) {
	repo := newMockFacultyRepo()
	svc := NewFacultyService(repo, testLogger())
	return svc, repo
}

func TestAddFaculty_Success(t *testing.T) {
	svc, _ := setupFacultyService()

	member, err := svc.AddFaculty("Joseph Sieras",
		"COLLEGE OF INFORMATION AND COMPUTING SCIENCES",
		"Department of Information Sciences")
	if err != nil {
		t.Fatalf("AddFaculty should succeed: %v", err)
	}
	if member.ID.String() == "" || member.Name != "Joseph Sieras" {
		t.Error("created member should carry an id and the given name")
	}

	list, err := svc.ListFaculty()
	if err != nil {
		t.Fatalf("ListFaculty should succeed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected one member, got %d", len(list))
	}
}

func TestSeedDirectory(t *testing.T) {
	svc, _ := setupFacultyService()

	if err := svc.SeedDirectory(); err != nil {
		t.Fatalf("SeedDirectory should succeed: %v", err)
	}

	list, err := svc.ListFaculty()
	if err != nil {
		t.Fatalf("ListFaculty should succeed: %v", err)
	}
	seeded := 0
	for _, names := range models.SeedFaculty {
		seeded += len(names)
	}
	if len(list) != seeded {
		t.Fatalf("expected %d seeded members, got %d", seeded, len(list))
	}
	for _, member := range list {
		if !models.ValidDepartment(member.College, member.Department) {
			t.Errorf("seeded member %q carries a department outside its college", member.Name)
		}
	}

	// Re-seeding must not duplicate the roster.
	if err := svc.SeedDirectory(); err != nil {
		t.Fatalf("second SeedDirectory should succeed: %v", err)
	}
	list, _ = svc.ListFaculty()
	if len(list) != seeded {
		t.Errorf("re-seeding should leave the roster unchanged, got %d members", len(list))
	}

	// A seeded (name, department) pair counts as a duplicate.
	_, err = svc.AddFaculty("Joseph Sieras",
		"COLLEGE OF INFORMATION AND COMPUTING SCIENCES",
		"Department of Information Sciences")
	if !apperrors.IsValidation(err) {
		t.Errorf("expected ValidationError for seeded member, got %v", err)
	}
}

func TestAddFaculty_Validation(t *testing.T) {
	svc, _ := setupFacultyService()

	cases := []struct {
		name       string
		member     string
		college    string
		department string
	}{
		{"empty name", "", "COLLEGE OF INFORMATION AND COMPUTING SCIENCES", "Department of Computer Sciences"},
		{"unknown college", "Janice Wade", "COLLEGE OF MAGIC", "Department of Computer Sciences"},
		{"department of wrong college", "Janice Wade", "COLLEGE OF LAW", "Department of Computer Sciences"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddFaculty(tc.member, tc.college, tc.department)
			if !apperrors.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestAddFaculty_DuplicateRejected(t *testing.T) {
	svc, _ := setupFacultyService()

	college := "COLLEGE OF INFORMATION AND COMPUTING SCIENCES"
	if _, err := svc.AddFaculty("Janice Wade", college, "Department of Computer Sciences"); err != nil {
		t.Fatalf("first add should succeed: %v", err)
	}

	_, err := svc.AddFaculty("Janice Wade", college, "Department of Computer Sciences")
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected ValidationError for duplicate (name, department), got %v", err)
	}

	// Same name in a different department is allowed.
	if _, err := svc.AddFaculty("Janice Wade", college, "Department of Information Sciences"); err != nil {
		t.Fatalf("same name in another department should be allowed: %v", err)
	}
}

package models

import "testing"

func TestValidCollege(t *testing.T) {
	if !ValidCollege("COLLEGE OF ENGINEERING") {
		t.Error("COLLEGE OF ENGINEERING should be valid")
	}
	if ValidCollege("COLLEGE OF MAGIC") {
		t.Error("an unknown college should be invalid")
	}
	if ValidCollege("") {
		t.Error("an empty college should be invalid")
	}
}

func TestValidDepartment(t *testing.T) {
	college := "COLLEGE OF INFORMATION AND COMPUTING SCIENCES"
	if !ValidDepartment(college, "Department of Computer Sciences") {
		t.Error("Department of Computer Sciences should belong to its college")
	}
	if ValidDepartment("COLLEGE OF LAW", "Department of Computer Sciences") {
		t.Error("a department should not validate under another college")
	}
	if ValidDepartment(college, "Department of Alchemy") {
		t.Error("an unknown department should be invalid")
	}
}

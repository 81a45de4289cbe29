package models

// Colleges is the fixed enumeration of colleges recognized by the system.
var Colleges = []string{
	"KING FAISAL CENTER FOR ISLAMIC ARABIC AND ASIAN STUDIES",
	"COLLEGE OF AGRICULTURE",
	"COLLEGE OF BUSINESS ADMINISTRATION AND ACCOUNTANCY",
	"COLLEGE OF EDUCATION",
	"COLLEGE OF FISHERIES AND AQUATIC SCIENCES",
	"COLLEGE OF FORESTRY AND ENVIRONMENTAL STUDIES",
	"COLLEGE OF ENGINEERING",
	"COLLEGE OF HEALTH SCIENCES",
	"COLLEGE OF HOSPITALITY AND TOURISM MANAGEMENT",
	"COLLEGE OF INFORMATION AND COMPUTING SCIENCES",
	"COLLEGE OF NATURAL SCIENCES AND MATHEMATICS",
	"COLLEGE OF PUBLIC AFFAIRS",
	"COLLEGE OF SOCIAL SCIENCES AND HUMANITIES",
	"COLLEGE OF SPORTS PHYSICAL EDUCATION AND RECREATION",
	"COLLEGE OF LAW",
}

// Departments maps a college to its fixed department list. Colleges absent
// from the map have no departments registered yet.
var Departments = map[string][]string{
	"COLLEGE OF INFORMATION AND COMPUTING SCIENCES": {
		"Department of Information Sciences",
		"Department of Computer Sciences",
	},
}

// SeedFaculty maps a department to its initially registered advisers. The
// directory is seeded from this roster at boot.
var SeedFaculty = map[string][]string{
	"Department of Information Sciences": {
		"Joseph Sieras",
		"Reymark Delena",
	},
	"Department of Computer Sciences": {
		"Janice Wade",
		"Llewelyn Elcana",
	},
}

// ValidCollege reports whether the given college is part of the fixed
// enumeration.
func ValidCollege(college string) bool {
	for _, c := range Colleges {
		if c == college {
			return true
		}
	}
	return false
}

// ValidDepartment reports whether the department belongs to the given
// college's fixed department list.
func ValidDepartment(college, department string) bool {
	for _, d := range Departments[college] {
		if d == department {
			return true
		}
	}
	return false
}

// CollegeOf returns the college a department is registered under.
func CollegeOf(department string) (string, bool) {
	for college, departments := range Departments {
		for _, d := range departments {
			if d == department {
				return college, true
			}
		}
	}
	return "", false
}

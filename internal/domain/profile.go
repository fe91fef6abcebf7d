package domain

import "time"

// StudentProfile holds the student record the planner operates for.
type StudentProfile struct {
	RollNumber      string
	FullName        string
	FatherName      string
	GPA             float64
	CGPA            float64
	CurrentSemester int
}

// Registration is one registered course row for a student.
type Registration struct {
	RollNumber    string
	CourseID      string
	SemesterLabel string
	Status        RegistrationStatus
	CreatedAt     time.Time
}

package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danicpp/course-advisor/internal/domain"
)

// File is the top-level JSON structure for a catalog import file.
type File struct {
	Courses  []CourseImport  `json:"courses"`
	Students []StudentImport `json:"students,omitempty"`
}

// CourseImport defines one course in the catalog file.
type CourseImport struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Credits     int          `json:"credits"`
	Difficulty  int          `json:"difficulty"`
	MinSemester int          `json:"min_semester,omitempty"`
	Prereqs     []string     `json:"prereqs,omitempty"`
	Slots       []SlotImport `json:"schedule,omitempty"`
}

// SlotImport defines one weekly meeting slot in the catalog file.
type SlotImport struct {
	Day   string `json:"day"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// StudentImport defines one student record in the catalog file.
type StudentImport struct {
	RollNumber      string   `json:"roll_number"`
	FullName        string   `json:"full_name"`
	FatherName      string   `json:"father_name,omitempty"`
	GPA             float64  `json:"gpa,omitempty"`
	CGPA            float64  `json:"cgpa,omitempty"`
	CurrentSemester int      `json:"current_semester,omitempty"`
	PassedCourses   []string `json:"passed_courses,omitempty"`
}

// LoadFile reads and parses a catalog JSON file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &f, nil
}

// ValidateFile checks a catalog file for errors before import. Returns a
// slice of all validation errors found.
func ValidateFile(f *File) []error {
	var errs []error

	seen := make(map[string]bool)
	for i, c := range f.Courses {
		prefix := fmt.Sprintf("courses[%d]", i)
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is required", prefix))
			continue
		}
		if seen[c.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate course id %q", prefix, c.ID))
		}
		seen[c.ID] = true

		course := c.toDomain()
		if err := course.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s (%s): %w", prefix, c.ID, err))
		}
		if c.MinSemester < 0 {
			errs = append(errs, fmt.Errorf("%s (%s): min_semester must not be negative", prefix, c.ID))
		}
	}

	for i, c := range f.Courses {
		for _, p := range c.Prereqs {
			if !seen[p] {
				errs = append(errs, fmt.Errorf("courses[%d] (%s): prereq %q not in catalog", i, c.ID, p))
			}
		}
	}

	rolls := make(map[string]bool)
	for i, s := range f.Students {
		prefix := fmt.Sprintf("students[%d]", i)
		if s.RollNumber == "" {
			errs = append(errs, fmt.Errorf("%s: roll_number is required", prefix))
			continue
		}
		if rolls[s.RollNumber] {
			errs = append(errs, fmt.Errorf("%s: duplicate roll_number %q", prefix, s.RollNumber))
		}
		rolls[s.RollNumber] = true
		if s.FullName == "" {
			errs = append(errs, fmt.Errorf("%s (%s): full_name is required", prefix, s.RollNumber))
		}
		for _, id := range s.PassedCourses {
			if !seen[id] {
				errs = append(errs, fmt.Errorf("%s (%s): passed course %q not in catalog", prefix, s.RollNumber, id))
			}
		}
	}

	return errs
}

func (c CourseImport) toDomain() *domain.Course {
	slots := make([]domain.MeetingSlot, 0, len(c.Slots))
	for _, s := range c.Slots {
		slots = append(slots, domain.MeetingSlot{
			Day:   domain.Weekday(s.Day),
			Start: s.Start,
			End:   s.End,
		})
	}
	return &domain.Course{
		ID:          c.ID,
		Name:        c.Name,
		Credits:     c.Credits,
		Difficulty:  c.Difficulty,
		MinSemester: c.MinSemester,
		Prereqs:     append([]string(nil), c.Prereqs...),
		Slots:       slots,
	}
}

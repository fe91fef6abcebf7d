package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danicpp/course-advisor/internal/domain"
)

// courseColumns is the canonical SELECT column list for courses.
const courseColumns = `id, name, credits, difficulty, min_semester`

// SQLiteRepository implements Repository using a SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLiteRepository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	byID := make(map[string]*domain.Course)
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Credits, &c.Difficulty, &c.MinSemester); err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		courses = append(courses, &c)
		byID[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}

	if err := r.attachSlots(ctx, byID); err != nil {
		return nil, err
	}
	if err := r.attachPrereqs(ctx, byID); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *SQLiteRepository) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var c domain.Course
	err := row.Scan(&c.ID, &c.Name, &c.Credits, &c.Difficulty, &c.MinSemester)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}

	byID := map[string]*domain.Course{c.ID: &c}
	if err := r.attachSlots(ctx, byID); err != nil {
		return nil, err
	}
	if err := r.attachPrereqs(ctx, byID); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQLiteRepository) Profile(ctx context.Context, rollNumber string) (*domain.StudentProfile, error) {
	query := `SELECT roll_number, full_name, father_name, gpa, cgpa, current_semester
		FROM student_profiles WHERE roll_number = ?`
	row := r.db.QueryRowContext(ctx, query, rollNumber)

	var p domain.StudentProfile
	err := row.Scan(&p.RollNumber, &p.FullName, &p.FatherName, &p.GPA, &p.CGPA, &p.CurrentSemester)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("student %s: %w", rollNumber, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning student profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteRepository) PassedCourseIDs(ctx context.Context, rollNumber string) ([]string, error) {
	query := `SELECT course_id FROM passed_courses WHERE roll_number = ? ORDER BY course_id`
	rows, err := r.db.QueryContext(ctx, query, rollNumber)
	if err != nil {
		return nil, fmt.Errorf("listing passed courses: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning passed course row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating passed courses: %w", err)
	}
	return ids, nil
}

func (r *SQLiteRepository) Registrations(ctx context.Context, rollNumber string) ([]*domain.Registration, error) {
	query := `SELECT roll_number, course_id, semester_label, status, created_at
		FROM registrations WHERE roll_number = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, rollNumber)
	if err != nil {
		return nil, fmt.Errorf("listing registrations: %w", err)
	}
	defer rows.Close()

	var regs []*domain.Registration
	for rows.Next() {
		var reg domain.Registration
		var statusStr, createdAtStr string
		if err := rows.Scan(&reg.RollNumber, &reg.CourseID, &reg.SemesterLabel, &statusStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning registration row: %w", err)
		}
		reg.Status = domain.RegistrationStatus(statusStr)
		reg.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		regs = append(regs, &reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating registrations: %w", err)
	}
	return regs, nil
}

// RecordRegistration inserts one registration row per course ID. Rows
// that already exist for the same student, course, and semester label
// are left untouched, so re-submitting a schedule is safe.
func (r *SQLiteRepository) RecordRegistration(ctx context.Context, rollNumber string, courseIDs []string, semesterLabel string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning registration transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT OR IGNORE INTO registrations (roll_number, course_id, semester_label, status, created_at)
		VALUES (?, ?, ?, ?, ?)`
	now := time.Now().UTC().Format(time.RFC3339)
	for _, id := range courseIDs {
		if _, err := tx.ExecContext(ctx, query, rollNumber, id, semesterLabel, string(domain.RegStatusRegistered), now); err != nil {
			return fmt.Errorf("inserting registration %s: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing registrations: %w", err)
	}
	return nil
}

// ReplaceCatalog swaps the entire course catalog and student records for
// the contents of a catalog file, in a single transaction.
func (r *SQLiteRepository) ReplaceCatalog(ctx context.Context, f *File) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning catalog transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"prerequisites", "course_slots", "passed_courses", "courses", "student_profiles"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, c := range f.Courses {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO courses (id, name, credits, difficulty, min_semester) VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Credits, c.Difficulty, c.MinSemester)
		if err != nil {
			return fmt.Errorf("inserting course %s: %w", c.ID, err)
		}
		for _, s := range c.Slots {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO course_slots (course_id, day, start_time, end_time) VALUES (?, ?, ?, ?)`,
				c.ID, s.Day, s.Start, s.End)
			if err != nil {
				return fmt.Errorf("inserting slot for %s: %w", c.ID, err)
			}
		}
		for _, p := range c.Prereqs {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO prerequisites (course_id, prereq_id) VALUES (?, ?)`,
				c.ID, p)
			if err != nil {
				return fmt.Errorf("inserting prerequisite %s -> %s: %w", c.ID, p, err)
			}
		}
	}

	for _, s := range f.Students {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO student_profiles (roll_number, full_name, father_name, gpa, cgpa, current_semester)
			VALUES (?, ?, ?, ?, ?, ?)`,
			s.RollNumber, s.FullName, s.FatherName, s.GPA, s.CGPA, s.CurrentSemester)
		if err != nil {
			return fmt.Errorf("inserting student %s: %w", s.RollNumber, err)
		}
		for _, id := range s.PassedCourses {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO passed_courses (roll_number, course_id) VALUES (?, ?)`,
				s.RollNumber, id)
			if err != nil {
				return fmt.Errorf("inserting passed course %s for %s: %w", id, s.RollNumber, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog: %w", err)
	}
	return nil
}

// attachSlots loads meeting slots for every course in byID, preserving
// each course's slot insertion order.
func (r *SQLiteRepository) attachSlots(ctx context.Context, byID map[string]*domain.Course) error {
	if len(byID) == 0 {
		return nil
	}
	query := `SELECT course_id, day, start_time, end_time FROM course_slots ORDER BY course_id, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("listing course slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID, dayStr string
		var slot domain.MeetingSlot
		if err := rows.Scan(&courseID, &dayStr, &slot.Start, &slot.End); err != nil {
			return fmt.Errorf("scanning course slot row: %w", err)
		}
		slot.Day = domain.Weekday(dayStr)
		if c, ok := byID[courseID]; ok {
			c.Slots = append(c.Slots, slot)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating course slots: %w", err)
	}
	return nil
}

// attachPrereqs loads prerequisite IDs for every course in byID.
func (r *SQLiteRepository) attachPrereqs(ctx context.Context, byID map[string]*domain.Course) error {
	if len(byID) == 0 {
		return nil
	}
	query := `SELECT course_id, prereq_id FROM prerequisites ORDER BY course_id, prereq_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("listing prerequisites: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var courseID, prereqID string
		if err := rows.Scan(&courseID, &prereqID); err != nil {
			return fmt.Errorf("scanning prerequisite row: %w", err)
		}
		if c, ok := byID[courseID]; ok {
			c.Prereqs = append(c.Prereqs, prereqID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating prerequisites: %w", err)
	}
	return nil
}

package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and safe
// to re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// migrations is the university catalog schema: courses with their weekly
// meeting slots and prerequisites, the student profile, the passed-course
// record, and locally recorded registrations.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		credits INTEGER NOT NULL CHECK (credits > 0),
		difficulty INTEGER NOT NULL CHECK (difficulty BETWEEN 1 AND 5),
		min_semester INTEGER NOT NULL DEFAULT 1
	)`,

	`CREATE TABLE IF NOT EXISTS course_slots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		course_id TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		day TEXT NOT NULL,
		start_time INTEGER NOT NULL,
		end_time INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_course_slots_course
		ON course_slots(course_id)`,

	`CREATE TABLE IF NOT EXISTS prerequisites (
		course_id TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		prereq_id TEXT NOT NULL,
		PRIMARY KEY (course_id, prereq_id)
	)`,

	`CREATE TABLE IF NOT EXISTS student_profiles (
		roll_number TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		father_name TEXT NOT NULL DEFAULT '',
		gpa REAL NOT NULL DEFAULT 0,
		cgpa REAL NOT NULL DEFAULT 0,
		current_semester INTEGER NOT NULL DEFAULT 1
	)`,

	`CREATE TABLE IF NOT EXISTS passed_courses (
		roll_number TEXT NOT NULL,
		course_id TEXT NOT NULL,
		PRIMARY KEY (roll_number, course_id)
	)`,

	`CREATE TABLE IF NOT EXISTS registrations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		roll_number TEXT NOT NULL,
		course_id TEXT NOT NULL,
		semester_label TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Registered',
		created_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_registrations_unique
		ON registrations(roll_number, course_id, semester_label)`,
}

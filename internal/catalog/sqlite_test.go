package catalog

import (
	"context"
	"testing"

	"github.com/danicpp/course-advisor/internal/domain"
	"github.com/danicpp/course-advisor/internal/testutil"
	"github.com/danicpp/course-advisor/internal/university"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFile() *File {
	return &File{
		Courses: []CourseImport{
			{
				ID: "CMPC-301", Name: "Operating Systems", Credits: 4, Difficulty: 4,
				MinSemester: 5,
				Prereqs:     []string{"CMPC-201"},
				Slots: []SlotImport{
					{Day: "Mon", Start: 900, End: 1030},
					{Day: "Wed", Start: 900, End: 1030},
				},
			},
			{
				ID: "CMPC-201", Name: "Data Structures", Credits: 3, Difficulty: 3,
				Slots: []SlotImport{{Day: "Tue", Start: 1100, End: 1230}},
			},
			{
				ID: "ITDC-110", Name: "Independent Study", Credits: 2, Difficulty: 1,
			},
		},
		Students: []StudentImport{
			{
				RollNumber: "fa22-bcs-083", FullName: "Hamza Tariq", FatherName: "Tariq Mehmood",
				GPA: 3.2, CGPA: 3.05, CurrentSemester: 5,
				PassedCourses: []string{"CMPC-201"},
			},
		},
	}
}

func newSeededRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo := NewSQLiteRepository(testutil.NewTestDB(t))
	require.NoError(t, repo.ReplaceCatalog(context.Background(), seedFile()))
	return repo
}

func TestSQLiteRepository_ListCourses(t *testing.T) {
	repo := newSeededRepo(t)

	courses, err := repo.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 3)

	// Ordered by ID.
	assert.Equal(t, "CMPC-201", courses[0].ID)
	assert.Equal(t, "CMPC-301", courses[1].ID)
	assert.Equal(t, "ITDC-110", courses[2].ID)

	os := courses[1]
	assert.Equal(t, "Operating Systems", os.Name)
	assert.Equal(t, 4, os.Credits)
	assert.Equal(t, []string{"CMPC-201"}, os.Prereqs)
	require.Len(t, os.Slots, 2)
	assert.Equal(t, domain.Mon, os.Slots[0].Day)
	assert.Equal(t, 900, os.Slots[0].Start)
	assert.Equal(t, domain.Wed, os.Slots[1].Day)

	// A course with no slots is still listed, with an empty schedule.
	assert.Empty(t, courses[2].Slots)
}

func TestSQLiteRepository_GetCourse(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	c, err := repo.GetCourse(ctx, "CMPC-201")
	require.NoError(t, err)
	assert.Equal(t, "Data Structures", c.Name)
	require.Len(t, c.Slots, 1)
	assert.Equal(t, domain.Tue, c.Slots[0].Day)

	_, err = repo.GetCourse(ctx, "CMPC-999")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteRepository_Profile(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	p, err := repo.Profile(ctx, "fa22-bcs-083")
	require.NoError(t, err)
	assert.Equal(t, "Hamza Tariq", p.FullName)
	assert.Equal(t, 5, p.CurrentSemester)
	assert.InDelta(t, 3.05, p.CGPA, 0.001)

	_, err = repo.Profile(ctx, "fa22-bcs-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteRepository_PassedCourseIDs(t *testing.T) {
	repo := newSeededRepo(t)

	ids, err := repo.PassedCourseIDs(context.Background(), "fa22-bcs-083")
	require.NoError(t, err)
	assert.Equal(t, []string{"CMPC-201"}, ids)

	// Unknown student has simply passed nothing.
	ids, err = repo.PassedCourseIDs(context.Background(), "fa22-bcs-999")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSQLiteRepository_RecordRegistration(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	ids := []string{"CMPC-301", "ITDC-110"}
	require.NoError(t, repo.RecordRegistration(ctx, "fa22-bcs-083", ids, "Current Selection"))

	// Re-submitting the same schedule adds no duplicate rows.
	require.NoError(t, repo.RecordRegistration(ctx, "fa22-bcs-083", ids, "Current Selection"))

	regs, err := repo.Registrations(ctx, "fa22-bcs-083")
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, "CMPC-301", regs[0].CourseID)
	assert.Equal(t, "Current Selection", regs[0].SemesterLabel)
	assert.Equal(t, domain.RegStatusRegistered, regs[0].Status)
	assert.False(t, regs[0].CreatedAt.IsZero())

	// Same course under a different semester label is a distinct row.
	require.NoError(t, repo.RecordRegistration(ctx, "fa22-bcs-083", []string{"CMPC-301"}, "AI Sem 6"))
	regs, err = repo.Registrations(ctx, "fa22-bcs-083")
	require.NoError(t, err)
	assert.Len(t, regs, 3)
}

func TestSQLiteRepository_ReplaceCatalog_SwapsContents(t *testing.T) {
	repo := newSeededRepo(t)
	ctx := context.Background()

	replacement := &File{
		Courses: []CourseImport{
			{ID: "DSDC-101", Name: "Intro to Data Science", Credits: 3, Difficulty: 2},
		},
	}
	require.NoError(t, repo.ReplaceCatalog(ctx, replacement))

	courses, err := repo.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "DSDC-101", courses[0].ID)

	_, err = repo.Profile(ctx, "fa22-bcs-083")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalRegistrar_Register(t *testing.T) {
	repo := newSeededRepo(t)
	registrar := NewLocalRegistrar(repo)
	ctx := context.Background()

	err := registrar.Register(ctx, university.Registration{
		RollNumber:    "fa22-bcs-083",
		CourseIDs:     []string{"CMPC-301"},
		SemesterLabel: "Current Selection",
	})
	require.NoError(t, err)

	regs, err := repo.Registrations(ctx, "fa22-bcs-083")
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "CMPC-301", regs[0].CourseID)
}

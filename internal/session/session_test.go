package session

import (
	"context"
	"testing"

	"github.com/danicpp/course-advisor/internal/domain"
	"github.com/danicpp/course-advisor/internal/timetable"
	"github.com/danicpp/course-advisor/internal/university"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend implements both collaborator ports with scripted answers.
type stubBackend struct {
	plan        *university.Plan
	generateErr error
	registerErr error

	generateCalls int
	registerCalls int
	registered    []university.Registration
}

func (s *stubBackend) GeneratePath(ctx context.Context, req university.PathRequest) (*university.Plan, error) {
	s.generateCalls++
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return s.plan, nil
}

func (s *stubBackend) Register(ctx context.Context, reg university.Registration) error {
	s.registerCalls++
	if s.registerErr != nil {
		return s.registerErr
	}
	s.registered = append(s.registered, reg)
	return nil
}

func testProfile() domain.StudentProfile {
	return domain.StudentProfile{
		RollNumber:      "BSCS51F24R010",
		FullName:        "Ali Hassan",
		CurrentSemester: 3,
	}
}

func newTestSession(backend *stubBackend) *PlanningSession {
	return New(testProfile(), []string{"CMPC-5201", "CMPC-5204"}, backend, backend)
}

func slot(day domain.Weekday, start, end int) domain.MeetingSlot {
	return domain.MeetingSlot{Day: day, Start: start, End: end}
}

func course(id string, credits int, slots ...domain.MeetingSlot) *domain.Course {
	return &domain.Course{ID: id, Name: "Course " + id, Credits: credits, Difficulty: 3, Slots: slots}
}

func TestNew_StartsInPlanning(t *testing.T) {
	s := newTestSession(&stubBackend{})

	assert.Equal(t, domain.StatePlanning, s.State())
	assert.Equal(t, domain.StrategyBalanced, s.Strategy(), "balanced is the default strategy")
	assert.False(t, s.Locked())
	assert.Zero(t, s.Draft().Len())
	assert.Empty(t, s.LastError())
	assert.NotEmpty(t, s.ID())
}

func TestAddCourse_ConflictSurfacesError(t *testing.T) {
	s := newTestSession(&stubBackend{})
	require.NoError(t, s.AddCourse(course("A-1", 3, slot(domain.Mon, 900, 1030))))

	err := s.AddCourse(course("B-1", 3, slot(domain.Mon, 1000, 1130)))

	var rejected *RejectedAddError
	require.ErrorAs(t, err, &rejected)
	assert.Contains(t, s.LastError(), "Course A-1")
	assert.Equal(t, []string{"A-1"}, s.Draft().CourseIDs(), "draft still contains only A")
}

func TestAddCourse_SuccessClearsPendingError(t *testing.T) {
	s := newTestSession(&stubBackend{})
	require.NoError(t, s.AddCourse(course("A-1", 3, slot(domain.Mon, 900, 1030))))
	require.Error(t, s.AddCourse(course("B-1", 3, slot(domain.Mon, 1000, 1130))))
	require.NotEmpty(t, s.LastError())

	require.NoError(t, s.AddCourse(course("C-1", 3, slot(domain.Tue, 900, 1030))))

	assert.Empty(t, s.LastError())
}

func TestDismissError(t *testing.T) {
	s := newTestSession(&stubBackend{})
	require.NoError(t, s.AddCourse(course("A-1", 18)))
	require.Error(t, s.AddCourse(course("B-1", 1)))
	require.NotEmpty(t, s.LastError())

	s.DismissError()

	assert.Empty(t, s.LastError())
	assert.Equal(t, []string{"A-1"}, s.Draft().CourseIDs(), "dismissal does not retry the add")
}

func TestConfirm_LocksSessionOnSuccess(t *testing.T) {
	backend := &stubBackend{}
	s := newTestSession(backend)
	require.NoError(t, s.AddCourse(course("A-1", 3)))
	require.NoError(t, s.AddCourse(course("B-1", 3)))

	require.NoError(t, s.Confirm(context.Background()))

	assert.Equal(t, domain.StateLocked, s.State())
	assert.True(t, s.Locked())
	assert.True(t, s.Draft().Frozen())
	require.Len(t, backend.registered, 1)
	assert.Equal(t, "BSCS51F24R010", backend.registered[0].RollNumber)
	assert.Equal(t, []string{"A-1", "B-1"}, backend.registered[0].CourseIDs)
	assert.Equal(t, "Current Selection", backend.registered[0].SemesterLabel)
}

func TestConfirm_EmptyDraftRejected(t *testing.T) {
	backend := &stubBackend{}
	s := newTestSession(backend)

	err := s.Confirm(context.Background())

	assert.ErrorIs(t, err, ErrEmptyDraft)
	assert.Equal(t, domain.StatePlanning, s.State())
	assert.Zero(t, backend.registerCalls)
}

func TestConfirm_CollaboratorFailureKeepsPlanning(t *testing.T) {
	backend := &stubBackend{registerErr: university.ErrUnavailable}
	s := newTestSession(backend)
	require.NoError(t, s.AddCourse(course("A-1", 3)))

	err := s.Confirm(context.Background())

	assert.ErrorIs(t, err, university.ErrUnavailable)
	assert.Equal(t, domain.StatePlanning, s.State(), "failed submit leaves state unchanged")
	assert.False(t, s.Draft().Frozen())
	assert.NotEmpty(t, s.LastError())

	// The failure is never retried automatically: only an explicit
	// user action issues a second call.
	assert.Equal(t, 1, backend.registerCalls)
}

func TestConfirm_WhileLockedIsNoop(t *testing.T) {
	backend := &stubBackend{}
	s := newTestSession(backend)
	require.NoError(t, s.AddCourse(course("A-1", 3)))
	require.NoError(t, s.Confirm(context.Background()))
	require.Equal(t, 1, backend.registerCalls)

	require.NoError(t, s.Confirm(context.Background()))

	assert.Equal(t, domain.StateLocked, s.State())
	assert.Equal(t, 1, backend.registerCalls, "no collaborator call on re-confirm")
}

func TestLocked_DisablesMutationAndGeneration(t *testing.T) {
	backend := &stubBackend{}
	s := newTestSession(backend)
	require.NoError(t, s.AddCourse(course("A-1", 3)))
	require.NoError(t, s.Confirm(context.Background()))

	assert.ErrorIs(t, s.AddCourse(course("B-1", 3)), domain.ErrSessionLocked)
	assert.ErrorIs(t, s.RemoveCourse("A-1"), domain.ErrSessionLocked)
	assert.ErrorIs(t, s.GenerateRoadmap(context.Background()), domain.ErrSessionLocked)
	assert.Equal(t, []string{"A-1"}, s.Draft().CourseIDs(), "draft unchanged")
	assert.Zero(t, backend.generateCalls)
}

func TestRemoveCourse_ClearsError(t *testing.T) {
	s := newTestSession(&stubBackend{})
	require.NoError(t, s.AddCourse(course("A-1", 18)))
	require.Error(t, s.AddCourse(course("B-1", 3)))

	require.NoError(t, s.RemoveCourse("A-1"))

	assert.Empty(t, s.LastError())
	assert.Zero(t, s.Draft().Len())
}

func TestGenerateRoadmap_EntersReview(t *testing.T) {
	backend := &stubBackend{plan: &university.Plan{
		Strategy: domain.StrategyBalanced,
		Semesters: []university.SemesterPlan{
			{Semester: 4, Reason: "Focusing on foundational courses.",
				Courses: []university.PlanCourse{{CourseID: "CMPC-5205", CourseName: "Data Structures"}}},
			{Semester: 5,
				Courses: []university.PlanCourse{{CourseID: "CMPC-6201", CourseName: "Operating Systems"}}},
		},
	}}
	s := newTestSession(backend)
	s.SetStrategy(domain.StrategyRelaxed)

	require.NoError(t, s.GenerateRoadmap(context.Background()))

	assert.Equal(t, domain.StateRoadmapReview, s.State())
	require.NotNil(t, s.Plan())
	assert.Len(t, s.Plan().Semesters, 2)
}

func TestGenerateRoadmap_FailureKeepsState(t *testing.T) {
	backend := &stubBackend{generateErr: university.ErrTimeout}
	s := newTestSession(backend)

	err := s.GenerateRoadmap(context.Background())

	assert.ErrorIs(t, err, university.ErrTimeout)
	assert.Equal(t, domain.StatePlanning, s.State())
	assert.Nil(t, s.Plan())
	assert.NotEmpty(t, s.LastError())
}

func TestReturnToPlanning_DiscardsPlan(t *testing.T) {
	backend := &stubBackend{plan: &university.Plan{
		Semesters: []university.SemesterPlan{{Semester: 4}},
	}}
	s := newTestSession(backend)
	require.NoError(t, s.GenerateRoadmap(context.Background()))

	s.ReturnToPlanning()

	assert.Equal(t, domain.StatePlanning, s.State())
	assert.Nil(t, s.Plan())
}

func TestAcceptSemester_RegistersWithoutTouchingDraft(t *testing.T) {
	backend := &stubBackend{plan: &university.Plan{
		Semesters: []university.SemesterPlan{
			{Semester: 5, Courses: []university.PlanCourse{
				{CourseID: "CMPC-6201", CourseName: "Operating Systems"},
				{CourseID: "CSDC-6201", CourseName: "HCI & Computer Graphics"},
			}},
		},
	}}
	s := newTestSession(backend)
	require.NoError(t, s.AddCourse(course("A-1", 3)))
	require.NoError(t, s.GenerateRoadmap(context.Background()))

	require.NoError(t, s.AcceptSemester(context.Background(), 0))

	require.Len(t, backend.registered, 1)
	assert.Equal(t, "AI Sem 5", backend.registered[0].SemesterLabel)
	assert.Equal(t, []string{"CMPC-6201", "CSDC-6201"}, backend.registered[0].CourseIDs)
	assert.Equal(t, domain.StateRoadmapReview, s.State(), "accepting does not change state")
	assert.Equal(t, []string{"A-1"}, s.Draft().CourseIDs(), "draft untouched")
	assert.False(t, s.Locked())
}

func TestAcceptSemester_InvalidIndex(t *testing.T) {
	backend := &stubBackend{plan: &university.Plan{
		Semesters: []university.SemesterPlan{{Semester: 4}},
	}}
	s := newTestSession(backend)
	require.NoError(t, s.GenerateRoadmap(context.Background()))

	assert.ErrorIs(t, s.AcceptSemester(context.Background(), 3), ErrNoSuchSemester)
	assert.ErrorIs(t, s.AcceptSemester(context.Background(), -1), ErrNoSuchSemester)
}

func TestAcceptSemester_WithoutPlan(t *testing.T) {
	s := newTestSession(&stubBackend{})
	assert.ErrorIs(t, s.AcceptSemester(context.Background(), 0), ErrNoPlan)
}

func TestSetStrategy_UnknownFallsBackToBalanced(t *testing.T) {
	s := newTestSession(&stubBackend{})

	s.SetStrategy("warp-speed")

	assert.Equal(t, domain.StrategyBalanced, s.Strategy())
}

func TestBlocks_LaysOutDraft(t *testing.T) {
	s := newTestSession(&stubBackend{})
	require.NoError(t, s.AddCourse(course("A-1", 3,
		slot(domain.Mon, 900, 1030), slot(domain.Wed, 900, 1030))))

	blocks := s.Blocks(timetable.DefaultConfig())

	require.Len(t, blocks, 2)
	assert.Equal(t, "A-1", blocks[0].CourseID)
	assert.Equal(t, domain.Wed, blocks[1].Day)
}

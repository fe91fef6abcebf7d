package domain

// CreditCap is the maximum credit load of a draft schedule.
const CreditCap = 18

// DraftSchedule is the mutable set of selected courses for one planning
// session. Iteration order is insertion order. The conflict checker
// gatekeeps time conflicts; the draft itself enforces the credit cap so
// the invariant can never be violated, not even transiently.
//
// A DraftSchedule is owned by exactly one PlanningSession and is not
// safe for concurrent use.
type DraftSchedule struct {
	courses []*Course
	byID    map[string]*Course
	frozen  bool
}

// NewDraftSchedule returns an empty, unfrozen draft.
func NewDraftSchedule() *DraftSchedule {
	return &DraftSchedule{byID: make(map[string]*Course)}
}

// Add appends a course to the draft. Adding a course already present is a
// no-op. Returns ErrSessionLocked on a frozen draft and
// ErrCreditCapExceeded if the add would break the cap invariant.
func (d *DraftSchedule) Add(c *Course) error {
	if d.frozen {
		return ErrSessionLocked
	}
	if _, ok := d.byID[c.ID]; ok {
		return nil
	}
	if d.TotalCredits()+c.Credits > CreditCap {
		return ErrCreditCapExceeded
	}
	d.courses = append(d.courses, c)
	d.byID[c.ID] = c
	return nil
}

// Remove drops a course by ID. Removing a non-member is a no-op.
func (d *DraftSchedule) Remove(courseID string) error {
	if d.frozen {
		return ErrSessionLocked
	}
	if _, ok := d.byID[courseID]; !ok {
		return nil
	}
	delete(d.byID, courseID)
	for i, c := range d.courses {
		if c.ID == courseID {
			d.courses = append(d.courses[:i], d.courses[i+1:]...)
			break
		}
	}
	return nil
}

// Contains reports whether a course ID is in the draft.
func (d *DraftSchedule) Contains(courseID string) bool {
	_, ok := d.byID[courseID]
	return ok
}

// Get returns the member course with the given ID, or nil.
func (d *DraftSchedule) Get(courseID string) *Course {
	return d.byID[courseID]
}

// TotalCredits sums the credit weights of all member courses.
func (d *DraftSchedule) TotalCredits() int {
	total := 0
	for _, c := range d.courses {
		total += c.Credits
	}
	return total
}

// IsFull reports whether the draft has reached the credit cap.
func (d *DraftSchedule) IsFull() bool {
	return d.TotalCredits() >= CreditCap
}

// Len returns the number of member courses.
func (d *DraftSchedule) Len() int {
	return len(d.courses)
}

// Courses returns the member courses in insertion order. The returned
// slice is a copy; the courses themselves are shared and read-only.
func (d *DraftSchedule) Courses() []*Course {
	out := make([]*Course, len(d.courses))
	copy(out, d.courses)
	return out
}

// CourseIDs returns the member course IDs in insertion order.
func (d *DraftSchedule) CourseIDs() []string {
	ids := make([]string, len(d.courses))
	for i, c := range d.courses {
		ids[i] = c.ID
	}
	return ids
}

// Freeze permanently disables mutation. Called when the session locks.
func (d *DraftSchedule) Freeze() {
	d.frozen = true
}

// Frozen reports whether the draft has been frozen.
func (d *DraftSchedule) Frozen() bool {
	return d.frozen
}

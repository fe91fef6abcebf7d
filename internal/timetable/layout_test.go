package timetable

import (
	"testing"

	"github.com/danicpp/course-advisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_OneBlockPerSlot(t *testing.T) {
	// A course meeting Mon and Wed 0900-1030 yields exactly two blocks
	// with the same course ID and correct day tags.
	c := &domain.Course{
		ID: "CMPC-5205", Name: "Data Structures", Credits: 4, Difficulty: 5,
		Slots: []domain.MeetingSlot{
			{Day: domain.Mon, Start: 900, End: 1030},
			{Day: domain.Wed, Start: 900, End: 1030},
		},
	}

	blocks := Layout([]*domain.Course{c}, DefaultConfig())

	require.Len(t, blocks, 2)
	assert.Equal(t, "CMPC-5205", blocks[0].CourseID)
	assert.Equal(t, "CMPC-5205", blocks[1].CourseID)
	assert.Equal(t, domain.Mon, blocks[0].Day)
	assert.Equal(t, domain.Wed, blocks[1].Day)
	assert.Equal(t, blocks[0].Offset, blocks[1].Offset, "same times place at the same offset")
	assert.Equal(t, blocks[0].Height, blocks[1].Height)
}

func TestLayout_OffsetAndHeightScaling(t *testing.T) {
	// 0900-1030 on the default 08:00 grid at 50 units/hour:
	// offset = 60 min * 50/60 = 50, height = 90 min * 50/60 = 75.
	c := &domain.Course{
		ID: "A-1", Name: "A", Credits: 3, Difficulty: 3,
		Slots: []domain.MeetingSlot{{Day: domain.Mon, Start: 900, End: 1030}},
	}

	blocks := Layout([]*domain.Course{c}, DefaultConfig())

	require.Len(t, blocks, 1)
	assert.InDelta(t, 50.0, blocks[0].Offset, 1e-9)
	assert.InDelta(t, 75.0, blocks[0].Height, 1e-9)
	assert.Equal(t, "A-1 900-1030", blocks[0].Label)
}

func TestLayout_CustomUnitsPerHour(t *testing.T) {
	cfg := Config{UnitsPerHour: 60, DayStart: 800, DayEnd: 1700}
	c := &domain.Course{
		ID: "A-1", Name: "A", Credits: 3, Difficulty: 3,
		Slots: []domain.MeetingSlot{{Day: domain.Tue, Start: 1000, End: 1100}},
	}

	blocks := Layout([]*domain.Course{c}, cfg)

	require.Len(t, blocks, 1)
	assert.InDelta(t, 120.0, blocks[0].Offset, 1e-9, "2h after grid start at 1 unit/min")
	assert.InDelta(t, 60.0, blocks[0].Height, 1e-9)
}

func TestLayout_ClipsToWindow(t *testing.T) {
	courses := []*domain.Course{
		{
			ID: "EARLY", Name: "Early", Credits: 3, Difficulty: 3,
			Slots: []domain.MeetingSlot{{Day: domain.Mon, Start: 700, End: 900}},
		},
		{
			ID: "LATE", Name: "Late", Credits: 3, Difficulty: 3,
			Slots: []domain.MeetingSlot{{Day: domain.Mon, Start: 1630, End: 1800}},
		},
		{
			ID: "GONE", Name: "Off grid", Credits: 3, Difficulty: 3,
			Slots: []domain.MeetingSlot{{Day: domain.Mon, Start: 1800, End: 1930}},
		},
	}

	blocks := Layout(courses, DefaultConfig())

	require.Len(t, blocks, 2, "fully off-window slot produces no block")
	assert.Equal(t, "EARLY", blocks[0].CourseID)
	assert.InDelta(t, 0.0, blocks[0].Offset, 1e-9, "clipped to grid start")
	assert.InDelta(t, 50.0, blocks[0].Height, 1e-9, "only the visible hour remains")
	assert.Equal(t, "LATE", blocks[1].CourseID)
	assert.InDelta(t, 25.0, blocks[1].Height, 1e-9, "clipped to grid end")
}

func TestLayout_TBACourseProducesNoBlocks(t *testing.T) {
	c := &domain.Course{ID: "TBA-1", Name: "TBA", Credits: 3, Difficulty: 3}
	assert.Empty(t, Layout([]*domain.Course{c}, DefaultConfig()))
}

func TestLayout_OverlappingInputDoesNotFail(t *testing.T) {
	// The roadmap acceptance path bypasses the checker; overlapping
	// blocks are visually undefined but must still lay out.
	courses := []*domain.Course{
		{ID: "A-1", Name: "A", Credits: 3, Difficulty: 3,
			Slots: []domain.MeetingSlot{{Day: domain.Mon, Start: 900, End: 1030}}},
		{ID: "B-1", Name: "B", Credits: 3, Difficulty: 3,
			Slots: []domain.MeetingSlot{{Day: domain.Mon, Start: 930, End: 1100}}},
	}

	blocks := Layout(courses, DefaultConfig())
	assert.Len(t, blocks, 2)
}

func TestLayout_ZeroConfigFallsBackToDefault(t *testing.T) {
	c := &domain.Course{
		ID: "A-1", Name: "A", Credits: 3, Difficulty: 3,
		Slots: []domain.MeetingSlot{{Day: domain.Mon, Start: 900, End: 1000}},
	}

	blocks := Layout([]*domain.Course{c}, Config{})

	require.Len(t, blocks, 1)
	assert.InDelta(t, 50.0, blocks[0].Offset, 1e-9)
}

func TestConfig_GridHeight(t *testing.T) {
	assert.InDelta(t, 450.0, DefaultConfig().GridHeight(), 1e-9, "9 hours at 50 units/hour")
}

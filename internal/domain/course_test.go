package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeetingSlot_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b MeetingSlot
		want bool
	}{
		{
			name: "same day overlapping",
			a:    MeetingSlot{Day: Mon, Start: 900, End: 1030},
			b:    MeetingSlot{Day: Mon, Start: 1000, End: 1130},
			want: true,
		},
		{
			name: "same day back to back",
			a:    MeetingSlot{Day: Mon, Start: 900, End: 1030},
			b:    MeetingSlot{Day: Mon, Start: 1030, End: 1200},
			want: false,
		},
		{
			name: "different days same times",
			a:    MeetingSlot{Day: Mon, Start: 900, End: 1030},
			b:    MeetingSlot{Day: Tue, Start: 900, End: 1030},
			want: false,
		},
		{
			name: "contained interval",
			a:    MeetingSlot{Day: Wed, Start: 900, End: 1200},
			b:    MeetingSlot{Day: Wed, Start: 1000, End: 1100},
			want: true,
		},
		{
			name: "identical slots",
			a:    MeetingSlot{Day: Fri, Start: 1400, End: 1530},
			b:    MeetingSlot{Day: Fri, Start: 1400, End: 1530},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap should be symmetric")
		})
	}
}

func TestMeetingSlot_Valid(t *testing.T) {
	assert.True(t, MeetingSlot{Day: Mon, Start: 900, End: 1030}.Valid())
	assert.False(t, MeetingSlot{Day: Mon, Start: 1030, End: 900}.Valid(), "start must precede end")
	assert.False(t, MeetingSlot{Day: Mon, Start: 900, End: 900}.Valid(), "empty interval")
	assert.False(t, MeetingSlot{Day: "Sat", Start: 900, End: 1030}.Valid(), "weekend day")
	assert.False(t, MeetingSlot{Day: Tue, Start: 980, End: 1030}.Valid(), "minutes out of range")
	assert.False(t, MeetingSlot{Day: Tue, Start: -100, End: 1030}.Valid())
}

func TestCourse_Validate(t *testing.T) {
	valid := &Course{
		ID: "CMPC-5201", Name: "Programming Fundamentals",
		Credits: 4, Difficulty: 3,
		Slots: []MeetingSlot{{Day: Mon, Start: 900, End: 1030}},
	}
	assert.NoError(t, valid.Validate())

	tba := &Course{ID: "URCI-5105", Name: "Islamic Studies", Credits: 2, Difficulty: 1}
	assert.NoError(t, tba.Validate(), "slotless TBA course is valid")

	assert.Error(t, (&Course{Name: "x", Credits: 3, Difficulty: 2}).Validate(), "missing id")
	assert.Error(t, (&Course{ID: "X-1", Credits: 3, Difficulty: 2}).Validate(), "missing name")
	assert.Error(t, (&Course{ID: "X-1", Name: "x", Credits: 0, Difficulty: 2}).Validate(), "zero credits")
	assert.Error(t, (&Course{ID: "X-1", Name: "x", Credits: 3, Difficulty: 6}).Validate(), "difficulty out of range")
	assert.Error(t, (&Course{
		ID: "X-1", Name: "x", Credits: 3, Difficulty: 2,
		Slots: []MeetingSlot{{Day: Mon, Start: 1100, End: 900}},
	}).Validate(), "inverted slot")
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		id   string
		want Category
	}{
		{"CMPC-5201", CategoryCoreComputing},
		{"CSDC-5101", CategoryCoreComputing},
		{"CSDE-6505", CategoryDomainElectives},
		{"ITDC-5201", CategoryDomainElectives},
		{"DSDE-5102", CategoryDomainElectives},
		{"URCA-5123", CategoryGeneralAndMath},
		{"MATH-5101", CategoryGeneralAndMath},
		{"ENGL-6101", CategoryGeneralAndMath},
		{"ZZZZ-0000", CategoryGeneralAndMath},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryOf(tt.id), tt.id)
	}
}

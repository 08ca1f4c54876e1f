package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acadgrid/timetable/pkg/model"
)

func entry(course, faculty, room, branch, section, day, slot, half string) *model.TimetableEntry {
	return &model.TimetableEntry{
		Day: day, TimeSlot: slot, Course: course, Faculty: faculty, Room: room,
		Type: model.TypeLecture, Branch: branch, Section: section, Year: 2, SemesterHalf: half,
	}
}

func TestValidateCleanTimetable(t *testing.T) {
	entries := []*model.TimetableEntry{
		entry("A - Lecture 1 (1/1)", "Prof A", "101", "CSE", "ALL", "Monday", "09:00 - 10:30", "1"),
		entry("B - Lecture 1 (1/1)", "Prof B", "102", "ECE", "ALL", "Monday", "09:00 - 10:30", "1"),
	}
	valid, msg := Validate(entries)
	assert.True(t, valid, msg)
	assert.Contains(t, msg, "[  OK]: Faculty collision check.")
	assert.Contains(t, msg, "[  OK]: Room collision check.")
	assert.Contains(t, msg, "[  OK]: Cohort collision check.")
}

func TestValidateFacultyCollision(t *testing.T) {
	entries := []*model.TimetableEntry{
		entry("A - Lecture 1 (1/1)", "Prof A", "101", "CSE", "ALL", "Monday", "09:00 - 10:30", "1"),
		entry("B - Lecture 1 (1/1)", "Prof A", "102", "ECE", "ALL", "Monday", "09:00 - 10:30", "1"),
	}
	valid, msg := Validate(entries)
	assert.False(t, valid)
	assert.Contains(t, msg, "[FAIL]: Faculty collision check.")
}

func TestValidateRoomCollision(t *testing.T) {
	entries := []*model.TimetableEntry{
		entry("A - Lecture 1 (1/1)", "Prof A", "101", "CSE", "ALL", "Monday", "09:00 - 10:30", "1"),
		entry("B - Lecture 1 (1/1)", "Prof B", "101", "ECE", "ALL", "Monday", "09:00 - 10:30", "1"),
	}
	valid, msg := Validate(entries)
	assert.False(t, valid)
	assert.Contains(t, msg, "[FAIL]: Room collision check.")
}

func TestValidateCohortCollision(t *testing.T) {
	entries := []*model.TimetableEntry{
		entry("A - Lecture 1 (1/1)", "Prof A", "101", "CSE", "ALL", "Monday", "09:00 - 10:30", "1"),
		entry("B - Lecture 1 (1/1)", "Prof B", "102", "CSE", "ALL", "Monday", "09:00 - 10:30", "1"),
	}
	valid, msg := Validate(entries)
	assert.False(t, valid)
	assert.Contains(t, msg, "[FAIL]: Cohort collision check.")
}

// A combined cross-branch session is two rows of one physical session:
// same course label, room and faculty, different cohorts.
func TestValidateCombinedSessionIsNotACollision(t *testing.T) {
	a := entry("A - Lecture 1 (1/1)", "Prof A", "101", "CSE", "ALL", "Monday", "09:00 - 10:30", "1")
	a.IsShared = true
	a.SharedWith = "Shared with ECE-ALL"
	b := entry("A - Lecture 1 (1/1)", "Prof A", "101", "ECE", "ALL", "Monday", "09:00 - 10:30", "1")
	b.IsShared = true
	b.SharedWith = "Shared with CSE-ALL"

	valid, msg := Validate([]*model.TimetableEntry{a, b})
	assert.True(t, valid, msg)
}

// Synchronized electives overlap within one cohort by design, but two
// distinct shared sessions still may not share a room.
func TestValidateSharedElectivesSameCohortAllowedDistinctRoomsEnforced(t *testing.T) {
	a := entry("EL1 - Lecture 1 (1/1)", "Prof A", "101", "CSE", "ALL", "Monday", "09:00 - 10:30", "1")
	a.IsShared = true
	a.SharedWith = "Year 2 electives"
	b := entry("EL2 - Lecture 1 (1/1)", "Prof B", "102", "CSE", "ALL", "Monday", "09:00 - 10:30", "1")
	b.IsShared = true
	b.SharedWith = "Year 2 electives"

	valid, msg := Validate([]*model.TimetableEntry{a, b})
	assert.True(t, valid, msg)

	// Same room would be a real clash even for shared sessions with
	// different labels.
	b.Room = "101"
	valid, msg = Validate([]*model.TimetableEntry{a, b})
	assert.False(t, valid)
	assert.Contains(t, msg, "[FAIL]: Room collision check.")
}

func TestValidateSecondHalfDoesNotConflictWithFirst(t *testing.T) {
	entries := []*model.TimetableEntry{
		entry("A - Lecture 1 (1/1)", "Prof A", "101", "CSE", "ALL", "Monday", "09:00 - 10:30", "1"),
		entry("B - Lecture 1 (1/1)", "Prof A", "101", "CSE", "ALL", "Monday", "09:00 - 10:30", "2"),
	}
	valid, msg := Validate(entries)
	assert.True(t, valid, msg)
}

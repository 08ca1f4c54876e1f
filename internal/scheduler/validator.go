package scheduler

import (
	"fmt"

	"github.com/acadgrid/timetable/pkg/model"
)

// Validate checks a committed timetable for double-booked faculty,
// rooms and cohorts. Returns false and a report for invalid
// timetables. Cohort overlaps are legitimate only when both entries are
// shared sessions (a synchronized elective bundle or a cross-branch
// pair); faculty and room checks have no exceptions.
func Validate(entries []*model.TimetableEntry) (bool, string) {
	var message string
	valid := true
	hasFacultyCollision := false
	hasRoomCollision := false
	hasCohortCollision := false

	type occupancy struct {
		Name string
		Day  string
		Slot string
		Half string
	}
	facultySeen := make(map[occupancy]*model.TimetableEntry)
	roomSeen := make(map[occupancy]*model.TimetableEntry)

	type cohortOccupancy struct {
		Cohort model.Cohort
		Day    string
		Slot   string
		Half   string
	}
	cohortSeen := make(map[cohortOccupancy]*model.TimetableEntry)

	// A cross-branch combined session emits one entry per cohort with
	// the same course label, room and faculty. Those rows describe one
	// physical session, not a clash.
	sameCombined := func(a, b *model.TimetableEntry) bool {
		return a.IsShared && b.IsShared && a.Course == b.Course
	}

	for _, e := range entries {
		fKey := occupancy{e.Faculty, e.Day, e.TimeSlot, e.SemesterHalf}
		if prev, ok := facultySeen[fKey]; ok && prev != e && !sameCombined(prev, e) {
			valid = false
			hasFacultyCollision = true
			message += fmt.Sprintf("- Faculty %s double-booked on %s %s: %q and %q\n",
				e.Faculty, e.Day, e.TimeSlot, prev.Course, e.Course)
		} else if !ok {
			facultySeen[fKey] = e
		}

		rKey := occupancy{e.Room, e.Day, e.TimeSlot, e.SemesterHalf}
		if prev, ok := roomSeen[rKey]; ok && prev != e && !sameCombined(prev, e) {
			valid = false
			hasRoomCollision = true
			message += fmt.Sprintf("- Room %s double-booked on %s %s: %q and %q\n",
				e.Room, e.Day, e.TimeSlot, prev.Course, e.Course)
		} else if !ok {
			roomSeen[rKey] = e
		}

		cKey := cohortOccupancy{model.Cohort{Branch: e.Branch, Year: e.Year, Section: e.Section}, e.Day, e.TimeSlot, e.SemesterHalf}
		if prev, ok := cohortSeen[cKey]; ok && prev != e {
			if !(prev.IsShared && e.IsShared) {
				valid = false
				hasCohortCollision = true
				message += fmt.Sprintf("- Cohort %s/%d/%s double-booked on %s %s: %q and %q\n",
					e.Branch, e.Year, e.Section, e.Day, e.TimeSlot, prev.Course, e.Course)
			}
		} else if !ok {
			cohortSeen[cKey] = e
		}
	}

	if hasCohortCollision {
		message = "[FAIL]: Cohort collision check.\n" + message
	} else {
		message = "[  OK]: Cohort collision check.\n" + message
	}
	if hasRoomCollision {
		message = "[FAIL]: Room collision check.\n" + message
	} else {
		message = "[  OK]: Room collision check.\n" + message
	}
	if hasFacultyCollision {
		message = "[FAIL]: Faculty collision check.\n" + message
	} else {
		message = "[  OK]: Faculty collision check.\n" + message
	}

	return valid, message
}

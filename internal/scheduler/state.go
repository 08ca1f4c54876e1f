package scheduler

import (
	"github.com/acadgrid/timetable/pkg/model"
)

// resourceSlot keys the faculty and room busy maps: one named resource
// occupying one slot of one day within one semester half.
type resourceSlot struct {
	Name string
	Day  string
	Slot string
	Half string
}

// cohortSlot keys the cohort busy map.
type cohortSlot struct {
	Cohort model.Cohort
	Day    string
	Slot   string
}

// courseDay keys the per-course day-spread tracking.
type courseDay struct {
	Cohort model.Cohort
	Code   string
	Half   string
}

// State is the conflict bookkeeping for one semester-half run. Once a
// (resource, day, slot) triple is marked busy it stays busy for the
// rest of the run; the engine never unschedules.
type State struct {
	half        string
	facultyBusy map[resourceSlot]bool
	roomBusy    map[resourceSlot]bool
	cohortBusy  map[cohortSlot]bool
	courseDays  map[courseDay]map[string]bool
	assigned    map[model.CourseID]bool
}

// NewState returns empty bookkeeping scoped to one semester half.
// Concurrent generation runs must each own their own State.
func NewState(half string) *State {
	return &State{
		half:        half,
		facultyBusy: make(map[resourceSlot]bool),
		roomBusy:    make(map[resourceSlot]bool),
		cohortBusy:  make(map[cohortSlot]bool),
		courseDays:  make(map[courseDay]map[string]bool),
		assigned:    make(map[model.CourseID]bool),
	}
}

func (s *State) Half() string { return s.half }

// FacultyFree reports whether the named faculty member is unoccupied on
// every given slot of the day.
func (s *State) FacultyFree(name, day string, slots []string) bool {
	for _, slot := range slots {
		if s.facultyBusy[resourceSlot{name, day, slot, s.half}] {
			return false
		}
	}
	return true
}

// RoomFree reports whether the room is unoccupied on every given slot.
func (s *State) RoomFree(number, day string, slots []string) bool {
	for _, slot := range slots {
		if s.roomBusy[resourceSlot{number, day, slot, s.half}] {
			return false
		}
	}
	return true
}

// CohortFree reports whether the student cohort is unoccupied on every
// given slot.
func (s *State) CohortFree(c model.Cohort, day string, slots []string) bool {
	for _, slot := range slots {
		if s.cohortBusy[cohortSlot{c, day, slot}] {
			return false
		}
	}
	return true
}

// Occupy marks the faculty member, the room and every cohort busy on
// all given slots of the day.
func (s *State) Occupy(faculty, room string, cohorts []model.Cohort, day string, slots []string) {
	for _, slot := range slots {
		s.facultyBusy[resourceSlot{faculty, day, slot, s.half}] = true
		s.roomBusy[resourceSlot{room, day, slot, s.half}] = true
		for _, c := range cohorts {
			s.cohortBusy[cohortSlot{c, day, slot}] = true
		}
	}
}

// DayUsed reports whether the course already holds a session on the day
// this half. Spreading sessions across days is a hard constraint.
func (s *State) DayUsed(c *model.Course, day string) bool {
	return s.courseDays[courseDay{c.Cohort(), c.Code, s.half}][day]
}

// MarkDayUsed records the day against the course's spread tracking.
func (s *State) MarkDayUsed(c *model.Course, day string) {
	key := courseDay{c.Cohort(), c.Code, s.half}
	if s.courseDays[key] == nil {
		s.courseDays[key] = make(map[string]bool)
	}
	s.courseDays[key][day] = true
}

// Assigned reports whether the course has already been fully processed
// this run, either scheduled directly or folded into a partner's
// combined sessions.
func (s *State) Assigned(c *model.Course) bool {
	return s.assigned[c.ID(s.half)]
}

// MarkAssigned records the course as processed.
func (s *State) MarkAssigned(c *model.Course) {
	s.assigned[c.ID(s.half)] = true
}

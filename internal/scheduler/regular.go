package scheduler

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/acadgrid/timetable/pkg/model"
)

// FilterSectioned drops generic "ALL"-section rows for any (branch,
// year) that also carries section-specific rows. A generic offering
// must be re-expressed per section once sections exist, otherwise the
// generic and the sectioned rows would double-book the same students.
// The filter is idempotent.
func FilterSectioned(courses []*model.Course) []*model.Course {
	type branchYear struct {
		Branch string
		Year   int
	}
	sectioned := make(map[branchYear]bool)
	for _, c := range courses {
		if c.Section != "" && !strings.EqualFold(c.Section, "ALL") {
			sectioned[branchYear{c.Branch, c.Year}] = true
		}
	}
	out := make([]*model.Course, 0, len(courses))
	for _, c := range courses {
		if (c.Section == "" || strings.EqualFold(c.Section, "ALL")) && sectioned[branchYear{c.Branch, c.Year}] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// scheduleGroups schedules the non-elective courses of every cohort.
// Labs go first: they need the longest contiguous run and afternoon
// 120-minute capacity is the scarcest resource on the grid.
func (g *Generator) scheduleGroups(courses []*model.Course, rooms []*model.Room,
	st *State, entries []*model.TimetableEntry, rep *Report) []*model.TimetableEntry {

	groups := make(map[model.Cohort][]*model.Course)
	var order []model.Cohort
	for _, c := range courses {
		// Rows without a branch or year cannot be grouped; skip them.
		if c.Branch == "" || c.Year == 0 {
			continue
		}
		co := c.Cohort()
		if _, ok := groups[co]; !ok {
			order = append(order, co)
		}
		groups[co] = append(groups[co], c)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].Branch != order[j].Branch {
			return order[i].Branch < order[j].Branch
		}
		if order[i].Year != order[j].Year {
			return order[i].Year < order[j].Year
		}
		return order[i].Section < order[j].Section
	})

	for _, co := range order {
		var labs, lectures []*model.Course
		for _, c := range groups[co] {
			if strings.Contains(strings.ToLower(c.Type), "lab") {
				labs = append(labs, c)
			} else {
				lectures = append(lectures, c)
			}
		}
		entries = g.scheduleLabs(labs, rooms, st, entries, rep)
		entries = g.scheduleLectures(lectures, courses, rooms, st, entries, rep)
	}
	return entries
}

// scheduleLectures places the three weekly sessions of each non-lab
// course, combining it with a mutually cross-listed partner when one
// resolves: the pair shares one room and one time while both cohorts
// are marked busy.
func (g *Generator) scheduleLectures(group []*model.Course, pool []*model.Course,
	rooms []*model.Room, st *State, entries []*model.TimetableEntry, rep *Report) []*model.TimetableEntry {

	pref := classroomsOf(rooms)
	for _, course := range group {
		if st.Assigned(course) {
			continue
		}
		st.MarkAssigned(course)
		set := []*model.Course{course}
		if partner := FindPartner(course, pool, st); partner != nil {
			st.MarkAssigned(partner)
			set = append(set, partner)
			g.log.Debug("cross-branch pair resolved",
				zap.String("course", course.Code),
				zap.String("branch", course.Branch),
				zap.String("partnerBranch", partner.Branch))
		}

		for _, sess := range lectureSessions {
			rep.TotalSessions += len(set)
			if g.placeSessionSet(set, sess, pref, st, &entries) {
				rep.PlacedSessions += len(set)
				continue
			}
			for _, c := range set {
				rep.addUnplaced(c, sess.Label, st.Half())
			}
			g.log.Warn("session unplaced",
				zap.String("course", course.Code),
				zap.String("branch", course.Branch),
				zap.String("section", course.Section),
				zap.String("session", sess.Label),
				zap.String("half", st.Half()))
		}
	}
	return entries
}

// placeSessionSet finds the first day and slot combination where every
// course of the set has its faculty and cohort free and one common room
// is free, skipping days any member already uses. Rooms are scanned in
// a per-session random order.
func (g *Generator) placeSessionSet(set []*model.Course, sess session,
	rooms []*model.Room, st *State, entries *[]*model.TimetableEntry) bool {

	shuffled := g.shuffledRooms(rooms)
	for _, day := range Days {
		if dayUsedByAny(set, day, st) {
			continue
		}
		for _, combo := range g.combinations(sess.Minutes) {
			if !setFits(set, day, combo, st) {
				continue
			}
			room := findFreeRoom(shuffled, day, combo, st)
			if room == nil {
				continue
			}
			shared := len(set) > 1
			for _, c := range set {
				g.commitSession(c, sess, day, combo, room, shared, crossListNote(c, set), st, entries)
			}
			return true
		}
	}
	return false
}

// scheduleLabs places one 120-minute block per lab course into a
// lab-typed room, falling back to the whole pool when no room is typed
// "lab".
func (g *Generator) scheduleLabs(labs []*model.Course, rooms []*model.Room,
	st *State, entries []*model.TimetableEntry, rep *Report) []*model.TimetableEntry {

	pref := labRoomsOf(rooms)
	labSession := session{Label: "Lab", Minutes: LabMinutes}
	for _, course := range labs {
		if st.Assigned(course) {
			continue
		}
		st.MarkAssigned(course)
		rep.TotalSessions++

		placed := false
		shuffled := g.shuffledRooms(pref)
		for _, day := range Days {
			if st.DayUsed(course, day) {
				continue
			}
			for _, combo := range g.combinations(LabMinutes) {
				if !st.CohortFree(course.Cohort(), day, combo.Slots) ||
					!st.FacultyFree(course.Faculty, day, combo.Slots) {
					continue
				}
				room := findFreeRoom(shuffled, day, combo, st)
				if room == nil {
					continue
				}
				g.commitSession(course, labSession, day, combo, room, false, "", st, &entries)
				placed = true
				break
			}
			if placed {
				break
			}
		}
		if placed {
			rep.PlacedSessions++
		} else {
			rep.addUnplaced(course, labSession.Label, st.Half())
			g.log.Warn("lab unplaced",
				zap.String("course", course.Code),
				zap.String("branch", course.Branch),
				zap.String("half", st.Half()))
		}
	}
	return entries
}

func dayUsedByAny(set []*model.Course, day string, st *State) bool {
	for _, c := range set {
		if st.DayUsed(c, day) {
			return true
		}
	}
	return false
}

func setFits(set []*model.Course, day string, combo SlotCombination, st *State) bool {
	for _, c := range set {
		if !st.CohortFree(c.Cohort(), day, combo.Slots) ||
			!st.FacultyFree(c.Faculty, day, combo.Slots) {
			return false
		}
	}
	return true
}

// crossListNote annotates a combined session with the counterpart's
// cohort. Empty for unpartnered courses.
func crossListNote(c *model.Course, set []*model.Course) string {
	for _, other := range set {
		if other != c {
			return "Shared with " + other.Branch + "-" + other.Section
		}
	}
	return ""
}

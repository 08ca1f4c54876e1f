package scheduler

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/acadgrid/timetable/pkg/model"
)

// electiveGroup is the synchronization bundle key. Basket is -1 when
// grouping by year only.
type electiveGroup struct {
	Year   int
	Basket int
}

func (g *Generator) electiveKey(c *model.Course) electiveGroup {
	if g.cfg.Grouping == GroupByYearBasket {
		return electiveGroup{Year: c.Year, Basket: c.Basket}
	}
	return electiveGroup{Year: c.Year, Basket: -1}
}

// scheduleElectives places every elective so that, within each group,
// equivalent sessions (Lecture 1, Lecture 2, Tutorial) of all electives
// land on one common day and slot run, each elective in a distinct
// room. Students of the group can then pick any elective without a
// clash. A bounded randomized search looks for a day/combination that
// fits the whole group at once; when the attempt budget runs out, each
// leftover elective is placed alone, which breaks synchronization for
// that session but keeps coverage.
func (g *Generator) scheduleElectives(electives []*model.Course, rooms []*model.Room,
	st *State, entries []*model.TimetableEntry, rep *Report) []*model.TimetableEntry {

	groups := make(map[electiveGroup][]*model.Course)
	var order []electiveGroup
	for _, c := range electives {
		if c.Branch == "" || c.Year == 0 {
			continue
		}
		key := g.electiveKey(c)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], c)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].Year != order[j].Year {
			return order[i].Year < order[j].Year
		}
		return order[i].Basket < order[j].Basket
	})

	pref := classroomsOf(rooms)
	for _, key := range order {
		group := groups[key]
		for _, sess := range lectureSessions {
			rep.TotalSessions += len(group)
			rep.ElectiveSessions += len(group)

			combos := g.combinations(sess.Minutes)
			if len(combos) == 0 {
				for _, c := range group {
					rep.addUnplaced(c, sess.Label, st.Half())
				}
				g.log.Warn("no slot combinations for elective session",
					zap.String("session", sess.Label), zap.Int("minutes", sess.Minutes))
				continue
			}

			if g.placeSynchronized(group, key, sess, combos, pref, st, &entries) {
				rep.PlacedSessions += len(group)
				rep.ElectivePlaced += len(group)
				continue
			}

			g.log.Warn("elective synchronization failed, placing individually",
				zap.Int("year", key.Year),
				zap.Int("basket", key.Basket),
				zap.String("session", sess.Label))
			for _, c := range group {
				if g.placeElectiveAlone(c, sess, combos, pref, st, &entries) {
					rep.PlacedSessions++
					rep.ElectivePlaced++
				} else {
					rep.addUnplaced(c, sess.Label, st.Half())
					g.log.Warn("elective session unplaced",
						zap.String("course", c.Code),
						zap.String("branch", c.Branch),
						zap.String("session", sess.Label))
				}
			}
		}
		for _, c := range group {
			st.MarkAssigned(c)
		}
	}
	return entries
}

// placeSynchronized samples random (day, combination) pairs until one
// fits every elective of the group simultaneously: each cohort and
// faculty member free on all slots, and a distinct free room per
// elective. Commits everything on success.
func (g *Generator) placeSynchronized(group []*model.Course, key electiveGroup, sess session,
	combos []SlotCombination, rooms []*model.Room, st *State, entries *[]*model.TimetableEntry) bool {

	for attempt := 0; attempt < g.cfg.ElectiveAttempts; attempt++ {
		day := Days[g.rng.Intn(len(Days))]
		combo := combos[g.rng.Intn(len(combos))]

		placement := make([]*model.Room, len(group))
		claimed := make(map[string]bool, len(group))
		claimedFaculty := make(map[string]bool, len(group))
		feasible := true
		for i, course := range group {
			// Cohort overlap inside the group is the point of the
			// synchronization; a faculty member can still only teach
			// one of the parallel sessions.
			if st.DayUsed(course, day) ||
				!st.CohortFree(course.Cohort(), day, combo.Slots) ||
				!st.FacultyFree(course.Faculty, day, combo.Slots) ||
				claimedFaculty[course.Faculty] {
				feasible = false
				break
			}
			claimedFaculty[course.Faculty] = true
			var room *model.Room
			for _, r := range rooms {
				if claimed[r.Number] {
					continue
				}
				if st.RoomFree(r.Number, day, combo.Slots) {
					room = r
					break
				}
			}
			if room == nil {
				feasible = false
				break
			}
			claimed[room.Number] = true
			placement[i] = room
		}
		if !feasible {
			continue
		}

		note := electiveNote(key)
		for i, course := range group {
			g.commitSession(course, sess, day, combo, placement[i], true, note, st, entries)
		}
		return true
	}
	return false
}

// placeElectiveAlone is the deterministic fallback: first conflict-free
// spot over combinations x days x rooms wins.
func (g *Generator) placeElectiveAlone(course *model.Course, sess session,
	combos []SlotCombination, rooms []*model.Room, st *State, entries *[]*model.TimetableEntry) bool {

	for _, combo := range combos {
		for _, day := range Days {
			if st.DayUsed(course, day) ||
				!st.CohortFree(course.Cohort(), day, combo.Slots) ||
				!st.FacultyFree(course.Faculty, day, combo.Slots) {
				continue
			}
			if room := findFreeRoom(rooms, day, combo, st); room != nil {
				g.commitSession(course, sess, day, combo, room, false, "", st, entries)
				return true
			}
		}
	}
	return false
}

func electiveNote(key electiveGroup) string {
	if key.Basket >= 0 {
		return fmt.Sprintf("Year %d basket %d electives", key.Year, key.Basket)
	}
	return fmt.Sprintf("Year %d electives", key.Year)
}

package scheduler

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/acadgrid/timetable/pkg/model"
)

// ErrNoRooms is returned when generation is attempted with an empty
// room list. No room-dependent session could ever succeed, so this is
// the one structural fault escalated as a hard error.
var ErrNoRooms = errors.New("no rooms available")

// Generator runs the full timetable pipeline. It is single-threaded;
// create one Generator per concurrent run.
type Generator struct {
	cfg    *Configuration
	log    *zap.Logger
	rng    *rand.Rand
	combos map[int][]SlotCombination
}

// New builds a Generator. A nil configuration gets defaults, a nil
// logger gets a nop logger.
func New(cfg *Configuration, logger *zap.Logger) *Generator {
	if cfg == nil {
		cfg = NewDefaultConfiguration()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg:    cfg,
		log:    logger,
		rng:    rand.New(rand.NewSource(seed)),
		combos: make(map[int][]SlotCombination),
	}
}

// combinations returns the cached slot combinations for a duration.
func (g *Generator) combinations(minutes int) []SlotCombination {
	if c, ok := g.combos[minutes]; ok {
		return c
	}
	c := CombinationsFor(minutes)
	g.combos[minutes] = c
	return c
}

// Report aggregates placement outcomes of one generation run. Partial
// timetables are an accepted terminal state; callers inspect the report
// rather than an error.
type Report struct {
	TotalSessions    int
	PlacedSessions   int
	ElectiveSessions int
	ElectivePlaced   int
	Unplaced         []string
}

func (r *Report) addUnplaced(c *model.Course, label, half string) {
	r.Unplaced = append(r.Unplaced,
		fmt.Sprintf("%s %s/%s year %d: %s (half %s)", c.Code, c.Branch, c.Section, c.Year, label, half))
}

// Coverage is the percentage of sessions placed, 100 for an empty run.
func (r *Report) Coverage() float64 {
	if r.TotalSessions == 0 {
		return 100
	}
	return float64(r.PlacedSessions) * 100 / float64(r.TotalSessions)
}

// ElectiveCoverage is the placed percentage among elective sessions.
func (r *Report) ElectiveCoverage() float64 {
	if r.ElectiveSessions == 0 {
		return 100
	}
	return float64(r.ElectivePlaced) * 100 / float64(r.ElectiveSessions)
}

// Generate schedules all courses across both semester halves and
// returns the full entry list in append order. Each half runs against
// fresh bookkeeping, so a first-half session never conflicts with a
// second-half one. Faculty records are carried for reporting only:
// availability preferences are not enforced during conflict search.
func (g *Generator) Generate(courses []*model.Course, faculty []*model.Faculty, rooms []*model.Room) ([]*model.TimetableEntry, *Report, error) {
	if len(rooms) == 0 {
		return nil, nil, ErrNoRooms
	}

	g.log.Info("generation started",
		zap.Int("courses", len(courses)),
		zap.Int("faculty", len(faculty)),
		zap.Int("rooms", len(rooms)))

	report := &Report{}
	var entries []*model.TimetableEntry

	firstHalf, secondHalf := partitionHalves(courses)
	runs := []struct {
		half    string
		courses []*model.Course
	}{
		{model.HalfFirst, firstHalf},
		{model.HalfSecond, secondHalf},
	}

	for _, run := range runs {
		if len(run.courses) == 0 {
			continue
		}
		st := NewState(run.half)
		valid := FilterSectioned(run.courses)
		electives, regular := splitElectives(valid)
		entries = g.scheduleElectives(electives, rooms, st, entries, report)
		entries = g.scheduleGroups(regular, rooms, st, entries, report)
		g.log.Info("half scheduled",
			zap.String("half", run.half),
			zap.Int("courses", len(valid)),
			zap.Int("entries", len(entries)))
	}

	g.log.Info("generation finished",
		zap.Int("sessions", report.TotalSessions),
		zap.Int("placed", report.PlacedSessions),
		zap.Float64("coverage", report.Coverage()),
		zap.Float64("electiveCoverage", report.ElectiveCoverage()))

	return entries, report, nil
}

// partitionHalves splits courses into the first-half and second-half
// working sets. Courses marked for both halves join each set and are
// scheduled twice, independently.
func partitionHalves(courses []*model.Course) (first, second []*model.Course) {
	for _, c := range courses {
		switch c.SemesterHalf {
		case model.HalfFirst:
			first = append(first, c)
		case model.HalfSecond:
			second = append(second, c)
		default:
			first = append(first, c)
			second = append(second, c)
		}
	}
	return first, second
}

func splitElectives(courses []*model.Course) (electives, regular []*model.Course) {
	for _, c := range courses {
		if c.IsElective {
			electives = append(electives, c)
		} else {
			regular = append(regular, c)
		}
	}
	return electives, regular
}

// classroomsOf prefers classroom-typed rooms, falling back to the full
// pool when none are typed "class".
func classroomsOf(rooms []*model.Room) []*model.Room {
	var classrooms []*model.Room
	for _, r := range rooms {
		if r.IsClassroom() {
			classrooms = append(classrooms, r)
		}
	}
	if len(classrooms) == 0 {
		return rooms
	}
	return classrooms
}

// labRoomsOf prefers lab-typed rooms, falling back to the full pool.
func labRoomsOf(rooms []*model.Room) []*model.Room {
	var labs []*model.Room
	for _, r := range rooms {
		if r.IsLab() {
			labs = append(labs, r)
		}
	}
	if len(labs) == 0 {
		return rooms
	}
	return labs
}

// shuffledRooms returns a randomly ordered copy of the pool so room
// choice varies between sessions while the scan stays exhaustive.
func (g *Generator) shuffledRooms(rooms []*model.Room) []*model.Room {
	shuffled := make([]*model.Room, len(rooms))
	copy(shuffled, rooms)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// findFreeRoom returns the first room of the pool free across all slots
// of the combination, or nil.
func findFreeRoom(rooms []*model.Room, day string, combo SlotCombination, st *State) *model.Room {
	for _, r := range rooms {
		if st.RoomFree(r.Number, day, combo.Slots) {
			return r
		}
	}
	return nil
}

// commitSession appends one entry per slot of the combination and marks
// the faculty, room and cohort busy maps. Sessions are never undone.
func (g *Generator) commitSession(course *model.Course, sess session, day string, combo SlotCombination,
	room *model.Room, shared bool, sharedWith string, st *State, entries *[]*model.TimetableEntry) {
	for i, slot := range combo.Slots {
		*entries = append(*entries, &model.TimetableEntry{
			Day:          day,
			TimeSlot:     slot,
			Course:       fmt.Sprintf("%s - %s (%d/%d)", course.Name, sess.Label, i+1, len(combo.Slots)),
			Faculty:      course.Faculty,
			Room:         room.Number,
			Type:         course.Type,
			Branch:       course.Branch,
			Section:      course.Section,
			Year:         course.Year,
			SemesterHalf: st.Half(),
			IsShared:     shared,
			SharedWith:   sharedWith,
		})
	}
	st.Occupy(course.Faculty, room.Number, []model.Cohort{course.Cohort()}, day, combo.Slots)
	st.MarkDayUsed(course, day)
}

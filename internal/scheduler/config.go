package scheduler

// GroupingStrategy selects the key used to bundle electives for
// synchronized placement.
type GroupingStrategy int

const (
	// GroupByYear synchronizes all electives of a cohort year.
	GroupByYear GroupingStrategy = iota
	// GroupByYearBasket synchronizes per (year, basket) bundle.
	GroupByYearBasket
)

// Configuration holds the tunables of one generation run.
type Configuration struct {
	// ElectiveAttempts caps the randomized search for a day/slot
	// combination that fits every elective of a group simultaneously.
	ElectiveAttempts int
	// Seed initializes the pseudo-random source. Zero means derive
	// from the wall clock.
	Seed int64
	// Grouping picks the elective synchronization bundle key.
	Grouping GroupingStrategy
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		ElectiveAttempts: 3000,
		Seed:             0,
		Grouping:         GroupByYear,
	}
}

// Session lengths in minutes. Every non-lab course gets two lectures
// and one tutorial per week; every lab course gets one lab block.
const (
	LectureMinutes  = 90
	TutorialMinutes = 60
	LabMinutes      = 120
)

// session is one weekly meeting of a course.
type session struct {
	Label   string
	Minutes int
}

// lectureSessions are scheduled for every non-lab course, in order.
var lectureSessions = []session{
	{Label: "Lecture 1", Minutes: LectureMinutes},
	{Label: "Lecture 2", Minutes: LectureMinutes},
	{Label: "Tutorial", Minutes: TutorialMinutes},
}

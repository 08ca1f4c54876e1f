package model

// TimetableEntry is one placed (course session x slot) cell of the
// generated timetable. Entries are append-only: the scheduler never
// mutates one after emitting it.
type TimetableEntry struct {
	Day          string `csv:"Day"`
	TimeSlot     string `csv:"Time_Slot"`
	Course       string `csv:"Course"`
	Faculty      string `csv:"Faculty"`
	Room         string `csv:"Room"`
	Type         string `csv:"Type"`
	Branch       string `csv:"Branch"`
	Section      string `csv:"Section"`
	Year         int    `csv:"Year"`
	SemesterHalf string `csv:"Semester_Half"`
	IsShared     bool   `csv:"Is_Shared"`
	SharedWith   string `csv:"Shared_With"`
}

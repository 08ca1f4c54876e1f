package model

// Course environment / session kind labels.
const (
	TypeLecture = "Lecture"
	TypeLab     = "Lab"
)

// Semester half markers. "0" means the course runs both halves.
const (
	HalfBoth   = "0"
	HalfFirst  = "1"
	HalfSecond = "2"
)

type Course struct {
	Code         string `csv:"Course_Code"`
	Name         string `csv:"Course_Name"`
	Type         string `csv:"Type"`
	Branch       string `csv:"Branch"`
	Section      string `csv:"Section"`
	Year         int    `csv:"Year"`
	Credits      int    `csv:"Credits"`
	Duration     int    `csv:"Duration"`
	SemesterHalf string `csv:"Semester_Half"`
	Basket       int    `csv:"Basket"`
	IsElective   bool   `csv:"Is_Elective"`
	SharedWith   string `csv:"Shared_With"`
	Faculty      string `csv:"Faculty"`
}

// CourseID identifies one course offering within a semester-half run.
// Code alone is not enough: the same code may be offered per branch and
// per section, and again in each half.
type CourseID struct {
	Code    string
	Branch  string
	Section string
	Half    string
}

// ID returns the identity key for c within the given half.
func (c *Course) ID(half string) CourseID {
	return CourseID{Code: c.Code, Branch: c.Branch, Section: c.Section, Half: half}
}

// Cohort is a (branch, year, section) student group sharing one schedule.
type Cohort struct {
	Branch  string
	Year    int
	Section string
}

func (c *Course) Cohort() Cohort {
	return Cohort{Branch: c.Branch, Year: c.Year, Section: c.Section}
}

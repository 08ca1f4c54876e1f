package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadgrid/timetable/pkg/model"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCoursesAppliesDefaults(t *testing.T) {
	path := writeTemp(t, "courses.csv",
		"Course_Code,Course_Name,Type,Branch,Section,Year,Credits,Duration,Semester_Half,Basket,Is_Elective,Shared_With,Faculty\n"+
			"CS201,Algorithms,,CSE,,2,,,,,,,Prof A\n"+
			"EL301,Compilers,Lecture,CSE,A,3,4,2,1,2,true,ECE,Prof B\n")

	courses, err := LoadCourses(path, ',')
	require.NoError(t, err)
	require.Len(t, courses, 2)

	sparse := courses[0]
	assert.Equal(t, "ALL", sparse.Section)
	assert.Equal(t, model.TypeLecture, sparse.Type)
	assert.Equal(t, 3, sparse.Credits)
	assert.Equal(t, 1, sparse.Duration)
	assert.Equal(t, model.HalfBoth, sparse.SemesterHalf)
	assert.False(t, sparse.IsElective)
	assert.Empty(t, sparse.SharedWith)

	full := courses[1]
	assert.Equal(t, "A", full.Section)
	assert.Equal(t, 4, full.Credits)
	assert.Equal(t, model.HalfFirst, full.SemesterHalf)
	assert.Equal(t, 2, full.Basket)
	assert.True(t, full.IsElective)
	assert.Equal(t, "ECE", full.SharedWith)
}

func TestLoadCoursesMissingFile(t *testing.T) {
	_, err := LoadCourses(filepath.Join(t.TempDir(), "nope.csv"), ',')
	assert.Error(t, err)
}

func TestLoadRoomsAndFaculty(t *testing.T) {
	roomsPath := writeTemp(t, "rooms.csv",
		"Room_Number,Capacity,Type\n101,60,Classroom\nL1,30,Computer Lab\n")
	rooms, err := LoadRooms(roomsPath, ',')
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.True(t, rooms[0].IsClassroom())
	assert.True(t, rooms[1].IsLab())

	facultyPath := writeTemp(t, "faculty.csv",
		"Name,Department,Availability\nProf A,CSE,Monday AM\n")
	faculty, err := LoadFaculty(facultyPath, ',')
	require.NoError(t, err)
	require.Len(t, faculty, 1)
	assert.Equal(t, "Prof A", faculty[0].Name)
}

func TestExportTimetableStringSortsEntries(t *testing.T) {
	entries := []*model.TimetableEntry{
		{Day: "Tuesday", TimeSlot: "09:00 - 10:30", Course: "B - Lecture 2 (1/1)", Faculty: "Prof A", Room: "101", Branch: "CSE", Section: "ALL", Year: 2, SemesterHalf: "1"},
		{Day: "Monday", TimeSlot: "11:30 - 13:00", Course: "A - Lecture 1 (1/1)", Faculty: "Prof A", Room: "101", Branch: "CSE", Section: "ALL", Year: 2, SemesterHalf: "1"},
		{Day: "Monday", TimeSlot: "09:00 - 10:30", Course: "C - Lecture 1 (1/1)", Faculty: "Prof B", Room: "102", Branch: "CSE", Section: "ALL", Year: 2, SemesterHalf: "1"},
	}
	out, err := ExportTimetableString(entries)
	require.NoError(t, err)

	first := strings.Index(out, "C - Lecture 1")
	second := strings.Index(out, "A - Lecture 1")
	third := strings.Index(out, "B - Lecture 2")
	assert.True(t, first < second && second < third, "rows ordered by day then slot start:\n%s", out)
}

func TestExportTimetableWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	entries := []*model.TimetableEntry{
		{Day: "Monday", TimeSlot: "09:00 - 10:30", Course: "A - Lecture 1 (1/1)", Faculty: "Prof A", Room: "101", Branch: "CSE", Section: "ALL", Year: 2, SemesterHalf: "1"},
	}
	require.NoError(t, ExportTimetable(entries, path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "A - Lecture 1 (1/1)")
}


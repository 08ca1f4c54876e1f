// Package csvio reads course, faculty and room records from CSV files
// and writes generated timetables back out. It owns every file-format
// concern so the scheduler only ever sees plain record lists.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/acadgrid/timetable/pkg/model"
)

func setDelimiter(delim rune) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})
}

// LoadCourses reads and parses the given csv file for course data.
// Missing optional fields get the documented defaults so sparse sheets
// still load.
func LoadCourses(path string, delim rune) ([]*model.Course, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open courses file: %w", err)
	}
	defer f.Close()

	var courses []*model.Course
	if err := gocsv.UnmarshalFile(f, &courses); err != nil {
		return nil, fmt.Errorf("parse courses file %s: %w", path, err)
	}
	for _, c := range courses {
		applyCourseDefaults(c)
	}
	return courses, nil
}

// applyCourseDefaults substitutes defaults for absent optional fields.
func applyCourseDefaults(c *model.Course) {
	if c.Section == "" {
		c.Section = "ALL"
	}
	if c.Duration == 0 {
		c.Duration = 1
	}
	if c.Type == "" {
		c.Type = model.TypeLecture
	}
	if c.Credits == 0 {
		c.Credits = 3
	}
	if c.SemesterHalf == "" {
		c.SemesterHalf = model.HalfBoth
	}
}

// LoadFaculty reads and parses the given csv file for faculty data.
func LoadFaculty(path string, delim rune) ([]*model.Faculty, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open faculty file: %w", err)
	}
	defer f.Close()

	var faculty []*model.Faculty
	if err := gocsv.UnmarshalFile(f, &faculty); err != nil {
		return nil, fmt.Errorf("parse faculty file %s: %w", path, err)
	}
	return faculty, nil
}

// LoadRooms reads and parses the given csv file for room data.
func LoadRooms(path string, delim rune) ([]*model.Room, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rooms file: %w", err)
	}
	defer f.Close()

	var rooms []*model.Room
	if err := gocsv.UnmarshalFile(f, &rooms); err != nil {
		return nil, fmt.Errorf("parse rooms file %s: %w", path, err)
	}
	return rooms, nil
}

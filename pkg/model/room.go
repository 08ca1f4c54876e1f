package model

import "strings"

type Room struct {
	Number   string `csv:"Room_Number"`
	Capacity int    `csv:"Capacity"`
	Type     string `csv:"Type"`
}

// IsClassroom reports whether the room is typed as a regular classroom.
// Matching is by substring so "Classroom", "class room" and "CLASS-A"
// all qualify.
func (r *Room) IsClassroom() bool {
	return strings.Contains(strings.ToLower(r.Type), "class")
}

// IsLab reports whether the room is typed as a laboratory.
func (r *Room) IsLab() bool {
	return strings.Contains(strings.ToLower(r.Type), "lab")
}

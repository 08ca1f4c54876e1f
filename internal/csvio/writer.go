package csvio

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/acadgrid/timetable/internal/scheduler"
	"github.com/acadgrid/timetable/pkg/model"
)

// ExportTimetable writes the generated entries to the CSV file at path,
// sorted by the conventional display key.
func ExportTimetable(entries []*model.TimetableEntry, path string) error {
	sorted := sortedEntries(entries)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&sorted, out); err != nil {
		return fmt.Errorf("write export file %s: %w", path, err)
	}
	return nil
}

// ExportTimetableString renders the entries as CSV text.
func ExportTimetableString(entries []*model.TimetableEntry) (string, error) {
	sorted := sortedEntries(entries)
	str, err := gocsv.MarshalString(&sorted)
	if err != nil {
		return "", fmt.Errorf("marshal timetable: %w", err)
	}
	return str, nil
}

// PrintTimetable prints the weekly timetable grouped per cohort.
func PrintTimetable(entries []*model.TimetableEntry) {
	sorted := sortedEntries(entries)
	seen := make(map[string]bool, 10)
	for _, e := range sorted {
		cohort := fmt.Sprintf("%s / Year %d / %s", e.Branch, e.Year, e.Section)
		if !seen[cohort] {
			seen[cohort] = true
			pad := 40 - len(cohort)
			if pad < 2 {
				pad = 2
			}
			fmt.Printf("\n%s %s %s\n", strings.Repeat("-", pad/2), cohort, strings.Repeat("-", pad-pad/2))
		}
		shared := ""
		if e.IsShared {
			shared = " [" + e.SharedWith + "]"
		}
		fmt.Printf("H%s %-10s %-14s %-35s %-8s %s%s\n",
			e.SemesterHalf, e.Day, e.TimeSlot, e.Course, e.Room, e.Faculty, shared)
	}
	fmt.Printf("Printed rows: %d\n", len(sorted))
}

// sortedEntries copies and orders entries by branch, year, section,
// half, day and slot start. The engine itself guarantees only append
// order.
func sortedEntries(entries []*model.TimetableEntry) []*model.TimetableEntry {
	sorted := make([]*model.TimetableEntry, len(entries))
	copy(sorted, entries)
	slices.SortStableFunc(sorted, func(a, b *model.TimetableEntry) int {
		if c := strings.Compare(a.Branch, b.Branch); c != 0 {
			return c
		}
		if c := a.Year - b.Year; c != 0 {
			return c
		}
		if c := strings.Compare(a.Section, b.Section); c != 0 {
			return c
		}
		if c := strings.Compare(a.SemesterHalf, b.SemesterHalf); c != 0 {
			return c
		}
		if c := dayIndex(a.Day) - dayIndex(b.Day); c != 0 {
			return c
		}
		return slotStart(a.TimeSlot) - slotStart(b.TimeSlot)
	})
	return sorted
}

func dayIndex(day string) int {
	for i, d := range scheduler.Days {
		if d == day {
			return i
		}
	}
	return len(scheduler.Days)
}

func slotStart(slot string) int {
	parts := strings.Split(slot, " - ")
	if len(parts) != 2 {
		return 0
	}
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[0]), "%d:%d", &h, &m); err != nil {
		return 0
	}
	return h*60 + m
}

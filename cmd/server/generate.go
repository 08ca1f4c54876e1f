package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/acadgrid/timetable/internal/csvio"
	"github.com/acadgrid/timetable/internal/scheduler"
)

// createAndExportTimetable runs one full generation for an uploaded
// record set and drops the CSV plus a coverage report next to it.
// Runs in its own goroutine with its own Generator: schedule state is
// never shared between runs.
func createAndExportTimetable(coursesPath, facultyPath, roomsPath, exportPath string) {
	courses, err := csvio.LoadCourses(coursesPath, ',')
	if err != nil {
		logger.Error("loading uploaded courses failed", zap.Error(err))
		return
	}
	faculty, err := csvio.LoadFaculty(facultyPath, ',')
	if err != nil {
		logger.Error("loading uploaded faculty failed", zap.Error(err))
		return
	}
	rooms, err := csvio.LoadRooms(roomsPath, ',')
	if err != nil {
		logger.Error("loading uploaded rooms failed", zap.Error(err))
		return
	}

	engineCfg := scheduler.NewDefaultConfiguration()
	engineCfg.ElectiveAttempts = cfg.ElectiveAttempts
	if cfg.GroupByBasket {
		engineCfg.Grouping = scheduler.GroupByYearBasket
	}

	entries, report, err := scheduler.New(engineCfg, logger).Generate(courses, faculty, rooms)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		return
	}

	if err := csvio.ExportTimetable(entries, exportPath); err != nil {
		logger.Error("export failed", zap.Error(err))
		return
	}

	_, checkMsg := scheduler.Validate(entries)
	var sb strings.Builder
	sb.WriteString(checkMsg)
	fmt.Fprintf(&sb, "Sessions placed: %d/%d (%.1f%%)\n",
		report.PlacedSessions, report.TotalSessions, report.Coverage())
	fmt.Fprintf(&sb, "Elective coverage: %.1f%%\n", report.ElectiveCoverage())
	for _, u := range report.Unplaced {
		fmt.Fprintf(&sb, "unplaced: %s\n", u)
	}
	reportPath := strings.TrimSuffix(exportPath, "-timetable.csv") + "-report.txt"
	if err := os.WriteFile(reportPath, []byte(sb.String()), 0o644); err != nil {
		logger.Error("writing report failed", zap.Error(err))
	}
}

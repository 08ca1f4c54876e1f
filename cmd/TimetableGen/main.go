package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/acadgrid/timetable/internal/config"
	"github.com/acadgrid/timetable/internal/csvio"
	"github.com/acadgrid/timetable/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := cfg.Logger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	courses, err := csvio.LoadCourses(cfg.CoursesFile, ',')
	if err != nil {
		logger.Fatal("loading courses failed", zap.Error(err))
	}
	faculty, err := csvio.LoadFaculty(cfg.FacultyFile, ',')
	if err != nil {
		logger.Fatal("loading faculty failed", zap.Error(err))
	}
	rooms, err := csvio.LoadRooms(cfg.RoomsFile, ',')
	if err != nil {
		logger.Fatal("loading rooms failed", zap.Error(err))
	}

	engineCfg := scheduler.NewDefaultConfiguration()
	engineCfg.ElectiveAttempts = cfg.ElectiveAttempts
	engineCfg.Seed = cfg.Seed
	if cfg.GroupByBasket {
		engineCfg.Grouping = scheduler.GroupByYearBasket
	}

	start := time.Now()
	entries, report, err := scheduler.New(engineCfg, logger).Generate(courses, faculty, rooms)
	if err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
	elapsed := time.Since(start)

	valid, msg := scheduler.Validate(entries)
	fmt.Println(msg)
	if !valid {
		fmt.Println("Invalid timetable")
	} else {
		fmt.Println("Passed all checks")
	}

	if err := csvio.ExportTimetable(entries, cfg.ExportFile); err != nil {
		logger.Fatal("export failed", zap.Error(err))
	}

	fmt.Printf("Sessions placed: %d/%d (%.1f%%)\n", report.PlacedSessions, report.TotalSessions, report.Coverage())
	fmt.Printf("Elective coverage: %.1f%%\n", report.ElectiveCoverage())
	for _, u := range report.Unplaced {
		fmt.Printf("  unplaced: %s\n", u)
	}
	fmt.Printf("Timer: %f ms\n", float64(elapsed.Nanoseconds())/1000000.0)
}

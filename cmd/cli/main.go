package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/acadgrid/timetable/internal/csvio"
	"github.com/acadgrid/timetable/internal/scheduler"
)

var (
	coursesFile   string
	facultyFile   string
	roomsFile     string
	exportFile    string
	seed          int64
	attempts      int
	groupByBasket bool
	verbose       bool
)

func main() {
	root := &cobra.Command{
		Use:   "timetable",
		Short: "Weekly class timetable generator",
		Long: "Allocates lectures, tutorials and labs to rooms and time slots " +
			"without double-booking faculty, rooms or student cohorts, keeping " +
			"elective courses of a cohort year synchronized across branches.",
	}

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a timetable from course, faculty and room CSV files",
		RunE:  runGenerate,
	}
	generate.Flags().StringVar(&coursesFile, "courses", "./res/courses.csv", "courses CSV file")
	generate.Flags().StringVar(&facultyFile, "faculty", "./res/faculty.csv", "faculty CSV file")
	generate.Flags().StringVar(&roomsFile, "rooms", "./res/rooms.csv", "rooms CSV file")
	generate.Flags().StringVarP(&exportFile, "out", "o", "timetable.csv", "output CSV file")
	generate.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	generate.Flags().IntVar(&attempts, "attempts", 3000, "elective synchronization attempt cap")
	generate.Flags().BoolVar(&groupByBasket, "basket", false, "synchronize electives per (year, basket) instead of per year")
	generate.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose engine logging")

	slots := &cobra.Command{
		Use:   "slots [minutes]",
		Short: "Print the slot combinations available for a session length",
		Args:  cobra.ExactArgs(1),
		RunE:  runSlots,
	}

	root.AddCommand(generate, slots)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	defer logger.Sync()

	courses, err := csvio.LoadCourses(coursesFile, ',')
	if err != nil {
		return err
	}
	faculty, err := csvio.LoadFaculty(facultyFile, ',')
	if err != nil {
		return err
	}
	rooms, err := csvio.LoadRooms(roomsFile, ',')
	if err != nil {
		return err
	}

	cfg := scheduler.NewDefaultConfiguration()
	cfg.Seed = seed
	cfg.ElectiveAttempts = attempts
	if groupByBasket {
		cfg.Grouping = scheduler.GroupByYearBasket
	}

	entries, report, err := scheduler.New(cfg, logger).Generate(courses, faculty, rooms)
	if err != nil {
		return err
	}

	valid, msg := scheduler.Validate(entries)
	fmt.Print(msg)
	if !valid {
		fmt.Println("Generated timetable has collisions")
	}

	if err := csvio.ExportTimetable(entries, exportFile); err != nil {
		return err
	}
	csvio.PrintTimetable(entries)
	fmt.Printf("\nSessions placed: %d/%d (%.1f%%), elective coverage %.1f%%\n",
		report.PlacedSessions, report.TotalSessions, report.Coverage(), report.ElectiveCoverage())
	for _, u := range report.Unplaced {
		fmt.Printf("  unplaced: %s\n", u)
	}
	return nil
}

func runSlots(cmd *cobra.Command, args []string) error {
	var minutes int
	if _, err := fmt.Sscanf(args[0], "%d", &minutes); err != nil {
		return fmt.Errorf("invalid duration %q", args[0])
	}
	combos := scheduler.CombinationsFor(minutes)
	if len(combos) == 0 {
		fmt.Printf("No slot combinations for %d minutes\n", minutes)
		return nil
	}
	for _, c := range combos {
		fmt.Printf("%-10s %3d min  %v\n", c.Block, c.TotalMinutes, c.Slots)
	}
	return nil
}

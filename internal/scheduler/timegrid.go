package scheduler

import (
	"strconv"
	"strings"
)

// Days of the teaching week, in display order.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// ContinuousBlock is a maximal run of slots with no break inside it.
// Multi-slot sessions may not cross a break, so slot combinations are
// always drawn from a single block.
type ContinuousBlock struct {
	Name  string
	Slots []string
}

// ContinuousBlocks returns the fixed partition of the teaching day.
// The lunch break separates the morning and afternoon blocks.
func ContinuousBlocks() []ContinuousBlock {
	return []ContinuousBlock{
		{
			Name:  "Morning",
			Slots: []string{"09:00 - 10:30", "10:30 - 11:30", "11:30 - 13:00"},
		},
		{
			Name:  "Afternoon",
			Slots: []string{"14:00 - 15:00", "15:00 - 16:00", "16:00 - 17:00", "17:00 - 18:00"},
		},
	}
}

// SlotDuration parses a "HH:MM - HH:MM" label and returns its length in
// minutes. Unparseable labels yield 0.
func SlotDuration(slot string) int {
	parts := strings.Split(slot, " - ")
	if len(parts) != 2 {
		return 0
	}
	return minutesOfDay(parts[1]) - minutesOfDay(parts[0])
}

func minutesOfDay(hhmm string) int {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return h*60 + m
}

// SlotCombination is a contiguous run of slots within one continuous
// block whose summed duration approximates a session length. Computed
// once per duration and reused read-only for the whole run.
type SlotCombination struct {
	Slots        []string
	TotalMinutes int
	Block        string
}

// combinationTolerance is how far (in minutes) a run's total may deviate
// from the requested session length and still qualify.
const combinationTolerance = 5

// CombinationsFor enumerates, for every continuous block and starting
// slot, the contiguous run whose total duration lands within tolerance
// of target. The scan is a single left-to-right extension per starting
// index: once the accumulated duration overshoots target+tolerance the
// run is abandoned and no combination is recorded for that index. Some
// block/duration pairs therefore produce nothing, which callers must
// treat as "no slots available here".
func CombinationsFor(target int) []SlotCombination {
	var combos []SlotCombination
	for _, block := range ContinuousBlocks() {
		for start := range block.Slots {
			total := 0
			for end := start; end < len(block.Slots); end++ {
				total += SlotDuration(block.Slots[end])
				if total >= target-combinationTolerance && total <= target+combinationTolerance {
					run := make([]string, end-start+1)
					copy(run, block.Slots[start:end+1])
					combos = append(combos, SlotCombination{
						Slots:        run,
						TotalMinutes: total,
						Block:        block.Name,
					})
					break
				}
				if total > target+combinationTolerance {
					break
				}
			}
		}
	}
	return combos
}

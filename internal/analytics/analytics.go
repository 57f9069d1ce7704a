// Package analytics computes derived metrics over the workout history.
// Every function is pure: history in, numbers out, no clock access (callers
// pass now) and no mutation of the input.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/florentv/irontrack/internal/models"
)

// StreakResult describes the consecutive-day training streak.
// A broken streak (last workout more than a day ago) reports zero for both
// counters and only keeps LastDate as a record of the last workout.
type StreakResult struct {
	Current  int
	Longest  int
	LastDate *time.Time
}

// dayOf normalizes a timestamp to local midnight.
func dayOf(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// Streak walks the distinct workout days of the completed history, most
// recent first. A gap of exactly one day extends a run; anything else closes
// it. Current is the run anchored at the most recent day and only counts
// when that day is today or yesterday relative to now.
func Streak(history []models.WorkoutEntry, now time.Time) StreakResult {
	var latest *models.WorkoutEntry
	daySet := make(map[time.Time]struct{})
	for i := range history {
		e := &history[i]
		if !e.Completed {
			continue
		}
		if latest == nil || e.Date.After(latest.Date) {
			latest = e
		}
		daySet[dayOf(e.Date)] = struct{}{}
	}
	if latest == nil {
		return StreakResult{}
	}

	lastDate := latest.Date
	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := dayOf(now)
	if daysBetween(days[0], today) > 1 {
		return StreakResult{LastDate: &lastDate}
	}

	current, longest := 0, 0
	run := 1
	for i := 1; i <= len(days); i++ {
		if i < len(days) && daysBetween(days[i], days[i-1]) == 1 {
			run++
			continue
		}
		if current == 0 {
			current = run // First run is anchored at the most recent day.
		}
		if run > longest {
			longest = run
		}
		run = 1
	}

	return StreakResult{Current: current, Longest: longest, LastDate: &lastDate}
}

// daysBetween counts calendar days from a to b, both at local midnight.
// Rounded so a DST-shortened or -lengthened day still counts as one day.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// TotalVolume sums weight x sets x reps over every log of every completed
// entry. Free-text sets/reps coerce to their leading integer, 0 on failure.
func TotalVolume(history []models.WorkoutEntry) float64 {
	var total float64
	for _, entry := range history {
		if !entry.Completed {
			continue
		}
		for _, ex := range entry.Exercises {
			total += ex.Weight * float64(ex.Sets.Int()) * float64(ex.Reps.Int())
		}
	}
	return total
}

// ExercisePoint is one data point of an exercise's weight progression.
type ExercisePoint struct {
	Date   time.Time          `json:"date"`
	Weight float64            `json:"weight"`
	Reps   models.IntOrString `json:"reps"`
	Sets   models.IntOrString `json:"sets"`
}

// ExerciseHistory projects the weight progression of one exercise, matched
// by id, oldest first. Only completed entries with a logged weight count.
func ExerciseHistory(history []models.WorkoutEntry, exerciseID string) []ExercisePoint {
	var points []ExercisePoint
	// History is stored most recent first; walk backwards for oldest first.
	for i := len(history) - 1; i >= 0; i-- {
		entry := history[i]
		if !entry.Completed {
			continue
		}
		for _, ex := range entry.Exercises {
			if ex.ExerciseID == exerciseID && ex.Weight > 0 {
				points = append(points, ExercisePoint{
					Date:   entry.Date,
					Weight: ex.Weight,
					Reps:   ex.Reps,
					Sets:   ex.Sets,
				})
				break
			}
		}
	}
	return points
}

// WeeklyStats aggregates the trailing seven days from now.
type WeeklyStats struct {
	Workouts int
	Volume   float64
}

func Weekly(history []models.WorkoutEntry, now time.Time) WeeklyStats {
	weekAgo := now.AddDate(0, 0, -7)
	var week []models.WorkoutEntry
	for _, entry := range history {
		if entry.Completed && !entry.Date.Before(weekAgo) {
			week = append(week, entry)
		}
	}
	return WeeklyStats{Workouts: len(week), Volume: TotalVolume(week)}
}

package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/florentv/irontrack/internal/models"
	"github.com/spf13/cobra"
)

// details is a flag to enable verbose workout details.
var details bool

// calendarCmd prints the calendar grid. Days with completed workouts are
// printed with a color based on the workout's session name, and a legend is
// printed below the calendar.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training days with a legend mapping colors to sessions",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		// Group the month's completed workouts by day and collect the
		// session names for the legend.
		st := newStore()
		workoutsByDay := make(map[int][]models.WorkoutEntry)
		sessionSet := make(map[string]bool)
		for _, entry := range st.History() {
			d := entry.Date.In(time.Local)
			if !entry.Completed || d.Year() != year || d.Month() != month {
				continue
			}
			day := d.Day()
			workoutsByDay[day] = append(workoutsByDay[day], entry)
			sessionSet[entry.SessionName] = true
		}

		// Define a fixed palette of colors.
		colorPalette := []color.Attribute{
			color.FgRed, color.FgGreen, color.FgYellow,
			color.FgBlue, color.FgMagenta, color.FgCyan,
		}
		sessionColors := make(map[string]func(a ...interface{}) string)
		i := 0
		for name := range sessionSet {
			sessionColors[name] = color.New(colorPalette[i%len(colorPalette)]).SprintFunc()
			i++
		}

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if entries, trained := workoutsByDay[day]; trained {
				if colFunc, ok := sessionColors[entries[0].SessionName]; ok {
					dayStr = colFunc(dayStr + "*")
				} else {
					dayStr = color.New(color.FgWhite).Sprint(dayStr + "*")
				}
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		for name, colFunc := range sessionColors {
			fmt.Printf("  %s: %s\n", colFunc("██"), name)
		}

		if details {
			fmt.Println("\nWorkout details:")
			var days []int
			for d := range workoutsByDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, entry := range workoutsByDay[day] {
					fmt.Printf("  %s at %s", entry.SessionName, entry.Date.Format("15:04"))
					if entry.Duration > 0 {
						fmt.Printf(" (%s)", (time.Duration(entry.Duration) * time.Second).String())
					}
					fmt.Println()
				}
			}
		}

		return nil
	},
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print additional workout details")
}

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show overall and weekly training statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		stats := st.UserStats()
		week := st.GetWeeklyStats()
		settings := st.Settings()

		fmt.Printf("Stats for %s\n\n", settings.UserName)
		fmt.Printf("Total workouts:  %d\n", stats.TotalWorkouts)
		fmt.Printf("Total volume:    %.0f kg\n", stats.TotalVolume)
		if stats.CurrentStreak > 0 {
			color.Green("Current streak:  %d day(s)", stats.CurrentStreak)
		} else if stats.LastWorkoutDate != nil {
			fmt.Printf("Current streak:  0 (last workout %s)\n", stats.LastWorkoutDate.Format("02 Jan 2006"))
		} else {
			fmt.Println("Current streak:  0")
		}
		fmt.Printf("Longest streak:  %d day(s)\n\n", stats.LongestStreak)

		fmt.Printf("This week: %d workout(s), %.0f kg\n", week.Workouts, week.Volume)
		return nil
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress <exercise-id>",
	Short: "Show the weight progression of one exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		points := st.GetExerciseHistory(args[0])
		if len(points) == 0 {
			fmt.Println("No logged weights for this exercise yet")
			return nil
		}

		for _, p := range points {
			fmt.Printf("%s  %6.1f kg  (%s x %s)\n", p.Date.Format("02 Jan 2006"), p.Weight, p.Sets.String(), p.Reps.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(progressCmd)
}

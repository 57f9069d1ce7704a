package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/florentv/irontrack/internal/draft"
	"github.com/spf13/cobra"
)

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Complete the current workout and write it to history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !draft.Exists() {
			return fmt.Errorf("No workout in progress")
		}

		entry, err := draft.Load()
		if err != nil {
			return fmt.Errorf("Failed to load workout draft: %w", err)
		}
		entry.Duration = int(time.Since(entry.Date).Seconds())

		st := newStore()
		newRecords, saved := st.CompleteWorkout(*entry)

		if err := draft.Clear(); err != nil {
			return fmt.Errorf("Failed to clear workout draft: %w", err)
		}

		fmt.Printf("✅ %q completed in %s\n", entry.SessionName, (time.Duration(entry.Duration) * time.Second).String())
		for _, name := range newRecords {
			color.Yellow("🏆 New record: %s", name)
		}
		stats := st.UserStats()
		fmt.Printf("Streak: %d day(s), total volume: %.0f kg\n", stats.CurrentStreak, stats.TotalVolume)
		if !saved {
			color.Red("⚠ The workout is recorded in memory but could not be persisted")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(finishCmd)
}

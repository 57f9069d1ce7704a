package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/florentv/irontrack/internal/draft"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current workout in progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !draft.Exists() {
			fmt.Println("No workout in progress")
			return nil
		}

		entry, err := draft.Load()
		if err != nil {
			return fmt.Errorf("Failed to load workout draft: %w", err)
		}

		elapsed := time.Since(entry.Date).Round(time.Second)
		fmt.Printf("%s — started %s ago\n\n", entry.SessionName, elapsed)

		done := 0
		for i, ex := range entry.Exercises {
			mark := "  "
			line := fmt.Sprintf("%d. %s (%s x %s)", i+1, ex.ExerciseName, ex.Sets.String(), ex.Reps.String())
			if ex.Weight > 0 {
				line += fmt.Sprintf(" @ %.1f kg", ex.Weight)
			}
			if ex.Completed {
				mark = color.GreenString("✓ ")
				done++
			}
			fmt.Println(mark + line)
		}
		fmt.Printf("\n%d/%d exercises completed\n", done, len(entry.Exercises))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

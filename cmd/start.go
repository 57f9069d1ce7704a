package cmd

import (
	"fmt"

	"github.com/florentv/irontrack/internal/draft"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start <session-id>",
	Short: "Start a workout from a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if draft.Exists() {
			return fmt.Errorf("A workout is already in progress: finish or cancel it first")
		}

		st := newStore()
		entry, err := st.StartWorkout(args[0])
		if err != nil {
			return fmt.Errorf("Failed to start workout: %w", err)
		}

		if err := draft.Save(entry); err != nil {
			return fmt.Errorf("Failed to save workout draft: %w", err)
		}

		fmt.Printf("✅ Started %q with %d exercises\n", entry.SessionName, len(entry.Exercises))
		for i, ex := range entry.Exercises {
			line := fmt.Sprintf("  %d. %s (%s x %s)", i+1, ex.ExerciseName, ex.Sets.String(), ex.Reps.String())
			if weight, ok := st.GetLastWeightForExercise(ex.ExerciseName); ok {
				line += fmt.Sprintf(" — last: %.1f kg", weight)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/florentv/irontrack/internal/draft"
	"github.com/spf13/cobra"
)

var (
	logWeight float64
	logDone   bool
)

var logCmd = &cobra.Command{
	Use:   "log <exercise-number>",
	Short: "Log the weight used for an exercise of the current workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !draft.Exists() {
			return fmt.Errorf("No workout in progress")
		}

		entry, err := draft.Load()
		if err != nil {
			return fmt.Errorf("Failed to load workout draft: %w", err)
		}

		idx, err := strconv.Atoi(args[0])
		if err != nil || idx < 1 || idx > len(entry.Exercises) {
			return fmt.Errorf("invalid exercise number: %s (1-%d)", args[0], len(entry.Exercises))
		}

		ex := &entry.Exercises[idx-1]
		if cmd.Flags().Changed("weight") {
			ex.Weight = logWeight
		}
		ex.Completed = logDone

		if err := draft.Save(entry); err != nil {
			return fmt.Errorf("Failed to save workout draft: %w", err)
		}

		st := newStore()
		fmt.Printf("✅ %s: %.1f kg\n", ex.ExerciseName, ex.Weight)
		if rec := st.GetPersonalRecord(ex.ExerciseName); rec != nil && ex.Weight > rec.Weight {
			color.Yellow("🏆 Beats your record of %.1f kg — finish the workout to make it official", rec.Weight)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().Float64VarP(&logWeight, "weight", "w", 0, "Weight used, in kg")
	logCmd.Flags().BoolVarP(&logDone, "done", "d", true, "Mark the exercise completed")
}

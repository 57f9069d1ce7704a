package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records [exercise-name]",
	Short: "Show personal records, or the record for one exercise",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()

		if len(args) == 1 {
			rec := st.GetPersonalRecord(args[0])
			if rec == nil {
				fmt.Printf("No record yet for %q\n", args[0])
				return nil
			}
			color.Yellow("🏆 %s: %.1f kg x %s (%s)", rec.ExerciseName, rec.Weight, rec.Reps.String(), rec.Date.Format("02 Jan 2006"))
			if weight, ok := st.GetLastWeightForExercise(rec.ExerciseName); ok {
				fmt.Printf("Last used: %.1f kg\n", weight)
			}
			return nil
		}

		records := st.PersonalRecords()
		if len(records) == 0 {
			fmt.Println("No records yet")
			return nil
		}
		sort.Slice(records, func(i, j int) bool {
			return records[i].ExerciseName < records[j].ExerciseName
		})
		for _, rec := range records {
			fmt.Printf("%-35s %6.1f kg x %-6s %s\n", rec.ExerciseName, rec.Weight, rec.Reps.String(), rec.Date.Format("02 Jan 2006"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)
}

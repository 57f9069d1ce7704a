package cmd

import (
	"fmt"

	"github.com/florentv/irontrack/internal/draft"
	"github.com/spf13/cobra"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Abandon the current workout without recording anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !draft.Exists() {
			return fmt.Errorf("No workout in progress")
		}
		if err := draft.Clear(); err != nil {
			return fmt.Errorf("Failed to clear workout draft: %w", err)
		}
		fmt.Println("✅ Workout abandoned, nothing was recorded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}

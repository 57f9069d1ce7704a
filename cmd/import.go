package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the application state from an export file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read %s: %w", args[0], err)
		}

		st := newStore()
		if !st.ImportData(data) {
			return fmt.Errorf("invalid export file: no sessions array found")
		}

		fmt.Printf("✅ Imported %d session(s), %d history entries\n", len(st.Sessions()), len(st.History()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

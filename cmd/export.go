package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the full application state to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		doc := st.ExportData()

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("Failed to serialize export: %w", err)
		}
		if err := os.WriteFile(args[0], data, 0644); err != nil {
			return fmt.Errorf("Failed to write %s: %w", args[0], err)
		}

		fmt.Printf("✅ Exported to %s (version %s)\n", args[0], doc.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

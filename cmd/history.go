package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show completed workouts, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		history := st.History()
		if len(history) == 0 {
			fmt.Println("No workouts recorded yet")
			return nil
		}

		for _, entry := range history {
			duration := ""
			if entry.Duration > 0 {
				duration = fmt.Sprintf(" (%s)", (time.Duration(entry.Duration) * time.Second).String())
			}
			fmt.Printf("%s  %s  %s%s\n", entry.ID, entry.Date.Format("Mon 02 Jan 15:04"), entry.SessionName, duration)
		}
		return nil
	},
}

var deleteHistoryCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete one history entry and recompute the stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		if !st.DeleteHistoryEntry(args[0]) {
			warnNotPersisted()
		}
		fmt.Println("✅ Entry deleted")
		return nil
	},
}

var clearHistoryCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the whole history and reset the stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("This deletes every recorded workout. Type 'yes' to confirm: ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Println("Aborted")
			return nil
		}

		st := newStore()
		if !st.ClearHistory() {
			warnNotPersisted()
		}
		fmt.Println("✅ History cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(deleteHistoryCmd)
	historyCmd.AddCommand(clearHistoryCmd)
}

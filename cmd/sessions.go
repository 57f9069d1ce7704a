package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List the sessions, marking those already completed today",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		sessions := st.Sessions()
		if len(sessions) == 0 {
			fmt.Println("No sessions yet, create one with: irontrack session add")
			return nil
		}

		for _, session := range sessions {
			line := fmt.Sprintf("%-14s %s (%d exercises)", session.ID, session.Name, len(session.Exercises))
			if st.IsSessionCompletedToday(session.ID) {
				fmt.Println(color.GreenString("✓ ") + line)
			} else {
				fmt.Println("  " + line)
			}
		}
		return nil
	},
}

var showSessionCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session's exercise list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		session := st.GetSession(args[0])
		if session == nil {
			return fmt.Errorf("no session with id %q", args[0])
		}

		fmt.Printf("%s (created %s)\n\n", session.Name, session.CreatedAt.Format("02 Jan 2006"))
		for i, ex := range session.Exercises {
			fmt.Printf("%d. [%s] %s — %s x %s", i+1, ex.Category, ex.Name, ex.Sets.String(), ex.Reps.String())
			if ex.RestTime != "" {
				fmt.Printf(", rest %s", ex.RestTime)
			}
			if ex.TargetWeight > 0 {
				fmt.Printf(", target %.1f kg", ex.TargetWeight)
			}
			fmt.Println()
			if ex.Notes != "" {
				fmt.Printf("   %s\n", ex.Notes)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(showSessionCmd)
}

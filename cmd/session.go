package cmd

import (
	"fmt"

	"github.com/florentv/irontrack/internal/models"
	"github.com/florentv/irontrack/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Create, rename, delete or duplicate a session",
}

var addSessionCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new empty session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		session := models.Session{
			ID:        uuid.New().String(),
			Name:      args[0],
			Exercises: []models.Exercise{},
		}
		if !st.AddSession(session) {
			warnNotPersisted()
		}
		fmt.Printf("✅ Created session %q (%s)\n", session.Name, session.ID)
		return nil
	},
}

var renameSessionCmd = &cobra.Command{
	Use:   "rename <session-id> <new-name>",
	Short: "Rename a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		if st.GetSession(args[0]) == nil {
			return fmt.Errorf("no session with id %q", args[0])
		}
		name := args[1]
		if !st.UpdateSession(args[0], store.SessionUpdate{Name: &name}) {
			warnNotPersisted()
		}
		fmt.Printf("✅ Renamed session to %q\n", name)
		return nil
	},
}

var deleteSessionCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session (history is untouched)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		if st.GetSession(args[0]) == nil {
			return fmt.Errorf("no session with id %q", args[0])
		}
		if !st.DeleteSession(args[0]) {
			warnNotPersisted()
		}
		fmt.Println("✅ Session deleted")
		return nil
	},
}

var duplicateSessionCmd = &cobra.Command{
	Use:   "duplicate <session-id>",
	Short: "Deep-copy a session under fresh ids",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		dup, ok := st.DuplicateSession(args[0])
		if dup == nil {
			return fmt.Errorf("no session with id %q", args[0])
		}
		if !ok {
			warnNotPersisted()
		}
		fmt.Printf("✅ Created %q (%s)\n", dup.Name, dup.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(addSessionCmd)
	sessionCmd.AddCommand(renameSessionCmd)
	sessionCmd.AddCommand(deleteSessionCmd)
	sessionCmd.AddCommand(duplicateSessionCmd)
}

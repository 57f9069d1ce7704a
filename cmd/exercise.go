package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/florentv/irontrack/internal/models"
	"github.com/florentv/irontrack/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	exSets     string
	exReps     string
	exRest     string
	exCategory string
	exNotes    string
	exVideo    string
	exTarget   float64
)

// parseIntOrString keeps plain integers numeric and everything else as
// free text, matching how sets/reps are stored.
func parseIntOrString(s string) models.IntOrString {
	if n, err := strconv.Atoi(s); err == nil {
		return models.FromInt(n)
	}
	return models.FromString(s)
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Edit the exercises of a session",
}

var addExerciseCmd = &cobra.Command{
	Use:   "add <session-id> <name>",
	Short: "Add an exercise to a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		if st.GetSession(args[0]) == nil {
			return fmt.Errorf("no session with id %q", args[0])
		}

		ex := models.Exercise{
			ID:           uuid.New().String(),
			Name:         args[1],
			Sets:         parseIntOrString(exSets),
			Reps:         parseIntOrString(exReps),
			RestTime:     exRest,
			Category:     exCategory,
			Notes:        exNotes,
			VideoURL:     exVideo,
			TargetWeight: exTarget,
		}
		if !st.AddExerciseToSession(args[0], ex) {
			warnNotPersisted()
		}
		fmt.Printf("✅ Added %q to session\n", ex.Name)
		return nil
	},
}

var updateExerciseCmd = &cobra.Command{
	Use:   "update <session-id> <exercise-id>",
	Short: "Update an exercise inside a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		if st.GetSession(args[0]) == nil {
			return fmt.Errorf("no session with id %q", args[0])
		}

		var updates store.ExerciseUpdate
		if cmd.Flags().Changed("sets") {
			v := parseIntOrString(exSets)
			updates.Sets = &v
		}
		if cmd.Flags().Changed("reps") {
			v := parseIntOrString(exReps)
			updates.Reps = &v
		}
		if cmd.Flags().Changed("rest") {
			updates.RestTime = &exRest
		}
		if cmd.Flags().Changed("category") {
			updates.Category = &exCategory
		}
		if cmd.Flags().Changed("notes") {
			updates.Notes = &exNotes
		}
		if cmd.Flags().Changed("video") {
			updates.VideoURL = &exVideo
		}
		if cmd.Flags().Changed("target") {
			updates.TargetWeight = &exTarget
		}

		if !st.UpdateExerciseInSession(args[0], args[1], updates) {
			warnNotPersisted()
		}
		fmt.Println("✅ Exercise updated")
		return nil
	},
}

var removeExerciseCmd = &cobra.Command{
	Use:   "remove <session-id> <exercise-id>",
	Short: "Remove an exercise from a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		if st.GetSession(args[0]) == nil {
			return fmt.Errorf("no session with id %q", args[0])
		}
		if !st.RemoveExerciseFromSession(args[0], args[1]) {
			warnNotPersisted()
		}
		fmt.Println("✅ Exercise removed")
		return nil
	},
}

var reorderExercisesCmd = &cobra.Command{
	Use:   "reorder <session-id> <position,position,...>",
	Short: "Reorder a session's exercises by their current positions",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		session := st.GetSession(args[0])
		if session == nil {
			return fmt.Errorf("no session with id %q", args[0])
		}

		parts := strings.Split(args[1], ",")
		if len(parts) != len(session.Exercises) {
			return fmt.Errorf("expected %d positions, got %d", len(session.Exercises), len(parts))
		}

		reordered := make([]models.Exercise, 0, len(parts))
		seen := make(map[int]bool)
		for _, p := range parts {
			idx, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || idx < 1 || idx > len(session.Exercises) || seen[idx] {
				return fmt.Errorf("invalid position %q", p)
			}
			seen[idx] = true
			reordered = append(reordered, session.Exercises[idx-1])
		}

		if !st.ReorderExercisesInSession(args[0], reordered) {
			warnNotPersisted()
		}
		fmt.Println("✅ Exercises reordered")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(addExerciseCmd)
	exerciseCmd.AddCommand(updateExerciseCmd)
	exerciseCmd.AddCommand(removeExerciseCmd)
	exerciseCmd.AddCommand(reorderExercisesCmd)

	for _, c := range []*cobra.Command{addExerciseCmd, updateExerciseCmd} {
		c.Flags().StringVar(&exSets, "sets", "3", "Sets (number or free text)")
		c.Flags().StringVar(&exReps, "reps", "10", "Reps (number or free text like \"8-12\")")
		c.Flags().StringVar(&exRest, "rest", "", "Rest time, free text (\"1 min 30\")")
		c.Flags().StringVar(&exCategory, "category", "main", "warmup, main, superset or finisher")
		c.Flags().StringVar(&exNotes, "notes", "", "Notes")
		c.Flags().StringVar(&exVideo, "video", "", "Video URL")
		c.Flags().Float64Var(&exTarget, "target", 0, "Target weight in kg")
	}
}

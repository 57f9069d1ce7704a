package cmd

import (
	"fmt"

	"github.com/florentv/irontrack/internal/catalog"
	"github.com/florentv/irontrack/internal/models"
	"github.com/florentv/irontrack/internal/store"
	"github.com/spf13/cobra"
)

var (
	libSets  string
	libReps  string
	libRest  string
	libVideo string
	libNotes string
	libGroup string
)

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Browse the exercise library (built-in catalog + custom entries)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		for _, t := range st.Library() {
			origin := "built-in"
			if !catalog.IsBuiltin(t.ID) {
				origin = "custom"
			}
			fmt.Printf("%-40s %-8s %s x %s", t.Name, origin, t.DefaultSets.String(), t.DefaultReps.String())
			if t.MuscleGroup != "" {
				fmt.Printf("  [%s]", t.MuscleGroup)
			}
			fmt.Println()
		}
		return nil
	},
}

var addLibraryCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom exercise to the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		added, ok := st.AddCustomExercise(models.ExerciseTemplate{
			Name:            args[0],
			DefaultSets:     parseIntOrString(libSets),
			DefaultReps:     parseIntOrString(libReps),
			DefaultRestTime: libRest,
			VideoURL:        libVideo,
			Notes:           libNotes,
			MuscleGroup:     libGroup,
		})
		if !ok {
			warnNotPersisted()
		}
		fmt.Printf("✅ Added %q (%s)\n", added.Name, added.ID)
		return nil
	},
}

var updateLibraryCmd = &cobra.Command{
	Use:   "update <exercise-id>",
	Short: "Update a custom library entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if catalog.IsBuiltin(args[0]) {
			return fmt.Errorf("%q is a built-in exercise and cannot be edited", args[0])
		}

		st := newStore()
		var updates store.TemplateUpdate
		if cmd.Flags().Changed("sets") {
			v := parseIntOrString(libSets)
			updates.DefaultSets = &v
		}
		if cmd.Flags().Changed("reps") {
			v := parseIntOrString(libReps)
			updates.DefaultReps = &v
		}
		if cmd.Flags().Changed("rest") {
			updates.DefaultRestTime = &libRest
		}
		if cmd.Flags().Changed("video") {
			updates.VideoURL = &libVideo
		}
		if cmd.Flags().Changed("notes") {
			updates.Notes = &libNotes
		}
		if cmd.Flags().Changed("group") {
			updates.MuscleGroup = &libGroup
		}

		if !st.UpdateCustomExercise(args[0], updates) {
			warnNotPersisted()
		}
		fmt.Println("✅ Library entry updated")
		return nil
	},
}

var deleteLibraryCmd = &cobra.Command{
	Use:   "delete <exercise-id>",
	Short: "Delete a custom library entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if catalog.IsBuiltin(args[0]) {
			return fmt.Errorf("%q is a built-in exercise and cannot be deleted", args[0])
		}

		st := newStore()
		if !st.DeleteCustomExercise(args[0]) {
			warnNotPersisted()
		}
		fmt.Println("✅ Library entry deleted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(addLibraryCmd)
	libraryCmd.AddCommand(updateLibraryCmd)
	libraryCmd.AddCommand(deleteLibraryCmd)

	for _, c := range []*cobra.Command{addLibraryCmd, updateLibraryCmd} {
		c.Flags().StringVar(&libSets, "sets", "3", "Default sets")
		c.Flags().StringVar(&libReps, "reps", "10", "Default reps")
		c.Flags().StringVar(&libRest, "rest", "", "Default rest time")
		c.Flags().StringVar(&libVideo, "video", "", "Video URL")
		c.Flags().StringVar(&libNotes, "notes", "", "Notes")
		c.Flags().StringVar(&libGroup, "group", "", "Muscle group")
	}
}

package cmd

import (
	"fmt"

	"github.com/florentv/irontrack/internal/store"
	"github.com/spf13/cobra"
)

var (
	settingName  string
	settingRest  int
	settingTheme string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newStore()
		settings := st.Settings()
		fmt.Printf("User:              %s\n", settings.UserName)
		fmt.Printf("Default rest time: %d s\n", settings.DefaultRestTime)
		fmt.Printf("Theme:             %s\n", settings.Theme)
		return nil
	},
}

var setSettingsCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one or more settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		var updates store.SettingsUpdate
		if cmd.Flags().Changed("name") {
			updates.UserName = &settingName
		}
		if cmd.Flags().Changed("rest") {
			updates.DefaultRestTime = &settingRest
		}
		if cmd.Flags().Changed("theme") {
			if settingTheme != "dark" && settingTheme != "light" && settingTheme != "system" {
				return fmt.Errorf("theme must be dark, light or system")
			}
			updates.Theme = &settingTheme
		}

		st := newStore()
		if !st.UpdateSettings(updates) {
			warnNotPersisted()
		}
		fmt.Println("✅ Settings updated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(setSettingsCmd)

	setSettingsCmd.Flags().StringVar(&settingName, "name", "", "Display name")
	setSettingsCmd.Flags().IntVar(&settingRest, "rest", 90, "Default rest time in seconds")
	setSettingsCmd.Flags().StringVar(&settingTheme, "theme", "dark", "dark, light or system")
}

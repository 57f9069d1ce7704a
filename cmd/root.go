package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/florentv/irontrack/internal/broadcast"
	"github.com/florentv/irontrack/internal/storage"
	"github.com/florentv/irontrack/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "irontrack",
	Short: "Personal workout tracker: sessions, records, streaks",
}

func Execute() error {
	return rootCmd.Execute()
}

// newStore wires the persistence slot, the broadcaster and the store the
// way every command needs them.
func newStore() *store.Store {
	bus := broadcast.New()
	adapter := storage.NewAdapter(storage.OpenSlot(), bus)
	return store.New(adapter, bus)
}

// warnNotPersisted reports an advisory save failure: the change is applied
// in memory but may be lost when the process exits.
func warnNotPersisted() {
	color.Red("⚠ The change could not be persisted")
}

// Package draft keeps the in-progress workout between CLI invocations.
// The draft is the WorkoutEntry returned by StartWorkout, held outside the
// application state: it never touches history until it is finished, and
// cancelling simply deletes the file.
package draft

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/florentv/irontrack/internal/config"
	"github.com/florentv/irontrack/internal/models"
)

func getDraftPath() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "current_workout.json"), nil
}

func Save(entry *models.WorkoutEntry) error {
	path, err := getDraftPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func Load() (*models.WorkoutEntry, error) {
	path, err := getDraftPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entry models.WorkoutEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func Clear() error {
	path, err := getDraftPath()
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func Exists() bool {
	path, err := getDraftPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}

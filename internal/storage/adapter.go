// Package storage persists the whole AppState as one JSON document in a
// single durable slot, and hands every successful write to the broadcaster.
package storage

import (
	"encoding/json"

	"github.com/florentv/irontrack/internal/broadcast"
	"github.com/florentv/irontrack/internal/models"
	"github.com/sirupsen/logrus"
)

// Adapter owns the read/migrate/default cycle on load and the
// write/verify/broadcast cycle on save. Load never fails from the caller's
// perspective and Save reports failure as a plain false.
type Adapter struct {
	slot Slot
	bus  *broadcast.Broadcaster
}

func NewAdapter(slot Slot, bus *broadcast.Broadcaster) *Adapter {
	return &Adapter{slot: slot, bus: bus}
}

// persistedState mirrors the stored document with optional fields, so a
// document written by an older build still loads: anything missing falls
// back to its default. Program is the pre-2.0 layout that nested sessions.
type persistedState struct {
	Sessions        []models.Session          `json:"sessions"`
	History         []models.WorkoutEntry     `json:"history"`
	PersonalRecords []models.PersonalRecord   `json:"personalRecords"`
	UserStats       *models.UserStats         `json:"userStats"`
	Settings        *models.AppSettings       `json:"settings"`
	CustomExercises []models.ExerciseTemplate `json:"customExercises"`
	Program         *legacyProgram            `json:"program"`
}

type legacyProgram struct {
	Sessions []models.Session `json:"sessions"`
}

// Load reads the slot and always returns a usable state: the built-in
// default when the slot is empty or unreadable, the migrated form for
// legacy documents, and a field-by-field merge with defaults otherwise.
func (a *Adapter) Load() models.AppState {
	raw, ok, err := a.slot.Read()
	if err != nil {
		logrus.WithError(err).Warn("failed to read state, falling back to defaults")
		return DefaultState()
	}
	if !ok {
		return DefaultState()
	}

	var parsed persistedState
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		logrus.WithError(err).Warn("failed to parse stored state, falling back to defaults")
		return DefaultState()
	}

	// Old format nested the sessions under "program"; lift them out.
	if parsed.Sessions == nil && parsed.Program != nil {
		parsed.Sessions = parsed.Program.Sessions
	}

	state := DefaultState()
	if parsed.Sessions != nil {
		state.Sessions = parsed.Sessions
	}
	if parsed.History != nil {
		state.History = parsed.History
	}
	if parsed.PersonalRecords != nil {
		state.PersonalRecords = parsed.PersonalRecords
	}
	if parsed.UserStats != nil {
		state.UserStats = *parsed.UserStats
	}
	if parsed.Settings != nil {
		state.Settings = *parsed.Settings
	}
	if parsed.CustomExercises != nil {
		state.CustomExercises = parsed.CustomExercises
	}
	return state
}

// Save serializes the state into the slot, reads it back to verify the
// write took, and broadcasts the new state on success. Never panics or
// returns an error: persistence trouble is advisory, the in-memory state
// stays authoritative.
func (a *Adapter) Save(state models.AppState) bool {
	serialized, err := json.Marshal(state)
	if err != nil {
		logrus.WithError(err).Error("failed to serialize state")
		return false
	}

	if err := a.slot.Write(string(serialized)); err != nil {
		logrus.WithError(err).Error("failed to write state")
		return false
	}

	stored, ok, err := a.slot.Read()
	if err != nil || !ok || stored != string(serialized) {
		logrus.WithError(err).Error("state verification failed: stored data mismatch")
		return false
	}

	a.bus.Publish(state)
	return true
}

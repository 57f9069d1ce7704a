package storage_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/florentv/irontrack/internal/broadcast"
	"github.com/florentv/irontrack/internal/models"
	"github.com/florentv/irontrack/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSlot is the in-memory Slot used by tests. failWrites makes Write
// succeed while the value silently never lands, to exercise verification.
type memSlot struct {
	value      string
	exists     bool
	readErr    error
	failWrites bool
}

func (m *memSlot) Read() (string, bool, error) {
	return m.value, m.exists, m.readErr
}

func (m *memSlot) Write(value string) error {
	if m.failWrites {
		return nil
	}
	m.value = value
	m.exists = true
	return nil
}

func newAdapter(slot storage.Slot) *storage.Adapter {
	return storage.NewAdapter(slot, broadcast.New())
}

func TestLoadEmptySlotReturnsDefaults(t *testing.T) {
	state := newAdapter(&memSlot{}).Load()

	require.Len(t, state.Sessions, 3)
	assert.Equal(t, "Haut du corps 1 (Force & Skills)", state.Sessions[0].Name)
	assert.Empty(t, state.History)
	assert.Len(t, state.PersonalRecords, 4)
	assert.Equal(t, "Florent", state.Settings.UserName)
	assert.Equal(t, 90, state.Settings.DefaultRestTime)
	assert.NotNil(t, state.CustomExercises)
}

func TestLoadGarbageFallsBackToDefaults(t *testing.T) {
	state := newAdapter(&memSlot{value: "{not json", exists: true}).Load()
	require.Len(t, state.Sessions, 3)
}

func TestLoadReadErrorFallsBackToDefaults(t *testing.T) {
	state := newAdapter(&memSlot{readErr: errors.New("disk gone")}).Load()
	require.Len(t, state.Sessions, 3)
}

func TestLoadMigratesLegacyProgramLayout(t *testing.T) {
	legacy := `{"program":{"sessions":[{"id":"old-1","name":"Vieille séance","exercises":[]}]}}`
	state := newAdapter(&memSlot{value: legacy, exists: true}).Load()

	require.Len(t, state.Sessions, 1)
	assert.Equal(t, "old-1", state.Sessions[0].ID)
	// Every other field defaults.
	assert.Empty(t, state.History)
	assert.Equal(t, "Florent", state.Settings.UserName)
	assert.Zero(t, state.UserStats.TotalWorkouts)
}

func TestLoadMissingFieldsDefaulted(t *testing.T) {
	// No customExercises, no settings: both must come back usable.
	doc := `{"sessions":[],"history":[],"personalRecords":[],"userStats":{"totalWorkouts":7,"totalVolume":1,"currentStreak":0,"longestStreak":2}}`
	state := newAdapter(&memSlot{value: doc, exists: true}).Load()

	assert.NotNil(t, state.CustomExercises)
	assert.Empty(t, state.CustomExercises)
	assert.Equal(t, 7, state.UserStats.TotalWorkouts)
	assert.Equal(t, "dark", state.Settings.Theme)
	// Stored empty sessions list wins over the seeded defaults.
	assert.Empty(t, state.Sessions)
}

func TestSaveRoundTrips(t *testing.T) {
	slot := &memSlot{}
	adapter := newAdapter(slot)
	state := storage.DefaultState()
	state.Settings.UserName = "Ada"

	require.True(t, adapter.Save(state))

	var stored models.AppState
	require.NoError(t, json.Unmarshal([]byte(slot.value), &stored))
	assert.Equal(t, "Ada", stored.Settings.UserName)
	assert.Len(t, stored.Sessions, 3)
}

func TestSavePublishesOnSuccess(t *testing.T) {
	bus := broadcast.New()
	adapter := storage.NewAdapter(&memSlot{}, bus)

	var got *models.AppState
	bus.Subscribe(func(s models.AppState) { got = &s })

	state := storage.DefaultState()
	state.Settings.UserName = "Grace"
	require.True(t, adapter.Save(state))
	require.NotNil(t, got)
	assert.Equal(t, "Grace", got.Settings.UserName)
}

func TestSaveVerificationFailure(t *testing.T) {
	bus := broadcast.New()
	adapter := storage.NewAdapter(&memSlot{failWrites: true}, bus)

	published := false
	bus.Subscribe(func(models.AppState) { published = true })

	assert.False(t, adapter.Save(storage.DefaultState()))
	assert.False(t, published, "failed save must not broadcast")
}

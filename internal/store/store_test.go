package store_test

import (
	"encoding/json"
	"testing"

	"github.com/florentv/irontrack/internal/broadcast"
	"github.com/florentv/irontrack/internal/catalog"
	"github.com/florentv/irontrack/internal/models"
	"github.com/florentv/irontrack/internal/storage"
	"github.com/florentv/irontrack/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSlot struct {
	value  string
	exists bool
}

func (m *memSlot) Read() (string, bool, error) { return m.value, m.exists, nil }

func (m *memSlot) Write(value string) error {
	m.value = value
	m.exists = true
	return nil
}

func newStore(t *testing.T) (*store.Store, *memSlot, *broadcast.Broadcaster) {
	t.Helper()
	slot := &memSlot{}
	bus := broadcast.New()
	s := store.New(storage.NewAdapter(slot, bus), bus)
	t.Cleanup(s.Close)
	return s, slot, bus
}

func stateJSON(t *testing.T, s *store.Store) string {
	t.Helper()
	doc := s.ExportData()
	raw, err := json.Marshal(doc.AppState)
	require.NoError(t, err)
	return string(raw)
}

// completeBench completes a workout containing a single finished bench log
// at the given weight and returns the names that set a record.
func completeBench(t *testing.T, s *store.Store, weight float64) []string {
	t.Helper()
	entry, err := s.StartWorkout("haut-corps-1")
	require.NoError(t, err)
	for i := range entry.Exercises {
		if entry.Exercises[i].ExerciseName == "Développé couché haltères" {
			entry.Exercises[i].Weight = weight
			entry.Exercises[i].Completed = true
		}
	}
	names, ok := s.CompleteWorkout(*entry)
	require.True(t, ok)
	return names
}

func TestStartWorkoutUnknownSession(t *testing.T) {
	s, _, _ := newStore(t)
	_, err := s.StartWorkout("nope")
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestStartWorkoutSnapshotsSession(t *testing.T) {
	s, _, _ := newStore(t)
	entry, err := s.StartWorkout("haut-corps-1")
	require.NoError(t, err)

	session := s.GetSession("haut-corps-1")
	require.Len(t, entry.Exercises, len(session.Exercises))
	for i, log := range entry.Exercises {
		assert.Equal(t, session.Exercises[i].ID, log.ExerciseID)
		assert.Equal(t, session.Exercises[i].Name, log.ExerciseName)
		assert.Zero(t, log.Weight)
		assert.False(t, log.Completed)
	}
	assert.False(t, entry.Completed)
	assert.Equal(t, "haut-corps-1", entry.SessionID)
}

func TestDraftDiscardLeavesStateUntouched(t *testing.T) {
	s, _, _ := newStore(t)
	before := stateJSON(t, s)

	entry, err := s.StartWorkout("bas-corps")
	require.NoError(t, err)
	entry.Exercises[0].Weight = 100 // Logged but never completed.

	assert.Equal(t, before, stateJSON(t, s))
	assert.Empty(t, s.History())
	assert.Zero(t, s.UserStats().TotalWorkouts)
}

func TestCompleteWorkoutUpdatesHistoryAndStats(t *testing.T) {
	s, _, _ := newStore(t)
	completeBench(t, s, 40)

	history := s.History()
	require.Len(t, history, 1)
	assert.True(t, history[0].Completed)

	stats := s.UserStats()
	assert.Equal(t, 1, stats.TotalWorkouts)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.LongestStreak)
	require.NotNil(t, stats.LastWorkoutDate)
	// weight 40 x 4 sets x 8 reps.
	assert.Equal(t, 40.0*4*8, stats.TotalVolume)
}

func TestCompleteWorkoutPrependsToHistory(t *testing.T) {
	s, _, _ := newStore(t)
	completeBench(t, s, 40)
	completeBench(t, s, 42)

	history := s.History()
	require.Len(t, history, 2)
	assert.False(t, history[0].Date.Before(history[1].Date), "most recent first")
}

func TestRecordSupersession(t *testing.T) {
	s, _, _ := newStore(t)

	// Seeded record for the bench is 32 kg; 50 beats it.
	names := completeBench(t, s, 50)
	assert.Equal(t, []string{"Développé couché haltères"}, names)
	rec := s.GetPersonalRecord("développé couché haltères") // Case-insensitive.
	require.NotNil(t, rec)
	assert.Equal(t, 50.0, rec.Weight)

	// A lighter workout leaves the record alone.
	names = completeBench(t, s, 45)
	assert.Empty(t, names)
	assert.Equal(t, 50.0, s.GetPersonalRecord("Développé couché haltères").Weight)

	// A heavier one replaces it entirely; exactly one record per name.
	names = completeBench(t, s, 55)
	assert.Equal(t, []string{"Développé couché haltères"}, names)
	count := 0
	for _, r := range s.PersonalRecords() {
		if r.ExerciseName == "Développé couché haltères" {
			count++
			assert.Equal(t, 55.0, r.Weight)
		}
	}
	assert.Equal(t, 1, count)
}

func TestCompleteWorkoutIgnoresUnfinishedLogs(t *testing.T) {
	s, _, _ := newStore(t)
	entry, err := s.StartWorkout("haut-corps-1")
	require.NoError(t, err)
	// Heavy weight but the set was never marked done: no record.
	entry.Exercises[4].Weight = 200
	names, ok := s.CompleteWorkout(*entry)
	require.True(t, ok)
	assert.Empty(t, names)
	assert.Equal(t, 32.0, s.GetPersonalRecord("Développé couché haltères").Weight)
}

func TestGetLastWeightForExercise(t *testing.T) {
	s, _, _ := newStore(t)
	_, found := s.GetLastWeightForExercise("Développé couché haltères")
	assert.False(t, found)

	completeBench(t, s, 40)
	completeBench(t, s, 42)

	weight, found := s.GetLastWeightForExercise("DÉVELOPPÉ COUCHÉ HALTÈRES")
	require.True(t, found)
	assert.Equal(t, 42.0, weight, "most recent weight wins")
}

func TestTodayBoundaryQueries(t *testing.T) {
	s, _, _ := newStore(t)
	assert.False(t, s.IsSessionCompletedToday("haut-corps-1"))
	assert.Len(t, s.GetAvailableSessions(), 3)
	assert.Empty(t, s.GetCompletedTodaySessions())

	completeBench(t, s, 40)

	assert.True(t, s.IsSessionCompletedToday("haut-corps-1"))
	assert.Len(t, s.GetAvailableSessions(), 2)
	require.Len(t, s.GetCompletedTodaySessions(), 1)
	assert.Equal(t, "haut-corps-1", s.GetCompletedTodaySessions()[0].ID)
}

func TestSessionCRUD(t *testing.T) {
	s, _, _ := newStore(t)

	ok := s.AddSession(models.Session{ID: "custom-session", Name: "Pull day"})
	require.True(t, ok)
	require.NotNil(t, s.GetSession("custom-session"))

	name := "Pull day v2"
	require.True(t, s.UpdateSession("custom-session", store.SessionUpdate{Name: &name}))
	updated := s.GetSession("custom-session")
	assert.Equal(t, "Pull day v2", updated.Name)
	assert.NotNil(t, updated.UpdatedAt)

	require.True(t, s.DeleteSession("custom-session"))
	assert.Nil(t, s.GetSession("custom-session"))
}

func TestDuplicateSessionRegeneratesIDs(t *testing.T) {
	s, _, _ := newStore(t)
	source := s.GetSession("bas-corps")

	dup, ok := s.DuplicateSession("bas-corps")
	require.True(t, ok)
	assert.Equal(t, "Bas du Corps (Cardio & Mobilité) (copie)", dup.Name)
	assert.NotEqual(t, source.ID, dup.ID)
	require.Len(t, dup.Exercises, len(source.Exercises))
	for i, ex := range dup.Exercises {
		assert.NotEqual(t, source.Exercises[i].ID, ex.ID)
		assert.Equal(t, source.Exercises[i].Name, ex.Name)
	}
	assert.Len(t, s.Sessions(), 4)
}

func TestExerciseCRUDWithinSession(t *testing.T) {
	s, _, _ := newStore(t)

	ex := models.Exercise{ID: "ex-1", Name: "Face Pull", Sets: models.FromInt(3), Reps: models.FromString("15")}
	require.True(t, s.AddExerciseToSession("haut-corps-3", ex))
	session := s.GetSession("haut-corps-3")
	require.Len(t, session.Exercises, 3)
	assert.NotNil(t, session.UpdatedAt)

	notes := "Tirer vers le front"
	require.True(t, s.UpdateExerciseInSession("haut-corps-3", "ex-1", store.ExerciseUpdate{Notes: &notes}))
	session = s.GetSession("haut-corps-3")
	assert.Equal(t, "Tirer vers le front", session.Exercises[2].Notes)

	reversed := []models.Exercise{session.Exercises[2], session.Exercises[1], session.Exercises[0]}
	require.True(t, s.ReorderExercisesInSession("haut-corps-3", reversed))
	assert.Equal(t, "ex-1", s.GetSession("haut-corps-3").Exercises[0].ID)

	require.True(t, s.RemoveExerciseFromSession("haut-corps-3", "ex-1"))
	assert.Len(t, s.GetSession("haut-corps-3").Exercises, 2)
}

func TestSnapshotIsolation(t *testing.T) {
	s, _, _ := newStore(t)
	entry, err := s.StartWorkout("haut-corps-3")
	require.NoError(t, err)

	// Editing the source session after the workout started must not leak
	// into the draft's snapshot.
	name := "Renamed after start"
	require.True(t, s.UpdateExerciseInSession("haut-corps-3", "traction-scapulaire", store.ExerciseUpdate{Name: &name}))
	assert.Equal(t, "Traction scapulaire", entry.Exercises[0].ExerciseName)
}

func TestUpdateSettings(t *testing.T) {
	s, _, _ := newStore(t)
	rest := 120
	theme := "light"
	require.True(t, s.UpdateSettings(store.SettingsUpdate{DefaultRestTime: &rest, Theme: &theme}))

	got := s.Settings()
	assert.Equal(t, 120, got.DefaultRestTime)
	assert.Equal(t, "light", got.Theme)
	assert.Equal(t, "Florent", got.UserName, "untouched field keeps its value")
}

func TestClearHistory(t *testing.T) {
	s, _, _ := newStore(t)
	completeBench(t, s, 40)
	require.True(t, s.ClearHistory())

	assert.Empty(t, s.History())
	assert.Equal(t, models.UserStats{}, s.UserStats())
}

func TestDeleteHistoryEntry(t *testing.T) {
	s, _, _ := newStore(t)
	completeBench(t, s, 40)
	completeBench(t, s, 45)

	history := s.History()
	require.Len(t, history, 2)
	require.True(t, s.DeleteHistoryEntry(history[0].ID))

	assert.Len(t, s.History(), 1)
	stats := s.UserStats()
	assert.Equal(t, 1, stats.TotalWorkouts)
	assert.Equal(t, 40.0*4*8, stats.TotalVolume)
}

func TestExportImportRoundTrip(t *testing.T) {
	s, _, _ := newStore(t)
	completeBench(t, s, 40)
	before := stateJSON(t, s)

	doc := s.ExportData()
	assert.Equal(t, store.ExportVersion, doc.Version)
	assert.False(t, doc.ExportedAt.IsZero())

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	fresh, _, _ := newStore(t)
	require.True(t, fresh.ImportData(raw))
	assert.Equal(t, before, stateJSON(t, fresh))
}

func TestImportRejectsMissingSessions(t *testing.T) {
	s, _, _ := newStore(t)
	before := stateJSON(t, s)

	assert.False(t, s.ImportData([]byte(`{"history":[]}`)))
	assert.False(t, s.ImportData([]byte(`not json at all`)))
	assert.Equal(t, before, stateJSON(t, s), "failed import must not mutate")
}

func TestImportDefaultsMissingFields(t *testing.T) {
	s, _, _ := newStore(t)
	require.True(t, s.ImportData([]byte(`{"sessions":[]}`)))

	assert.Empty(t, s.Sessions())
	assert.Empty(t, s.History())
	assert.Empty(t, s.PersonalRecords())
	assert.Equal(t, "Florent", s.Settings().UserName)
	assert.Empty(t, s.CustomExercises())
}

func TestCustomExerciseCRUD(t *testing.T) {
	s, _, _ := newStore(t)

	added, ok := s.AddCustomExercise(models.ExerciseTemplate{Name: "Farmer Walk", DefaultSets: models.FromInt(3)})
	require.True(t, ok)
	assert.False(t, catalog.IsBuiltin(added.ID))

	lib := s.Library()
	assert.Equal(t, "Farmer Walk", lib[len(lib)-1].Name)

	group := "Avant-bras"
	require.True(t, s.UpdateCustomExercise(added.ID, store.TemplateUpdate{MuscleGroup: &group}))
	assert.Equal(t, "Avant-bras", s.CustomExercises()[0].MuscleGroup)

	require.True(t, s.DeleteCustomExercise(added.ID))
	assert.Empty(t, s.CustomExercises())
}

func TestTwoStoresConvergeThroughBroadcast(t *testing.T) {
	slot := &memSlot{}
	bus := broadcast.New()
	adapter := storage.NewAdapter(slot, bus)
	a := store.New(adapter, bus)
	b := store.New(adapter, bus)
	t.Cleanup(a.Close)
	t.Cleanup(b.Close)

	name := "Shared"
	require.True(t, a.UpdateSettings(store.SettingsUpdate{UserName: &name}))

	// b observed the write synchronously, before UpdateSettings returned.
	assert.Equal(t, "Shared", b.Settings().UserName)
}

func TestRefreshReloadsPersistedState(t *testing.T) {
	slot := &memSlot{}
	busA, busB := broadcast.New(), broadcast.New()
	a := store.New(storage.NewAdapter(slot, busA), busA)
	b := store.New(storage.NewAdapter(slot, busB), busB)
	t.Cleanup(a.Close)
	t.Cleanup(b.Close)

	name := "Elsewhere"
	require.True(t, a.UpdateSettings(store.SettingsUpdate{UserName: &name}))

	// b sits on a different broadcaster, so only a reload can catch up.
	assert.Equal(t, "Florent", b.Settings().UserName)
	b.Refresh()
	assert.Equal(t, "Elsewhere", b.Settings().UserName)
}

// Package store is the stateful façade over the application state: it holds
// one in-memory AppState, answers queries from it, and runs every mutation
// through the compute / persist / broadcast cycle. Several stores may live
// in one process; they converge through the broadcaster after any write.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/florentv/irontrack/internal/analytics"
	"github.com/florentv/irontrack/internal/broadcast"
	"github.com/florentv/irontrack/internal/catalog"
	"github.com/florentv/irontrack/internal/models"
	"github.com/florentv/irontrack/internal/storage"
)

// ExportVersion tags exported documents with the current schema.
const ExportVersion = "2.0.0"

var ErrSessionNotFound = errors.New("session not found")

type Store struct {
	mu      sync.RWMutex
	adapter *storage.Adapter
	state   models.AppState
	unsub   func()
}

// New loads the persisted state and subscribes to the broadcaster, so
// writes made by sibling stores replace this one's in-memory copy.
func New(adapter *storage.Adapter, bus *broadcast.Broadcaster) *Store {
	s := &Store{
		adapter: adapter,
		state:   adapter.Load(),
	}
	s.unsub = bus.Subscribe(func(state models.AppState) {
		s.mu.Lock()
		s.state = state
		s.mu.Unlock()
	})
	return s
}

// Close detaches the store from the broadcaster.
func (s *Store) Close() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

// Refresh re-reads the persisted state, discarding whatever is in memory.
// Callers use it when a view comes back to the foreground and the in-memory
// copy may be stale.
func (s *Store) Refresh() {
	state := s.adapter.Load()
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// install replaces the in-memory state and persists it. The in-memory copy
// stays authoritative even when the save reports failure; the false return
// is advisory and surfaces as a warning, never as a rollback.
func (s *Store) install(next models.AppState) bool {
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	ok := s.adapter.Save(next)
	if !ok {
		logrus.Warn("state change kept in memory but not persisted")
	}
	return ok
}

//
// Queries
//

func (s *Store) Sessions() []models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Session{}, s.state.Sessions...)
}

func (s *Store) History() []models.WorkoutEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.WorkoutEntry{}, s.state.History...)
}

func (s *Store) PersonalRecords() []models.PersonalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.PersonalRecord{}, s.state.PersonalRecords...)
}

func (s *Store) UserStats() models.UserStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UserStats
}

func (s *Store) Settings() models.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Settings
}

func (s *Store) CustomExercises() []models.ExerciseTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ExerciseTemplate{}, s.state.CustomExercises...)
}

// Library returns the full browsable library: built-in catalog plus the
// user's custom exercises.
func (s *Store) Library() []models.ExerciseTemplate {
	return catalog.Merged(s.CustomExercises())
}

// GetSession returns the session with the given id, or nil.
func (s *Store) GetSession(id string) *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.state.Sessions {
		if s.state.Sessions[i].ID == id {
			session := s.state.Sessions[i]
			return &session
		}
	}
	return nil
}

// GetLastWeightForExercise scans the completed history, most recent first,
// for the last logged weight of an exercise. Matching is by name,
// case-insensitive: ids regenerate across duplicates and customizations but
// the name is the key the user recognizes.
func (s *Store) GetLastWeightForExercise(name string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, entry := range s.state.History {
		if !entry.Completed {
			continue
		}
		for _, ex := range entry.Exercises {
			if strings.EqualFold(ex.ExerciseName, name) && ex.Weight > 0 {
				return ex.Weight, true
			}
		}
	}
	return 0, false
}

// GetPersonalRecord looks a record up by exercise name, case-insensitive.
func (s *Store) GetPersonalRecord(name string) *models.PersonalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.state.PersonalRecords {
		if strings.EqualFold(s.state.PersonalRecords[i].ExerciseName, name) {
			rec := s.state.PersonalRecords[i]
			return &rec
		}
	}
	return nil
}

// IsSessionCompletedToday reports whether the session was completed since
// local midnight.
func (s *Store) IsSessionCompletedToday(sessionID string) bool {
	today := dayOf(time.Now())
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, entry := range s.state.History {
		if entry.SessionID == sessionID && entry.Completed && dayOf(entry.Date).Equal(today) {
			return true
		}
	}
	return false
}

// GetAvailableSessions lists the sessions not yet completed today.
func (s *Store) GetAvailableSessions() []models.Session {
	var out []models.Session
	for _, session := range s.Sessions() {
		if !s.IsSessionCompletedToday(session.ID) {
			out = append(out, session)
		}
	}
	return out
}

// GetCompletedTodaySessions lists the sessions already completed today.
func (s *Store) GetCompletedTodaySessions() []models.Session {
	var out []models.Session
	for _, session := range s.Sessions() {
		if s.IsSessionCompletedToday(session.ID) {
			out = append(out, session)
		}
	}
	return out
}

// GetExerciseHistory projects the weight progression of one exercise from
// the completed history, oldest first.
func (s *Store) GetExerciseHistory(exerciseID string) []analytics.ExercisePoint {
	return analytics.ExerciseHistory(s.History(), exerciseID)
}

// GetWeeklyStats aggregates the trailing seven days.
func (s *Store) GetWeeklyStats() analytics.WeeklyStats {
	return analytics.Weekly(s.History(), time.Now())
}

//
// Workout lifecycle
//

// StartWorkout builds a draft WorkoutEntry snapshotting every exercise of
// the session, in order, with nothing logged yet. The draft belongs to the
// caller and is not persisted; it only enters history via CompleteWorkout.
// Abandoning the draft leaves no trace.
func (s *Store) StartWorkout(sessionID string) (*models.WorkoutEntry, error) {
	session := s.GetSession(sessionID)
	if session == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	entry := &models.WorkoutEntry{
		ID:          uuid.New().String(),
		SessionID:   session.ID,
		SessionName: session.Name,
		Date:        time.Now(),
		Exercises:   make([]models.ExerciseLog, 0, len(session.Exercises)),
	}
	for _, ex := range session.Exercises {
		entry.Exercises = append(entry.Exercises, models.ExerciseLog{
			ExerciseID:   ex.ID,
			ExerciseName: ex.Name,
			Sets:         ex.Sets,
			Reps:         ex.Reps,
			RestTime:     ex.RestTime,
			VideoURL:     ex.VideoURL,
			Category:     ex.Category,
			Notes:        ex.Notes,
			TargetWeight: ex.TargetWeight,
		})
	}
	return entry, nil
}

// CompleteWorkout marks the entry completed, prepends it to history,
// replaces any personal record beaten by a completed weighted log, and
// recomputes the stats. Returns the exercise names that set a new record
// and whether the new state persisted.
func (s *Store) CompleteWorkout(entry models.WorkoutEntry) ([]string, bool) {
	entry.Completed = true
	now := time.Now()

	s.mu.RLock()
	prev := s.state
	s.mu.RUnlock()

	records := append([]models.PersonalRecord{}, prev.PersonalRecords...)
	newRecords := []string{}
	for _, ex := range entry.Exercises {
		if ex.Weight <= 0 || !ex.Completed {
			continue
		}
		idx := -1
		for i := range records {
			if strings.EqualFold(records[i].ExerciseName, ex.ExerciseName) {
				idx = i
				break
			}
		}
		if idx >= 0 && ex.Weight <= records[idx].Weight {
			continue
		}
		rec := models.PersonalRecord{
			ExerciseID:   ex.ExerciseID,
			ExerciseName: ex.ExerciseName,
			Weight:       ex.Weight,
			Date:         now,
			Reps:         ex.Reps,
		}
		if idx >= 0 {
			records[idx] = rec // Old record is discarded, not archived.
		} else {
			records = append(records, rec)
		}
		newRecords = append(newRecords, ex.ExerciseName)
	}

	history := append([]models.WorkoutEntry{entry}, prev.History...)
	next := prev
	next.History = history
	next.PersonalRecords = records
	next.UserStats = recomputeStats(history, now)
	// Longest streak never decreases on completion.
	if prev.UserStats.LongestStreak > next.UserStats.LongestStreak {
		next.UserStats.LongestStreak = prev.UserStats.LongestStreak
	}

	ok := s.install(next)
	return newRecords, ok
}

func recomputeStats(history []models.WorkoutEntry, now time.Time) models.UserStats {
	streak := analytics.Streak(history, now)
	completed := 0
	for _, e := range history {
		if e.Completed {
			completed++
		}
	}
	return models.UserStats{
		TotalWorkouts:   completed,
		TotalVolume:     analytics.TotalVolume(history),
		CurrentStreak:   streak.Current,
		LongestStreak:   streak.Longest,
		LastWorkoutDate: streak.LastDate,
	}
}

//
// Session CRUD
//

// AddSession appends a session, stamping its creation time.
func (s *Store) AddSession(session models.Session) bool {
	session.CreatedAt = time.Now()
	s.mu.RLock()
	next := s.state
	s.mu.RUnlock()
	next.Sessions = append(append([]models.Session{}, next.Sessions...), session)
	return s.install(next)
}

// SessionUpdate carries the fields UpdateSession may change; nil means keep.
type SessionUpdate struct {
	Name      *string
	Exercises *[]models.Exercise
}

// UpdateSession applies a partial update and stamps the session's
// updated-at time.
func (s *Store) UpdateSession(sessionID string, updates SessionUpdate) bool {
	now := time.Now()
	return s.updateOneSession(sessionID, func(session *models.Session) {
		if updates.Name != nil {
			session.Name = *updates.Name
		}
		if updates.Exercises != nil {
			session.Exercises = *updates.Exercises
		}
		session.UpdatedAt = &now
	})
}

func (s *Store) DeleteSession(sessionID string) bool {
	s.mu.RLock()
	next := s.state
	s.mu.RUnlock()

	sessions := make([]models.Session, 0, len(next.Sessions))
	for _, session := range next.Sessions {
		if session.ID != sessionID {
			sessions = append(sessions, session)
		}
	}
	next.Sessions = sessions
	return s.install(next)
}

// DuplicateSession deep-copies a session under a fresh id, regenerating the
// id of every contained exercise as well, and marks the copy in its name.
func (s *Store) DuplicateSession(sessionID string) (*models.Session, bool) {
	source := s.GetSession(sessionID)
	if source == nil {
		return nil, false
	}

	dup := *source
	dup.ID = uuid.New().String()
	dup.Name = source.Name + " (copie)"
	dup.CreatedAt = time.Now()
	dup.UpdatedAt = nil
	dup.Exercises = make([]models.Exercise, len(source.Exercises))
	for i, ex := range source.Exercises {
		ex.ID = uuid.New().String()
		dup.Exercises[i] = ex
	}

	s.mu.RLock()
	next := s.state
	s.mu.RUnlock()
	next.Sessions = append(append([]models.Session{}, next.Sessions...), dup)
	ok := s.install(next)
	return &dup, ok
}

//
// Exercise CRUD within a session
//

func (s *Store) AddExerciseToSession(sessionID string, ex models.Exercise) bool {
	now := time.Now()
	return s.updateOneSession(sessionID, func(session *models.Session) {
		session.Exercises = append(append([]models.Exercise{}, session.Exercises...), ex)
		session.UpdatedAt = &now
	})
}

// ExerciseUpdate carries the fields UpdateExerciseInSession may change.
type ExerciseUpdate struct {
	Name         *string
	Sets         *models.IntOrString
	Reps         *models.IntOrString
	RestTime     *string
	VideoURL     *string
	Category     *string
	Notes        *string
	TargetWeight *float64
}

func (s *Store) UpdateExerciseInSession(sessionID, exerciseID string, updates ExerciseUpdate) bool {
	now := time.Now()
	return s.updateOneSession(sessionID, func(session *models.Session) {
		exercises := append([]models.Exercise{}, session.Exercises...)
		for i := range exercises {
			if exercises[i].ID != exerciseID {
				continue
			}
			applyExerciseUpdate(&exercises[i], updates)
			break
		}
		session.Exercises = exercises
		session.UpdatedAt = &now
	})
}

func applyExerciseUpdate(ex *models.Exercise, updates ExerciseUpdate) {
	if updates.Name != nil {
		ex.Name = *updates.Name
	}
	if updates.Sets != nil {
		ex.Sets = *updates.Sets
	}
	if updates.Reps != nil {
		ex.Reps = *updates.Reps
	}
	if updates.RestTime != nil {
		ex.RestTime = *updates.RestTime
	}
	if updates.VideoURL != nil {
		ex.VideoURL = *updates.VideoURL
	}
	if updates.Category != nil {
		ex.Category = *updates.Category
	}
	if updates.Notes != nil {
		ex.Notes = *updates.Notes
	}
	if updates.TargetWeight != nil {
		ex.TargetWeight = *updates.TargetWeight
	}
}

func (s *Store) RemoveExerciseFromSession(sessionID, exerciseID string) bool {
	now := time.Now()
	return s.updateOneSession(sessionID, func(session *models.Session) {
		exercises := make([]models.Exercise, 0, len(session.Exercises))
		for _, ex := range session.Exercises {
			if ex.ID != exerciseID {
				exercises = append(exercises, ex)
			}
		}
		session.Exercises = exercises
		session.UpdatedAt = &now
	})
}

// ReorderExercisesInSession replaces the session's exercise list wholesale;
// the caller supplies the new order.
func (s *Store) ReorderExercisesInSession(sessionID string, exercises []models.Exercise) bool {
	now := time.Now()
	return s.updateOneSession(sessionID, func(session *models.Session) {
		session.Exercises = append([]models.Exercise{}, exercises...)
		session.UpdatedAt = &now
	})
}

func (s *Store) updateOneSession(sessionID string, apply func(*models.Session)) bool {
	s.mu.RLock()
	next := s.state
	s.mu.RUnlock()

	sessions := append([]models.Session{}, next.Sessions...)
	for i := range sessions {
		if sessions[i].ID == sessionID {
			apply(&sessions[i])
			break
		}
	}
	next.Sessions = sessions
	return s.install(next)
}

//
// Settings, history, custom exercises
//

// SettingsUpdate carries the fields UpdateSettings may change.
type SettingsUpdate struct {
	UserName        *string
	DefaultRestTime *int
	Theme           *string
}

func (s *Store) UpdateSettings(updates SettingsUpdate) bool {
	s.mu.RLock()
	next := s.state
	s.mu.RUnlock()

	if updates.UserName != nil {
		next.Settings.UserName = *updates.UserName
	}
	if updates.DefaultRestTime != nil {
		next.Settings.DefaultRestTime = *updates.DefaultRestTime
	}
	if updates.Theme != nil {
		next.Settings.Theme = *updates.Theme
	}
	return s.install(next)
}

// ClearHistory wipes the history and zeroes the stats.
func (s *Store) ClearHistory() bool {
	s.mu.RLock()
	next := s.state
	s.mu.RUnlock()

	next.History = []models.WorkoutEntry{}
	next.UserStats = models.UserStats{}
	return s.install(next)
}

// DeleteHistoryEntry removes one entry and recomputes the stats from what
// remains. Unlike CompleteWorkout this may shrink the longest streak: the
// entry that carried it is gone.
func (s *Store) DeleteHistoryEntry(entryID string) bool {
	s.mu.RLock()
	next := s.state
	s.mu.RUnlock()

	history := make([]models.WorkoutEntry, 0, len(next.History))
	for _, entry := range next.History {
		if entry.ID != entryID {
			history = append(history, entry)
		}
	}
	next.History = history
	next.UserStats = recomputeStats(history, time.Now())
	return s.install(next)
}

// AddCustomExercise stores a user-authored library entry under a fresh
// custom- id, so the library can tell it apart from the built-in catalog.
func (s *Store) AddCustomExercise(template models.ExerciseTemplate) (models.ExerciseTemplate, bool) {
	template.ID = catalog.CustomIDPrefix + uuid.New().String()

	s.mu.RLock()
	next := s.state
	s.mu.RUnlock()
	next.CustomExercises = append(append([]models.ExerciseTemplate{}, next.CustomExercises...), template)
	ok := s.install(next)
	return template, ok
}

// TemplateUpdate carries the fields UpdateCustomExercise may change.
type TemplateUpdate struct {
	Name            *string
	DefaultSets     *models.IntOrString
	DefaultReps     *models.IntOrString
	DefaultRestTime *string
	VideoURL        *string
	Notes           *string
	MuscleGroup     *string
}

func (s *Store) UpdateCustomExercise(id string, updates TemplateUpdate) bool {
	s.mu.RLock()
	next := s.state
	s.mu.RUnlock()

	customs := append([]models.ExerciseTemplate{}, next.CustomExercises...)
	for i := range customs {
		if customs[i].ID != id {
			continue
		}
		if updates.Name != nil {
			customs[i].Name = *updates.Name
		}
		if updates.DefaultSets != nil {
			customs[i].DefaultSets = *updates.DefaultSets
		}
		if updates.DefaultReps != nil {
			customs[i].DefaultReps = *updates.DefaultReps
		}
		if updates.DefaultRestTime != nil {
			customs[i].DefaultRestTime = *updates.DefaultRestTime
		}
		if updates.VideoURL != nil {
			customs[i].VideoURL = *updates.VideoURL
		}
		if updates.Notes != nil {
			customs[i].Notes = *updates.Notes
		}
		if updates.MuscleGroup != nil {
			customs[i].MuscleGroup = *updates.MuscleGroup
		}
		break
	}
	next.CustomExercises = customs
	return s.install(next)
}

func (s *Store) DeleteCustomExercise(id string) bool {
	s.mu.RLock()
	next := s.state
	s.mu.RUnlock()

	customs := make([]models.ExerciseTemplate, 0, len(next.CustomExercises))
	for _, t := range next.CustomExercises {
		if t.ID != id {
			customs = append(customs, t)
		}
	}
	next.CustomExercises = customs
	return s.install(next)
}

//
// Import / export
//

// ExportDocument is the full state plus the export stamp and schema tag.
type ExportDocument struct {
	models.AppState
	ExportedAt time.Time `json:"exportedAt"`
	Version    string    `json:"version"`
}

// ExportData snapshots the current state for serialization. Pure read.
func (s *Store) ExportData() ExportDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ExportDocument{
		AppState:   s.state,
		ExportedAt: time.Now(),
		Version:    ExportVersion,
	}
}

// importDocument reads an exported file. Sessions is a pointer so a missing
// array (as opposed to an empty one) is detectable and rejected. Extra
// fields like exportedAt and version are simply ignored.
type importDocument struct {
	Sessions        *[]models.Session         `json:"sessions"`
	History         []models.WorkoutEntry     `json:"history"`
	PersonalRecords []models.PersonalRecord   `json:"personalRecords"`
	UserStats       *models.UserStats         `json:"userStats"`
	Settings        *models.AppSettings       `json:"settings"`
	CustomExercises []models.ExerciseTemplate `json:"customExercises"`
}

// ImportData replaces the whole state from an exported document, defaulting
// any missing field. A document without a sessions array is rejected with
// no mutation at all.
func (s *Store) ImportData(raw []byte) bool {
	var doc importDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		logrus.WithError(err).Warn("import failed: unparsable document")
		return false
	}
	if doc.Sessions == nil {
		logrus.Warn("import failed: document has no sessions array")
		return false
	}

	next := storage.DefaultState()
	next.Sessions = *doc.Sessions
	next.PersonalRecords = []models.PersonalRecord{}
	if doc.History != nil {
		next.History = doc.History
	}
	if doc.PersonalRecords != nil {
		next.PersonalRecords = doc.PersonalRecords
	}
	if doc.UserStats != nil {
		next.UserStats = *doc.UserStats
	}
	if doc.Settings != nil {
		next.Settings = *doc.Settings
	}
	if doc.CustomExercises != nil {
		next.CustomExercises = doc.CustomExercises
	}

	s.install(next)
	return true
}

//
// Helpers
//

func dayOf(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

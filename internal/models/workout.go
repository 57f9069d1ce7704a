package models

import "time"

// Exercise categories, in the order they appear within a session.
const (
	CategoryWarmup   = "warmup"
	CategoryMain     = "main"
	CategorySuperset = "superset"
	CategoryFinisher = "finisher"
)

// Exercise is a reusable exercise template inside a session: what to do,
// how many sets/reps, and how long to rest.
type Exercise struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Sets         IntOrString `json:"sets"`
	Reps         IntOrString `json:"reps"`
	RestTime     string      `json:"restTime,omitempty"` // Free text: "1 min 30", "45 s".
	VideoURL     string      `json:"videoUrl,omitempty"`
	Category     string      `json:"category,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	TargetWeight float64     `json:"targetWeight,omitempty"`
}

// Session is an ordered, user-editable list of exercises.
// Order is execution order.
type Session struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ExerciseLog snapshots one exercise of a session at workout start, plus the
// fields the user fills in during the workout. The snapshot is a value copy:
// later edits to the session never touch past or in-progress workouts.
//
// ExerciseName is the durable cross-session key (ids regenerate when a
// session is duplicated or an exercise customized).
type ExerciseLog struct {
	ExerciseID   string      `json:"exerciseId"`
	ExerciseName string      `json:"exerciseName"`
	Sets         IntOrString `json:"sets"`
	Reps         IntOrString `json:"reps"`
	RestTime     string      `json:"restTime,omitempty"`
	Weight       float64     `json:"weight"`
	Completed    bool        `json:"completed"`
	VideoURL     string      `json:"videoUrl,omitempty"`
	Category     string      `json:"category,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	TargetWeight float64     `json:"targetWeight,omitempty"`
}

// WorkoutEntry is one executed (or in-progress) workout. SessionID and
// SessionName are snapshots, so history survives deletion or renaming of the
// source session. A draft entry lives only with its holder until completed;
// only completed entries enter history.
type WorkoutEntry struct {
	ID          string        `json:"id"`
	SessionID   string        `json:"sessionId"`
	SessionName string        `json:"sessionName"`
	Date        time.Time     `json:"date"`
	Duration    int           `json:"duration,omitempty"` // Seconds.
	Exercises   []ExerciseLog `json:"exercises"`
	Completed   bool          `json:"completed"`
}

// PersonalRecord is the single best weight ever logged for an exercise name.
// Superseded records are discarded, not archived.
type PersonalRecord struct {
	ExerciseID   string      `json:"exerciseId"`
	ExerciseName string      `json:"exerciseName"`
	Weight       float64     `json:"weight"`
	Date         time.Time   `json:"date"`
	Reps         IntOrString `json:"reps"`
}

// UserStats is fully recomputed from history on every mutation that touches
// history; it is never edited directly.
type UserStats struct {
	TotalWorkouts   int        `json:"totalWorkouts"`
	TotalVolume     float64    `json:"totalVolume"` // kg lifted, weight x sets x reps.
	CurrentStreak   int        `json:"currentStreak"`
	LongestStreak   int        `json:"longestStreak"`
	LastWorkoutDate *time.Time `json:"lastWorkoutDate,omitempty"`
}

type AppSettings struct {
	UserName        string `json:"userName"`
	DefaultRestTime int    `json:"defaultRestTime"` // Seconds.
	Theme           string `json:"theme"`           // dark, light or system.
}

// ExerciseTemplate is a library catalog entry, either built-in or
// user-authored (custom ids carry the "custom-" prefix).
type ExerciseTemplate struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	DefaultSets     IntOrString `json:"defaultSets"`
	DefaultReps     IntOrString `json:"defaultReps"`
	DefaultRestTime string      `json:"defaultRestTime,omitempty"`
	VideoURL        string      `json:"videoUrl,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	MuscleGroup     string      `json:"muscleGroup,omitempty"`
}

// AppState is the root aggregate and the unit of persistence: the whole
// thing is read and written atomically as one JSON document.
type AppState struct {
	Sessions        []Session          `json:"sessions"`
	History         []WorkoutEntry     `json:"history"` // Most recent first.
	PersonalRecords []PersonalRecord   `json:"personalRecords"`
	UserStats       UserStats          `json:"userStats"`
	Settings        AppSettings        `json:"settings"`
	CustomExercises []ExerciseTemplate `json:"customExercises"`
}

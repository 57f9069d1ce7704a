// Package catalog holds the built-in exercise library. The library is
// read-only reference data; user-authored entries live in AppState as
// custom exercises and are merged in at read time.
package catalog

import (
	"strings"

	"github.com/florentv/irontrack/internal/models"
)

// CustomIDPrefix marks user-authored library entries. Anything without it is
// a built-in and refuses edit or delete.
const CustomIDPrefix = "custom-"

var builtins = []models.ExerciseTemplate{
	{
		ID:              "b_bodyweight_airsquat",
		Name:            "Air Squat",
		DefaultSets:     models.FromInt(3),
		DefaultReps:     models.FromString("20"),
		DefaultRestTime: "45 s",
		VideoURL:        "https://www.youtube.com/results?search_query=air+squat+technique",
		Notes:           "Squat au poids du corps, descente profonde.",
		MuscleGroup:     "Quadriceps",
	},
	{
		ID:              "h3_iso_bicep_larry",
		Name:            "Biceps Curl Larry Scott",
		DefaultSets:     models.FromInt(3),
		DefaultReps:     models.FromString("10"),
		DefaultRestTime: "1 min",
		VideoURL:        "https://www.youtube.com/results?search_query=larry+scott+curl+biceps",
		Notes:           "Sur pupitre incliné, isolation maximale du biceps.",
		MuscleGroup:     "Biceps",
	},
	{
		ID:              "b_sante_bird",
		Name:            "Bird Dog",
		DefaultSets:     models.FromInt(2),
		DefaultReps:     models.FromString("5 / côté"),
		DefaultRestTime: "45 s",
		VideoURL:        "https://www.youtube.com/watch?v=wiFNA3sqjCA",
		Notes:           "Équilibre et stabilité lombaire.",
		MuscleGroup:     "Gainage / Core",
	},
	{
		ID:              "b_iso_bulgarian",
		Name:            "Bulgarian Split Squat",
		DefaultSets:     models.FromInt(3),
		DefaultReps:     models.FromString("12"),
		DefaultRestTime: "1 min",
		VideoURL:        "https://www.youtube.com/watch?v=2C-uNgKwPLE",
		Notes:           "Pied arrière surélevé, focus fessier.",
		MuscleGroup:     "Quadriceps / Fessiers",
	},
	{
		ID:              "h3_sante_lu",
		Name:            "Cercle de Lu",
		DefaultSets:     models.FromInt(1),
		DefaultReps:     models.FromString("15"),
		DefaultRestTime: "0",
		VideoURL:        "https://www.youtube.com/watch?v=bcd86P6P_c8",
		Notes:           "Mouvement fluide, amplitude maximale.",
		MuscleGroup:     "Mobilité épaules",
	},
	{
		ID:              "b_force_rdl",
		Name:            "Deadlift roumain (RDL)",
		DefaultSets:     models.FromInt(4),
		DefaultReps:     models.FromString("10"),
		DefaultRestTime: "1 min 30",
		VideoURL:        "https://www.youtube.com/watch?v=JCXUYuzwvgQ",
		Notes:           "Sentir l'étirement, barre contre les cuisses.",
		MuscleGroup:     "Ischios / Fessiers",
	},
	{
		ID:              "h1_force_dc",
		Name:            "Développé couché haltères",
		DefaultSets:     models.FromInt(4),
		DefaultReps:     models.FromString("8"),
		DefaultRestTime: "2 min",
		VideoURL:        "https://www.youtube.com/watch?v=vj2w851ZpEE",
		Notes:           "Trajectoire stable, contrôle de la descente.",
		MuscleGroup:     "Poitrine",
	},
	{
		ID:              "h2_hyper_dm",
		Name:            "Développé militaire haltères",
		DefaultSets:     models.FromInt(3),
		DefaultReps:     models.FromString("8"),
		DefaultRestTime: "1 min 30",
		VideoURL:        "https://www.youtube.com/watch?v=qEwKCR5JCog",
		Notes:           "Sur banc, extension complète des bras.",
		MuscleGroup:     "Épaules",
	},
	{
		ID:              "h1_calis_dips_r",
		Name:            "Dips sur anneaux",
		DefaultSets:     models.FromInt(4),
		DefaultReps:     models.FromString("12"),
		DefaultRestTime: "2 min",
		VideoURL:        "https://www.youtube.com/watch?v=Ikeg_v5fvz4",
		Notes:           "Épaules doivent toucher les anneaux.",
		MuscleGroup:     "Poitrine / Triceps",
	},
	{
		ID:              "elliptique",
		Name:            "Elliptique",
		DefaultSets:     models.FromInt(1),
		DefaultReps:     models.FromString("5 min"),
		DefaultRestTime: "1 min",
		VideoURL:        "https://www.youtube.com/watch?v=bcd86P6P_c8",
		Notes:           "Échauffement cardio.",
		MuscleGroup:     "Cardio",
	},
	{
		ID:              "h1_calis_hspu",
		Name:            "Handstand Push Ups (HSPU)",
		DefaultSets:     models.FromInt(3),
		DefaultReps:     models.FromString("5"),
		DefaultRestTime: "1 min 30",
		VideoURL:        "https://www.youtube.com/watch?v=DBv3BvBS4H8",
		Notes:           "Corps gainé, ne pas cambrer excessivement.",
		MuscleGroup:     "Épaules",
	},
	{
		ID:              "h1_calis_muscleup",
		Name:            "Muscle up aux anneaux (assisté)",
		DefaultSets:     models.FromInt(4),
		DefaultReps:     models.FromString("3"),
		DefaultRestTime: "2 min",
		VideoURL:        "https://www.youtube.com/watch?v=pXiGenBKjWk",
		Notes:           "Pieds à plat = simple, sur pointe = difficile.",
		MuscleGroup:     "Dos / Full Body",
	},
	{
		ID:              "h1_force_traction_l",
		Name:            "Traction lestée",
		DefaultSets:     models.FromInt(3),
		DefaultReps:     models.FromString("6"),
		DefaultRestTime: "2 min",
		VideoURL:        "https://www.youtube.com/watch?v=mr74_9VkeOk",
		Notes:           "Passer le menton au-dessus de la barre.",
		MuscleGroup:     "Dos",
	},
	{
		ID:              "h1_iso_triceps_poulie",
		Name:            "Extension triceps poulie",
		DefaultSets:     models.FromInt(3),
		DefaultReps:     models.FromString("8-10"),
		DefaultRestTime: "1 min",
		VideoURL:        "https://www.youtube.com/watch?v=3Hxs9xZQm7A",
		Notes:           "Tempo explosif montée, 2s retenue descente.",
		MuscleGroup:     "Triceps",
	},
}

// All returns a copy of the built-in library.
func All() []models.ExerciseTemplate {
	out := make([]models.ExerciseTemplate, len(builtins))
	copy(out, builtins)
	return out
}

// Merged returns the full browsable library: built-ins first, then the
// user's custom exercises.
func Merged(custom []models.ExerciseTemplate) []models.ExerciseTemplate {
	return append(All(), custom...)
}

// IsBuiltin reports whether an id belongs to the fixed catalog rather than a
// user-authored entry.
func IsBuiltin(id string) bool {
	return !strings.HasPrefix(id, CustomIDPrefix)
}

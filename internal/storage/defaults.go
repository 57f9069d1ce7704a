package storage

import (
	"time"

	"github.com/florentv/irontrack/internal/models"
)

// Seed content shown on first launch, before the user has created anything.

func defaultSessions(now time.Time) []models.Session {
	return []models.Session{
		{
			ID:        "haut-corps-1",
			Name:      "Haut du corps 1 (Force & Skills)",
			CreatedAt: now,
			Exercises: []models.Exercise{
				{
					ID:       "elliptique",
					Name:     "Elliptique",
					Sets:     models.FromInt(1),
					Reps:     models.FromString("5 min"),
					RestTime: "1 min",
					Category: models.CategoryWarmup,
					Notes:    "Échauffement cardio initial - Résistance 8-12",
					VideoURL: "https://www.youtube.com/watch?v=bcd86P6P_c8",
				},
				{
					ID:       "cercle-lu",
					Name:     "Cercle de Lu",
					Sets:     models.FromInt(1),
					Reps:     models.FromString("15"),
					RestTime: "0",
					Category: models.CategoryWarmup,
					Notes:    "Effectuer des cercles ronds jusqu'à sentir la chauffe - 2.5 kg / main",
					VideoURL: "https://www.youtube.com/watch?v=bcd86P6P_c8",
				},
				{
					ID:       "muscle-up-anneaux",
					Name:     "Muscle up aux anneaux (assisté)",
					Sets:     models.FromInt(4),
					Reps:     models.FromString("3"),
					RestTime: "2 min",
					Category: models.CategoryMain,
					Notes:    "Pieds à plat = simple, sur pointe = difficile",
					VideoURL: "https://www.youtube.com/watch?v=pXiGenBKjWk",
				},
				{
					ID:       "dips-anneaux",
					Name:     "Dips sur anneaux",
					Sets:     models.FromInt(4),
					Reps:     models.FromString("12"),
					RestTime: "2 min",
					Category: models.CategoryMain,
					Notes:    "Les épaules doivent toucher les anneaux à chaque rep",
					VideoURL: "https://www.youtube.com/watch?v=Ikeg_v5fvz4",
				},
				{
					ID:       "dev-couche-halteres",
					Name:     "Développé couché haltères",
					Sets:     models.FromInt(4),
					Reps:     models.FromString("8"),
					RestTime: "1 min 30",
					Category: models.CategoryMain,
					Notes:    "Garder une trajectoire stable",
					VideoURL: "https://www.youtube.com/watch?v=vj2w851ZpEE",
				},
				{
					ID:       "traction-lestee",
					Name:     "Traction lestée",
					Sets:     models.FromInt(3),
					Reps:     models.FromString("6"),
					RestTime: "2 min",
					Category: models.CategoryMain,
					Notes:    "Passer le menton au-dessus de la barre",
					VideoURL: "https://www.youtube.com/watch?v=mr74_9VkeOk",
				},
				{
					ID:       "hspu",
					Name:     "Handstand Push Ups (HSPU)",
					Sets:     models.FromInt(3),
					Reps:     models.FromString("5"),
					RestTime: "1 min 30",
					Category: models.CategoryMain,
					Notes:    "Garder le corps gainé, ne pas cambrer excessivement",
					VideoURL: "https://www.youtube.com/watch?v=DBv3BvBS4H8",
				},
				{
					ID:       "extension-triceps-poulie",
					Name:     "Extension triceps poulie",
					Sets:     models.FromInt(3),
					Reps:     models.FromString("8-10"),
					RestTime: "1 min",
					Category: models.CategoryFinisher,
					Notes:    "Tempo explosif montée, 2s retenue descente",
					VideoURL: "https://www.youtube.com/watch?v=3Hxs9xZQm7A",
				},
			},
		},
		{
			ID:        "bas-corps",
			Name:      "Bas du Corps (Cardio & Mobilité)",
			CreatedAt: now,
			Exercises: []models.Exercise{
				{
					ID:       "tapis-incline",
					Name:     "Tapis Roulant (Incliné)",
					Sets:     models.FromInt(1),
					Reps:     models.FromString("5 min"),
					RestTime: "2 min",
					Category: models.CategoryWarmup,
					Notes:    "Marche active inclinée pour préparer les hanches - Pente 15% / 5km/h",
					VideoURL: "https://www.youtube.com/watch?v=kIvFkHdIpqI",
				},
				{
					ID:       "bird-dog",
					Name:     "Bird Dog",
					Sets:     models.FromInt(2),
					Reps:     models.FromString("10"),
					RestTime: "45 s",
					Category: models.CategoryMain,
					Notes:    "Focus sur la stabilité du tronc, ne pas pivoter le bassin",
					VideoURL: "https://www.youtube.com/watch?v=-LRjkbEy-qU",
				},
				{
					ID:       "planche-laterale",
					Name:     "Planche latérale lestée",
					Sets:     models.FromInt(3),
					Reps:     models.FromString("40 sec"),
					RestTime: "30 s",
					Category: models.CategoryFinisher,
					Notes:    "Poids posé sur la hanche supérieure",
					VideoURL: "https://www.youtube.com/watch?v=YrcNsxTwLBA",
				},
			},
		},
		{
			ID:        "haut-corps-3",
			Name:      "Haut du corps 3 (Postural)",
			CreatedAt: now,
			Exercises: []models.Exercise{
				{
					ID:       "traction-scapulaire",
					Name:     "Traction scapulaire",
					Sets:     models.FromInt(2),
					Reps:     models.FromString("10"),
					RestTime: "45 s",
					Category: models.CategoryWarmup,
					Notes:    "Bras tendus, mouvement initié uniquement par les omoplates",
					VideoURL: "https://www.youtube.com/watch?v=-ZIpSoTRsuE",
				},
				{
					ID:       "traction-australienne",
					Name:     "Traction australienne",
					Sets:     models.FromInt(2),
					Reps:     models.FromString("12"),
					RestTime: "1 min",
					Category: models.CategoryMain,
					Notes:    "Poitrine vers les anneaux, corps droit",
					VideoURL: "https://www.youtube.com/watch?v=dnpDUwqMX04",
				},
			},
		},
	}
}

func defaultPersonalRecords(now time.Time) []models.PersonalRecord {
	return []models.PersonalRecord{
		{ExerciseID: "dev-couche-halteres", ExerciseName: "Développé couché haltères", Weight: 32, Date: now, Reps: models.FromString("8")},
		{ExerciseID: "traction-lestee", ExerciseName: "Traction lestée", Weight: 20, Date: now, Reps: models.FromString("6")},
		{ExerciseID: "extension-triceps-poulie", ExerciseName: "Extension triceps poulie", Weight: 15, Date: now, Reps: models.FromString("8-10")},
		{ExerciseID: "planche-laterale", ExerciseName: "Planche latérale lestée", Weight: 10, Date: now, Reps: models.FromString("40 sec")},
	}
}

func defaultSettings() models.AppSettings {
	return models.AppSettings{
		UserName:        "Florent",
		DefaultRestTime: 90,
		Theme:           "dark",
	}
}

// DefaultState builds the built-in first-launch AppState.
func DefaultState() models.AppState {
	now := time.Now()
	return models.AppState{
		Sessions:        defaultSessions(now),
		History:         []models.WorkoutEntry{},
		PersonalRecords: defaultPersonalRecords(now),
		UserStats:       models.UserStats{},
		Settings:        defaultSettings(),
		CustomExercises: []models.ExerciseTemplate{},
	}
}

package selection

import "github.com/abhisek/medquiz/internal/performance"

// Difficulty classifies an item by the learner's track record with it.
type Difficulty string

const (
	DifficultyNew    Difficulty = "new"
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// MinAttemptsToClassify is the sample-size floor below which accuracy is
// meaningless and everything classifies as new.
const MinAttemptsToClassify = 3

// Accuracy boundaries, both inclusive on the lower side.
const (
	EasyAccuracy   = 0.85
	MediumAccuracy = 0.51
)

// Classify maps an item's performance record to a difficulty bucket.
// A nil record means the item has never been seen.
func Classify(rec *performance.Record) Difficulty {
	if rec == nil || rec.Attempts() < MinAttemptsToClassify {
		return DifficultyNew
	}

	acc := rec.Accuracy()
	switch {
	case acc >= EasyAccuracy:
		return DifficultyEasy
	case acc >= MediumAccuracy:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

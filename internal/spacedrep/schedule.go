package spacedrep

// DefaultEaseFactor is the starting ease factor for an unseen item.
const DefaultEaseFactor = 2.5

// MinEaseFactor is the floor the ease factor can never drop below.
const MinEaseFactor = 1.3

// MaxIntervalDays caps every review interval.
const MaxIntervalDays = 14

// FirstIntervalDays is the interval after the first correct review.
const FirstIntervalDays = 1

// SecondIntervalDays is the interval after the second consecutive correct review.
const SecondIntervalDays = 6

// Quality scores for the binary outcome mapping. The full 0-5 SM-2 scale
// is deliberately not exposed; answers are either correct or not.
const (
	QualityCorrect   = 4
	QualityIncorrect = 1
)

// TrickyIntervalFactor halves the interval for tricky-marked items.
const TrickyIntervalFactor = 0.5

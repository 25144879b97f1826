package models

import (
	"errors"
	"time"
)

// MoodLabel is one of the fixed mood vocabulary values.
type MoodLabel string

const (
	MoodEcstatic MoodLabel = "ecstatic"
	MoodHappy    MoodLabel = "happy"
	MoodGood     MoodLabel = "good"
	MoodOkay     MoodLabel = "okay"
	MoodMeh      MoodLabel = "meh"
	MoodDown     MoodLabel = "down"
	MoodSad      MoodLabel = "sad"
	MoodAnxious  MoodLabel = "anxious"
	MoodStressed MoodLabel = "stressed"
	MoodTerrible MoodLabel = "terrible"
)

// MoodLabels lists the vocabulary from best to worst.
var MoodLabels = []MoodLabel{
	MoodEcstatic, MoodHappy, MoodGood, MoodOkay, MoodMeh,
	MoodDown, MoodSad, MoodAnxious, MoodStressed, MoodTerrible,
}

const (
	MinIntensity = 1
	MaxIntensity = 10
)

var (
	ErrInvalidMood      = errors.New("unknown mood")
	ErrInvalidIntensity = errors.New("intensity must be between 1 and 10")
)

func (m MoodLabel) Valid() bool {
	for _, l := range MoodLabels {
		if l == m {
			return true
		}
	}
	return false
}

// MoodEntry is an immutable mood log record.
type MoodEntry struct {
	ID        string    `json:"id"`
	Mood      MoodLabel `json:"mood"`
	Intensity int       `json:"intensity"`
	Notes     string    `json:"notes"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidateMood checks a mood label and intensity before an entry is built.
func ValidateMood(mood MoodLabel, intensity int) error {
	if !mood.Valid() {
		return ErrInvalidMood
	}
	if intensity < MinIntensity || intensity > MaxIntensity {
		return ErrInvalidIntensity
	}
	return nil
}

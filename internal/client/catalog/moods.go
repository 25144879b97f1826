// Package catalog holds the static content of the MindMate client: mood
// options, habit categories and suggestions, crisis resources and the
// support room directory.
package catalog

import "github.com/dmitrijs2005/mindmate/internal/client/models"

type MoodOption struct {
	Label models.MoodLabel
	Emoji string
	Score int
}

var MoodOptions = []MoodOption{
	{models.MoodEcstatic, "🤩", 10},
	{models.MoodHappy, "😊", 9},
	{models.MoodGood, "😌", 8},
	{models.MoodOkay, "😐", 7},
	{models.MoodMeh, "😑", 6},
	{models.MoodDown, "😔", 5},
	{models.MoodSad, "😢", 4},
	{models.MoodAnxious, "😰", 3},
	{models.MoodStressed, "😫", 2},
	{models.MoodTerrible, "😭", 1},
}

// Mood looks up the option for label.
func Mood(label models.MoodLabel) (MoodOption, bool) {
	for _, m := range MoodOptions {
		if m.Label == label {
			return m, true
		}
	}
	return MoodOption{}, false
}

// Emoji returns the glyph for label, or "" when unknown.
func Emoji(label models.MoodLabel) string {
	m, _ := Mood(label)
	return m.Emoji
}

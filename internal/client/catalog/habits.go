package catalog

import "github.com/dmitrijs2005/mindmate/internal/client/models"

type Category struct {
	ID   models.HabitCategory
	Name string
}

var Categories = []Category{
	{models.CategoryMindfulness, "Mindfulness"},
	{models.CategoryExercise, "Exercise"},
	{models.CategoryJournaling, "Journaling"},
	{models.CategorySelfCare, "Self Care"},
	{models.CategoryLearning, "Learning"},
	{models.CategoryCreative, "Creative"},
}

// CategoryName returns the display name of id, or id itself when unknown.
func CategoryName(id models.HabitCategory) string {
	for _, c := range Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return string(id)
}

var SuggestedHabits = []models.HabitDraft{
	{Name: "Morning Meditation", Description: "10 minutes of mindfulness", Category: models.CategoryMindfulness},
	{Name: "Gratitude Journal", Description: "Write 3 things you're grateful for", Category: models.CategoryJournaling},
	{Name: "Evening Walk", Description: "20-minute walk in nature", Category: models.CategoryExercise},
	{Name: "Deep Breathing", Description: "5 minutes of deep breathing exercises", Category: models.CategoryMindfulness},
	{Name: "Read for Pleasure", Description: "15 minutes of reading", Category: models.CategoryLearning},
	{Name: "Hydration Check", Description: "Drink 8 glasses of water", Category: models.CategorySelfCare},
	{Name: "Digital Detox", Description: "1 hour without screens before bed", Category: models.CategorySelfCare},
	{Name: "Creative Writing", Description: "Write for 15 minutes", Category: models.CategoryCreative},
}

// SuggestionsFor returns the suggested habits the user does not have yet,
// compared by exact name.
func SuggestionsFor(existing []models.Habit) []models.HabitDraft {
	have := make(map[string]struct{}, len(existing))
	for _, h := range existing {
		have[h.Name] = struct{}{}
	}

	out := make([]models.HabitDraft, 0, len(SuggestedHabits))
	for _, s := range SuggestedHabits {
		if _, ok := have[s.Name]; !ok {
			out = append(out, s)
		}
	}
	return out
}

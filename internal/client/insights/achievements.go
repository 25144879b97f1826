package insights

type Achievement struct {
	Title       string
	Description string
	Icon        string
	Earned      bool
}

// Achievements evaluates the badge list against s. "Community Member" is
// never earned since room membership is not tracked.
func Achievements(s Summary) []Achievement {
	return []Achievement{
		{"First Steps", "Completed your first mood check-in", "🎯", s.TotalMoods > 0},
		{"Habit Builder", "Created your first habit", "🏗️", s.TotalHabits > 0},
		{"Streak Master", "Maintained a 7-day habit streak", "🔥", s.LongestStreak >= 7},
		{"Mood Tracker", "Logged 10 mood entries", "📊", s.TotalMoods >= 10},
		{"Consistency Champion", "Completed all habits for a day", "👑", s.TotalHabits > 0 && s.CompletedHabits == s.TotalHabits},
		{"Community Member", "Joined a support room", "🤝", false},
	}
}

// Earned filters a to the achievements that were earned.
func Earned(a []Achievement) []Achievement {
	var out []Achievement
	for _, x := range a {
		if x.Earned {
			out = append(out, x)
		}
	}
	return out
}

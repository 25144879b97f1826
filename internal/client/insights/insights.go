// Package insights derives dashboard figures from a user's moods and
// habits: totals, averages, the weekly mood chart and achievements.
package insights

import (
	"math"
	"time"

	"github.com/dmitrijs2005/mindmate/internal/client/models"
)

type Summary struct {
	TotalMoods      int
	TotalHabits     int
	CompletedHabits int
	LongestStreak   int
	// AverageMood is the mean intensity, 0 without moods.
	AverageMood float64
	// CompletionRate is the rounded percentage of completed habits.
	CompletionRate int
	IsNewUser      bool
}

func Summarize(moods []models.MoodEntry, habits []models.Habit) Summary {
	s := Summary{
		TotalMoods:  len(moods),
		TotalHabits: len(habits),
		IsNewUser:   len(moods) == 0 && len(habits) == 0,
	}

	for _, h := range habits {
		if h.Completed {
			s.CompletedHabits++
		}
		if h.Streak > s.LongestStreak {
			s.LongestStreak = h.Streak
		}
	}
	if s.TotalHabits > 0 {
		s.CompletionRate = int(math.Round(float64(s.CompletedHabits) / float64(s.TotalHabits) * 100))
	}

	s.AverageMood = averageIntensity(moods)
	return s
}

func averageIntensity(moods []models.MoodEntry) float64 {
	if len(moods) == 0 {
		return 0
	}
	sum := 0
	for _, m := range moods {
		sum += m.Intensity
	}
	return float64(sum) / float64(len(moods))
}

// Day is one point of the weekly mood chart.
type Day struct {
	Date    time.Time
	Average float64 // 0 when no mood was logged that day
	IsToday bool
}

// WeeklyMood returns seven daily intensity averages ending on now's day,
// oldest first. Days are calendar days in now's location.
func WeeklyMood(moods []models.MoodEntry, now time.Time) []Day {
	loc := now.Location()
	today := startOfDay(now)

	days := make([]Day, 7)
	for i := range days {
		d := today.AddDate(0, 0, i-6)
		var dayMoods []models.MoodEntry
		for _, m := range moods {
			if startOfDay(m.Timestamp.In(loc)).Equal(d) {
				dayMoods = append(dayMoods, m)
			}
		}
		days[i] = Day{Date: d, Average: averageIntensity(dayMoods), IsToday: i == 6}
	}
	return days
}

// WeeklyAverage averages the days of week that have any mood logged.
func WeeklyAverage(week []Day) float64 {
	sum, n := 0.0, 0
	for _, d := range week {
		if d.Average > 0 {
			sum += d.Average
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// TodaysMood returns the newest mood logged on now's calendar day.
func TodaysMood(moods []models.MoodEntry, now time.Time) (models.MoodEntry, bool) {
	today := startOfDay(now)
	for _, m := range moods {
		if startOfDay(m.Timestamp.In(now.Location())).Equal(today) {
			return m, true
		}
	}
	return models.MoodEntry{}, false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

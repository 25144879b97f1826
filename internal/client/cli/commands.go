package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mindmate/internal/client/catalog"
	"github.com/dmitrijs2005/mindmate/internal/client/chat"
	"github.com/dmitrijs2005/mindmate/internal/client/insights"
	"github.com/dmitrijs2005/mindmate/internal/client/models"
)

const timeLayout = "2006-01-02 15:04"

var errUsage = errors.New("usage")

func usage(text string) error {
	printlnFn("Usage:", text)
	return errUsage
}

// Mood handles "mood <name> <1-10> [notes...]".
func (a *App) Mood(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("mood <name> <1-10> [notes]")
	}
	intensity, err := strconv.Atoi(args[1])
	if err != nil {
		return usage("mood <name> <1-10> [notes]")
	}

	label := models.MoodLabel(strings.ToLower(args[0]))
	entry, err := a.data.AddMoodEntry(ctx, label, intensity, strings.Join(args[2:], " "))
	if err != nil {
		printlnFn("Error:", err.Error())
		if errors.Is(err, models.ErrInvalidMood) {
			printlnFn("Moods:", joinMoods())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Logged %s %s (%d/10)", catalog.Emoji(entry.Mood), entry.Mood, entry.Intensity))
	return nil
}

func joinMoods() string {
	names := make([]string, 0, len(models.MoodLabels))
	for _, m := range models.MoodLabels {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

func (a *App) Moods(ctx context.Context) error {
	moods := a.data.State().Moods
	if len(moods) == 0 {
		printlnFn("No moods logged yet. Try: mood happy 8")
		return nil
	}
	for _, m := range moods {
		line := fmt.Sprintf("%s  %s %-9s %2d/10", m.Timestamp.Local().Format(timeLayout), catalog.Emoji(m.Mood), m.Mood, m.Intensity)
		if m.Notes != "" {
			line += "  " + m.Notes
		}
		printlnFn(line)
	}
	return nil
}

// Habit handles "habit <category> <name...>" and asks for an optional
// description.
func (a *App) Habit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("habit <category> <name>")
	}

	desc, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	h, err := a.data.AddHabit(ctx, models.HabitDraft{
		Name:        strings.Join(args[1:], " "),
		Description: desc,
		Category:    models.HabitCategory(strings.ToLower(args[0])),
	})
	if err != nil {
		printlnFn("Error:", err.Error())
		if errors.Is(err, models.ErrInvalidCategory) {
			printlnFn("Categories:", joinCategories())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Added habit %s [%s]", h.Name, h.ID))
	return nil
}

func joinCategories() string {
	names := make([]string, 0, len(models.HabitCategories))
	for _, c := range models.HabitCategories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func (a *App) Habits(ctx context.Context) error {
	habits := a.data.State().Habits
	if len(habits) == 0 {
		printlnFn("No habits yet. Try: suggest")
		return nil
	}
	for _, h := range habits {
		mark := " "
		if h.Completed {
			mark = "x"
		}
		printlnFn(fmt.Sprintf("[%s] %s  %s (%s) streak %d", mark, h.ID, h.Name, catalog.CategoryName(h.Category), h.Streak))
	}
	return nil
}

func (a *App) Suggest(ctx context.Context) error {
	s := catalog.SuggestionsFor(a.data.State().Habits)
	if len(s) == 0 {
		printlnFn("You have added every suggested habit.")
		return nil
	}
	for _, d := range s {
		printlnFn(fmt.Sprintf("habit %s %s  - %s", d.Category, d.Name, d.Description))
	}
	return nil
}

// Toggle handles "toggle <id>".
func (a *App) Toggle(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("toggle <id>")
	}

	h, ok := a.data.ToggleHabit(ctx, args[0])
	if !ok {
		printlnFn("No habit with id", args[0])
		return nil
	}
	if h.Completed {
		printlnFn(fmt.Sprintf("Done: %s (streak %d)", h.Name, h.Streak))
	} else {
		printlnFn(fmt.Sprintf("Not done: %s", h.Name))
	}
	return nil
}

// Chat handles "chat <text...>". Without text it prints the greeting and
// the quick prompts.
func (a *App) Chat(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("AI:", chat.Greeting)
		printlnFn("Try:", strings.Join(chat.QuickPrompts, " | "))
		return nil
	}

	ex, err := a.data.SendChatMessage(ctx, strings.Join(args, " "))
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("AI:", ex.AIResponse.Content)
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	st := a.data.State()
	now := a.now()
	sum := insights.Summarize(st.Moods, st.Habits)

	if sum.IsNewUser {
		printlnFn("Nothing tracked yet. Log a mood or add a habit to see your insights.")
	}
	printlnFn(fmt.Sprintf("Moods logged: %d  Average mood: %.1f", sum.TotalMoods, sum.AverageMood))
	printlnFn(fmt.Sprintf("Habits: %d  Completed: %d (%d%%)  Longest streak: %d",
		sum.TotalHabits, sum.CompletedHabits, sum.CompletionRate, sum.LongestStreak))

	if m, ok := insights.TodaysMood(st.Moods, now); ok {
		printlnFn(fmt.Sprintf("Today: %s %s (%d/10)", catalog.Emoji(m.Mood), m.Mood, m.Intensity))
	}

	week := insights.WeeklyMood(st.Moods, now)
	parts := make([]string, 0, len(week))
	for _, d := range week {
		parts = append(parts, fmt.Sprintf("%s %.1f", d.Date.Format("Mon"), d.Average))
	}
	printlnFn("This week:", strings.Join(parts, "  "))
	printlnFn(fmt.Sprintf("Weekly average: %.1f", insights.WeeklyAverage(week)))

	achievements := insights.Achievements(sum)
	printlnFn(fmt.Sprintf("Achievements earned: %d of %d", len(insights.Earned(achievements)), len(achievements)))
	for _, ach := range achievements {
		mark := " "
		if ach.Earned {
			mark = "x"
		}
		printlnFn(fmt.Sprintf("[%s] %s %s - %s", mark, ach.Icon, ach.Title, ach.Description))
	}
	return nil
}

func (a *App) Crisis(ctx context.Context) error {
	printlnFn("If you are in immediate danger, call your local emergency number.")
	for _, c := range catalog.CrisisContacts {
		printlnFn(fmt.Sprintf("%s: %s (%s, %s) - %s", c.Name, c.Number, c.Availability, c.Country, c.Description))
	}
	printlnFn("Warning signs:")
	for _, s := range catalog.WarningSigns {
		printlnFn(" -", s)
	}
	printlnFn("Coping strategies:")
	for _, s := range catalog.CopingStrategies {
		printlnFn(fmt.Sprintf(" - %s: %s", s.Title, s.Description))
	}
	return nil
}

// Rooms handles "rooms [category] [query...]". The first word is taken
// as the category when it names one (or is "all").
func (a *App) Rooms(ctx context.Context, args []string) error {
	category := "all"
	if len(args) > 0 && isRoomCategory(args[0]) {
		category, args = args[0], args[1:]
	}

	rooms := catalog.FilterRooms(strings.Join(args, " "), category)
	if len(rooms) == 0 {
		printlnFn("No rooms found")
		printlnFn("Categories: all, " + strings.Join(catalog.RoomCategories(), ", "))
		return nil
	}
	for _, r := range rooms {
		status := "quiet"
		if r.IsActive {
			status = "active"
		}
		printlnFn(fmt.Sprintf("%s (%s, %d members, %s, %s)", r.Name, r.Category, r.Members, status, r.LastActivity))
	}
	return nil
}

func isRoomCategory(word string) bool {
	if strings.EqualFold(word, "all") {
		return true
	}
	for _, c := range catalog.RoomCategories() {
		if strings.EqualFold(word, c) {
			return true
		}
	}
	return false
}

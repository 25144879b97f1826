package state

import (
	"time"

	"github.com/dmitrijs2005/mindmate/internal/client/models"
)

// AppState is the current user's data.
type AppState struct {
	Moods       []models.MoodEntry
	Habits      []models.Habit
	ChatHistory []models.ChatExchange
	IsLoading   bool
}

func InitialAppState() AppState {
	return AppState{
		Moods:       []models.MoodEntry{},
		Habits:      []models.Habit{},
		ChatHistory: []models.ChatExchange{},
	}
}

func (s AppState) clone() AppState {
	out := AppState{
		Moods:       append([]models.MoodEntry{}, s.Moods...),
		Habits:      make([]models.Habit, len(s.Habits)),
		ChatHistory: append([]models.ChatExchange{}, s.ChatHistory...),
		IsLoading:   s.IsLoading,
	}
	for i, h := range s.Habits {
		if h.LastCompleted != nil {
			t := *h.LastCompleted
			h.LastCompleted = &t
		}
		out.Habits[i] = h
	}
	return out
}

// Snapshot is the persisted projection of s.
func (s AppState) Snapshot() models.Snapshot {
	c := s.clone()
	return models.Snapshot{Moods: c.Moods, Habits: c.Habits, ChatHistory: c.ChatHistory}
}

// AppAction is a message understood by ReduceApp.
type AppAction interface {
	appAction()
}

type (
	MoodAdded        struct{ Entry models.MoodEntry }
	HabitAdded       struct{ Habit models.Habit }
	ChatMessageAdded struct{ Exchange models.ChatExchange }
	// HabitToggled flips a habit; At stamps LastCompleted when it becomes
	// completed.
	HabitToggled struct {
		ID string
		At time.Time
	}
	// SnapshotLoaded replaces the three collections with a stored snapshot.
	SnapshotLoaded struct{ Snapshot models.Snapshot }
	AppLoadingSet  struct{ Loading bool }
	AppReset       struct{}
)

func (MoodAdded) appAction()        {}
func (HabitAdded) appAction()       {}
func (ChatMessageAdded) appAction() {}
func (HabitToggled) appAction()     {}
func (SnapshotLoaded) appAction()   {}
func (AppLoadingSet) appAction()    {}
func (AppReset) appAction()         {}

// ReduceApp is the pure transition function of the app state. It never
// modifies the slices of s in place.
func ReduceApp(s AppState, a AppAction) AppState {
	switch a := a.(type) {
	case MoodAdded:
		moods := make([]models.MoodEntry, 0, len(s.Moods)+1)
		moods = append(moods, a.Entry)
		s.Moods = append(moods, s.Moods...)

	case HabitAdded:
		s.Habits = append(append(make([]models.Habit, 0, len(s.Habits)+1), s.Habits...), a.Habit)

	case HabitToggled:
		habits := make([]models.Habit, len(s.Habits))
		copy(habits, s.Habits)
		for i := range habits {
			if habits[i].ID != a.ID {
				continue
			}
			// Un-completing keeps the credited streak and timestamp.
			if habits[i].Completed {
				habits[i].Completed = false
			} else {
				at := a.At
				habits[i].Completed = true
				habits[i].Streak++
				habits[i].LastCompleted = &at
			}
		}
		s.Habits = habits

	case ChatMessageAdded:
		s.ChatHistory = append(append(make([]models.ChatExchange, 0, len(s.ChatHistory)+1), s.ChatHistory...), a.Exchange)

	case SnapshotLoaded:
		loaded := AppState{Moods: a.Snapshot.Moods, Habits: a.Snapshot.Habits, ChatHistory: a.Snapshot.ChatHistory}.clone()
		s.Moods, s.Habits, s.ChatHistory = loaded.Moods, loaded.Habits, loaded.ChatHistory

	case AppLoadingSet:
		s.IsLoading = a.Loading

	case AppReset:
		return InitialAppState()
	}
	return s
}

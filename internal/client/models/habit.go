package models

import (
	"errors"
	"strings"
	"time"
)

// HabitCategory is one of the fixed habit categories.
type HabitCategory string

const (
	CategoryMindfulness HabitCategory = "mindfulness"
	CategoryExercise    HabitCategory = "exercise"
	CategoryJournaling  HabitCategory = "journaling"
	CategorySelfCare    HabitCategory = "selfcare"
	CategoryLearning    HabitCategory = "learning"
	CategoryCreative    HabitCategory = "creative"
)

var HabitCategories = []HabitCategory{
	CategoryMindfulness, CategoryExercise, CategoryJournaling,
	CategorySelfCare, CategoryLearning, CategoryCreative,
}

var (
	ErrInvalidCategory = errors.New("unknown habit category")
	ErrEmptyHabitName  = errors.New("habit name is required")
)

func (c HabitCategory) Valid() bool {
	for _, hc := range HabitCategories {
		if hc == c {
			return true
		}
	}
	return false
}

// Habit is a tracked routine. Streak only ever grows: un-completing a
// habit leaves both Streak and LastCompleted as they were.
type Habit struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Category      HabitCategory `json:"category"`
	Streak        int           `json:"streak"`
	Completed     bool          `json:"completed"`
	LastCompleted *time.Time    `json:"lastCompleted,omitempty"`
}

// HabitDraft carries the caller-supplied fields of a new habit.
type HabitDraft struct {
	Name        string
	Description string
	Category    HabitCategory
}

func (d HabitDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyHabitName
	}
	if !d.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

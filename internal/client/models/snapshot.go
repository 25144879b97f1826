package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Snapshot is the per-user document written to the Persisted Store.
type Snapshot struct {
	Moods       []MoodEntry    `json:"moods"`
	Habits      []Habit        `json:"habits"`
	ChatHistory []ChatExchange `json:"chatHistory"`
}

// Empty reports whether all three collections are empty.
func (s Snapshot) Empty() bool {
	return len(s.Moods) == 0 && len(s.Habits) == 0 && len(s.ChatHistory) == 0
}

// MarshalJSON writes empty collections as [] rather than null.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	type alias Snapshot
	a := alias(s)
	if a.Moods == nil {
		a.Moods = []MoodEntry{}
	}
	if a.Habits == nil {
		a.Habits = []Habit{}
	}
	if a.ChatHistory == nil {
		a.ChatHistory = []ChatExchange{}
	}
	return json.Marshal(a)
}

// DecodeSnapshot parses a stored snapshot. Missing collections decode as
// empty; timestamps are RFC 3339 with optional fractional seconds.
//
// Entries that do not parse are skipped and counted in dropped. Only a
// document that is not an object, or a collection that is not an array,
// is an error.
func DecodeSnapshot(b []byte) (s Snapshot, dropped int, err error) {
	var doc struct {
		Moods       json.RawMessage `json:"moods"`
		Habits      json.RawMessage `json:"habits"`
		ChatHistory json.RawMessage `json:"chatHistory"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return Snapshot{}, 0, err
	}

	var n int
	if s.Moods, n, err = decodeEach[MoodEntry](doc.Moods); err != nil {
		return Snapshot{}, 0, fmt.Errorf("moods: %w", err)
	}
	dropped += n
	if s.Habits, n, err = decodeEach[Habit](doc.Habits); err != nil {
		return Snapshot{}, 0, fmt.Errorf("habits: %w", err)
	}
	dropped += n
	if s.ChatHistory, n, err = decodeEach[ChatExchange](doc.ChatHistory); err != nil {
		return Snapshot{}, 0, fmt.Errorf("chatHistory: %w", err)
	}
	dropped += n

	return s, dropped, nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func decodeEach[T any](raw json.RawMessage) ([]T, int, error) {
	out := []T{}
	if isNull(raw) {
		return out, 0, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, 0, err
	}

	dropped := 0
	for _, item := range items {
		var v T
		if isNull(item) || json.Unmarshal(item, &v) != nil {
			dropped++
			continue
		}
		out = append(out, v)
	}
	return out, dropped, nil
}

package catalog

import "strings"

// Room is an entry of the (simulated) support room directory.
type Room struct {
	ID           string
	Name         string
	Description  string
	Category     string
	Members      int
	IsActive     bool
	IsPrivate    bool
	LastActivity string
}

var Rooms = []Room{
	{"1", "Anxiety Support Circle", "A safe space to share experiences with anxiety and coping strategies", "Anxiety", 24, true, false, "2 min ago"},
	{"2", "Depression Warriors", "Supporting each other through depression with understanding and hope", "Depression", 18, true, false, "5 min ago"},
	{"3", "Mindfulness Together", "Practice mindfulness and meditation in a supportive community", "Mindfulness", 31, false, false, "1 hour ago"},
	{"4", "Student Stress Relief", "Students supporting students through academic pressure and stress", "Academic", 42, true, false, "Just now"},
	{"5", "Work-Life Balance", "Professionals sharing tips for managing work stress and burnout", "Professional", 15, false, true, "30 min ago"},
	{"6", "Recovery Support", "Private group for addiction recovery support and accountability", "Recovery", 8, true, true, "10 min ago"},
}

// RoomCategories lists the distinct room categories in directory order.
func RoomCategories() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range Rooms {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out
}

// FilterRooms returns rooms whose name or description contains query
// (case-insensitive) and whose category equals category. An empty query
// or category, or category "all", does not filter.
func FilterRooms(query, category string) []Room {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Room
	for _, r := range Rooms {
		if q != "" &&
			!strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Description), q) {
			continue
		}
		if category != "" && !strings.EqualFold(category, "all") && !strings.EqualFold(category, r.Category) {
			continue
		}
		out = append(out, r)
	}
	return out
}

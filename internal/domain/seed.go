package domain

import "time"

func str(s string) *string { return &s }

// SeedEvents returns the fixture the repository starts with: three
// sample events across two cities, newest listing order preserved by
// ascending id (1 first).
func SeedEvents() []Event {
	return []Event{
		{
			ID:          1,
			Title:       "React & TypeScript Workshop",
			Description: "Hands-on session learning advanced React patterns with TypeScript.",
			City:        "Berlin",
			DateTime:    time.Date(2026, time.March, 15, 18, 0, 0, 0, time.UTC),
			ImageURL:    str("https://picsum.photos/seed/react/300/200"),
			Category:    str("Tech"),
		},
		{
			ID:          2,
			Title:       "Local Hiking Meetup",
			Description: "Enjoy a day hike on the beautiful local trails and network with other outdoor enthusiasts.",
			City:        "Munich",
			DateTime:    time.Date(2026, time.March, 20, 9, 30, 0, 0, time.UTC),
			ImageURL:    str("https://picsum.photos/seed/hike/300/200"),
			Category:    str("Outdoors"),
		},
		{
			ID:          3,
			Title:       "Book Club: 'The Martian'",
			Description: "Discussing Andy Weir's masterpiece 'The Martian' and enjoying some coffee.",
			City:        "Berlin",
			DateTime:    time.Date(2026, time.April, 1, 19, 0, 0, 0, time.UTC),
			ImageURL:    str("https://picsum.photos/seed/book/300/200"),
			Category:    str("Social"),
		},
	}
}

package domain

import "time"

type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	DateTime    time.Time `json:"date_time"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Category    *string   `json:"category,omitempty"`
}

// EventInput carries every writable field of an Event. The repository
// assigns the ID on create and never accepts one from callers.
type EventInput struct {
	Title       string
	Description string
	City        string
	DateTime    time.Time
	ImageURL    *string
	Category    *string
}

// Clone returns a copy sharing no pointers with the receiver, so
// repository snapshots cannot be mutated from outside.
func (e Event) Clone() Event {
	c := e
	if e.ImageURL != nil {
		v := *e.ImageURL
		c.ImageURL = &v
	}
	if e.Category != nil {
		v := *e.Category
		c.Category = &v
	}
	return c
}

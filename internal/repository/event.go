package repository

import (
	"context"

	"github.com/AryanAbsalan/CityMeet/internal/domain"
)

// EventRepository holds the canonical event collection in memory,
// newest first. It owns id assignment: ids are never reused, and the
// counter only moves forward, even across deletes.
//
// All operations run synchronously on the UI goroutine; the repository
// is not safe for concurrent use.
type EventRepository struct {
	events []domain.Event
	nextID int64
}

// NewEventRepo seeds the repository and initializes the id counter to
// one past the highest seeded id.
func NewEventRepo(seed []domain.Event) *EventRepository {
	r := &EventRepository{
		events: make([]domain.Event, 0, len(seed)),
		nextID: 1,
	}
	for _, e := range seed {
		r.events = append(r.events, e.Clone())
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
	}
	return r
}

// eventFromInput builds the stored record. The clone detaches the
// optional pointers from the caller's input, so retaining an
// EventInput after the call cannot mutate repository state.
func eventFromInput(id int64, input domain.EventInput) domain.Event {
	e := domain.Event{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		City:        input.City,
		DateTime:    input.DateTime,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
	}
	return e.Clone()
}

// Create assigns the next id, prepends the event so the newest entry
// lists first, and returns a copy of the stored record.
func (r *EventRepository) Create(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	event := eventFromInput(r.nextID, input)
	r.nextID++

	r.events = append([]domain.Event{event}, r.events...)

	out := event.Clone()
	return &out, nil
}

// Update replaces every field except the id, keeping the event's
// position in the listing order.
func (r *EventRepository) Update(ctx context.Context, id int64, input domain.EventInput) (*domain.Event, error) {
	for i := range r.events {
		if r.events[i].ID != id {
			continue
		}
		r.events[i] = eventFromInput(id, input)
		out := r.events[i].Clone()
		return &out, nil
	}
	return nil, domain.ErrEventNotFound
}

// Delete removes the event with the given id. Deleting an id that is
// not present is a no-op, so deletes are idempotent.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	for i := range r.events {
		if r.events[i].ID == id {
			out := r.events[i].Clone()
			return &out, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

// List returns a snapshot of the collection in stored order. Mutating
// the returned slice or its elements does not affect the repository.
func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Clone())
	}
	return out, nil
}

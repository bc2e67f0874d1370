package service

import (
	"context"
	"fmt"

	"github.com/AryanAbsalan/CityMeet/internal/domain"
	"github.com/AryanAbsalan/CityMeet/internal/filter"
	"github.com/AryanAbsalan/CityMeet/internal/form"
	"github.com/AryanAbsalan/CityMeet/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// EventService is the single owner of the listing state the UI renders
// from: the event repository, the two filter inputs, and the edit
// session. The presentation layer holds a reference to it and calls
// its methods; it never touches the collection directly.
type EventService struct {
	repo       ports.EventRepo
	transcoder *form.Transcoder
	logger     logger.Logger

	searchText string
	cityFilter string
	session    editSession
}

func NewEventService(
	repo ports.EventRepo,
	transcoder *form.Transcoder,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:       repo,
		transcoder: transcoder,
		logger:     logger,
	}
}

// ListVisible returns the events matching the current search and city
// inputs, in repository order. Recomputed on every call; the data set
// is small and transient, so nothing is cached.
func (s *EventService) ListVisible(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return filter.Apply(events, s.searchText, s.cityFilter), nil
}

func (s *EventService) SetSearchText(text string) { s.searchText = text }
func (s *EventService) SetCityFilter(text string) { s.cityFilter = text }

func (s *EventService) SearchText() string { return s.searchText }
func (s *EventService) CityFilter() string { return s.cityFilter }

// RequestCreate opens the form in create mode.
func (s *EventService) RequestCreate() {
	s.session.openCreate()
}

// RequestEdit opens the form in edit mode for the given event. When
// the id does not resolve the session stays closed and the error is
// surfaced rather than swallowed, so the caller can tell the user.
func (s *EventService) RequestEdit(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("open edit: %w", err)
	}
	s.session.openEdit(id)
	return nil
}

// CancelEdit closes the form without touching the repository.
func (s *EventService) CancelEdit() {
	s.session.close()
}

// SubmitEdit validates the form data and dispatches to create or
// update depending on the session mode. The session closes only on
// success: a validation failure or a vanished edit target keeps the
// form open so the user's input is not lost.
func (s *EventService) SubmitEdit(ctx context.Context, data form.Data) (*domain.Event, error) {
	if !s.session.open() {
		return nil, domain.ErrNoOpenForm
	}

	input, err := s.transcoder.ToInput(data)
	if err != nil {
		return nil, err
	}

	var event *domain.Event
	if id, ok := s.session.editing(); ok {
		event, err = s.repo.Update(ctx, id, input)
		if err != nil {
			return nil, fmt.Errorf("update event: %w", err)
		}
		s.logger.Info("event updated",
			logger.Any("event_id", event.ID),
			logger.String("title", event.Title),
		)
	} else {
		event, err = s.repo.Create(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("create event: %w", err)
		}
		s.logger.Info("event created",
			logger.Any("event_id", event.ID),
			logger.String("title", event.Title),
		)
	}

	s.session.close()
	return event, nil
}

// RequestDelete removes the event unconditionally. Confirmation is the
// presentation layer's responsibility; by the time this is called the
// decision is made. Deleting a missing id is a no-op.
func (s *EventService) RequestDelete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	s.logger.Info("event deleted", logger.Any("event_id", id))
	return nil
}

// FormOpen reports whether the create/edit form should be rendered.
func (s *EventService) FormOpen() bool {
	return s.session.open()
}

// EditMode reports whether an open form is editing an existing event.
func (s *EventService) EditMode() bool {
	_, ok := s.session.editing()
	return ok
}

// EditingID returns the id being edited, if any.
func (s *EventService) EditingID() (int64, bool) {
	return s.session.editing()
}

// CurrentForm builds the form data for the open session: the edit
// target re-resolved by id, or a blank form in create mode.
func (s *EventService) CurrentForm(ctx context.Context) (form.Data, error) {
	if !s.session.open() {
		return form.Data{}, domain.ErrNoOpenForm
	}

	if id, ok := s.session.editing(); ok {
		event, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return form.Data{}, fmt.Errorf("resolve edit target: %w", err)
		}
		return s.transcoder.FromEvent(event), nil
	}

	return s.transcoder.FromEvent(nil), nil
}

// Package form converts between the canonical Event record and the
// editable form projection. While an event sits in the form its
// date/time is a zone-naive minute-precision string so the user can
// edit it; the canonical instant form is restored at submit time.
package form

import (
	"fmt"
	"strings"
	"time"

	"github.com/AryanAbsalan/CityMeet/internal/domain"
)

// DateTimeLayout is the minute-precision local layout used inside the
// form, matching an HTML datetime-local input.
const DateTimeLayout = "2006-01-02T15:04"

// Data is the editable projection of an Event: every field a string,
// no id, absent optionals shown as empty strings.
type Data struct {
	Title       string
	Description string
	City        string
	DateTime    string
	ImageURL    string
	Category    string
}

// Transcoder converts events to form data and back. Both directions
// use the same location, so a round trip recovers the same instant at
// minute precision.
type Transcoder struct {
	loc *time.Location
	now func() time.Time
}

func NewTranscoder(loc *time.Location) *Transcoder {
	if loc == nil {
		loc = time.UTC
	}
	return &Transcoder{loc: loc, now: time.Now}
}

// WithClock replaces the clock used for blank forms.
func (t *Transcoder) WithClock(now func() time.Time) *Transcoder {
	t.now = now
	return t
}

// FromEvent projects an event into form data, truncating the date/time
// to minute precision in the transcoder's location. A nil event yields
// a blank create form dated now.
func (t *Transcoder) FromEvent(e *domain.Event) Data {
	if e == nil {
		return Data{
			DateTime: t.now().In(t.loc).Format(DateTimeLayout),
		}
	}

	d := Data{
		Title:       e.Title,
		Description: e.Description,
		City:        e.City,
		DateTime:    e.DateTime.In(t.loc).Format(DateTimeLayout),
	}
	if e.ImageURL != nil {
		d.ImageURL = *e.ImageURL
	}
	if e.Category != nil {
		d.Category = *e.Category
	}
	return d
}

// ToInput validates presence of the required fields and converts the
// form data back to a repository-level input with a canonical UTC
// instant. All missing fields are reported in one error.
func (t *Transcoder) ToInput(d Data) (domain.EventInput, error) {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.City) == "" {
		missing = append(missing, "city")
	}
	if strings.TrimSpace(d.DateTime) == "" {
		missing = append(missing, "date_time")
	}
	if len(missing) > 0 {
		return domain.EventInput{}, fmt.Errorf(
			"%w: %s required", domain.ErrValidation, strings.Join(missing, ", "),
		)
	}

	instant, err := time.ParseInLocation(DateTimeLayout, d.DateTime, t.loc)
	if err != nil {
		return domain.EventInput{}, fmt.Errorf(
			"%w: date_time must match %s", domain.ErrValidation, DateTimeLayout,
		)
	}

	return domain.EventInput{
		Title:       d.Title,
		Description: d.Description,
		City:        d.City,
		DateTime:    instant.UTC(),
		ImageURL:    optional(d.ImageURL),
		Category:    optional(d.Category),
	}, nil
}

// optional maps the form's "empty string means absent" convention back
// to the canonical optional representation.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

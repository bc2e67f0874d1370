package form

import (
	"testing"
	"time"

	"github.com/AryanAbsalan/CityMeet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscoder_FromEvent_TruncatesToMinute(t *testing.T) {
	tc := NewTranscoder(time.UTC)
	event := &domain.Event{
		ID:          1,
		Title:       "Concert",
		Description: "Live music",
		City:        "Berlin",
		DateTime:    time.Date(2026, time.March, 15, 18, 0, 42, 123, time.UTC),
	}

	d := tc.FromEvent(event)

	assert.Equal(t, "2026-03-15T18:00", d.DateTime)
	assert.Equal(t, "Concert", d.Title)
	assert.Empty(t, d.ImageURL)
	assert.Empty(t, d.Category)
}

func TestTranscoder_FromEvent_CopiesOptionals(t *testing.T) {
	tc := NewTranscoder(time.UTC)
	url := "https://example.com/a.png"
	cat := "Tech"
	event := &domain.Event{
		Title:    "Workshop",
		City:     "Berlin",
		DateTime: time.Date(2026, time.March, 15, 18, 0, 0, 0, time.UTC),
		ImageURL: &url,
		Category: &cat,
	}

	d := tc.FromEvent(event)

	assert.Equal(t, url, d.ImageURL)
	assert.Equal(t, cat, d.Category)
}

func TestTranscoder_FromEvent_NilIsBlankFormDatedNow(t *testing.T) {
	now := time.Date(2026, time.May, 2, 12, 30, 59, 0, time.UTC)
	tc := NewTranscoder(time.UTC).WithClock(func() time.Time { return now })

	d := tc.FromEvent(nil)

	assert.Empty(t, d.Title)
	assert.Empty(t, d.Description)
	assert.Empty(t, d.City)
	assert.Equal(t, "2026-05-02T12:30", d.DateTime)
}

func TestTranscoder_ToInput_Success(t *testing.T) {
	tc := NewTranscoder(time.UTC)

	input, err := tc.ToInput(Data{
		Title:       "Test",
		Description: "d",
		City:        "X",
		DateTime:    "2026-01-01T10:00",
		Category:    "Tech",
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC), input.DateTime)
	require.NotNil(t, input.Category)
	assert.Equal(t, "Tech", *input.Category)
	assert.Nil(t, input.ImageURL)
}

func TestTranscoder_ToInput_ReportsAllMissingFields(t *testing.T) {
	tc := NewTranscoder(time.UTC)

	_, err := tc.ToInput(Data{Description: "only description"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "city")
	assert.Contains(t, err.Error(), "date_time")
}

func TestTranscoder_ToInput_BadLayout(t *testing.T) {
	tc := NewTranscoder(time.UTC)

	_, err := tc.ToInput(Data{
		Title:    "Test",
		City:     "X",
		DateTime: "tomorrow evening",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTranscoder_ToInput_InterpretsLocalInLocation(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	tc := NewTranscoder(berlin)

	// CET, UTC+1 in January.
	input, err := tc.ToInput(Data{
		Title:    "Test",
		City:     "Berlin",
		DateTime: "2026-01-01T10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC), input.DateTime)
}

func TestTranscoder_RoundTripRecoversMinutePrecisionInstant(t *testing.T) {
	tc := NewTranscoder(time.UTC)
	event := &domain.Event{
		Title:       "Round Trip",
		Description: "d",
		City:        "Berlin",
		// Seconds already zero: the round trip is exact.
		DateTime: time.Date(2026, time.March, 20, 9, 30, 0, 0, time.UTC),
	}

	input, err := tc.ToInput(tc.FromEvent(event))

	require.NoError(t, err)
	assert.True(t, input.DateTime.Equal(event.DateTime))
}

package filter

import (
	"testing"

	"github.com/AryanAbsalan/CityMeet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() []domain.Event {
	return domain.SeedEvents()
}

func TestApply_EmptyInputsMatchEverything(t *testing.T) {
	events := seed()

	visible := Apply(events, "", "")

	require.Len(t, visible, len(events))
	for i := range events {
		assert.Equal(t, events[i].ID, visible[i].ID)
	}
}

func TestApply_CityFilterCaseInsensitive(t *testing.T) {
	visible := Apply(seed(), "", "berlin")

	require.Len(t, visible, 2)
	assert.Equal(t, int64(1), visible[0].ID)
	assert.Equal(t, int64(3), visible[1].ID)
}

func TestApply_TitleSubstringCaseInsensitive(t *testing.T) {
	visible := Apply(seed(), "MARTIAN", "")

	require.Len(t, visible, 1)
	assert.Equal(t, int64(3), visible[0].ID)
}

func TestApply_BothPredicatesAnded(t *testing.T) {
	// "Meetup" only matches id 2, which is in Munich, not Berlin.
	visible := Apply(seed(), "meetup", "berlin")

	assert.Empty(t, visible)

	visible = Apply(seed(), "meetup", "munich")
	require.Len(t, visible, 1)
	assert.Equal(t, int64(2), visible[0].ID)
}

func TestApply_NoMatch(t *testing.T) {
	assert.Empty(t, Apply(seed(), "does not exist", ""))
}

func TestApply_PreservesRelativeOrder(t *testing.T) {
	events := seed()

	visible := Apply(events, "", "Berlin")

	// Subsequence of the input: same relative order, nothing reordered.
	last := -1
	for _, v := range visible {
		found := -1
		for i, e := range events {
			if e.ID == v.ID {
				found = i
				break
			}
		}
		require.GreaterOrEqual(t, found, 0)
		assert.Greater(t, found, last)
		last = found
	}
}

func TestMatch_EmptySearchText(t *testing.T) {
	assert.True(t, Match(seed()[0], "", ""))
}

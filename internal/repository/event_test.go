package repository

import (
	"context"
	"testing"
	"time"

	"github.com/AryanAbsalan/CityMeet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput(title, city string) domain.EventInput {
	return domain.EventInput{
		Title:       title,
		Description: "d",
		City:        city,
		DateTime:    time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestEventRepository_Create_AssignsSequentialIDs(t *testing.T) {
	repo := NewEventRepo(domain.SeedEvents())
	ctx := context.Background()

	first, err := repo.Create(ctx, testInput("Test", "X"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), first.ID)

	second, err := repo.Create(ctx, testInput("Another", "Y"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), second.ID)
}

func TestEventRepository_Create_PrependsToFront(t *testing.T) {
	repo := NewEventRepo(domain.SeedEvents())

	created, err := repo.Create(context.Background(), testInput("Test", "X"))
	require.NoError(t, err)

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, created.ID, events[0].ID)
	assert.Equal(t, []int64{4, 1, 2, 3}, ids(events))
}

func TestEventRepository_IDNotReusedAfterDelete(t *testing.T) {
	repo := NewEventRepo(domain.SeedEvents())
	ctx := context.Background()

	created, err := repo.Create(ctx, testInput("Test", "X"))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, created.ID))

	next, err := repo.Create(ctx, testInput("Again", "Y"))
	require.NoError(t, err)
	assert.Greater(t, next.ID, created.ID)
}

func TestEventRepository_Update_PreservesIDAndPosition(t *testing.T) {
	repo := NewEventRepo(domain.SeedEvents())
	ctx := context.Background()

	updated, err := repo.Update(ctx, 2, testInput("Renamed Meetup", "Munich"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.ID)
	assert.Equal(t, "Renamed Meetup", updated.Title)

	events, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(events))
	assert.Equal(t, "Renamed Meetup", events[1].Title)
	assert.Equal(t, "React & TypeScript Workshop", events[0].Title)
}

func TestEventRepository_Update_NotFound(t *testing.T) {
	repo := NewEventRepo(domain.SeedEvents())

	_, err := repo.Update(context.Background(), 99, testInput("Ghost", "Nowhere"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventRepository_Delete_Idempotent(t *testing.T) {
	repo := NewEventRepo(domain.SeedEvents())
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 2))
	require.NoError(t, repo.Delete(ctx, 2))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(events))
}

func TestEventRepository_GetByID(t *testing.T) {
	repo := NewEventRepo(domain.SeedEvents())

	event, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Local Hiking Meetup", event.Title)

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventRepository_List_SnapshotIsIsolated(t *testing.T) {
	repo := NewEventRepo(domain.SeedEvents())

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	events[0].Title = "mutated"
	*events[0].ImageURL = "mutated"

	fresh, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "React & TypeScript Workshop", fresh[0].Title)
	assert.Equal(t, "https://picsum.photos/seed/react/300/200", *fresh[0].ImageURL)
}

func TestEventRepository_InputPointersNotRetained(t *testing.T) {
	repo := NewEventRepo(nil)
	ctx := context.Background()

	url := "https://example.com/a.png"
	cat := "Tech"
	input := testInput("Test", "X")
	input.ImageURL = &url
	input.Category = &cat

	created, err := repo.Create(ctx, input)
	require.NoError(t, err)
	_, err = repo.Update(ctx, created.ID, input)
	require.NoError(t, err)

	// Mutating the retained input must not reach stored state.
	url = "mutated"
	cat = "mutated"

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ImageURL)
	require.NotNil(t, stored.Category)
	assert.Equal(t, "https://example.com/a.png", *stored.ImageURL)
	assert.Equal(t, "Tech", *stored.Category)
}

func TestEventRepository_EmptySeed(t *testing.T) {
	repo := NewEventRepo(nil)

	created, err := repo.Create(context.Background(), testInput("First", "X"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func ids(events []domain.Event) []int64 {
	out := make([]int64, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

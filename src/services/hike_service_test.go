package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailmates/trailmates-server/src/models"
	"github.com/trailmates/trailmates-server/src/repository"
)

func TestCreateHikeValidation(t *testing.T) {
	svc := NewHikeService(newMemoryHikeRepo())
	ctx := context.Background()

	var validationErr *ValidationError
	_, err := svc.CreateHike(ctx, &models.Hike{Region: "Alps"})
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.CreateHike(ctx, &models.Hike{Name: "Eiger Trail", Region: "Alps", Difficulty: "extreme"})
	require.ErrorAs(t, err, &validationErr)

	id, err := svc.CreateHike(ctx, &models.Hike{
		Name:       "Eiger Trail",
		Region:     "Alps",
		Difficulty: models.HikeDifficultyHard,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestLogHikeRequiresExistingHike(t *testing.T) {
	hikes := newMemoryHikeRepo()
	svc := NewHikeService(hikes)
	ctx := context.Background()

	var notFoundErr *NotFoundError
	_, err := svc.LogHike(ctx, "user-1", "missing", time.Time{}, 90, "")
	require.ErrorAs(t, err, &notFoundErr)

	hikeID := hikes.addHike("Eiger Trail", "Alps")
	logID, err := svc.LogHike(ctx, "user-1", hikeID, time.Time{}, 90, "windy")
	require.NoError(t, err)
	assert.NotEmpty(t, logID)

	logs, err := svc.GetUserLogs(ctx, "user-1", 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.False(t, logs[0].CompletedAt.IsZero(), "zero completedAt defaults to now")
	assert.Equal(t, "windy", logs[0].Notes)
}

func TestToggleWishlist(t *testing.T) {
	hikes := newMemoryHikeRepo()
	svc := NewHikeService(hikes)
	ctx := context.Background()

	hikeID := hikes.addHike("Eiger Trail", "Alps")

	added, err := svc.ToggleWishlist(ctx, "user-1", hikeID)
	require.NoError(t, err)
	assert.True(t, added)

	wishlist, err := svc.GetWishlist(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, wishlist, 1)
	assert.Equal(t, "Eiger Trail", wishlist[0].Name)

	added, err = svc.ToggleWishlist(ctx, "user-1", hikeID)
	require.NoError(t, err)
	assert.False(t, added, "second toggle removes the bookmark")

	wishlist, err = svc.GetWishlist(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, wishlist)

	var notFoundErr *NotFoundError
	_, err = svc.ToggleWishlist(ctx, "user-1", "missing")
	require.ErrorAs(t, err, &notFoundErr)
}

func TestSearchHikesFilters(t *testing.T) {
	hikes := newMemoryHikeRepo()
	svc := NewHikeService(hikes)
	ctx := context.Background()

	hikes.addHike("Eiger Trail", "Alps")
	hikes.addHike("Half Dome", "Sierra")

	results, err := svc.SearchHikes(ctx, repository.HikeFilter{Region: "Alps"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Eiger Trail", results[0].Name)

	var validationErr *ValidationError
	_, err = svc.SearchHikes(ctx, repository.HikeFilter{Difficulty: "vertical"})
	require.ErrorAs(t, err, &validationErr)
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trailmates/trailmates-server/src/models"
)

func newTestFeedService() (*FeedService, *FriendshipService, *memoryHikeRepo, *memoryUserRepo) {
	friendshipRepo := newMemoryFriendshipRepo()
	users := newMemoryUserRepo()
	hikes := newMemoryHikeRepo()
	friendships := NewFriendshipService(friendshipRepo, users)
	// nil cache: every lookup is a miss, sets are dropped.
	feed := NewFeedService(friendships, hikes, users, nil)
	return feed, friendships, hikes, users
}

func TestActivityFeedShowsFriendsHikes(t *testing.T) {
	feed, friendships, hikes, users := newTestFeedService()
	ctx := context.Background()

	alice := users.addUser("Alice", "alice")
	bob := users.addUser("Bob", "bob")
	carol := users.addUser("Carol", "carol")
	require.NoError(t, friendships.AddFriendship(ctx, alice, bob))

	hikeID := hikes.addHike("Eiger Trail", "Alps")
	hike, err := hikes.FindHikeByID(ctx, hikeID)
	require.NoError(t, err)

	// Bob (friend) and Carol (stranger) both log the hike.
	for _, userID := range []string{bob, carol} {
		_, err := hikes.InsertLog(ctx, &models.HikeLog{
			UserID:      userID,
			HikeID:      hike.Id,
			CompletedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	items, err := feed.ActivityFeed(ctx, alice, 0)
	require.NoError(t, err)
	require.Len(t, items, 1, "only friends' activity appears")
	assert.Equal(t, "bob", items[0].User.Username)
	require.NotNil(t, items[0].Hike)
	assert.Equal(t, "Eiger Trail", items[0].Hike.Name)
}

func TestActivityFeedEmptyWithoutFriends(t *testing.T) {
	feed, _, _, users := newTestFeedService()
	ctx := context.Background()

	alice := users.addUser("Alice", "alice")

	items, err := feed.ActivityFeed(ctx, alice, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSuggestedHikesExcludeLoggedAndWishlisted(t *testing.T) {
	feed, _, hikes, users := newTestFeedService()
	ctx := context.Background()

	alice := users.addUser("Alice", "alice")

	logged := hikes.addHike("Eiger Trail", "Alps")
	wishlisted := hikes.addHike("Half Dome", "Sierra")
	fresh := hikes.addHike("Ben Nevis", "Highlands")

	loggedHike, err := hikes.FindHikeByID(ctx, logged)
	require.NoError(t, err)
	_, err = hikes.InsertLog(ctx, &models.HikeLog{UserID: alice, HikeID: loggedHike.Id, CompletedAt: time.Now()})
	require.NoError(t, err)

	wishHike, err := hikes.FindHikeByID(ctx, wishlisted)
	require.NoError(t, err)
	require.NoError(t, hikes.InsertWishlistItem(ctx, &models.WishlistItem{UserID: alice, HikeID: wishHike.Id, AddedAt: time.Now()}))

	suggestions, err := feed.SuggestedHikes(ctx, alice, 10)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, fresh, suggestions[0].Id.Hex())
}

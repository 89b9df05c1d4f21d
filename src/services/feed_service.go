package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/trailmates/trailmates-server/src/lib"
	"github.com/trailmates/trailmates-server/src/models"
	"github.com/trailmates/trailmates-server/src/repository"
)

const suggestedTTL = 5 * time.Minute

// FeedItem is one entry in the activity feed: a friend's completed hike
// with the hike and the friend resolved for display.
type FeedItem struct {
	Log  models.HikeLog `json:"log"`
	Hike *models.Hike   `json:"hike,omitempty"`
	User models.UserDto `json:"user"`
}

// FeedService composes the friend list with hike activity: the feed of
// friends' logs and per-user hike suggestions.
type FeedService struct {
	friendships *FriendshipService
	hikes       repository.HikeRepository
	users       repository.UserRepository
	cache       *lib.Cache
}

func NewFeedService(friendships *FriendshipService, hikes repository.HikeRepository, users repository.UserRepository, cache *lib.Cache) *FeedService {
	return &FeedService{friendships: friendships, hikes: hikes, users: users, cache: cache}
}

// ActivityFeed returns friends' hike logs newest-first, with hikes and
// profiles resolved. Profile and hike resolution failures drop the affected
// item rather than the whole feed.
func (s *FeedService) ActivityFeed(ctx context.Context, userID string, limit int64) ([]FeedItem, error) {
	if userID == "" {
		return nil, validationErrorf("user id is required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	friendIDs, err := s.friendships.FriendIDs(ctx, userID, DefaultMaxFriends)
	if err != nil {
		return nil, err
	}
	if len(friendIDs) == 0 {
		return nil, nil
	}

	logs, err := s.hikes.FindLogsByUsers(ctx, friendIDs, limit)
	if err != nil {
		return nil, transportError("query friend activity", err)
	}
	if len(logs) == 0 {
		return nil, nil
	}

	hikesByID := s.resolveHikes(ctx, logs)
	usersByID := s.resolveUsers(ctx, logs)

	items := make([]FeedItem, 0, len(logs))
	for _, log := range logs {
		user, ok := usersByID[log.UserID]
		if !ok {
			continue
		}
		items = append(items, FeedItem{
			Log:  log,
			Hike: hikesByID[log.HikeID.Hex()],
			User: user,
		})
	}
	return items, nil
}

func (s *FeedService) resolveHikes(ctx context.Context, logs []models.HikeLog) map[string]*models.Hike {
	seen := make(map[string]bool)
	var ids []string
	for _, log := range logs {
		id := log.HikeID.Hex()
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	byID := make(map[string]*models.Hike)
	hikes, err := s.hikes.FindHikesByIDs(ctx, ids)
	if err != nil {
		zap.L().Warn("feed hike resolution failed", zap.Error(err))
		return byID
	}
	for i := range hikes {
		byID[hikes[i].Id.Hex()] = &hikes[i]
	}
	return byID
}

func (s *FeedService) resolveUsers(ctx context.Context, logs []models.HikeLog) map[string]models.UserDto {
	seen := make(map[string]bool)
	var ids []string
	for _, log := range logs {
		if !seen[log.UserID] {
			seen[log.UserID] = true
			ids = append(ids, log.UserID)
		}
	}

	byID := make(map[string]models.UserDto)
	for start := 0; start < len(ids); start += repository.MaxUsersPerBatch {
		end := start + repository.MaxUsersPerBatch
		if end > len(ids) {
			end = len(ids)
		}
		batch, err := s.users.FindByIDs(ctx, ids[start:end])
		if err != nil {
			zap.L().Warn("feed profile batch failed, dropping batch", zap.Error(err))
			continue
		}
		for _, u := range batch {
			byID[u.Id.Hex()] = u.Dto()
		}
	}
	return byID
}

// SuggestedHikes returns catalog entries the user has neither logged nor
// wishlisted. Results are cached per user; a cold or failing cache falls
// back to the direct query.
func (s *FeedService) SuggestedHikes(ctx context.Context, userID string, limit int64) ([]models.Hike, error) {
	if userID == "" {
		return nil, validationErrorf("user id is required")
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	cacheKey := "suggested:" + userID
	var cached []models.Hike
	if s.cache.GetJSON(ctx, cacheKey, &cached) {
		if int64(len(cached)) > limit {
			cached = cached[:limit]
		}
		return cached, nil
	}

	exclude := make(map[string]bool)
	logs, err := s.hikes.FindLogsByUser(ctx, userID, 0)
	if err != nil {
		return nil, transportError("list hike logs", err)
	}
	for _, log := range logs {
		exclude[log.HikeID.Hex()] = true
	}
	wishlist, err := s.hikes.FindWishlist(ctx, userID)
	if err != nil {
		return nil, transportError("list wishlist", err)
	}
	for _, item := range wishlist {
		exclude[item.HikeID.Hex()] = true
	}

	// Over-fetch so exclusions still leave a full page.
	candidates, err := s.hikes.SearchHikes(ctx, repository.HikeFilter{Limit: limit + int64(len(exclude))})
	if err != nil {
		return nil, transportError("search hikes", err)
	}

	var suggestions []models.Hike
	for _, hike := range candidates {
		if exclude[hike.Id.Hex()] {
			continue
		}
		suggestions = append(suggestions, hike)
		if int64(len(suggestions)) == limit {
			break
		}
	}

	s.cache.SetJSON(ctx, cacheKey, suggestions, suggestedTTL)
	return suggestions, nil
}

// InvalidateSuggestions drops the user's cached suggestions after a log or
// wishlist write changes the exclusion set.
func (s *FeedService) InvalidateSuggestions(ctx context.Context, userID string) {
	s.cache.Delete(ctx, "suggested:"+userID)
}

package services

import (
	"context"
	"time"

	"github.com/trailmates/trailmates-server/src/models"
	"github.com/trailmates/trailmates-server/src/repository"
)

// HikeService covers the hike catalog, completed-hike logs and the
// per-user wishlist.
type HikeService struct {
	hikes repository.HikeRepository
}

func NewHikeService(hikes repository.HikeRepository) *HikeService {
	return &HikeService{hikes: hikes}
}

func validDifficulty(d models.HikeDifficulty) bool {
	switch d {
	case models.HikeDifficultyEasy, models.HikeDifficultyModerate, models.HikeDifficultyHard:
		return true
	}
	return false
}

// CreateHike adds a catalog entry.
func (s *HikeService) CreateHike(ctx context.Context, hike *models.Hike) (string, error) {
	if hike.Name == "" || hike.Region == "" {
		return "", validationErrorf("hike name and region are required")
	}
	if !validDifficulty(hike.Difficulty) {
		return "", validationErrorf("difficulty must be easy, moderate or hard")
	}
	hike.CreatedAt = time.Now()

	id, err := s.hikes.InsertHike(ctx, hike)
	if err != nil {
		return "", transportError("create hike", err)
	}
	return id, nil
}

// GetHike resolves a catalog entry. Returns (nil, nil) when absent.
func (s *HikeService) GetHike(ctx context.Context, hikeID string) (*models.Hike, error) {
	hike, err := s.hikes.FindHikeByID(ctx, hikeID)
	if err != nil {
		return nil, transportError("lookup hike", err)
	}
	return hike, nil
}

// SearchHikes lists catalog entries matching the filter, paginated by the
// store cursor (afterId).
func (s *HikeService) SearchHikes(ctx context.Context, filter repository.HikeFilter) ([]models.Hike, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Difficulty != "" && !validDifficulty(filter.Difficulty) {
		return nil, validationErrorf("difficulty must be easy, moderate or hard")
	}

	hikes, err := s.hikes.SearchHikes(ctx, filter)
	if err != nil {
		return nil, transportError("search hikes", err)
	}
	return hikes, nil
}

// LogHike records that the user completed a hike.
func (s *HikeService) LogHike(ctx context.Context, userID, hikeID string, completedAt time.Time, durationMin int, notes string) (string, error) {
	if userID == "" || hikeID == "" {
		return "", validationErrorf("user id and hike id are required")
	}

	hike, err := s.hikes.FindHikeByID(ctx, hikeID)
	if err != nil {
		return "", transportError("lookup hike", err)
	}
	if hike == nil {
		return "", notFoundErrorf("hike %s does not exist", hikeID)
	}

	if completedAt.IsZero() {
		completedAt = time.Now()
	}
	id, err := s.hikes.InsertLog(ctx, &models.HikeLog{
		UserID:      userID,
		HikeID:      hike.Id,
		CompletedAt: completedAt,
		DurationMin: durationMin,
		Notes:       notes,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return "", transportError("log hike", err)
	}
	return id, nil
}

// GetUserLogs lists the user's completed hikes, newest first.
func (s *HikeService) GetUserLogs(ctx context.Context, userID string, limit int64) ([]models.HikeLog, error) {
	if userID == "" {
		return nil, validationErrorf("user id is required")
	}
	logs, err := s.hikes.FindLogsByUser(ctx, userID, limit)
	if err != nil {
		return nil, transportError("list hike logs", err)
	}
	return logs, nil
}

// ToggleWishlist flips the bookmark for (user, hike). Returns true when the
// hike ended up on the wishlist, false when it was removed.
func (s *HikeService) ToggleWishlist(ctx context.Context, userID, hikeID string) (bool, error) {
	if userID == "" || hikeID == "" {
		return false, validationErrorf("user id and hike id are required")
	}

	existing, err := s.hikes.FindWishlistItem(ctx, userID, hikeID)
	if err != nil {
		return false, transportError("lookup wishlist item", err)
	}
	if existing != nil {
		if err := s.hikes.DeleteWishlistItem(ctx, userID, hikeID); err != nil {
			return false, transportError("remove wishlist item", err)
		}
		return false, nil
	}

	hike, err := s.hikes.FindHikeByID(ctx, hikeID)
	if err != nil {
		return false, transportError("lookup hike", err)
	}
	if hike == nil {
		return false, notFoundErrorf("hike %s does not exist", hikeID)
	}

	if err := s.hikes.InsertWishlistItem(ctx, &models.WishlistItem{
		UserID:  userID,
		HikeID:  hike.Id,
		AddedAt: time.Now(),
	}); err != nil {
		return false, transportError("add wishlist item", err)
	}
	return true, nil
}

// GetWishlist resolves the user's bookmarked hikes.
func (s *HikeService) GetWishlist(ctx context.Context, userID string) ([]models.Hike, error) {
	if userID == "" {
		return nil, validationErrorf("user id is required")
	}

	items, err := s.hikes.FindWishlist(ctx, userID)
	if err != nil {
		return nil, transportError("list wishlist", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.HikeID.Hex())
	}
	hikes, err := s.hikes.FindHikesByIDs(ctx, ids)
	if err != nil {
		return nil, transportError("resolve wishlist hikes", err)
	}
	return hikes, nil
}

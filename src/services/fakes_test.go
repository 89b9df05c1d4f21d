package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/trailmates/trailmates-server/src/models"
	"github.com/trailmates/trailmates-server/src/repository"
)

// memoryFriendshipRepo mimics the Mongo implementation, including the
// unique pair constraint.
type memoryFriendshipRepo struct {
	mu   sync.Mutex
	byID map[string]models.Friendship
}

func newMemoryFriendshipRepo() *memoryFriendshipRepo {
	return &memoryFriendshipRepo{byID: make(map[string]models.Friendship)}
}

func (r *memoryFriendshipRepo) Insert(ctx context.Context, f *models.Friendship) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pairKey := models.PairKeyFor(f.User1, f.User2)
	for _, existing := range r.byID {
		if existing.PairKey == pairKey {
			return "", repository.ErrDuplicatePair
		}
	}

	f.Id = primitive.NewObjectID()
	f.PairKey = pairKey
	r.byID[f.Id.Hex()] = *f
	return f.Id.Hex(), nil
}

func (r *memoryFriendshipRepo) FindByID(ctx context.Context, id string) (*models.Friendship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.byID[id]; ok {
		copy := f
		return &copy, nil
	}
	return nil, nil
}

func (r *memoryFriendshipRepo) FindDirectional(ctx context.Context, requester, recipient string) ([]models.Friendship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var results []models.Friendship
	for _, f := range r.byID {
		if f.User1 == requester && f.User2 == recipient {
			results = append(results, f)
		}
	}
	return results, nil
}

func (r *memoryFriendshipRepo) FindPendingInvolving(ctx context.Context, userID string) ([]models.Friendship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var results []models.Friendship
	for _, f := range r.byID {
		if f.Status == models.FriendshipStatusPending && (f.User1 == userID || f.User2 == userID) {
			results = append(results, f)
		}
	}
	return results, nil
}

func (r *memoryFriendshipRepo) FindAcceptedByRequester(ctx context.Context, userID string, limit int64) ([]models.Friendship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var results []models.Friendship
	for _, f := range r.byID {
		if f.User1 == userID && f.Status == models.FriendshipStatusAccepted {
			results = append(results, f)
		}
	}
	return sortAndLimit(results, limit), nil
}

func (r *memoryFriendshipRepo) FindAcceptedByRecipient(ctx context.Context, userID string, limit int64) ([]models.Friendship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var results []models.Friendship
	for _, f := range r.byID {
		if f.User2 == userID && f.Status == models.FriendshipStatusAccepted {
			results = append(results, f)
		}
	}
	return sortAndLimit(results, limit), nil
}

// sortAndLimit keeps fake query results in creation order (ObjectIDs are
// monotonic) so batch composition in tests is deterministic.
func sortAndLimit(results []models.Friendship, limit int64) []models.Friendship {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Id.Hex() < results[j].Id.Hex()
	})
	if limit > 0 && int64(len(results)) > limit {
		results = results[:limit]
	}
	return results
}

func (r *memoryFriendshipRepo) UpdateStatus(ctx context.Context, id string, status models.FriendshipStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.byID[id]; ok {
		f.Status = status
		r.byID[id] = f
	}
	return nil
}

func (r *memoryFriendshipRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *memoryFriendshipRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

// memoryUserRepo is the directory fake. It records every FindByIDs batch
// size so tests can assert the ten-ID cap, and can be told to fail the
// batch containing a given user.
type memoryUserRepo struct {
	mu         sync.Mutex
	byID       map[string]models.User
	batchSizes []int
	failFor    map[string]bool
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		byID:    make(map[string]models.User),
		failFor: make(map[string]bool),
	}
}

func (r *memoryUserRepo) addUser(name, username string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := models.User{
		Id:       primitive.NewObjectID(),
		Name:     name,
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	r.byID[user.Id.Hex()] = user
	return user.Id.Hex()
}

func (r *memoryUserRepo) Insert(ctx context.Context, user *models.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	r.byID[user.Id.Hex()] = *user
	return user.Id.Hex(), nil
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.byID[id]; ok {
		copy := user
		return &copy, nil
	}
	return nil, nil
}

func (r *memoryUserRepo) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(ids) > repository.MaxUsersPerBatch {
		return nil, fmt.Errorf("at most %d ids per lookup, got %d", repository.MaxUsersPerBatch, len(ids))
	}
	r.batchSizes = append(r.batchSizes, len(ids))

	for _, id := range ids {
		if r.failFor[id] {
			return nil, fmt.Errorf("simulated batch failure for %s", id)
		}
	}

	var users []models.User
	for _, id := range ids {
		if user, ok := r.byID[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email == email {
			copy := user
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Username == username {
			copy := user
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[user.Id.Hex()] = *user
	return nil
}

func (r *memoryUserRepo) Search(ctx context.Context, query string, limit int64) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []models.User
	for _, user := range r.byID {
		if len(query) <= len(user.Username) && user.Username[:len(query)] == query {
			users = append(users, user)
			if limit > 0 && int64(len(users)) == limit {
				break
			}
		}
	}
	return users, nil
}

// memoryHikeRepo backs the hike and feed service tests.
type memoryHikeRepo struct {
	mu       sync.Mutex
	hikes    map[string]models.Hike
	logs     []models.HikeLog
	wishlist []models.WishlistItem
}

func newMemoryHikeRepo() *memoryHikeRepo {
	return &memoryHikeRepo{hikes: make(map[string]models.Hike)}
}

func (r *memoryHikeRepo) addHike(name, region string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	hike := models.Hike{
		Id:         primitive.NewObjectID(),
		Name:       name,
		Region:     region,
		Difficulty: models.HikeDifficultyModerate,
	}
	r.hikes[hike.Id.Hex()] = hike
	return hike.Id.Hex()
}

func (r *memoryHikeRepo) InsertHike(ctx context.Context, hike *models.Hike) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if hike.Id.IsZero() {
		hike.Id = primitive.NewObjectID()
	}
	r.hikes[hike.Id.Hex()] = *hike
	return hike.Id.Hex(), nil
}

func (r *memoryHikeRepo) FindHikeByID(ctx context.Context, id string) (*models.Hike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if hike, ok := r.hikes[id]; ok {
		copy := hike
		return &copy, nil
	}
	return nil, nil
}

func (r *memoryHikeRepo) FindHikesByIDs(ctx context.Context, ids []string) ([]models.Hike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var hikes []models.Hike
	for _, id := range ids {
		if hike, ok := r.hikes[id]; ok {
			hikes = append(hikes, hike)
		}
	}
	return hikes, nil
}

func (r *memoryHikeRepo) SearchHikes(ctx context.Context, filter repository.HikeFilter) ([]models.Hike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var hikes []models.Hike
	for _, hike := range r.hikes {
		if filter.Region != "" && hike.Region != filter.Region {
			continue
		}
		if filter.Difficulty != "" && hike.Difficulty != filter.Difficulty {
			continue
		}
		hikes = append(hikes, hike)
		if filter.Limit > 0 && int64(len(hikes)) == filter.Limit {
			break
		}
	}
	return hikes, nil
}

func (r *memoryHikeRepo) InsertLog(ctx context.Context, log *models.HikeLog) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if log.Id.IsZero() {
		log.Id = primitive.NewObjectID()
	}
	r.logs = append(r.logs, *log)
	return log.Id.Hex(), nil
}

func (r *memoryHikeRepo) FindLogsByUser(ctx context.Context, userID string, limit int64) ([]models.HikeLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var logs []models.HikeLog
	for _, log := range r.logs {
		if log.UserID == userID {
			logs = append(logs, log)
			if limit > 0 && int64(len(logs)) == limit {
				break
			}
		}
	}
	return logs, nil
}

func (r *memoryHikeRepo) FindLogsByUsers(ctx context.Context, userIDs []string, limit int64) ([]models.HikeLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	members := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		members[id] = true
	}
	var logs []models.HikeLog
	for _, log := range r.logs {
		if members[log.UserID] {
			logs = append(logs, log)
			if limit > 0 && int64(len(logs)) == limit {
				break
			}
		}
	}
	return logs, nil
}

func (r *memoryHikeRepo) FindWishlist(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []models.WishlistItem
	for _, item := range r.wishlist {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *memoryHikeRepo) FindWishlistItem(ctx context.Context, userID, hikeID string) (*models.WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.wishlist {
		if item.UserID == userID && item.HikeID.Hex() == hikeID {
			copy := item
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *memoryHikeRepo) InsertWishlistItem(ctx context.Context, item *models.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.Id.IsZero() {
		item.Id = primitive.NewObjectID()
	}
	r.wishlist = append(r.wishlist, *item)
	return nil
}

func (r *memoryHikeRepo) DeleteWishlistItem(ctx context.Context, userID, hikeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.wishlist[:0]
	for _, item := range r.wishlist {
		if !(item.UserID == userID && item.HikeID.Hex() == hikeID) {
			kept = append(kept, item)
		}
	}
	r.wishlist = kept
	return nil
}

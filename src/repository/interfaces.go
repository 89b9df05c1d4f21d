// Package repository implements data access over MongoDB. Services depend
// on the interfaces here so tests can swap in in-memory fakes.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trailmates/trailmates-server/src/models"
)

// ErrDuplicatePair is returned when inserting a friendship for an unordered
// pair that already has an edge, regardless of direction.
var ErrDuplicatePair = errors.New("friendship already exists for this pair")

// MaxUsersPerBatch is the cap on the fetch-by-ID-list primitive. Callers
// needing more must batch.
const MaxUsersPerBatch = 10

type FriendshipRepository interface {
	// Insert stores a new friendship. Fails with ErrDuplicatePair when an
	// edge for the same unordered pair already exists.
	Insert(ctx context.Context, f *models.Friendship) (string, error)
	// FindByID returns (nil, nil) when the record does not exist.
	FindByID(ctx context.Context, id string) (*models.Friendship, error)
	// FindDirectional returns edges where requester sent to recipient, in
	// that order only.
	FindDirectional(ctx context.Context, requester, recipient string) ([]models.Friendship, error)
	// FindPendingInvolving returns pending edges where the user is on
	// either side.
	FindPendingInvolving(ctx context.Context, userID string) ([]models.Friendship, error)
	// FindAcceptedByRequester / FindAcceptedByRecipient scan accepted edges
	// from one side each, capped at limit.
	FindAcceptedByRequester(ctx context.Context, userID string, limit int64) ([]models.Friendship, error)
	FindAcceptedByRecipient(ctx context.Context, userID string, limit int64) ([]models.Friendship, error)
	UpdateStatus(ctx context.Context, id string, status models.FriendshipStatus) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (string, error)
	// FindByID returns (nil, nil) when no user exists for the ID, including
	// when the ID is not a valid identifier at all.
	FindByID(ctx context.Context, id string) (*models.User, error)
	// FindByIDs resolves up to MaxUsersPerBatch users in one call and
	// rejects larger inputs.
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Search(ctx context.Context, query string, limit int64) ([]models.User, error)
}

// HikeFilter narrows the catalog search. AfterID is a pagination cursor:
// only hikes with an ID greater than it are returned.
type HikeFilter struct {
	Region     string
	Difficulty models.HikeDifficulty
	AfterID    string
	Limit      int64
}

type HikeRepository interface {
	InsertHike(ctx context.Context, hike *models.Hike) (string, error)
	FindHikeByID(ctx context.Context, id string) (*models.Hike, error)
	FindHikesByIDs(ctx context.Context, ids []string) ([]models.Hike, error)
	SearchHikes(ctx context.Context, filter HikeFilter) ([]models.Hike, error)

	InsertLog(ctx context.Context, log *models.HikeLog) (string, error)
	FindLogsByUser(ctx context.Context, userID string, limit int64) ([]models.HikeLog, error)
	FindLogsByUsers(ctx context.Context, userIDs []string, limit int64) ([]models.HikeLog, error)

	FindWishlist(ctx context.Context, userID string) ([]models.WishlistItem, error)
	FindWishlistItem(ctx context.Context, userID, hikeID string) (*models.WishlistItem, error)
	InsertWishlistItem(ctx context.Context, item *models.WishlistItem) error
	DeleteWishlistItem(ctx context.Context, userID, hikeID string) error
}

// Repos bundles the repositories for service-layer injection.
type Repos struct {
	Friendships FriendshipRepository
	Users       UserRepository
	Hikes       HikeRepository
}

// NewRepos wires the MongoDB implementations against a connected database.
func NewRepos(db *mongo.Database) *Repos {
	return &Repos{
		Friendships: NewFriendshipRepository(db),
		Users:       NewUserRepository(db),
		Hikes:       NewHikeRepository(db),
	}
}

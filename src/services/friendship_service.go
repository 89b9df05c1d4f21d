package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/trailmates/trailmates-server/src/models"
	"github.com/trailmates/trailmates-server/src/repository"
)

// DefaultMaxFriends bounds the edge scan in GetFriends when the caller does
// not ask for a limit.
const DefaultMaxFriends = 50

// FriendshipService owns the friendship lifecycle between two users:
// request, direct add, accept, remove, pending enumeration and friend-list
// materialization. It holds no state of its own; both collaborators are
// injected so tests can run against in-memory fakes.
type FriendshipService struct {
	friendships repository.FriendshipRepository
	users       repository.UserRepository
}

func NewFriendshipService(friendships repository.FriendshipRepository, users repository.UserRepository) *FriendshipService {
	return &FriendshipService{friendships: friendships, users: users}
}

// GetFriendship returns every edge between userA and userB, checking both
// directions since either side may have sent the request. The two
// directional queries run concurrently and the results are unioned; each
// record is annotated with its sender so callers can tell direction apart.
// An empty result means no relationship; duplicates are passed through
// rather than collapsed.
func (s *FriendshipService) GetFriendship(ctx context.Context, userA, userB string) ([]models.Friendship, error) {
	if userA == "" || userB == "" {
		return nil, nil
	}

	var sent, received []models.Friendship
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sent, err = s.friendships.FindDirectional(gctx, userA, userB)
		return err
	})
	g.Go(func() error {
		var err error
		received, err = s.friendships.FindDirectional(gctx, userB, userA)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, transportError("lookup friendship", err)
	}

	results := append(sent, received...)
	for i := range results {
		results[i].SenderID = results[i].User1
	}
	return results, nil
}

// RequestFriendship creates a pending edge from userA to userB.
func (s *FriendshipService) RequestFriendship(ctx context.Context, userA, userB string) error {
	return s.createFriendship(ctx, userA, userB, models.FriendshipStatusPending)
}

// AddFriendship creates an already-accepted edge, skipping the pending
// stage. Used by admin and direct-link flows; gated exactly like a request.
func (s *FriendshipService) AddFriendship(ctx context.Context, userA, userB string) error {
	return s.createFriendship(ctx, userA, userB, models.FriendshipStatusAccepted)
}

// createFriendship runs the shared precondition chain in order, each gate
// failing fast with its own error type, then writes the edge.
func (s *FriendshipService) createFriendship(ctx context.Context, userA, userB string, status models.FriendshipStatus) error {
	if userA == "" || userB == "" {
		return validationErrorf("both user ids are required")
	}
	if userA == userB {
		return validationErrorf("cannot create a friendship with yourself")
	}

	for _, id := range []string{userA, userB} {
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			return transportError("resolve user", err)
		}
		if user == nil {
			return notFoundErrorf("user %s does not exist", id)
		}
	}

	existing, err := s.GetFriendship(ctx, userA, userB)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return conflictErrorf("a friendship already exists between %s and %s", userA, userB)
	}

	_, err = s.friendships.Insert(ctx, &models.Friendship{
		User1:  userA,
		User2:  userB,
		Status: status,
		Since:  time.Now(),
	})
	if err != nil {
		// The store's pair constraint closes the window between the check
		// above and this write when two callers race.
		if errors.Is(err, repository.ErrDuplicatePair) {
			return conflictErrorf("a friendship already exists between %s and %s", userA, userB)
		}
		return transportError("create friendship", err)
	}
	return nil
}

// AcceptFriendship marks the edge accepted. The write is unconditional:
// accepting an already-accepted record is a harmless no-op write, and
// checking that the caller is the recipient is the HTTP layer's job.
func (s *FriendshipService) AcceptFriendship(ctx context.Context, friendshipID string) error {
	if friendshipID == "" {
		return validationErrorf("friendship id is required")
	}
	if err := s.friendships.UpdateStatus(ctx, friendshipID, models.FriendshipStatusAccepted); err != nil {
		return transportError("accept friendship", err)
	}
	return nil
}

// RemoveFriendship deletes the edge by ID. Cancel, decline and unfriend are
// all this one operation.
func (s *FriendshipService) RemoveFriendship(ctx context.Context, friendshipID string) error {
	if friendshipID == "" {
		return validationErrorf("friendship id is required")
	}
	if err := s.friendships.Delete(ctx, friendshipID); err != nil {
		return transportError("remove friendship", err)
	}
	return nil
}

// GetFriendshipByID loads a single edge, annotated with its sender.
// Returns (nil, nil) when no such record exists.
func (s *FriendshipService) GetFriendshipByID(ctx context.Context, friendshipID string) (*models.Friendship, error) {
	if friendshipID == "" {
		return nil, validationErrorf("friendship id is required")
	}
	f, err := s.friendships.FindByID(ctx, friendshipID)
	if err != nil {
		return nil, transportError("lookup friendship", err)
	}
	if f == nil {
		return nil, nil
	}
	f.SenderID = f.User1
	return f, nil
}

// GetAllPendingFriendship returns pending edges where the user is on either
// side: requests they sent and requests waiting on their decision. SenderID
// tells the two apart.
func (s *FriendshipService) GetAllPendingFriendship(ctx context.Context, userID string) ([]models.Friendship, error) {
	if userID == "" {
		return nil, validationErrorf("user id is required")
	}

	pending, err := s.friendships.FindPendingInvolving(ctx, userID)
	if err != nil {
		return nil, transportError("list pending friendships", err)
	}
	for i := range pending {
		pending[i].SenderID = pending[i].User1
	}
	return pending, nil
}

// GetFriends materializes the user's friend list as full profiles. The two
// directional edge scans run concurrently and are each capped at maxResults;
// the unioned IDs are resolved in batches of at most ten. A batch that fails
// to resolve is logged and dropped so one bad lookup never empties the whole
// result.
func (s *FriendshipService) GetFriends(ctx context.Context, userID string, maxResults int64) ([]models.User, error) {
	friendIDs, err := s.FriendIDs(ctx, userID, maxResults)
	if err != nil {
		return nil, err
	}

	var friends []models.User
	for start := 0; start < len(friendIDs); start += repository.MaxUsersPerBatch {
		end := start + repository.MaxUsersPerBatch
		if end > len(friendIDs) {
			end = len(friendIDs)
		}

		batch, err := s.users.FindByIDs(ctx, friendIDs[start:end])
		if err != nil {
			zap.L().Warn("friend profile batch failed, dropping batch",
				zap.String("userId", userID),
				zap.Int("batchStart", start),
				zap.Error(err))
			continue
		}
		for _, u := range batch {
			u.Password = ""
			friends = append(friends, u)
		}
	}
	return friends, nil
}

// FriendIDs returns just the identifiers of the user's accepted friends,
// for callers that compose further queries (the activity feed).
func (s *FriendshipService) FriendIDs(ctx context.Context, userID string, maxResults int64) ([]string, error) {
	if userID == "" {
		return nil, validationErrorf("user id is required")
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxFriends
	}

	var asRequester, asRecipient []models.Friendship
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		asRequester, err = s.friendships.FindAcceptedByRequester(gctx, userID, maxResults)
		return err
	})
	g.Go(func() error {
		var err error
		asRecipient, err = s.friendships.FindAcceptedByRecipient(gctx, userID, maxResults)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, transportError("scan friendships", err)
	}

	seen := make(map[string]bool)
	var ids []string
	for _, f := range asRequester {
		if !seen[f.User2] {
			seen[f.User2] = true
			ids = append(ids, f.User2)
		}
	}
	for _, f := range asRecipient {
		if !seen[f.User1] {
			seen[f.User1] = true
			ids = append(ids, f.User1)
		}
	}
	if int64(len(ids)) > maxResults {
		ids = ids[:maxResults]
	}
	return ids, nil
}

// Package services holds the application logic between the HTTP layer and
// the repositories.
package services

import (
	"github.com/trailmates/trailmates-server/src/lib"
	"github.com/trailmates/trailmates-server/src/repository"
)

var (
	Friendships *FriendshipService
	Users       *UserService
	Hikes       *HikeService
	Feed        *FeedService
)

// InitServices wires the service singletons the controllers use. Tests
// construct services directly with fakes instead.
func InitServices(repos *repository.Repos, cache *lib.Cache) {
	Friendships = NewFriendshipService(repos.Friendships, repos.Users)
	Users = NewUserService(repos.Users)
	Hikes = NewHikeService(repos.Hikes)
	Feed = NewFeedService(Friendships, repos.Hikes, repos.Users, cache)
}

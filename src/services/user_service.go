package services

import (
	"context"

	"github.com/trailmates/trailmates-server/src/lib"
	"github.com/trailmates/trailmates-server/src/models"
	"github.com/trailmates/trailmates-server/src/repository"
)

// UserService is the user directory: registration, login and profile
// resolution for the rest of the application.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates a user and returns it with a fresh session token.
func (s *UserService) Register(ctx context.Context, name, username, email, password string) (*models.User, string, error) {
	if name == "" || username == "" || email == "" || password == "" {
		return nil, "", validationErrorf("name, username, email and password are required")
	}
	if len(password) < 6 {
		return nil, "", validationErrorf("password must be at least 6 characters")
	}

	if existing, err := s.users.FindByEmail(ctx, email); err != nil {
		return nil, "", transportError("check email", err)
	} else if existing != nil {
		return nil, "", conflictErrorf("email already in use")
	}
	if existing, err := s.users.FindByUsername(ctx, username); err != nil {
		return nil, "", transportError("check username", err)
	} else if existing != nil {
		return nil, "", conflictErrorf("username already taken")
	}

	hashed, err := lib.HashPassword(password)
	if err != nil {
		return nil, "", transportError("hash password", err)
	}

	user := &models.User{
		Name:     name,
		Username: username,
		Email:    email,
		Password: hashed,
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, "", transportError("create user", err)
	}

	token, err := lib.GenerateJWT(id)
	if err != nil {
		return nil, "", transportError("issue token", err)
	}

	user.Password = ""
	return user, token, nil
}

// Login checks credentials and returns the user with a session token.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", validationErrorf("username and password are required")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", transportError("lookup user", err)
	}
	if user == nil || !lib.CheckPassword(user.Password, password) {
		return nil, "", validationErrorf("invalid username or password")
	}

	token, err := lib.GenerateJWT(user.Id.Hex())
	if err != nil {
		return nil, "", transportError("issue token", err)
	}

	user.Password = ""
	return user, token, nil
}

// GetUser resolves a public profile. Returns (nil, nil) when absent.
func (s *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, transportError("lookup user", err)
	}
	if user == nil {
		return nil, nil
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile applies editable profile fields and returns the updated
// user. Credentials are not editable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, changes models.User) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, transportError("lookup user", err)
	}
	if user == nil {
		return nil, notFoundErrorf("user %s does not exist", userID)
	}

	if changes.Name != "" {
		user.Name = changes.Name
	}
	if changes.Bio != "" {
		user.Bio = changes.Bio
	}
	if changes.Location != "" {
		user.Location = changes.Location
	}
	if changes.FavoriteRegion != "" {
		user.FavoriteRegion = changes.FavoriteRegion
	}
	if changes.ProfilePicture != "" {
		user.ProfilePicture = changes.ProfilePicture
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, transportError("update user", err)
	}
	user.Password = ""
	return user, nil
}

// Search finds users by name or username prefix.
func (s *UserService) Search(ctx context.Context, query string, limit int64) ([]models.UserDto, error) {
	if query == "" {
		return nil, validationErrorf("search query is required")
	}
	if limit <= 0 {
		limit = 20
	}

	users, err := s.users.Search(ctx, query, limit)
	if err != nil {
		return nil, transportError("search users", err)
	}

	dtos := make([]models.UserDto, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, u.Dto())
	}
	return dtos, nil
}

// Package services contains server-side business logic: the named read and
// write operations combining identity, authorization and persistence.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deepthoughts/internal/common"
	"github.com/dmitrijs2005/deepthoughts/internal/server/auth"
	"github.com/dmitrijs2005/deepthoughts/internal/server/config"
	"github.com/dmitrijs2005/deepthoughts/internal/server/models"
	"github.com/dmitrijs2005/deepthoughts/internal/server/repositories/thoughts"
	"github.com/dmitrijs2005/deepthoughts/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService provides account-related operations:
// - Register / Login: credential handling and token issuance
// - Me: the caller's own record resolved from the identity context
// - Users / User: public reads
// - AddFriend: one-way friend edge on the caller's document
type UserService struct {
	users                 users.Repository
	thoughts              thoughts.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(u users.Repository, t thoughts.Repository, cfg *config.Config) *UserService {
	return &UserService{
		users:                 u,
		thoughts:              t,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register hashes the password, creates the user and issues a token from the
// new user's identity fields. Duplicate username/email yields
// common.ErrorValidation.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*AuthPayload, error) {
	if username == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorValidation
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.authPayload(ctx, created)
}

// Login verifies the password against the stored hash. A missing user and a
// wrong password yield the same common.ErrorInvalidCredentials so the caller
// cannot tell which one failed.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorInvalidCredentials
	}

	return s.authPayload(ctx, user)
}

// Me returns the caller's own record, resolved by the identity context's
// user id, with friends and thoughts expanded.
func (s *UserService) Me(ctx context.Context, identity *auth.Identity) (*UserView, error) {
	if identity == nil {
		return nil, common.ErrorUnauthenticated
	}

	id, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		return nil, common.ErrorUnauthenticated
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return s.expandUser(ctx, user)
}

// Users returns all users with friends and thoughts expanded.
func (s *UserService) Users(ctx context.Context) ([]*UserView, error) {
	all, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	views := make([]*UserView, 0, len(all))
	for _, user := range all {
		view, err := s.expandUser(ctx, user)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// User returns the user with the given username, expanded, or nil (not an
// error) when no such user exists.
func (s *UserService) User(ctx context.Context, username string) (*UserView, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	return s.expandUser(ctx, user)
}

// AddFriend adds friendID to the caller's friend set. The relation is
// one-directional and idempotent: adding the same id twice leaves a single
// entry, and the friend's own document is untouched.
func (s *UserService) AddFriend(ctx context.Context, identity *auth.Identity, friendID string) (*UserView, error) {
	if identity == nil {
		return nil, common.ErrorUnauthenticated
	}

	userID, err := primitive.ObjectIDFromHex(identity.UserID)
	if err != nil {
		return nil, common.ErrorUnauthenticated
	}
	fid, err := primitive.ObjectIDFromHex(friendID)
	if err != nil {
		return nil, common.ErrorValidation
	}

	user, err := s.users.AddFriend(ctx, userID, fid)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error adding friend: %w", err)
	}

	return s.expandUser(ctx, user)
}

// expandUser assembles the full view: shallow friend views plus the user's
// thoughts in the stored sequence order.
func (s *UserService) expandUser(ctx context.Context, user *models.User) (*UserView, error) {
	view := newShallowUserView(user)
	view.Friends = []*UserView{}
	view.Thoughts = []*ThoughtView{}

	if len(user.Friends) > 0 {
		friends, err := s.users.GetByIDs(ctx, user.Friends)
		if err != nil {
			return nil, fmt.Errorf("error expanding friends: %w", err)
		}
		byID := make(map[primitive.ObjectID]*models.User, len(friends))
		for _, f := range friends {
			byID[f.ID] = f
		}
		for _, id := range user.Friends {
			if f, ok := byID[id]; ok {
				view.Friends = append(view.Friends, newShallowUserView(f))
			}
		}
	}

	if len(user.Thoughts) > 0 {
		list, err := s.thoughts.GetByIDs(ctx, user.Thoughts)
		if err != nil {
			return nil, fmt.Errorf("error expanding thoughts: %w", err)
		}
		byID := make(map[primitive.ObjectID]*models.Thought, len(list))
		for _, t := range list {
			byID[t.ID] = t
		}
		for _, id := range user.Thoughts {
			if t, ok := byID[id]; ok {
				view.Thoughts = append(view.Thoughts, newThoughtView(t))
			}
		}
	}

	return view, nil
}

func (s *UserService) authPayload(ctx context.Context, user *models.User) (*AuthPayload, error) {
	identity := auth.Identity{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
	}

	token, err := auth.IssueToken(identity, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	view, err := s.expandUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &AuthPayload{Token: token, User: view}, nil
}

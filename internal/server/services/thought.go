package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/deepthoughts/internal/common"
	"github.com/dmitrijs2005/deepthoughts/internal/logging"
	"github.com/dmitrijs2005/deepthoughts/internal/server/auth"
	"github.com/dmitrijs2005/deepthoughts/internal/server/models"
	"github.com/dmitrijs2005/deepthoughts/internal/server/repositories/thoughts"
	"github.com/dmitrijs2005/deepthoughts/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ThoughtService provides thought-related operations: public reads plus
// authenticated thought creation and reaction appending.
type ThoughtService struct {
	users    users.Repository
	thoughts thoughts.Repository
	logger   logging.Logger
}

func NewThoughtService(u users.Repository, t thoughts.Repository, l logging.Logger) *ThoughtService {
	return &ThoughtService{
		users:    u,
		thoughts: t,
		logger:   l.With("module", "thought_service"),
	}
}

// Thoughts lists thoughts sorted by createdAt descending, optionally
// filtered by exact author username.
func (s *ThoughtService) Thoughts(ctx context.Context, username string) ([]*ThoughtView, error) {
	list, err := s.thoughts.List(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error listing thoughts: %w", err)
	}

	views := make([]*ThoughtView, 0, len(list))
	for _, t := range list {
		views = append(views, newThoughtView(t))
	}
	return views, nil
}

// Thought returns a single thought by id, or nil (not an error) when the id
// is unknown or unparsable.
func (s *ThoughtService) Thought(ctx context.Context, id string) (*ThoughtView, error) {
	thoughtID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	thought, err := s.thoughts.GetByID(ctx, thoughtID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error searching thought: %w", err)
	}
	return newThoughtView(thought), nil
}

// AddThought creates a thought authored by the identity context's username
// (caller input never decides authorship) and pushes its id onto the
// author's thoughts sequence. The two writes are independent: if the second
// fails, the created thought is still returned and remains queryable.
func (s *ThoughtService) AddThought(ctx context.Context, identity *auth.Identity, thoughtText string) (*ThoughtView, error) {
	if identity == nil {
		return nil, common.ErrorUnauthenticated
	}
	if thoughtText == "" || len(thoughtText) > models.MaxThoughtTextLength {
		return nil, common.ErrorValidation
	}

	thought := &models.Thought{
		ThoughtText: thoughtText,
		Username:    identity.Username,
		CreatedAt:   time.Now(),
	}

	created, err := s.thoughts.Create(ctx, thought)
	if err != nil {
		return nil, fmt.Errorf("error creating thought: %w", err)
	}

	if userID, err := primitive.ObjectIDFromHex(identity.UserID); err == nil {
		if err := s.users.AppendThought(ctx, userID, created.ID); err != nil {
			// The thought exists and is queryable on its own; the missing
			// back-reference is a recoverable inconsistency.
			s.logger.Error(ctx, "error appending thought to user",
				"username", identity.Username, "thought_id", created.ID.Hex(), "error", err.Error())
		}
	}

	return newThoughtView(created), nil
}

// AddReaction appends a reaction authored by the identity's username onto
// the identified thought and returns the updated thought. An unknown
// thought id yields common.ErrorNotFound.
func (s *ThoughtService) AddReaction(ctx context.Context, identity *auth.Identity, thoughtID, reactionBody string) (*ThoughtView, error) {
	if identity == nil {
		return nil, common.ErrorUnauthenticated
	}
	if reactionBody == "" || len(reactionBody) > models.MaxThoughtTextLength {
		return nil, common.ErrorValidation
	}

	id, err := primitive.ObjectIDFromHex(thoughtID)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	reaction := models.Reaction{
		ID:           primitive.NewObjectID(),
		ReactionBody: reactionBody,
		Username:     identity.Username,
		CreatedAt:    time.Now(),
	}

	updated, err := s.thoughts.AddReaction(ctx, id, reaction)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error adding reaction: %w", err)
	}

	return newThoughtView(updated), nil
}

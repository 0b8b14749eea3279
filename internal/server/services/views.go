package services

import (
	"time"

	"github.com/dmitrijs2005/deepthoughts/internal/server/models"
)

// UserView is the caller-facing shape of a user document. It never carries
// the password hash. Friends are shallow: their own friends/thoughts stay
// unexpanded (single-level population).
type UserView struct {
	ID          string         `json:"id"`
	Username    string         `json:"username"`
	Email       string         `json:"email"`
	FriendCount int            `json:"friendCount"`
	Friends     []*UserView    `json:"friends"`
	Thoughts    []*ThoughtView `json:"thoughts"`
}

type ThoughtView struct {
	ID            string          `json:"id"`
	ThoughtText   string          `json:"thoughtText"`
	Username      string          `json:"username"`
	CreatedAt     time.Time       `json:"createdAt"`
	ReactionCount int             `json:"reactionCount"`
	Reactions     []*ReactionView `json:"reactions"`
}

type ReactionView struct {
	ID           string    `json:"id"`
	ReactionBody string    `json:"reactionBody"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthPayload is the register/login result: a signed token plus the user it
// identifies.
type AuthPayload struct {
	Token string    `json:"token"`
	User  *UserView `json:"user"`
}

func newShallowUserView(u *models.User) *UserView {
	return &UserView{
		ID:          u.ID.Hex(),
		Username:    u.Username,
		Email:       u.Email,
		FriendCount: len(u.Friends),
	}
}

func newThoughtView(t *models.Thought) *ThoughtView {
	reactions := make([]*ReactionView, 0, len(t.Reactions))
	for _, r := range t.Reactions {
		reactions = append(reactions, &ReactionView{
			ID:           r.ID.Hex(),
			ReactionBody: r.ReactionBody,
			Username:     r.Username,
			CreatedAt:    r.CreatedAt,
		})
	}
	return &ThoughtView{
		ID:            t.ID.Hex(),
		ThoughtText:   t.ThoughtText,
		Username:      t.Username,
		CreatedAt:     t.CreatedAt,
		ReactionCount: len(t.Reactions),
		Reactions:     reactions,
	}
}

package client

import (
	"context"
	"time"
)

// User mirrors the server's user view.
type User struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FriendCount int        `json:"friendCount"`
	Friends     []*User    `json:"friends"`
	Thoughts    []*Thought `json:"thoughts"`
}

// Thought mirrors the server's thought view.
type Thought struct {
	ID            string      `json:"id"`
	ThoughtText   string      `json:"thoughtText"`
	Username      string      `json:"username"`
	CreatedAt     time.Time   `json:"createdAt"`
	ReactionCount int         `json:"reactionCount"`
	Reactions     []*Reaction `json:"reactions"`
}

// Reaction mirrors the server's reaction view.
type Reaction struct {
	ID           string    `json:"id"`
	ReactionBody string    `json:"reactionBody"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthPayload is the register/login result.
type AuthPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (c *APIClient) Register(ctx context.Context, username, email, password string) (*AuthPayload, error) {
	out := &AuthPayload{}
	args := map[string]string{"username": username, "email": email, "password": password}
	if err := c.Do(ctx, "register", args, out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return out, nil
}

func (c *APIClient) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	out := &AuthPayload{}
	args := map[string]string{"email": email, "password": password}
	if err := c.Do(ctx, "login", args, out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return out, nil
}

func (c *APIClient) Me(ctx context.Context) (*User, error) {
	out := &User{}
	if err := c.Do(ctx, "getMe", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) Users(ctx context.Context) ([]*User, error) {
	out := []*User{}
	if err := c.Do(ctx, "listUsers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) User(ctx context.Context, username string) (*User, error) {
	var out *User
	args := map[string]string{"username": username}
	if err := c.Do(ctx, "getUser", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) Thoughts(ctx context.Context, username string) ([]*Thought, error) {
	out := []*Thought{}
	args := map[string]string{}
	if username != "" {
		args["username"] = username
	}
	if err := c.Do(ctx, "listThoughts", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) Thought(ctx context.Context, id string) (*Thought, error) {
	var out *Thought
	args := map[string]string{"id": id}
	if err := c.Do(ctx, "getThought", args, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) AddThought(ctx context.Context, thoughtText string) (*Thought, error) {
	out := &Thought{}
	args := map[string]string{"thoughtText": thoughtText}
	if err := c.Do(ctx, "addThought", args, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) AddReaction(ctx context.Context, thoughtID, reactionBody string) (*Thought, error) {
	out := &Thought{}
	args := map[string]string{"thoughtId": thoughtID, "reactionBody": reactionBody}
	if err := c.Do(ctx, "addReaction", args, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) AddFriend(ctx context.Context, friendID string) (*User, error) {
	out := &User{}
	args := map[string]string{"friendId": friendID}
	if err := c.Do(ctx, "addFriend", args, out); err != nil {
		return nil, err
	}
	return out, nil
}

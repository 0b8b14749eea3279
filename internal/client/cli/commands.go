package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/deepthoughts/internal/client/client"
)

func (a *App) printUser(u *client.User) {
	fmt.Fprintf(a.out, "%s <%s> (id %s), %d friend(s)\n", u.Username, u.Email, u.ID, u.FriendCount)
	for _, f := range u.Friends {
		fmt.Fprintf(a.out, "  friend: %s (id %s)\n", f.Username, f.ID)
	}
	for _, t := range u.Thoughts {
		a.printThought(t)
	}
}

func (a *App) printThought(t *client.Thought) {
	fmt.Fprintf(a.out, "  [%s] %s: %s (%d reaction(s))\n",
		t.CreatedAt.Format("2006-01-02 15:04"), t.Username, t.ThoughtText, t.ReactionCount)
	for _, r := range t.Reactions {
		fmt.Fprintf(a.out, "    [%s] %s: %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Username, r.ReactionBody)
	}
}

func (a *App) Me(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	user, err := a.api.Me(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.printUser(user)
}

func (a *App) Users(ctx context.Context) {
	users, err := a.api.Users(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "%s <%s> (id %s)\n", u.Username, u.Email, u.ID)
	}
}

func (a *App) User(ctx context.Context, username string) {
	user, err := a.api.User(ctx, username)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if user == nil {
		fmt.Fprintf(a.out, "No user named %q\n", username)
		return
	}
	a.printUser(user)
}

func (a *App) Thoughts(ctx context.Context, username string) {
	thoughts, err := a.api.Thoughts(ctx, username)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	for _, t := range thoughts {
		fmt.Fprintf(a.out, "(id %s)\n", t.ID)
		a.printThought(t)
	}
}

func (a *App) Thought(ctx context.Context, id string) {
	thought, err := a.api.Thought(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if thought == nil {
		fmt.Fprintf(a.out, "No thought with id %q\n", id)
		return
	}
	a.printThought(thought)
}

func (a *App) Post(ctx context.Context) {
	text, err := a.prompt("Enter thought text")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	thought, err := a.api.AddThought(ctx, text)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Posted (id %s)\n", thought.ID)
}

func (a *App) React(ctx context.Context, thoughtID string) {
	body, err := a.prompt("Enter reaction")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	thought, err := a.api.AddReaction(ctx, thoughtID, body)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	a.printThought(thought)
}

func (a *App) Friend(ctx context.Context, friendID string) {
	user, err := a.api.AddFriend(ctx, friendID)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "You now have %d friend(s)\n", user.FriendCount)
}

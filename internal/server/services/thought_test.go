package services

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/deepthoughts/internal/common"
	"github.com/stretchr/testify/require"
)

func TestAddThought_AuthorFromIdentity(t *testing.T) {
	t.Parallel()

	us, ts := newTestServices(t)
	_, identity := registerTestUser(t, us, "alice", "alice@x.com", "pw123")

	view, err := ts.AddThought(context.Background(), &identity, "hello")
	require.NoError(t, err)
	require.Equal(t, "alice", view.Username)
	require.Equal(t, "hello", view.ThoughtText)
	require.Empty(t, view.Reactions)

	// back-reference lands on the author's record
	me, err := us.Me(context.Background(), &identity)
	require.NoError(t, err)
	require.Len(t, me.Thoughts, 1)
	require.Equal(t, view.ID, me.Thoughts[0].ID)
}

func TestAddThought_Unauthenticated_NoWrite(t *testing.T) {
	t.Parallel()

	_, ts := newTestServices(t)

	_, err := ts.AddThought(context.Background(), nil, "hello")
	require.ErrorIs(t, err, common.ErrorUnauthenticated)

	list, err := ts.Thoughts(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestAddThought_Validation(t *testing.T) {
	t.Parallel()

	us, ts := newTestServices(t)
	_, identity := registerTestUser(t, us, "alice", "alice@x.com", "pw123")

	_, err := ts.AddThought(context.Background(), &identity, "")
	require.ErrorIs(t, err, common.ErrorValidation)

	_, err = ts.AddThought(context.Background(), &identity, strings.Repeat("x", 281))
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestThoughts_NewestFirstAndFilterable(t *testing.T) {
	t.Parallel()

	us, ts := newTestServices(t)
	_, alice := registerTestUser(t, us, "alice", "alice@x.com", "pw123")
	_, bob := registerTestUser(t, us, "bob", "bob@x.com", "pw456")

	_, err := ts.AddThought(context.Background(), &alice, "first")
	require.NoError(t, err)
	_, err = ts.AddThought(context.Background(), &bob, "second")
	require.NoError(t, err)
	_, err = ts.AddThought(context.Background(), &alice, "third")
	require.NoError(t, err)

	all, err := ts.Thoughts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "third", all[0].ThoughtText)
	require.Equal(t, "first", all[2].ThoughtText)

	onlyAlice, err := ts.Thoughts(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, onlyAlice, 2)
	for _, th := range onlyAlice {
		require.Equal(t, "alice", th.Username)
	}
}

func TestThought_UnknownIDIsNilNotError(t *testing.T) {
	t.Parallel()

	_, ts := newTestServices(t)

	view, err := ts.Thought(context.Background(), "64b0c1d2e3f4a5b6c7d8e9f0")
	require.NoError(t, err)
	require.Nil(t, view)

	view, err = ts.Thought(context.Background(), "garbage-id")
	require.NoError(t, err)
	require.Nil(t, view)
}

func TestAddReaction_Success(t *testing.T) {
	t.Parallel()

	us, ts := newTestServices(t)
	_, alice := registerTestUser(t, us, "alice", "alice@x.com", "pw123")
	_, bob := registerTestUser(t, us, "bob", "bob@x.com", "pw456")

	thought, err := ts.AddThought(context.Background(), &alice, "hello")
	require.NoError(t, err)

	updated, err := ts.AddReaction(context.Background(), &bob, thought.ID, "nice one")
	require.NoError(t, err)
	require.Equal(t, 1, updated.ReactionCount)
	require.Equal(t, "bob", updated.Reactions[0].Username)
	require.Equal(t, "nice one", updated.Reactions[0].ReactionBody)
}

func TestAddReaction_NotFound_NoModification(t *testing.T) {
	t.Parallel()

	us, ts := newTestServices(t)
	_, alice := registerTestUser(t, us, "alice", "alice@x.com", "pw123")

	thought, err := ts.AddThought(context.Background(), &alice, "hello")
	require.NoError(t, err)

	_, err = ts.AddReaction(context.Background(), &alice, "64b0c1d2e3f4a5b6c7d8e9f0", "hi")
	require.ErrorIs(t, err, common.ErrorNotFound)

	unchanged, err := ts.Thought(context.Background(), thought.ID)
	require.NoError(t, err)
	require.Equal(t, 0, unchanged.ReactionCount)
}

func TestAddReaction_Unauthenticated(t *testing.T) {
	t.Parallel()

	us, ts := newTestServices(t)
	_, alice := registerTestUser(t, us, "alice", "alice@x.com", "pw123")

	thought, err := ts.AddThought(context.Background(), &alice, "hello")
	require.NoError(t, err)

	_, err = ts.AddReaction(context.Background(), nil, thought.ID, "hi")
	require.ErrorIs(t, err, common.ErrorUnauthenticated)
}

package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type testResponse struct {
	status int
	Data   json.RawMessage `json:"data"`
	Errors []apiError      `json:"errors"`
}

type testUserView struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FriendCount int    `json:"friendCount"`
	Friends     []*testUserView
	Thoughts    []*testThoughtView
}

type testThoughtView struct {
	ID            string `json:"id"`
	ThoughtText   string `json:"thoughtText"`
	Username      string `json:"username"`
	ReactionCount int    `json:"reactionCount"`
	Reactions     []struct {
		Username     string `json:"username"`
		ReactionBody string `json:"reactionBody"`
	} `json:"reactions"`
}

type testAuthPayload struct {
	Token string        `json:"token"`
	User  *testUserView `json:"user"`
}

// doOp sends one operation envelope. Headers/query can be attached via
// modify.
func doOp(t *testing.T, srv *httptest.Server, body string, modify func(*http.Request)) testResponse {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if modify != nil {
		modify(req)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := testResponse{status: resp.StatusCode}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerOp(t *testing.T, srv *httptest.Server, username, email, password string) testAuthPayload {
	t.Helper()

	body := fmt.Sprintf(`{"operation":"register","arguments":{"username":%q,"email":%q,"password":%q}}`, username, email, password)
	resp := doOp(t, srv, body, nil)
	require.Equal(t, http.StatusOK, resp.status)
	require.Empty(t, resp.Errors)

	payload := testAuthPayload{}
	require.NoError(t, json.Unmarshal(resp.Data, &payload))
	require.NotEmpty(t, payload.Token)
	return payload
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReadOperations_Anonymous(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	for _, op := range []string{"listUsers", "listThoughts"} {
		resp := doOp(t, srv, fmt.Sprintf(`{"operation":%q}`, op), nil)
		require.Equal(t, http.StatusOK, resp.status, op)
		require.Empty(t, resp.Errors, op)
	}
}

func TestReadOperations_GarbledTokenFailsOpen(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	resp := doOp(t, srv, `{"operation":"listThoughts"}`, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer garbage")
	})
	require.Equal(t, http.StatusOK, resp.status)
	require.Empty(t, resp.Errors)
}

func TestMutation_WithoutIdentity(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	for _, body := range []string{
		`{"operation":"addThought","arguments":{"thoughtText":"hi"}}`,
		`{"operation":"addReaction","arguments":{"thoughtId":"x","reactionBody":"hi"}}`,
		`{"operation":"addFriend","arguments":{"friendId":"x"}}`,
		`{"operation":"getMe"}`,
	} {
		resp := doOp(t, srv, body, nil)
		require.Equal(t, http.StatusUnauthorized, resp.status)
		require.Len(t, resp.Errors, 1)
		require.Equal(t, "UNAUTHENTICATED", resp.Errors[0].Kind)
	}
}

func TestUnknownOperation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	resp := doOp(t, srv, `{"operation":"dropAllTables"}`, nil)
	require.Equal(t, http.StatusBadRequest, resp.status)
	require.Equal(t, "BAD_REQUEST", resp.Errors[0].Kind)
}

func TestMalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	resp := doOp(t, srv, `{"operation":`, nil)
	require.Equal(t, http.StatusBadRequest, resp.status)
	require.Equal(t, "BAD_REQUEST", resp.Errors[0].Kind)
}

func TestGetUser_MissingIsNullData(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	resp := doOp(t, srv, `{"operation":"getUser","arguments":{"username":"ghost"}}`, nil)
	require.Equal(t, http.StatusOK, resp.status)
	require.Empty(t, resp.Errors)
	require.Equal(t, "null", string(resp.Data))
}

func TestLogin_SameKindForBothFailures(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	registerOp(t, srv, "alice", "alice@x.com", "pw123")

	wrongPass := doOp(t, srv, `{"operation":"login","arguments":{"email":"alice@x.com","password":"wrongpass"}}`, nil)
	noUser := doOp(t, srv, `{"operation":"login","arguments":{"email":"nobody@example.com","password":"anything"}}`, nil)

	require.Equal(t, "INVALID_CREDENTIALS", wrongPass.Errors[0].Kind)
	require.Equal(t, "INVALID_CREDENTIALS", noUser.Errors[0].Kind)
	require.Equal(t, wrongPass.Errors[0].Message, noUser.Errors[0].Message)
}

func TestRegister_DuplicateIsValidation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	registerOp(t, srv, "alice", "alice@x.com", "pw123")

	resp := doOp(t, srv, `{"operation":"register","arguments":{"username":"alice","email":"alice2@x.com","password":"pw"}}`, nil)
	require.Equal(t, http.StatusBadRequest, resp.status)
	require.Equal(t, "VALIDATION", resp.Errors[0].Kind)
}

func TestScenario_RegisterGetMeAddThought(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	payload := registerOp(t, srv, "alice", "alice@x.com", "pw123")

	// getMe with the issued token in the Authorization header
	me := doOp(t, srv, `{"operation":"getMe"}`, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+payload.Token)
	})
	require.Equal(t, http.StatusOK, me.status)

	meView := testUserView{}
	require.NoError(t, json.Unmarshal(me.Data, &meView))
	require.Equal(t, "alice", meView.Username)
	require.Empty(t, meView.Thoughts)
	require.Empty(t, meView.Friends)

	// addThought with the token in the body; a caller-supplied author field
	// in the arguments must be ignored
	body := fmt.Sprintf(`{"operation":"addThought","token":%q,"arguments":{"thoughtText":"hello","username":"mallory"}}`, payload.Token)
	created := doOp(t, srv, body, nil)
	require.Equal(t, http.StatusOK, created.status)

	thoughtView := testThoughtView{}
	require.NoError(t, json.Unmarshal(created.Data, &thoughtView))
	require.Equal(t, "alice", thoughtView.Username)
	require.Equal(t, "hello", thoughtView.ThoughtText)

	// getMe now shows the created thought
	me2 := doOp(t, srv, `{"operation":"getMe"}`, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+payload.Token)
	})
	meView2 := testUserView{}
	require.NoError(t, json.Unmarshal(me2.Data, &meView2))
	require.Len(t, meView2.Thoughts, 1)
	require.Equal(t, thoughtView.ID, meView2.Thoughts[0].ID)

	// and the thought is independently queryable
	one := doOp(t, srv, fmt.Sprintf(`{"operation":"getThought","arguments":{"id":%q}}`, thoughtView.ID), nil)
	require.Equal(t, http.StatusOK, one.status)
	require.NotEqual(t, "null", string(one.Data))
}

func TestScenario_ReactionsAndFriends(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(newTestServer(t).Router())
	defer srv.Close()

	alice := registerOp(t, srv, "alice", "alice@x.com", "pw123")
	bob := registerOp(t, srv, "bob", "bob@x.com", "pw456")

	// alice posts
	body := fmt.Sprintf(`{"operation":"addThought","token":%q,"arguments":{"thoughtText":"hello"}}`, alice.Token)
	created := doOp(t, srv, body, nil)
	thoughtView := testThoughtView{}
	require.NoError(t, json.Unmarshal(created.Data, &thoughtView))

	// bob reacts via query-param token
	reactBody := fmt.Sprintf(`{"operation":"addReaction","arguments":{"thoughtId":%q,"reactionBody":"nice"}}`, thoughtView.ID)
	react := doOp(t, srv, reactBody, func(r *http.Request) {
		q := r.URL.Query()
		q.Set("token", bob.Token)
		r.URL.RawQuery = q.Encode()
	})
	require.Equal(t, http.StatusOK, react.status)

	updated := testThoughtView{}
	require.NoError(t, json.Unmarshal(react.Data, &updated))
	require.Equal(t, 1, updated.ReactionCount)
	require.Equal(t, "bob", updated.Reactions[0].Username)

	// reaction on a non-existent thought is NOT_FOUND
	missing := doOp(t, srv, `{"operation":"addReaction","arguments":{"thoughtId":"64b0c1d2e3f4a5b6c7d8e9f0","reactionBody":"hi"}}`, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+bob.Token)
	})
	require.Equal(t, http.StatusNotFound, missing.status)
	require.Equal(t, "NOT_FOUND", missing.Errors[0].Kind)

	// addFriend twice is idempotent
	friendBody := fmt.Sprintf(`{"operation":"addFriend","token":%q,"arguments":{"friendId":%q}}`, alice.Token, bob.User.ID)
	first := doOp(t, srv, friendBody, nil)
	second := doOp(t, srv, friendBody, nil)

	firstView, secondView := testUserView{}, testUserView{}
	require.NoError(t, json.Unmarshal(first.Data, &firstView))
	require.NoError(t, json.Unmarshal(second.Data, &secondView))
	require.Equal(t, 1, firstView.FriendCount)
	require.Equal(t, 1, secondView.FriendCount)
}

package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/deepthoughts/internal/common"
	"github.com/dmitrijs2005/deepthoughts/internal/server/auth"
	"github.com/google/uuid"
)

// envelope is the wire format of the operation endpoint: an operation name,
// an operation-specific argument bag, and an optional body-sourced token.
type envelope struct {
	Operation string          `json:"operation"`
	Arguments json.RawMessage `json:"arguments"`
	Token     string          `json:"token"`
}

// operation couples the authorization requirement with the handler. The
// requiresIdentity flag is the authorization gate: it is checked against
// the identity context before the handler touches persistence.
type operation struct {
	requiresIdentity bool
	handle           func(ctx context.Context, identity *auth.Identity, args json.RawMessage) (any, error)
}

type usernameArgs struct {
	Username string `json:"username"`
}

type idArgs struct {
	ID string `json:"id"`
}

type registerArgs struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginArgs struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addThoughtArgs struct {
	ThoughtText string `json:"thoughtText"`
}

type addReactionArgs struct {
	ThoughtID    string `json:"thoughtId"`
	ReactionBody string `json:"reactionBody"`
}

type addFriendArgs struct {
	FriendID string `json:"friendId"`
}

func decodeArgs[T any](raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, common.ErrorBadRequest
	}
	return v, nil
}

// operations builds the static dispatch table. The operation set is fixed;
// anything not listed here is a bad request.
func (s *Server) operations() map[string]operation {
	return map[string]operation{
		"listUsers": {handle: func(ctx context.Context, _ *auth.Identity, _ json.RawMessage) (any, error) {
			return s.users.Users(ctx)
		}},
		"getUser": {handle: func(ctx context.Context, _ *auth.Identity, raw json.RawMessage) (any, error) {
			args, err := decodeArgs[usernameArgs](raw)
			if err != nil {
				return nil, err
			}
			return s.users.User(ctx, args.Username)
		}},
		"listThoughts": {handle: func(ctx context.Context, _ *auth.Identity, raw json.RawMessage) (any, error) {
			args, err := decodeArgs[usernameArgs](raw)
			if err != nil {
				return nil, err
			}
			return s.thoughts.Thoughts(ctx, args.Username)
		}},
		"getThought": {handle: func(ctx context.Context, _ *auth.Identity, raw json.RawMessage) (any, error) {
			args, err := decodeArgs[idArgs](raw)
			if err != nil {
				return nil, err
			}
			return s.thoughts.Thought(ctx, args.ID)
		}},
		"getMe": {requiresIdentity: true, handle: func(ctx context.Context, identity *auth.Identity, _ json.RawMessage) (any, error) {
			return s.users.Me(ctx, identity)
		}},
		"register": {handle: func(ctx context.Context, _ *auth.Identity, raw json.RawMessage) (any, error) {
			args, err := decodeArgs[registerArgs](raw)
			if err != nil {
				return nil, err
			}
			return s.users.Register(ctx, args.Username, args.Email, args.Password)
		}},
		"login": {handle: func(ctx context.Context, _ *auth.Identity, raw json.RawMessage) (any, error) {
			args, err := decodeArgs[loginArgs](raw)
			if err != nil {
				return nil, err
			}
			return s.users.Login(ctx, args.Email, args.Password)
		}},
		"addThought": {requiresIdentity: true, handle: func(ctx context.Context, identity *auth.Identity, raw json.RawMessage) (any, error) {
			args, err := decodeArgs[addThoughtArgs](raw)
			if err != nil {
				return nil, err
			}
			return s.thoughts.AddThought(ctx, identity, args.ThoughtText)
		}},
		"addReaction": {requiresIdentity: true, handle: func(ctx context.Context, identity *auth.Identity, raw json.RawMessage) (any, error) {
			args, err := decodeArgs[addReactionArgs](raw)
			if err != nil {
				return nil, err
			}
			return s.thoughts.AddReaction(ctx, identity, args.ThoughtID, args.ReactionBody)
		}},
		"addFriend": {requiresIdentity: true, handle: func(ctx context.Context, identity *auth.Identity, raw json.RawMessage) (any, error) {
			args, err := decodeArgs[addFriendArgs](raw)
			if err != nil {
				return nil, err
			}
			return s.users.AddFriend(ctx, identity, args.FriendID)
		}},
	}
}

func (s *Server) handleOperation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.logger.With("request_id", uuid.NewString())

	var env envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		s.writeError(ctx, w, logger, common.ErrorBadRequest, "malformed request body")
		return
	}

	identity := s.resolveIdentity(ctx, requestTokens{
		Body:   env.Token,
		Query:  r.URL.Query().Get(common.TokenQueryParam),
		Header: r.Header.Get(common.AuthorizationHeaderName),
	})

	op, ok := s.ops[env.Operation]
	if !ok {
		s.writeError(ctx, w, logger, common.ErrorBadRequest, "unknown operation")
		return
	}

	if op.requiresIdentity && identity == nil {
		s.writeError(ctx, w, logger, common.ErrorUnauthenticated, "")
		return
	}

	logger.Info(ctx, "operation", "name", env.Operation, "authenticated", identity != nil)

	result, err := op.handle(ctx, identity, env.Arguments)
	if err != nil {
		s.writeError(ctx, w, logger, err, "")
		return
	}

	s.writeData(w, result)
}

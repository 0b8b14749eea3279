package httpapi

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/deepthoughts/internal/server/auth"
)

// requestTokens carries the three places a caller may put a token, in
// precedence order: request body field, query parameter, Authorization
// header.
type requestTokens struct {
	Body   string
	Query  string
	Header string
}

// pickToken selects the token per precedence. Only a header-sourced value
// has its scheme prefix stripped: split on whitespace, take the last
// segment ("Bearer <t>" and a bare "<t>" both work).
func pickToken(t requestTokens) string {
	if t.Body != "" {
		return t.Body
	}
	if t.Query != "" {
		return t.Query
	}
	if t.Header != "" {
		parts := strings.Fields(t.Header)
		if len(parts) == 0 {
			return ""
		}
		return parts[len(parts)-1]
	}
	return ""
}

// resolveIdentity produces the per-request identity context. It never fails
// the request: a missing token means anonymous, and verification failures
// (expired, bad signature, garbage) are swallowed and downgrade to
// anonymous so that read access still succeeds.
func (s *Server) resolveIdentity(ctx context.Context, tokens requestTokens) *auth.Identity {
	token := pickToken(tokens)
	if token == "" {
		return nil
	}

	identity, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		s.logger.Info(ctx, "invalid token", "error", err.Error())
		return nil
	}

	return &identity
}

package common

const (
	// AuthorizationHeaderName is the HTTP header that may carry a bearer token.
	AuthorizationHeaderName = "Authorization"

	// TokenQueryParam is the URL query parameter that may carry a token.
	TokenQueryParam = "token"
)

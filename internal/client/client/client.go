// Package client implements the HTTP transport for the Deep Thoughts API:
// it encodes operation envelopes, attaches the session token, and decodes
// results or typed API errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// APIError is a typed failure returned by the server.
type APIError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

type APIClient struct {
	endpoint string
	http     *http.Client
	token    string
}

func NewAPIClient(endpoint string) *APIClient {
	return &APIClient{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken stores the session token; subsequent requests carry it in the
// envelope body.
func (c *APIClient) SetToken(token string) {
	c.token = token
}

type envelope struct {
	Operation string `json:"operation"`
	Arguments any    `json:"arguments,omitempty"`
	Token     string `json:"token,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []APIError      `json:"errors"`
}

// Do sends one named operation with its arguments and unmarshals the data
// payload into out (if out is non-nil). Server-side failures come back as
// *APIError.
func (c *APIClient) Do(ctx context.Context, operation string, arguments any, out any) error {
	body, err := json.Marshal(envelope{Operation: operation, Arguments: arguments, Token: c.token})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}

	if len(r.Errors) > 0 {
		e := r.Errors[0]
		return &APIError{Kind: e.Kind, Message: e.Message}
	}

	if out != nil && len(r.Data) > 0 {
		if err := json.Unmarshal(r.Data, out); err != nil {
			return fmt.Errorf("malformed response data: %w", err)
		}
	}

	return nil
}

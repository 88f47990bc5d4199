// Package directory fetches a fixed remote collection of users and provides
// pure search/pagination views over it.
//
// The fetch happens once per panel activation and is never retried
// automatically; only an explicit user action re-attempts it.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the public demo API the directory reads from.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	requestTimeout = 10 * time.Second
)

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

// User is a read-only, externally sourced record. Never persisted.
type User struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

// FetchUsers issues one GET for the full collection. Network errors, non-2xx
// statuses, and malformed payloads all come back as a single wrapped error;
// callers display err.Error() as-is.
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/users", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching users: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}

	if err := validateUsersPayload(body); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}

	var users []User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}
	return users, nil
}

// Package identity talks to the hosted identity provider that owns viewer
// sessions and profile metadata.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jayraj2301/Tier-Base-Showcase/internal/domain"
)

const defaultTimeout = 5 * time.Second

// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// StatusError is returned for unexpected provider responses.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("identity %s: unexpected status %d: %s", e.Op, e.Status, e.Body)
}

type verifySessionRequest struct {
	Token string `json:"token"`
}

type verifySessionResponse struct {
	UserID string `json:"user_id"`
}

type publicMetadata struct {
	Tier string `json:"tier,omitempty"`
}

type userResponse struct {
	ID             string         `json:"id"`
	PublicMetadata publicMetadata `json:"public_metadata"`
}

type updateMetadataRequest struct {
	PublicMetadata publicMetadata `json:"public_metadata"`
}

// VerifySession resolves a session token into a viewer id.
func (c *Client) VerifySession(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrUnauthenticated
	}

	var resp verifySessionResponse
	status, err := c.do(ctx, "verify session", http.MethodPost, "/v1/sessions/verify", verifySessionRequest{Token: token}, &resp)
	if err != nil {
		if status == http.StatusUnauthorized || status == http.StatusNotFound {
			return "", domain.ErrUnauthenticated
		}
		return "", err
	}
	if resp.UserID == "" {
		return "", domain.ErrUnauthenticated
	}
	return resp.UserID, nil
}

// User fetches the profile and returns the raw tier metadata ("" when unset).
func (c *Client) User(ctx context.Context, userID string) (id, rawTier string, err error) {
	var resp userResponse
	status, err := c.do(ctx, "get user", http.MethodGet, "/v1/users/"+url.PathEscape(userID), nil, &resp)
	if err != nil {
		if status == http.StatusNotFound {
			return "", "", domain.ErrViewerNotFound
		}
		return "", "", err
	}
	if resp.ID == "" {
		resp.ID = userID
	}
	return resp.ID, resp.PublicMetadata.Tier, nil
}

// UpdateTier merges the tier into the user's public metadata.
func (c *Client) UpdateTier(ctx context.Context, userID string, tier domain.Tier) error {
	if !tier.Valid() {
		return domain.ErrInvalidTier
	}
	body := updateMetadataRequest{PublicMetadata: publicMetadata{Tier: string(tier)}}
	status, err := c.do(ctx, "update metadata", http.MethodPatch, "/v1/users/"+url.PathEscape(userID)+"/metadata", body, nil)
	if err != nil {
		if status == http.StatusNotFound {
			return domain.ErrViewerNotFound
		}
		return err
	}
	return nil
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("identity %s: encode request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("identity %s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("identity %s: %w", op, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return res.StatusCode, &StatusError{Op: op, Status: res.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	if out == nil {
		return res.StatusCode, nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return res.StatusCode, fmt.Errorf("identity %s: decode response: %w", op, err)
	}
	return res.StatusCode, nil
}

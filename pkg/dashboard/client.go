// Package dashboard is the client side of the ManagerX settings dashboard:
// the session-holding authenticated API client, the remote-backed settings
// forms, the channel picker and the live-stats poller.
package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RefreshPolicy decides what a 401 does to the session.
type RefreshPolicy int

const (
	// PolicyClearSession treats every 401 as terminal: clear the session and
	// send the user back to login. This is the dashboard's historical
	// behavior.
	PolicyClearSession RefreshPolicy = iota
	// PolicyRefreshOnce attempts one token refresh and one retry before
	// falling back to the clear-session path.
	PolicyRefreshOnce
)

const (
	defaultLoginPage = "login.html"
	loggedOutQuery   = "?logged_out=true"
)

// Client issues authenticated requests against the dashboard backend. A nil
// Navigate hook is allowed; redirects are then silently skipped.
type Client struct {
	BaseURL  string
	Session  SessionStore
	HTTP     *http.Client
	Policy   RefreshPolicy
	LoginURL string

	// Navigate is how the client "changes the page": the web build points it
	// at the browser location, tests capture it.
	Navigate func(url string)
}

func NewClient(baseURL string, session SessionStore) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Session:  session,
		HTTP:     &http.Client{Timeout: 15 * time.Second},
		LoginURL: defaultLoginPage,
	}
}

func (c *Client) navigate(url string) {
	if c.Navigate != nil {
		c.Navigate(url)
	}
}

// Do issues an authenticated request. body may be nil or any JSON-marshalable
// value. Responses with statuses other than 401 are returned unmodified;
// the caller inspects them.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	token := c.Session.AccessToken()
	if token == "" {
		c.navigate(c.LoginURL)
		return nil, ErrNoToken
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	resp, err := c.send(ctx, method, path, token, payload)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	resp.Body.Close()

	if c.Policy == PolicyRefreshOnce {
		if newToken, refreshErr := c.RefreshAccessToken(ctx); refreshErr == nil {
			retry, err := c.send(ctx, method, path, newToken, payload)
			if err != nil {
				return nil, err
			}
			if retry.StatusCode != http.StatusUnauthorized {
				return retry, nil
			}
			retry.Body.Close()
		}
	}

	c.Session.Clear()
	c.navigate(c.LoginURL + loggedOutQuery)
	return nil, ErrSessionExpired
}

func (c *Client) send(ctx context.Context, method, path, token string, payload []byte) (*http.Response, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}
	return resp, nil
}

// RefreshAccessToken posts the stored refresh token to the refresh endpoint
// and rotates the stored pair on success.
func (c *Client) RefreshAccessToken(ctx context.Context) (string, error) {
	refreshToken := c.Session.RefreshToken()
	if refreshToken == "" {
		return "", ErrNoRefreshToken
	}

	payload, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrRefreshFailed
	}

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}
	if tokens.AccessToken == "" {
		return "", ErrRefreshFailed
	}

	c.Session.SetTokens(tokens.AccessToken, tokens.RefreshToken)
	return tokens.AccessToken, nil
}

// readDetail extracts the backend's {"detail": ...} error text, falling back
// to the raw body.
func readDetail(resp *http.Response) string {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return strings.TrimSpace(string(raw))
}

// featureDisabledMarker is the substring in a 403 detail that means "module
// switched off in bot config" rather than "no permission".
const featureDisabledMarker = "deaktiviert"

func isFeatureDisabled(statusCode int, detail string) bool {
	return statusCode == http.StatusForbidden && strings.Contains(detail, featureDisabledMarker)
}

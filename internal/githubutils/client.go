package githubutils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"emperror.dev/errors"
)

const defaultBaseURL = "https://api.github.com"

const (
	// ErrNetworkOrAPI marks transport-level failures reaching the API.
	// Callers treat these as non-fatal and continue with their next check.
	ErrNetworkOrAPI = errors.Sentinel("github api unreachable")
	// ErrUnauthorized means the API answered and rejected the credential.
	ErrUnauthorized = errors.Sentinel("github rejected the credential")
)

// Client issues raw REST calls against the GitHub API with a bearer
// credential. Only the two endpoints the verification flow needs are exposed.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

func NewClient(token string) *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		token:      token,
	}
}

func (c *Client) get(path string) ([]byte, http.Header, int, error) {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, nil, 0, err
	}
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, 0, errors.WithMessagef(ErrNetworkOrAPI, "GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, 0, errors.WithMessagef(ErrNetworkOrAPI, "GET %s: %v", path, err)
	}
	return body, resp.Header, resp.StatusCode, nil
}

// CurrentUser fetches /user, returning the authenticated identity and the
// OAuth scope headers from the response.
func (c *Client) CurrentUser() (*User, Scopes, error) {
	body, header, status, err := c.get("/user")
	if err != nil {
		return nil, Scopes{}, err
	}
	scopes := Scopes{
		Granted:  header.Get("X-OAuth-Scopes"),
		Accepted: header.Get("X-Accepted-OAuth-Scopes"),
	}
	if status < 200 || status >= 300 {
		return nil, scopes, errors.WithMessagef(ErrUnauthorized, "GET /user returned %d: %s", status, apiMessage(body))
	}
	var u User
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, scopes, errors.WithMessage(ErrNetworkOrAPI, err.Error())
	}
	if u.Login == "" {
		return nil, scopes, errors.WithMessagef(ErrUnauthorized, "no login in response: %s", apiMessage(body))
	}
	return &u, scopes, nil
}

// Repository fetches /repos/{owner}/{repo}.
func (c *Client) Repository(owner, repo string) (*Repository, error) {
	path := fmt.Sprintf("/repos/%s/%s", owner, repo)
	body, _, status, err := c.get(path)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, errors.WithMessagef(ErrNetworkOrAPI, "GET %s returned %d: %s", path, status, apiMessage(body))
	}
	var r Repository
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, errors.WithMessage(ErrNetworkOrAPI, err.Error())
	}
	return &r, nil
}

func apiMessage(body []byte) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return string(body)
}

// Package github is a minimal GitHub REST client for the registry checks.
//
// Every request carries one fixed timeout and is attempted exactly once:
// retry policy belongs to the CI system re-running the check, not here.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/potions-sh/cauldron/internal/cachemanager"
	"github.com/potions-sh/cauldron/internal/log"
)

const (
	defaultBaseURL = "https://api.github.com"
	requestTimeout = 10 * time.Second
)

// Repository is the subset of the repos API response the checks care about.
type Repository struct {
	FullName string `json:"full_name"`
	Archived bool   `json:"archived"`
	Disabled bool   `json:"disabled"`
}

// StatusError reports an unexpected HTTP status from the API.
type StatusError struct {
	Status int
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github: unexpected status %d for %s", e.Status, e.Path)
}

// Client talks to the GitHub REST API. Responses are cached per path for the
// lifetime of the process so several checks probing the same repository
// within one run hit the API once.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	cache      cachemanager.CacheManager[string, cachedResponse]
}

type cachedResponse struct {
	status int
	body   []byte
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithToken sets the bearer token. An empty token means unauthenticated
// requests, which still work against public repositories at a lower rate
// limit.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a GitHub API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    defaultBaseURL,
		cache: cachemanager.NewInMemoryCacheManager[string, cachedResponse](
			"github", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ParseRepoPath extracts "owner/repo" from a GitHub repository URL.
func ParseRepoPath(repoURL string) string {
	path := strings.TrimPrefix(repoURL, "https://github.com/")
	return strings.TrimRight(path, "/")
}

// GetRepository fetches repository metadata. A 404 is reported as a
// StatusError with Status 404.
func (c *Client) GetRepository(ctx context.Context, repoPath string) (*Repository, error) {
	status, body, err := c.get(ctx, "/repos/"+repoPath)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &StatusError{Status: status, Path: "/repos/" + repoPath}
	}

	var repo Repository
	if err := json.Unmarshal(body, &repo); err != nil {
		return nil, fmt.Errorf("github: decoding repository %s: %w", repoPath, err)
	}
	return &repo, nil
}

// FileExists reports whether a file exists in the repository via the
// contents API. 200 means it exists, 404 means it does not; anything else
// is a StatusError.
func (c *Client) FileExists(ctx context.Context, repoPath, filePath string) (bool, error) {
	apiPath := fmt.Sprintf("/repos/%s/contents/%s", repoPath, filePath)
	status, _, err := c.get(ctx, apiPath)
	if err != nil {
		return false, err
	}
	switch status {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, &StatusError{Status: status, Path: apiPath}
	}
}

// ProbeVulnerabilityAlerts touches the vulnerability-alerts endpoint for the
// repository. Only transport failures are returned; any HTTP status counts
// as a completed probe.
func (c *Client) ProbeVulnerabilityAlerts(ctx context.Context, repoPath string) error {
	_, _, err := c.get(ctx, fmt.Sprintf("/repos/%s/vulnerability-alerts", repoPath))
	return err
}

func (c *Client) get(ctx context.Context, path string) (int, []byte, error) {
	if cached, ok := c.cache.Get(ctx, path); ok {
		return cached.status, cached.body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("github: building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	log.Debug(log.CatGitHub, "request", "path", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("github: requesting %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("github: reading response for %s: %w", path, err)
	}

	c.cache.Set(ctx, path, cachedResponse{status: resp.StatusCode, body: body}, cachemanager.DefaultExpiration)
	return resp.StatusCode, body, nil
}

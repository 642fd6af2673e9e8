// Package github implements the SourceClient port against the GitHub content API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/refmap/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	defaultAPIBase    = "https://api.github.com"
	defaultRawBase    = "https://raw.githubusercontent.com"
	httpClientTimeout = 30 * time.Second
)

// Settings configures a Client. Zero values select the public GitHub
// endpoints and anonymous access.
type Settings struct {
	// APIBase overrides the REST endpoint (self-hosted forges, tests).
	APIBase string
	// RawBase overrides the raw content endpoint.
	RawBase string
	// Token authenticates requests to raise the rate limit.
	Token string
}

// Client resolves branch heads and fetches file contents pinned to a commit.
type Client struct {
	apiBase    string
	rawBase    string
	token      string
	httpClient *http.Client
}

// NewClient creates a SourceClient backed by the GitHub content API.
func NewClient(settings Settings) *Client {
	return newClientWithHTTP(settings, &http.Client{
		Timeout: httpClientTimeout,
	})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(settings Settings, client *http.Client) *Client {
	apiBase := settings.APIBase
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	rawBase := settings.RawBase
	if rawBase == "" {
		rawBase = defaultRawBase
	}

	return &Client{
		apiBase:    strings.TrimSuffix(apiBase, "/"),
		rawBase:    strings.TrimSuffix(rawBase, "/"),
		token:      settings.Token,
		httpClient: client,
	}
}

// branchResponse is the subset of the branches API payload we read.
type branchResponse struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

// ResolveBranch queries the branches API and returns the commit the branch
// currently points to.
func (c *Client) ResolveBranch(ctx context.Context, owner, repo, branch string) (domain.Revision, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/branches/%s", c.apiBase, owner, repo, branch)

	req, err := c.newRequest(ctx, url, "application/vnd.github+json")
	if err != nil {
		return domain.Revision{}, zerr.Wrap(err, domain.ErrRevisionResolveFailed.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Revision{}, zerr.Wrap(err, domain.ErrRevisionResolveFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		resolveErr := zerr.With(domain.ErrRevisionResolveFailed, "status_code", resp.StatusCode)
		resolveErr = zerr.With(resolveErr, "repository", owner+"/"+repo)
		return domain.Revision{}, zerr.With(resolveErr, "branch", branch)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Revision{}, zerr.Wrap(err, domain.ErrRevisionResolveFailed.Error())
	}

	var decoded branchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.Revision{}, zerr.Wrap(err, domain.ErrRevisionParseFailed.Error())
	}

	if decoded.Commit.SHA == "" {
		return domain.Revision{}, zerr.With(domain.ErrRevisionParseFailed, "branch", branch)
	}

	return domain.Revision{
		Owner:  owner,
		Repo:   repo,
		Commit: decoded.Commit.SHA,
	}, nil
}

// FetchFile retrieves the full text of path at the given revision from the
// raw content endpoint.
func (c *Client) FetchFile(ctx context.Context, rev domain.Revision, path string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s", c.rawBase, rev.Owner, rev.Repo, rev.Commit, strings.TrimPrefix(path, "/"))

	req, err := c.newRequest(ctx, url, "text/plain")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFileFetchFailed.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFileFetchFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		fetchErr := zerr.With(domain.ErrFileFetchFailed, "status_code", resp.StatusCode)
		return "", zerr.With(fetchErr, "path", path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFileFetchFailed.Error())
	}

	return string(body), nil
}

// newRequest builds a GET request with the Accept and auth headers set.
func (c *Client) newRequest(ctx context.Context, url, accept string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", accept)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

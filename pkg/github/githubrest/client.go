// Package githubrest provides a github.Client implementation backed by the
// GitHub REST API v3.
package githubrest

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"filplus/pkg/github"
	"filplus/pkg/serrors"
	"filplus/pkg/timeutil"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public GitHub API endpoint.
	DefaultBaseURL = "https://api.github.com"
	apiVersion     = "2022-11-28"
	issuesPerPage  = 100
)

// StatusError is returned for non-2xx responses that have no more specific
// semantic kind.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github responded with status %d: %s", e.StatusCode, e.Body)
}

// Options configures a Client.
type Options struct {
	// BaseURL is the API root, DefaultBaseURL when empty.
	BaseURL string
	// Token is a personal access or installation token. Empty means anonymous.
	Token string
	// UserAgent is sent with every request.
	UserAgent string
}

// Client talks to the GitHub REST API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	limiter    *github.Limiter
	options    Options
}

// Ensure Client conforms to the github.Client interface at compile time.
var _ github.Client = (*Client)(nil)

// New constructs a Client. limiter may be nil to disable client-side rate limiting.
func New(httpClient *http.Client, limiter *github.Limiter, options Options) *Client {
	if options.BaseURL == "" {
		options.BaseURL = DefaultBaseURL
	}
	options.BaseURL = strings.TrimRight(options.BaseURL, "/")

	return &Client{
		httpClient: httpClient,
		limiter:    limiter,
		options:    options,
	}
}

// ParseRateLimit extracts GitHub rate-limit information from response headers.
// It returns false when the headers are absent or malformed.
func ParseRateLimit(h http.Header) (github.RateLimitStatus, bool) {
	limit, err := strconv.Atoi(h.Get("X-RateLimit-Limit"))
	if err != nil {
		return github.RateLimitStatus{}, false
	}
	remaining, err := strconv.Atoi(h.Get("X-RateLimit-Remaining"))
	if err != nil {
		return github.RateLimitStatus{}, false
	}
	reset, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64)
	if err != nil || reset <= 0 {
		return github.RateLimitStatus{}, false
	}

	return github.RateLimitStatus{
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   timeutil.FromEpoch(reset),
	}, true
}

// GetPullRequest fetches a single pull request.
func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*github.PullRequest, error) {
	// https://docs.github.com/en/rest/pulls/pulls#get-a-pull-request
	b, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/pulls/%d", url.PathEscape(owner), url.PathEscape(repo), number), nil)
	if err != nil {
		return nil, fmt.Errorf("could not get pull request %d: %w", number, err)
	}

	var pr struct {
		Number  int    `json:"number"`
		State   string `json:"state"`
		HTMLURL string `json:"html_url"`
		Head    struct {
			Ref string `json:"ref"`
			SHA string `json:"sha"`
		} `json:"head"`
	}
	if err := json.Unmarshal(b, &pr); err != nil {
		return nil, serrors.Wrap(serrors.ErrTransient, err, "could not decode pull request")
	}

	return &github.PullRequest{
		Number:  pr.Number,
		State:   pr.State,
		URL:     pr.HTMLURL,
		HeadRef: pr.Head.Ref,
		HeadSHA: pr.Head.SHA,
	}, nil
}

// GetFile fetches and decodes a file through the contents API.
func (c *Client) GetFile(ctx context.Context, owner, repo, path, ref string) (*github.File, error) {
	// https://docs.github.com/en/rest/repos/contents#get-repository-content
	query := url.Values{}
	if ref != "" {
		query.Set("ref", ref)
	}
	b, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/contents/%s",
		url.PathEscape(owner), url.PathEscape(repo), escapePath(path)), query)
	if err != nil {
		return nil, fmt.Errorf("could not get file %s: %w", path, err)
	}

	var content struct {
		Type     string `json:"type"`
		Path     string `json:"path"`
		SHA      string `json:"sha"`
		Encoding string `json:"encoding"`
		Content  string `json:"content"`
	}
	if err := json.Unmarshal(b, &content); err != nil {
		// directories are returned as arrays
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "%s is not a file", path)
	}
	if content.Type != "file" {
		return nil, serrors.With(serrors.ErrBadRequest, "%s is a %s, not a file", path, content.Type)
	}
	if content.Encoding != "base64" {
		return nil, serrors.With(serrors.ErrUnavailable, "unsupported encoding %q for %s", content.Encoding, path)
	}

	// the API wraps base64 content at 60 characters
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(content.Content, "\n", ""))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransient, err, "could not decode content of %s", path)
	}

	return &github.File{
		Path:    content.Path,
		SHA:     content.SHA,
		Content: decoded,
	}, nil
}

// ListIssues lists issues page by page until a short page is returned.
func (c *Client) ListIssues(ctx context.Context,
	owner, repo string,
	opts github.IssueListOptions) ([]github.Issue, error) {
	// https://docs.github.com/en/rest/issues/issues#list-repository-issues
	state := opts.State
	if state == "" {
		state = "all"
	}

	var out []github.Issue
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("state", state)
		query.Set("per_page", strconv.Itoa(issuesPerPage))
		query.Set("page", strconv.Itoa(page))
		if opts.Label != "" {
			query.Set("labels", opts.Label)
		}

		b, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/issues", url.PathEscape(owner), url.PathEscape(repo)), query)
		if err != nil {
			return nil, fmt.Errorf("could not list issues: %w", err)
		}

		var items []struct {
			ID     int64  `json:"id"`
			Number int    `json:"number"`
			Title  string `json:"title"`
			Body   string `json:"body"`
			State  string `json:"state"`
			User   struct {
				Login string `json:"login"`
			} `json:"user"`
			Labels []struct {
				Name string `json:"name"`
			} `json:"labels"`
			PullRequest *struct {
				URL string `json:"url"`
			} `json:"pull_request"`
			CreatedAt *time.Time `json:"created_at"`
			ClosedAt  *time.Time `json:"closed_at"`
		}
		if err := json.Unmarshal(b, &items); err != nil {
			return nil, serrors.Wrap(serrors.ErrTransient, err, "could not decode issues")
		}

		for _, item := range items {
			if item.PullRequest != nil {
				continue
			}

			issue := github.Issue{
				ID:     item.ID,
				Number: item.Number,
				Title:  item.Title,
				Body:   item.Body,
				State:  item.State,
				User:   item.User.Login,
			}
			for _, l := range item.Labels {
				issue.Labels = append(issue.Labels, l.Name)
			}
			if item.CreatedAt != nil {
				issue.CreatedAt = *item.CreatedAt
			}
			if item.ClosedAt != nil {
				issue.ClosedAt = *item.ClosedAt
			}
			out = append(out, issue)
		}

		if len(items) < issuesPerPage {
			return out, nil
		}
	}
}

// get performs an authenticated GET request and maps error statuses to
// semantic kinds. The rate-limit budget is reserved before the request and
// released with the headers of the response.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.options.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.options.UserAgent != "" {
		req.Header.Set("User-Agent", c.options.UserAgent)
	}
	if c.options.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.options.Token)
	}

	if c.limiter != nil {
		if err := c.limiter.Reserve(ctx); err != nil {
			return nil, err
		}
	}

	var rl github.RateLimitStatus
	defer func() {
		if c.limiter != nil {
			c.limiter.Release(ctx, rl)
		}
	}()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("could not send request: %w", err)
		}

		return nil, serrors.Wrap(serrors.ErrTransient, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl, _ = ParseRateLimit(resp.Header)

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransient, err, "could not read response body")
	}

	return b, statusError(resp.StatusCode, rl, b)
}

func statusError(code int, rl github.RateLimitStatus, body []byte) error {
	msg := strings.TrimSpace(string(body))

	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return serrors.With(serrors.ErrNotFound, "github resource not found")
	case code == http.StatusUnauthorized:
		return serrors.With(serrors.ErrUnauthorized, "github rejected credentials: %s", msg)
	case code == http.StatusTooManyRequests,
		code == http.StatusForbidden && !rl.ResetAt.IsZero() && rl.Remaining == 0:
		return serrors.With(serrors.ErrRateLimited, "github rate limit exceeded until %s",
			timeutil.ToZulu(rl.ResetAt))
	case code == http.StatusForbidden:
		return serrors.Wrap(serrors.ErrForbidden, &StatusError{StatusCode: code, Body: msg}, "github denied access")
	case code >= 500:
		return serrors.Wrap(serrors.ErrTransient, &StatusError{StatusCode: code, Body: msg}, "github unavailable")
	default:
		return &StatusError{StatusCode: code, Body: msg}
	}
}

// escapePath escapes each segment of a repository path, keeping separators.
func escapePath(p string) string {
	segments := strings.Split(strings.Trim(p, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return strings.Join(segments, "/")
}

package releases

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const releasesPerPage = 100

// release is the subset of a GitHub release the resolver reads.
type release struct {
	TagName   string    `json:"tag_name"`
	CreatedAt time.Time `json:"created_at"`
}

// releasesPage is one page of a repository's release listing.
type releasesPage struct {
	Releases []release
	HasNext  bool
}

func (c *Client) newAPIRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	return req, nil
}

// latestReleaseTag returns the version of the newest release in a repository
// that publishes only one binary.
func (c *Client) latestReleaseTag(ctx context.Context, repo string) (Version, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.cfg.GitHubAPIURL, c.cfg.Org, repo)
	req, err := c.newAPIRequest(ctx, url)
	if err != nil {
		return Version{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Version{}, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Version{}, &APIStatusError{URL: url, StatusCode: resp.StatusCode}
	}

	var latest struct {
		TagName *string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&latest); err != nil {
		return Version{}, fmt.Errorf("failed to parse latest release: %w", err)
	}
	if latest.TagName == nil {
		return Version{}, ErrMalformedLatestReleaseResponse
	}

	return ParseVersion(strings.TrimPrefix(*latest.TagName, "v"))
}

// fetchReleasesPage fetches page (1-indexed) of the workspace repository's
// release listing, newest first.
func (c *Client) fetchReleasesPage(ctx context.Context, page int) (*releasesPage, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases?page=%d&per_page=%d",
		c.cfg.GitHubAPIURL, c.cfg.Org, c.cfg.WorkspaceRepo, page, releasesPerPage)
	req, err := c.newAPIRequest(ctx, url)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch releases page %d: %w", page, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIStatusError{URL: url, StatusCode: resp.StatusCode}
	}

	var rels []release
	if err := json.NewDecoder(resp.Body).Decode(&rels); err != nil {
		return nil, fmt.Errorf("failed to parse releases page %d: %w", page, err)
	}

	return &releasesPage{
		Releases: rels,
		HasNext:  hasNextPage(resp.Header),
	}, nil
}

// hasNextPage reports whether a Link header advertises rel="next".
func hasNextPage(h http.Header) bool {
	for _, value := range h.Values("Link") {
		for _, link := range strings.Split(value, ",") {
			if strings.Contains(link, `rel="next"`) {
				return true
			}
		}
	}
	return false
}
